package typing

// Equals reports whether two type expressions are structurally identical:
// same shape, same names (already-resolved or not), same arguments. Type
// parameter names must match exactly; see Equiv for comparison modulo
// renaming.
func Equals(a, b TypeExpr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return a.equals(b)
}

// Equiv reports whether two type expressions are equivalent up to a
// consistent renaming of type parameters, starting from an empty
// substitution.
func Equiv(a, b TypeExpr) bool {
	return equiv(a, b, make(map[string]string))
}

// EquivWith is Equiv threaded through a caller-supplied substitution map,
// so that several related comparisons (eg. every type parameter of one
// fragment against another's) can share a single consistent renaming.
func EquivWith(a, b TypeExpr, subst map[string]string) bool {
	return equiv(a, b, subst)
}

// equiv walks a and b in lockstep, building up a substitution from a's
// type-parameter names to b's as it goes. A TypeParamRef in a is consistent
// with one in b if either this is the first time a's name has been seen (in
// which case the mapping is recorded) or the recorded mapping agrees with
// b's name.
func equiv(a, b TypeExpr, subst map[string]string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch at := a.(type) {
	case *TypeParamRef:
		bt, ok := b.(*TypeParamRef)
		if !ok {
			return false
		}

		if mapped, seen := subst[at.Name]; seen {
			return mapped == bt.Name
		}

		subst[at.Name] = bt.Name
		return true

	case *ClassInstance:
		bt, ok := b.(*ClassInstance)
		return ok && at.Name.Equal(bt.Name) && equivArgs(at.Args, bt.Args, subst)

	case *AliasInstance:
		bt, ok := b.(*AliasInstance)
		return ok && at.Name.Equal(bt.Name) && equivArgs(at.Args, bt.Args, subst)

	case *UnionType:
		bt, ok := b.(*UnionType)
		return ok && equivArgs(at.Members, bt.Members, subst)

	case *TupleType:
		bt, ok := b.(*TupleType)
		return ok && equivArgs(at.Elems, bt.Elems, subst)

	case *RecordType:
		bt, ok := b.(*RecordType)
		if !ok || len(at.Fields) != len(bt.Fields) {
			return false
		}

		for i, f := range at.Fields {
			of := bt.Fields[i]
			if f.Name != of.Name || !equiv(f.Type, of.Type, subst) {
				return false
			}
		}

		return true

	case *ProcType:
		bt, ok := b.(*ProcType)
		if !ok {
			return false
		}

		return equivParams(at.Params, bt.Params, subst) &&
			equivParams(at.OptionalArgs, bt.OptionalArgs, subst) &&
			equivParams(at.Keywords, bt.Keywords, subst) &&
			equivOptParam(at.RestParam, bt.RestParam, subst) &&
			equivOptParam(at.RestKeyword, bt.RestKeyword, subst) &&
			equivBlock(at.Block, bt.Block, subst) &&
			equiv(at.ReturnType, bt.ReturnType, subst)

	case *OptionalType:
		bt, ok := b.(*OptionalType)
		return ok && equiv(at.Inner, bt.Inner, subst)

	default:
		// Leaves and literals have no embedded type parameters: structural
		// equality suffices.
		return Equals(a, b)
	}
}

func equivArgs(a, b []TypeExpr, subst map[string]string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !equiv(a[i], b[i], subst) {
			return false
		}
	}

	return true
}

func equivParams(a, b []Param, subst map[string]string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i].Optional != b[i].Optional || !equiv(a[i].Type, b[i].Type, subst) {
			return false
		}
	}

	return true
}

func equivOptParam(a, b *Param, subst map[string]string) bool {
	if (a == nil) != (b == nil) {
		return false
	}

	if a == nil {
		return true
	}

	return equiv(a.Type, b.Type, subst)
}

func equivBlock(a, b *ProcType, subst map[string]string) bool {
	if (a == nil) != (b == nil) {
		return false
	}

	if a == nil {
		return true
	}

	return equiv(TypeExpr(a), TypeExpr(b), subst)
}

// InnerType unwraps a single layer of OptionalType, returning the wrapped
// type and true, or the original expression and false if it was not an
// OptionalType.
func InnerType(t TypeExpr) (TypeExpr, bool) {
	if ot, ok := t.(*OptionalType); ok {
		return ot.Inner, true
	}

	return t, false
}
