package typing

import "testing"

func cls(name string, args ...TypeExpr) TypeExpr {
	return &ClassInstance{Name: TypeName{Name: name, Kind: KindClassModule}, Args: args}
}

func TestEqualsStructural(t *testing.T) {
	a := cls("A")
	b := cls("A")
	if !Equals(a, b) {
		t.Fatalf("expected %v to equal %v", a, b)
	}

	c := cls("B")
	if Equals(a, c) {
		t.Fatalf("did not expect %v to equal %v", a, c)
	}

	if !Equals(nil, nil) {
		t.Fatalf("expected nil to equal nil")
	}
	if Equals(a, nil) || Equals(nil, a) {
		t.Fatalf("did not expect %v to equal nil", a)
	}
}

func TestEqualsLeafAndLiteral(t *testing.T) {
	if !Equals(LeafType{Kind: LeafBool}, LeafType{Kind: LeafBool}) {
		t.Fatalf("expected equal leaf types")
	}
	if Equals(LeafType{Kind: LeafBool}, LeafType{Kind: LeafVoid}) {
		t.Fatalf("did not expect different leaf kinds to be equal")
	}

	if !Equals(&LiteralType{Value: "x"}, &LiteralType{Value: "x"}) {
		t.Fatalf("expected equal literal types")
	}
}

func TestEquivConsistentRenaming(t *testing.T) {
	// (T) -> T  vs  (U) -> U -- consistent renaming T<->U throughout.
	a := &ProcType{
		Params:     []Param{{Name: "x", Type: &TypeParamRef{Name: "T"}}},
		ReturnType: &TypeParamRef{Name: "T"},
	}
	b := &ProcType{
		Params:     []Param{{Name: "x", Type: &TypeParamRef{Name: "U"}}},
		ReturnType: &TypeParamRef{Name: "U"},
	}

	if !Equiv(a, b) {
		t.Fatalf("expected %v to be equivalent to %v modulo renaming", a.Repr(), b.Repr())
	}

	// Equals must still distinguish them -- Equiv is strictly weaker.
	if Equals(a, b) {
		t.Fatalf("did not expect %v to be structurally equal to %v", a.Repr(), b.Repr())
	}
}

func TestEquivInconsistentRenamingRejected(t *testing.T) {
	// (T, T) -> void  vs  (U, V) -> void -- T maps to both U and V, which is
	// inconsistent: the second position must mirror the first's mapping.
	a := &ProcType{
		Params: []Param{
			{Name: "x", Type: &TypeParamRef{Name: "T"}},
			{Name: "y", Type: &TypeParamRef{Name: "T"}},
		},
	}
	b := &ProcType{
		Params: []Param{
			{Name: "x", Type: &TypeParamRef{Name: "U"}},
			{Name: "y", Type: &TypeParamRef{Name: "V"}},
		},
	}

	if Equiv(a, b) {
		t.Fatalf("did not expect inconsistent renaming to be accepted as equivalent")
	}
}

func TestEquivWithSharedSubstitution(t *testing.T) {
	// Two independent comparisons sharing one substitution map must agree
	// on the very same renaming, as validate_type_params (§4.2) requires
	// across a fragment's whole parameter list.
	subst := make(map[string]string)

	boundA := &TypeParamRef{Name: "T"}
	boundB := &TypeParamRef{Name: "U"}
	if !EquivWith(boundA, boundB, subst) {
		t.Fatalf("expected first comparison to succeed")
	}

	defaultA := &TypeParamRef{Name: "T"}
	defaultB := &TypeParamRef{Name: "U"}
	if !EquivWith(defaultA, defaultB, subst) {
		t.Fatalf("expected second comparison under the same mapping to succeed")
	}

	defaultBWrong := &TypeParamRef{Name: "V"}
	if EquivWith(defaultA, defaultBWrong, subst) {
		t.Fatalf("did not expect a mapping conflicting with the shared substitution to succeed")
	}
}

func TestInnerType(t *testing.T) {
	inner := cls("A")
	opt := &OptionalType{Inner: inner}

	unwrapped, ok := InnerType(opt)
	if !ok || !Equals(unwrapped, inner) {
		t.Fatalf("expected InnerType to unwrap %v, got %v, %v", opt, unwrapped, ok)
	}

	same, ok := InnerType(inner)
	if ok || !Equals(same, inner) {
		t.Fatalf("expected InnerType on a non-optional to return it unchanged, got %v, %v", same, ok)
	}
}
