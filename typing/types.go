package typing

import "strings"

// TypeExpr is the parent interface for all type expressions that appear
// inside a declaration: super-class references, attribute/ivar types,
// method parameter and return types, type-alias right-hand sides, and
// mixin arguments. It mirrors chai's DataType interface.
type TypeExpr interface {
	// Repr returns a representative string of the type expression, for
	// debugging and test assertions.
	Repr() string

	// equals is the internal, variant-specific implementation of Equals. It
	// should never be called directly except by Equals.
	equals(TypeExpr) bool
}

// -----------------------------------------------------------------------------

// ClassInstance is a reference to a class, module, or interface used as a
// type, with its type arguments (if any). This is the only variant (along
// with AliasInstance) whose Name the resolution pass (§4.6) rewrites.
type ClassInstance struct {
	Name TypeName
	Args []TypeExpr
}

func (ci *ClassInstance) Repr() string {
	return reprNamed(ci.Name, ci.Args)
}

func (ci *ClassInstance) equals(other TypeExpr) bool {
	oci, ok := other.(*ClassInstance)
	return ok && ci.Name.Equal(oci.Name) && equalArgs(ci.Args, oci.Args)
}

// -----------------------------------------------------------------------------

// AliasInstance is a reference to a type alias used as a type, with its
// type arguments (if any).
type AliasInstance struct {
	Name TypeName
	Args []TypeExpr
}

func (ai *AliasInstance) Repr() string {
	return reprNamed(ai.Name, ai.Args)
}

func (ai *AliasInstance) equals(other TypeExpr) bool {
	oai, ok := other.(*AliasInstance)
	return ok && ai.Name.Equal(oai.Name) && equalArgs(ai.Args, oai.Args)
}

func reprNamed(name TypeName, args []TypeExpr) string {
	if len(args) == 0 {
		return name.String()
	}

	sb := strings.Builder{}
	sb.WriteString(name.String())
	sb.WriteRune('[')

	for i, a := range args {
		sb.WriteString(a.Repr())

		if i < len(args)-1 {
			sb.WriteString(", ")
		}
	}

	sb.WriteRune(']')
	return sb.String()
}

func equalArgs(a, b []TypeExpr) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !Equals(a[i], b[i]) {
			return false
		}
	}

	return true
}

// -----------------------------------------------------------------------------

// TypeParamRef is a reference to a bound type-parameter variable, eg. the
// `T` in `class Box[T] < Base[T] end`.
type TypeParamRef struct {
	Name string
}

func (tv *TypeParamRef) Repr() string {
	return tv.Name
}

func (tv *TypeParamRef) equals(other TypeExpr) bool {
	otv, ok := other.(*TypeParamRef)
	return ok && tv.Name == otv.Name
}

// -----------------------------------------------------------------------------

// UnionType represents a union of two or more type expressions.
type UnionType struct {
	Members []TypeExpr
}

func (ut *UnionType) Repr() string {
	parts := make([]string, len(ut.Members))
	for i, m := range ut.Members {
		parts[i] = m.Repr()
	}

	return strings.Join(parts, " | ")
}

func (ut *UnionType) equals(other TypeExpr) bool {
	out, ok := other.(*UnionType)
	return ok && equalArgs(ut.Members, out.Members)
}

// -----------------------------------------------------------------------------

// TupleType represents a fixed-arity, positionally-typed tuple.
type TupleType struct {
	Elems []TypeExpr
}

func (tt *TupleType) Repr() string {
	sb := strings.Builder{}
	sb.WriteRune('[')

	for i, e := range tt.Elems {
		sb.WriteString(e.Repr())

		if i < len(tt.Elems)-1 {
			sb.WriteString(", ")
		}
	}

	sb.WriteRune(']')
	return sb.String()
}

func (tt *TupleType) equals(other TypeExpr) bool {
	ott, ok := other.(*TupleType)
	return ok && equalArgs(tt.Elems, ott.Elems)
}

// -----------------------------------------------------------------------------

// RecordField is a single named field within a RecordType.
type RecordField struct {
	Name string
	Type TypeExpr
}

// RecordType represents a record (shape) type: an ordered set of named
// fields.
type RecordType struct {
	Fields []RecordField
}

func (rt *RecordType) Repr() string {
	sb := strings.Builder{}
	sb.WriteRune('{')

	for i, f := range rt.Fields {
		sb.WriteString(f.Name)
		sb.WriteString(": ")
		sb.WriteString(f.Type.Repr())

		if i < len(rt.Fields)-1 {
			sb.WriteString(", ")
		}
	}

	sb.WriteRune('}')
	return sb.String()
}

func (rt *RecordType) equals(other TypeExpr) bool {
	ort, ok := other.(*RecordType)
	if !ok || len(rt.Fields) != len(ort.Fields) {
		return false
	}

	for i, f := range rt.Fields {
		of := ort.Fields[i]
		if f.Name != of.Name || !Equals(f.Type, of.Type) {
			return false
		}
	}

	return true
}

// -----------------------------------------------------------------------------

// Param is a single parameter within a ProcType.
type Param struct {
	Name     string // may be empty for positional-only parameters
	Type     TypeExpr
	Optional bool
}

// ProcType represents the type of a method overload or a proc/block value:
// required and optional positional parameters, required and optional
// keyword parameters, an optional rest parameter, an optional block, and a
// return type.
type ProcType struct {
	Params       []Param
	OptionalArgs []Param
	RestParam    *Param
	Keywords     []Param
	RestKeyword  *Param
	Block        *ProcType
	ReturnType   TypeExpr
}

func (pt *ProcType) Repr() string {
	sb := strings.Builder{}
	sb.WriteRune('(')

	allParams := append(append([]Param{}, pt.Params...), pt.OptionalArgs...)
	for i, p := range allParams {
		sb.WriteString(p.Type.Repr())

		if i < len(allParams)-1 {
			sb.WriteString(", ")
		}
	}

	sb.WriteString(") -> ")

	if pt.ReturnType != nil {
		sb.WriteString(pt.ReturnType.Repr())
	} else {
		sb.WriteString("void")
	}

	return sb.String()
}

func (pt *ProcType) equals(other TypeExpr) bool {
	opt, ok := other.(*ProcType)
	if !ok {
		return false
	}

	if !equalParams(pt.Params, opt.Params) || !equalParams(pt.OptionalArgs, opt.OptionalArgs) ||
		!equalParams(pt.Keywords, opt.Keywords) {
		return false
	}

	if (pt.RestParam == nil) != (opt.RestParam == nil) {
		return false
	}
	if pt.RestParam != nil && !Equals(pt.RestParam.Type, opt.RestParam.Type) {
		return false
	}

	if (pt.RestKeyword == nil) != (opt.RestKeyword == nil) {
		return false
	}
	if pt.RestKeyword != nil && !Equals(pt.RestKeyword.Type, opt.RestKeyword.Type) {
		return false
	}

	if (pt.Block == nil) != (opt.Block == nil) {
		return false
	}
	if pt.Block != nil && !pt.Block.equals(opt.Block) {
		return false
	}

	if (pt.ReturnType == nil) != (opt.ReturnType == nil) {
		return false
	}

	return pt.ReturnType == nil || Equals(pt.ReturnType, opt.ReturnType)
}

func equalParams(a, b []Param) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i].Optional != b[i].Optional || !Equals(a[i].Type, b[i].Type) {
			return false
		}
	}

	return true
}

// -----------------------------------------------------------------------------

// OptionalType marks a type expression as nilable.
type OptionalType struct {
	Inner TypeExpr
}

func (ot *OptionalType) Repr() string {
	return ot.Inner.Repr() + "?"
}

func (ot *OptionalType) equals(other TypeExpr) bool {
	oot, ok := other.(*OptionalType)
	return ok && Equals(ot.Inner, oot.Inner)
}

// -----------------------------------------------------------------------------

// LeafKind enumerates the type expressions that carry no further structure
// and no embedded type names.
type LeafKind int

const (
	LeafSelf LeafKind = iota
	LeafInstance
	LeafClassSingleton
	LeafBool
	LeafVoid
	LeafUntyped
	LeafNil
)

// LeafType is a nilary type expression: self-types, instance-types,
// class-singleton-types, and the handful of built-in base types.
type LeafType struct {
	Kind LeafKind
}

func (lt LeafType) Repr() string {
	switch lt.Kind {
	case LeafSelf:
		return "self"
	case LeafInstance:
		return "instance"
	case LeafClassSingleton:
		return "class"
	case LeafBool:
		return "bool"
	case LeafVoid:
		return "void"
	case LeafUntyped:
		return "untyped"
	default:
		return "nil"
	}
}

func (lt LeafType) equals(other TypeExpr) bool {
	olt, ok := other.(LeafType)
	return ok && lt.Kind == olt.Kind
}

// LiteralType represents a literal value used as a type (eg. a string or
// integer literal type).
type LiteralType struct {
	Value interface{}
}

func (lt *LiteralType) Repr() string {
	return reprLiteral(lt.Value)
}

func (lt *LiteralType) equals(other TypeExpr) bool {
	olt, ok := other.(*LiteralType)
	return ok && lt.Value == olt.Value
}

func reprLiteral(v interface{}) string {
	switch t := v.(type) {
	case string:
		return "\"" + t + "\""
	default:
		return "literal"
	}
}
