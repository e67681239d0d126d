package ast

import "github.com/aki19035vc/rbs/typing"

// Member is the parent interface for everything that can appear inside a
// class or module body that is not itself a nested declaration: methods,
// attributes, ivars/cvars, and include/extend/prepend mixins.
type Member interface {
	// memberTag is unexported so Member is only satisfiable from this
	// package; the resolution pass type-switches over the concrete kinds
	// below and falls through to UnknownMember for anything else.
	memberTag()
}

// -----------------------------------------------------------------------------

// MethodKind distinguishes instance, singleton, and singleton-instance
// methods.
type MethodKind int

const (
	MethodInstance MethodKind = iota
	MethodSingleton
	MethodSingletonInstance
)

// Overload is one signature of a (possibly overloaded) method definition.
type Overload struct {
	TypeParams []TypeParam
	Signature  *typing.ProcType
}

// MethodDef is a method definition, possibly carrying more than one
// overload.
type MethodDef struct {
	Name      string
	Kind      MethodKind
	Overloads []Overload
}

func (*MethodDef) memberTag() {}

// -----------------------------------------------------------------------------

// AttrAccess distinguishes reader, writer, and accessor (both) attributes.
type AttrAccess int

const (
	AttrReader AttrAccess = iota
	AttrWriter
	AttrAccessor
)

// AttrDef declares a reader/writer/accessor backed by an instance
// variable.
type AttrDef struct {
	IvarName string
	Access   AttrAccess
	Type     typing.TypeExpr
}

func (*AttrDef) memberTag() {}

// -----------------------------------------------------------------------------

// VarKind distinguishes instance, class, and class-instance variables.
type VarKind int

const (
	VarInstance VarKind = iota
	VarClass
	VarClassInstance
)

// VarDef declares a bare ivar/cvar/civar with a single type.
type VarDef struct {
	Name string
	Kind VarKind
	Type typing.TypeExpr
}

func (*VarDef) memberTag() {}

// -----------------------------------------------------------------------------

// MixinKind distinguishes include, extend, and prepend.
type MixinKind int

const (
	MixinInclude MixinKind = iota
	MixinExtend
	MixinPrepend
)

// MixinDef is an include/extend/prepend directive naming a module (or
// interface) and its type arguments.
type MixinDef struct {
	Kind MixinKind
	Name typing.TypeName
	Args []typing.TypeExpr
}

func (*MixinDef) memberTag() {}

// -----------------------------------------------------------------------------

// UnknownMember wraps a member kind the environment does not otherwise
// recognize. The resolution pass (§4.6) passes these through unchanged;
// Payload is opaque to this package.
type UnknownMember struct {
	Payload interface{}
}

func (*UnknownMember) memberTag() {}
