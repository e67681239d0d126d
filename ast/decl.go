package ast

import "github.com/aki19035vc/rbs/typing"

// Decl is the parent interface for every top-level and nested declaration
// fragment the environment accepts: Class, Module, Interface, TypeAlias,
// Constant, Global, ClassAlias, and ModuleAlias.
type Decl interface {
	// Name is this declaration's own name, as written at its site of
	// appearance -- absolute or relative, not yet resolved against any
	// enclosing scope.
	Name() typing.TypeName

	// Loc is the declaration's source location, or nil if it was
	// synthesized rather than parsed from text.
	Loc() *Location

	// Comment is the declaration's doc comment, or the empty string.
	Comment() string

	// Annotations is the declaration's annotation map, possibly empty.
	Annotations() map[string]string
}

// declBase is embedded by every concrete Decl to supply the fields common
// to all eight kinds.
type declBase struct {
	name     typing.TypeName
	loc      *Location
	comment  string
	annots   map[string]string
}

func (b *declBase) Name() typing.TypeName          { return b.name }
func (b *declBase) Loc() *Location                 { return b.loc }
func (b *declBase) Comment() string                { return b.comment }
func (b *declBase) Annotations() map[string]string { return b.annots }

func newDeclBase(name typing.TypeName, loc *Location, comment string, annots map[string]string) declBase {
	return declBase{name: name, loc: loc, comment: comment, annots: annots}
}

// -----------------------------------------------------------------------------

// SuperClass is the super-class reference a ClassDecl may carry: a name
// plus its type arguments.
type SuperClass struct {
	Name typing.TypeName
	Args []typing.TypeExpr
}

// ClassDecl is one fragment of a (possibly multi-fragment) class.
type ClassDecl struct {
	declBase

	TypeParams []TypeParam
	Super      *SuperClass // nil if this fragment declares no super class
	Members    []Member
	Decls      []Decl // nested class/module/interface/alias/constant/global
}

// NewClassDecl constructs a class declaration fragment.
func NewClassDecl(name typing.TypeName, loc *Location, comment string, annots map[string]string,
	typeParams []TypeParam, super *SuperClass, members []Member, decls []Decl) *ClassDecl {
	return &ClassDecl{
		declBase:   newDeclBase(name, loc, comment, annots),
		TypeParams: typeParams,
		Super:      super,
		Members:    members,
		Decls:      decls,
	}
}

// SelfType is the optional self-type a ModuleDecl fragment may declare
// (eg. `module M; self_type Comparable[M]; end`).
type SelfType struct {
	Types []typing.TypeExpr
}

// ModuleDecl is one fragment of a (possibly multi-fragment) module.
type ModuleDecl struct {
	declBase

	TypeParams []TypeParam
	Self       *SelfType
	Members    []Member
	Decls      []Decl
}

// NewModuleDecl constructs a module declaration fragment.
func NewModuleDecl(name typing.TypeName, loc *Location, comment string, annots map[string]string,
	typeParams []TypeParam, self *SelfType, members []Member, decls []Decl) *ModuleDecl {
	return &ModuleDecl{
		declBase:   newDeclBase(name, loc, comment, annots),
		TypeParams: typeParams,
		Self:       self,
		Members:    members,
		Decls:      decls,
	}
}

// InterfaceDecl is a single-fragment interface declaration.
type InterfaceDecl struct {
	declBase

	TypeParams []TypeParam
	Members    []Member
}

// NewInterfaceDecl constructs an interface declaration.
func NewInterfaceDecl(name typing.TypeName, loc *Location, comment string, annots map[string]string,
	typeParams []TypeParam, members []Member) *InterfaceDecl {
	return &InterfaceDecl{
		declBase:   newDeclBase(name, loc, comment, annots),
		TypeParams: typeParams,
		Members:    members,
	}
}

// TypeAliasDecl is a single-fragment type-alias declaration.
type TypeAliasDecl struct {
	declBase

	TypeParams []TypeParam
	Type       typing.TypeExpr
}

// NewTypeAliasDecl constructs a type-alias declaration.
func NewTypeAliasDecl(name typing.TypeName, loc *Location, comment string, annots map[string]string,
	typeParams []TypeParam, typ typing.TypeExpr) *TypeAliasDecl {
	return &TypeAliasDecl{
		declBase:   newDeclBase(name, loc, comment, annots),
		TypeParams: typeParams,
		Type:       typ,
	}
}

// ConstantDecl is a single-fragment constant declaration.
type ConstantDecl struct {
	declBase

	Type typing.TypeExpr
}

// NewConstantDecl constructs a constant declaration.
func NewConstantDecl(name typing.TypeName, loc *Location, comment string, annots map[string]string,
	typ typing.TypeExpr) *ConstantDecl {
	return &ConstantDecl{declBase: newDeclBase(name, loc, comment, annots), Type: typ}
}

// GlobalDecl is a single-fragment global-variable declaration. Globals have
// no lexical context -- they are resolved under the None/root context
// regardless of where they textually appear.
type GlobalDecl struct {
	declBase

	Type typing.TypeExpr
}

// NewGlobalDecl constructs a global declaration.
func NewGlobalDecl(name typing.TypeName, loc *Location, comment string, annots map[string]string,
	typ typing.TypeExpr) *GlobalDecl {
	return &GlobalDecl{declBase: newDeclBase(name, loc, comment, annots), Type: typ}
}

// ClassAliasDecl binds a new class name to an existing one (possibly
// through further aliases).
type ClassAliasDecl struct {
	declBase

	OldName typing.TypeName
}

// NewClassAliasDecl constructs a class-alias declaration. name is the
// alias's own (new) name; oldName is the aliased-to name, verbatim, as
// written (it may be relative).
func NewClassAliasDecl(name typing.TypeName, loc *Location, comment string, annots map[string]string,
	oldName typing.TypeName) *ClassAliasDecl {
	return &ClassAliasDecl{declBase: newDeclBase(name, loc, comment, annots), OldName: oldName}
}

// ModuleAliasDecl binds a new module name to an existing one.
type ModuleAliasDecl struct {
	declBase

	OldName typing.TypeName
}

// NewModuleAliasDecl constructs a module-alias declaration.
func NewModuleAliasDecl(name typing.TypeName, loc *Location, comment string, annots map[string]string,
	oldName typing.TypeName) *ModuleAliasDecl {
	return &ModuleAliasDecl{declBase: newDeclBase(name, loc, comment, annots), OldName: oldName}
}
