package env

import (
	"github.com/aki19035vc/rbs/ast"
	"github.com/aki19035vc/rbs/typing"
)

// relName builds a relative class/module TypeName for use as a
// declaration's own name in these tests -- insertion always reprefixes it
// against the enclosing namespace, which is the root namespace unless a
// test nests declarations explicitly.
func relName(name string) typing.TypeName {
	return typing.TypeName{Name: name, Kind: typing.KindClassModule}
}

func newClass(name string, typeParams []ast.TypeParam, super *ast.SuperClass, members []ast.Member, decls []ast.Decl) *ast.ClassDecl {
	return ast.NewClassDecl(relName(name), nil, "", nil, typeParams, super, members, decls)
}

func newModule(name string, typeParams []ast.TypeParam, members []ast.Member, decls []ast.Decl) *ast.ModuleDecl {
	return ast.NewModuleDecl(relName(name), nil, "", nil, typeParams, nil, members, decls)
}

func newClassAlias(name, oldName string) *ast.ClassAliasDecl {
	return ast.NewClassAliasDecl(relName(name), nil, "", nil, relName(oldName))
}

func newModuleAlias(name, oldName string) *ast.ModuleAliasDecl {
	return ast.NewModuleAliasDecl(relName(name), nil, "", nil, relName(oldName))
}

func newConstant(name string) *ast.ConstantDecl {
	n := typing.TypeName{Name: name, Kind: typing.KindConstant}
	return ast.NewConstantDecl(n, nil, "", nil, nil)
}

func newInterface(name string) *ast.InterfaceDecl {
	n := typing.TypeName{Name: name, Kind: typing.KindInterface}
	return ast.NewInterfaceDecl(n, nil, "", nil, nil, nil)
}

func mustInsert(t testingTB, e *Environment, d ast.Decl) {
	t.Helper()
	if err := e.Insert(d); err != nil {
		t.Fatalf("unexpected insert error for %s: %v", d.Name(), err)
	}
}

// testingTB lets mustInsert accept *testing.T without importing "testing"
// into every call site's signature noise.
type testingTB interface {
	Helper()
	Fatalf(format string, args ...interface{})
}
