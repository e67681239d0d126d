package resolve

import (
	"testing"

	"github.com/aki19035vc/rbs/ast"
	"github.com/aki19035vc/rbs/env"
	"github.com/aki19035vc/rbs/typing"
)

func relClassModule(name string) typing.TypeName {
	return typing.TypeName{Name: name, Kind: typing.KindClassModule}
}

// TestResolveSuperOuterMembersInner covers scenario 6: a nested class's
// super-class reference is resolved against its *outer* scope (excluding
// itself), while its members are resolved against its *inner* scope
// (including itself) -- so a name only visible inside the nested class can
// be used by its own members but never by its super-class clause.
func TestResolveSuperOuterMembersInner(t *testing.T) {
	e := env.New()

	base := ast.NewClassDecl(relClassModule("Base"), nil, "", nil, nil, nil, nil, nil)

	helper := ast.NewClassDecl(relClassModule("Helper"), nil, "", nil, nil, nil, nil, nil)

	inner := ast.NewClassDecl(
		relClassModule("Inner"), nil, "", nil, nil,
		&ast.SuperClass{Name: relClassModule("Base")},
		[]ast.Member{
			&ast.MethodDef{
				Name: "make",
				Kind: ast.MethodInstance,
				Overloads: []ast.Overload{{
					Signature: &typing.ProcType{
						ReturnType: &typing.ClassInstance{Name: relClassModule("Helper")},
					},
				}},
			},
		},
		[]ast.Decl{helper},
	)

	outer := ast.NewClassDecl(relClassModule("Outer"), nil, "", nil, nil, nil, nil, []ast.Decl{inner})

	if err := e.Insert(base); err != nil {
		t.Fatalf("unexpected error inserting Base: %v", err)
	}
	if err := e.Insert(outer); err != nil {
		t.Fatalf("unexpected error inserting Outer: %v", err)
	}

	resolved, err := ResolveTypeNames(e, &ContextualResolver{Env: e}, nil)
	if err != nil {
		t.Fatalf("unexpected resolution error: %v", err)
	}

	decls := resolved.Declarations()
	if len(decls) != 2 {
		t.Fatalf("expected 2 top-level declarations, got %d", len(decls))
	}

	resolvedOuter, ok := decls[1].(*ast.ClassDecl)
	if !ok || resolvedOuter.Name().String() != "::Outer" {
		t.Fatalf("expected the second declaration to be resolved Outer, got %+v", decls[1])
	}
	if len(resolvedOuter.Decls) != 1 {
		t.Fatalf("expected Outer to still carry exactly 1 nested declaration")
	}

	resolvedInner, ok := resolvedOuter.Decls[0].(*ast.ClassDecl)
	if !ok {
		t.Fatalf("expected Outer's nested declaration to be a class")
	}

	if resolvedInner.Super == nil || resolvedInner.Super.Name.String() != "::Base" {
		t.Fatalf("expected Inner's super class to resolve to ::Base (outer scope), got %+v", resolvedInner.Super)
	}

	method, ok := resolvedInner.Members[0].(*ast.MethodDef)
	if !ok {
		t.Fatalf("expected Inner's member to still be a method")
	}
	retType, ok := method.Overloads[0].Signature.ReturnType.(*typing.ClassInstance)
	if !ok {
		t.Fatalf("expected a class-instance return type")
	}
	if retType.Name.String() != "::Outer::Inner::Helper" {
		t.Fatalf("expected Inner's member to resolve Helper against its own (inner) scope as ::Outer::Inner::Helper, got %s", retType.Name.String())
	}
}

// TestResolveIsIdempotent covers the round-trip property from the
// idempotence section: resolving an already-fully-resolved environment a
// second time must leave every name unchanged.
func TestResolveIsIdempotent(t *testing.T) {
	e := env.New()
	if err := e.Insert(ast.NewClassDecl(relClassModule("A"), nil, "", nil, nil, nil, nil, nil)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := e.Insert(ast.NewClassDecl(
		relClassModule("B"), nil, "", nil, nil,
		&ast.SuperClass{Name: relClassModule("A")}, nil, nil,
	)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	once, err := ResolveTypeNames(e, &ContextualResolver{Env: e}, nil)
	if err != nil {
		t.Fatalf("unexpected error on first resolution: %v", err)
	}

	twice, err := ResolveTypeNames(once, &ContextualResolver{Env: once}, nil)
	if err != nil {
		t.Fatalf("unexpected error on second resolution: %v", err)
	}

	onceDecls, twiceDecls := once.Declarations(), twice.Declarations()
	if len(onceDecls) != len(twiceDecls) {
		t.Fatalf("expected the same number of declarations across both passes")
	}

	onceB := onceDecls[1].(*ast.ClassDecl)
	twiceB := twiceDecls[1].(*ast.ClassDecl)
	if onceB.Super.Name.String() != twiceB.Super.Name.String() {
		t.Fatalf("expected a second resolution pass to be a no-op, got %s then %s",
			onceB.Super.Name.String(), twiceB.Super.Name.String())
	}
}

// TestResolveOnlyLeavesOthersUnchanged covers the only-filter: top-level
// declarations not present in only pass through Insert unresolved.
func TestResolveOnlyLeavesOthersUnchanged(t *testing.T) {
	e := env.New()
	a := ast.NewClassDecl(relClassModule("A"), nil, "", nil, nil, nil, nil, nil)
	b := ast.NewClassDecl(
		relClassModule("B"), nil, "", nil, nil,
		&ast.SuperClass{Name: relClassModule("A")}, nil, nil,
	)
	if err := e.Insert(a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := e.Insert(b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resolved, err := ResolveTypeNames(e, &ContextualResolver{Env: e}, []ast.Decl{b})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	decls := resolved.Declarations()
	gotA := decls[0].(*ast.ClassDecl)
	gotB := decls[1].(*ast.ClassDecl)

	if gotA.Name().String() != "A" {
		t.Fatalf("expected A to pass through with its original relative name, got %s", gotA.Name().String())
	}
	if gotB.Super.Name.String() != "::A" {
		t.Fatalf("expected B (in only) to still be resolved, got %s", gotB.Super.Name.String())
	}
}
