package env

import (
	"testing"

	"github.com/aki19035vc/rbs/ast"
	"github.com/aki19035vc/rbs/typing"
)

// TestPrimaryChoosesFragmentWithSuper covers invariant 4: among a class's
// fragments, the one declaring a super class is primary, even when it is
// not the first fragment inserted.
func TestPrimaryChoosesFragmentWithSuper(t *testing.T) {
	e := New()

	plain := newClass("A", nil, nil, nil, nil)
	withSuper := newClass("A", nil, &ast.SuperClass{Name: relName("Base")}, nil, nil)

	mustInsert(t, e, plain)
	mustInsert(t, e, withSuper)

	entry := e.classDecls[relName("A").Absolute().Key()]
	primary, err := entry.Primary()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if primary.Decl != withSuper {
		t.Fatalf("expected the fragment declaring a super class to be primary")
	}

	// Idempotent: a second call returns the same memoized fragment.
	again, err2 := entry.Primary()
	if err2 != nil || again != primary {
		t.Fatalf("expected Primary() to be memoized, got %v, %v", again, err2)
	}
}

// TestPrimaryDefaultsToFirstFragment covers the fallback half of
// invariant 4: with no fragment declaring a super class, the first one
// inserted is primary.
func TestPrimaryDefaultsToFirstFragment(t *testing.T) {
	e := New()

	first := newModule("M", nil, nil, nil)
	second := newModule("M", nil, nil, nil)
	mustInsert(t, e, first)
	mustInsert(t, e, second)

	entry := e.classDecls[relName("M").Absolute().Key()]
	primary, err := entry.Primary()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if primary.Decl != first {
		t.Fatalf("expected the first-inserted fragment to be primary")
	}
}

// TestValidateTypeParamsVarianceMismatch covers §4.2's variance check,
// independent of the length check already covered elsewhere.
func TestValidateTypeParamsVarianceMismatch(t *testing.T) {
	e := New()

	mustInsert(t, e, newClass("Box", []ast.TypeParam{{Name: "T", Variance: ast.Invariant}}, nil, nil, nil))
	mustInsert(t, e, newClass("Box", []ast.TypeParam{{Name: "U", Variance: ast.Covariant}}, nil, nil, nil))

	err := e.ValidateTypeParams()
	if _, ok := err.(*GenericParameterMismatchError); !ok {
		t.Fatalf("expected *GenericParameterMismatchError for a variance mismatch, got %T: %v", err, err)
	}
}

// TestValidateTypeParamsBoundRenamedConsistently covers §4.2's bound
// comparison: two fragments whose type parameters are consistently renamed
// (including in each other's bounds) must validate.
func TestValidateTypeParamsBoundRenamedConsistently(t *testing.T) {
	e := New()

	mustInsert(t, e, newClass("Pair", []ast.TypeParam{
		{Name: "T"},
		{Name: "U", Bound: &typing.TypeParamRef{Name: "T"}},
	}, nil, nil, nil))
	mustInsert(t, e, newClass("Pair", []ast.TypeParam{
		{Name: "A"},
		{Name: "B", Bound: &typing.TypeParamRef{Name: "A"}},
	}, nil, nil, nil))

	if err := e.ValidateTypeParams(); err != nil {
		t.Fatalf("expected consistently-renamed bounds to validate, got %v", err)
	}
}
