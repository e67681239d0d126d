package env

import (
	"testing"

	"github.com/aki19035vc/rbs/ast"
)

// TestRejectFalseIsIdentity covers §8's testable property: reject{false}
// produces an environment whose declarations equal the original's.
func TestRejectFalseIsIdentity(t *testing.T) {
	e := New()
	mustInsert(t, e, newClass("A", nil, nil, nil, nil))
	mustInsert(t, e, newModule("M", nil, nil, nil))
	mustInsert(t, e, newClassAlias("Alias", "A"))

	out, err := e.Reject(func(ast.Decl) bool { return false })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.Declarations()
	want := e.Declarations()
	if len(got) != len(want) {
		t.Fatalf("expected %d declarations, got %d", len(want), len(got))
	}
	for i := range want {
		if !got[i].Name().Equal(want[i].Name()) {
			t.Fatalf("declaration %d: expected %s, got %s", i, want[i].Name(), got[i].Name())
		}
	}
}

// TestRejectDropsMatchingAndRevalidates covers the non-trivial half:
// rejecting the first fragment of a multi-fragment class must not leave a
// dangling (half-validated) entry behind -- the remaining fragment is
// re-inserted as if it were the only one.
func TestRejectDropsMatchingAndRevalidates(t *testing.T) {
	e := New()
	first := newModule("M", []ast.TypeParam{{Name: "T"}}, nil, nil)
	second := newModule("M", nil, nil, nil)
	mustInsert(t, e, first)
	mustInsert(t, e, second)

	// Before rejection, the mismatched fragment lists would fail
	// validation.
	if err := e.ValidateTypeParams(); err == nil {
		t.Fatalf("expected the unrejected environment to fail validation")
	}

	out, err := e.Reject(func(d ast.Decl) bool { return d == first })
	if err != nil {
		t.Fatalf("unexpected error rejecting the first fragment: %v", err)
	}

	entry := out.classDecls[relName("M").Absolute().Key()]
	if len(entry.Fragments) != 1 {
		t.Fatalf("expected exactly 1 remaining fragment, got %d", len(entry.Fragments))
	}
	if err := out.ValidateTypeParams(); err != nil {
		t.Fatalf("expected the single remaining fragment to validate on its own, got %v", err)
	}
}

// TestBuffersDecls covers §4.7's grouping, including the documented
// drop-silently behavior for declarations with no location.
func TestBuffersDecls(t *testing.T) {
	e := New()

	buf := &ast.Buffer{Path: "a.rbs"}
	loc := &ast.Location{Buffer: buf}

	located := ast.NewClassDecl(relName("A"), loc, "", nil, nil, nil, nil, nil)
	unlocated := newClass("B", nil, nil, nil, nil)

	mustInsert(t, e, located)
	mustInsert(t, e, unlocated)

	grouped := e.BuffersDecls()
	if len(grouped) != 1 {
		t.Fatalf("expected declarations grouped under exactly 1 buffer, got %d", len(grouped))
	}
	if decls := grouped[buf]; len(decls) != 1 || !decls[0].Name().Equal(located.Name()) {
		t.Fatalf("expected only the located declaration under buf, got %v", decls)
	}

	buffers := e.Buffers()
	if len(buffers) != 1 || buffers[0] != buf {
		t.Fatalf("expected Buffers() to return exactly [buf], got %v", buffers)
	}
}

// TestInspectSizes covers the per-table debug counts.
func TestInspectSizes(t *testing.T) {
	e := New()
	mustInsert(t, e, newClass("A", nil, nil, nil, nil))
	mustInsert(t, e, newModule("M", nil, nil, nil))
	mustInsert(t, e, newInterface("I"))
	mustInsert(t, e, newClassAlias("Alias", "A"))

	sizes := e.Inspect()
	if sizes.Classes != 2 {
		t.Fatalf("expected 2 class/module entries, got %d", sizes.Classes)
	}
	if sizes.Interfaces != 1 {
		t.Fatalf("expected 1 interface entry, got %d", sizes.Interfaces)
	}
	if sizes.ClassAliases != 1 {
		t.Fatalf("expected 1 class-alias entry, got %d", sizes.ClassAliases)
	}
}
