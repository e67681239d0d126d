package context

import (
	"testing"

	"github.com/aki19035vc/rbs/typing"
)

type namedStub struct {
	name typing.TypeName
}

func (n namedStub) Name() typing.TypeName { return n.name }

func relClassModule(name string) namedStub {
	return namedStub{name: typing.TypeName{Name: name, Kind: typing.KindClassModule}}
}

func TestCalculateEmptyIsRoot(t *testing.T) {
	if ctx := Calculate(nil); ctx != nil {
		t.Fatalf("expected an empty sequence to yield the root context, got %+v", ctx)
	}
}

func TestCalculateNestsOuterToInner(t *testing.T) {
	ctx := Calculate([]Named{relClassModule("A"), relClassModule("B")})
	if ctx == nil {
		t.Fatalf("expected a non-nil context")
	}

	if ctx.Name.String() != "::A::B" {
		t.Fatalf("expected innermost name ::A::B, got %s", ctx.Name.String())
	}
	if ctx.Parent == nil || ctx.Parent.Name.String() != "::A" {
		t.Fatalf("expected parent name ::A, got %+v", ctx.Parent)
	}
	if ctx.Parent.Parent != nil {
		t.Fatalf("expected the outermost frame's parent to be nil")
	}
}

func TestAppendMatchesCalculate(t *testing.T) {
	viaCalculate := Calculate([]Named{relClassModule("A"), relClassModule("B")})

	viaAppend := Append(Calculate([]Named{relClassModule("A")}), relClassModule("B"))

	if viaAppend.Name.String() != viaCalculate.Name.String() {
		t.Fatalf("expected Append to agree with Calculate, got %s vs %s",
			viaAppend.Name.String(), viaCalculate.Name.String())
	}
}

func TestAppendNameSkipsCoercion(t *testing.T) {
	outer := Calculate([]Named{relClassModule("A")})

	absName := typing.TypeName{Namespace: typing.Namespace{Path: []string{"A"}, Absolute: true}, Name: "B", Kind: typing.KindClassModule}
	inner := AppendName(outer, absName)

	if !inner.Name.Equal(absName) {
		t.Fatalf("expected AppendName to store the given absolute name verbatim, got %+v", inner.Name)
	}
	if inner.Parent != outer {
		t.Fatalf("expected AppendName to chain onto the given parent")
	}
}
