package ast

import "github.com/aki19035vc/rbs/typing"

// Variance tags a TypeParam's declared variance.
type Variance int

const (
	Invariant Variance = iota
	Covariant
	Contravariant
)

func (v Variance) String() string {
	switch v {
	case Covariant:
		return "out"
	case Contravariant:
		return "in"
	default:
		return ""
	}
}

// TypeParam is a single type parameter of a class, module, interface,
// type-alias, or method overload. Bound and Default are nil when absent.
//
// Two TypeParams compare compatible, per §4.2, when their Variance, Bound,
// and Default agree after renaming one side's parameter names to the
// other's -- see typing.Equiv.
type TypeParam struct {
	Name     string
	Variance Variance
	Bound    typing.TypeExpr
	Default  typing.TypeExpr
}
