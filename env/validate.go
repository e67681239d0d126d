package env

import (
	"github.com/aki19035vc/rbs/ast"
	"github.com/aki19035vc/rbs/typing"
)

// Primary returns the entry's primary fragment (invariant 4: the first
// fragment that declares a super class, else the first fragment
// inserted), running validate_type_params against the first-inserted
// fragment as a side effect on first call. Subsequent calls are
// idempotent: they return the memoized fragment and error without
// recomputing.
func (e *MultiEntry) Primary() (*Fragment, error) {
	if e.primaryComputed {
		return e.Fragments[e.primaryIdx], e.primaryErr
	}

	e.primaryComputed = true

	if err := e.validateTypeParams(); err != nil {
		e.primaryErr = err
		e.primaryIdx = 0
		return e.Fragments[0], err
	}

	e.primaryIdx = e.choosePrimaryIndex()
	return e.Fragments[e.primaryIdx], nil
}

func (e *MultiEntry) choosePrimaryIndex() int {
	if e.FragKind == FragClass {
		for i, f := range e.Fragments {
			if cd, ok := f.Decl.(*ast.ClassDecl); ok && cd.Super != nil {
				return i
			}
		}
	}

	return 0
}

// validateTypeParams implements §4.2: every fragment after the first must
// have a type-parameter list equal in length to, and structurally equal
// (modulo a consistent renaming) to, the first fragment's.
func (e *MultiEntry) validateTypeParams() error {
	first := typeParamsOf(e.Fragments[0].Decl)

	for _, f := range e.Fragments[1:] {
		params := typeParamsOf(f.Decl)

		if len(params) != len(first) {
			return &GenericParameterMismatchError{Name: e.Name, Fragment: f.Decl}
		}

		subst := make(map[string]string)
		for i, p := range params {
			fp := first[i]
			subst[p.Name] = fp.Name

			if p.Variance != fp.Variance {
				return &GenericParameterMismatchError{Name: e.Name, Fragment: f.Decl}
			}

			if !equivOptional(p.Bound, fp.Bound, subst) || !equivOptional(p.Default, fp.Default, subst) {
				return &GenericParameterMismatchError{Name: e.Name, Fragment: f.Decl}
			}
		}
	}

	return nil
}

func equivOptional(a, b typing.TypeExpr, subst map[string]string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return typing.EquivWith(a, b, subst)
}

func typeParamsOf(decl ast.Decl) []ast.TypeParam {
	switch d := decl.(type) {
	case *ast.ClassDecl:
		return d.TypeParams
	case *ast.ModuleDecl:
		return d.TypeParams
	default:
		return nil
	}
}

// ValidateTypeParams forces every multi-fragment entry in e to compute its
// primary fragment, transitively validating type-parameter compatibility
// across all of them. It returns the first error encountered, if any.
func (e *Environment) ValidateTypeParams() error {
	for _, entry := range e.classDecls {
		if _, err := entry.Primary(); err != nil {
			return err
		}
	}

	return nil
}
