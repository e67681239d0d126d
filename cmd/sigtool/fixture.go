package main

import (
	"github.com/aki19035vc/rbs/ast"
	"github.com/aki19035vc/rbs/typing"
)

// demoDecls builds a small, self-contained declaration set under ns --
// roughly spec scenario 1 (a class referring forward to another by
// relative name) plus a class alias -- so that `sigtool check` has
// something to validate, normalize, and resolve without a real parser on
// hand.
func demoDecls(ns typing.Namespace) []ast.Decl {
	bName := typing.TypeName{Name: "B", Kind: typing.KindClassModule}

	classA := ast.NewClassDecl(
		typing.TypeName{Namespace: ns, Name: "A", Kind: typing.KindClassModule},
		nil, "", nil, nil, nil,
		[]ast.Member{
			&ast.MethodDef{
				Name: "f",
				Kind: ast.MethodInstance,
				Overloads: []ast.Overload{{
					Signature: &typing.ProcType{
						ReturnType: &typing.ClassInstance{Name: bName},
					},
				}},
			},
		},
		nil,
	)

	classB := ast.NewClassDecl(
		typing.TypeName{Namespace: ns, Name: "B", Kind: typing.KindClassModule},
		nil, "", nil, nil, nil, nil, nil,
	)

	aliasC := ast.NewClassAliasDecl(
		typing.TypeName{Namespace: ns, Name: "C", Kind: typing.KindClassModule},
		nil, "", nil,
		typing.TypeName{Namespace: ns, Name: "A", Kind: typing.KindClassModule},
	)

	return []ast.Decl{classA, classB, aliasC}
}
