package env

import (
	"fmt"

	"github.com/aki19035vc/rbs/ast"
	"github.com/aki19035vc/rbs/typing"
)

// DuplicatedDeclarationError reports that a name was inserted more than
// once in a way §4.1 forbids. NewDecl is the declaration whose insertion
// triggered the error; Existing is every declaration already on file
// under Name (one for single-fragment entries, the fragment list's
// declarations for multi-fragment ones).
type DuplicatedDeclarationError struct {
	Name     typing.TypeName
	NewDecl  ast.Decl
	Existing []ast.Decl
}

func (e *DuplicatedDeclarationError) Error() string {
	return fmt.Sprintf("duplicated declaration: %s already declared (%d prior declaration(s))", e.Name, len(e.Existing))
}

// GenericParameterMismatchError reports that a later fragment of a
// multi-fragment class/module entry disagrees with the first-inserted
// fragment's type-parameter list.
type GenericParameterMismatchError struct {
	Name      typing.TypeName
	Fragment  ast.Decl
}

func (e *GenericParameterMismatchError) Error() string {
	return fmt.Sprintf("generic parameter mismatch in fragment of %s", e.Name)
}

// CyclicClassAliasDefinitionError reports that alias normalization (§4.4)
// found a cycle. Entry is the alias entry at which the cycle closed.
type CyclicClassAliasDefinitionError struct {
	Entry *AliasEntry
}

func (e *CyclicClassAliasDefinitionError) Error() string {
	return fmt.Sprintf("cyclic class/module alias definition involving %s", e.Entry.Name)
}

// InternalError reports a programmer misuse of the environment -- a
// precondition violated by the caller, not a property of the input
// declarations. It is still returned as an error value, never panicked,
// except where Go itself would panic on an invalid type assertion the
// caller forced (which this package avoids).
type InternalError struct {
	Msg string
}

func (e *InternalError) Error() string {
	return "internal error: " + e.Msg
}

func internalf(format string, args ...interface{}) *InternalError {
	return &InternalError{Msg: fmt.Sprintf(format, args...)}
}
