// Package loader supplies a trivial in-memory implementation of
// env.Loader, the external collaborator interface the declaration
// environment consumes to populate itself, for tests and for
// cmd/sigtool's fixture mode.
//
// The parser and any on-disk loader (tree-walking a source tree, a
// signature-file bundle, etc.) are out of scope: the interface itself is
// declared in package env.
package loader

import (
	"github.com/aki19035vc/rbs/ast"
	"github.com/aki19035vc/rbs/env"
)

// Static is an in-memory Loader backed by a fixed slice of top-level
// declarations, each pushed into the environment in order via Insert. It
// satisfies env.Loader structurally, with no explicit interface
// assertion needed.
type Static struct {
	Decls []ast.Decl
}

// NewStatic returns a Static loader over decls.
func NewStatic(decls ...ast.Decl) *Static {
	return &Static{Decls: decls}
}

// Load pushes every declaration into e, in order, stopping at the first
// insertion failure.
func (s *Static) Load(e *env.Environment) error {
	for _, d := range s.Decls {
		if err := e.Insert(d); err != nil {
			return err
		}
	}

	return nil
}
