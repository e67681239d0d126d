// Package env implements the declaration environment: the in-memory
// symbol table that ingests classes, modules, interfaces, type aliases,
// constants, globals, and class/module aliases organized by hierarchical
// namespace, and exposes lookup, duplicate detection, and alias
// normalization. The resolution pass rewriting relative type-name
// references to absolute form lives in package resolve.
//
// The environment is designed for single-threaded, cooperative use (see
// spec §5): there is no internal locking. Callers needing multi-threaded
// access should freeze the environment after loading and guard the
// normalization memo with a single lock, or populate it eagerly at freeze
// time.
package env

import (
	"github.com/aki19035vc/rbs/ast"
	"github.com/aki19035vc/rbs/logging"
	"github.com/aki19035vc/rbs/typing"
)

// Environment is the declaration environment itself.
type Environment struct {
	classDecls      map[string]*MultiEntry
	interfaceDecls  map[string]*InterfaceEntry
	typeAliasDecls  map[string]*TypeAliasEntry
	constantDecls   map[string]*ConstantEntry
	classAliasDecls map[string]*AliasEntry
	globalDecls     map[string]*GlobalEntry

	// declarations is every top-level declaration pushed via Insert, in
	// insertion order -- the source list buffers_decls and reject walk.
	declarations []ast.Decl

	normMemo map[string]memoValue

	// Logger is the ambient tracer for insertion/normalization/resolution
	// events. It is nil-safe: a nil Logger (the zero value's default) is
	// silent.
	Logger *logging.Logger
}

// Loader is the external collaborator that feeds declarations into an
// Environment. Declared here (rather than imported from package loader)
// so that env has no dependency on loader -- any type with a matching
// Load method, including loader.Static, satisfies this interface
// structurally.
type Loader interface {
	Load(*Environment) error
}

// New returns an empty environment.
func New() *Environment {
	return &Environment{
		classDecls:      make(map[string]*MultiEntry),
		interfaceDecls:  make(map[string]*InterfaceEntry),
		typeAliasDecls:  make(map[string]*TypeAliasEntry),
		constantDecls:   make(map[string]*ConstantEntry),
		classAliasDecls: make(map[string]*AliasEntry),
		globalDecls:     make(map[string]*GlobalEntry),
		normMemo:        make(map[string]memoValue),
	}
}

// FromLoader builds an environment by running l against a fresh empty
// one. Insertion failures from the loader propagate as the error, and the
// partially populated environment is not returned (the result is nil).
func FromLoader(l Loader) (*Environment, error) {
	e := New()
	if err := l.Load(e); err != nil {
		return nil, err
	}

	return e, nil
}

// Copy returns a structural duplicate of e: the kind tables and
// declaration list are duplicated shallowly (new maps and slices), but
// fragments, entries, and declarations themselves are shared between e
// and the copy. The normalization memo is duplicated too, since it is
// pure cached computation and sharing it would let concurrent
// normalization on the two copies race on map writes.
func (e *Environment) Copy() *Environment {
	cp := &Environment{
		classDecls:      make(map[string]*MultiEntry, len(e.classDecls)),
		interfaceDecls:  make(map[string]*InterfaceEntry, len(e.interfaceDecls)),
		typeAliasDecls:  make(map[string]*TypeAliasEntry, len(e.typeAliasDecls)),
		constantDecls:   make(map[string]*ConstantEntry, len(e.constantDecls)),
		classAliasDecls: make(map[string]*AliasEntry, len(e.classAliasDecls)),
		globalDecls:     make(map[string]*GlobalEntry, len(e.globalDecls)),
		declarations:    make([]ast.Decl, len(e.declarations)),
		normMemo:        make(map[string]memoValue, len(e.normMemo)),
		Logger:          e.Logger,
	}

	for k, v := range e.classDecls {
		cp.classDecls[k] = v
	}
	for k, v := range e.interfaceDecls {
		cp.interfaceDecls[k] = v
	}
	for k, v := range e.typeAliasDecls {
		cp.typeAliasDecls[k] = v
	}
	for k, v := range e.constantDecls {
		cp.constantDecls[k] = v
	}
	for k, v := range e.classAliasDecls {
		cp.classAliasDecls[k] = v
	}
	for k, v := range e.globalDecls {
		cp.globalDecls[k] = v
	}
	for k, v := range e.normMemo {
		cp.normMemo[k] = v
	}

	copy(cp.declarations, e.declarations)

	return cp
}

// Insert pushes decl into the top-level declaration list and inserts it
// recursively starting at the root namespace. This is the environment's
// only mutator.
func (e *Environment) Insert(decl ast.Decl) error {
	if err := e.insert(decl, nil, typing.RootNamespace); err != nil {
		return err
	}

	e.declarations = append(e.declarations, decl)
	return nil
}

// Declarations returns the top-level declarations pushed so far, in
// insertion order. The returned slice must not be mutated by callers.
func (e *Environment) Declarations() []ast.Decl {
	return e.declarations
}

func (e *Environment) trace(format string, args ...interface{}) {
	if e.Logger != nil {
		e.Logger.Trace(format, args...)
	}
}
