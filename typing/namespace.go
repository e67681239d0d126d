package typing

import "strings"

// Namespace is an ordered sequence of simple identifiers with a
// distinguished root. Equality is structural: two namespaces are equal iff
// they carry the same path and the same absoluteness.
type Namespace struct {
	// Path is the sequence of simple identifiers, outermost first.
	Path []string

	// Absolute indicates the namespace is rooted at the top namespace
	// rather than relative to some (unspecified) enclosing scope.
	Absolute bool
}

// RootNamespace is the empty, absolute namespace -- the top of the
// hierarchy.
var RootNamespace = Namespace{Absolute: true}

// Append returns a new namespace with name appended to the path.
func (ns Namespace) Append(name string) Namespace {
	path := make([]string, len(ns.Path)+1)
	copy(path, ns.Path)
	path[len(ns.Path)] = name
	return Namespace{Path: path, Absolute: ns.Absolute}
}

// AppendPath returns a new namespace with the given path segments appended.
func (ns Namespace) AppendPath(names []string) Namespace {
	if len(names) == 0 {
		return ns
	}

	path := make([]string, len(ns.Path)+len(names))
	copy(path, ns.Path)
	copy(path[len(ns.Path):], names)
	return Namespace{Path: path, Absolute: ns.Absolute}
}

// Prefix returns a new namespace formed by prepending outer in front of ns,
// and the result is always absolute (outer is assumed to already be
// absolute, as is the case everywhere this is used: prefixing a relative
// name's namespace with its enclosing scope's absolute namespace).
func (ns Namespace) Prefix(outer Namespace) Namespace {
	path := make([]string, len(outer.Path)+len(ns.Path))
	copy(path, outer.Path)
	copy(path[len(outer.Path):], ns.Path)
	return Namespace{Path: path, Absolute: true}
}

// Empty reports whether the namespace has no path segments (it may still be
// absolute -- the root namespace is empty and absolute).
func (ns Namespace) Empty() bool {
	return len(ns.Path) == 0
}

// Equal reports structural equality between two namespaces.
func (ns Namespace) Equal(other Namespace) bool {
	if ns.Absolute != other.Absolute || len(ns.Path) != len(other.Path) {
		return false
	}

	for i, seg := range ns.Path {
		if seg != other.Path[i] {
			return false
		}
	}

	return true
}

// ToTypeName splits the last path segment off the namespace, producing the
// TypeName of the class/module that introduces this namespace. It is used
// by alias normalization (spec §4.4) to turn an old_name's qualifier
// namespace back into a name that can itself be normalized. Calling this on
// an empty namespace is a programmer error -- callers must check Empty()
// first.
func (ns Namespace) ToTypeName() TypeName {
	last := ns.Path[len(ns.Path)-1]
	return TypeName{
		Namespace: Namespace{Path: ns.Path[:len(ns.Path)-1], Absolute: ns.Absolute},
		Name:      last,
		Kind:      KindClassModule,
	}
}

// String renders the namespace in "::A::B" / "A::B" form.
func (ns Namespace) String() string {
	if len(ns.Path) == 0 {
		if ns.Absolute {
			return "::"
		}

		return ""
	}

	s := strings.Join(ns.Path, "::")
	if ns.Absolute {
		return "::" + s
	}

	return s
}
