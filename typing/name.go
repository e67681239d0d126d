package typing

// Kind tags what a TypeName denotes, matching the set of declaration kinds
// the environment keys tables by (spec §3).
type Kind int

const (
	KindClassModule Kind = iota
	KindInterface
	KindAlias
	KindConstant
	KindGlobal
)

func (k Kind) String() string {
	switch k {
	case KindClassModule:
		return "class/module"
	case KindInterface:
		return "interface"
	case KindAlias:
		return "alias"
	case KindConstant:
		return "constant"
	case KindGlobal:
		return "global"
	default:
		return "unknown"
	}
}

// TypeName is a (namespace, simple identifier) pair tagged with the kind of
// declaration it names. It is either absolute (rooted at the top) or
// relative, per its Namespace's Absolute flag.
type TypeName struct {
	Namespace Namespace
	Name      string
	Kind      Kind
}

// IsAbsolute reports whether this name is rooted at the top namespace.
func (tn TypeName) IsAbsolute() bool {
	return tn.Namespace.Absolute
}

// IsClassModule reports whether this name denotes a class or module, which
// gates operations (ToNamespace, normalization) that only make sense for
// such names.
func (tn TypeName) IsClassModule() bool {
	return tn.Kind == KindClassModule
}

// Absolute coerces a relative name to absolute. This is a raw coercion, not
// a resolution: it does not consult any enclosing scope, it simply marks
// the name's namespace as rooted. Calling it on an already-absolute name is
// a no-op.
func (tn TypeName) Absolute() TypeName {
	if tn.Namespace.Absolute {
		return tn
	}

	out := tn
	out.Namespace.Absolute = true
	return out
}

// WithPrefix prepends ns in front of tn's own namespace, producing an
// absolute name. If tn is already absolute it is returned unchanged --
// prefixing an already-rooted name is a no-op, which is what makes the
// resolution pass (§4.6) idempotent on its own output.
func (tn TypeName) WithPrefix(ns Namespace) TypeName {
	if tn.Namespace.Absolute {
		return tn
	}

	out := tn
	out.Namespace = tn.Namespace.Prefix(ns)
	return out
}

// ToNamespace converts a class/module TypeName into the namespace it
// introduces for its members and nested declarations. Calling this on a
// non-class/module name is a programmer error.
func (tn TypeName) ToNamespace() Namespace {
	return tn.Namespace.Append(tn.Name)
}

// Equal reports structural equality, including kind.
func (tn TypeName) Equal(other TypeName) bool {
	return tn.Kind == other.Kind && tn.Name == other.Name && tn.Namespace.Equal(other.Namespace)
}

// Key returns a canonical string suitable for use as a map key. It covers
// the namespace and the simple name but not Kind, so names that differ
// only in Kind share a Key (while Equal still tells them apart); this is
// what lets insertion detect a constant colliding with a class/module or
// alias of the same name.
func (tn TypeName) Key() string {
	return tn.Namespace.String() + "#" + tn.Name
}

// String renders the name in "::A::B::Name" / "A::B::Name" form.
func (tn TypeName) String() string {
	sep := "::"
	if tn.Namespace.Empty() {
		if tn.Namespace.Absolute {
			return "::" + tn.Name
		}

		return tn.Name
	}

	return tn.Namespace.String() + sep + tn.Name
}
