package env

import "github.com/aki19035vc/rbs/typing"

// IsInterfaceName reports whether n names an interface entry.
func (e *Environment) IsInterfaceName(n typing.TypeName) bool {
	_, ok := e.interfaceDecls[n.Key()]
	return ok
}

// IsTypeAliasName reports whether n names a type-alias entry.
func (e *Environment) IsTypeAliasName(n typing.TypeName) bool {
	_, ok := e.typeAliasDecls[n.Key()]
	return ok
}

// IsModuleName reports whether n names a class/module entry or a
// class/module alias.
func (e *Environment) IsModuleName(n typing.TypeName) bool {
	key := n.Key()
	if _, ok := e.classDecls[key]; ok {
		return true
	}

	_, ok := e.classAliasDecls[key]
	return ok
}

// IsTypeName reports whether n names an interface, a type alias, or a
// module (class/module entry or alias).
func (e *Environment) IsTypeName(n typing.TypeName) bool {
	return e.IsInterfaceName(n) || e.IsTypeAliasName(n) || e.IsModuleName(n)
}

// IsConstantName reports whether n names a constant entry, or a
// class/module (alias included).
func (e *Environment) IsConstantName(n typing.TypeName) bool {
	if _, ok := e.constantDecls[n.Key()]; ok {
		return true
	}

	return e.IsModuleName(n)
}

// IsClassDecl reports whether the entry at n is specifically a class
// entry (not an alias).
func (e *Environment) IsClassDecl(n typing.TypeName) bool {
	entry, ok := e.classDecls[n.Key()]
	return ok && entry.IsClass()
}

// IsModuleDecl reports whether the entry at n is specifically a module
// entry (not an alias).
func (e *Environment) IsModuleDecl(n typing.TypeName) bool {
	entry, ok := e.classDecls[n.Key()]
	return ok && entry.IsModule()
}

// IsClassAlias reports whether an alias entry of kind class is present at
// n.
func (e *Environment) IsClassAlias(n typing.TypeName) bool {
	entry, ok := e.classAliasDecls[n.Key()]
	return ok && entry.IsClassAlias()
}

// IsModuleAlias reports whether an alias entry of kind module is present
// at n.
func (e *Environment) IsModuleAlias(n typing.TypeName) bool {
	entry, ok := e.classAliasDecls[n.Key()]
	return ok && entry.IsModuleAlias()
}

// ClassEntry returns the class entry or class-alias entry at n, if any.
func (e *Environment) ClassEntry(n typing.TypeName) (Entry, bool) {
	key := n.Key()

	if entry, ok := e.classDecls[key]; ok && entry.IsClass() {
		return entry, true
	}

	if entry, ok := e.classAliasDecls[key]; ok && entry.IsClassAlias() {
		return entry, true
	}

	return nil, false
}

// ModuleEntry returns the module entry or module-alias entry at n, if
// any.
func (e *Environment) ModuleEntry(n typing.TypeName) (Entry, bool) {
	key := n.Key()

	if entry, ok := e.classDecls[key]; ok && entry.IsModule() {
		return entry, true
	}

	if entry, ok := e.classAliasDecls[key]; ok && entry.IsModuleAlias() {
		return entry, true
	}

	return nil, false
}

// ModuleClassEntry returns ClassEntry(n) if present, else ModuleEntry(n).
func (e *Environment) ModuleClassEntry(n typing.TypeName) (Entry, bool) {
	if entry, ok := e.ClassEntry(n); ok {
		return entry, true
	}

	return e.ModuleEntry(n)
}

// ConstantEntry returns ModuleClassEntry(n) if present, else the constant
// entry at n. This is the broad lookup §4.4 step 5 performs while chasing
// aliases: it may land on a class, a module, an alias to either, or a
// constant.
func (e *Environment) ConstantEntry(n typing.TypeName) (Entry, bool) {
	if entry, ok := e.ModuleClassEntry(n); ok {
		return entry, true
	}

	entry, ok := e.constantDecls[n.Key()]
	if !ok {
		return nil, false
	}

	return entry, true
}

// NormalizedClassEntry normalizes n (§4.4) and then looks up the class
// entry at the canonical name. If normalization cannot resolve n to any
// class/module, it returns false with no error. If it resolves but the
// entry found is still an alias -- which should never happen, since
// normalization chases aliases to their end -- it is an internal
// invariant violation.
func (e *Environment) NormalizedClassEntry(n typing.TypeName) (*MultiEntry, bool, error) {
	return e.normalizedEntryOfKind(n, FragClass)
}

// NormalizedModuleEntry is NormalizedClassEntry's module-kind counterpart.
func (e *Environment) NormalizedModuleEntry(n typing.TypeName) (*MultiEntry, bool, error) {
	return e.normalizedEntryOfKind(n, FragModule)
}

// NormalizedModuleClassEntry normalizes n and returns whichever class or
// module entry the canonical name denotes.
func (e *Environment) NormalizedModuleClassEntry(n typing.TypeName) (*MultiEntry, bool, error) {
	canon, ok, err := e.NormalizeModuleName(n)
	if err != nil || !ok {
		return nil, false, err
	}

	entry, ok := e.classDecls[canon.Key()]
	if !ok {
		return nil, false, internalf("normalize_module_name returned %s but no class/module entry exists there", canon)
	}

	return entry, true, nil
}

func (e *Environment) normalizedEntryOfKind(n typing.TypeName, kind FragKind) (*MultiEntry, bool, error) {
	entry, ok, err := e.NormalizedModuleClassEntry(n)
	if err != nil || !ok {
		return nil, false, err
	}

	if entry.FragKind != kind {
		return nil, false, nil
	}

	return entry, true, nil
}
