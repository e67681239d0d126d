package env

import "github.com/aki19035vc/rbs/typing"

// memoState is the three-state-plus-absent normalization memo state,
// modeled on chai's three-color (White/Grey/Black) cycle detection in
// depm/infinite.go: memoPending is the cycle marker (Grey), memoResolved
// and memoUnresolved are both terminal (Black), and a key simply absent
// from the map is "not yet seen" (White).
type memoState int

const (
	memoUnresolved memoState = iota
	memoPending
	memoResolved
)

type memoValue struct {
	state memoState
	name  typing.TypeName
}

// NormalizeModuleName is the partial alias-normalization query (§4.4):
// it returns the canonical absolute class/module name that name denotes
// after chasing aliases, or ok=false if name does not resolve to any
// class/module. name must satisfy IsClassModule(); violating that
// precondition is reported as an InternalError, not a panic.
func (e *Environment) NormalizeModuleName(name typing.TypeName) (typing.TypeName, bool, error) {
	if !name.IsClassModule() {
		return typing.TypeName{}, false, internalf("normalize_module_name: %s is not a class/module name", name)
	}

	return e.normalizeStep(name.Absolute())
}

// NormalizeModuleNameTotal is the total wrapper (§4.4): it returns name
// unchanged when the partial variant cannot resolve it, rather than
// reporting that as a distinct "nothing" outcome. Cycle and internal
// errors still propagate.
func (e *Environment) NormalizeModuleNameTotal(name typing.TypeName) (typing.TypeName, error) {
	resolved, ok, err := e.NormalizeModuleName(name)
	if err != nil {
		return typing.TypeName{}, err
	}

	if !ok {
		return name, nil
	}

	return resolved, nil
}

// normalizeStep is the memoized recursive core of §4.4, operating on an
// already-absolute name.
func (e *Environment) normalizeStep(name typing.TypeName) (typing.TypeName, bool, error) {
	key := name.Key()

	if mv, ok := e.normMemo[key]; ok {
		switch mv.state {
		case memoResolved:
			return mv.name, true, nil
		case memoUnresolved:
			return typing.TypeName{}, false, nil
		default: // memoPending: a cycle has been hit.
			if aliasEntry, ok := e.classAliasDecls[key]; ok {
				return typing.TypeName{}, false, &CyclicClassAliasDefinitionError{Entry: aliasEntry}
			}

			return typing.TypeName{}, false, internalf("pending normalization marker at %s with no alias entry present", name)
		}
	}

	e.normMemo[key] = memoValue{state: memoPending}

	success := false
	defer func() {
		// Any non-success exit -- error or otherwise -- clears the Pending
		// marker rather than leaving it stuck, so that a later, unrelated
		// normalization of the same name is not falsely reported as a
		// cycle. Successful paths below already overwrote the marker with
		// a terminal state before setting success.
		if !success {
			if mv, ok := e.normMemo[key]; ok && mv.state == memoPending {
				delete(e.normMemo, key)
			}
		}
	}()

	entry, ok := e.ConstantEntry(name)
	if !ok {
		e.normMemo[key] = memoValue{state: memoUnresolved}
		success = true
		return typing.TypeName{}, false, nil
	}

	switch v := entry.(type) {
	case *MultiEntry:
		e.normMemo[key] = memoValue{state: memoResolved, name: v.Name}
		success = true
		return v.Name, true, nil

	case *AliasEntry:
		resolved, resolvedOK, err := e.normalizeAliasOldName(v.OldName)
		if err != nil {
			return typing.TypeName{}, false, err
		}

		if resolvedOK {
			e.normMemo[key] = memoValue{state: memoResolved, name: resolved}
		} else {
			e.normMemo[key] = memoValue{state: memoUnresolved}
		}

		success = true
		return resolved, resolvedOK, nil

	case *ConstantEntry:
		return typing.TypeName{}, false, internalf("constant name %s passed where class/module name expected", name)

	default:
		return typing.TypeName{}, false, internalf("unrecognized entry kind at %s", name)
	}
}

// normalizeAliasOldName implements step 5's handling of an alias's
// old_name: if it carries no qualifier, normalize it directly; otherwise
// normalize its qualifying namespace first (greedily, since the
// qualifier may itself be an alias) and rebuild old_name against the
// qualifier's canonical form before recursing.
func (e *Environment) normalizeAliasOldName(old typing.TypeName) (typing.TypeName, bool, error) {
	if old.Namespace.Empty() {
		return e.normalizeStep(old.Absolute())
	}

	parent := old.Namespace.ToTypeName()

	normalizedParentTotal, err := e.NormalizeModuleNameTotal(parent)
	if err != nil {
		return typing.TypeName{}, false, err
	}

	if normalizedParentTotal.Equal(parent) {
		return e.normalizeStep(old.Absolute())
	}

	rebuilt := typing.TypeName{
		Namespace: normalizedParentTotal.ToNamespace(),
		Name:      old.Name,
		Kind:      old.Kind,
	}

	return e.normalizeStep(rebuilt.Absolute())
}
