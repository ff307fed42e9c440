package manifest

// The four registration protocols share one shape: resolve identity, create
// if absent, then apply effects. Repeating a call with identical arguments
// returns the same id and changes nothing. There is no update branch besides
// additive union (entity, prefab) or strict equality (component, type).
//
// Side effects applied before a later consistency failure are not rolled
// back; a symbol written before an abort on another check stays written.

// NewEntity resolves or creates a named entity and unions the compiled
// expression into its composition. Safe to call repeatedly to extend the
// composition; it never removes existing components.
//
// A malformed expression returns the resolved entity id alongside the
// recoverable ParseError; the entity keeps its previous composition.
func (w *World) NewEntity(e Identifier, name, expr string) (Identifier, error) {
	result, err := w.lookupWithID(e, name)
	if err != nil {
		return 0, err
	}
	if result == 0 {
		result = w.newID()
		w.setSymbol(result, name)
	}

	info, err := w.typeFromExpr(name, expr)
	if err != nil {
		return result, err
	}

	w.addIDs(result, info.Normalized...)
	return result, nil
}

// NewPrefab is NewEntity with the result marked as a template, excluded
// from normal matching, before the expression-derived type is applied.
func (w *World) NewPrefab(e Identifier, name, expr string) (Identifier, error) {
	result, err := w.lookupWithID(e, name)
	if err != nil {
		return 0, err
	}
	if result == 0 {
		result = w.newID()
		w.setSymbol(result, name)
	}

	w.AddID(result, PrefabTag)

	info, err := w.typeFromExpr(name, expr)
	if err != nil {
		return result, err
	}

	w.addIDs(result, info.Normalized...)
	return result, nil
}

// NewComponent resolves or allocates a component entity from the reserved
// low-id range and attaches its layout metadata. First registration stores
// size and alignment; re-registration must match both exactly, since
// archetype storage already laid out under the old values cannot be
// reinterpreted.
//
// Registration is the one structural mutation allowed while the world is
// locked for iteration, and only when a single execution stage is active;
// the lock is lifted for this call and restored afterwards.
func (w *World) NewComponent(e Identifier, name string, size, alignment int) (Identifier, error) {
	isLocked := w.locked
	if isLocked {
		if w.stageCount > 1 {
			return 0, ConsistencyError{Code: CodeInvalidWhileIterating, Name: name}
		}
		w.locked = false
		defer func() { w.locked = true }()
	}

	result, err := w.lookupWithID(e, name)
	if err != nil {
		return 0, err
	}
	if result == 0 {
		result = w.newComponentID()
		w.setSymbol(result, name)
	}

	rec := w.ensureRecord(result)
	if rec.meta == nil {
		rec.meta = &ComponentMeta{Size: size, Alignment: alignment}
	} else {
		if rec.meta.Size != size {
			return 0, ConsistencyError{Code: CodeInvalidComponentSize, Name: name}
		}
		if rec.meta.Alignment != alignment {
			return 0, ConsistencyError{Code: CodeInvalidComponentSize, Name: name}
		}
	}

	if notify := Config.events.OnComponentModified; notify != nil {
		notify(w, result)
	}

	// An explicit id inside the reserved range moves the allocation
	// watermark past it, so automatic allocation never collides with
	// explicitly numbered components below the threshold.
	if e > w.lastComponentID && e < HiComponentID {
		w.lastComponentID = e + 1
	}

	return result, nil
}

// NewType resolves or creates a type entity and attaches the compiled
// (raw, normalized) pair. Re-registration must produce the exact same pair,
// field by field. The raw type is mapped back to the type entity for
// introspection.
func (w *World) NewType(e Identifier, name, expr string) (Identifier, error) {
	result, err := w.lookupWithID(e, name)
	if err != nil {
		return 0, err
	}
	if result == 0 {
		result, err = w.NewEntity(0, name, "")
		if err != nil {
			return 0, err
		}
	}

	parsed, err := w.typeFromExpr(name, expr)
	if err != nil {
		return result, err
	}

	rec := w.ensureRecord(result)
	if rec.typeInfo == nil {
		attached := parsed
		rec.typeInfo = &attached
	} else {
		if rec.typeInfo.rawTable != parsed.rawTable {
			return 0, ConsistencyError{Code: CodeAlreadyDefined, Name: name}
		}
		if rec.typeInfo.normTable != parsed.normTable {
			return 0, ConsistencyError{Code: CodeAlreadyDefined, Name: name}
		}
	}

	var key uint32
	if parsed.rawTable != nil {
		key = parsed.rawTable.ID()
	}
	w.typeHandles[key] = result

	return result, nil
}
