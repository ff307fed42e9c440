package manifest

// lookupWithID resolves an (explicit id, name) pair to a live entity. It
// never allocates an identifier; creation on miss is the caller's job.
//
// An explicit id unknown to this world is placed under the current scope.
// That covers ids minted elsewhere (another world, a code constant) without
// inventing a name for them. A given name must agree with any name the id
// already carries; if the id is nameless the name is assigned here.
func (w *World) lookupWithID(e Identifier, name string) (Identifier, error) {
	if e != 0 {
		if !w.Exists(e) {
			if scope := w.scope; scope != 0 {
				w.AddPair(e, ChildOf, scope)
			}
		}

		if name != "" {
			existing := w.Name(e)
			if existing != "" && existing != w.nameFromSymbol(name) {
				return 0, ConsistencyError{Code: CodeInconsistentName, Name: name}
			}
			if existing == "" {
				w.setSymbol(e, name)
			}
		}
		return e, nil
	}

	if name == "" {
		// Neither an id nor a name given; not an error.
		return 0, nil
	}
	return w.Lookup(w.nameFromSymbol(name)), nil
}
