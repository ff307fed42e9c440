package manifest

// nameFromSymbol strips the world's configured prefix from a raw symbol to
// produce the canonical display name. The prefix only matches when followed
// by an uppercase letter or an underscore (which is consumed), so "Foobar"
// with prefix "Foo" stays untouched.
func (w *World) nameFromSymbol(symbol string) string {
	prefix := w.namePrefix
	if symbol == "" || prefix == "" {
		return symbol
	}
	if len(symbol) <= len(prefix) || symbol[:len(prefix)] != prefix {
		return symbol
	}
	next := symbol[len(prefix)]
	switch {
	case next == '_':
		return symbol[len(prefix)+1:]
	case next >= 'A' && next <= 'Z':
		return symbol[len(prefix):]
	}
	return symbol
}

// setSymbol records the raw symbol and its prefix-stripped display name for
// an entity, and indexes the display name. Callers guarantee the entity has
// no name yet; names are set exactly once.
func (w *World) setSymbol(e Identifier, symbol string) {
	if symbol == "" {
		return
	}
	rec := w.ensureRecord(e)
	rec.name = w.nameFromSymbol(symbol)
	rec.symbol = symbol
	w.names[rec.name] = e
}
