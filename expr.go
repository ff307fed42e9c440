package manifest

// compileTerm validates one parsed term and appends its role-tagged
// identifier to out. The first rejected term fails the whole compilation.
func (w *World) compileTerm(name, expr string, term Term, out *[]Identifier) error {
	if term.Name != "" {
		return ParseError{Name: name, Expr: expr, Column: term.Column,
			Msg: "column names not supported in type expression"}
	}

	if term.Oper != OperAnd {
		return ParseError{Name: name, Expr: expr, Column: term.Column,
			Msg: "operator other than AND not supported in type expression"}
	}

	id, err := w.resolveTerm(name, expr, term)
	if err != nil {
		return err
	}

	if id == 0 {
		// Deliberate empty term, skipped without being appended.
		return nil
	}

	if term.Source != "" && term.Source != "OWNED" {
		return ParseError{Name: name, Expr: expr, Column: term.Column,
			Msg: "source modifiers not supported for type expressions"}
	}

	if term.Subject != ThisSubject {
		return ParseError{Name: name, Expr: expr, Column: term.Column,
			Msg: "subject other than this not supported in type expression"}
	}

	*out = append(*out, id|term.Role)
	return nil
}

// resolveTerm maps the term's symbolic references to a concrete identifier.
// The empty "0" term resolves to 0.
func (w *World) resolveTerm(name, expr string, term Term) (Identifier, error) {
	if term.Pred == "0" {
		return 0, nil
	}

	pred := w.Lookup(w.nameFromSymbol(term.Pred))
	if pred == 0 {
		return 0, ParseError{Name: name, Expr: expr, Column: term.Column,
			Msg: "unresolved identifier " + term.Pred}
	}

	if term.Object == "" {
		return pred, nil
	}

	object := w.Lookup(w.nameFromSymbol(term.Object))
	if object == 0 {
		return 0, ParseError{Name: name, Expr: expr, Column: term.Column,
			Msg: "unresolved identifier " + term.Object}
	}
	return Pair(pred, object), nil
}

// compileExpr turns an expression into an ordered identifier sequence.
func (w *World) compileExpr(name, expr string) ([]Identifier, error) {
	terms, err := parseExpr(name, expr)
	if err != nil {
		return nil, err
	}

	ids := make([]Identifier, 0, len(terms))
	for _, term := range terms {
		if err := w.compileTerm(name, expr, term, &ids); err != nil {
			return nil, err
		}
	}
	return ids, nil
}
