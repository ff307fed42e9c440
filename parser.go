package manifest

// Type expression grammar, comma-separated terms:
//
//	term   := [alias '='] [oper] body
//	oper   := '!' | '?'
//	body   := '0' | [source ':'] [role '|'] ref
//	ref    := ident ['(' ident [',' ident] ')'] | '(' ident ',' ident ')'
//
// "0" is the deliberate empty term. A role word must be AND. A ref with an
// argument list names an explicit subject (and optionally a pair object);
// the bare pair form '(Rel, Obj)' keeps the implicit subject.

// ThisSubject is the implicit query variable terms apply to by default.
const ThisSubject = "This"

// Oper is a term's operator. Only OperAnd survives compilation here; the
// others exist so malformed expressions are reported, not silently accepted.
type Oper int

const (
	OperAnd Oper = iota
	OperNot
	OperOptional
)

// Term is one parsed element of a type expression.
type Term struct {
	Name    string // column alias, unsupported in type expressions
	Source  string // source modifier; empty or "OWNED" means owned
	Oper    Oper
	Role    Identifier
	Pred    string // predicate symbol, "0" for the empty term
	Subject string
	Object  string // pair object symbol, empty when not a pair
	Column  int    // 1-based start of the term in the expression
}

type exprScanner struct {
	name string
	expr string
	pos  int
}

func parseExpr(name, expr string) ([]Term, error) {
	s := &exprScanner{name: name, expr: expr}
	s.skipSpace()
	if s.eof() {
		return nil, nil
	}

	var terms []Term
	for {
		term, err := s.parseTerm()
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)

		s.skipSpace()
		if s.eof() {
			return terms, nil
		}
		if s.peek() != ',' {
			return nil, s.errorf("expected , or end of expression")
		}
		s.pos++
	}
}

func (s *exprScanner) parseTerm() (Term, error) {
	s.skipSpace()
	term := Term{Subject: ThisSubject, Column: s.pos + 1}

	switch s.peek() {
	case '!':
		term.Oper = OperNot
		s.pos++
		s.skipSpace()
	case '?':
		term.Oper = OperOptional
		s.pos++
		s.skipSpace()
	}

	if s.peek() == '(' {
		return term, s.parsePair(&term)
	}
	if s.peek() == '0' {
		s.pos++
		term.Pred = "0"
		return term, nil
	}

	ident, err := s.scanIdent()
	if err != nil {
		return term, err
	}
	s.skipSpace()

	if s.peek() == '=' {
		term.Name = ident
		s.pos++
		s.skipSpace()
		if s.peek() == '(' {
			return term, s.parsePair(&term)
		}
		if ident, err = s.scanIdent(); err != nil {
			return term, err
		}
		s.skipSpace()
	}

	if s.peek() == ':' {
		term.Source = ident
		s.pos++
		s.skipSpace()
		if s.peek() == '(' {
			return term, s.parsePair(&term)
		}
		if ident, err = s.scanIdent(); err != nil {
			return term, err
		}
		s.skipSpace()
	}

	if s.peek() == '|' {
		if ident != "AND" {
			return term, s.errorf("invalid role in type expression")
		}
		term.Role = RoleAnd
		s.pos++
		s.skipSpace()
		if ident, err = s.scanIdent(); err != nil {
			return term, err
		}
		s.skipSpace()
	}

	term.Pred = ident

	if s.peek() == '(' {
		if err := s.parseArgs(&term); err != nil {
			return term, err
		}
	}
	return term, nil
}

// parsePair reads the bare '(Rel, Obj)' form.
func (s *exprScanner) parsePair(term *Term) error {
	s.pos++ // '('
	s.skipSpace()
	rel, err := s.scanIdent()
	if err != nil {
		return err
	}
	s.skipSpace()
	if s.peek() != ',' {
		return s.errorf("expected , in pair")
	}
	s.pos++
	s.skipSpace()
	obj, err := s.scanIdent()
	if err != nil {
		return err
	}
	s.skipSpace()
	if s.peek() != ')' {
		return s.errorf("expected ) in pair")
	}
	s.pos++
	term.Pred = rel
	term.Object = obj
	return nil
}

// parseArgs reads 'Pred(Subject)' or 'Pred(Subject, Obj)' argument lists.
func (s *exprScanner) parseArgs(term *Term) error {
	s.pos++ // '('
	s.skipSpace()
	subject, err := s.scanIdent()
	if err != nil {
		return err
	}
	term.Subject = subject
	s.skipSpace()
	if s.peek() == ',' {
		s.pos++
		s.skipSpace()
		obj, err := s.scanIdent()
		if err != nil {
			return err
		}
		term.Object = obj
		s.skipSpace()
	}
	if s.peek() != ')' {
		return s.errorf("expected ) after arguments")
	}
	s.pos++
	return nil
}

func (s *exprScanner) scanIdent() (string, error) {
	start := s.pos
	for !s.eof() && isIdentChar(s.expr[s.pos], s.pos > start) {
		s.pos++
	}
	if s.pos == start {
		return "", s.errorf("expected identifier")
	}
	return s.expr[start:s.pos], nil
}

func isIdentChar(c byte, interior bool) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_', c == '$', c == '.':
		return true
	case c >= '0' && c <= '9':
		return interior
	}
	return false
}

func (s *exprScanner) skipSpace() {
	for !s.eof() {
		switch s.expr[s.pos] {
		case ' ', '\t', '\n', '\r':
			s.pos++
		default:
			return
		}
	}
}

func (s *exprScanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.expr[s.pos]
}

func (s *exprScanner) eof() bool {
	return s.pos >= len(s.expr)
}

func (s *exprScanner) errorf(msg string) error {
	return ParseError{Name: s.name, Expr: s.expr, Column: s.pos + 1, Msg: msg}
}
