package manifest

import "fmt"

// ErrorCode distinguishes fatal consistency failures. These signal data or
// programmer errors that cannot be continued past, because archetype storage
// laid out under the old definition would reference incompatible layouts.
type ErrorCode int

const (
	CodeInconsistentName ErrorCode = iota + 1
	CodeInvalidComponentSize
	CodeAlreadyDefined
	CodeInvalidWhileIterating
	CodeInvalidParameter
)

func (c ErrorCode) String() string {
	switch c {
	case CodeInconsistentName:
		return "inconsistent name"
	case CodeInvalidComponentSize:
		return "invalid component size"
	case CodeAlreadyDefined:
		return "already defined"
	case CodeInvalidWhileIterating:
		return "invalid while iterating"
	case CodeInvalidParameter:
		return "invalid parameter"
	}
	return "unknown"
}

// ConsistencyError is the fatal tier: the world state contradicts the
// requested registration. The registry never aborts the process itself;
// the embedding runtime decides between exit and unwind.
type ConsistencyError struct {
	Code ErrorCode
	Name string
}

func (e ConsistencyError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("consistency violation: %v", e.Code)
	}
	return fmt.Sprintf("consistency violation: %v (%s)", e.Code, e.Name)
}

// ParseError is the recoverable tier: a malformed type expression. The
// compilation that produced it yields the empty type; callers decide
// whether to propagate.
type ParseError struct {
	Name   string
	Expr   string
	Column int // 1-based
	Msg    string
}

func (e ParseError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s: %s in %q at column %d", e.Name, e.Msg, e.Expr, e.Column)
	}
	return fmt.Sprintf("%s in %q at column %d", e.Msg, e.Expr, e.Column)
}
