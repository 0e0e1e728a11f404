package fern

import "fmt"

// ParseErrorKind names the four parse failure categories.
type ParseErrorKind int

const (
	UnexpectedToken ParseErrorKind = iota
	UnterminatedBlock
	ExpectedSemicolon
	ExpectedToken
)

func (k ParseErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "UnexpectedToken"
	case UnterminatedBlock:
		return "UnterminatedBlock"
	case ExpectedSemicolon:
		return "ExpectedSemicolon"
	case ExpectedToken:
		return "ExpectedToken"
	default:
		return "ParseError"
	}
}

// ParseError is a fatal, line-tagged parse failure. Text holds the
// offending token for UnexpectedToken and the expected lexeme for
// ExpectedToken; it is empty for the other kinds.
type ParseError struct {
	Kind ParseErrorKind
	Text string
	Line int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d: %s", e.Line, e.Reason())
}

// Reason describes the failure without the line prefix, for callers
// that format their own diagnostics.
func (e *ParseError) Reason() string {
	switch e.Kind {
	case UnexpectedToken:
		return fmt.Sprintf("unexpected token %q", e.Text)
	case UnterminatedBlock:
		return "unterminated block"
	case ExpectedSemicolon:
		return "expected ';'"
	case ExpectedToken:
		return fmt.Sprintf("expected %s", e.Text)
	default:
		return "parse error"
	}
}

func (p *Parser) errUnexpected(tok Token) *ParseError {
	return &ParseError{Kind: UnexpectedToken, Text: tok.Literal, Line: tok.Line}
}

func (p *Parser) errExpected(expected string, line int) *ParseError {
	return &ParseError{Kind: ExpectedToken, Text: expected, Line: line}
}

// errEndOfInput reports stream exhaustion: either a lexical error
// truncated the token sequence before its EOF marker, or the grammar
// demanded a token past it.
func (p *Parser) errEndOfInput() *ParseError {
	line := 0
	if n := len(p.tokens); n > 0 {
		line = p.tokens[n-1].Line
	}
	return &ParseError{Kind: UnexpectedToken, Text: "unexpected end of input", Line: line}
}
