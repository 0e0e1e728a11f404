package fern

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// LexError is a fatal scanning failure. No further tokens are produced
// after one is reported.
type LexError struct {
	Line int
	Msg  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lexical error at line %d: %s", e.Line, e.Msg)
}

// Lexer scans fern source text one token at a time. It owns its scan
// position and line counter; callers pull tokens with NextToken or
// materialize the whole stream with Scan.
type Lexer struct {
	input string

	offset int
	width  int

	line int

	ch rune
}

func NewLexer(input string) *Lexer {
	l := &Lexer{input: input, line: 1}
	l.readRune()
	return l
}

func (l *Lexer) readRune() {
	if l.offset >= len(l.input) {
		l.width = 0
		l.ch = 0
		return
	}

	r, w := utf8.DecodeRuneInString(l.input[l.offset:])
	l.width = w
	l.offset += w

	if r == '\n' {
		l.line++
	}

	l.ch = r
}

func (l *Lexer) peekRune() rune {
	if l.offset >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.offset:])
	return r
}

// NextToken produces the next token or a *LexError. Exactly one EOF
// token is produced when the input is exhausted.
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespaceAndComments()

	// The line the token starts on; multi-line string literals keep it.
	line := l.line

	switch l.ch {
	case 0:
		return Token{Type: tokenEOF, Literal: "", Line: line}, nil
	case '+':
		l.readRune()
		return Token{Type: tokenPlus, Literal: "+", Line: line}, nil
	case '-':
		l.readRune()
		return Token{Type: tokenMinus, Literal: "-", Line: line}, nil
	case '*':
		l.readRune()
		return Token{Type: tokenAsterisk, Literal: "*", Line: line}, nil
	case '/':
		l.readRune()
		return Token{Type: tokenSlash, Literal: "/", Line: line}, nil
	case '%':
		l.readRune()
		return Token{Type: tokenPercent, Literal: "%", Line: line}, nil
	case '(':
		l.readRune()
		return Token{Type: tokenLParen, Literal: "(", Line: line}, nil
	case ')':
		l.readRune()
		return Token{Type: tokenRParen, Literal: ")", Line: line}, nil
	case '{':
		l.readRune()
		return Token{Type: tokenLBrace, Literal: "{", Line: line}, nil
	case '}':
		l.readRune()
		return Token{Type: tokenRBrace, Literal: "}", Line: line}, nil
	case ',':
		l.readRune()
		return Token{Type: tokenComma, Literal: ",", Line: line}, nil
	case ';':
		l.readRune()
		return Token{Type: tokenSemicolon, Literal: ";", Line: line}, nil
	case '=':
		l.readRune()
		if l.ch == '=' {
			l.readRune()
			return Token{Type: tokenEQ, Literal: "==", Line: line}, nil
		}
		return Token{Type: tokenAssign, Literal: "=", Line: line}, nil
	case '<':
		l.readRune()
		if l.ch == '=' {
			l.readRune()
			return Token{Type: tokenLTE, Literal: "<=", Line: line}, nil
		}
		return Token{Type: tokenLT, Literal: "<", Line: line}, nil
	case '>':
		l.readRune()
		if l.ch == '=' {
			l.readRune()
			return Token{Type: tokenGTE, Literal: ">=", Line: line}, nil
		}
		return Token{Type: tokenGT, Literal: ">", Line: line}, nil
	case '"':
		literal, err := l.readString(line)
		if err != nil {
			return Token{}, err
		}
		return Token{Type: tokenString, Literal: literal, Line: line}, nil
	}

	switch {
	case isDigit(l.ch):
		literal, err := l.readNumber(line)
		if err != nil {
			return Token{}, err
		}
		return Token{Type: tokenNumber, Literal: literal, Line: line}, nil
	case isIdentStart(l.ch):
		literal := l.readIdentifier()
		return Token{Type: lookupIdent(literal), Literal: literal, Line: line}, nil
	}

	return Token{}, &LexError{Line: line, Msg: fmt.Sprintf("unknown character %q", l.ch)}
}

// Scan materializes the full token sequence. On success the last
// element is the single EOF token. A lexical error truncates the
// sequence: the tokens scanned so far are returned without an EOF
// marker alongside the error.
func (l *Lexer) Scan() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Type == tokenEOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch l.ch {
		case ' ', '\t', '\r', '\n':
			l.readRune()
			continue
		case '#':
			for l.ch != 0 && l.ch != '\n' {
				l.readRune()
			}
			continue
		default:
			return
		}
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.offset - l.width
	for isIdentPart(l.peekRune()) {
		l.readRune()
	}
	literal := l.input[start:l.offset]
	l.readRune()
	return literal
}

func (l *Lexer) readNumber(line int) (string, error) {
	var sb strings.Builder
	hasDot := false

	sb.WriteRune(l.ch)

	for {
		r := l.peekRune()
		switch {
		case r == '.':
			if hasDot {
				return "", &LexError{Line: line, Msg: "malformed number: second '.' in numeric literal"}
			}
			hasDot = true
			l.readRune()
			sb.WriteRune('.')
		case isDigit(r):
			l.readRune()
			sb.WriteRune(r)
		default:
			literal := sb.String()
			l.readRune()
			return literal, nil
		}
	}
}

// readString scans past the opening quote and returns the unescaped
// literal text. Only \" \n \\ are recognized escapes.
func (l *Lexer) readString(line int) (string, error) {
	var sb strings.Builder

	for {
		l.readRune()
		switch l.ch {
		case 0:
			return "", &LexError{Line: line, Msg: "unterminated string literal"}
		case '"':
			l.readRune()
			return sb.String(), nil
		case '\\':
			next := l.peekRune()
			switch next {
			case '"', '\\':
				l.readRune()
				sb.WriteRune(next)
			case 'n':
				l.readRune()
				sb.WriteByte('\n')
			case 0:
				return "", &LexError{Line: line, Msg: "unterminated string literal"}
			default:
				return "", &LexError{Line: line, Msg: fmt.Sprintf("invalid escape sequence \\%c in string literal", next)}
			}
		default:
			sb.WriteRune(l.ch)
		}
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentStart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}
