package fern

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func scanTokens(t *testing.T, src string) []Token {
	t.Helper()
	tokens, err := NewLexer(src).Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	return tokens
}

func tokenTypes(tokens []Token) []TokenType {
	types := make([]TokenType, 0, len(tokens))
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}
	return types
}

func TestLexerScansStatementTokens(t *testing.T) {
	src := `let count = 10;
fn add(a, b) {
	return a + b;
}`
	want := []TokenType{
		tokenLet, tokenIdent, tokenAssign, tokenNumber, tokenSemicolon,
		tokenFn, tokenIdent, tokenLParen, tokenIdent, tokenComma, tokenIdent, tokenRParen, tokenLBrace,
		tokenReturn, tokenIdent, tokenPlus, tokenIdent, tokenSemicolon,
		tokenRBrace,
		tokenEOF,
	}

	got := tokenTypes(scanTokens(t, src))
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("token types mismatch\nwant: %v\ngot:  %v", want, got)
	}
}

func TestLexerKeywordTable(t *testing.T) {
	src := "loop if elif else true false break return import pub fn and or let"
	want := []TokenType{
		tokenLoop, tokenIf, tokenElif, tokenElse, tokenTrue, tokenFalse,
		tokenBreak, tokenReturn, tokenImport, tokenPub, tokenFn,
		tokenAnd, tokenOr, tokenLet, tokenEOF,
	}

	got := tokenTypes(scanTokens(t, src))
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("keyword types mismatch\nwant: %v\ngot:  %v", want, got)
	}
}

func TestLexerKeywordPrefixIsIdentifier(t *testing.T) {
	tokens := scanTokens(t, "letter loops _if fn2")
	for i, tok := range tokens[:4] {
		if tok.Type != tokenIdent {
			t.Fatalf("token %d: expected identifier, got %s (%q)", i, tok.Type, tok.Literal)
		}
	}
}

func TestLexerTwoCharOperatorsAndFallbacks(t *testing.T) {
	src := "== = <= < >= >"
	want := []TokenType{tokenEQ, tokenAssign, tokenLTE, tokenLT, tokenGTE, tokenGT, tokenEOF}

	got := tokenTypes(scanTokens(t, src))
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("operator types mismatch\nwant: %v\ngot:  %v", want, got)
	}
}

func TestLexerStreamEndsInExactlyOneEOF(t *testing.T) {
	for _, src := range []string{"", "   ", "# only a comment", "let x = 1;", "a b c"} {
		tokens := scanTokens(t, src)
		if len(tokens) == 0 {
			t.Fatalf("%q: empty token stream", src)
		}
		count := 0
		for _, tok := range tokens {
			if tok.Type == tokenEOF {
				count++
			}
		}
		if count != 1 || tokens[len(tokens)-1].Type != tokenEOF {
			t.Fatalf("%q: expected exactly one trailing EOF, got %v", src, tokenTypes(tokens))
		}
	}
}

func TestLexerIsDeterministic(t *testing.T) {
	src := "let x = 1 + 2; # trailing comment\nfn f() { return \"s\"; }"
	first := scanTokens(t, src)
	second := scanTokens(t, src)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("re-lexing produced a different stream\nfirst:  %v\nsecond: %v", first, second)
	}
}

func TestLexerLineNumbers(t *testing.T) {
	src := "let a = 1;\n# comment line\nlet b = 2;\n\nlet c = 3;"
	tokens := scanTokens(t, src)

	wantLines := map[string]int{"a": 1, "b": 3, "c": 5}
	for _, tok := range tokens {
		if tok.Type != tokenIdent {
			continue
		}
		if want := wantLines[tok.Literal]; tok.Line != want {
			t.Fatalf("identifier %q: expected line %d, got %d", tok.Literal, want, tok.Line)
		}
	}
}

func TestLexerStringEscapes(t *testing.T) {
	tokens := scanTokens(t, `"a\"b\nc\\d"`)
	if tokens[0].Type != tokenString {
		t.Fatalf("expected string token, got %s", tokens[0].Type)
	}
	if want := "a\"b\nc\\d"; tokens[0].Literal != want {
		t.Fatalf("unescaped literal mismatch: want %q, got %q", want, tokens[0].Literal)
	}
}

func TestLexerStringSpansLinesKeepsStartLine(t *testing.T) {
	tokens := scanTokens(t, "\n\"first\nsecond\" x")
	if tokens[0].Type != tokenString || tokens[0].Line != 2 {
		t.Fatalf("expected string starting on line 2, got %s on line %d", tokens[0].Type, tokens[0].Line)
	}
	if tokens[1].Type != tokenIdent || tokens[1].Line != 3 {
		t.Fatalf("expected identifier on line 3, got %s on line %d", tokens[1].Type, tokens[1].Line)
	}
}

func TestLexerNumberLiterals(t *testing.T) {
	tokens := scanTokens(t, "42 1.5 0.25")
	for i, want := range []string{"42", "1.5", "0.25"} {
		if tokens[i].Type != tokenNumber || tokens[i].Literal != want {
			t.Fatalf("token %d: expected number %q, got %s (%q)", i, want, tokens[i].Type, tokens[i].Literal)
		}
	}
}

func TestLexerMinusIsAlwaysBinarySubtraction(t *testing.T) {
	tokens := scanTokens(t, "-7")
	want := []TokenType{tokenMinus, tokenNumber, tokenEOF}
	if got := tokenTypes(tokens); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestLexerErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
		msg  string
	}{
		{"second dot in number", "1.2.3;", 1, "malformed number"},
		{"unknown character", "let x = $;", 1, "unknown character"},
		{"unknown character line", "let x = 1;\nlet y = $;", 2, "unknown character"},
		{"invalid escape", `"a\tb"`, 1, "invalid escape"},
		{"unterminated string", `"abc`, 1, "unterminated string"},
		{"backslash at end of input", `"abc\`, 1, "unterminated string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLexer(tt.src).Scan()
			if err == nil {
				t.Fatalf("expected lexical error")
			}
			var lexErr *LexError
			if !errors.As(err, &lexErr) {
				t.Fatalf("expected *LexError, got %T", err)
			}
			if lexErr.Line != tt.line {
				t.Fatalf("expected line %d, got %d", tt.line, lexErr.Line)
			}
			if !strings.Contains(lexErr.Msg, tt.msg) {
				t.Fatalf("expected message containing %q, got %q", tt.msg, lexErr.Msg)
			}
		})
	}
}

func TestLexerErrorTruncatesStreamWithoutEOF(t *testing.T) {
	tokens, err := NewLexer("let x $").Scan()
	if err == nil {
		t.Fatalf("expected lexical error")
	}
	want := []TokenType{tokenLet, tokenIdent}
	if got := tokenTypes(tokens); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected truncated stream %v, got %v", want, got)
	}
}

func TestLexerCommentsAreNotTokens(t *testing.T) {
	withComment := tokenTypes(scanTokens(t, "1 + # comment\n 2;"))
	withoutComment := tokenTypes(scanTokens(t, "1 +\n2;"))
	if !reflect.DeepEqual(withComment, withoutComment) {
		t.Fatalf("comment changed token stream\nwith:    %v\nwithout: %v", withComment, withoutComment)
	}
}
