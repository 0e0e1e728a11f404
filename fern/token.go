package fern

// TokenType identifies the lexical category of a token.
type TokenType string

const (
	tokenEOF TokenType = "EOF"

	tokenIdent  TokenType = "IDENT"
	tokenNumber TokenType = "NUMBER"
	tokenString TokenType = "STRING"

	tokenAssign   TokenType = "="
	tokenPlus     TokenType = "+"
	tokenMinus    TokenType = "-"
	tokenAsterisk TokenType = "*"
	tokenSlash    TokenType = "/"
	tokenPercent  TokenType = "%"
	tokenLT       TokenType = "<"
	tokenGT       TokenType = ">"
	tokenLTE      TokenType = "<="
	tokenGTE      TokenType = ">="
	tokenEQ       TokenType = "=="

	tokenComma     TokenType = ","
	tokenSemicolon TokenType = ";"
	tokenLParen    TokenType = "("
	tokenRParen    TokenType = ")"
	tokenLBrace    TokenType = "{"
	tokenRBrace    TokenType = "}"

	tokenLet    TokenType = "LET"
	tokenFn     TokenType = "FN"
	tokenIf     TokenType = "IF"
	tokenElif   TokenType = "ELIF"
	tokenElse   TokenType = "ELSE"
	tokenLoop   TokenType = "LOOP"
	tokenBreak  TokenType = "BREAK"
	tokenReturn TokenType = "RETURN"
	tokenImport TokenType = "IMPORT"
	tokenPub    TokenType = "PUB"
	tokenAnd    TokenType = "AND"
	tokenOr     TokenType = "OR"
	tokenTrue   TokenType = "TRUE"
	tokenFalse  TokenType = "FALSE"
)

// Token captures lexical information for the parser. Line is 1-based
// and refers to the line the token started on; it is used only for
// diagnostics.
type Token struct {
	Type    TokenType
	Literal string
	Line    int
}

func lookupIdent(ident string) TokenType {
	switch ident {
	case "loop":
		return tokenLoop
	case "if":
		return tokenIf
	case "elif":
		return tokenElif
	case "else":
		return tokenElse
	case "true":
		return tokenTrue
	case "false":
		return tokenFalse
	case "break":
		return tokenBreak
	case "return":
		return tokenReturn
	case "import":
		return tokenImport
	case "pub":
		return tokenPub
	case "fn":
		return tokenFn
	case "and":
		return tokenAnd
	case "or":
		return tokenOr
	case "let":
		return tokenLet
	}
	return tokenIdent
}
