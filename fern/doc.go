// Package fern implements the frontend of the fern scripting
// language: a pull-based lexer and a recursive descent parser that
// turn source text into an abstract syntax tree.
//
// The grammar, informally:
//
//	program    := statement* EOF
//	statement  := import | vardecl | funcdef | ifelse | loop
//	            | "break" ";" | "return" [expr] ";"
//	            | identifier ( "(" args ")" ";" | "=" expr ";" )
//	            | expr ";"
//	import     := "import" STRING
//	vardecl    := "let" IDENT "=" expr ";"
//	funcdef    := "fn" IDENT "(" [IDENT ("," IDENT)*] ")" block
//	ifelse     := "if" "(" expr ")" block
//	              ("elif" "(" expr ")" block)*
//	              ["else" block]
//	loop       := "loop" "(" expr ")" block
//	block      := "{" statement* "}"
//	expr       := logic
//	logic      := comparison (("and"|"or") comparison)*
//	comparison := arith (("=="|"<"|"<="|">"|">=") arith)*
//	arith      := term (("+"|"-") term)*
//	term       := factor (("*"|"/"|"%") factor)*
//	factor     := NUMBER | STRING | "true" | "false" | IDENT
//	            | IDENT "(" [expr ("," expr)*] ")"
//	            | "(" expr ")"
//
// Comments run from '#' to end of line. Identifiers are ASCII
// letters, digits and underscores. String escapes are limited to
// \" \n \\. There is no unary minus: '-' always lexes as binary
// subtraction and factor has no prefix production, so "-x" is a
// parse failure.
//
// Lexical failures (unknown character, a second '.' in a number, a
// bad escape, an unterminated string) abort scanning; parse failures
// carry the offending line and one of four kinds, and the first one
// aborts the statement being parsed.
package fern
