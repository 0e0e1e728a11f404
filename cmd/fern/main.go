package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fernlang/fern/fern"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	if len(args) < 2 {
		printUsage()
		return errors.New("filename required")
	}
	switch args[1] {
	case "repl":
		return runREPL()
	case "tokens":
		if len(args) < 3 {
			printUsage()
			return errors.New("filename required")
		}
		return tokensCommand(args[2], os.Stdout)
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return parseCommand(args[1], os.Stdout)
	}
}

// parseCommand lexes and parses the file, printing one tree per
// top-level statement. The first lexical or parse failure stops the
// run; trees parsed before it have already been printed.
func parseCommand(path string, stdout io.Writer) error {
	input, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	tokens, err := fern.NewLexer(string(input)).Scan()
	if err != nil {
		return diagnostic(err)
	}

	p := fern.NewParser(tokens)
	fmt.Fprintln(stdout, "AST:")
	for !p.AtEnd() {
		stmt, err := p.ParseStatement()
		if err != nil {
			return diagnostic(err)
		}
		if _, done := stmt.(*fern.EOF); done {
			break
		}
		fmt.Fprint(stdout, fern.FormatTree(stmt))
	}
	return nil
}

func tokensCommand(path string, stdout io.Writer) error {
	input, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	tokens, err := fern.NewLexer(string(input)).Scan()
	for _, tok := range tokens {
		fmt.Fprintf(stdout, "%4d  %-8s %q\n", tok.Line, tok.Type, tok.Literal)
	}
	if err != nil {
		return diagnostic(err)
	}
	return nil
}

// diagnostic rewraps frontend failures into the driver's reporting
// format: "Parsing failed at line {line}: {kind}". Parse failures name
// the failure kind, with the offending or expected lexeme when the
// kind carries one.
func diagnostic(err error) error {
	var lexErr *fern.LexError
	if errors.As(err, &lexErr) {
		return fmt.Errorf("Parsing failed at line %d: %s", lexErr.Line, lexErr.Msg)
	}
	var parseErr *fern.ParseError
	if errors.As(err, &parseErr) {
		if parseErr.Text != "" {
			return fmt.Errorf("Parsing failed at line %d: %s(%q)", parseErr.Line, parseErr.Kind, parseErr.Text)
		}
		return fmt.Errorf("Parsing failed at line %d: %s", parseErr.Line, parseErr.Kind)
	}
	return err
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s <script>\n", prog)
	fmt.Fprintf(os.Stderr, "       %s tokens <script>\n", prog)
	fmt.Fprintf(os.Stderr, "       %s repl\n", prog)
}
