package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeScript(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.fern")
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func TestRunCLIWithoutArgs(t *testing.T) {
	err := runCLI([]string{"fern"})
	if err == nil {
		t.Fatalf("expected filename error")
	}
	if !strings.Contains(err.Error(), "filename required") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunCLIHelp(t *testing.T) {
	if err := runCLI([]string{"fern", "help"}); err != nil {
		t.Fatalf("runCLI help failed: %v", err)
	}
}

func TestParseCommandPrintsTrees(t *testing.T) {
	path := writeScript(t, "let x = 1;\nf(x);\n")

	var out bytes.Buffer
	if err := parseCommand(path, &out); err != nil {
		t.Fatalf("parseCommand failed: %v", err)
	}

	want := "AST:\n" +
		"└── VarDec(x)\n" +
		"    └── Number(1)\n" +
		"└── FuncCall(f)\n" +
		"    └── Identifier(x)\n"
	if out.String() != want {
		t.Fatalf("unexpected output\nwant:\n%s\ngot:\n%s", want, out.String())
	}
}

func TestParseCommandReportsParseFailure(t *testing.T) {
	path := writeScript(t, "let x = 1;\nf;\n")

	var out bytes.Buffer
	err := parseCommand(path, &out)
	if err == nil {
		t.Fatalf("expected parse failure")
	}
	if got := err.Error(); !strings.Contains(got, `Parsing failed at line 2: UnexpectedToken(";")`) {
		t.Fatalf("unexpected diagnostic: %q", got)
	}
	// Statements before the failure have already been printed.
	if !strings.Contains(out.String(), "VarDec(x)") {
		t.Fatalf("expected partial output before failure, got:\n%s", out.String())
	}
}

func TestParseCommandReportsLexicalFailure(t *testing.T) {
	path := writeScript(t, "let x = 1.2.3;\n")

	var out bytes.Buffer
	err := parseCommand(path, &out)
	if err == nil {
		t.Fatalf("expected lexical failure")
	}
	if got := err.Error(); !strings.Contains(got, "Parsing failed at line 1: malformed number") {
		t.Fatalf("unexpected diagnostic: %q", got)
	}
}

func TestParseCommandReportsKindWithoutPayload(t *testing.T) {
	path := writeScript(t, "let x = 1")

	var out bytes.Buffer
	err := parseCommand(path, &out)
	if err == nil {
		t.Fatalf("expected parse failure")
	}
	if got := err.Error(); !strings.Contains(got, "Parsing failed at line 1: ExpectedSemicolon") {
		t.Fatalf("unexpected diagnostic: %q", got)
	}
}

func TestParseCommandMissingFile(t *testing.T) {
	var out bytes.Buffer
	err := parseCommand(filepath.Join(t.TempDir(), "missing.fern"), &out)
	if err == nil {
		t.Fatalf("expected read error")
	}
	if !strings.Contains(err.Error(), "read script") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTokensCommandDumpsStream(t *testing.T) {
	path := writeScript(t, "let x = 1;\n")

	var out bytes.Buffer
	if err := tokensCommand(path, &out); err != nil {
		t.Fatalf("tokensCommand failed: %v", err)
	}

	for _, want := range []string{"LET", "IDENT", "=", "NUMBER", ";", "EOF"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("token dump missing %q:\n%s", want, out.String())
		}
	}
}

func TestTokensCommandStopsAtLexicalFailure(t *testing.T) {
	path := writeScript(t, "let x = $;\n")

	var out bytes.Buffer
	err := tokensCommand(path, &out)
	if err == nil {
		t.Fatalf("expected lexical failure")
	}
	if strings.Contains(out.String(), "EOF") {
		t.Fatalf("truncated stream must not contain EOF:\n%s", out.String())
	}
}
