package fern

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatTree renders one AST as an indented box-drawing tree. It is a
// pure tree walk: no side effects, deterministic output.
func FormatTree(node Node) string {
	var b strings.Builder
	writeNode(&b, node, "", true)
	return b.String()
}

// FormatProgram renders a sequence of top-level ASTs, one tree per
// statement.
func FormatProgram(nodes []Node) string {
	var b strings.Builder
	for _, node := range nodes {
		writeNode(&b, node, "", true)
	}
	return b.String()
}

func connector(last bool) string {
	if last {
		return "└── "
	}
	return "├── "
}

func childPrefix(prefix string, last bool) string {
	if last {
		return prefix + "    "
	}
	return prefix + "│   "
}

func writeNode(b *strings.Builder, node Node, prefix string, last bool) {
	b.WriteString(prefix)
	b.WriteString(connector(last))

	inner := childPrefix(prefix, last)

	switch n := node.(type) {
	case *EOF:
		b.WriteString("End of file.\n")

	case *Number:
		fmt.Fprintf(b, "Number(%s)\n", strconv.FormatFloat(n.Value, 'f', -1, 64))

	case *Identifier:
		fmt.Fprintf(b, "Identifier(%s)\n", n.Name)

	case *StringLiteral:
		fmt.Fprintf(b, "StrLiteral(%q)\n", n.Value)

	case *BoolLiteral:
		fmt.Fprintf(b, "Bool(%t)\n", n.Value)

	case *BreakStmt:
		b.WriteString("Break\n")

	case *ReturnStmt:
		b.WriteString("Return\n")
		if n.Value != nil {
			writeNode(b, n.Value, inner, true)
		}

	case *ImportStmt:
		fmt.Fprintf(b, "Import(%s)\n", n.Module)

	case *BinaryOp:
		fmt.Fprintf(b, "BinOp('%s')\n", n.Op)
		writeNode(b, n.Left, inner, false)
		writeNode(b, n.Right, inner, true)

	case *VarDecl:
		fmt.Fprintf(b, "VarDec(%s)\n", n.Name)
		writeNode(b, n.Value, inner, true)

	case *AssignStmt:
		fmt.Fprintf(b, "Assign(%s)\n", n.Name)
		writeNode(b, n.Value, inner, true)

	case *IfStmt:
		b.WriteString("If\n")
		writeNode(b, n.Condition, inner, false)
		lastSection := len(n.Elifs) == 0 && n.Else == nil
		writeSection(b, inner, "Then", nil, n.Then, lastSection)
		for i, clause := range n.Elifs {
			lastSection = i == len(n.Elifs)-1 && n.Else == nil
			writeSection(b, inner, "Elif", clause.Condition, clause.Body, lastSection)
		}
		if n.Else != nil {
			writeSection(b, inner, "Else", nil, n.Else, true)
		}

	case *LoopStmt:
		b.WriteString("Loop\n")
		writeNode(b, n.Condition, inner, len(n.Body) == 0)
		for i, stmt := range n.Body {
			writeNode(b, stmt, inner, i == len(n.Body)-1)
		}

	case *CallExpr:
		fmt.Fprintf(b, "FuncCall(%s)\n", n.Name)
		for i, arg := range n.Args {
			writeNode(b, arg, inner, i == len(n.Args)-1)
		}

	case *FuncDef:
		fmt.Fprintf(b, "FuncDef(%s)\n", n.Name)
		b.WriteString(inner)
		b.WriteString(connector(len(n.Body) == 0))
		fmt.Fprintf(b, "Args: [%s]\n", strings.Join(n.Params, ", "))
		for i, stmt := range n.Body {
			writeNode(b, stmt, inner, i == len(n.Body)-1)
		}

	default:
		fmt.Fprintf(b, "%T\n", node)
	}
}

// writeSection renders a labeled branch of an if statement. cond is
// non-nil only for elif clauses, whose condition prints before the
// clause body.
func writeSection(b *strings.Builder, prefix, label string, cond Node, body []Node, last bool) {
	b.WriteString(prefix)
	b.WriteString(connector(last))
	b.WriteString(label)
	b.WriteString("\n")

	inner := childPrefix(prefix, last)
	if cond != nil {
		writeNode(b, cond, inner, len(body) == 0)
	}
	for i, stmt := range body {
		writeNode(b, stmt, inner, i == len(body)-1)
	}
}
