package fern

// Node is the closed set of syntax tree variants. Every composite node
// exclusively owns its children; a node is built once during parsing
// and never mutated afterwards.
type Node interface {
	node()
}

// EOF marks the end of the top-level statement sequence. The driver
// stops pulling statements when it sees one.
type EOF struct{}

type Number struct {
	Value float64
}

type Identifier struct {
	Name string
}

type StringLiteral struct {
	Value string
}

type BoolLiteral struct {
	Value bool
}

type BreakStmt struct{}

// ReturnStmt carries an optional expression; Value is nil for a bare
// `return;`.
type ReturnStmt struct {
	Value Node
}

type ImportStmt struct {
	Module string
}

type BinaryOp struct {
	Op    string
	Left  Node
	Right Node
}

type VarDecl struct {
	Name  string
	Value Node
}

type AssignStmt struct {
	Name  string
	Value Node
}

type ElifClause struct {
	Condition Node
	Body      []Node
}

// IfStmt distinguishes an absent else branch (Else == nil) from an
// else branch with an empty body (Else non-nil, length zero).
type IfStmt struct {
	Condition Node
	Then      []Node
	Elifs     []ElifClause
	Else      []Node
}

type LoopStmt struct {
	Condition Node
	Body      []Node
}

type CallExpr struct {
	Name string
	Args []Node
}

type FuncDef struct {
	Name   string
	Params []string
	Body   []Node
}

func (*EOF) node()           {}
func (*Number) node()        {}
func (*Identifier) node()    {}
func (*StringLiteral) node() {}
func (*BoolLiteral) node()   {}
func (*BreakStmt) node()     {}
func (*ReturnStmt) node()    {}
func (*ImportStmt) node()    {}
func (*BinaryOp) node()      {}
func (*VarDecl) node()       {}
func (*AssignStmt) node()    {}
func (*IfStmt) node()        {}
func (*LoopStmt) node()      {}
func (*CallExpr) node()      {}
func (*FuncDef) node()       {}
