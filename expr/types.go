package expr

import "github.com/seekdb/es-pushdown-go/catalog"

// NodeKind identifies the shape of an expression tree node.
type NodeKind string

const (
	NodeBinaryPred   NodeKind = "BINARY_PRED"
	NodeCompoundPred NodeKind = "COMPOUND_PRED"
	NodeInPred       NodeKind = "IN_PRED"
	NodeFunctionCall NodeKind = "FUNCTION_CALL"
	NodeSlotRef      NodeKind = "SLOT_REF"
	NodeCastExpr     NodeKind = "CAST_EXPR"

	// Literal node kinds. These are the only shapes the translator
	// accepts as a predicate operand.
	NodeBoolLiteral     NodeKind = "BOOL_LITERAL"
	NodeIntLiteral      NodeKind = "INT_LITERAL"
	NodeLargeIntLiteral NodeKind = "LARGE_INT_LITERAL"
	NodeFloatLiteral    NodeKind = "FLOAT_LITERAL"
	NodeDecimalLiteral  NodeKind = "DECIMAL_LITERAL"
	NodeStringLiteral   NodeKind = "STRING_LITERAL"
	NodeDateLiteral     NodeKind = "DATE_LITERAL"
)

// Opcode identifies the operation carried by a predicate node.
type Opcode string

const (
	// Comparison operators.
	OpEQ Opcode = "EQ"
	OpNE Opcode = "NE"
	OpLT Opcode = "LT"
	OpLE Opcode = "LE"
	OpGT Opcode = "GT"
	OpGE Opcode = "GE"

	// Compound operators.
	OpCompoundAnd Opcode = "COMPOUND_AND"
	OpCompoundOr  Opcode = "COMPOUND_OR"
	OpCompoundNot Opcode = "COMPOUND_NOT"

	// Set membership operators. FilterNewIn marks a membership set that
	// still contains unevaluated function calls; it is not pushdown-eligible.
	OpFilterIn    Opcode = "FILTER_IN"
	OpFilterNotIn Opcode = "FILTER_NOT_IN"
	OpFilterNewIn Opcode = "FILTER_NEW_IN"
)

// Expr is the interface implemented by all expression node types.
// Use type assertions or type switches to access node-specific data.
type Expr interface {
	// Kind returns the node shape (e.g. BINARY_PRED, SLOT_REF).
	Kind() NodeKind

	// Op returns the operation for predicate nodes, or "" otherwise.
	Op() Opcode

	// ResultKind returns the primitive kind this node evaluates to.
	ResultKind() catalog.Kind

	// Children returns the node's operands in source order.
	Children() []Expr

	// exprMarker is a marker method to keep the node set closed.
	exprMarker()
}

// BaseExpr contains common fields for all node types.
type BaseExpr struct {
	ExprKind NodeKind     `json:"node_kind"`
	ExprOp   Opcode       `json:"opcode,omitempty"`
	ExprType catalog.Kind `json:"result_kind,omitempty"`
}

// Kind returns the node shape.
func (b *BaseExpr) Kind() NodeKind { return b.ExprKind }

// Op returns the node operation.
func (b *BaseExpr) Op() Opcode { return b.ExprOp }

// ResultKind returns the primitive kind the node evaluates to.
func (b *BaseExpr) ResultKind() catalog.Kind { return b.ExprType }

// Children returns nil; node types with operands override it.
func (b *BaseExpr) Children() []Expr { return nil }

func (b *BaseExpr) exprMarker() {}

// SlotRef references a schema column by its planner-assigned slot ID.
type SlotRef struct {
	BaseExpr
	SlotID int
}

// LiteralExpr holds an already-materialized literal value. The dynamic
// type of Value must match what ResultKind dictates; see the evaluator
// contract.
type LiteralExpr struct {
	BaseExpr
	Value any
}

// BinaryExpr is a binary comparison predicate over two operands.
type BinaryExpr struct {
	BaseExpr
	Operands []Expr
}

// Children returns the comparison operands in source order.
func (e *BinaryExpr) Children() []Expr { return e.Operands }

// CompoundExpr combines predicate operands with a logical operator.
type CompoundExpr struct {
	BaseExpr
	Operands []Expr
}

// Children returns the compound operands in source order.
func (e *CompoundExpr) Children() []Expr { return e.Operands }

// InExpr is a set-membership predicate. The first operand is the probed
// expression; Set holds the membership values in their native order.
// A nil entry in Set represents a null member.
type InExpr struct {
	BaseExpr
	Operands []Expr
	Set      []any
}

// Children returns the probed operand(s).
func (e *InExpr) Children() []Expr { return e.Operands }

// FunctionCallExpr is a named function applied to its operands.
type FunctionCallExpr struct {
	BaseExpr
	Name     string
	Operands []Expr
}

// Children returns the call arguments in source order.
func (e *FunctionCallExpr) Children() []Expr { return e.Operands }

// CastExpr wraps a child expression in an implicit or explicit cast.
// ResultKind is the cast target.
type CastExpr struct {
	BaseExpr
	Child Expr
}

// Children returns the single cast operand.
func (e *CastExpr) Children() []Expr { return []Expr{e.Child} }

// IsLiteral reports whether the node is one of the literal-eligible shapes.
func IsLiteral(e Expr) bool {
	switch e.Kind() {
	case NodeBoolLiteral, NodeIntLiteral, NodeLargeIntLiteral,
		NodeFloatLiteral, NodeDecimalLiteral, NodeStringLiteral,
		NodeDateLiteral:
		return true
	}
	return false
}

// StripCasts unwraps any chain of cast nodes and returns the underlying
// expression.
func StripCasts(e Expr) Expr {
	for {
		cast, ok := e.(*CastExpr)
		if !ok {
			return e
		}
		e = cast.Child
	}
}
