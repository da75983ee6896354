package pushdown

import (
	"errors"
	"log/slog"

	"github.com/seekdb/es-pushdown-go/expr"
)

// Config contains configuration for a Translator.
type Config struct {
	// Evaluator computes literal operand values.
	// OPTIONAL: Uses expr.ConstEvaluator if nil.
	Evaluator expr.Evaluator

	// Checker validates native-query (esquery) payloads before they are
	// accepted as disjuncts.
	// OPTIONAL: If nil, native-query predicates are accepted unchecked.
	Checker QueryChecker

	// Logger for translation diagnostics.
	// OPTIONAL: Uses slog.Default() if nil.
	Logger *slog.Logger
}

// Rejection reasons returned by Translator.BuildDisjuncts. A rejection
// means the conjunct is not pushdown-eligible and the caller must fall
// back to local evaluation; it is not an execution failure.
var (
	// ErrMalformedShape indicates a predicate node with the wrong child
	// count, operator, or operand arrangement.
	ErrMalformedShape = errors.New("malformed predicate shape")

	// ErrNonLiteralOperand indicates a literal was required but the
	// operand is some other expression.
	ErrNonLiteralOperand = errors.New("operand is not a literal")

	// ErrNonStringPattern indicates a like pattern whose kind is not a
	// string kind.
	ErrNonStringPattern = errors.New("like pattern is not a string")

	// ErrUnknownColumn indicates a slot reference that resolves to no
	// schema column.
	ErrUnknownColumn = errors.New("column not found in schema")

	// ErrIncompatibleCast indicates an operand kind that differs from
	// the declared column kind with no tolerable implicit cast.
	ErrIncompatibleCast = errors.New("incompatible operand kind for column")

	// ErrNullInSet indicates a null member inside a membership set. The
	// pushdown target has no null-membership semantics.
	ErrNullInSet = errors.New("membership set contains a null value")

	// ErrUnsupportedCompound indicates a compound operator other than
	// OR. Splitting AND conjunctions is the caller's responsibility.
	ErrUnsupportedCompound = errors.New("unsupported compound operator")

	// ErrUnsupportedNode indicates a node shape the translator cannot
	// classify at all.
	ErrUnsupportedNode = errors.New("unsupported node kind")
)
