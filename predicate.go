package pushdown

import (
	"github.com/seekdb/es-pushdown-go/catalog"
	"github.com/seekdb/es-pushdown-go/expr"
)

// Predicate is the interface implemented by all pushdown predicate
// variants. A predicate carries everything the downstream query builder
// needs to reconstruct one clause; variants are immutable after
// construction.
//
// Use type assertions or type switches to access variant data.
type Predicate interface {
	// predicateMarker is a marker method to keep the variant set closed.
	predicateMarker()
}

// BinaryPredicate is a comparison between one column and one literal,
// e.g. `price < 5`.
type BinaryPredicate struct {
	// Column is the schema-resolved column name.
	Column string

	// ColumnKind is the column's declared kind, resolved from the row
	// schema rather than inferred from the expression.
	ColumnKind catalog.Kind

	// Op is the comparison operator, taken verbatim from the plan.
	Op expr.Opcode

	// Value is the extracted comparison operand.
	Value Literal
}

func (*BinaryPredicate) predicateMarker() {}

// LikePredicate is a pattern match against one column. The pattern is
// always a string-kind literal.
type LikePredicate struct {
	Column     string
	ColumnKind catalog.Kind
	Pattern    Literal
}

func (*LikePredicate) predicateMarker() {}

// InPredicate is a set-membership test against one column. Values keep
// the membership set's native order.
type InPredicate struct {
	Column     string
	ColumnKind catalog.Kind
	NotIn      bool
	Values     []Literal
}

func (*InPredicate) predicateMarker() {}

// FunctionPredicate is a native pass-through query rather than a
// structured clause: the reserved esquery function carrying a raw
// query payload as its argument.
type FunctionPredicate struct {
	// Name is the function name from the plan.
	Name string

	// Columns is reserved for future structured arguments and is
	// currently always empty.
	Columns []catalog.Column

	// Args holds the extracted literal arguments; for esquery this is
	// the single raw query payload.
	Args []Literal
}

func (*FunctionPredicate) predicateMarker() {}
