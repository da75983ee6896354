// Package expr models the planner's filter expression tree as a closed
// set of node types, and parses the serialized form planners hand to
// scan nodes.
//
// The node set mirrors what a pushdown translator can classify: binary
// comparison predicates, compound (AND/OR/NOT) predicates, set
// membership predicates, function calls, slot references, implicit
// casts, and materialized literals of each supported primitive kind.
// Anything else a planner can produce fails parsing with its node kind
// named, which downstream surfaces as "not pushdown-eligible".
//
// # Parsing
//
// Filter documents arrive either as plain JSON or wrapped in the
// msgpack/zstd transport envelope:
//
//	t, err := expr.Parse(doc)          // plain JSON document
//	t, err := expr.DecodePayload(data) // transport envelope
//
// Both return a Tree holding the row schema and the conjunct roots.
//
// # Evaluation
//
// The Evaluator interface is the seam to the engine's constant
// evaluator. ConstEvaluator serves plans whose literals arrive already
// materialized; engines with richer constant folding plug in their own.
package expr
