package expr

import "fmt"

// Evaluator computes the runtime value of a literal sub-expression.
// Implementations must be synchronous and side-effect free on the
// expression they evaluate. For nodes already classified as literal by
// IsLiteral, Value is expected to succeed.
type Evaluator interface {
	Value(e Expr) (any, error)
}

// ConstEvaluator extracts values directly from materialized literal
// nodes. It is the default evaluator for plans whose constant folding
// already happened in the planner.
type ConstEvaluator struct{}

// Value returns the literal node's raw value.
func (ConstEvaluator) Value(e Expr) (any, error) {
	lit, ok := e.(*LiteralExpr)
	if !ok {
		return nil, fmt.Errorf("expr: %s node is not a materialized literal", e.Kind())
	}
	return lit.Value, nil
}
