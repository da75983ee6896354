package pushdown

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/seekdb/es-pushdown-go/catalog"
	"github.com/seekdb/es-pushdown-go/expr"
)

// nativeQueryFunction is the reserved function name marking a native
// pass-through query.
const nativeQueryFunction = "esquery"

// QueryChecker validates the payload of a native-query predicate: is
// this a well-formed query the external system will accept. The check
// runs at most once per Translator; the first failure is terminal for
// that Translator.
type QueryChecker interface {
	Check(fn *FunctionPredicate) error
}

// Translator turns one conjunct of a planner filter into a flat list of
// pushdown predicates, or rejects the conjunct with a reason. It borrows
// the expression tree and the row schema for the duration of the build
// and owns the resulting disjunct list.
//
// A Translator is not safe for concurrent use, but independent
// Translators may share the same tree and schema: both are read-only
// during a build.
type Translator struct {
	root    expr.Expr
	schema  *catalog.Schema
	eval    expr.Evaluator
	checker QueryChecker
	logger  *slog.Logger
	id      uuid.UUID

	disjuncts []Predicate

	// queryStatus is the sticky outcome of the native-query check. Once
	// failed it is never reset, and the check is never invoked again on
	// this Translator.
	queryStatus error
}

// NewTranslator creates a Translator for one conjunct bound against the
// given row schema. A nil cfg uses defaults.
func NewTranslator(root expr.Expr, schema *catalog.Schema, cfg *Config) *Translator {
	if cfg == nil {
		cfg = &Config{}
	}

	eval := cfg.Evaluator
	if eval == nil {
		eval = expr.ConstEvaluator{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Translator{
		root:    root,
		schema:  schema,
		eval:    eval,
		checker: cfg.Checker,
		logger:  logger,
		id:      uuid.New(),
	}
}

// BuildDisjuncts walks the conjunct and fills the disjunct list. Any
// rejection aborts the whole build: a partially translated conjunct is
// never usable, the caller must evaluate the full conjunct locally.
func (t *Translator) BuildDisjuncts() error {
	if err := t.build(t.root); err != nil {
		t.logger.Debug("conjunct not pushdown-eligible",
			"translator_id", t.id,
			"reason", err,
		)
		return err
	}
	return nil
}

// Disjuncts returns the predicate list built by BuildDisjuncts. The
// list is only meaningful after a successful build.
func (t *Translator) Disjuncts() []Predicate {
	return t.disjuncts
}

func (t *Translator) build(node expr.Expr) error {
	switch node.Kind() {
	case expr.NodeBinaryPred:
		return t.buildBinary(node)
	case expr.NodeFunctionCall:
		fn := node.(*expr.FunctionCallExpr)
		if fn.Name == nativeQueryFunction {
			return t.buildNativeQuery(fn)
		}
		return t.buildLike(fn)
	case expr.NodeInPred:
		return t.buildIn(node.(*expr.InExpr))
	case expr.NodeCompoundPred:
		return t.buildCompound(node)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedNode, node.Kind())
	}
}

// buildBinary handles `column op literal` comparisons. Exactly one
// child must be a slot ref; when both qualify the left one wins.
func (t *Translator) buildBinary(node expr.Expr) error {
	children := node.Children()
	if len(children) != 2 {
		return fmt.Errorf("%w: binary predicate has %d children", ErrMalformedShape, len(children))
	}

	slotRef, operand, ok := splitSlotRef(children)
	if !ok {
		return fmt.Errorf("%w: binary predicate has no slot ref child", ErrMalformedShape)
	}

	col, ok := t.schema.Resolve(slotRef.SlotID)
	if !ok {
		return fmt.Errorf("%w: slot %d", ErrUnknownColumn, slotRef.SlotID)
	}

	if !expr.IsLiteral(operand) {
		return fmt.Errorf("%w: binary predicate operand is %s", ErrNonLiteralOperand, operand.Kind())
	}

	raw, err := t.eval.Value(operand)
	if err != nil {
		return err
	}

	t.disjuncts = append(t.disjuncts, &BinaryPredicate{
		Column:     col.Name,
		ColumnKind: col.Kind,
		Op:         node.Op(),
		Value:      NewLiteral(operand.ResultKind(), raw),
	})
	return nil
}

// buildNativeQuery handles the reserved esquery passthrough. The single
// payload argument is validated once per Translator; a failed check is
// sticky and is not re-run, later esquery disjuncts are still
// classified for diagnostic clarity.
func (t *Translator) buildNativeQuery(fn *expr.FunctionCallExpr) error {
	children := fn.Children()
	if len(children) != 2 {
		return fmt.Errorf("%w: %s takes 2 arguments, got %d", ErrMalformedShape, fn.Name, len(children))
	}

	raw, err := t.eval.Value(children[1])
	if err != nil {
		return err
	}

	pred := &FunctionPredicate{
		Name:    fn.Name,
		Columns: []catalog.Column{}, // reserved
		Args:    []Literal{NewLiteral(children[1].ResultKind(), raw)},
	}

	if t.checker != nil && t.queryStatus == nil {
		t.queryStatus = t.checker.Check(pred)
		if t.queryStatus != nil {
			return t.queryStatus
		}
	}

	t.disjuncts = append(t.disjuncts, pred)
	return nil
}

// buildLike handles function calls other than esquery; only `like` is
// pushdown-eligible, and its pattern must be a string kind.
func (t *Translator) buildLike(fn *expr.FunctionCallExpr) error {
	if fn.Name != "like" {
		return fmt.Errorf("%w: function %q", ErrUnsupportedNode, fn.Name)
	}

	children := fn.Children()
	if len(children) != 2 {
		return fmt.Errorf("%w: like has %d children", ErrMalformedShape, len(children))
	}

	slotRef, operand, ok := splitSlotRef(children)
	if !ok {
		return fmt.Errorf("%w: like has no slot ref child", ErrMalformedShape)
	}

	col, ok := t.schema.Resolve(slotRef.SlotID)
	if !ok {
		return fmt.Errorf("%w: slot %d", ErrUnknownColumn, slotRef.SlotID)
	}

	kind := operand.ResultKind()
	if !kind.IsString() {
		return fmt.Errorf("%w: pattern kind is %s", ErrNonStringPattern, kind)
	}

	raw, err := t.eval.Value(operand)
	if err != nil {
		return err
	}

	t.disjuncts = append(t.disjuncts, &LikePredicate{
		Column:     col.Name,
		ColumnKind: col.Kind,
		Pattern:    NewLiteral(kind, raw),
	})
	return nil
}

// buildIn handles set membership. The probed operand must be a slot ref
// once implicit casts are stripped, its kind must match the declared
// column kind up to cast tolerance, and the set must not contain nulls.
func (t *Translator) buildIn(node *expr.InExpr) error {
	switch node.Op() {
	case expr.OpFilterIn, expr.OpFilterNotIn:
	default:
		// FILTER_NEW_IN means the set still holds function calls, e.g.
		// col in (abs(1)); nothing to extract.
		return fmt.Errorf("%w: membership opcode %s", ErrMalformedShape, node.Op())
	}

	children := node.Children()
	if len(children) == 0 {
		return fmt.Errorf("%w: membership predicate has no probed operand", ErrMalformedShape)
	}

	slotRef, ok := expr.StripCasts(children[0]).(*expr.SlotRef)
	if !ok {
		return fmt.Errorf("%w: membership probe is not a slot ref", ErrMalformedShape)
	}

	col, ok := t.schema.Resolve(slotRef.SlotID)
	if !ok {
		return fmt.Errorf("%w: slot %d", ErrUnknownColumn, slotRef.SlotID)
	}

	if probed := children[0].ResultKind(); probed != col.Kind && !catalog.CastTolerable(col.Kind, probed) {
		return fmt.Errorf("%w: column %s is %s, probe is %s", ErrIncompatibleCast, col.Name, col.Kind, probed)
	}

	values := make([]Literal, 0, len(node.Set))
	for _, member := range node.Set {
		if member == nil {
			return ErrNullInSet
		}
		values = append(values, NewLiteral(col.Kind, member))
	}

	t.disjuncts = append(t.disjuncts, &InPredicate{
		Column:     col.Name,
		ColumnKind: col.Kind,
		NotIn:      node.Op() == expr.OpFilterNotIn,
		Values:     values,
	})
	return nil
}

// buildCompound recurses into OR trees. Disjuncts are appended in
// left-to-right depth-first order, so the output order is deterministic
// for a given tree. AND never reaches this builder legitimately.
func (t *Translator) buildCompound(node expr.Expr) error {
	if node.Op() != expr.OpCompoundOr {
		return fmt.Errorf("%w: %s", ErrUnsupportedCompound, node.Op())
	}

	children := node.Children()
	if len(children) != 2 {
		return fmt.Errorf("%w: compound OR has %d children", ErrMalformedShape, len(children))
	}

	if err := t.build(children[0]); err != nil {
		return err
	}
	return t.build(children[1])
}

// splitSlotRef separates a two-child operand list into its slot ref and
// the other operand. Child 0 is preferred when both are slot refs.
func splitSlotRef(children []expr.Expr) (*expr.SlotRef, expr.Expr, bool) {
	if sr, ok := children[0].(*expr.SlotRef); ok {
		return sr, children[1], true
	}
	if sr, ok := children[1].(*expr.SlotRef); ok {
		return sr, children[0], true
	}
	return nil, nil, false
}
