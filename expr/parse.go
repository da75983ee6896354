package expr

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"time"

	"github.com/cockroachdb/apd/v3"

	"github.com/seekdb/es-pushdown-go/catalog"
)

// Tree couples one or more parsed conjuncts with the row schema they
// bind to. Conjuncts are implicitly AND'ed by the caller; each is
// translated independently.
type Tree struct {
	Schema    *catalog.Schema
	Conjuncts []Expr
}

// Parse parses a filter document produced by the query planner.
//
// The document carries the scan target's row schema and a list of
// conjunct expression trees:
//
//	{
//	  "schema": {"columns": [{"id": 0, "name": "price", "kind": "INT"}]},
//	  "conjuncts": [ {...}, {...} ]
//	}
func Parse(data []byte) (*Tree, error) {
	if len(data) == 0 {
		return &Tree{Schema: &catalog.Schema{}}, nil
	}

	var raw rawTree
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("expr: invalid filter document: %w", err)
	}

	schema := &catalog.Schema{Columns: make([]catalog.Column, 0, len(raw.Schema.Columns))}
	for _, col := range raw.Schema.Columns {
		col.Kind = col.Kind.Normalize()
		schema.Columns = append(schema.Columns, col)
	}

	t := &Tree{
		Schema:    schema,
		Conjuncts: make([]Expr, 0, len(raw.Conjuncts)),
	}
	for i, rawExpr := range raw.Conjuncts {
		e, err := parseNode(rawExpr)
		if err != nil {
			return nil, fmt.Errorf("expr: conjunct %d: %w", i, err)
		}
		t.Conjuncts = append(t.Conjuncts, e)
	}

	return t, nil
}

// rawTree is the intermediate structure for document parsing.
type rawTree struct {
	Schema struct {
		Columns []catalog.Column `json:"columns"`
	} `json:"schema"`
	Conjuncts []json.RawMessage `json:"conjuncts"`
}

// rawNode is used for two-phase parsing to determine the node shape.
type rawNode struct {
	NodeKind   string `json:"node_kind"`
	Opcode     string `json:"opcode"`
	ResultKind string `json:"result_kind"`
}

// parseNode parses a single expression node from raw JSON.
func parseNode(data json.RawMessage) (Expr, error) {
	var raw rawNode
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid node: %w", err)
	}

	base := BaseExpr{
		ExprKind: NodeKind(raw.NodeKind),
		ExprOp:   Opcode(raw.Opcode),
		ExprType: catalog.Kind(raw.ResultKind).Normalize(),
	}

	switch base.ExprKind {
	case NodeSlotRef:
		return parseSlotRef(data, base)
	case NodeBinaryPred:
		operands, err := parseOperands(data)
		if err != nil {
			return nil, err
		}
		return &BinaryExpr{BaseExpr: base, Operands: operands}, nil
	case NodeCompoundPred:
		operands, err := parseOperands(data)
		if err != nil {
			return nil, err
		}
		return &CompoundExpr{BaseExpr: base, Operands: operands}, nil
	case NodeInPred:
		return parseInPred(data, base)
	case NodeFunctionCall:
		return parseFunctionCall(data, base)
	case NodeCastExpr:
		return parseCast(data, base)
	case NodeBoolLiteral, NodeIntLiteral, NodeLargeIntLiteral,
		NodeFloatLiteral, NodeDecimalLiteral, NodeStringLiteral,
		NodeDateLiteral:
		return parseLiteral(data, base)
	default:
		return nil, fmt.Errorf("unknown node kind %q", raw.NodeKind)
	}
}

// parseOperands parses the children array shared by predicate nodes.
func parseOperands(data json.RawMessage) ([]Expr, error) {
	var raw struct {
		Children []json.RawMessage `json:"children"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid operands: %w", err)
	}

	operands := make([]Expr, 0, len(raw.Children))
	for i, child := range raw.Children {
		e, err := parseNode(child)
		if err != nil {
			return nil, fmt.Errorf("invalid child %d: %w", i, err)
		}
		operands = append(operands, e)
	}
	return operands, nil
}

func parseSlotRef(data json.RawMessage, base BaseExpr) (*SlotRef, error) {
	var raw struct {
		SlotID int `json:"slot_id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid slot ref: %w", err)
	}
	return &SlotRef{BaseExpr: base, SlotID: raw.SlotID}, nil
}

func parseInPred(data json.RawMessage, base BaseExpr) (*InExpr, error) {
	operands, err := parseOperands(data)
	if err != nil {
		return nil, err
	}

	var raw struct {
		Set []json.RawMessage `json:"set"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid membership set: %w", err)
	}

	// Members are typed by the probed operand's result kind. Shape
	// validation is the translator's job; if the probe is missing the
	// members stay untyped.
	memberKind := catalog.KindInvalid
	if len(operands) > 0 {
		memberKind = operands[0].ResultKind()
	}

	set := make([]any, 0, len(raw.Set))
	for i, member := range raw.Set {
		if string(member) == "null" {
			set = append(set, nil)
			continue
		}
		v, err := parseValue(member, memberKind)
		if err != nil {
			return nil, fmt.Errorf("invalid set member %d: %w", i, err)
		}
		set = append(set, v)
	}

	return &InExpr{BaseExpr: base, Operands: operands, Set: set}, nil
}

func parseFunctionCall(data json.RawMessage, base BaseExpr) (*FunctionCallExpr, error) {
	operands, err := parseOperands(data)
	if err != nil {
		return nil, err
	}

	var raw struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid function call: %w", err)
	}
	return &FunctionCallExpr{BaseExpr: base, Name: raw.Name, Operands: operands}, nil
}

func parseCast(data json.RawMessage, base BaseExpr) (*CastExpr, error) {
	var raw struct {
		Child json.RawMessage `json:"child"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid cast: %w", err)
	}
	child, err := parseNode(raw.Child)
	if err != nil {
		return nil, fmt.Errorf("invalid cast child: %w", err)
	}
	return &CastExpr{BaseExpr: base, Child: child}, nil
}

func parseLiteral(data json.RawMessage, base BaseExpr) (*LiteralExpr, error) {
	var raw struct {
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid literal: %w", err)
	}
	v, err := parseValue(raw.Value, base.ExprType)
	if err != nil {
		return nil, fmt.Errorf("invalid literal value: %w", err)
	}
	return &LiteralExpr{BaseExpr: base, Value: v}, nil
}

// parseValue decodes a raw JSON value into the canonical Go
// representation for the given kind.
func parseValue(data json.RawMessage, kind catalog.Kind) (any, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}

	switch kind {
	case catalog.KindBoolean:
		var v bool
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil

	case catalog.KindTinyInt:
		v, err := parseInt(data, math.MinInt8, math.MaxInt8)
		if err != nil {
			return nil, err
		}
		return int8(v), nil

	case catalog.KindSmallInt:
		v, err := parseInt(data, math.MinInt16, math.MaxInt16)
		if err != nil {
			return nil, err
		}
		return int16(v), nil

	case catalog.KindInt:
		v, err := parseInt(data, math.MinInt32, math.MaxInt32)
		if err != nil {
			return nil, err
		}
		return int32(v), nil

	case catalog.KindBigInt:
		return parseInt(data, math.MinInt64, math.MaxInt64)

	case catalog.KindLargeInt:
		// 128-bit values may not survive JSON number precision; accept
		// a string form as well.
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			var n int64
			if err := json.Unmarshal(data, &n); err != nil {
				return nil, fmt.Errorf("largeint must be a string or integer")
			}
			return big.NewInt(n), nil
		}
		v, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return nil, fmt.Errorf("invalid largeint %q", s)
		}
		return v, nil

	case catalog.KindFloat:
		var v float64
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return float32(v), nil

	case catalog.KindDouble:
		var v float64
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil

	case catalog.KindDecimal:
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			var f float64
			if err := json.Unmarshal(data, &f); err != nil {
				return nil, fmt.Errorf("decimal must be a string or number")
			}
			s = fmt.Sprintf("%v", f)
		}
		d, _, err := apd.NewFromString(s)
		if err != nil {
			return nil, fmt.Errorf("invalid decimal %q: %w", s, err)
		}
		return d, nil

	case catalog.KindChar, catalog.KindVarchar:
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, err
		}
		return s, nil

	case catalog.KindDate, catalog.KindDatetime:
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, err
		}
		if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
			return t, nil
		}
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, fmt.Errorf("invalid date value %q", s)
		}
		return t, nil

	default:
		// Untyped values (e.g. a membership set without a probed
		// operand) decode as generic JSON.
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	}
}

func parseInt(data json.RawMessage, min, max int64) (int64, error) {
	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		return 0, err
	}
	if v < min || v > max {
		return 0, fmt.Errorf("integer %d out of range [%d, %d]", v, min, max)
	}
	return v, nil
}
