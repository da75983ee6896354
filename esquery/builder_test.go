package esquery

import (
	"reflect"
	"testing"

	pushdown "github.com/seekdb/es-pushdown-go"
	"github.com/seekdb/es-pushdown-go/catalog"
	"github.com/seekdb/es-pushdown-go/expr"
)

func intLiteral(v int32) pushdown.Literal {
	return pushdown.NewLiteral(catalog.KindInt, v)
}

func strLiteral(s string) pushdown.Literal {
	return pushdown.NewLiteral(catalog.KindVarchar, s)
}

func TestClauseBinary(t *testing.T) {
	tests := []struct {
		op   string
		want map[string]any
	}{
		{"EQ", map[string]any{"term": map[string]any{"price": "5"}}},
		{"NE", map[string]any{"bool": map[string]any{
			"must_not": []any{map[string]any{"term": map[string]any{"price": "5"}}},
		}}},
		{"LT", map[string]any{"range": map[string]any{"price": map[string]any{"lt": "5"}}}},
		{"LE", map[string]any{"range": map[string]any{"price": map[string]any{"lte": "5"}}}},
		{"GT", map[string]any{"range": map[string]any{"price": map[string]any{"gt": "5"}}}},
		{"GE", map[string]any{"range": map[string]any{"price": map[string]any{"gte": "5"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			clause, err := Clause(&pushdown.BinaryPredicate{
				Column:     "price",
				ColumnKind: catalog.KindInt,
				Op:         expr.Opcode(tt.op),
				Value:      intLiteral(5),
			})
			if err != nil {
				t.Fatalf("Clause failed: %v", err)
			}
			if !reflect.DeepEqual(clause, tt.want) {
				t.Errorf("got %#v, want %#v", clause, tt.want)
			}
		})
	}
}

func TestClauseIn(t *testing.T) {
	clause, err := Clause(&pushdown.InPredicate{
		Column:     "price",
		ColumnKind: catalog.KindInt,
		Values:     []pushdown.Literal{intLiteral(1), intLiteral(2)},
	})
	if err != nil {
		t.Fatalf("Clause failed: %v", err)
	}
	want := map[string]any{"terms": map[string]any{"price": []string{"1", "2"}}}
	if !reflect.DeepEqual(clause, want) {
		t.Errorf("got %#v, want %#v", clause, want)
	}
}

func TestClauseNotIn(t *testing.T) {
	clause, err := Clause(&pushdown.InPredicate{
		Column:     "price",
		ColumnKind: catalog.KindInt,
		NotIn:      true,
		Values:     []pushdown.Literal{intLiteral(1)},
	})
	if err != nil {
		t.Fatalf("Clause failed: %v", err)
	}
	inner := map[string]any{"terms": map[string]any{"price": []string{"1"}}}
	want := map[string]any{"bool": map[string]any{"must_not": []any{inner}}}
	if !reflect.DeepEqual(clause, want) {
		t.Errorf("got %#v, want %#v", clause, want)
	}
}

func TestClauseLike(t *testing.T) {
	clause, err := Clause(&pushdown.LikePredicate{
		Column:     "name",
		ColumnKind: catalog.KindVarchar,
		Pattern:    strLiteral("Pro%_x"),
	})
	if err != nil {
		t.Fatalf("Clause failed: %v", err)
	}
	want := map[string]any{"wildcard": map[string]any{"name": "Pro*?x"}}
	if !reflect.DeepEqual(clause, want) {
		t.Errorf("got %#v, want %#v", clause, want)
	}
}

func TestClauseNativeSplice(t *testing.T) {
	clause, err := Clause(&pushdown.FunctionPredicate{
		Name: "esquery",
		Args: []pushdown.Literal{strLiteral(`{"match": {"name": "laptop"}}`)},
	})
	if err != nil {
		t.Fatalf("Clause failed: %v", err)
	}
	want := map[string]any{"match": map[string]any{"name": "laptop"}}
	if !reflect.DeepEqual(clause, want) {
		t.Errorf("got %#v, want %#v", clause, want)
	}
}

func TestBuildQuerySingleDisjunct(t *testing.T) {
	q, err := BuildQuery([]pushdown.Predicate{
		&pushdown.BinaryPredicate{Column: "price", Op: "EQ", Value: intLiteral(5)},
	})
	if err != nil {
		t.Fatalf("BuildQuery failed: %v", err)
	}
	// A single disjunct is not wrapped in bool/should.
	if _, ok := q["term"]; !ok {
		t.Errorf("expected a bare term clause, got %#v", q)
	}
}

func TestBuildQueryMultipleDisjuncts(t *testing.T) {
	q, err := BuildQuery([]pushdown.Predicate{
		&pushdown.BinaryPredicate{Column: "price", Op: "LT", Value: intLiteral(5)},
		&pushdown.LikePredicate{Column: "name", Pattern: strLiteral("Pro%")},
	})
	if err != nil {
		t.Fatalf("BuildQuery failed: %v", err)
	}

	boolClause, ok := q["bool"].(map[string]any)
	if !ok {
		t.Fatalf("expected bool clause, got %#v", q)
	}
	should, ok := boolClause["should"].([]any)
	if !ok || len(should) != 2 {
		t.Fatalf("expected 2 should clauses, got %#v", boolClause["should"])
	}
	// Clause order follows disjunct order.
	if _, ok := should[0].(map[string]any)["range"]; !ok {
		t.Errorf("expected range clause first, got %#v", should[0])
	}
	if _, ok := should[1].(map[string]any)["wildcard"]; !ok {
		t.Errorf("expected wildcard clause second, got %#v", should[1])
	}
}

func TestBuildQueryEmpty(t *testing.T) {
	if _, err := BuildQuery(nil); err == nil {
		t.Fatal("expected error for empty disjunct list")
	}
}

func TestLikeToWildcard(t *testing.T) {
	tests := []struct{ in, want string }{
		{"%", "*"},
		{"_", "?"},
		{"Pro%_x", "Pro*?x"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := likeToWildcard(tt.in); got != tt.want {
			t.Errorf("likeToWildcard(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
