// Package esquery turns a translated disjunct list into an
// Elasticsearch query body, and validates native esquery payloads on
// behalf of the translator.
package esquery

import (
	"encoding/json"
	"fmt"
	"strings"

	pushdown "github.com/seekdb/es-pushdown-go"
)

// BuildQuery converts a disjunct list into an Elasticsearch query body.
// A single disjunct maps to its clause directly; multiple disjuncts are
// OR'ed under a bool/should clause. The result is ready for
// json.Marshal into a _search request body.
func BuildQuery(disjuncts []pushdown.Predicate) (map[string]any, error) {
	if len(disjuncts) == 0 {
		return nil, fmt.Errorf("esquery: empty disjunct list")
	}

	clauses := make([]any, 0, len(disjuncts))
	for _, d := range disjuncts {
		clause, err := Clause(d)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, clause)
	}

	if len(clauses) == 1 {
		return clauses[0].(map[string]any), nil
	}
	return map[string]any{"bool": map[string]any{"should": clauses}}, nil
}

// Clause converts a single predicate into its Elasticsearch clause.
func Clause(p pushdown.Predicate) (map[string]any, error) {
	switch pred := p.(type) {
	case *pushdown.BinaryPredicate:
		return binaryClause(pred)
	case *pushdown.LikePredicate:
		return map[string]any{
			"wildcard": map[string]any{pred.Column: likeToWildcard(pred.Pattern.String())},
		}, nil
	case *pushdown.InPredicate:
		return inClause(pred), nil
	case *pushdown.FunctionPredicate:
		return nativeClause(pred)
	default:
		return nil, fmt.Errorf("esquery: unsupported predicate %T", p)
	}
}

func binaryClause(pred *pushdown.BinaryPredicate) (map[string]any, error) {
	value := pred.Value.String()
	switch pred.Op {
	case "EQ":
		return term(pred.Column, value), nil
	case "NE":
		return mustNot(term(pred.Column, value)), nil
	case "LT":
		return rangeClause(pred.Column, "lt", value), nil
	case "LE":
		return rangeClause(pred.Column, "lte", value), nil
	case "GT":
		return rangeClause(pred.Column, "gt", value), nil
	case "GE":
		return rangeClause(pred.Column, "gte", value), nil
	default:
		return nil, fmt.Errorf("esquery: operator %s has no query form", pred.Op)
	}
}

func inClause(pred *pushdown.InPredicate) map[string]any {
	values := make([]string, 0, len(pred.Values))
	for _, v := range pred.Values {
		values = append(values, v.String())
	}
	clause := map[string]any{"terms": map[string]any{pred.Column: values}}
	if pred.NotIn {
		return mustNot(clause)
	}
	return clause
}

// nativeClause splices a raw esquery payload into the query unchanged.
func nativeClause(fn *pushdown.FunctionPredicate) (map[string]any, error) {
	if err := checkShape(fn); err != nil {
		return nil, err
	}
	var clause map[string]any
	if err := json.Unmarshal([]byte(fn.Args[0].String()), &clause); err != nil {
		return nil, fmt.Errorf("esquery: native query payload: %w", err)
	}
	return clause, nil
}

func term(column, value string) map[string]any {
	return map[string]any{"term": map[string]any{column: value}}
}

func rangeClause(column, bound, value string) map[string]any {
	return map[string]any{"range": map[string]any{column: map[string]any{bound: value}}}
}

func mustNot(clause map[string]any) map[string]any {
	return map[string]any{"bool": map[string]any{"must_not": []any{clause}}}
}

var wildcardReplacer = strings.NewReplacer("%", "*", "_", "?")

// likeToWildcard rewrites SQL LIKE metacharacters into their wildcard
// query equivalents.
func likeToWildcard(pattern string) string {
	return wildcardReplacer.Replace(pattern)
}
