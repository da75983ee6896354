package esquery

import (
	"encoding/json"
	"fmt"

	pushdown "github.com/seekdb/es-pushdown-go"
)

// queryKinds are the query kinds accepted at the root of an esquery
// payload.
var queryKinds = map[string]struct{}{
	"bool":         {},
	"exists":       {},
	"fuzzy":        {},
	"match":        {},
	"match_all":    {},
	"match_phrase": {},
	"prefix":       {},
	"query_string": {},
	"range":        {},
	"regexp":       {},
	"term":         {},
	"terms":        {},
	"wildcard":     {},
}

// Checker validates that a native esquery payload is a well-formed
// query object. It implements pushdown.QueryChecker.
type Checker struct{}

// Check rejects payloads that are not a JSON object with exactly one
// root key naming a supported query kind.
func (Checker) Check(fn *pushdown.FunctionPredicate) error {
	if err := checkShape(fn); err != nil {
		return err
	}

	var root map[string]json.RawMessage
	if err := json.Unmarshal([]byte(fn.Args[0].String()), &root); err != nil {
		return fmt.Errorf("esquery: native query payload is not a JSON object: %w", err)
	}
	if len(root) != 1 {
		return fmt.Errorf("esquery: native query payload must have exactly one root key, got %d", len(root))
	}
	for key := range root {
		if _, ok := queryKinds[key]; !ok {
			return fmt.Errorf("esquery: unsupported native query kind %q", key)
		}
	}
	return nil
}

// checkShape validates the function predicate's argument shape, shared
// by the checker and the clause builder.
func checkShape(fn *pushdown.FunctionPredicate) error {
	if fn.Name != "esquery" {
		return fmt.Errorf("esquery: function %q is not the native query marker", fn.Name)
	}
	if len(fn.Args) != 1 {
		return fmt.Errorf("esquery: native query takes exactly 1 argument, got %d", len(fn.Args))
	}
	if !fn.Args[0].Kind().IsString() {
		return fmt.Errorf("esquery: native query payload must be a string, got %s", fn.Args[0].Kind())
	}
	return nil
}
