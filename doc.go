// Package pushdown translates planner filter expressions into flat
// predicate lists an Elasticsearch index can execute directly.
//
// A planner filter is an arbitrary expression tree over columns and
// literals; Elasticsearch only executes a restricted vocabulary of
// predicates (comparisons, pattern matches, set membership, raw native
// queries) combined by OR at the top level. The pushdown package does
// the translation and validation in between:
//   - Classifying which expression shapes are pushdown-eligible
//   - Extracting literal operands in a type-correct way
//   - Resolving column references against the scan target's row schema
//   - Flattening OR-structured trees into an ordered disjunct list
//   - Rejecting everything else with a precise reason
//
// # Quick Start
//
// Translate one conjunct and turn it into an Elasticsearch query:
//
//	package main
//
//	import (
//	    "encoding/json"
//	    "fmt"
//	    "log"
//
//	    pushdown "github.com/seekdb/es-pushdown-go"
//	    "github.com/seekdb/es-pushdown-go/esquery"
//	    "github.com/seekdb/es-pushdown-go/expr"
//	)
//
//	func main() {
//	    tree, err := expr.Parse(filterDoc) // planner filter document
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    tr := pushdown.NewTranslator(tree.Conjuncts[0], tree.Schema, &pushdown.Config{
//	        Checker: esquery.Checker{},
//	    })
//	    if err := tr.BuildDisjuncts(); err != nil {
//	        // Not pushdown-eligible: evaluate the conjunct locally.
//	        return
//	    }
//
//	    query, err := esquery.BuildQuery(tr.Disjuncts())
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    body, _ := json.Marshal(query)
//	    fmt.Println(string(body))
//	}
//
// # Architecture
//
// The package splits along the translation pipeline:
//
//   - expr: the planner expression tree as a closed node set, plus
//     parsing of the serialized filter documents planners send
//   - catalog: the scan target's row schema and the implicit-cast
//     tolerance rules
//   - pushdown (this package): the Translator that walks one conjunct
//     and builds the disjunct list of Predicate variants
//   - esquery: the downstream consumer turning disjuncts into an
//     Elasticsearch bool query, and the structural check for native
//     esquery payloads
//
// Translation is best-effort classification, not evaluation: a
// rejection always aborts the whole conjunct, and the caller falls back
// to evaluating it locally. Partial disjunct lists are never returned.
//
// # Logging
//
// The package uses log/slog for translation diagnostics. Pass a Logger
// in Config, or configure slog.SetDefault() before translating.
package pushdown
