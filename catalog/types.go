// Package catalog describes the row schema of a scan target: the ordered
// set of column descriptors a filter expression binds against, and the
// cast-compatibility rules applied during predicate translation.
package catalog

// Kind identifies the declared primitive type of a column or literal value.
type Kind string

const (
	KindInvalid  Kind = "INVALID"
	KindBoolean  Kind = "BOOLEAN"
	KindTinyInt  Kind = "TINYINT"
	KindSmallInt Kind = "SMALLINT"
	KindInt      Kind = "INT"
	KindBigInt   Kind = "BIGINT"
	KindLargeInt Kind = "LARGEINT"
	KindFloat    Kind = "FLOAT"
	KindDouble   Kind = "DOUBLE"
	KindDecimal  Kind = "DECIMAL"
	KindChar     Kind = "CHAR"
	KindVarchar  Kind = "VARCHAR"
	KindDate     Kind = "DATE"
	KindDatetime Kind = "DATETIME"
)

// kindMapping maps type-name aliases to canonical kinds. Planners may
// send either the short form (e.g. "INT") or a full SQL name.
var kindMapping = map[Kind]Kind{
	"INTEGER":   KindInt,
	"INT4":      KindInt,
	"INT2":      KindSmallInt,
	"INT1":      KindTinyInt,
	"INT8":      KindBigInt,
	"INT128":    KindLargeInt,
	"REAL":      KindFloat,
	"FLOAT8":    KindDouble,
	"STRING":    KindVarchar,
	"TEXT":      KindVarchar,
	"BOOL":      KindBoolean,
	"TIMESTAMP": KindDatetime,
}

// Normalize returns the canonical Kind for the given type name.
func (k Kind) Normalize() Kind {
	if mapped, ok := kindMapping[k]; ok {
		return mapped
	}
	return k
}

// IsDate returns true if the kind is a calendar type.
func (k Kind) IsDate() bool {
	return k == KindDate || k == KindDatetime
}

// IsString returns true if the kind is a character type.
func (k Kind) IsString() bool {
	return k == KindChar || k == KindVarchar
}

// IsNumeric returns true if the kind is a numeric type.
func (k Kind) IsNumeric() bool {
	switch k {
	case KindTinyInt, KindSmallInt, KindInt, KindBigInt, KindLargeInt,
		KindFloat, KindDouble, KindDecimal:
		return true
	}
	return false
}

// Valid returns true if the kind is one of the supported primitive kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindBoolean, KindTinyInt, KindSmallInt, KindInt, KindBigInt,
		KindLargeInt, KindFloat, KindDouble, KindDecimal,
		KindChar, KindVarchar, KindDate, KindDatetime:
		return true
	}
	return false
}

// CastTolerable reports whether a declared column kind and an operand kind
// may differ without rejecting the predicate. Only two categories of
// implicit cast are elided: date with date and string with string. This
// mirrors the pushdown target's mapping behavior; widening the allowlist
// changes pushdown correctness.
func CastTolerable(declared, operand Kind) bool {
	if declared.IsDate() && operand.IsDate() {
		return true
	}
	if declared.IsString() && operand.IsString() {
		return true
	}
	return false
}
