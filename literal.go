package pushdown

import (
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/cockroachdb/apd/v3"

	"github.com/seekdb/es-pushdown-go/catalog"
)

// Literal holds one extracted literal value tagged with its primitive
// kind. A Literal is constructed once per extracted operand and is
// immutable; the predicate variant that carries it owns it.
//
// The dynamic type of the raw value must match what the kind dictates:
//
//	BOOLEAN            bool
//	TINYINT            int8
//	SMALLINT           int16
//	INT                int32
//	BIGINT             int64
//	LARGEINT           *big.Int
//	FLOAT              float32
//	DOUBLE             float64
//	DECIMAL            *apd.Decimal
//	CHAR, VARCHAR      string
//	DATE, DATETIME     time.Time
//
// A mismatch is a programming error on the evaluator side, not a
// recoverable condition, and rendering fails fast.
type Literal struct {
	kind catalog.Kind
	raw  any
}

// NewLiteral constructs a literal from a kind and its raw typed value.
func NewLiteral(kind catalog.Kind, raw any) Literal {
	return Literal{kind: kind, raw: raw}
}

// Kind returns the literal's primitive kind.
func (l Literal) Kind() catalog.Kind { return l.kind }

// String renders the literal to its canonical textual form. Rendering
// is total over the supported kinds; an unsupported kind or a raw value
// of the wrong dynamic type panics.
func (l Literal) String() string {
	switch l.kind {
	case catalog.KindBoolean:
		if l.rawBool() {
			return "1"
		}
		return "0"
	case catalog.KindTinyInt:
		return strconv.FormatInt(int64(mustRaw[int8](l)), 10)
	case catalog.KindSmallInt:
		return strconv.FormatInt(int64(mustRaw[int16](l)), 10)
	case catalog.KindInt:
		return strconv.FormatInt(int64(mustRaw[int32](l)), 10)
	case catalog.KindBigInt:
		return strconv.FormatInt(mustRaw[int64](l), 10)
	case catalog.KindLargeInt:
		return mustRaw[*big.Int](l).String()
	case catalog.KindFloat:
		return strconv.FormatFloat(float64(mustRaw[float32](l)), 'g', -1, 32)
	case catalog.KindDouble:
		return strconv.FormatFloat(mustRaw[float64](l), 'g', -1, 64)
	case catalog.KindDecimal:
		return mustRaw[*apd.Decimal](l).Text('f')
	case catalog.KindChar, catalog.KindVarchar:
		return mustRaw[string](l)
	case catalog.KindDate:
		// Declared date columns truncate a datetime value to its
		// calendar day.
		return mustRaw[time.Time](l).Format("2006-01-02")
	case catalog.KindDatetime:
		return mustRaw[time.Time](l).Format("2006-01-02 15:04:05")
	default:
		panic(fmt.Sprintf("pushdown: literal kind %s is not renderable", l.kind))
	}
}

func (l Literal) rawBool() bool { return mustRaw[bool](l) }

// mustRaw asserts the literal's raw storage to the type its kind
// dictates. Failing the assertion is an evaluator bug.
func mustRaw[T any](l Literal) T {
	v, ok := l.raw.(T)
	if !ok {
		panic(fmt.Sprintf("pushdown: literal raw value %T does not match kind %s", l.raw, l.kind))
	}
	return v
}
