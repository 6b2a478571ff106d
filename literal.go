package datasel

import (
	"database/sql/driver"
	"math"
	r "reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

/*
Represents an inline SQL literal such as `'Jack'`, `1` or `null`, encoded
according to the dialect, instead of adding an ordinal parameter and an
argument. A nil dialect means the generic one. Supports nil, booleans, numbers,
strings, byte slices, `time.Time`, `uuid.UUID`, and anything implementing
`driver.Valuer` whose value is one of those. Pointers are dereferenced.
Panics on other types; `Builder` validates values in advance and returns
`ErrUnsupportedType` instead.
*/
type Lit struct {
	Val     any
	Dialect *Dialect
}

// Implement the `Expr` interface, making this a sub-expression.
func (self Lit) AppendExpr(text []byte, args []any) ([]byte, []any) {
	return self.Append(text), args
}

// Implement the `Appender` interface, sometimes allowing more efficient text
// encoding.
func (self Lit) Append(text []byte) []byte {
	return try1(appendLiteral(maybeAppendSpace(text), self.Val, self.Dialect))
}

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Lit) String() string { return exprString(&self) }

func appendLiteral(text []byte, src any, dialect *Dialect) ([]byte, error) {
	if isNil(src) {
		return append(text, Null{}.String()...), nil
	}

	impl, _ := src.(driver.Valuer)
	if impl != nil {
		out, err := impl.Value()
		if err != nil {
			return text, ErrInternal.while(`encoding SQL literal`).because(err)
		}
		return appendLiteral(text, out, dialect)
	}

	val := valueOf(src)
	if !val.IsValid() {
		return append(text, Null{}.String()...), nil
	}

	switch inner := val.Interface().(type) {
	case uuid.UUID:
		return appendStringLiteral(text, inner.String(), dialect), nil
	case time.Time:
		return appendStringLiteral(text, inner.Format(time.RFC3339Nano), dialect), nil
	}

	switch val.Kind() {
	case r.Bool:
		if dialect != nil && dialect.NumericBools {
			if val.Bool() {
				return append(text, `1`...), nil
			}
			return append(text, `0`...), nil
		}
		return strconv.AppendBool(text, val.Bool()), nil

	case r.Int8, r.Int16, r.Int32, r.Int64, r.Int:
		return strconv.AppendInt(text, val.Int(), 10), nil

	case r.Uint8, r.Uint16, r.Uint32, r.Uint64, r.Uint:
		return strconv.AppendUint(text, val.Uint(), 10), nil

	case r.Float32, r.Float64:
		num := val.Float()
		if math.IsNaN(num) || math.IsInf(num, 0) {
			return text, errUnsupportedType(`encoding SQL literal`, val.Type())
		}
		return strconv.AppendFloat(text, num, 'f', -1, val.Type().Bits()), nil

	case r.String:
		return appendStringLiteral(text, val.String(), dialect), nil

	default:
		if val.Kind() == r.Slice && val.Type().Elem().Kind() == r.Uint8 {
			return appendStringLiteral(text, string(val.Bytes()), dialect), nil
		}
		return text, errUnsupportedType(`encoding SQL literal`, val.Type())
	}
}

func appendStringLiteral(text []byte, val string, dialect *Dialect) []byte {
	switch dialect.strings() {
	case StringsPostgres:
		return append(text, strings.TrimPrefix(pq.QuoteLiteral(val), ` `)...)
	case StringsBackslash:
		val = strings.ReplaceAll(val, `\`, `\\`)
	}

	text = append(text, quoteSingle)
	if strings.IndexByte(val, quoteSingle) < 0 {
		text = append(text, val...)
	} else {
		text = append(text, strings.ReplaceAll(val, `'`, `''`)...)
	}
	text = append(text, quoteSingle)
	return text
}
