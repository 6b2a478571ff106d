package datasel

import (
	"database/sql"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestLit(t *testing.T) {
	test := func(exp string, val any, dialect *Dialect) {
		t.Helper()
		testExpr(t, rei(exp), Lit{val, dialect})
	}

	t.Run(`null`, func(t *testing.T) {
		test(`null`, nil, nil)
		test(`null`, (*int)(nil), nil)
		test(`null`, []byte(nil), nil)
		test(`null`, sql.NullString{}, nil)
	})

	t.Run(`bool`, func(t *testing.T) {
		test(`true`, true, nil)
		test(`false`, false, nil)
		test(`true`, true, DialectByName(Postgres))
		test(`1`, true, DialectByName(MSSQL))
		test(`0`, false, DialectByName(MSSQL))
	})

	t.Run(`number`, func(t *testing.T) {
		test(`0`, 0, nil)
		test(`-12`, int64(-12), nil)
		test(`7`, uint8(7), nil)
		test(`18446744073709551615`, uint64(math.MaxUint64), nil)
		test(`1.5`, 1.5, nil)
		test(`0.25`, float32(0.25), nil)
		test(`1000000000000000000000`, 1e21, nil)
		test(`3`, sql.NullInt64{Int64: 3, Valid: true}, nil)
	})

	t.Run(`string`, func(t *testing.T) {
		test(`''`, ``, nil)
		test(`'Jack'`, `Jack`, nil)
		test(`'it''s'`, `it's`, nil)
		test(`'a\b'`, `a\b`, nil)
		test(`'a\\b'`, `a\b`, DialectByName(MySQL))
		test(`'it''s a\\b'`, `it's a\b`, DialectByName(MySQL))
		test(`'it''s'`, `it's`, DialectByName(Postgres))
		test(`E'a\\b'`, `a\b`, DialectByName(Postgres))
		test(`'abc'`, []byte(`abc`), nil)
		test(`'one'`, sql.NullString{String: `one`, Valid: true}, nil)
	})

	t.Run(`pointer`, func(t *testing.T) {
		val := `one`
		test(`'one'`, &val, nil)
	})

	t.Run(`time`, func(t *testing.T) {
		test(`'2024-01-02T03:04:05Z'`, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), nil)
		test(`'2024-01-02T03:04:05.5Z'`, time.Date(2024, 1, 2, 3, 4, 5, 5e8, time.UTC), nil)

		val := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		test(`'2024-01-02T03:04:05Z'`, &val, nil)
		test(`null`, (*time.Time)(nil), nil)
		test(`'2024-01-02T03:04:05Z'`, sql.NullTime{Time: val, Valid: true}, nil)
	})

	t.Run(`uuid`, func(t *testing.T) {
		test(
			`'6ba7b810-9dad-11d1-80b4-00c04fd430c8'`,
			uuid.MustParse(`6ba7b810-9dad-11d1-80b4-00c04fd430c8`),
			nil,
		)

		val := uuid.MustParse(`6ba7b810-9dad-11d1-80b4-00c04fd430c8`)
		test(`'6ba7b810-9dad-11d1-80b4-00c04fd430c8'`, &val, nil)
	})

	t.Run(`spacing`, func(t *testing.T) {
		testExprs(t, rei(`select 'one'`), Str(`select`), Lit{`one`, nil})
		testExprs(t, rei(`select E'a\\b'`), Str(`select`), Lit{`a\b`, DialectByName(Postgres)})
	})

	t.Run(`unsupported`, func(t *testing.T) {
		panics(t, `type []int has no SQL literal form`, func() {
			_ = Lit{[]int{1}, nil}.String()
		})
		panics(t, `type float64 has no SQL literal form`, func() {
			_ = Lit{math.NaN(), nil}.String()
		})
		panics(t, `type float64 has no SQL literal form`, func() {
			_ = Lit{math.Inf(1), nil}.String()
		})
		panics(t, `UnsupportedType`, func() {
			_ = Lit{struct{}{}, nil}.String()
		})
	})
}

func Test_appendLiteral_errors(t *testing.T) {
	_, err := appendLiteral(nil, map[string]int{}, nil)
	errIs(t, ErrUnsupportedType, err)

	_, err = appendLiteral(nil, math.NaN(), nil)
	errIs(t, ErrUnsupportedType, err)
}
