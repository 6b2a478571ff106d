package datasel

import (
	"fmt"
)

// Default alias of the derived table produced by `Builder.Values`.
const DefaultAlias = `v`

/*
Describes one column of literal data: the key used to read the value from each
`Row`, which is also the output label, and an optional SQL type. When the type
is non-empty, every value of the column is wrapped in `cast(... as <type>)`.
When it's empty, the database infers the type from the value.
*/
type Column struct {
	Name string
	Type string
}

/*
Represents a single-row projection without a source table:

	select $1 as name, $2 as id

Each element is usually `As`. Empty input is a nop.
*/
type SelectRow []Expr

// Implement the `Expr` interface, making this a sub-expression.
func (self SelectRow) AppendExpr(text []byte, args []any) ([]byte, []any) {
	if len(self) == 0 {
		return text, args
	}
	return Prefix{`select`, Comma(self)}.AppendExpr(text, args)
}

// Implement the `Appender` interface, sometimes allowing more efficient text
// encoding.
func (self SelectRow) Append(text []byte) []byte { return exprAppend(&self, text) }

// Implement the `fmt.Stringer` interface for debug purposes.
func (self SelectRow) String() string { return exprString(&self) }

/*
Combines select-shaped expressions with "union all", which preserves duplicate
rows. A single element is appended as-is, without any operator. Empty input is
a nop. See `UnionAllOf` for the normalizing constructor.
*/
type UnionAll []Expr

// Implement the `Expr` interface, making this a sub-expression.
func (self UnionAll) AppendExpr(text []byte, args []any) ([]byte, []any) {
	bui := Bui{text, args}
	for ind, val := range self {
		if ind > 0 {
			bui.Str(`union all`)
		}
		bui.Expr(val)
	}
	return bui.Get()
}

// Implement the `Appender` interface, sometimes allowing more efficient text
// encoding.
func (self UnionAll) Append(text []byte) []byte { return exprAppend(&self, text) }

// Implement the `fmt.Stringer` interface for debug purposes.
func (self UnionAll) String() string { return exprString(&self) }

/*
Folds the given expressions into one with "union all". Returns nil for empty
input and the only element for a single input, so the result never has a
dangling or redundant operator.
*/
func UnionAllOf(vals ...Expr) Expr {
	switch len(vals) {
	case 0:
		return nil
	case 1:
		return vals[0]
	default:
		return UnionAll(vals)
	}
}

// Parenthesized list of expressions, such as one row of a "values" clause.
type Tuple []Expr

// Implement the `Expr` interface, making this a sub-expression.
func (self Tuple) AppendExpr(text []byte, args []any) ([]byte, []any) {
	return Parens{Comma(self)}.AppendExpr(text, args)
}

// Implement the `Appender` interface, sometimes allowing more efficient text
// encoding.
func (self Tuple) Append(text []byte) []byte { return exprAppend(&self, text) }

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Tuple) String() string { return exprString(&self) }

/*
Represents a select from a "values" derived table with aliased columns:

	select v.name, v.id from (values ($1, $2), ($3, $4)) as v (name, id)

Names are quoted only when required, see `Name`, with the dialect's quote
character; nil means double quotes. Every
tuple must have one element per column. Empty rows are a nop, because "values"
can't be empty; `Builder` uses `EmptyTable` in that case.
*/
type ValuesTable struct {
	Dialect *Dialect
	Alias   string
	Cols    []string
	Rows    []Tuple
}

// Implement the `Expr` interface, making this a sub-expression.
func (self ValuesTable) AppendExpr(text []byte, args []any) ([]byte, []any) {
	bui := Bui{text, args}
	if len(self.Rows) == 0 {
		return bui.Get()
	}

	alias := self.Alias
	if alias == `` {
		alias = DefaultAlias
	}

	proj := make(Comma, len(self.Cols))
	names := make(Comma, len(self.Cols))
	for ind, col := range self.Cols {
		proj[ind] = self.Dialect.ident(alias, col)
		names[ind] = self.Dialect.ident(col)
	}

	rows := make(Comma, len(self.Rows))
	for ind, val := range self.Rows {
		rows[ind] = val
	}

	bui.Str(`select`)
	bui.Set(proj.AppendExpr(bui.Get()))
	bui.Str(`from (values`)
	bui.Set(rows.AppendExpr(bui.Get()))
	bui.Str(`) as`)
	bui.Set(self.Dialect.ident(alias).AppendExpr(bui.Get()))
	bui.Set(Parens{names}.AppendExpr(bui.Get()))
	return bui.Get()
}

// Implement the `Appender` interface, sometimes allowing more efficient text
// encoding.
func (self ValuesTable) Append(text []byte) []byte { return exprAppend(&self, text) }

// Implement the `fmt.Stringer` interface for debug purposes.
func (self ValuesTable) String() string { return exprString(&self) }

/*
Represents a typed zero-row table with the given columns:

	select null as name, cast(null as int) as id where 1 = 0

Used by `Builder` for empty input, so that both encodings stay select-shaped
and embeddable when there's no data.
*/
type EmptyTable struct {
	Dialect *Dialect
	Cols    []Column
}

// Implement the `Expr` interface, making this a sub-expression.
func (self EmptyTable) AppendExpr(text []byte, args []any) ([]byte, []any) {
	row := make(SelectRow, len(self.Cols))
	for ind, col := range self.Cols {
		row[ind] = As{Cast{Null{}, col.Type}, self.Dialect.ident(col.Name)}
	}

	bui := Bui{text, args}
	bui.Set(row.AppendExpr(bui.Get()))
	bui.Str(`where 1 = 0`)
	return bui.Get()
}

// Implement the `Appender` interface, sometimes allowing more efficient text
// encoding.
func (self EmptyTable) Append(text []byte) []byte { return exprAppend(&self, text) }

// Implement the `fmt.Stringer` interface for debug purposes.
func (self EmptyTable) String() string { return exprString(&self) }

/*
Converts rows of literal data into a select-shaped expression that can be used
as a subquery, a join target, or the source of "insert ... select", without a
staging table. The zero value is ready to use.

Every method validates the entire input before returning, and returns either a
complete expression or an error, never both. A row without a value for one of
the columns causes `ErrMissingColumn`; there is no defaulting to null. An
empty row set produces `EmptyTable` regardless of the encoding. A builder holds
no state between calls and is safe for concurrent use.
*/
type Builder struct {
	// Optional hint about the target dialect. Nil means the union encoding,
	// double quotes for names that require quoting, and generic literals.
	Dialect *Dialect

	/*
	If true, values are encoded as inline SQL literals via `Lit`. Otherwise they
	become Postgres-style ordinal parameters such as "$1" with corresponding
	args, regardless of the dialect. Drivers with a different placeholder
	syntax, such as "@p1" for the "sqlserver" driver of MSSQL, don't accept
	those, and should use inline literals instead.
	*/
	Inline bool

	// Alias of the derived table in the "values" encoding. Empty means
	// `DefaultAlias`.
	Alias string
}

/*
Chooses the encoding from the dialect: a "values" derived table if the dialect
declares `TableValues`, otherwise a union of literal selects. Nil dialect means
the union.
*/
func (self Builder) Build(rows []Row, cols ...Column) (Expr, error) {
	if self.Dialect.supportsTableValues() {
		return self.Values(rows, cols...)
	}
	return self.Union(rows, cols...)
}

/*
Encodes the rows as a union of single-row selects, one per row:

	select $1 as name, $2 as id union all select $3 as name, $4 as id

A single row produces a single select without "union all". Portable across
virtually all dialects, at the cost of statement size linear in the row count.
*/
func (self Builder) Union(rows []Row, cols ...Column) (Expr, error) {
	const while = `building union of literal selects`

	cells, err := self.cells(while, rows, cols)
	if err != nil {
		return nil, err
	}
	if len(cells) == 0 {
		return EmptyTable{self.Dialect, cols}, nil
	}

	selects := make([]Expr, len(cells))
	for ind, row := range cells {
		out := make(SelectRow, len(cols))
		for colInd, col := range cols {
			out[colInd] = As{row[colInd], self.Dialect.ident(col.Name)}
		}
		selects[ind] = out
	}
	return UnionAllOf(selects...), nil
}

/*
Encodes the rows as one select over a "values" derived table:

	select v.name, v.id from (values ($1, $2), ($3, $4)) as v (name, id)

Requires a dialect that supports "values" as an aliased derived table; see
`Dialect.TableValues`. The statement structure doesn't grow with the row count.
*/
func (self Builder) Values(rows []Row, cols ...Column) (Expr, error) {
	const while = `building values table`

	alias := self.Alias
	if alias == `` {
		alias = DefaultAlias
	}
	err := validateIdent(alias, self.Dialect.quote())
	if err != nil {
		return nil, err.(Err).while(while)
	}

	cells, err := self.cells(while, rows, cols)
	if err != nil {
		return nil, err
	}
	if len(cells) == 0 {
		return EmptyTable{self.Dialect, cols}, nil
	}

	names := make([]string, len(cols))
	for ind, col := range cols {
		names[ind] = col.Name
	}

	tuples := make([]Tuple, len(cells))
	for ind, row := range cells {
		tuples[ind] = Tuple(row)
	}
	return ValuesTable{self.Dialect, alias, names, tuples}, nil
}

/*
Validates the columns and reads one typed cell per row and column, in column
order. Every error is detected here, before any expression is returned.
*/
func (self Builder) cells(while string, rows []Row, cols []Column) ([][]Expr, error) {
	if len(cols) == 0 {
		return nil, errInvalidInput(while, fmt.Errorf(`expected at least one column`))
	}

	quote := self.Dialect.quote()
	for _, col := range cols {
		err := validateIdent(col.Name, quote)
		if err != nil {
			return nil, err.(Err).while(while)
		}
	}

	out := make([][]Expr, len(rows))
	for rowInd, row := range rows {
		if row == nil {
			return nil, errInvalidInput(while, fmt.Errorf(`row %v is nil`, rowInd))
		}

		cells := make([]Expr, len(cols))
		for colInd, col := range cols {
			val, ok := row.GotNamed(col.Name)
			if !ok {
				return nil, errMissingColumn(while, rowInd, col.Name)
			}

			cell, err := self.cell(while, val)
			if err != nil {
				return nil, err
			}
			cells[colInd] = Cast{cell, col.Type}
		}
		out[rowInd] = cells
	}
	return out, nil
}

func (self Builder) cell(while string, val any) (Expr, error) {
	if !self.Inline {
		return Arg{val}, nil
	}

	text, err := appendLiteral(nil, val, self.Dialect)
	if err != nil {
		return nil, err.(Err).while(while)
	}
	return Str(bytesToMutableString(text)), nil
}

/*
Shortcut for `Builder{}.Union`. Encodes the rows as a union of single-row
selects, using ordinal parameters for the values.
*/
func SelectUnion(rows []Row, cols ...Column) (Expr, error) {
	return Builder{}.Union(rows, cols...)
}

/*
Shortcut for `Builder{}.Values`. Encodes the rows as a select over a "values"
derived table, using ordinal parameters for the values.
*/
func SelectValues(rows []Row, cols ...Column) (Expr, error) {
	return Builder{}.Values(rows, cols...)
}

/*
Shortcut for `Builder{Dialect: dialect}.Build`. Treats literal data as a
select-shaped expression, choosing the encoding by the dialect. Nil dialect is
allowed and selects the portable union encoding.
*/
func DataAsSelect(dialect *Dialect, rows []Row, cols ...Column) (Expr, error) {
	return Builder{Dialect: dialect}.Build(rows, cols...)
}
