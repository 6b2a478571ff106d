package datasel

/*
Short for "expression". Defines an arbitrary SQL expression. The method appends
arbitrary SQL text. In both the input and output, the arguments must correspond
to the parameters in the SQL text. This package always generates Postgres-style
ordinal parameters such as "$1", numbered by the position of the argument in
the args slice, so expressions nested into other expressions renumerate
themselves automatically.

This method is allowed to panic. Use `(*Bui).CatchExprs` to catch
expression-encoding panics and convert them to errors. Fragments returned by
`Builder` are validated in advance and don't panic.

All `Expr` types in this package also implement `Appender` and `fmt.Stringer`.
*/
type Expr interface {
	AppendExpr([]byte, []any) ([]byte, []any)
}

/*
Appends a text representation. Sometimes allows better efficiency than
`fmt.Stringer`. Implemented by all `Expr` types in this package.
*/
type Appender interface {
	Append([]byte) []byte
}

/*
Source of values for one row of literal data. Must return the value for the
given column name, and false if the row has no such key. A nil value with true
is a legitimate SQL null. This package provides map-based `Dict`, and
`StructDict` for structs. See `RowsOf` for converting slices.
*/
type Row interface {
	GotNamed(string) (any, bool)
}
