package datasel

import (
	"fmt"

	"github.com/mitranim/sqlp"
)

/*
If true (default), unused query parameters cause panics in functions like
`Query.Append`. If false, unused parameters are ok. Turning this off can be
convenient in development, when changing queries rapidly.
*/
var CheckUnused = true

/*
Interface that allows compatibility between different query variants. Subquery
insertion, supported by `Query.Append()` and `Query.AppendNamed()`, detects
instances of this interface and of `Expr`, rather than the concrete type
`Query`, allowing external code to implement its own variants.
*/
type IQuery interface{ QueryAppend(*Query) }

/*
Tool for composing handwritten SQL with fragments produced by this package.
Contains query text and arguments.

Automatically renumerates ordinal placeholders when appending code, making it
easy to avoid mis-numbering. See `.Append()`.

Supports named parameters. See `.AppendNamed()`.

Composable: both `.Append()` and `.AppendNamed()` automatically interpolate
arguments that implement `Expr` or `IQuery`, such as the output of
`DataAsSelect`, combining the arguments and renumerating the parameters as
appropriate.

Always uses Postgres-style ordinal parameters of the form `$N`.
*/
type Query struct {
	Text []byte
	Args []any
}

// Implement `fmt.Stringer`.
func (self Query) String() string {
	return bytesToMutableString(self.Text)
}

/*
Implement `IQuery`, allowing compatibility between different implementations,
wrappers, etc.
*/
func (self Query) QueryAppend(out *Query) {
	out.Append(bytesToMutableString(self.Text), self.Args...)
}

// Implement the `Expr` interface, making this a sub-expression.
func (self Query) AppendExpr(text []byte, args []any) ([]byte, []any) {
	out := Query{text, args}
	out.AppendQuery(self)
	return out.Text, out.Args
}

/*
Appends code and arguments. Renumerates ordinal parameters, offsetting them by
the previous argument count. The count in the code always starts from `$1`.

Composable: automatically interpolates any instances of `Expr` or `IQuery`
found in the arguments, combining the arguments and renumerating the
parameters as appropriate.

For example, this:

	rows, _ := datasel.SelectUnion(datasel.RowsOf([]datasel.Dict{{"id": 10}}), datasel.Column{Name: "id"})

	var query Query
	query.Append(`insert into some_table (id) $1 returning $2`, rows, datasel.Str(`id`))

	text := query.String()
	args := query.Args

Is equivalent to this:

	text := `insert into some_table (id) select $1 as id returning id`
	args := []any{10}

Panics when: the code is malformed; the code has named parameters; a parameter
doesn't have a corresponding argument; an argument doesn't have a corresponding
parameter.
*/
func (self *Query) Append(src string, args ...any) {
	tokenizer := sqlp.Tokenizer{Source: src}
	startOffset := len(self.Args)
	appendNonQueries(&self.Args, args)
	used := make([]bool, len(args))

	self.Text = maybeAppendSpace(self.Text)

	for {
		node := tokenizer.Next()
		if node == nil {
			break
		}

		switch node := node.(type) {
		case sqlp.NodeOrdinalParam:
			index := node.Index()
			if index < 0 || index >= len(args) {
				panic(Err{
					Code:  ErrCodeOrdinalOutOfBounds,
					While: `appending to query`,
					Cause: fmt.Errorf(`ordinal parameter %v exceeds argument count %v`, node, len(args)),
				})
			}

			used[index] = true
			if !self.interpolate(args[index]) {
				ord := sqlp.NodeOrdinalParam(int(node) + startOffset - queryArgsBefore(args, index))
				ord.Append(&self.Text)
			}

		case sqlp.NodeNamedParam:
			panic(Err{
				Code:  ErrCodeUnexpectedParameter,
				While: `appending to query`,
				Cause: fmt.Errorf(`expected only ordinal params, got named param %q`, node),
			})

		default:
			node.Append(&self.Text)
		}
	}

	if CheckUnused {
		for ind, arg := range args {
			if !used[ind] {
				panic(Err{
					Code:  ErrCodeUnusedArgument,
					While: `appending to query`,
					Cause: fmt.Errorf(`unused argument %#v at index %v`, arg, ind),
				})
			}
		}
	}
}

/*
Appends code and named arguments. The code must have named parameters in the
form ":identifier". The keys in the arguments map must have the form
"identifier", without a leading ":".

Internally, converts named parameters to ordinal parameters of the form `$N`,
such as the ones used by `.Append()`.

Composable: automatically interpolates any instances of `Expr` or `IQuery`
found in the arguments, combining the arguments and renumerating the
parameters as appropriate.

For example, this:

	var query Query
	query.AppendNamed(
		`select * from :data as _ where id = :id`,
		map[string]any{"data": datasel.Subquery{...}, "id": 10},
	)

Panics when: the code is malformed; the code has ordinal parameters; a parameter
doesn't have a corresponding argument; an argument doesn't have a corresponding
parameter.
*/
func (self *Query) AppendNamed(src string, args map[string]any) {
	tokenizer := sqlp.Tokenizer{Source: src}
	namedToOrd := make(map[sqlp.NodeNamedParam]sqlp.NodeOrdinalParam, len(args))
	self.Text = maybeAppendSpace(self.Text)

	for {
		node := tokenizer.Next()
		if node == nil {
			break
		}

		switch node := node.(type) {
		case sqlp.NodeOrdinalParam:
			panic(Err{
				Code:  ErrCodeUnexpectedParameter,
				While: `appending to query`,
				Cause: fmt.Errorf(`expected only named params, got ordinal param %q`, node),
			})

		case sqlp.NodeNamedParam:
			arg, found := args[string(node)]
			if !found {
				panic(Err{
					Code:  ErrCodeMissingArgument,
					While: `appending to query`,
					Cause: fmt.Errorf(`missing named argument %q`, node),
				})
			}

			if self.interpolate(arg) {
				// Value doesn't matter. This allows detection of unused arguments.
				namedToOrd[node] = 0
				continue
			}

			ord, ok := namedToOrd[node]
			if !ok {
				self.Args = append(self.Args, arg)
				ord = sqlp.NodeOrdinalParam(len(self.Args))
				namedToOrd[node] = ord
			}
			ord.Append(&self.Text)

		default:
			node.Append(&self.Text)
		}
	}

	if CheckUnused {
		for key := range args {
			_, ok := namedToOrd[sqlp.NodeNamedParam(key)]
			if !ok {
				panic(Err{
					Code:  ErrCodeUnusedArgument,
					While: `appending to query`,
					Cause: fmt.Errorf(`unused named argument %q`, key),
				})
			}
		}
	}
}

/*
Convenience method, inverse of `IQuery.QueryAppend`. Appends the other query to
this one, combining the arguments and renumerating the ordinal parameters as
appropriate.
*/
func (self *Query) AppendQuery(query IQuery) {
	if query != nil {
		query.QueryAppend(self)
	}
}

/*
"Zeroes" the query, keeping any already-allocated capacity. Similar to
`query = datasel.Query{}`, but slightly clearer and marginally more efficient
for subsequent query building.
*/
func (self *Query) Clear() {
	self.Text = self.Text[:0]
	self.Args = self.Args[:0]
}

// Shortcut for making a `Query` via `Query.Append`.
func QueryOf(src string, args ...any) Query {
	var query Query
	query.Append(src, args...)
	return query
}

/*
Appends the argument in place if it's a query or an expression, returning true.
Returns false for plain arguments. Expressions number their own parameters
after the existing args, which is consistent with `appendNonQueries` having
already added every plain argument.
*/
func (self *Query) interpolate(val any) bool {
	switch val := val.(type) {
	case IQuery:
		val.QueryAppend(self)
		return true
	case Expr:
		bui := Bui{self.Text, self.Args}
		bui.Expr(val)
		self.Text, self.Args = bui.Get()
		return true
	default:
		return false
	}
}

func isQuery(val any) bool {
	switch val.(type) {
	case IQuery, Expr:
		return true
	default:
		return false
	}
}

func appendNonQueries(buf *[]any, args []any) {
	for _, arg := range args {
		if !isQuery(arg) {
			*buf = append(*buf, arg)
		}
	}
}

// Number of interpolated arguments preceding the given index, which don't
// occupy a slot in the resulting args.
func queryArgsBefore(args []any, index int) (count int) {
	for _, arg := range args[:index] {
		if isQuery(arg) {
			count++
		}
	}
	return
}
