package datasel

/*
Shortcut for interpolating strings into queries. Because this implements `Expr`,
when used as an argument in another expression, this will be directly
interpolated into the resulting query string.
*/
type Str string

// Implement the `Expr` interface, making this a sub-expression.
func (self Str) AppendExpr(text []byte, args []any) ([]byte, []any) {
	return self.Append(text), args
}

// Implement the `Appender` interface, sometimes allowing more efficient text
// encoding.
func (self Str) Append(text []byte) []byte {
	return appendMaybeSpaced(text, string(self))
}

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Str) String() string { return string(self) }

// Represents an SQL identifier, always double-quoted.
type Ident string

// Implement the `Expr` interface, making this a sub-expression.
func (self Ident) AppendExpr(text []byte, args []any) ([]byte, []any) {
	return self.Append(text), args
}

// Implement the `Appender` interface, sometimes allowing more efficient text
// encoding.
func (self Ident) Append(text []byte) []byte {
	return Quoted{quoteDouble, []string{string(self)}}.Append(text)
}

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Ident) String() string { return exprString(&self) }

/*
Represents a dot-separated path of SQL identifiers such as `"v"."name"`, where
each element is always wrapped in the given quote character, such as a grave
accent for MySQL. Zero quote means double quotes. Panics if an element is empty
or contains the quote character.
*/
type Quoted struct {
	Quote byte
	Path  []string
}

// Implement the `Expr` interface, making this a sub-expression.
func (self Quoted) AppendExpr(text []byte, args []any) ([]byte, []any) {
	return self.Append(text), args
}

// Implement the `Appender` interface, sometimes allowing more efficient text
// encoding.
func (self Quoted) Append(text []byte) []byte {
	return appendIdentPath(text, self.Quote, self.Path, true)
}

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Quoted) String() string { return exprString(&self) }

/*
Variant of `Quoted` that quotes an element only when it can't be written bare:
when it's not a lowercase identifier made of letters, digits and underscores,
or when it's a reserved word. `v.name` stays as-is, while `"Name"` and `"order"`
are quoted. Bare lowercase names resolve the same way in dialects that fold
unquoted names to lower case (Postgres) and to upper case (Snowflake), as long
as the surrounding query also writes them bare. Used for every column label and
alias generated by `Builder`.
*/
type Name struct {
	Quote byte
	Path  []string
}

// Implement the `Expr` interface, making this a sub-expression.
func (self Name) AppendExpr(text []byte, args []any) ([]byte, []any) {
	return self.Append(text), args
}

// Implement the `Appender` interface, sometimes allowing more efficient text
// encoding.
func (self Name) Append(text []byte) []byte {
	return appendIdentPath(text, self.Quote, self.Path, false)
}

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Name) String() string { return exprString(&self) }

// Equivalent to `Str("null")`, but zero-sized.
type Null struct{}

// Implement the `Expr` interface, making this a sub-expression.
func (self Null) AppendExpr(text []byte, args []any) ([]byte, []any) {
	return self.Append(text), args
}

// Implement the `Appender` interface, sometimes allowing more efficient text
// encoding.
func (self Null) Append(text []byte) []byte {
	return appendMaybeSpaced(text, self.String())
}

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Null) String() string { return `null` }

/*
Represents an arbitrary argument, always encoded as an ordinal parameter such
as "$1", even if the value implements `Expr`.
*/
type Arg [1]any

// Implement the `Expr` interface, making this a sub-expression.
func (self Arg) AppendExpr(text []byte, args []any) ([]byte, []any) {
	bui := Bui{text, args}
	bui.Arg(self[0])
	return bui.Get()
}

// Implement the `Appender` interface, sometimes allowing more efficient text
// encoding.
func (self Arg) Append(text []byte) []byte { return exprAppend(&self, text) }

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Arg) String() string { return exprString(&self) }

/*
Variable-sized sequence of expressions. When encoding, expressions will be
space-separated if necessary.
*/
type Exprs []Expr

// Implement the `Expr` interface, making this a sub-expression.
func (self Exprs) AppendExpr(text []byte, args []any) ([]byte, []any) {
	bui := Bui{text, args}
	for _, val := range self {
		bui.Expr(val)
	}
	return bui.Get()
}

// Implement the `Appender` interface, sometimes allowing more efficient text
// encoding.
func (self Exprs) Append(text []byte) []byte { return exprAppend(&self, text) }

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Exprs) String() string { return exprString(&self) }

// Sequence of expressions separated by commas. Nil elements are skipped.
type Comma []Expr

// Implement the `Expr` interface, making this a sub-expression.
func (self Comma) AppendExpr(text []byte, args []any) ([]byte, []any) {
	bui := Bui{text, args}
	var found bool
	for _, val := range self {
		if val == nil {
			continue
		}
		if found {
			bui.Str(`,`)
		}
		found = true
		bui.Expr(val)
	}
	return bui.Get()
}

// Implement the `Appender` interface, sometimes allowing more efficient text
// encoding.
func (self Comma) Append(text []byte) []byte { return exprAppend(&self, text) }

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Comma) String() string { return exprString(&self) }

/*
Arbitrary expression wrapped in parens. If the inner expression is nil, this is
represented as "()".
*/
type Parens [1]Expr

// Implement the `Expr` interface, making this a sub-expression.
func (self Parens) AppendExpr(text []byte, args []any) ([]byte, []any) {
	bui := Bui{text, args}
	bui.Str(`(`)
	bui.Expr(self[0])
	bui.Str(`)`)
	return bui.Get()
}

// Implement the `Appender` interface, sometimes allowing more efficient text
// encoding.
func (self Parens) Append(text []byte) []byte { return exprAppend(&self, text) }

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Parens) String() string { return exprString(&self) }

/*
Combines an expression with a string prefix. If the expr is nil, this is a nop,
and the prefix is ignored. Mostly an internal tool for building other
expression types.
*/
type Prefix struct {
	Prefix string
	Expr   Expr
}

// Implement the `Expr` interface, making this a sub-expression.
func (self Prefix) AppendExpr(text []byte, args []any) ([]byte, []any) {
	return Wrap{self.Prefix, self.Expr, ``}.AppendExpr(text, args)
}

// Implement the `Appender` interface, sometimes allowing more efficient text
// encoding.
func (self Prefix) Append(text []byte) []byte { return exprAppend(&self, text) }

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Prefix) String() string { return exprString(&self) }

/*
Combines an expression with a string prefix and suffix. If the expr is nil, this
is a nop, and the prefix and suffix are ignored. Mostly an internal tool for
building other expression types.
*/
type Wrap struct {
	Prefix string
	Expr   Expr
	Suffix string
}

// Implement the `Expr` interface, making this a sub-expression.
func (self Wrap) AppendExpr(text []byte, args []any) ([]byte, []any) {
	bui := Bui{text, args}

	if self.Expr != nil {
		bui.Str(self.Prefix)
		bui.Expr(self.Expr)
		bui.Str(self.Suffix)
	}

	return bui.Get()
}

// Implement the `Appender` interface, sometimes allowing more efficient text
// encoding.
func (self Wrap) Append(text []byte) []byte { return exprAppend(&self, text) }

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Wrap) String() string { return exprString(&self) }

/*
Represents an SQL type conversion such as `cast($1 as text)`. If the type is
empty, the expression is appended as-is.
*/
type Cast struct {
	Expr Expr
	Type string
}

// Implement the `Expr` interface, making this a sub-expression.
func (self Cast) AppendExpr(text []byte, args []any) ([]byte, []any) {
	bui := Bui{text, args}
	if self.Type == `` {
		bui.Expr(self.Expr)
		return bui.Get()
	}

	bui.Str(`cast(`)
	if self.Expr == nil {
		bui.Set(Null{}.AppendExpr(bui.Get()))
	} else {
		bui.Expr(self.Expr)
	}
	bui.Str(`as`)
	bui.Str(self.Type)
	bui.Str(`)`)
	return bui.Get()
}

// Implement the `Appender` interface, sometimes allowing more efficient text
// encoding.
func (self Cast) Append(text []byte) []byte { return exprAppend(&self, text) }

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Cast) String() string { return exprString(&self) }

/*
Represents a labeled expression such as `$1 as name`. The label is usually
`Name`, `Ident` or `Quoted`. If the label is nil, the expression is appended as-is.
*/
type As struct {
	Expr  Expr
	Label Expr
}

// Implement the `Expr` interface, making this a sub-expression.
func (self As) AppendExpr(text []byte, args []any) ([]byte, []any) {
	bui := Bui{text, args}
	bui.Expr(self.Expr)
	if self.Label != nil {
		bui.Str(`as`)
		bui.Expr(self.Label)
	}
	return bui.Get()
}

// Implement the `Appender` interface, sometimes allowing more efficient text
// encoding.
func (self As) Append(text []byte) []byte { return exprAppend(&self, text) }

// Implement the `fmt.Stringer` interface for debug purposes.
func (self As) String() string { return exprString(&self) }

/*
Represents sub-select wrapping such as `(<some_expr>) as alias`, which makes a
select-shaped fragment usable in a "from" or "join" clause. If the alias is
empty, "_" is used. The alias is quoted only when required, see `Name`. If the
inner expression is nil, this is a nop.
*/
type Subquery struct {
	Expr  Expr
	Alias string
}

// Implement the `Expr` interface, making this a sub-expression.
func (self Subquery) AppendExpr(text []byte, args []any) ([]byte, []any) {
	bui := Bui{text, args}
	if self.Expr != nil {
		alias := self.Alias
		if alias == `` {
			alias = `_`
		}
		bui.Set(Parens{self.Expr}.AppendExpr(bui.Get()))
		bui.Set(As{nil, Name{Path: []string{alias}}}.AppendExpr(bui.Get()))
	}
	return bui.Get()
}

// Implement the `Appender` interface, sometimes allowing more efficient text
// encoding.
func (self Subquery) Append(text []byte) []byte { return exprAppend(&self, text) }

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Subquery) String() string { return exprString(&self) }

/*
Encodes the provided expressions and returns the resulting text and args.
Shortcut for using `(*Bui).Exprs` and `Bui.Reify`. Actual code may want to use
`Bui`:

	bui := MakeBui(4096, 64)
	panic(bui.CatchExprs(someExprs...))
	text, args := bui.Reify()
*/
func Reify(vals ...Expr) (string, []any) {
	var bui Bui
	bui.Exprs(vals...)
	return bui.Reify()
}
