package datasel

import (
	"strconv"
)

/*
Prealloc tool. Makes a `Bui` with the specified capacity of the text and args
buffers.
*/
func MakeBui(textCap, argsCap int) Bui {
	return Bui{
		make([]byte, 0, textCap),
		make([]any, 0, argsCap),
	}
}

/*
Short for "builder". Tiny shortcut for building SQL expressions. Used
internally by every `Expr` implementation in this package.
*/
type Bui struct {
	Text []byte
	Args []any
}

// Returns text and args as-is. Useful shortcut for passing them to
// `AppendExpr`.
func (self Bui) Get() ([]byte, []any) {
	return self.Text, self.Args
}

/*
Replaces text and args with the inputs. The following idiom is equivalent to
`bui.Expr` but more efficient if the expression type is concrete, avoiding an
interface-induced allocation:

	bui.Set(SomeExpr{}.AppendExpr(bui.Get()))
*/
func (self *Bui) Set(text []byte, args []any) {
	self.Text = text
	self.Args = args
}

// Shortcut for `self.String(), self.Args`. Go database drivers tend to require
// `string, []any` as inputs for queries and statements.
func (self Bui) Reify() (string, []any) {
	return self.String(), self.Args
}

// Returns inner text as a string, performing a free cast.
func (self Bui) String() string {
	return bytesToMutableString(self.Text)
}

// Adds a space if the preceding text doesn't already end with a terminator.
func (self *Bui) Space() {
	self.Text = maybeAppendSpace(self.Text)
}

// Appends the provided string, delimiting it from the previous text with a
// space if necessary.
func (self *Bui) Str(val string) {
	self.Text = appendMaybeSpaced(self.Text, val)
}

/*
Appends an expression, delimited from the preceding text by a space, if
necessary. Nil input is a nop: nothing will be appended.
*/
func (self *Bui) Expr(val Expr) {
	if val != nil {
		self.Space()
		self.Set(val.AppendExpr(self.Get()))
	}
}

/*
Appends a sub-expression wrapped in parens. Nil input is a nop: nothing will be
appended.
*/
func (self *Bui) SubExpr(val Expr) {
	if val != nil {
		self.Str(`(`)
		self.Expr(val)
		self.Str(`)`)
	}
}

// Appends each expr by calling `(*Bui).Expr`. They will be space-separated as
// necessary.
func (self *Bui) Exprs(vals ...Expr) {
	for _, val := range vals {
		self.Expr(val)
	}
}

// Same as `(*Bui).Exprs` but catches panics. Since expression encoding may
// panic, this should be used for final reification by apps that insist on
// errors-as-values.
func (self *Bui) CatchExprs(vals ...Expr) (err error) {
	defer rec(&err)
	self.Exprs(vals...)
	return
}

/*
Appends an argument to `.Args` and a corresponding ordinal parameter such as
"$1" to `.Text`. The ordinal is the new length of the args slice, which keeps
parameters correct when the builder already contains other args.
*/
func (self *Bui) Arg(val any) {
	self.Args = append(self.Args, val)
	self.Space()
	self.Text = append(self.Text, ordinalParamPrefix)
	self.Text = strconv.AppendInt(self.Text, int64(len(self.Args)), 10)
}
