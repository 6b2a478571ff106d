package datasel

import (
	r "reflect"
	"regexp"
	"strings"
	"unsafe"
)

const (
	ordinalParamPrefix = '$'
	quoteSingle        = '\''
	quoteDouble        = '"'
)

var (
	charsetSpace      = new(charset).addStr(" \t\v")
	charsetNewline    = new(charset).addStr("\r\n")
	charsetWhitespace = new(charset).addSet(charsetSpace).addSet(charsetNewline)
	charsetDelimStart = new(charset).addSet(charsetWhitespace).addStr(`([{.`)
	charsetDelimEnd   = new(charset).addSet(charsetWhitespace).addStr(`,}])`)
)

type charset [256]bool

func (self *charset) has(val byte) bool { return self[val] }

func (self *charset) addStr(vals string) *charset {
	for _, val := range vals {
		self[val] = true
	}
	return self
}

func (self *charset) addSet(vals *charset) *charset {
	for ind, val := range vals {
		if val {
			self[ind] = true
		}
	}
	return self
}

/*
Allocation-free conversion. Reinterprets a byte slice as a string. Borrowed from
the standard library. Reasonably safe. Should not be used when the underlying
byte array is volatile.
*/
func bytesToMutableString(bytes []byte) string {
	return *(*string)(unsafe.Pointer(&bytes))
}

func maybeAppendSpace(val []byte) []byte {
	if hasDelimSuffix(bytesToMutableString(val)) {
		return val
	}
	return append(val, ` `...)
}

func appendMaybeSpaced(text []byte, suffix string) []byte {
	if !hasDelimSuffix(bytesToMutableString(text)) && !hasDelimPrefix(suffix) {
		text = append(text, ` `...)
	}
	text = append(text, suffix...)
	return text
}

func hasDelimPrefix(text string) bool {
	return len(text) == 0 || charsetDelimEnd.has(text[0])
}

func hasDelimSuffix(text string) bool {
	return len(text) == 0 || charsetDelimStart.has(text[len(text)-1])
}

func try(err error) {
	if err != nil {
		panic(err)
	}
}

func try1[A any](val A, err error) A {
	try(err)
	return val
}

// Must be deferred.
func rec(ptr *error) {
	val := recover()
	if val == nil {
		return
	}

	err, _ := val.(error)
	if err != nil {
		*ptr = err
		return
	}

	panic(val)
}

func exprAppend[A Expr](expr A, text []byte) []byte {
	text, _ = expr.AppendExpr(text, nil)
	return text
}

func exprString[A Expr](expr A) string {
	return bytesToMutableString(exprAppend(expr, nil))
}

var bareIdentRe = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Words that can't be used as bare column names or aliases in at least one of
// the known dialects.
var reservedWords = map[string]struct{}{
	`all`: {}, `and`: {}, `any`: {}, `array`: {}, `as`: {}, `asc`: {},
	`between`: {}, `both`: {}, `by`: {}, `case`: {}, `cast`: {}, `check`: {},
	`column`: {}, `constraint`: {}, `create`: {}, `cross`: {},
	`current_date`: {}, `current_time`: {}, `current_timestamp`: {},
	`current_user`: {}, `default`: {}, `delete`: {}, `desc`: {},
	`distinct`: {}, `do`: {}, `drop`: {}, `else`: {}, `end`: {}, `except`: {},
	`exists`: {}, `false`: {}, `fetch`: {}, `for`: {}, `foreign`: {},
	`from`: {}, `full`: {}, `grant`: {}, `group`: {}, `having`: {}, `in`: {},
	`inner`: {}, `insert`: {}, `intersect`: {}, `into`: {}, `is`: {},
	`join`: {}, `key`: {}, `lateral`: {}, `leading`: {}, `left`: {},
	`like`: {}, `limit`: {}, `natural`: {}, `not`: {}, `null`: {},
	`offset`: {}, `on`: {}, `only`: {}, `or`: {}, `order`: {}, `outer`: {},
	`primary`: {}, `references`: {}, `right`: {}, `select`: {},
	`session_user`: {}, `set`: {}, `some`: {}, `table`: {}, `then`: {},
	`to`: {}, `trailing`: {}, `true`: {}, `union`: {}, `unique`: {},
	`update`: {}, `user`: {}, `using`: {}, `values`: {}, `when`: {},
	`where`: {}, `window`: {}, `with`: {},
}

func isBareIdent(val string) bool {
	if !bareIdentRe.MatchString(val) {
		return false
	}
	_, ok := reservedWords[val]
	return !ok
}

func appendIdentPath(text []byte, quote byte, path []string, always bool) []byte {
	if len(path) == 0 {
		return text
	}
	if quote == 0 {
		quote = quoteDouble
	}

	text = maybeAppendSpace(text)
	for ind, val := range path {
		try(validateIdent(val, quote))
		if ind > 0 {
			text = append(text, `.`...)
		}
		if !always && isBareIdent(val) {
			text = append(text, val...)
			continue
		}
		text = append(text, quote)
		text = append(text, val...)
		text = append(text, quote)
	}
	return text
}

func validateIdent(val string, quote byte) error {
	if val == `` {
		return errInvalidInput(`encoding ident`, errf(`unexpected empty SQL identifier`))
	}
	if strings.IndexByte(val, quote) >= 0 {
		return errInvalidInput(`encoding ident`, errf(`unexpected %q in SQL identifier %q`, rune(quote), val))
	}
	return nil
}

func valueOf(val any) r.Value { return valueDeref(r.ValueOf(val)) }

func valueDeref(val r.Value) r.Value {
	for val.Kind() == r.Ptr {
		if val.IsNil() {
			return r.Value{}
		}
		val = val.Elem()
	}
	return val
}

func typeName(typ r.Type) string {
	if typ == nil {
		return `nil`
	}
	return typ.String()
}

func isNil(val any) bool {
	if val == nil {
		return true
	}
	rval := r.ValueOf(val)
	return isNilable(rval.Kind()) && rval.IsNil()
}

func isNilable(kind r.Kind) bool {
	switch kind {
	case r.Chan, r.Func, r.Interface, r.Map, r.Ptr, r.Slice, r.UnsafePointer:
		return true
	default:
		return false
	}
}
