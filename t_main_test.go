package datasel

import (
	"errors"
	"fmt"
	r "reflect"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type Person struct {
	Name string `db:"name"`
	Id   int    `db:"id"`
	Note string
	Skip string `db:"-"`
}

var testCols = []Column{{Name: `name`}, {Name: `id`}}

func testRows() []Row {
	return []Row{
		Dict{`name`: `Jack`, `id`: 1},
		Dict{`name`: `Ann`, `id`: 2},
	}
}

type list = []any

type Encoder interface {
	fmt.Stringer
	Appender
	Expr
}

func testEncoder(t testing.TB, exp string, val Encoder) {
	t.Helper()
	eq(t, exp, val.String())
	eq(t, exp, string(val.Append(nil)))
	eq(t, exp, reify(val).Text)
}

func testExpr(t testing.TB, exp R, val Encoder) {
	t.Helper()
	testEncoder(t, exp.Text, val)
	testExprs(t, exp, val)
}

func testExprs(t testing.TB, exp R, vals ...Expr) {
	t.Helper()
	eq(t, exp, reify(vals...))
}

func reify(vals ...Expr) R {
	text, args := Reify(vals...)
	return R{text, args}.Norm()
}

// Short for "reified".
func rei(text string, args ...any) R { return R{text, args}.Norm() }

// Short for "reified". Text and args of an expression, for comparisons.
type R struct {
	Text string
	Args list
}

// We don't care about the difference between nil and zero-length arg lists.
func (self R) Norm() R {
	if self.Args == nil {
		self.Args = list{}
	}
	return self
}

// Builds the expression, failing the test on error.
func build(t testing.TB, fun func([]Row, ...Column) (Expr, error), rows []Row, cols ...Column) Expr {
	t.Helper()
	out, err := fun(rows, cols...)
	if err != nil {
		t.Fatalf(`unexpected error: %+v`, err)
	}
	return out
}

func eq(t testing.TB, exp, act any) {
	t.Helper()
	if !r.DeepEqual(exp, act) {
		t.Fatalf(`
expected (detailed):
	%#[1]v
actual (detailed):
	%#[2]v
expected (simple):
	%[1]v
actual (simple):
	%[2]v
`, exp, act)
	}
}

// Like `eq`, but reports a structural diff, which is more readable for maps and
// long slices.
func diff(t testing.TB, exp, act any) {
	t.Helper()
	if val := cmp.Diff(exp, act); val != `` {
		t.Fatalf("unexpected difference (-expected +actual):\n%v", val)
	}
}

func errIs(t testing.TB, exp, act error) {
	t.Helper()
	if !errors.Is(act, exp) {
		t.Fatalf(`expected error matching %q, got %+v`, exp, act)
	}
}

func panics(t testing.TB, msg string, fun func()) {
	t.Helper()
	val := catchAny(fun)

	if val == nil {
		t.Fatalf(`expected %v to panic, found no panic`, funcName(fun))
	}

	str := fmt.Sprint(val)
	if !strings.Contains(str, msg) {
		t.Fatalf(
			`expected %v to panic with a message containing %q, found %q`,
			funcName(fun), msg, str,
		)
	}
}

func funcName(val any) string {
	return runtime.FuncForPC(r.ValueOf(val).Pointer()).Name()
}

func catchAny(fun func()) (val any) {
	defer recAny(&val)
	fun()
	return
}

func recAny(ptr *any) { *ptr = recover() }
