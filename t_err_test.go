package datasel

import (
	"errors"
	"fmt"
	"testing"
)

func Benchmark_errf(b *testing.B) {
	for ind := 0; ind < b.N; ind++ {
		_ = errf(`error %v`, `message`)
	}
}

func TestErr_formatting(t *testing.T) {
	test := func(src Err, exp string) {
		t.Helper()
		eq(t, exp, src.Error())
		eq(t, exp, fmt.Sprintf(`%v`, src))
	}

	test(Err{}, ``)

	test(
		Err{While: `doing some operation`},
		`[datasel] while doing some operation`,
	)

	test(
		Err{Cause: errors.New(`some cause`)},
		`[datasel]: some cause`,
	)

	test(
		Err{Code: ErrCodeInvalidInput, While: `doing some operation`, Cause: errors.New(`some cause`)},
		`[datasel] InvalidInput while doing some operation: some cause`,
	)

	test(
		errMissingColumn(`building`, 3, `id`),
		`[datasel] MissingColumn while building: row 3 has no value for column "id"`,
	)
}

func TestErr_Is(t *testing.T) {
	err := errMissingColumn(`building`, 3, `id`)

	eq(t, true, errors.Is(err, ErrMissingColumn))
	eq(t, true, errors.Is(err, MissingColumnError{3, `id`}))
	eq(t, false, errors.Is(err, MissingColumnError{4, `id`}))
	eq(t, false, errors.Is(err, ErrInvalidInput))
	eq(t, false, errors.Is(err, ErrUnsupportedType))

	wrapped := fmt.Errorf(`outer: %w`, err)
	eq(t, true, errors.Is(wrapped, ErrMissingColumn))

	var cause MissingColumnError
	eq(t, true, errors.As(wrapped, &cause))
	eq(t, MissingColumnError{3, `id`}, cause)

	eq(t, true, errors.Is(ErrInvalidInput.while(`one`), ErrInvalidInput))
	eq(t, true, errors.Is(ErrInvalidInput.because(errors.New(`two`)), ErrInvalidInput))
}

func TestErr_Unwrap(t *testing.T) {
	cause := errors.New(`some cause`)
	eq(t, cause, errors.Unwrap(ErrInternal.because(cause)))
	eq(t, nil, errors.Unwrap(Err{}))
}

func TestMissingColumnError(t *testing.T) {
	eq(t, `row 0 has no value for column "name"`, MissingColumnError{0, `name`}.Error())
}
