package datasel

import (
	"errors"
	"fmt"
	r "reflect"
)

/*
Error codes. You probably shouldn't use this directly; instead, use the `Err`
variables with `errors.Is`.
*/
type ErrCode string

const (
	ErrCodeUnknown             ErrCode = ""
	ErrCodeInvalidInput        ErrCode = "InvalidInput"
	ErrCodeMissingColumn       ErrCode = "MissingColumn"
	ErrCodeMissingArgument     ErrCode = "MissingArgument"
	ErrCodeUnexpectedParameter ErrCode = "UnexpectedParameter"
	ErrCodeUnusedArgument      ErrCode = "UnusedArgument"
	ErrCodeOrdinalOutOfBounds  ErrCode = "OrdinalOutOfBounds"
	ErrCodeUnsupportedType     ErrCode = "UnsupportedType"
	ErrCodeInternal            ErrCode = "Internal"
)

/*
Use blank error variables to detect error types:

	if errors.Is(err, datasel.ErrMissingColumn) {
		// Handle specific error.
	}

Note that errors returned by this package can't be compared via `==` because
they may include additional details about the circumstances. When compared by
`errors.Is`, they compare `.Cause` and fall back on `.Code`.
*/
var (
	ErrInvalidInput        Err = Err{Code: ErrCodeInvalidInput, Cause: errors.New(`invalid input`)}
	ErrMissingColumn       Err = Err{Code: ErrCodeMissingColumn, Cause: errors.New(`missing column`)}
	ErrMissingArgument     Err = Err{Code: ErrCodeMissingArgument, Cause: errors.New(`missing argument`)}
	ErrUnexpectedParameter Err = Err{Code: ErrCodeUnexpectedParameter, Cause: errors.New(`unexpected parameter`)}
	ErrUnusedArgument      Err = Err{Code: ErrCodeUnusedArgument, Cause: errors.New(`unused argument`)}
	ErrOrdinalOutOfBounds  Err = Err{Code: ErrCodeOrdinalOutOfBounds, Cause: errors.New(`ordinal parameter exceeds arguments`)}
	ErrUnsupportedType     Err = Err{Code: ErrCodeUnsupportedType, Cause: errors.New(`unsupported type`)}
	ErrInternal            Err = Err{Code: ErrCodeInternal, Cause: errors.New(`internal error`)}
)

// Type of errors returned by this package.
type Err struct {
	Code  ErrCode
	While string
	Cause error
}

// Implement `error`.
func (self Err) Error() string {
	if self == (Err{}) {
		return ""
	}
	msg := `[datasel]`
	if self.Code != ErrCodeUnknown {
		msg += fmt.Sprintf(` %s`, self.Code)
	}
	if self.While != "" {
		msg += fmt.Sprintf(` while %v`, self.While)
	}
	if self.Cause != nil {
		msg += `: ` + self.Cause.Error()
	}
	return msg
}

// Implement a hidden interface in "errors".
func (self Err) Is(other error) bool {
	if self.Cause != nil && errors.Is(self.Cause, other) {
		return true
	}
	err, ok := other.(Err)
	return ok && err.Code == self.Code
}

// Implement a hidden interface in "errors".
func (self Err) Unwrap() error {
	return self.Cause
}

func (self Err) while(while string) Err {
	self.While = while
	return self
}

func (self Err) because(cause error) Err {
	self.Cause = cause
	return self
}

/*
Cause of `ErrMissingColumn`. Identifies the offending row by its index in the
input and the column by its name. Use `errors.As` to extract:

	var cause datasel.MissingColumnError
	if errors.As(err, &cause) {
		fmt.Println(cause.Row, cause.Column)
	}
*/
type MissingColumnError struct {
	Row    int
	Column string
}

// Implement `error`.
func (self MissingColumnError) Error() string {
	return fmt.Sprintf(`row %v has no value for column %q`, self.Row, self.Column)
}

func errMissingColumn(while string, row int, col string) Err {
	return ErrMissingColumn.while(while).because(MissingColumnError{row, col})
}

func errInvalidInput(while string, cause error) Err {
	return ErrInvalidInput.while(while).because(cause)
}

func errUnsupportedType(while string, typ r.Type) Err {
	return ErrUnsupportedType.while(while).because(fmt.Errorf(`type %v has no SQL literal form`, typeName(typ)))
}

func errf(pat string, args ...any) error { return fmt.Errorf(pat, args...) }
