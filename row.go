package datasel

import (
	"fmt"
	"reflect"

	"github.com/mitranim/refut"
)

// Name of the struct tag that maps struct fields to column names.
const TagNameDb = `db`

/*
Variant of `map[string]any` conforming to the `Row` interface. A key with a nil
value is a legitimate SQL null, while a missing key is an error when the key is
requested as a column.
*/
type Dict map[string]any

// Implement the `Row` interface.
func (self Dict) GotNamed(key string) (any, bool) {
	val, ok := self[key]
	return val, ok
}

/*
Converts a struct into a `Dict`, using the "db" tags of its exported fields as
keys. Fields without a "db" tag, or tagged with "-", are skipped. Also accepts
a struct pointer; a nil pointer produces an empty `Dict`. Panics with
`ErrInvalidInput` for non-struct inputs.
*/
func StructDict(src any) Dict {
	out := Dict{}
	traverseStructDbFields(src, func(key string, val any) {
		out[key] = val
	})
	return out
}

/*
Converts an arbitrary slice into rows. Supports:

	* `[]Row`, returned as-is.
	* `[]Dict` and `[]map[string]any`.
	* Slices of structs or struct pointers, converted via `StructDict`.

Nil input produces nil. Panics with `ErrInvalidInput` for other inputs.
*/
func RowsOf(src any) []Row {
	switch src := src.(type) {
	case nil:
		return nil
	case []Row:
		return src
	case []Dict:
		out := make([]Row, len(src))
		for ind, val := range src {
			out[ind] = val
		}
		return out
	case []map[string]any:
		out := make([]Row, len(src))
		for ind, val := range src {
			out[ind] = Dict(val)
		}
		return out
	}

	rval := valueOf(src)
	if !rval.IsValid() {
		return nil
	}
	if rval.Kind() != reflect.Slice && rval.Kind() != reflect.Array {
		panic(errInvalidInput(`converting to rows`, fmt.Errorf(`expected slice, got %q`, rval.Type())))
	}

	out := make([]Row, rval.Len())
	for ind := range out {
		elem := rval.Index(ind).Interface()
		row, ok := elem.(Row)
		if ok {
			out[ind] = row
			continue
		}
		out[ind] = StructDict(elem)
	}
	return out
}

func sfieldColumnName(sfield reflect.StructField) string {
	return refut.TagIdent(sfield.Tag.Get(TagNameDb))
}

func traverseStructDbFields(input any, fun func(string, any)) {
	rval := reflect.ValueOf(input)
	if !rval.IsValid() {
		panic(errInvalidInput(`traversing struct for DB fields`, fmt.Errorf(`expected struct, got nil`)))
	}

	rtype := refut.RtypeDeref(rval.Type())
	if rtype.Kind() != reflect.Struct {
		panic(errInvalidInput(`traversing struct for DB fields`, fmt.Errorf(`expected struct, got %q`, rtype)))
	}

	if refut.IsRvalNil(rval) {
		return
	}

	err := refut.TraverseStructRval(valueDeref(rval), func(rval reflect.Value, sfield reflect.StructField, _ []int) error {
		colName := sfieldColumnName(sfield)
		if colName == "" {
			return nil
		}
		fun(colName, rval.Interface())
		return nil
	})
	if err != nil {
		panic(err)
	}
}
