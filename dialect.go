package datasel

import (
	"io"

	"gopkg.in/yaml.v3"
)

// Names of the dialects known to this package.
const (
	Generic   = `generic`
	Postgres  = `postgres`
	MySQL     = `mysql`
	SQLite    = `sqlite`
	MSSQL     = `mssql`
	Snowflake = `snowflake`
)

/*
Enum for the escaping style of inline string literals. Only matters when
values are encoded as literals, see `Builder.Inline`.
*/
type Strings string

const (
	// Quote with single quotes, doubling any single quotes in the content.
	StringsStandard Strings = `standard`

	// Same as standard, but also escape backslashes. Used by MySQL.
	StringsBackslash Strings = `backslash`

	// Use `pq.QuoteLiteral`, which switches to `E'...'` for backslashes.
	StringsPostgres Strings = `postgres`
)

/*
Describes the capabilities of a target SQL dialect. Carries no connection or
execution capability. Used by `Builder` to choose between a union of literal
selects and a "values" derived table, and by `Lit` to encode inline literals.

The zero value describes a generic dialect: no table values, boolean literals,
double quotes for identifiers that require quoting, standard string escaping.

A descriptor doesn't affect parameter syntax: parameters are always "$N". For
MSSQL, whose "sqlserver" driver expects "@pN", use `Builder.Inline`.
*/
type Dialect struct {
	Name string `yaml:"name"`

	// If true, `(values (...), (...)) as v (a, b)` can be used as a
	// derived table with aliased columns.
	TableValues bool `yaml:"table_values"`

	// If true, inline booleans are encoded as `1` and `0`.
	NumericBools bool `yaml:"numeric_bools"`

	// Identifier quote character, used only for names that can't be written
	// bare, see `Name`. Empty means `"`.
	Quote string `yaml:"quote"`

	// Escaping style of inline string literals. Empty means `StringsStandard`.
	Strings Strings `yaml:"strings"`
}

func (self *Dialect) supportsTableValues() bool {
	return self != nil && self.TableValues
}

func (self *Dialect) quote() byte {
	if self == nil || self.Quote == `` {
		return quoteDouble
	}
	return self.Quote[0]
}

func (self *Dialect) strings() Strings {
	if self == nil || self.Strings == `` {
		return StringsStandard
	}
	return self.Strings
}

func (self *Dialect) ident(path ...string) Name {
	return Name{self.quote(), path}
}

func (self Dialect) validate() error {
	if self.Name == `` {
		return errInvalidInput(`validating dialect`, errf(`missing dialect name`))
	}
	if len(self.Quote) > 1 {
		return errInvalidInput(`validating dialect`, errf(`dialect %q: quote must be a single character, got %q`, self.Name, self.Quote))
	}
	switch self.Strings {
	case ``, StringsStandard, StringsBackslash, StringsPostgres:
		return nil
	default:
		return errInvalidInput(`validating dialect`, errf(`dialect %q: unknown string style %q`, self.Name, self.Strings))
	}
}

// Registry of dialect descriptors by name.
type Dialects map[string]Dialect

/*
Returns the descriptors of the dialects known to this package. Only MSSQL and
Snowflake declare `TableValues`.
*/
func DefaultDialects() Dialects {
	return Dialects{
		Generic:   {Name: Generic},
		Postgres:  {Name: Postgres, Strings: StringsPostgres},
		MySQL:     {Name: MySQL, Quote: "`", Strings: StringsBackslash},
		SQLite:    {Name: SQLite},
		MSSQL:     {Name: MSSQL, TableValues: true, NumericBools: true},
		Snowflake: {Name: Snowflake, TableValues: true},
	}
}

/*
Returns the descriptor registered under the given name, or nil if the name is
unknown. Passing the nil result to `DataAsSelect` selects the portable union
encoding.
*/
func (self Dialects) Get(name string) *Dialect {
	val, ok := self[name]
	if !ok {
		return nil
	}
	return &val
}

/*
Returns the known descriptor for the given name from `DefaultDialects`, or nil
if the name is unknown.
*/
func DialectByName(name string) *Dialect {
	return DefaultDialects().Get(name)
}

/*
Decodes a YAML list of dialect descriptors and merges them over
`DefaultDialects`. Entries with a known name replace the default descriptor.
Example input:

	- name: snowflake
	  table_values: true
	- name: duckdb
	  table_values: true
	  strings: standard
*/
func LoadDialects(src io.Reader) (Dialects, error) {
	var list []Dialect
	err := yaml.NewDecoder(src).Decode(&list)
	if err != nil && err != io.EOF {
		return nil, errInvalidInput(`decoding dialects`, err)
	}

	out := DefaultDialects()
	for _, val := range list {
		err := val.validate()
		if err != nil {
			return nil, err
		}
		out[val.Name] = val
	}
	return out, nil
}
