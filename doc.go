/*
Data as select: converts rows of literal data into a SQL expression that can be
used like a table, inside joins, inserts, and updates, without a staging table.
Every piece of SQL is an `Expr` that appends text and arguments to a buffer,
and fragments compose by nesting.

Key Features

• Two encodings of literal data. A union of single-row selects works on
virtually every database:

	select $1 as name, $2 as id union all select $3 as name, $4 as id

A "values" derived table is more compact, and is used for dialects that
support it:

	select v.name, v.id from (values ($1, $2), ($3, $4)) as v (name, id)

• Dialect capabilities are plain data. `Dialect.TableValues` decides the
encoding; `DefaultDialects` knows that MSSQL and Snowflake support table
values, and `LoadDialects` reads more descriptors from YAML.

• Column names and aliases are quoted only when required, with the dialect's
quote character. Lowercase names stay bare, which keeps them compatible with
dialects that fold unquoted names to upper case, such as Snowflake.

• Missing data is an error, never a silent null. `ErrMissingColumn` is returned
before any expression is produced.

• Empty input produces a typed zero-row select, which stays embeddable.

• Values become "$N" ordinal parameters by default, or inline literals with
`Builder.Inline` for drivers that don't accept that syntax, such as the
"sqlserver" driver for MSSQL.

• Composable: `Query` renumerates parameters when interpolating fragments into
handwritten SQL.

Examples

See `DataAsSelect`, `Builder`, and `Query.Append` for examples.
*/
package datasel
