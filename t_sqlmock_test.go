package datasel_test

import (
	"context"
	"database/sql/driver"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/tabsql/datasel"
)

func TestSqlmock_insert_select(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	expr, err := datasel.DataAsSelect(
		datasel.DialectByName(datasel.Postgres),
		datasel.RowsOf([]person{{`Jack`, 1}, {`Ann`, 2}}),
		peopleCols...,
	)
	require.NoError(t, err)

	var query datasel.Query
	query.Append(`insert into people (name, id) $1 on conflict (id) do update set name = $2`, expr, `unknown`)

	mock.ExpectExec(`insert into people (name, id) select $2 as name, $3 as id union all select $4 as name, $5 as id on conflict (id) do update set name = $1`).
		WithArgs(`unknown`, `Jack`, int64(1), `Ann`, int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	res, err := db.ExecContext(context.Background(), query.String(), query.Args...)
	require.NoError(t, err)

	count, err := res.RowsAffected()
	require.NoError(t, err)
	require.EqualValues(t, 2, count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSqlmock_values_join(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	id0 := uuid.MustParse(`6ba7b810-9dad-11d1-80b4-00c04fd430c8`)
	id1 := uuid.MustParse(`6ba7b811-9dad-11d1-80b4-00c04fd430c8`)

	expr, err := datasel.DataAsSelect(
		datasel.DialectByName(datasel.Snowflake),
		[]datasel.Row{datasel.Dict{`id`: id0}, datasel.Dict{`id`: id1}},
		datasel.Column{Name: `id`, Type: `varchar`},
	)
	require.NoError(t, err)

	var query datasel.Query
	query.AppendNamed(
		`select users.name from users join :ids using (id) where users.active = :active`,
		map[string]any{`ids`: datasel.Subquery{Expr: expr, Alias: `ids`}, `active`: true},
	)

	mock.ExpectQuery(`select users.name from users join (select v.id from (values (cast($1 as varchar)), (cast($2 as varchar))) as v (id)) as ids using (id) where users.active = $3`).
		WithArgs(driver.Value(id0.String()), driver.Value(id1.String()), true).
		WillReturnRows(sqlmock.NewRows([]string{`name`}).AddRow(`Jack`).AddRow(`Ann`))

	rows, err := db.QueryContext(context.Background(), query.String(), query.Args...)
	require.NoError(t, err)
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		names = append(names, name)
	}
	require.NoError(t, rows.Err())
	require.Equal(t, []string{`Jack`, `Ann`}, names)
	require.NoError(t, mock.ExpectationsWereMet())
}
