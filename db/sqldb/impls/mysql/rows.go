package mysql

import (
	"database/sql"
	"errors"

	"github.com/zeptools/billgen/db/sqldb"
)

type Rows struct {
	rows *sql.Rows
}

// Ensure mysql.Rows implements sqldb.Rows interface
var _ sqldb.Rows = (*Rows)(nil)

func (r *Rows) Next() bool {
	return r.rows.Next()
}

func (r *Rows) Scan(dest ...any) error {
	return r.rows.Scan(dest...)
}

func (r *Rows) Close() error {
	return r.rows.Close()
}

func (r *Rows) NextResultSet() bool {
	return r.rows.NextResultSet()
}

func (r *Rows) Err() error {
	return r.rows.Err()
}

type Row struct {
	row *sql.Row
}

// Ensure mysql.Row implements sqldb.Row interface
var _ sqldb.Row = (*Row)(nil)

func (r *Row) Scan(dest ...any) error {
	err := r.row.Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		return sqldb.ErrNoRows
	}
	return err
}

type Result struct {
	result sql.Result
}

// Ensure mysql.Result implements sqldb.Result interface
var _ sqldb.Result = (*Result)(nil)

func (r *Result) RowsAffected() (int64, error) {
	return r.result.RowsAffected()
}

func (r *Result) LastInsertId() (int64, error) {
	return r.result.LastInsertId()
}
