package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/zeptools/billgen/db/sqldb"
)

type Handle struct {
	db *sql.DB
}

// Ensure mysql.Handle implements sqldb.Handle interface
var _ sqldb.Handle = (*Handle)(nil)

func (h *Handle) Exec(ctx context.Context, query string, args ...any) (sqldb.Result, error) {
	result, err := h.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return &Result{result: result}, nil
}

func (h *Handle) QueryRows(ctx context.Context, query string, args ...any) (sqldb.Rows, error) {
	rows, err := h.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return &Rows{rows: rows}, nil
}

func (h *Handle) QueryRow(ctx context.Context, query string, args ...any) sqldb.Row {
	row := h.db.QueryRowContext(ctx, query, args...)
	return &Row{row: row}
}

func (h *Handle) InsertStmt(ctx context.Context, query string, args ...any) (sqldb.Result, error) {
	trimmed := strings.TrimSpace(query)
	if !strings.HasPrefix(strings.ToUpper(trimmed), "INSERT") {
		return nil, fmt.Errorf("InsertStmt must start with INSERT")
	}
	result, err := h.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return &Result{result: result}, nil
}

func (h *Handle) Prepare(ctx context.Context, query string) (sqldb.PreparedStmt, error) {
	stmt, err := h.db.PrepareContext(ctx, query)
	if err != nil {
		return nil, err
	}
	return &PreparedStmt{stmt: stmt}, nil
}
