package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zeptools/billgen/db/sqldb"
)

type Handle struct {
	pool *pgxpool.Pool
}

var _ sqldb.Handle = (*Handle)(nil)

// rewrite converts '?' placeholders to the native '$n' form so call
// sites can share statements with the mysql backend.
func rewrite(query string) string {
	return sqldb.ReplaceStaticPlaceholders(query, '$')
}

func (h *Handle) Exec(ctx context.Context, query string, args ...any) (sqldb.Result, error) {
	tag, err := h.pool.Exec(ctx, rewrite(query), args...)
	if err != nil {
		return nil, err
	}
	return &Result{tag: tag}, nil
}

func (h *Handle) QueryRows(ctx context.Context, query string, args ...any) (sqldb.Rows, error) {
	rows, err := h.pool.Query(ctx, rewrite(query), args...)
	if err != nil {
		return nil, err
	}
	return &Rows{rows: rows}, nil
}

func (h *Handle) QueryRow(ctx context.Context, query string, args ...any) sqldb.Row {
	row := h.pool.QueryRow(ctx, rewrite(query), args...)
	return &Row{row: row}
}

func (h *Handle) InsertStmt(ctx context.Context, query string, args ...any) (sqldb.Result, error) {
	trimmed := strings.TrimSpace(query)
	if !strings.HasPrefix(strings.ToUpper(trimmed), "INSERT") {
		return nil, fmt.Errorf("InsertStmt must start with INSERT")
	}
	query = rewrite(query)
	// append RETURNING id if missing so LastInsertId works
	if !strings.Contains(strings.ToUpper(query), "RETURNING") {
		query += " RETURNING id"
		var id int64
		if err := h.pool.QueryRow(ctx, query, args...).Scan(&id); err != nil {
			return nil, err
		}
		return &Result{lastInsertID: id}, nil
	}
	tag, err := h.pool.Exec(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return &Result{tag: tag}, nil
}

func (h *Handle) Prepare(ctx context.Context, query string) (sqldb.PreparedStmt, error) {
	conn, err := h.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	stmtName := fmt.Sprintf("stmt_%p", conn)
	if _, err = conn.Conn().Prepare(ctx, stmtName, rewrite(query)); err != nil {
		conn.Release()
		return nil, err
	}
	return &PreparedStmt{conn: conn, stmtName: stmtName}, nil
}
