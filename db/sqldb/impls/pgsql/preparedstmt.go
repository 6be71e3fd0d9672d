package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zeptools/billgen/db/sqldb"
)

type PreparedStmt struct {
	conn     *pgxpool.Conn
	stmtName string
}

var _ sqldb.PreparedStmt = (*PreparedStmt)(nil)

func (p *PreparedStmt) Query(ctx context.Context, args ...any) (sqldb.Rows, error) {
	rows, err := p.conn.Query(ctx, p.stmtName, args...)
	if err != nil {
		return nil, err
	}
	return &Rows{rows: rows}, nil
}

func (p *PreparedStmt) Exec(ctx context.Context, args ...any) (sqldb.Result, error) {
	tag, err := p.conn.Exec(ctx, p.stmtName, args...)
	if err != nil {
		return nil, err
	}
	return &Result{tag: tag}, nil
}

func (p *PreparedStmt) Close() error {
	defer p.conn.Release()
	return p.conn.Conn().Deallocate(context.Background(), p.stmtName)
}
