package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/zeptools/billgen/db/sqldb"
)

type Tx struct {
	tx pgx.Tx
}

var _ sqldb.Tx = (*Tx)(nil)

func (t *Tx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *Tx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *Tx) Exec(ctx context.Context, query string, args ...any) (sqldb.Result, error) {
	tag, err := t.tx.Exec(ctx, rewrite(query), args...)
	if err != nil {
		return nil, err
	}
	return &Result{tag: tag}, nil
}

func (t *Tx) Query(ctx context.Context, query string, args ...any) (sqldb.Rows, error) {
	rows, err := t.tx.Query(ctx, rewrite(query), args...)
	if err != nil {
		return nil, err
	}
	return &Rows{rows: rows}, nil
}
