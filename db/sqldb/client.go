package sqldb

import (
	"context"
)

type Client interface {
	Init() error
	Close() error
	GetHandle() Handle
	Handle // Methods required for Handle are also required, so, promote it
	GetConf() *Conf
	GetDSN() string
	Ping(ctx context.Context) error
	BeginTx(ctx context.Context) (Tx, error)
}

// Handle is the statement-level surface shared by clients and
// transactions-free call sites.
type Handle interface {
	// Exec executes SQL statement like INSERT, UPDATE, DELETE.
	Exec(ctx context.Context, query string, args ...any) (Result, error)

	QueryRows(ctx context.Context, query string, args ...any) (Rows, error) // Eager. Fail upfront on statement execution
	QueryRow(ctx context.Context, query string, args ...any) Row            // Lazy. only fails at Scan()

	// InsertStmt - Single INSERT statement, placeholders only
	// to guarantee Result.LastInsertId() works for auto-increment `id`
	InsertStmt(ctx context.Context, query string, args ...any) (Result, error)

	Prepare(ctx context.Context, query string) (PreparedStmt, error)
}
