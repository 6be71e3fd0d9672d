package access

import (
	"context"
	"log"
	"time"

	"github.com/zeptools/billgen/db/sqldb"
	"github.com/zeptools/billgen/nullable"
)

// AuditLog appends download and access-request records. Appends are
// best-effort: failures are logged and never block the primary action.
type AuditLog struct {
	DB sqldb.Client
}

func (l *AuditLog) LogDownload(ctx context.Context, email string, template string, format string, sourceIP string) {
	_, err := l.DB.Exec(ctx,
		`INSERT INTO download_logs (email, template, format, source_ip, created_at) VALUES (?, ?, ?, ?, ?)`,
		NormalizeEmail(email), template, format, nullString(sourceIP), time.Now().UTC(),
	)
	if err != nil {
		log.Printf("[WARN] download log append failed: %v", err)
	}
}

func (l *AuditLog) LogRequest(ctx context.Context, email string, reason string, sourceIP string) {
	_, err := l.DB.Exec(ctx,
		`INSERT INTO access_requests (email, reason, source_ip, created_at) VALUES (?, ?, ?, ?)`,
		NormalizeEmail(email), reason, nullString(sourceIP), time.Now().UTC(),
	)
	if err != nil {
		log.Printf("[WARN] access request append failed: %v", err)
	}
}

func nullString(s string) *nullable.String {
	n := &nullable.String{}
	n.String = s
	n.Valid = s != ""
	return n
}

// DownloadEntry is one row of the downloads trail.
type DownloadEntry struct {
	Email     string
	Template  string
	Format    string
	SourceIP  nullable.String
	CreatedAt time.Time
}

func (e *DownloadEntry) TargetFields() []any {
	return []any{&e.Email, &e.Template, &e.Format, &e.SourceIP, &e.CreatedAt}
}

var downloadsOrder = sqldb.OrderByClause([]sqldb.OrderBy{
	{Column: sqldb.NewColumnOrPanic("created_at"), Desc: true},
})

// RecentDownloads lists the latest entries, newest first. Serves the
// admin socket's downloads command.
func (l *AuditLog) RecentDownloads(ctx context.Context, limit int) ([]*DownloadEntry, error) {
	return sqldb.QueryItems[DownloadEntry, *DownloadEntry](ctx, l.DB,
		`SELECT email, template, format, source_ip, created_at FROM download_logs`+downloadsOrder+` LIMIT ?`,
		limit,
	)
}
