package access

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/zeptools/billgen/db/sqldb"
)

// ErrListUnavailable signals that no sufficiently fresh allow-list is
// loaded. Callers fall back to the session grace period.
var ErrListUnavailable = errors.New("access: allow-list unavailable")

// DefaultStaleAfter - a cached allow-list older than this no longer
// answers membership questions.
const DefaultStaleAfter = 15 * time.Minute

// AllowlistStore reads and replaces the allow-list table.
type AllowlistStore struct {
	DB sqldb.Client
}

func (s *AllowlistStore) Load(ctx context.Context) ([]string, error) {
	rows, err := s.DB.QueryRows(ctx, `SELECT email FROM allowlist`)
	if err != nil {
		return nil, fmt.Errorf("access: load allowlist: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("[WARN] rows.Close() failed: %v", err)
		}
	}()
	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("access: scan allowlist: %w", err)
		}
		emails = append(emails, NormalizeEmail(email))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("access: iterate allowlist: %w", err)
	}
	return emails, nil
}

// Replace swaps the whole table for the given emails in one
// transaction, used by the upstream directory sync.
func (s *AllowlistStore) Replace(ctx context.Context, emails []string) error {
	tx, err := s.DB.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("access: replace allowlist: %w", err)
	}
	if _, err = tx.Exec(ctx, `DELETE FROM allowlist`); err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("access: clear allowlist: %w", err)
	}
	for _, email := range emails {
		normalized := NormalizeEmail(email)
		if normalized == "" {
			continue
		}
		if _, err = tx.Exec(ctx, `INSERT INTO allowlist (email) VALUES (?)`, normalized); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("access: insert allowlist entry: %w", err)
		}
	}
	return tx.Commit(ctx)
}

type allowSet struct {
	emails   map[string]struct{}
	loadedAt time.Time
}

// Allowlist is the in-process membership cache. Lookups never touch
// the database; a scheduler job and the admin socket call Reload.
// Readers swap through an atomic pointer, no lock on the hot path.
type Allowlist struct {
	store      *AllowlistStore
	staleAfter time.Duration
	now        func() time.Time

	set atomic.Pointer[allowSet]
}

func NewAllowlist(store *AllowlistStore) *Allowlist {
	return &Allowlist{
		store:      store,
		staleAfter: DefaultStaleAfter,
		now:        time.Now,
	}
}

// Reload fetches the table and swaps the cache. A failed reload keeps
// the previous set in place.
func (a *Allowlist) Reload(ctx context.Context) (int, error) {
	emails, err := a.store.Load(ctx)
	if err != nil {
		return 0, err
	}
	next := &allowSet{
		emails:   make(map[string]struct{}, len(emails)),
		loadedAt: a.now(),
	}
	for _, email := range emails {
		next.emails[email] = struct{}{}
	}
	a.set.Store(next)
	return len(next.emails), nil
}

// Contains answers membership from the cache. ErrListUnavailable when
// nothing is loaded yet or the cache has gone stale.
func (a *Allowlist) Contains(email string) (bool, error) {
	set := a.set.Load()
	if set == nil {
		return false, ErrListUnavailable
	}
	if a.now().Sub(set.loadedAt) > a.staleAfter {
		return false, ErrListUnavailable
	}
	_, ok := set.emails[NormalizeEmail(email)]
	return ok, nil
}

// Store exposes the backing SQL store, for callers that write the
// table before reloading.
func (a *Allowlist) Store() *AllowlistStore {
	return a.store
}

// Count reports the cached entry count, -1 when nothing is loaded.
func (a *Allowlist) Count() int {
	set := a.set.Load()
	if set == nil {
		return -1
	}
	return len(set.emails)
}
