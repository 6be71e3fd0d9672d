package access

import (
	"time"
)

// Decision is the outcome of an access check.
type Decision int

const (
	// Allowed - email on the allow-list, or covered by the grace period.
	Allowed Decision = iota
	// Denied - the allow-list answered and the email is not on it.
	// Terminal: the grace period never overrides a denial.
	Denied
	// Unavailable - list unreachable and no grace coverage.
	Unavailable
)

func (d Decision) String() string {
	switch d {
	case Allowed:
		return "allowed"
	case Denied:
		return "denied"
	default:
		return "unavailable"
	}
}

// Gate checks emails against the allow-list with the grace-period
// fallback.
type Gate struct {
	List *Allowlist
	Now  func() time.Time
}

func NewGate(list *Allowlist) *Gate {
	return &Gate{List: list, Now: time.Now}
}

// Check decides for an email. cached is the caller's existing session,
// nil when there is none. The grace fallback applies only when the
// list is unavailable AND the cached session is for the same email and
// still fresh; an explicit denial always stands.
func (g *Gate) Check(email string, cached *Session) Decision {
	email = NormalizeEmail(email)
	ok, err := g.List.Contains(email)
	if err != nil {
		// stale list and store failures degrade the same way
		if cached != nil && NormalizeEmail(cached.Email) == email && cached.WithinGracePeriod(g.Now()) {
			return Allowed
		}
		return Unavailable
	}
	if !ok {
		return Denied
	}
	return Allowed
}
