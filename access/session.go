// Package access decides who may use the generator: an allow-list of
// approved emails, a validated session with a fixed grace period, and
// best-effort audit trails for downloads and access requests.
package access

import (
	"regexp"
	"strings"
	"time"
)

// GracePeriod - how long a previously validated session keeps working
// when the allow-list cannot be consulted.
const GracePeriod = 24 * time.Hour

// Session is a validated identity. ValidatedAt is the instant the
// allow-list last confirmed the email.
type Session struct {
	Email       string
	ValidatedAt time.Time
}

// WithinGracePeriod reports whether the validation is still fresh at
// the given instant. The period is strict: exactly GracePeriod old is
// already outside.
func (s Session) WithinGracePeriod(now time.Time) bool {
	if s.ValidatedAt.IsZero() {
		return false
	}
	return now.Sub(s.ValidatedAt) < GracePeriod
}

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail checks the minimal shape local@domain.tld.
func ValidEmail(email string) bool {
	return emailRegexp.MatchString(email)
}

// NormalizeEmail lowercases and trims, matching how allow-list entries
// are stored.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
