package access

import (
	"testing"
	"time"
)

func TestWithinGracePeriodBoundary(t *testing.T) {
	validated := time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)
	s := Session{Email: "a@b.com", ValidatedAt: validated}

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"immediately", validated, true},
		{"one millisecond short of 24h", validated.Add(GracePeriod - time.Millisecond), true},
		{"exactly 24h", validated.Add(GracePeriod), false},
		{"one millisecond past 24h", validated.Add(GracePeriod + time.Millisecond), false},
	}
	for _, tc := range tests {
		if got := s.WithinGracePeriod(tc.now); got != tc.want {
			t.Errorf("%s: WithinGracePeriod = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestWithinGracePeriodZeroValidation(t *testing.T) {
	var s Session
	if s.WithinGracePeriod(time.Now()) {
		t.Fatal("zero ValidatedAt must never be within the grace period")
	}
}

func TestValidEmail(t *testing.T) {
	valid := []string{"a@b.com", "user.name@sub.example.org", "x+y@z.in"}
	invalid := []string{"", "plain", "a@b", "a b@c.com", "@x.com", "a@.com "}
	for _, e := range valid {
		if !ValidEmail(e) {
			t.Errorf("ValidEmail(%q) = false, want true", e)
		}
	}
	for _, e := range invalid {
		if ValidEmail(e) {
			t.Errorf("ValidEmail(%q) = true, want false", e)
		}
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  User@Example.COM "); got != "user@example.com" {
		t.Fatalf("NormalizeEmail = %q", got)
	}
}

// loadedList builds an Allowlist with a pre-populated cache and a
// controllable clock, bypassing the SQL store.
func loadedList(t *testing.T, now time.Time, emails ...string) *Allowlist {
	t.Helper()
	a := &Allowlist{staleAfter: DefaultStaleAfter, now: func() time.Time { return now }}
	set := &allowSet{emails: make(map[string]struct{}, len(emails)), loadedAt: now}
	for _, e := range emails {
		set.emails[NormalizeEmail(e)] = struct{}{}
	}
	a.set.Store(set)
	return a
}

func TestAllowlistContains(t *testing.T) {
	now := time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)
	a := loadedList(t, now, "Alice@Example.com")

	if ok, err := a.Contains("alice@example.com"); err != nil || !ok {
		t.Fatalf("Contains(member) = %v, %v", ok, err)
	}
	if ok, err := a.Contains("  ALICE@EXAMPLE.COM "); err != nil || !ok {
		t.Fatalf("Contains must normalize before lookup, got %v, %v", ok, err)
	}
	if ok, err := a.Contains("bob@example.com"); err != nil || ok {
		t.Fatalf("Contains(non-member) = %v, %v", ok, err)
	}
}

func TestAllowlistUnavailable(t *testing.T) {
	empty := &Allowlist{staleAfter: DefaultStaleAfter, now: time.Now}
	if _, err := empty.Contains("a@b.com"); err == nil {
		t.Fatal("unloaded cache must report unavailable")
	}
	if empty.Count() != -1 {
		t.Fatalf("Count on unloaded cache = %d, want -1", empty.Count())
	}

	loadTime := time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)
	a := loadedList(t, loadTime, "a@b.com")
	a.now = func() time.Time { return loadTime.Add(DefaultStaleAfter + time.Second) }
	if _, err := a.Contains("a@b.com"); err == nil {
		t.Fatal("stale cache must report unavailable")
	}
}

func TestGateDecisions(t *testing.T) {
	now := time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)
	fresh := &Session{Email: "alice@example.com", ValidatedAt: now.Add(-time.Hour)}
	expired := &Session{Email: "alice@example.com", ValidatedAt: now.Add(-GracePeriod - time.Minute)}
	otherEmail := &Session{Email: "bob@example.com", ValidatedAt: now.Add(-time.Hour)}

	available := loadedList(t, now, "alice@example.com")
	unavailable := &Allowlist{staleAfter: DefaultStaleAfter, now: func() time.Time { return now }}

	tests := []struct {
		name   string
		list   *Allowlist
		email  string
		cached *Session
		want   Decision
	}{
		{"on list", available, "alice@example.com", nil, Allowed},
		{"not on list", available, "mallory@example.com", nil, Denied},
		{"not on list with fresh session", available, "mallory@example.com", fresh, Denied},
		{"unavailable no session", unavailable, "alice@example.com", nil, Unavailable},
		{"unavailable fresh matching session", unavailable, "alice@example.com", fresh, Allowed},
		{"unavailable expired session", unavailable, "alice@example.com", expired, Unavailable},
		{"unavailable different email", unavailable, "alice@example.com", otherEmail, Unavailable},
	}
	for _, tc := range tests {
		g := &Gate{List: tc.list, Now: func() time.Time { return now }}
		if got := g.Check(tc.email, tc.cached); got != tc.want {
			t.Errorf("%s: Check = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestDenialNeverOverriddenByGrace(t *testing.T) {
	now := time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)
	list := loadedList(t, now, "alice@example.com")
	g := &Gate{List: list, Now: func() time.Time { return now }}

	// session validated seconds ago, but the list explicitly excludes
	// the email now
	cached := &Session{Email: "mallory@example.com", ValidatedAt: now.Add(-time.Second)}
	if got := g.Check("mallory@example.com", cached); got != Denied {
		t.Fatalf("Check = %v, want Denied", got)
	}
}
