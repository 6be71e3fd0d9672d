package session

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/zeptools/billgen/access"
	"github.com/zeptools/billgen/db/kvdb"
	"github.com/zeptools/billgen/security"
)

const CookieName = "__Host-session"

type Manager struct {
	Conf              Conf
	Cipher            *security.XChaCha20Poly1305Cipher
	AppName           string // for session key, etc.
	BackendKVDBClient kvdb.Client
}

func (m *Manager) SessionIDToKVDBKey(sessionID string) string {
	return m.AppName + "_session:" + sessionID
}

func (m *Manager) SaveSession(ctx context.Context, sessionID string, sess access.Session) error {
	key := m.SessionIDToKVDBKey(sessionID)
	fields := map[string]any{
		"email":        sess.Email,
		"validated_at": strconv.FormatInt(sess.ValidatedAt.Unix(), 10),
	}
	if err := m.BackendKVDBClient.SetFields(ctx, key, fields); err != nil {
		return err
	}
	_, err := m.BackendKVDBClient.Expire(ctx, key, access.GracePeriod)
	return err
}

func (m *Manager) FindSession(ctx context.Context, sessionID string) (*access.Session, bool, error) {
	fields, err := m.BackendKVDBClient.GetAllFields(ctx, m.SessionIDToKVDBKey(sessionID))
	if err != nil {
		return nil, false, err
	}
	email, ok := fields["email"]
	if !ok || email == "" {
		return nil, false, nil
	}
	sess := &access.Session{Email: email}
	if unix, err := strconv.ParseInt(fields["validated_at"], 10, 64); err == nil {
		sess.ValidatedAt = time.Unix(unix, 0).UTC()
	}
	return sess, true, nil
}

func (m *Manager) DeleteSession(ctx context.Context, sessionID string) error {
	_, err := m.BackendKVDBClient.Delete(ctx, m.SessionIDToKVDBKey(sessionID))
	return err
}

// SessionFromCookie decrypts the session cookie and loads the stored session.
// A missing, undecryptable, or expired session all yield ok=false.
func (m *Manager) SessionFromCookie(ctx context.Context, r *http.Request) (string, *access.Session, bool) {
	sessionCookie, err := r.Cookie(CookieName)
	if err != nil {
		return "", nil, false
	}
	sessionID, err := m.Cipher.DecodeDecrypt(sessionCookie.Value) // []byte
	if err != nil {
		return "", nil, false
	}
	sess, found, err := m.FindSession(ctx, string(sessionID))
	if err != nil || !found {
		return "", nil, false
	}
	return string(sessionID), sess, true
}

func (m *Manager) SetSessionCookie(w http.ResponseWriter, sessionID string) error {
	encSessionID, err := m.Cipher.EncryptEncode([]byte(sessionID))
	if err != nil {
		return fmt.Errorf("failed to encrypt session id. %v", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:  CookieName,
		Value: encSessionID,
		Path:  "/", // Subpaths will get this cookie.
		// Domain: // Cannot be set with `__Host-`
		HttpOnly: true, // JS cannot read it
		Secure:   true, // only sent over HTTPS
		MaxAge:   int(access.GracePeriod / time.Second),
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (m *Manager) RemoveSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Path:     "/",
		MaxAge:   -1, // Delete
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}
