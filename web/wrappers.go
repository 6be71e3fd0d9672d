package web

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/zeptools/billgen/access"
	"github.com/zeptools/billgen/requests"
	"github.com/zeptools/billgen/responses"
	"github.com/zeptools/billgen/security"
	"github.com/zeptools/billgen/throttle"
	"github.com/zeptools/billgen/web/session"
)

// CORSWrapper answers preflight requests and opens the API to any origin.
type CORSWrapper struct{}

func (cw *CORSWrapper) Wrap(inner http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		inner.ServeHTTP(w, r)
	})
}

// RequestLogWrapper logs each request with a generated request id.
type RequestLogWrapper struct{}

func (lw *RequestLogWrapper) Wrap(inner http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		start := time.Now()
		log.Printf("[INFO][WEB] %s %s %s from %s", reqID, r.Method, requests.FullURL(r), requests.GetClientIP(r))
		inner.ServeHTTP(w, r)
		log.Printf("[INFO][WEB] %s done in %v", reqID, time.Since(start))
	})
}

// SessionWrapper requires a valid session, from the encrypted cookie or
// from a bearer access token. The session lands in the request context.
type SessionWrapper struct {
	Manager *session.Manager
}

func (sw *SessionWrapper) Wrap(inner http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if sessionID, sess, ok := sw.Manager.SessionFromCookie(ctx, r); ok {
			ctx = session.WithSessionID(ctx, sessionID)
			ctx = session.WithSession(ctx, sess)
			inner.ServeHTTP(w, r.WithContext(ctx))
			return
		}
		if token := security.ExtractBearerToken(r.Header.Get("Authorization")); token != "" {
			email, err := security.ParseHS256AccessToken(token, []byte(sw.Manager.Conf.SigningKey))
			if err == nil {
				ctx = session.WithSession(ctx, &access.Session{Email: email})
				inner.ServeHTTP(w, r.WithContext(ctx))
				return
			}
			log.Printf("[WARN][WEB] bearer token rejected: %v", err)
		}
		responses.WriteSimpleErrorJSON(w, http.StatusUnauthorized, "access not validated")
	})
}

// ThrottleWrapper rate-limits by client IP with a token bucket group.
type ThrottleWrapper struct {
	Store   *throttle.BucketStore[string]
	GroupID string
}

func (tw *ThrottleWrapper) Wrap(inner http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !tw.Store.Allow(tw.GroupID, requests.GetClientIP(r), time.Now()) {
			responses.WriteSimpleErrorJSON(w, http.StatusTooManyRequests, "too many requests")
			return
		}
		inner.ServeHTTP(w, r)
	})
}
