package session

import (
	"context"

	"github.com/zeptools/billgen/access"
)

type idCtxKey struct{}

type sessCtxKey struct{}

func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, idCtxKey{}, sessionID)
}

func SessionIDFromContext(ctx context.Context) (string, bool) {
	ctxVal := ctx.Value(idCtxKey{})
	val, ok := ctxVal.(string)
	return val, ok
}

func WithSession(ctx context.Context, sess *access.Session) context.Context {
	return context.WithValue(ctx, sessCtxKey{}, sess)
}

func SessionFromContext(ctx context.Context) (*access.Session, bool) {
	ctxVal := ctx.Value(sessCtxKey{})
	val, ok := ctxVal.(*access.Session)
	return val, ok
}
