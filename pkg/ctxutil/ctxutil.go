// Package ctxutil carries the caller identity and request id through a
// request context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type (
	userIDKey    struct{}
	usernameKey  struct{}
	requestIDKey struct{}
)

// WithIdentity records the authenticated caller.
func WithIdentity(ctx context.Context, id uuid.UUID, username string) context.Context {
	ctx = WithUserID(ctx, id)
	return context.WithValue(ctx, usernameKey{}, username)
}

func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserIDFromCtx reports the caller's id. A missing or nil id counts as
// anonymous.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, _ := ctx.Value(userIDKey{}).(uuid.UUID)
	return id, id != uuid.Nil
}

// UsernameFromCtx is "" for anonymous callers.
func UsernameFromCtx(ctx context.Context) string {
	name, _ := ctx.Value(usernameKey{}).(string)
	return name
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
