package handler

import "context"

type ctxKey string

const playerIDKey ctxKey = "playerID"

// WithPlayerID returns a context carrying the authenticated player ID.
// The auth middleware sets this before handlers run.
func WithPlayerID(ctx context.Context, playerID string) context.Context {
	return context.WithValue(ctx, playerIDKey, playerID)
}

// PlayerIDFromContext extracts the authenticated player ID from the context.
func PlayerIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(playerIDKey).(string)
	return id, ok && id != ""
}
