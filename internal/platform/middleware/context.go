package middleware

import "context"

type contextKeyRequestID struct{}
type contextKeyUserID struct{}
type contextKeySessionID struct{}

// GetRequestID retrieves the request correlation ID from the context.
func GetRequestID(ctx context.Context) string {
	id, ok := ctx.Value(contextKeyRequestID{}).(string)
	if !ok {
		return ""
	}
	return id
}

// GetUserID retrieves the authenticated user ID from the context.
func GetUserID(ctx context.Context) string {
	id, ok := ctx.Value(contextKeyUserID{}).(string)
	if !ok {
		return ""
	}
	return id
}

// GetSessionID retrieves the session ID from the context.
func GetSessionID(ctx context.Context) string {
	id, ok := ctx.Value(contextKeySessionID{}).(string)
	if !ok {
		return ""
	}
	return id
}

// WithIdentity injects a user and session ID into the context. Exported for
// handler tests that bypass the auth middleware.
func WithIdentity(ctx context.Context, userID, sessionID string) context.Context {
	ctx = context.WithValue(ctx, contextKeyUserID{}, userID)
	return context.WithValue(ctx, contextKeySessionID{}, sessionID)
}
