// Package mw holds the gin middleware chain: request ids, request logging,
// language negotiation and the Redis rate limiter.
package mw

import "context"

type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
	ContextKeyLanguage  contextKey = "language"
)

// RequestIDFrom returns the request id from the context, or "".
func RequestIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return v
	}
	return ""
}

// LanguageFrom returns the negotiated language; defaults to Russian,
// matching the audience of the original converter.
func LanguageFrom(ctx context.Context) string {
	if v, ok := ctx.Value(ContextKeyLanguage).(string); ok {
		return v
	}
	return "ru"
}
