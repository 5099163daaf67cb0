// Package session carries the request's bearer credential through the
// context, so the purchase gate can look it up without reaching into the
// transport layer.
package session

import "context"

type tokenKey struct{}

// WithToken returns a context carrying the bearer token.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// ContextSource resolves the session token from the context. The lookup is
// synchronous and performs no network call.
type ContextSource struct{}

func (ContextSource) SessionToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}
