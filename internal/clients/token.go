package clients

import "context"

type contextKey int

const tokenContextKey contextKey = iota

// ContextWithToken attaches the visitor's session token to the context so
// that backend requests made with it carry an Authorization header.
func ContextWithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenContextKey, token)
}

func tokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey).(string)
	return token
}
