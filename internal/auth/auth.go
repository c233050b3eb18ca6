// Package auth carries the identity of an authenticated caller through a
// request context.
package auth

import (
	"context"
)

type ctxkey struct{}

// Caller is whoever signed the bearer token on a request.
type Caller struct {
	Subject  string
	Username string
}

func WithCaller(ctx context.Context, subject, username string) context.Context {
	return context.WithValue(ctx, ctxkey{}, &Caller{
		Subject:  subject,
		Username: username,
	})
}

// CallerFromContext returns nil if the request was not authenticated. That
// is normal when the server runs without a secret key.
func CallerFromContext(ctx context.Context) *Caller {
	c, ok := ctx.Value(ctxkey{}).(*Caller)
	if ok {
		return c
	}
	return nil
}
