package auth

import (
	"context"

	"github.com/PANATARA/chorebank/internal/user"
)

type ctxKey struct{}

// WithUser binds the authenticated user to the request context.
func WithUser(ctx context.Context, u *user.User) context.Context {
	return context.WithValue(ctx, ctxKey{}, u)
}

// UserFrom returns the authenticated user, or nil when the request is
// anonymous.
func UserFrom(ctx context.Context) *user.User {
	u, _ := ctx.Value(ctxKey{}).(*user.User)
	return u
}
