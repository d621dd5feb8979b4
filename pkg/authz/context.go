package authz

import (
	"Recipe-Sharing-API/entities"
	"context"
)

type contextKey struct{}

func WithUser(ctx context.Context, user *entities.User) context.Context {
	return context.WithValue(ctx, contextKey{}, user)
}

// UserFromContext returns nil for an anonymous request.
func UserFromContext(ctx context.Context) *entities.User {
	user, _ := ctx.Value(contextKey{}).(*entities.User)
	return user
}
