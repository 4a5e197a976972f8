package identity

import (
	"context"

	"github.com/minhct267/Tech-Lab-Management/internal/models"
)

// Provider exposes who is asking. Nil means no authenticated caller.
type Provider interface {
	CurrentUser(ctx context.Context) *models.User
}

type contextKey struct{}

func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, contextKey{}, user)
}

func UserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(contextKey{}).(*models.User)
	return user
}

// ContextProvider reads the acting user the auth middleware stored on the
// request context.
type ContextProvider struct{}

func (ContextProvider) CurrentUser(ctx context.Context) *models.User {
	return UserFromContext(ctx)
}

// StaticProvider pins a fixed acting user; test use.
type StaticProvider struct {
	User *models.User
}

func (p *StaticProvider) CurrentUser(ctx context.Context) *models.User {
	return p.User
}
