package ports

import (
	"context"

	"github.com/enrollment/enrollment-api/internal/core/domain"
)

// IdentityRepository looks up login accounts.
type IdentityRepository interface {
	// FindUserByCredentials returns the user whose username and password both
	// match exactly, or domain.ErrInvalidCredentials.
	FindUserByCredentials(ctx context.Context, username, password string) (*domain.User, error)
	// ListUsersByRole returns users holding role in seed order.
	ListUsersByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
}
