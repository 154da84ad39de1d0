package repositories

import (
	"context"

	"github.com/prostaff/prostaff_backend/internal/core/domain"
)

// RoleCache caches the immutable role set of a user.
type RoleCache interface {
	// GetRoles returns the cached roles and whether they were present.
	GetRoles(ctx context.Context, userID string) ([]domain.Role, bool, error)

	// SetRoles stores roles for userID.
	SetRoles(ctx context.Context, userID string, roles []domain.Role) error
}
