package repositories

import (
	"context"

	"github.com/prostaff/prostaff_backend/internal/core/domain"
)

// UserRoleReader resolves the roles of a user
type UserRoleReader interface {
	// FindRolesByUserID returns the roles of userID. Returns apperrors.ErrNotFound for unknown users.
	FindRolesByUserID(ctx context.Context, userID string) ([]domain.Role, error)
}
