package services

import (
	"context"

	"github.com/prostaff/prostaff_backend/internal/core/domain"
)

// ViewerResolverSvc turns an authenticated user id into a Viewer with roles.
type ViewerResolverSvc interface {
	// ResolveViewer returns the viewer for userID, or apperrors.ErrUnauthorized when
	// the id does not belong to a known user.
	ResolveViewer(ctx context.Context, userID string) (*domain.Viewer, error)
}
