package services

import (
	"context"

	"github.com/prostaff/prostaff_backend/internal/core/domain"
)

// ProfileAccessSvc is the profile access evaluator: it derives the access tier
// for a viewer and returns profile data redacted accordingly.
type ProfileAccessSvc interface {
	// GetProfile resolves one profile. viewer may be nil for anonymous callers.
	// Returns apperrors.ErrNotFound when the profile is absent or the tier is hidden.
	GetProfile(ctx context.Context, viewer *domain.Viewer, profileID string) (*domain.ResolvedProfile, error)

	// ListProfiles returns a page of listing cards visible to viewer.
	ListProfiles(ctx context.Context, viewer *domain.Viewer, limit int, offset int) (*domain.ProfileListing, error)
}
