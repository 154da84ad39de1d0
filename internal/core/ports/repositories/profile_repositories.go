package repositories

import (
	"context"

	"github.com/prostaff/prostaff_backend/internal/core/domain"
)

// ProfileReader defines read operations for specialist profiles
type ProfileReader interface {
	// FindProfileByID retrieves a profile by id. Returns apperrors.ErrNotFound when absent.
	FindProfileByID(ctx context.Context, profileID string) (*domain.Profile, error)

	// ListPublicProfiles returns profiles with is_public = true whose visibility level is one of
	// visibilities, newest first.
	ListPublicProfiles(ctx context.Context, visibilities []domain.VisibilityLevel, limit int, offset int) ([]domain.Profile, error)
}

// RelatedRecordsReader defines read operations for records attached to a profile
type RelatedRecordsReader interface {
	// FindRelatedRecords loads experience, skills, sports, education, certificates and portfolio of one profile.
	FindRelatedRecords(ctx context.Context, profileID string) (*domain.RelatedRecords, error)

	// FindCardRecords loads skills and sports for several profiles, keyed by profile id.
	FindCardRecords(ctx context.Context, profileIDs []string) (map[string]domain.CardRecords, error)
}

// ProfileRepositoryFacade combines all profile-related repository interfaces
type ProfileRepositoryFacade interface {
	ProfileReader
	RelatedRecordsReader
}
