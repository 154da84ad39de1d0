package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/prostaff/prostaff_backend/internal/apperrors"
	"github.com/prostaff/prostaff_backend/internal/core/domain"
	portsrepo "github.com/prostaff/prostaff_backend/internal/core/ports/repositories"
	portssvc "github.com/prostaff/prostaff_backend/internal/core/ports/services"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// ProfileAccessOption configures the profile access evaluator.
type ProfileAccessOption func(*profileAccessService)

// WithCurrentOrgPlaceholder sets the company name shown instead of a hidden current employer.
func WithCurrentOrgPlaceholder(placeholder string) ProfileAccessOption {
	return func(s *profileAccessService) {
		if placeholder != "" {
			s.placeholder = placeholder
		}
	}
}

// WithListLimits sets the default and maximum page size of ListProfiles.
func WithListLimits(defaultLimit, maxLimit int) ProfileAccessOption {
	return func(s *profileAccessService) {
		if defaultLimit > 0 {
			s.defaultLimit = defaultLimit
		}
		if maxLimit > 0 {
			s.maxLimit = maxLimit
		}
	}
}

type profileAccessService struct {
	BaseService
	profileRepo  portsrepo.ProfileRepositoryFacade
	viewRepo     portsrepo.ProfileViewReader
	placeholder  string
	defaultLimit int
	maxLimit     int
}

// NewProfileAccessService creates the profile access evaluator.
func NewProfileAccessService(
	profileRepo portsrepo.ProfileRepositoryFacade,
	viewRepo portsrepo.ProfileViewReader,
	opts ...ProfileAccessOption,
) portssvc.ProfileAccessSvc {
	svc := &profileAccessService{
		profileRepo:  profileRepo,
		viewRepo:     viewRepo,
		placeholder:  domain.DefaultCurrentOrgPlaceholder,
		defaultLimit: defaultListLimit,
		maxLimit:     maxListLimit,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

var _ portssvc.ProfileAccessSvc = (*profileAccessService)(nil)

// GetProfile resolves one profile for viewer and redacts it to the computed tier.
func (s *profileAccessService) GetProfile(ctx context.Context, viewer *domain.Viewer, profileID string) (*domain.ResolvedProfile, error) {
	if profileID == "" {
		return nil, apperrors.NewValidationFailedError("profile_id is required")
	}

	profile, err := s.profileRepo.FindProfileByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("profile not found")
		}
		s.LogError(ctx, err, "Failed to load profile", slog.String("profile_id", profileID))
		return nil, err
	}

	hasViewed := false
	if domain.NeedsViewLookup(viewer, profile) {
		hasViewed, err = s.viewRepo.HasViewed(ctx, viewer.UserID, profileID)
		if err != nil {
			s.LogError(ctx, err, "Failed to check profile view", slog.String("profile_id", profileID), slog.String("viewer_id", viewer.UserID))
			return nil, err
		}
	}

	tier := domain.GetAccessLevel(viewer, profile, hasViewed)
	if tier == domain.TierHidden {
		// Hidden and missing profiles are indistinguishable to the caller.
		return nil, apperrors.NewNotFoundError("profile not found")
	}

	related, err := s.profileRepo.FindRelatedRecords(ctx, profileID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load related records", slog.String("profile_id", profileID))
		return nil, err
	}

	s.LogDebug(ctx, "Resolved profile", slog.String("profile_id", profileID), slog.String("tier", string(tier)), slog.String("viewer_id", viewer.ID()))
	return &domain.ResolvedProfile{
		Profile: domain.SanitizeProfile(profile, tier),
		Related: domain.AdjustRelatedRecords(*related, profile, tier, s.placeholder),
		Access:  tier,
	}, nil
}

// ListProfiles returns the listing cards visible to viewer along with their skills and sports.
func (s *profileAccessService) ListProfiles(ctx context.Context, viewer *domain.Viewer, limit int, offset int) (*domain.ProfileListing, error) {
	limit, offset = s.clampPage(limit, offset)

	profiles, err := s.profileRepo.ListPublicProfiles(ctx, domain.ListableVisibilities, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list profiles", slog.Int("limit", limit), slog.Int("offset", offset))
		return nil, err
	}

	visible := make([]*domain.Profile, 0, len(profiles))
	ids := make([]string, 0, len(profiles))
	for i := range profiles {
		if domain.ListableFor(viewer, &profiles[i]) {
			visible = append(visible, &profiles[i])
			ids = append(ids, profiles[i].ProfileID)
		}
	}

	listing := &domain.ProfileListing{
		Profiles:         make([]domain.ProfileSummary, 0, len(visible)),
		RelatedByProfile: map[string]domain.CardRecords{},
	}
	if len(visible) == 0 {
		return listing, nil
	}

	viewed := map[string]bool{}
	if viewer.IsEmployer() {
		viewed, err = s.viewRepo.FindViewedProfileIDs(ctx, viewer.UserID, ids)
		if err != nil {
			s.LogError(ctx, err, "Failed to load unlocked profiles for listing", slog.String("viewer_id", viewer.UserID))
			return nil, err
		}
	}

	for _, profile := range visible {
		tier := domain.GetAccessLevel(viewer, profile, viewed[profile.ProfileID])
		listing.Profiles = append(listing.Profiles, domain.Summarize(profile, tier))
	}

	cards, err := s.profileRepo.FindCardRecords(ctx, ids)
	if err != nil {
		s.LogError(ctx, err, "Failed to load card records", slog.Int("profiles", len(ids)))
		return nil, err
	}
	for _, id := range ids {
		listing.RelatedByProfile[id] = cards[id]
	}

	return listing, nil
}

func (s *profileAccessService) clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
