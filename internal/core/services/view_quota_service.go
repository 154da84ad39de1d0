package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/prostaff/prostaff_backend/internal/apperrors"
	"github.com/prostaff/prostaff_backend/internal/core/domain"
	portsrepo "github.com/prostaff/prostaff_backend/internal/core/ports/repositories"
	portssvc "github.com/prostaff/prostaff_backend/internal/core/ports/services"
)

// Unlock outcome reasons reported to observers.
const (
	ReasonAdmin         = "admin"
	ReasonAlreadyViewed = "already_viewed"
	ReasonRole          = "role"
	ReasonSubscription  = string(domain.ChargeSubscription)
	ReasonTrial         = string(domain.ChargeTrial)
	ReasonWeekly        = string(domain.ChargeWeekly)
	ReasonPaywall       = string(domain.ChargePaywall)
)

// UnlockObserver is notified of every unlock outcome.
type UnlockObserver interface {
	ObserveUnlock(access domain.UnlockAccess, reason string)
}

// ViewQuotaOption configures the view quota ledger.
type ViewQuotaOption func(*viewQuotaService)

// WithClock overrides the time source.
func WithClock(now func() time.Time) ViewQuotaOption {
	return func(s *viewQuotaService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithWeeklyWindow sets the trailing window weekly views are counted over.
func WithWeeklyWindow(window time.Duration) ViewQuotaOption {
	return func(s *viewQuotaService) {
		if window > 0 {
			s.weeklyWindow = window
		}
	}
}

// WithUnlockObserver registers an observer for unlock outcomes.
func WithUnlockObserver(observer UnlockObserver) ViewQuotaOption {
	return func(s *viewQuotaService) {
		if observer != nil {
			s.observers = append(s.observers, observer)
		}
	}
}

type viewQuotaService struct {
	BaseService
	profileRepo    portsrepo.ProfileReader
	viewRepo       portsrepo.ProfileViewReader
	clubAccessRepo portsrepo.ClubAccessRepositoryFacade
	now            func() time.Time
	weeklyWindow   time.Duration
	observers      []UnlockObserver
}

// NewViewQuotaService creates the view quota ledger.
func NewViewQuotaService(
	profileRepo portsrepo.ProfileReader,
	viewRepo portsrepo.ProfileViewReader,
	clubAccessRepo portsrepo.ClubAccessRepositoryFacade,
	opts ...ViewQuotaOption,
) portssvc.ViewQuotaSvcFacade {
	svc := &viewQuotaService{
		profileRepo:    profileRepo,
		viewRepo:       viewRepo,
		clubAccessRepo: clubAccessRepo,
		now:            time.Now,
		weeklyWindow:   domain.DefaultWeeklyWindow,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

var _ portssvc.ViewQuotaSvcFacade = (*viewQuotaService)(nil)

// Unlock records a permanent view of profileID for an employer, paid for by
// subscription, trial balance or the weekly allowance, in that order.
func (s *viewQuotaService) Unlock(ctx context.Context, viewer *domain.Viewer, profileID string) (*domain.UnlockResult, error) {
	if viewer.ID() == "" {
		return nil, apperrors.ErrUnauthorized
	}
	if profileID == "" {
		return nil, apperrors.NewValidationFailedError("profile_id is required")
	}

	if viewer.IsAdmin() {
		s.observe(domain.UnlockFull, ReasonAdmin)
		return &domain.UnlockResult{Access: domain.UnlockFull, Unlimited: true}, nil
	}
	if !viewer.IsEmployer() {
		s.observe(domain.UnlockDenied, ReasonRole)
		return nil, apperrors.NewForbiddenError("only employers can unlock profiles")
	}

	logger := s.GetLogger(ctx).With(slog.String("viewer_id", viewer.UserID), slog.String("profile_id", profileID))

	profile, err := s.profileRepo.FindProfileByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("profile not found")
		}
		logger.Error("Failed to load profile for unlock", slog.String("error", err.Error()))
		return nil, err
	}
	if profile.EffectiveVisibility() == domain.VisibilityHidden {
		return nil, apperrors.NewNotFoundError("profile not found")
	}

	viewed, err := s.viewRepo.HasViewed(ctx, viewer.UserID, profileID)
	if err != nil {
		logger.Error("Failed to check existing view", slog.String("error", err.Error()))
		return nil, err
	}
	if viewed {
		s.observe(domain.UnlockFull, ReasonAlreadyViewed)
		return &domain.UnlockResult{Access: domain.UnlockFull, AlreadyViewed: true}, nil
	}

	ledger, err := s.clubAccessRepo.FindOrCreateClubAccess(ctx, viewer.UserID)
	if err != nil {
		logger.Error("Failed to load club access ledger", slog.String("error", err.Error()))
		return nil, err
	}

	now := s.now()
	windowStart := now.Add(-s.weeklyWindow)
	weeklyUsed := 0
	if ledger.NeedsWeeklyCount(now) {
		weeklyUsed, err = s.viewRepo.CountViewsSince(ctx, viewer.UserID, windowStart)
		if err != nil {
			logger.Error("Failed to count weekly views", slog.String("error", err.Error()))
			return nil, err
		}
	}

	decision := domain.DecideUnlock(ledger, weeklyUsed, now)
	if decision.Kind == domain.ChargePaywall {
		logger.Info("Unlock hit paywall", slog.Int("weekly_used", weeklyUsed))
		s.observe(domain.UnlockPaywall, ReasonPaywall)
		return paywallResult(ledger), nil
	}

	receipt, err := s.clubAccessRepo.RecordUnlock(ctx, domain.UnlockCharge{
		ViewerUserID: viewer.UserID,
		ProfileID:    profileID,
		Kind:         decision.Kind,
		ViewedAt:     now,
		WeeklyLimit:  ledger.FreeViewsPerWeek,
		WindowStart:  windowStart,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrPaymentRequired) {
			// A concurrent unlock consumed the last unit between the snapshot and the charge.
			logger.Info("Unlock lost quota race, returning paywall", slog.String("charge", string(decision.Kind)))
			locked, lerr := s.lockedLedger(ctx, ledger, receipt)
			if lerr != nil {
				logger.Error("Failed to reload club access after lost race", slog.String("error", lerr.Error()))
				return nil, lerr
			}
			s.observe(domain.UnlockPaywall, ReasonPaywall)
			return paywallResult(locked), nil
		}
		logger.Error("Failed to record unlock", slog.String("error", err.Error()), slog.String("charge", string(decision.Kind)))
		return nil, err
	}

	if receipt.AlreadyViewed {
		s.observe(domain.UnlockFull, ReasonAlreadyViewed)
		return &domain.UnlockResult{Access: domain.UnlockFull, AlreadyViewed: true}, nil
	}

	logger.Info("Profile unlocked", slog.String("charge", string(decision.Kind)))
	s.observe(domain.UnlockFull, string(decision.Kind))

	result := &domain.UnlockResult{Access: domain.UnlockFull}
	switch decision.Kind {
	case domain.ChargeSubscription:
		result.Subscribed = true
	case domain.ChargeTrial:
		remaining := receipt.FreeViewsRemaining
		expires := ledger.TrialExpiresAt
		result.FreeViewsRemaining = &remaining
		result.TrialExpiresAt = &expires
	case domain.ChargeWeekly:
		remaining := max(ledger.FreeViewsPerWeek-receipt.WeeklyUsed, 0)
		result.WeeklyRemaining = &remaining
	}
	return result, nil
}

// GetQuotaStatus reports the employer's balances without charging anything.
func (s *viewQuotaService) GetQuotaStatus(ctx context.Context, viewer *domain.Viewer) (*domain.QuotaStatus, error) {
	if viewer.ID() == "" {
		return nil, apperrors.ErrUnauthorized
	}
	if viewer.IsAdmin() {
		return &domain.QuotaStatus{Unlimited: true}, nil
	}
	if !viewer.IsEmployer() {
		return nil, apperrors.NewForbiddenError("only employers have a view quota")
	}

	ledger, err := s.clubAccessRepo.FindOrCreateClubAccess(ctx, viewer.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load club access ledger", slog.String("viewer_id", viewer.UserID))
		return nil, err
	}

	now := s.now()
	weeklyUsed := 0
	if !ledger.InTrial(now) {
		weeklyUsed, err = s.viewRepo.CountViewsSince(ctx, viewer.UserID, now.Add(-s.weeklyWindow))
		if err != nil {
			s.LogError(ctx, err, "Failed to count weekly views", slog.String("viewer_id", viewer.UserID))
			return nil, err
		}
	}

	status := domain.NewQuotaStatus(*ledger, weeklyUsed, now)
	return &status, nil
}

// ListUnlockedProfiles pages through the profiles the viewer has unlocked.
func (s *viewQuotaService) ListUnlockedProfiles(ctx context.Context, viewer *domain.Viewer, limit int, nextToken *string) ([]domain.ProfileView, *string, error) {
	if viewer.ID() == "" {
		return nil, nil, apperrors.ErrUnauthorized
	}
	if !viewer.IsEmployer() && !viewer.IsAdmin() {
		return nil, nil, apperrors.NewForbiddenError("only employers have unlocked profiles")
	}
	if limit <= 0 || limit > maxListLimit {
		limit = defaultListLimit
	}

	views, next, err := s.viewRepo.ListViewsByViewer(ctx, viewer.UserID, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list unlocked profiles", slog.String("viewer_id", viewer.UserID))
		return nil, nil, err
	}
	return views, next, nil
}

func (s *viewQuotaService) observe(access domain.UnlockAccess, reason string) {
	for _, o := range s.observers {
		o.ObserveUnlock(access, reason)
	}
}

// lockedLedger returns the ledger as the store saw it under lock when a charge was refused.
func (s *viewQuotaService) lockedLedger(ctx context.Context, snapshot *domain.ClubAccess, receipt *domain.UnlockReceipt) (*domain.ClubAccess, error) {
	if receipt == nil {
		return s.clubAccessRepo.FindOrCreateClubAccess(ctx, snapshot.UserID)
	}
	locked := *snapshot
	locked.FreeViewsRemaining = receipt.FreeViewsRemaining
	return &locked, nil
}

func paywallResult(ledger *domain.ClubAccess) *domain.UnlockResult {
	remaining := max(ledger.FreeViewsRemaining, 0)
	expires := ledger.TrialExpiresAt
	return &domain.UnlockResult{
		Access:             domain.UnlockPaywall,
		FreeViewsRemaining: &remaining,
		TrialExpiresAt:     &expires,
		Message:            domain.PaywallMessage,
	}
}
