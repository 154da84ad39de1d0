package services

import (
	"context"

	"github.com/prostaff/prostaff_backend/internal/core/domain"
)

// ProfileUnlockSvc consumes (or bypasses) quota to unlock a profile.
type ProfileUnlockSvc interface {
	// Unlock grants the viewer permanent full access to profileID if quota allows.
	// Paywall is returned as a result, not an error. Non-employers get apperrors.ErrForbidden.
	Unlock(ctx context.Context, viewer *domain.Viewer, profileID string) (*domain.UnlockResult, error)
}

// QuotaReaderSvc exposes the ledger without mutating balances.
type QuotaReaderSvc interface {
	// GetQuotaStatus returns the employer's ledger snapshot, creating the ledger row if absent.
	GetQuotaStatus(ctx context.Context, viewer *domain.Viewer) (*domain.QuotaStatus, error)

	// ListUnlockedProfiles returns the viewer's unlocked profiles newest first.
	ListUnlockedProfiles(ctx context.Context, viewer *domain.Viewer, limit int, nextToken *string) ([]domain.ProfileView, *string, error)
}

// ViewQuotaSvcFacade combines all view quota ledger interfaces
type ViewQuotaSvcFacade interface {
	ProfileUnlockSvc
	QuotaReaderSvc
}
