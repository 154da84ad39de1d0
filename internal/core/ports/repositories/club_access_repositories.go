package repositories

import (
	"context"

	"github.com/prostaff/prostaff_backend/internal/core/domain"
)

// ClubAccessReader defines read operations for the employer quota ledger
type ClubAccessReader interface {
	// FindClubAccess returns the ledger row of userID, or apperrors.ErrNotFound.
	FindClubAccess(ctx context.Context, userID string) (*domain.ClubAccess, error)
}

// ClubAccessWriter defines write operations for the employer quota ledger
type ClubAccessWriter interface {
	// FindOrCreateClubAccess returns the ledger row of userID, creating it with store defaults if absent.
	FindOrCreateClubAccess(ctx context.Context, userID string) (*domain.ClubAccess, error)

	// RecordUnlock atomically inserts the profile view and applies the charge.
	// A concurrent unlock of the same pair yields a receipt with AlreadyViewed and no charge.
	// Returns apperrors.ErrPaymentRequired when the charge no longer fits the ledger under lock;
	// the accompanying receipt then carries the locked trial balance.
	RecordUnlock(ctx context.Context, charge domain.UnlockCharge) (*domain.UnlockReceipt, error)
}

// ClubAccessRepositoryFacade combines all ledger-related repository interfaces
type ClubAccessRepositoryFacade interface {
	ClubAccessReader
	ClubAccessWriter
}
