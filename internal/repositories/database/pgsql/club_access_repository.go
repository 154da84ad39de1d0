package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prostaff/prostaff_backend/internal/apperrors"
	"github.com/prostaff/prostaff_backend/internal/core/domain"
	portsrepo "github.com/prostaff/prostaff_backend/internal/core/ports/repositories"
	"github.com/prostaff/prostaff_backend/internal/models"
	"github.com/prostaff/prostaff_backend/internal/utils/mapping"
)

const clubAccessColumns = `user_id, free_views_remaining, free_views_per_week, trial_expires_at, is_subscribed, created_at, updated_at`

type PgxClubAccessRepository struct {
	BaseRepository
}

func newPgxClubAccessRepository(pool *pgxpool.Pool) portsrepo.ClubAccessRepositoryFacade {
	return &PgxClubAccessRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxClubAccessRepository implements portsrepo.ClubAccessRepositoryFacade
var _ portsrepo.ClubAccessRepositoryFacade = (*PgxClubAccessRepository)(nil)

func (r *PgxClubAccessRepository) FindClubAccess(ctx context.Context, userID string) (*domain.ClubAccess, error) {
	if !isUUID(userID) {
		return nil, apperrors.ErrNotFound
	}
	return r.selectClubAccess(ctx, r.Pool, userID, false)
}

// FindOrCreateClubAccess relies on the column defaults for a new ledger.
func (r *PgxClubAccessRepository) FindOrCreateClubAccess(ctx context.Context, userID string) (*domain.ClubAccess, error) {
	if !isUUID(userID) {
		return nil, apperrors.ErrNotFound
	}

	_, err := r.Pool.Exec(ctx, `INSERT INTO club_access (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING;`, userID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, storeError("failed to create club access for "+userID, err)
	}
	return r.selectClubAccess(ctx, r.Pool, userID, false)
}

// RecordUnlock inserts the view and applies the charge in one transaction.
// The ledger row is locked first so unlocks of one viewer are serialised.
func (r *PgxClubAccessRepository) RecordUnlock(ctx context.Context, charge domain.UnlockCharge) (*domain.UnlockReceipt, error) {
	if !isUUID(charge.ViewerUserID) || !isUUID(charge.ProfileID) {
		return nil, apperrors.ErrNotFound
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // no-op once committed

	ledger, err := r.selectClubAccess(ctx, tx, charge.ViewerUserID, true)
	if err != nil {
		return nil, err
	}

	var viewID string
	err = tx.QueryRow(ctx, `
		INSERT INTO profile_views (viewer_user_id, profile_id, viewed_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (viewer_user_id, profile_id) DO NOTHING
		RETURNING view_id::text;`, charge.ViewerUserID, charge.ProfileID, charge.ViewedAt).Scan(&viewID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.UnlockReceipt{AlreadyViewed: true}, nil
		}
		if isForeignKeyViolation(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, storeError("failed to insert profile view", err)
	}

	receipt := &domain.UnlockReceipt{FreeViewsRemaining: ledger.FreeViewsRemaining}
	switch charge.Kind {
	case domain.ChargeTrial:
		var remaining int
		err = tx.QueryRow(ctx, `
			UPDATE club_access
			SET free_views_remaining = free_views_remaining - 1, updated_at = $2
			WHERE user_id = $1 AND free_views_remaining > 0 AND trial_expires_at > $2
			RETURNING free_views_remaining;`, charge.ViewerUserID, charge.ViewedAt).Scan(&remaining)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return receipt, apperrors.ErrPaymentRequired
			}
			return nil, storeError("failed to charge trial view", err)
		}
		receipt.FreeViewsRemaining = remaining
	case domain.ChargeWeekly:
		used, err := countViewsSince(ctx, tx, charge.ViewerUserID, charge.WindowStart, viewID)
		if err != nil {
			return nil, err
		}
		if used >= charge.WeeklyLimit {
			return receipt, apperrors.ErrPaymentRequired
		}
		receipt.WeeklyUsed = used + 1
	case domain.ChargeSubscription:
	default:
		return receipt, apperrors.ErrPaymentRequired
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return receipt, nil
}

func (r *PgxClubAccessRepository) selectClubAccess(ctx context.Context, q pgxQuerier, userID string, forUpdate bool) (*domain.ClubAccess, error) {
	query := `SELECT ` + clubAccessColumns + ` FROM club_access WHERE user_id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	rows, err := q.Query(ctx, query+";", userID)
	if err != nil {
		return nil, storeError("failed to query club access for "+userID, err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.ClubAccess])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, storeError("failed to scan club access for "+userID, err)
	}

	ledger := mapping.ToDomainClubAccess(row)
	return &ledger, nil
}
