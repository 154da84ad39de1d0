package pgsql

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prostaff/prostaff_backend/internal/apperrors"
	"github.com/prostaff/prostaff_backend/internal/core/domain"
	portsrepo "github.com/prostaff/prostaff_backend/internal/core/ports/repositories"
	"github.com/prostaff/prostaff_backend/internal/models"
	"github.com/prostaff/prostaff_backend/internal/utils/mapping"
	"github.com/prostaff/prostaff_backend/internal/utils/pagination"
)

type PgxProfileViewRepository struct {
	BaseRepository
}

func newPgxProfileViewRepository(pool *pgxpool.Pool) portsrepo.ProfileViewReader {
	return &PgxProfileViewRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxProfileViewRepository implements portsrepo.ProfileViewReader
var _ portsrepo.ProfileViewReader = (*PgxProfileViewRepository)(nil)

func (r *PgxProfileViewRepository) HasViewed(ctx context.Context, viewerUserID, profileID string) (bool, error) {
	if !isUUID(viewerUserID) || !isUUID(profileID) {
		return false, nil
	}

	var viewed bool
	err := r.Pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM profile_views WHERE viewer_user_id = $1 AND profile_id = $2
		);`, viewerUserID, profileID).Scan(&viewed)
	if err != nil {
		return false, storeError("failed to check profile view", err)
	}
	return viewed, nil
}

func (r *PgxProfileViewRepository) FindViewedProfileIDs(ctx context.Context, viewerUserID string, profileIDs []string) (map[string]bool, error) {
	viewed := make(map[string]bool)
	ids := uuidsOnly(profileIDs)
	if !isUUID(viewerUserID) || len(ids) == 0 {
		return viewed, nil
	}

	rows, err := r.Pool.Query(ctx, `
		SELECT profile_id::text FROM profile_views
		WHERE viewer_user_id = $1 AND profile_id = ANY($2::uuid[]);`, viewerUserID, ids)
	if err != nil {
		return nil, storeError("failed to query viewed profiles", err)
	}
	found, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, storeError("failed to scan viewed profiles", err)
	}
	for _, id := range found {
		viewed[id] = true
	}
	return viewed, nil
}

func (r *PgxProfileViewRepository) CountViewsSince(ctx context.Context, viewerUserID string, since time.Time) (int, error) {
	if !isUUID(viewerUserID) {
		return 0, nil
	}
	return countViewsSince(ctx, r.Pool, viewerUserID, since, "")
}

// ListViewsByViewer pages through the viewer's views newest first. The token
// encodes the (viewed_at, view_id) of the last row of the previous page.
func (r *PgxProfileViewRepository) ListViewsByViewer(ctx context.Context, viewerUserID string, limit int, nextToken *string) ([]domain.ProfileView, *string, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if !isUUID(viewerUserID) {
		return []domain.ProfileView{}, nil, nil
	}
	fetchLimit := limit + 1

	var rows pgx.Rows
	var err error
	if nextToken != nil && *nextToken != "" {
		lastViewedAt, lastViewID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil || !isUUID(lastViewID) {
			return nil, nil, apperrors.NewAppError(http.StatusBadRequest, "invalid nextToken", decodeErr)
		}
		rows, err = r.Pool.Query(ctx, `
			SELECT view_id, viewer_user_id, profile_id, viewed_at
			FROM profile_views
			WHERE viewer_user_id = $1 AND (viewed_at, view_id) < ($2, $3::uuid)
			ORDER BY viewed_at DESC, view_id DESC
			LIMIT $4;`, viewerUserID, lastViewedAt, lastViewID, fetchLimit)
	} else {
		rows, err = r.Pool.Query(ctx, `
			SELECT view_id, viewer_user_id, profile_id, viewed_at
			FROM profile_views
			WHERE viewer_user_id = $1
			ORDER BY viewed_at DESC, view_id DESC
			LIMIT $2;`, viewerUserID, fetchLimit)
	}
	if err != nil {
		return nil, nil, storeError("failed to query profile views of "+viewerUserID, err)
	}

	views, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ProfileView])
	if err != nil {
		return nil, nil, storeError("failed to scan profile views of "+viewerUserID, err)
	}

	var nextTokenVal *string
	if len(views) > limit {
		last := views[limit-1]
		token := pagination.EncodeToken(last.ViewedAt, last.ViewID)
		nextTokenVal = &token
		views = views[:limit]
	}
	return mapping.ToDomainSlice(views, mapping.ToDomainProfileView), nextTokenVal, nil
}

// countViewsSince counts views strictly after since, optionally excluding one view id.
func countViewsSince(ctx context.Context, q pgxQuerier, viewerUserID string, since time.Time, excludeViewID string) (int, error) {
	var count int
	err := q.QueryRow(ctx, `
		SELECT count(*) FROM profile_views
		WHERE viewer_user_id = $1 AND viewed_at > $2
		  AND ($3 = '' OR view_id::text <> $3);`, viewerUserID, since, excludeViewID).Scan(&count)
	if err != nil {
		return 0, storeError("failed to count profile views", err)
	}
	return count, nil
}
