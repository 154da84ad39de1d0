package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prostaff/prostaff_backend/internal/apperrors"
	"github.com/prostaff/prostaff_backend/internal/core/domain"
	portsrepo "github.com/prostaff/prostaff_backend/internal/core/ports/repositories"
)

type PgxUserRoleRepository struct {
	BaseRepository
}

func newPgxUserRoleRepository(pool *pgxpool.Pool) portsrepo.UserRoleReader {
	return &PgxUserRoleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxUserRoleRepository implements portsrepo.UserRoleReader
var _ portsrepo.UserRoleReader = (*PgxUserRoleRepository)(nil)

// FindRolesByUserID returns an empty slice for a known user without roles.
func (r *PgxUserRoleRepository) FindRolesByUserID(ctx context.Context, userID string) ([]domain.Role, error) {
	if !isUUID(userID) {
		return nil, apperrors.ErrNotFound
	}

	rows, err := r.Pool.Query(ctx, `
		SELECT r.role
		FROM users u
		LEFT JOIN user_roles r ON r.user_id = u.user_id
		WHERE u.user_id = $1
		ORDER BY r.role;`, userID)
	if err != nil {
		return nil, storeError("failed to query roles of "+userID, err)
	}
	found, err := pgx.CollectRows(rows, pgx.RowTo[*string])
	if err != nil {
		return nil, storeError("failed to scan roles of "+userID, err)
	}
	if len(found) == 0 {
		return nil, apperrors.ErrNotFound
	}

	roles := make([]domain.Role, 0, len(found))
	for _, role := range found {
		if role != nil {
			roles = append(roles, domain.Role(*role))
		}
	}
	return roles, nil
}
