package pgsql

import (
	portsrepo "github.com/prostaff/prostaff_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ProfileRepo:     newPgxProfileRepository(dbPool),
		ProfileViewRepo: newPgxProfileViewRepository(dbPool),
		ClubAccessRepo:  newPgxClubAccessRepository(dbPool),
		UserRoleRepo:    newPgxUserRoleRepository(dbPool),
	}
}
