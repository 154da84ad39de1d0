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

const profileColumns = `
	profile_id, user_id, first_name, last_name, email, phone, telegram, linkedin_url, portfolio_url,
	avatar_url, city, country, bio, goals, work_style,
	desired_position, desired_employment_type, desired_salary_from, desired_salary_to, desired_city, open_to_relocation,
	is_public, visibility_level, show_name, show_contacts, hide_current_org,
	created_at, updated_at`

const (
	experiencesQuery = `
		SELECT experience_id, profile_id, company_name, position, start_date, end_date, is_current, description
		FROM profile_experiences WHERE profile_id = $1
		ORDER BY is_current DESC, start_date DESC NULLS LAST;`
	skillsQuery = `
		SELECT skill_id, profile_id, name, level
		FROM profile_skills WHERE profile_id = ANY($1::uuid[])
		ORDER BY name;`
	sportsQuery = `
		SELECT sport_id, profile_id, name, level
		FROM profile_sports WHERE profile_id = ANY($1::uuid[])
		ORDER BY name;`
	educationsQuery = `
		SELECT education_id, profile_id, institution, degree, field_of_study, start_year, end_year
		FROM profile_educations WHERE profile_id = $1
		ORDER BY end_year DESC NULLS FIRST;`
	certificatesQuery = `
		SELECT certificate_id, profile_id, name, issuer, issued_at, url
		FROM profile_certificates WHERE profile_id = $1
		ORDER BY issued_at DESC NULLS LAST;`
	portfolioQuery = `
		SELECT portfolio_item_id, profile_id, title, description, url, visibility, sort_order
		FROM profile_portfolio_items WHERE profile_id = $1
		ORDER BY sort_order, title;`
)

type PgxProfileRepository struct {
	BaseRepository
}

func newPgxProfileRepository(pool *pgxpool.Pool) portsrepo.ProfileRepositoryFacade {
	return &PgxProfileRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxProfileRepository implements portsrepo.ProfileRepositoryFacade
var _ portsrepo.ProfileRepositoryFacade = (*PgxProfileRepository)(nil)

func (r *PgxProfileRepository) FindProfileByID(ctx context.Context, profileID string) (*domain.Profile, error) {
	if !isUUID(profileID) {
		return nil, apperrors.ErrNotFound
	}

	rows, err := r.Pool.Query(ctx, `SELECT `+profileColumns+` FROM profiles WHERE profile_id = $1;`, profileID)
	if err != nil {
		return nil, storeError("failed to query profile "+profileID, err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Profile])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, storeError("failed to scan profile "+profileID, err)
	}

	profile := mapping.ToDomainProfile(row)
	return &profile, nil
}

func (r *PgxProfileRepository) ListPublicProfiles(ctx context.Context, visibilities []domain.VisibilityLevel, limit int, offset int) ([]domain.Profile, error) {
	if len(visibilities) == 0 {
		return []domain.Profile{}, nil
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	if offset < 0 {
		offset = 0
	}

	levels := make([]string, len(visibilities))
	for i, v := range visibilities {
		levels[i] = string(v)
	}

	query := `SELECT ` + profileColumns + `
		FROM profiles
		WHERE is_public AND visibility_level = ANY($1)
		ORDER BY created_at DESC, profile_id DESC
		LIMIT $2 OFFSET $3;`
	rows, err := r.Pool.Query(ctx, query, levels, limit, offset)
	if err != nil {
		return nil, storeError("failed to query public profiles", err)
	}
	profiles, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Profile])
	if err != nil {
		return nil, storeError("failed to scan public profiles", err)
	}
	return mapping.ToDomainProfileSlice(profiles), nil
}

// FindRelatedRecords loads all six related tables of a profile in one round trip.
func (r *PgxProfileRepository) FindRelatedRecords(ctx context.Context, profileID string) (*domain.RelatedRecords, error) {
	records := &domain.RelatedRecords{
		Experiences:  []domain.Experience{},
		Skills:       []domain.Skill{},
		Sports:       []domain.Sport{},
		Educations:   []domain.Education{},
		Certificates: []domain.Certificate{},
		Portfolio:    []domain.PortfolioItem{},
	}
	if !isUUID(profileID) {
		return records, nil
	}

	ids := []string{profileID}
	batch := &pgx.Batch{}
	batch.Queue(experiencesQuery, profileID)
	batch.Queue(skillsQuery, ids)
	batch.Queue(sportsQuery, ids)
	batch.Queue(educationsQuery, profileID)
	batch.Queue(certificatesQuery, profileID)
	batch.Queue(portfolioQuery, profileID)

	br := r.Pool.SendBatch(ctx, batch)
	defer br.Close()

	experiences, err := collectBatch(br, pgx.RowToStructByName[models.Experience])
	if err != nil {
		return nil, storeError("failed to load experience of profile "+profileID, err)
	}
	skills, err := collectBatch(br, pgx.RowToStructByName[models.Skill])
	if err != nil {
		return nil, storeError("failed to load skills of profile "+profileID, err)
	}
	sports, err := collectBatch(br, pgx.RowToStructByName[models.Sport])
	if err != nil {
		return nil, storeError("failed to load sports of profile "+profileID, err)
	}
	educations, err := collectBatch(br, pgx.RowToStructByName[models.Education])
	if err != nil {
		return nil, storeError("failed to load education of profile "+profileID, err)
	}
	certificates, err := collectBatch(br, pgx.RowToStructByName[models.Certificate])
	if err != nil {
		return nil, storeError("failed to load certificates of profile "+profileID, err)
	}
	portfolio, err := collectBatch(br, pgx.RowToStructByName[models.PortfolioItem])
	if err != nil {
		return nil, storeError("failed to load portfolio of profile "+profileID, err)
	}

	records.Experiences = mapping.ToDomainSlice(experiences, mapping.ToDomainExperience)
	records.Skills = mapping.ToDomainSlice(skills, mapping.ToDomainSkill)
	records.Sports = mapping.ToDomainSlice(sports, mapping.ToDomainSport)
	records.Educations = mapping.ToDomainSlice(educations, mapping.ToDomainEducation)
	records.Certificates = mapping.ToDomainSlice(certificates, mapping.ToDomainCertificate)
	records.Portfolio = mapping.ToDomainSlice(portfolio, mapping.ToDomainPortfolioItem)
	return records, nil
}

func (r *PgxProfileRepository) FindCardRecords(ctx context.Context, profileIDs []string) (map[string]domain.CardRecords, error) {
	cards := make(map[string]domain.CardRecords, len(profileIDs))
	ids := uuidsOnly(profileIDs)
	if len(ids) == 0 {
		return cards, nil
	}

	batch := &pgx.Batch{}
	batch.Queue(skillsQuery, ids)
	batch.Queue(sportsQuery, ids)

	br := r.Pool.SendBatch(ctx, batch)
	defer br.Close()

	skills, err := collectBatch(br, pgx.RowToStructByName[models.Skill])
	if err != nil {
		return nil, storeError("failed to load card skills", err)
	}
	sports, err := collectBatch(br, pgx.RowToStructByName[models.Sport])
	if err != nil {
		return nil, storeError("failed to load card sports", err)
	}

	for _, id := range ids {
		cards[id] = domain.CardRecords{Skills: []domain.Skill{}, Sports: []domain.Sport{}}
	}
	for _, s := range skills {
		card := cards[s.ProfileID]
		card.Skills = append(card.Skills, mapping.ToDomainSkill(s))
		cards[s.ProfileID] = card
	}
	for _, s := range sports {
		card := cards[s.ProfileID]
		card.Sports = append(card.Sports, mapping.ToDomainSport(s))
		cards[s.ProfileID] = card
	}
	return cards, nil
}

// collectBatch reads the next queued result of br into row structs.
func collectBatch[T any](br pgx.BatchResults, fn pgx.RowToFunc[T]) ([]T, error) {
	rows, err := br.Query()
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, fn)
}
