package dto

import (
	"github.com/prostaff/prostaff_backend/internal/core/domain"
)

// Profile read modes accepted by the resolve endpoint.
const (
	ModeSingle = "single"
	ModeList   = "list"
)

// ResolveProfileQuery is the query of GET /profiles/resolve.
type ResolveProfileQuery struct {
	Mode      string `form:"mode" binding:"required,profile_mode"`
	ProfileID string `form:"profile_id" binding:"required_if=Mode single"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset    int    `form:"offset" binding:"omitempty,min=0"`
}

// ListProfilesQuery is the query of GET /profiles.
type ListProfilesQuery struct {
	Limit  int `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}

// RelatedRecordsResponse lists everything attached to a profile. Slices are never null.
type RelatedRecordsResponse struct {
	Experience   []domain.Experience    `json:"experience"`
	Skills       []domain.Skill         `json:"skills"`
	Sports       []domain.Sport         `json:"sports"`
	Education    []domain.Education     `json:"education"`
	Certificates []domain.Certificate   `json:"certificates"`
	Portfolio    []domain.PortfolioItem `json:"portfolio"`
}

// ProfileResponse is the single-mode read of a profile, redacted to Access.
type ProfileResponse struct {
	Profile *domain.Profile        `json:"profile"`
	Related RelatedRecordsResponse `json:"related"`
	Access  domain.AccessTier      `json:"access"`
}

// CardRecordsResponse carries the related records shown on a listing card.
type CardRecordsResponse struct {
	Skills []domain.Skill `json:"skills"`
	Sports []domain.Sport `json:"sports"`
}

// ProfileCard is one entry of a listing.
type ProfileCard struct {
	domain.ProfileSummary
	Related CardRecordsResponse `json:"related"`
}

// ProfileListResponse is the list-mode read.
type ProfileListResponse struct {
	Profiles []ProfileCard `json:"profiles"`
	Limit    int           `json:"limit"`
	Offset   int           `json:"offset"`
}

// ToProfileResponse converts a resolved profile into its wire shape.
func ToProfileResponse(resolved *domain.ResolvedProfile) ProfileResponse {
	r := resolved.Related
	return ProfileResponse{
		Profile: resolved.Profile,
		Related: RelatedRecordsResponse{
			Experience:   nonNil(r.Experiences),
			Skills:       nonNil(r.Skills),
			Sports:       nonNil(r.Sports),
			Education:    nonNil(r.Educations),
			Certificates: nonNil(r.Certificates),
			Portfolio:    nonNil(r.Portfolio),
		},
		Access: resolved.Access,
	}
}

// ToProfileListResponse converts a listing page into its wire shape, keeping the store order.
func ToProfileListResponse(listing *domain.ProfileListing, limit, offset int) ProfileListResponse {
	cards := make([]ProfileCard, 0, len(listing.Profiles))
	for _, summary := range listing.Profiles {
		related := listing.RelatedByProfile[summary.ProfileID]
		cards = append(cards, ProfileCard{
			ProfileSummary: summary,
			Related: CardRecordsResponse{
				Skills: nonNil(related.Skills),
				Sports: nonNil(related.Sports),
			},
		})
	}
	return ProfileListResponse{Profiles: cards, Limit: limit, Offset: offset}
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
