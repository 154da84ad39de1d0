package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VisibilityLevel controls who may see a specialist profile at all.
type VisibilityLevel string

const (
	VisibilityPublicPreview VisibilityLevel = "public_preview"
	VisibilityClubsOnly     VisibilityLevel = "clubs_only"
	VisibilityHidden        VisibilityLevel = "hidden"
)

// IsValid reports whether v is a known visibility level.
func (v VisibilityLevel) IsValid() bool {
	switch v {
	case VisibilityPublicPreview, VisibilityClubsOnly, VisibilityHidden:
		return true
	}
	return false
}

// Profile is a specialist's record. Nullable text columns are pointers so that
// redaction can force them to null on the wire.
type Profile struct {
	ProfileID string `json:"id"`
	UserID    string `json:"user_id"`

	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`

	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Telegram     *string `json:"telegram"`
	LinkedInURL  *string `json:"linkedin_url"`
	PortfolioURL *string `json:"portfolio_url"`

	AvatarURL *string `json:"avatar_url"`
	City      *string `json:"city"`
	Country   *string `json:"country"`
	Bio       *string `json:"bio"`
	Goals     *string `json:"goals"`
	WorkStyle *string `json:"work_style"`

	DesiredPosition       *string          `json:"desired_position"`
	DesiredEmploymentType *string          `json:"desired_employment_type"`
	DesiredSalaryFrom     *decimal.Decimal `json:"desired_salary_from"`
	DesiredSalaryTo       *decimal.Decimal `json:"desired_salary_to"`
	DesiredCity           *string          `json:"desired_city"`
	OpenToRelocation      bool             `json:"open_to_relocation"`

	IsPublic        bool            `json:"is_public"`
	VisibilityLevel VisibilityLevel `json:"visibility_level"`
	ShowName        bool            `json:"show_name"`
	ShowContacts    bool            `json:"show_contacts"`
	HideCurrentOrg  bool            `json:"hide_current_org"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EffectiveVisibility treats an empty level as the default public_preview.
func (p *Profile) EffectiveVisibility() VisibilityLevel {
	if p.VisibilityLevel == "" {
		return VisibilityPublicPreview
	}
	return p.VisibilityLevel
}
