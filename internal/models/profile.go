package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Profile is a row of the profiles table.
type Profile struct {
	ProfileID string `db:"profile_id"`
	UserID    string `db:"user_id"`

	FirstName *string `db:"first_name"`
	LastName  *string `db:"last_name"`

	Email        *string `db:"email"`
	Phone        *string `db:"phone"`
	Telegram     *string `db:"telegram"`
	LinkedInURL  *string `db:"linkedin_url"`
	PortfolioURL *string `db:"portfolio_url"`

	AvatarURL *string `db:"avatar_url"`
	City      *string `db:"city"`
	Country   *string `db:"country"`
	Bio       *string `db:"bio"`
	Goals     *string `db:"goals"`
	WorkStyle *string `db:"work_style"`

	DesiredPosition       *string             `db:"desired_position"`
	DesiredEmploymentType *string             `db:"desired_employment_type"`
	DesiredSalaryFrom     decimal.NullDecimal `db:"desired_salary_from"`
	DesiredSalaryTo       decimal.NullDecimal `db:"desired_salary_to"`
	DesiredCity           *string             `db:"desired_city"`
	OpenToRelocation      bool                `db:"open_to_relocation"`

	IsPublic        bool   `db:"is_public"`
	VisibilityLevel string `db:"visibility_level"`
	ShowName        bool   `db:"show_name"`
	ShowContacts    bool   `db:"show_contacts"`
	HideCurrentOrg  bool   `db:"hide_current_org"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Experience is a row of profile_experiences.
type Experience struct {
	ExperienceID string     `db:"experience_id"`
	ProfileID    string     `db:"profile_id"`
	CompanyName  string     `db:"company_name"`
	Position     string     `db:"position"`
	StartDate    *time.Time `db:"start_date"`
	EndDate      *time.Time `db:"end_date"`
	IsCurrent    bool       `db:"is_current"`
	Description  *string    `db:"description"`
}

// Skill is a row of profile_skills.
type Skill struct {
	SkillID   string  `db:"skill_id"`
	ProfileID string  `db:"profile_id"`
	Name      string  `db:"name"`
	Level     *string `db:"level"`
}

// Sport is a row of profile_sports.
type Sport struct {
	SportID   string  `db:"sport_id"`
	ProfileID string  `db:"profile_id"`
	Name      string  `db:"name"`
	Level     *string `db:"level"`
}

// Education is a row of profile_educations.
type Education struct {
	EducationID  string  `db:"education_id"`
	ProfileID    string  `db:"profile_id"`
	Institution  string  `db:"institution"`
	Degree       *string `db:"degree"`
	FieldOfStudy *string `db:"field_of_study"`
	StartYear    *int    `db:"start_year"`
	EndYear      *int    `db:"end_year"`
}

// Certificate is a row of profile_certificates.
type Certificate struct {
	CertificateID string     `db:"certificate_id"`
	ProfileID     string     `db:"profile_id"`
	Name          string     `db:"name"`
	Issuer        *string    `db:"issuer"`
	IssuedAt      *time.Time `db:"issued_at"`
	URL           *string    `db:"url"`
}

// PortfolioItem is a row of profile_portfolio_items.
type PortfolioItem struct {
	PortfolioItemID string  `db:"portfolio_item_id"`
	ProfileID       string  `db:"profile_id"`
	Title           string  `db:"title"`
	Description     *string `db:"description"`
	URL             *string `db:"url"`
	Visibility      string  `db:"visibility"`
	SortOrder       int     `db:"sort_order"`
}
