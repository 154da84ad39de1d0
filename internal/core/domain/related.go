package domain

import "time"

// Experience is one employment entry on a profile.
type Experience struct {
	ExperienceID string     `json:"id"`
	ProfileID    string     `json:"profile_id"`
	CompanyName  string     `json:"company_name"`
	Position     string     `json:"position"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	IsCurrent    bool       `json:"is_current"`
	Description  *string    `json:"description"`
}

// Skill is a named skill with an optional level.
type Skill struct {
	SkillID   string  `json:"id"`
	ProfileID string  `json:"profile_id"`
	Name      string  `json:"name"`
	Level     *string `json:"level"`
}

// Sport is a sport the specialist works in.
type Sport struct {
	SportID   string  `json:"id"`
	ProfileID string  `json:"profile_id"`
	Name      string  `json:"name"`
	Level     *string `json:"level"`
}

// Education is one education entry on a profile.
type Education struct {
	EducationID  string  `json:"id"`
	ProfileID    string  `json:"profile_id"`
	Institution  string  `json:"institution"`
	Degree       *string `json:"degree"`
	FieldOfStudy *string `json:"field_of_study"`
	StartYear    *int    `json:"start_year"`
	EndYear      *int    `json:"end_year"`
}

// Certificate is a certification held by the specialist.
type Certificate struct {
	CertificateID string     `json:"id"`
	ProfileID     string     `json:"profile_id"`
	Name          string     `json:"name"`
	Issuer        *string    `json:"issuer"`
	IssuedAt      *time.Time `json:"issued_at"`
	URL           *string    `json:"url"`
}

// PortfolioVisibility is the per-item visibility of a portfolio entry.
type PortfolioVisibility string

const (
	PortfolioPublic  PortfolioVisibility = "public"
	PortfolioPrivate PortfolioVisibility = "private"
)

// PortfolioItem is a portfolio entry; redacted views keep only public items.
type PortfolioItem struct {
	PortfolioItemID string              `json:"id"`
	ProfileID       string              `json:"profile_id"`
	Title           string              `json:"title"`
	Description     *string             `json:"description"`
	URL             *string             `json:"url"`
	Visibility      PortfolioVisibility `json:"visibility"`
	SortOrder       int                 `json:"sort_order"`
}

// RelatedRecords groups everything attached to one profile.
type RelatedRecords struct {
	Experiences  []Experience    `json:"experience"`
	Skills       []Skill         `json:"skills"`
	Sports       []Sport         `json:"sports"`
	Educations   []Education     `json:"education"`
	Certificates []Certificate   `json:"certificates"`
	Portfolio    []PortfolioItem `json:"portfolio"`
}

// CardRecords is the subset of related records shown on listing cards.
type CardRecords struct {
	Skills []Skill `json:"skills"`
	Sports []Sport `json:"sports"`
}
