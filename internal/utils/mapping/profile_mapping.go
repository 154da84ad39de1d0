package mapping

import (
	"github.com/prostaff/prostaff_backend/internal/core/domain"
	"github.com/prostaff/prostaff_backend/internal/models"
	"github.com/shopspring/decimal"
)

func nullDecimalPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

// ToDomainProfile converts a profiles row to a domain Profile
func ToDomainProfile(m models.Profile) domain.Profile {
	return domain.Profile{
		ProfileID:             m.ProfileID,
		UserID:                m.UserID,
		FirstName:             m.FirstName,
		LastName:              m.LastName,
		Email:                 m.Email,
		Phone:                 m.Phone,
		Telegram:              m.Telegram,
		LinkedInURL:           m.LinkedInURL,
		PortfolioURL:          m.PortfolioURL,
		AvatarURL:             m.AvatarURL,
		City:                  m.City,
		Country:               m.Country,
		Bio:                   m.Bio,
		Goals:                 m.Goals,
		WorkStyle:             m.WorkStyle,
		DesiredPosition:       m.DesiredPosition,
		DesiredEmploymentType: m.DesiredEmploymentType,
		DesiredSalaryFrom:     nullDecimalPtr(m.DesiredSalaryFrom),
		DesiredSalaryTo:       nullDecimalPtr(m.DesiredSalaryTo),
		DesiredCity:           m.DesiredCity,
		OpenToRelocation:      m.OpenToRelocation,
		IsPublic:              m.IsPublic,
		VisibilityLevel:       domain.VisibilityLevel(m.VisibilityLevel),
		ShowName:              m.ShowName,
		ShowContacts:          m.ShowContacts,
		HideCurrentOrg:        m.HideCurrentOrg,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}

// ToDomainProfileSlice converts a slice of profiles rows
func ToDomainProfileSlice(ms []models.Profile) []domain.Profile {
	ds := make([]domain.Profile, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProfile(m)
	}
	return ds
}

func ToDomainExperience(m models.Experience) domain.Experience {
	return domain.Experience{
		ExperienceID: m.ExperienceID,
		ProfileID:    m.ProfileID,
		CompanyName:  m.CompanyName,
		Position:     m.Position,
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		IsCurrent:    m.IsCurrent,
		Description:  m.Description,
	}
}

func ToDomainSkill(m models.Skill) domain.Skill {
	return domain.Skill{SkillID: m.SkillID, ProfileID: m.ProfileID, Name: m.Name, Level: m.Level}
}

func ToDomainSport(m models.Sport) domain.Sport {
	return domain.Sport{SportID: m.SportID, ProfileID: m.ProfileID, Name: m.Name, Level: m.Level}
}

func ToDomainEducation(m models.Education) domain.Education {
	return domain.Education{
		EducationID:  m.EducationID,
		ProfileID:    m.ProfileID,
		Institution:  m.Institution,
		Degree:       m.Degree,
		FieldOfStudy: m.FieldOfStudy,
		StartYear:    m.StartYear,
		EndYear:      m.EndYear,
	}
}

func ToDomainCertificate(m models.Certificate) domain.Certificate {
	return domain.Certificate{
		CertificateID: m.CertificateID,
		ProfileID:     m.ProfileID,
		Name:          m.Name,
		Issuer:        m.Issuer,
		IssuedAt:      m.IssuedAt,
		URL:           m.URL,
	}
}

// ToDomainPortfolioItem converts a portfolio row. An empty visibility is treated as public,
// matching the column default.
func ToDomainPortfolioItem(m models.PortfolioItem) domain.PortfolioItem {
	visibility := domain.PortfolioVisibility(m.Visibility)
	if visibility == "" {
		visibility = domain.PortfolioPublic
	}
	return domain.PortfolioItem{
		PortfolioItemID: m.PortfolioItemID,
		ProfileID:       m.ProfileID,
		Title:           m.Title,
		Description:     m.Description,
		URL:             m.URL,
		Visibility:      visibility,
		SortOrder:       m.SortOrder,
	}
}

// ToDomainSlice converts rows with the given per-row mapper.
func ToDomainSlice[M any, D any](ms []M, convert func(M) D) []D {
	ds := make([]D, len(ms))
	for i, m := range ms {
		ds[i] = convert(m)
	}
	return ds
}
