package mapping

import (
	"testing"

	"github.com/prostaff/prostaff_backend/internal/core/domain"
	"github.com/prostaff/prostaff_backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainProfile_NullableSalary(t *testing.T) {
	m := models.Profile{
		ProfileID:         "p1",
		VisibilityLevel:   "clubs_only",
		DesiredSalaryFrom: decimal.NewNullDecimal(decimal.RequireFromString("1500.50")),
	}

	d := ToDomainProfile(m)

	require.NotNil(t, d.DesiredSalaryFrom)
	assert.True(t, d.DesiredSalaryFrom.Equal(decimal.RequireFromString("1500.5")))
	assert.Nil(t, d.DesiredSalaryTo)
	assert.Equal(t, domain.VisibilityClubsOnly, d.VisibilityLevel)
}

func TestToDomainPortfolioItem_DefaultsToPublic(t *testing.T) {
	assert.Equal(t, domain.PortfolioPublic, ToDomainPortfolioItem(models.PortfolioItem{}).Visibility)
	assert.Equal(t, domain.PortfolioPrivate, ToDomainPortfolioItem(models.PortfolioItem{Visibility: "private"}).Visibility)
}

func TestToDomainSlice(t *testing.T) {
	skills := ToDomainSlice([]models.Skill{{SkillID: "a", Name: "Scouting"}, {SkillID: "b", Name: "Video"}}, ToDomainSkill)

	require.Len(t, skills, 2)
	assert.Equal(t, "Video", skills[1].Name)
	assert.Empty(t, ToDomainSlice([]models.Sport{}, ToDomainSport))
}
