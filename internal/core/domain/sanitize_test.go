package domain_test

import (
	"testing"

	"github.com/prostaff/prostaff_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullProfile() *domain.Profile {
	return &domain.Profile{
		ProfileID:       "p-1",
		UserID:          "owner",
		FirstName:       stringPtr("Ivan"),
		LastName:        stringPtr("Petrov"),
		Email:           stringPtr("ivan@example.com"),
		Phone:           stringPtr("+70000000000"),
		Telegram:        stringPtr("@ivan"),
		LinkedInURL:     stringPtr("https://linkedin.com/in/ivan"),
		PortfolioURL:    stringPtr("https://ivan.dev"),
		Bio:             stringPtr("Strength coach"),
		Goals:           stringPtr("Work with a pro club"),
		WorkStyle:       stringPtr("Data driven"),
		DesiredPosition: stringPtr("Head of performance"),
		VisibilityLevel: domain.VisibilityPublicPreview,
		ShowName:        true,
	}
}

func TestSanitizeProfile_FullAndOwnerKeepEverything(t *testing.T) {
	for _, tier := range []domain.AccessTier{domain.TierOwner, domain.TierFull} {
		p := fullProfile()
		p.ShowName = false

		out := domain.SanitizeProfile(p, tier)

		require.NotNil(t, out)
		assert.Equal(t, "Ivan", *out.FirstName)
		assert.Equal(t, "ivan@example.com", *out.Email)
		assert.Equal(t, "https://ivan.dev", *out.PortfolioURL)
	}
}

func TestSanitizeProfile_PreviewStripsContacts(t *testing.T) {
	p := fullProfile()

	out := domain.SanitizeProfile(p, domain.TierPreview)

	require.NotNil(t, out)
	assert.Nil(t, out.Email)
	assert.Nil(t, out.Phone)
	assert.Nil(t, out.Telegram)
	assert.Nil(t, out.LinkedInURL)
	assert.Nil(t, out.PortfolioURL)
	assert.Equal(t, "Ivan", *out.FirstName)
	assert.Equal(t, "Strength coach", *out.Bio)
	assert.Equal(t, "Head of performance", *out.DesiredPosition)
	// input is untouched
	assert.NotNil(t, p.Email)
}

func TestSanitizeProfile_PreviewHidesNameWhenShowNameOff(t *testing.T) {
	p := fullProfile()
	p.ShowName = false
	p.ShowContacts = true

	out := domain.SanitizeProfile(p, domain.TierPreview)

	require.NotNil(t, out)
	assert.Nil(t, out.FirstName)
	assert.Nil(t, out.LastName)
	assert.Nil(t, out.Email)
}

func TestSanitizeProfile_HiddenReturnsNil(t *testing.T) {
	assert.Nil(t, domain.SanitizeProfile(fullProfile(), domain.TierHidden))
	assert.Nil(t, domain.SanitizeProfile(nil, domain.TierFull))
}

func relatedFixture() domain.RelatedRecords {
	return domain.RelatedRecords{
		Experiences: []domain.Experience{
			{ExperienceID: "e-1", CompanyName: "FC Current", IsCurrent: true},
			{ExperienceID: "e-2", CompanyName: "FC Past", IsCurrent: false},
		},
		Portfolio: []domain.PortfolioItem{
			{PortfolioItemID: "pi-1", Visibility: domain.PortfolioPublic},
			{PortfolioItemID: "pi-2", Visibility: domain.PortfolioPrivate},
		},
	}
}

func TestAdjustRelatedRecords_PreviewHidesCurrentOrg(t *testing.T) {
	p := fullProfile()
	p.HideCurrentOrg = true
	related := relatedFixture()

	out := domain.AdjustRelatedRecords(related, p, domain.TierPreview, "")

	require.Len(t, out.Experiences, 2)
	assert.Equal(t, domain.DefaultCurrentOrgPlaceholder, out.Experiences[0].CompanyName)
	assert.Equal(t, "FC Past", out.Experiences[1].CompanyName)
	assert.Equal(t, "FC Current", related.Experiences[0].CompanyName)
}

func TestAdjustRelatedRecords_CustomPlaceholder(t *testing.T) {
	p := fullProfile()
	p.HideCurrentOrg = true

	out := domain.AdjustRelatedRecords(relatedFixture(), p, domain.TierPreview, "Hidden")

	assert.Equal(t, "Hidden", out.Experiences[0].CompanyName)
}

func TestAdjustRelatedRecords_PreviewFiltersPortfolio(t *testing.T) {
	out := domain.AdjustRelatedRecords(relatedFixture(), fullProfile(), domain.TierPreview, "")

	require.Len(t, out.Portfolio, 1)
	assert.Equal(t, "pi-1", out.Portfolio[0].PortfolioItemID)
	assert.Equal(t, "FC Current", out.Experiences[0].CompanyName)
}

func TestAdjustRelatedRecords_FullSeesEverything(t *testing.T) {
	p := fullProfile()
	p.HideCurrentOrg = true

	for _, tier := range []domain.AccessTier{domain.TierOwner, domain.TierFull} {
		out := domain.AdjustRelatedRecords(relatedFixture(), p, tier, "")
		assert.Len(t, out.Portfolio, 2)
		assert.Equal(t, "FC Current", out.Experiences[0].CompanyName)
	}
}

func TestSummarize_NeverCarriesNamesOrContacts(t *testing.T) {
	summary := domain.Summarize(fullProfile(), domain.TierFull)

	assert.Nil(t, summary.FirstName)
	assert.Nil(t, summary.LastName)
	assert.Nil(t, summary.Email)
	assert.Nil(t, summary.Phone)
	assert.Nil(t, summary.Telegram)
	assert.Equal(t, "Head of performance", *summary.DesiredPosition)
	assert.Equal(t, domain.TierFull, summary.Access)
}
