package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prostaff/prostaff_backend/internal/apperrors"
	"github.com/prostaff/prostaff_backend/internal/core/domain"
	portssvc "github.com/prostaff/prostaff_backend/internal/core/ports/services"
	"github.com/prostaff/prostaff_backend/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func strPtr(s string) *string { return &s }

func specialistProfile(id string, visibility domain.VisibilityLevel) *domain.Profile {
	return &domain.Profile{
		ProfileID:       id,
		UserID:          "owner-" + id,
		FirstName:       strPtr("Ivan"),
		LastName:        strPtr("Petrov"),
		Email:           strPtr("ivan@example.com"),
		Phone:           strPtr("+100000000"),
		Telegram:        strPtr("@ivan"),
		City:            strPtr("Kazan"),
		IsPublic:        true,
		VisibilityLevel: visibility,
		ShowName:        true,
		HideCurrentOrg:  true,
	}
}

func relatedWithCurrentJob() *domain.RelatedRecords {
	return &domain.RelatedRecords{
		Experiences: []domain.Experience{
			{ExperienceID: "e1", CompanyName: "FC Rubin", IsCurrent: true},
			{ExperienceID: "e2", CompanyName: "FC Neftekhimik"},
		},
		Portfolio: []domain.PortfolioItem{
			{PortfolioItemID: "pi1", Title: "Season report", Visibility: domain.PortfolioPublic},
			{PortfolioItemID: "pi2", Title: "Internal notes", Visibility: domain.PortfolioPrivate},
		},
	}
}

type ProfileAccessServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	profiles *MockProfileRepository
	views    *MockProfileViewRepository
	service  portssvc.ProfileAccessSvc
}

func (suite *ProfileAccessServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.profiles = new(MockProfileRepository)
	suite.views = new(MockProfileViewRepository)
	suite.service = services.NewProfileAccessService(suite.profiles, suite.views)
}

func TestProfileAccessServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProfileAccessServiceTestSuite))
}

func (suite *ProfileAccessServiceTestSuite) TestGetProfile_NotFound() {
	suite.profiles.On("FindProfileByID", suite.ctx, "missing").Return(nil, apperrors.ErrNotFound)

	resolved, err := suite.service.GetProfile(suite.ctx, nil, "missing")

	suite.Nil(resolved)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ProfileAccessServiceTestSuite) TestGetProfile_EmptyID() {
	_, err := suite.service.GetProfile(suite.ctx, nil, "")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ProfileAccessServiceTestSuite) TestGetProfile_AnonymousGetsPreview() {
	suite.profiles.On("FindProfileByID", suite.ctx, "p1").Return(specialistProfile("p1", domain.VisibilityPublicPreview), nil)
	suite.profiles.On("FindRelatedRecords", suite.ctx, "p1").Return(relatedWithCurrentJob(), nil)

	resolved, err := suite.service.GetProfile(suite.ctx, nil, "p1")
	suite.Require().NoError(err)

	suite.Equal(domain.TierPreview, resolved.Access)
	suite.Equal("Ivan", *resolved.Profile.FirstName)
	suite.Nil(resolved.Profile.Email)
	suite.Nil(resolved.Profile.Phone)
	suite.Nil(resolved.Profile.Telegram)
	suite.Equal(domain.DefaultCurrentOrgPlaceholder, resolved.Related.Experiences[0].CompanyName)
	suite.Equal("FC Neftekhimik", resolved.Related.Experiences[1].CompanyName)
	suite.Len(resolved.Related.Portfolio, 1)
	suite.views.AssertNotCalled(suite.T(), "HasViewed", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProfileAccessServiceTestSuite) TestGetProfile_ClubsOnlyIsNotFoundForNonEmployers() {
	suite.profiles.On("FindProfileByID", suite.ctx, "p1").Return(specialistProfile("p1", domain.VisibilityClubsOnly), nil)
	specialist := &domain.Viewer{UserID: "s1", Roles: []domain.Role{domain.RoleSpecialist}}

	for _, viewer := range []*domain.Viewer{nil, specialist} {
		_, err := suite.service.GetProfile(suite.ctx, viewer, "p1")
		suite.ErrorIs(err, apperrors.ErrNotFound)
	}
	suite.profiles.AssertNotCalled(suite.T(), "FindRelatedRecords", mock.Anything, mock.Anything)
}

func (suite *ProfileAccessServiceTestSuite) TestGetProfile_EmployerTierDependsOnView() {
	suite.profiles.On("FindProfileByID", suite.ctx, "p1").Return(specialistProfile("p1", domain.VisibilityClubsOnly), nil)
	suite.profiles.On("FindRelatedRecords", suite.ctx, "p1").Return(relatedWithCurrentJob(), nil)
	suite.views.On("HasViewed", suite.ctx, "emp-1", "p1").Return(false, nil).Once()
	suite.views.On("HasViewed", suite.ctx, "emp-1", "p1").Return(true, nil).Once()

	before, err := suite.service.GetProfile(suite.ctx, employer("emp-1"), "p1")
	suite.Require().NoError(err)
	suite.Equal(domain.TierPreview, before.Access)
	suite.Nil(before.Profile.Email)

	after, err := suite.service.GetProfile(suite.ctx, employer("emp-1"), "p1")
	suite.Require().NoError(err)
	suite.Equal(domain.TierFull, after.Access)
	suite.Equal("ivan@example.com", *after.Profile.Email)
	suite.Equal("FC Rubin", after.Related.Experiences[0].CompanyName)
	suite.Len(after.Related.Portfolio, 2)
}

func (suite *ProfileAccessServiceTestSuite) TestGetProfile_OwnerAndAdminSeeHiddenProfile() {
	profile := specialistProfile("p1", domain.VisibilityHidden)
	suite.profiles.On("FindProfileByID", suite.ctx, "p1").Return(profile, nil)
	suite.profiles.On("FindRelatedRecords", suite.ctx, "p1").Return(relatedWithCurrentJob(), nil)

	owner := &domain.Viewer{UserID: profile.UserID, Roles: []domain.Role{domain.RoleSpecialist}}
	resolved, err := suite.service.GetProfile(suite.ctx, owner, "p1")
	suite.Require().NoError(err)
	suite.Equal(domain.TierOwner, resolved.Access)

	admin := &domain.Viewer{UserID: "admin", Roles: []domain.Role{domain.RoleAdmin}}
	resolved, err = suite.service.GetProfile(suite.ctx, admin, "p1")
	suite.Require().NoError(err)
	suite.Equal(domain.TierFull, resolved.Access)

	_, err = suite.service.GetProfile(suite.ctx, employer("emp-1"), "p1")
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.views.AssertNotCalled(suite.T(), "HasViewed", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProfileAccessServiceTestSuite) TestGetProfile_CustomPlaceholder() {
	svc := services.NewProfileAccessService(suite.profiles, suite.views, services.WithCurrentOrgPlaceholder("Undisclosed club"))
	suite.profiles.On("FindProfileByID", suite.ctx, "p1").Return(specialistProfile("p1", domain.VisibilityPublicPreview), nil)
	suite.profiles.On("FindRelatedRecords", suite.ctx, "p1").Return(relatedWithCurrentJob(), nil)

	resolved, err := svc.GetProfile(suite.ctx, nil, "p1")
	suite.Require().NoError(err)
	suite.Equal("Undisclosed club", resolved.Related.Experiences[0].CompanyName)
}

func (suite *ProfileAccessServiceTestSuite) TestGetProfile_StoreFailure() {
	storeErr := errors.New("db down")
	suite.profiles.On("FindProfileByID", suite.ctx, "p1").Return(specialistProfile("p1", domain.VisibilityPublicPreview), nil)
	suite.profiles.On("FindRelatedRecords", suite.ctx, "p1").Return(nil, storeErr)

	_, err := suite.service.GetProfile(suite.ctx, nil, "p1")
	suite.ErrorIs(err, storeErr)
}

func (suite *ProfileAccessServiceTestSuite) TestListProfiles_AnonymousOnlySeesPublicPreview() {
	page := []domain.Profile{
		*specialistProfile("p1", domain.VisibilityPublicPreview),
		*specialistProfile("p2", domain.VisibilityClubsOnly),
		*specialistProfile("p3", ""),
	}
	suite.profiles.On("ListPublicProfiles", suite.ctx, domain.ListableVisibilities, 20, 0).Return(page, nil)
	suite.profiles.On("FindCardRecords", suite.ctx, []string{"p1", "p3"}).Return(map[string]domain.CardRecords{
		"p1": {Skills: []domain.Skill{{SkillID: "s1", Name: "Video analysis"}}},
	}, nil)

	listing, err := suite.service.ListProfiles(suite.ctx, nil, 0, -5)
	suite.Require().NoError(err)

	suite.Require().Len(listing.Profiles, 2)
	for _, card := range listing.Profiles {
		suite.Nil(card.FirstName)
		suite.Nil(card.Email)
		suite.Equal(domain.TierPreview, card.Access)
	}
	suite.Equal(domain.VisibilityPublicPreview, listing.Profiles[1].VisibilityLevel)
	suite.Len(listing.RelatedByProfile["p1"].Skills, 1)
	suite.Contains(listing.RelatedByProfile, "p3")
	suite.views.AssertNotCalled(suite.T(), "FindViewedProfileIDs", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProfileAccessServiceTestSuite) TestListProfiles_EmployerSeesClubsOnlyWithUnlockedTier() {
	page := []domain.Profile{
		*specialistProfile("p1", domain.VisibilityPublicPreview),
		*specialistProfile("p2", domain.VisibilityClubsOnly),
	}
	suite.profiles.On("ListPublicProfiles", suite.ctx, domain.ListableVisibilities, 100, 10).Return(page, nil)
	suite.views.On("FindViewedProfileIDs", suite.ctx, "emp-1", []string{"p1", "p2"}).Return(map[string]bool{"p2": true}, nil)
	suite.profiles.On("FindCardRecords", suite.ctx, []string{"p1", "p2"}).Return(map[string]domain.CardRecords{}, nil)

	listing, err := suite.service.ListProfiles(suite.ctx, employer("emp-1"), 500, 10)
	suite.Require().NoError(err)

	suite.Require().Len(listing.Profiles, 2)
	suite.Equal(domain.TierPreview, listing.Profiles[0].Access)
	suite.Equal(domain.TierFull, listing.Profiles[1].Access)
	// Unlocked cards still carry no names or contacts.
	suite.Nil(listing.Profiles[1].FirstName)
	suite.Nil(listing.Profiles[1].Email)
}

func (suite *ProfileAccessServiceTestSuite) TestListProfiles_EmptyPage() {
	suite.profiles.On("ListPublicProfiles", suite.ctx, domain.ListableVisibilities, 5, 0).Return([]domain.Profile{}, nil)

	listing, err := suite.service.ListProfiles(suite.ctx, nil, 5, 0)
	suite.Require().NoError(err)
	suite.Empty(listing.Profiles)
	suite.profiles.AssertNotCalled(suite.T(), "FindCardRecords", mock.Anything, mock.Anything)
}
