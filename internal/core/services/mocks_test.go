package services_test

import (
	"context"
	"time"

	"github.com/prostaff/prostaff_backend/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockProfileRepository is a mock type for the ProfileRepositoryFacade interface
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindProfileByID(ctx context.Context, profileID string) (*domain.Profile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) ListPublicProfiles(ctx context.Context, visibilities []domain.VisibilityLevel, limit int, offset int) ([]domain.Profile, error) {
	args := m.Called(ctx, visibilities, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindRelatedRecords(ctx context.Context, profileID string) (*domain.RelatedRecords, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RelatedRecords), args.Error(1)
}

func (m *MockProfileRepository) FindCardRecords(ctx context.Context, profileIDs []string) (map[string]domain.CardRecords, error) {
	args := m.Called(ctx, profileIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.CardRecords), args.Error(1)
}

// MockProfileViewRepository is a mock type for the ProfileViewReader interface
type MockProfileViewRepository struct {
	mock.Mock
}

func (m *MockProfileViewRepository) HasViewed(ctx context.Context, viewerUserID, profileID string) (bool, error) {
	args := m.Called(ctx, viewerUserID, profileID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProfileViewRepository) FindViewedProfileIDs(ctx context.Context, viewerUserID string, profileIDs []string) (map[string]bool, error) {
	args := m.Called(ctx, viewerUserID, profileIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *MockProfileViewRepository) CountViewsSince(ctx context.Context, viewerUserID string, since time.Time) (int, error) {
	args := m.Called(ctx, viewerUserID, since)
	return args.Int(0), args.Error(1)
}

func (m *MockProfileViewRepository) ListViewsByViewer(ctx context.Context, viewerUserID string, limit int, nextToken *string) ([]domain.ProfileView, *string, error) {
	args := m.Called(ctx, viewerUserID, limit, nextToken)
	var views []domain.ProfileView
	if args.Get(0) != nil {
		views = args.Get(0).([]domain.ProfileView)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return views, next, args.Error(2)
}

// MockClubAccessRepository is a mock type for the ClubAccessRepositoryFacade interface
type MockClubAccessRepository struct {
	mock.Mock
}

func (m *MockClubAccessRepository) FindClubAccess(ctx context.Context, userID string) (*domain.ClubAccess, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClubAccess), args.Error(1)
}

func (m *MockClubAccessRepository) FindOrCreateClubAccess(ctx context.Context, userID string) (*domain.ClubAccess, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClubAccess), args.Error(1)
}

func (m *MockClubAccessRepository) RecordUnlock(ctx context.Context, charge domain.UnlockCharge) (*domain.UnlockReceipt, error) {
	args := m.Called(ctx, charge)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UnlockReceipt), args.Error(1)
}

// MockUserRoleRepository is a mock type for the UserRoleReader interface
type MockUserRoleRepository struct {
	mock.Mock
}

func (m *MockUserRoleRepository) FindRolesByUserID(ctx context.Context, userID string) ([]domain.Role, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Role), args.Error(1)
}

// MockRoleCache is a mock type for the RoleCache interface
type MockRoleCache struct {
	mock.Mock
}

func (m *MockRoleCache) GetRoles(ctx context.Context, userID string) ([]domain.Role, bool, error) {
	args := m.Called(ctx, userID)
	var roles []domain.Role
	if args.Get(0) != nil {
		roles = args.Get(0).([]domain.Role)
	}
	return roles, args.Bool(1), args.Error(2)
}

func (m *MockRoleCache) SetRoles(ctx context.Context, userID string, roles []domain.Role) error {
	args := m.Called(ctx, userID, roles)
	return args.Error(0)
}

type recordingObserver struct {
	outcomes []string
}

func (r *recordingObserver) ObserveUnlock(access domain.UnlockAccess, reason string) {
	r.outcomes = append(r.outcomes, string(access)+"/"+reason)
}
