package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prostaff/prostaff_backend/internal/apperrors"
	"github.com/prostaff/prostaff_backend/internal/core/domain"
	"github.com/prostaff/prostaff_backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResolveViewer_WithoutCache(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRoleRepository)
	repo.On("FindRolesByUserID", ctx, "u1").Return([]domain.Role{domain.RoleEmployer}, nil)

	viewer, err := services.NewViewerService(repo, nil).ResolveViewer(ctx, "u1")

	require.NoError(t, err)
	assert.Equal(t, "u1", viewer.UserID)
	assert.True(t, viewer.IsEmployer())
}

func TestResolveViewer_UnknownUserIsUnauthorized(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRoleRepository)
	repo.On("FindRolesByUserID", ctx, "ghost").Return(nil, apperrors.ErrNotFound)

	_, err := services.NewViewerService(repo, nil).ResolveViewer(ctx, "ghost")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, err = services.NewViewerService(repo, nil).ResolveViewer(ctx, "")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestResolveViewer_CacheHitSkipsStore(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRoleRepository)
	cache := new(MockRoleCache)
	cache.On("GetRoles", ctx, "u1").Return([]domain.Role{domain.RoleAdmin}, true, nil)

	viewer, err := services.NewViewerService(repo, cache).ResolveViewer(ctx, "u1")

	require.NoError(t, err)
	assert.True(t, viewer.IsAdmin())
	repo.AssertNotCalled(t, "FindRolesByUserID", mock.Anything, mock.Anything)
}

func TestResolveViewer_CacheMissPopulatesCache(t *testing.T) {
	ctx := context.Background()
	roles := []domain.Role{domain.RoleSpecialist}
	repo := new(MockUserRoleRepository)
	repo.On("FindRolesByUserID", ctx, "u1").Return(roles, nil)
	cache := new(MockRoleCache)
	cache.On("GetRoles", ctx, "u1").Return(nil, false, nil)
	cache.On("SetRoles", ctx, "u1", roles).Return(nil)

	viewer, err := services.NewViewerService(repo, cache).ResolveViewer(ctx, "u1")

	require.NoError(t, err)
	assert.Equal(t, domain.RoleSpecialist, viewer.Role())
	cache.AssertExpectations(t)
}

func TestResolveViewer_CacheFailuresFallThrough(t *testing.T) {
	ctx := context.Background()
	roles := []domain.Role{domain.RoleEmployer}
	repo := new(MockUserRoleRepository)
	repo.On("FindRolesByUserID", ctx, "u1").Return(roles, nil)
	cache := new(MockRoleCache)
	cache.On("GetRoles", ctx, "u1").Return(nil, false, errors.New("redis: connection refused"))
	cache.On("SetRoles", ctx, "u1", roles).Return(errors.New("redis: connection refused"))

	viewer, err := services.NewViewerService(repo, cache).ResolveViewer(ctx, "u1")

	require.NoError(t, err)
	assert.True(t, viewer.IsEmployer())
}
