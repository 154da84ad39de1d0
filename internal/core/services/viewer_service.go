package services

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/prostaff/prostaff_backend/internal/apperrors"
	"github.com/prostaff/prostaff_backend/internal/core/domain"
	portsrepo "github.com/prostaff/prostaff_backend/internal/core/ports/repositories"
	portssvc "github.com/prostaff/prostaff_backend/internal/core/ports/services"
)

type viewerService struct {
	BaseService
	roleRepo  portsrepo.UserRoleReader
	roleCache portsrepo.RoleCache
}

// NewViewerService creates the viewer resolver. roleCache may be nil.
func NewViewerService(roleRepo portsrepo.UserRoleReader, roleCache portsrepo.RoleCache) portssvc.ViewerResolverSvc {
	return &viewerService{
		roleRepo:  roleRepo,
		roleCache: roleCache,
	}
}

var _ portssvc.ViewerResolverSvc = (*viewerService)(nil)

// ResolveViewer looks the user's roles up, going through the role cache when one is configured.
func (s *viewerService) ResolveViewer(ctx context.Context, userID string) (*domain.Viewer, error) {
	if userID == "" {
		return nil, apperrors.NewAppError(http.StatusUnauthorized, "missing viewer identity", nil)
	}

	if s.roleCache != nil {
		roles, found, err := s.roleCache.GetRoles(ctx, userID)
		if err != nil {
			s.LogWarn(ctx, err, "Role cache lookup failed, falling back to store", slog.String("user_id", userID))
		} else if found {
			return &domain.Viewer{UserID: userID, Roles: roles}, nil
		}
	}

	roles, err := s.roleRepo.FindRolesByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Credential does not resolve to a known user", slog.String("user_id", userID))
			return nil, apperrors.NewAppError(http.StatusUnauthorized, "unknown viewer", nil)
		}
		s.LogError(ctx, err, "Failed to resolve viewer roles", slog.String("user_id", userID))
		return nil, err
	}

	if s.roleCache != nil {
		if err := s.roleCache.SetRoles(ctx, userID, roles); err != nil {
			s.LogWarn(ctx, err, "Failed to cache viewer roles", slog.String("user_id", userID))
		}
	}

	return &domain.Viewer{UserID: userID, Roles: roles}, nil
}
