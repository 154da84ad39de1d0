package services

import (
	portsrepo "github.com/prostaff/prostaff_backend/internal/core/ports/repositories"
	portssvc "github.com/prostaff/prostaff_backend/internal/core/ports/services"
	"github.com/prostaff/prostaff_backend/internal/platform/config"
)

// ContainerDeps carries optional collaborators that are not repositories.
type ContainerDeps struct {
	RoleCache      portsrepo.RoleCache
	UnlockObserver []UnlockObserver
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, deps ContainerDeps) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Viewer = NewViewerService(repos.UserRoleRepo, deps.RoleCache)

	container.ProfileAccess = NewProfileAccessService(
		repos.ProfileRepo,
		repos.ProfileViewRepo,
		WithCurrentOrgPlaceholder(cfg.CurrentOrgPlaceholder),
		WithListLimits(cfg.ListDefaultLimit, cfg.ListMaxLimit),
	)

	quotaOpts := []ViewQuotaOption{WithWeeklyWindow(cfg.WeeklyWindow)}
	for _, o := range deps.UnlockObserver {
		quotaOpts = append(quotaOpts, WithUnlockObserver(o))
	}
	container.ViewQuota = NewViewQuotaService(
		repos.ProfileRepo,
		repos.ProfileViewRepo,
		repos.ClubAccessRepo,
		quotaOpts...,
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ViewerResolverSvc  = (*viewerService)(nil)
	_ portssvc.ProfileAccessSvc   = (*profileAccessService)(nil)
	_ portssvc.ViewQuotaSvcFacade = (*viewQuotaService)(nil)
)
