package mapping

import (
	"github.com/prostaff/prostaff_backend/internal/core/domain"
	"github.com/prostaff/prostaff_backend/internal/models"
)

// ToDomainProfileView converts a profile_views row to a domain ProfileView
func ToDomainProfileView(m models.ProfileView) domain.ProfileView {
	return domain.ProfileView{
		ViewID:       m.ViewID,
		ViewerUserID: m.ViewerUserID,
		ProfileID:    m.ProfileID,
		ViewedAt:     m.ViewedAt,
	}
}

// ToDomainClubAccess converts a club_access row to a domain ClubAccess
func ToDomainClubAccess(m models.ClubAccess) domain.ClubAccess {
	return domain.ClubAccess{
		UserID:             m.UserID,
		FreeViewsRemaining: m.FreeViewsRemaining,
		FreeViewsPerWeek:   m.FreeViewsPerWeek,
		TrialExpiresAt:     m.TrialExpiresAt,
		IsSubscribed:       m.IsSubscribed,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}
