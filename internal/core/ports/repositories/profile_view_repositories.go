package repositories

import (
	"context"
	"time"

	"github.com/prostaff/prostaff_backend/internal/core/domain"
)

// ProfileViewReader defines read operations over recorded profile views
type ProfileViewReader interface {
	// HasViewed reports whether a view exists for (viewerUserID, profileID).
	HasViewed(ctx context.Context, viewerUserID, profileID string) (bool, error)

	// FindViewedProfileIDs returns the subset of profileIDs the viewer has unlocked.
	FindViewedProfileIDs(ctx context.Context, viewerUserID string, profileIDs []string) (map[string]bool, error)

	// CountViewsSince counts the viewer's views with viewed_at strictly after since.
	CountViewsSince(ctx context.Context, viewerUserID string, since time.Time) (int, error)

	// ListViewsByViewer returns the viewer's views newest first using token-based pagination.
	ListViewsByViewer(ctx context.Context, viewerUserID string, limit int, nextToken *string) ([]domain.ProfileView, *string, error)
}
