package domain

import "time"

// ProfileView is the append-only fact that viewer unlocked profile.
// Its existence grants permanent full access; it never expires.
type ProfileView struct {
	ViewID       string    `json:"id"`
	ViewerUserID string    `json:"viewer_user_id"`
	ProfileID    string    `json:"profile_id"`
	ViewedAt     time.Time `json:"viewed_at"`
}
