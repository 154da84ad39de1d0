package models

import "time"

// ProfileView is a row of profile_views.
type ProfileView struct {
	ViewID       string    `db:"view_id"`
	ViewerUserID string    `db:"viewer_user_id"`
	ProfileID    string    `db:"profile_id"`
	ViewedAt     time.Time `db:"viewed_at"`
}

// ClubAccess is a row of club_access.
type ClubAccess struct {
	UserID             string    `db:"user_id"`
	FreeViewsRemaining int       `db:"free_views_remaining"`
	FreeViewsPerWeek   int       `db:"free_views_per_week"`
	TrialExpiresAt     time.Time `db:"trial_expires_at"`
	IsSubscribed       bool      `db:"is_subscribed"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}
