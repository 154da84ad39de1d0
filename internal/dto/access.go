package dto

import (
	"time"

	"github.com/prostaff/prostaff_backend/internal/core/domain"
)

// UnlockResponse is the body of POST /profiles/{profileID}/unlock.
type UnlockResponse struct {
	Access             domain.UnlockAccess `json:"access"`
	Unlimited          bool                `json:"unlimited,omitempty"`
	AlreadyViewed      bool                `json:"already_viewed,omitempty"`
	Subscribed         *bool               `json:"subscribed,omitempty"`
	FreeViewsRemaining *int                `json:"free_views_remaining,omitempty"`
	WeeklyRemaining    *int                `json:"weekly_remaining,omitempty"`
	TrialExpiresAt     *time.Time          `json:"trial_expires_at,omitempty"`
	Message            string              `json:"message,omitempty"`
}

// ToUnlockResponse converts an unlock result. subscribed is reported for paywall and subscription outcomes.
func ToUnlockResponse(result *domain.UnlockResult) UnlockResponse {
	resp := UnlockResponse{
		Access:             result.Access,
		Unlimited:          result.Unlimited,
		AlreadyViewed:      result.AlreadyViewed,
		FreeViewsRemaining: result.FreeViewsRemaining,
		WeeklyRemaining:    result.WeeklyRemaining,
		TrialExpiresAt:     result.TrialExpiresAt,
		Message:            result.Message,
	}
	if result.Subscribed || result.Access == domain.UnlockPaywall {
		subscribed := result.Subscribed
		resp.Subscribed = &subscribed
	}
	return resp
}

// DeniedResponse is the 403 body of an unlock by a non-employer.
type DeniedResponse struct {
	Access domain.UnlockAccess `json:"access"`
	Error  string              `json:"error"`
}

// QuotaResponse is the body of GET /access/quota.
type QuotaResponse struct {
	Unlimited          bool       `json:"unlimited"`
	Subscribed         bool       `json:"subscribed"`
	InTrial            bool       `json:"in_trial"`
	TrialExpiresAt     *time.Time `json:"trial_expires_at,omitempty"`
	FreeViewsRemaining int        `json:"free_views_remaining"`
	FreeViewsPerWeek   int        `json:"free_views_per_week"`
	WeeklyUsed         int        `json:"weekly_used"`
	WeeklyRemaining    int        `json:"weekly_remaining"`
}

// ToQuotaResponse converts a ledger snapshot.
func ToQuotaResponse(status *domain.QuotaStatus) QuotaResponse {
	if status.Unlimited {
		return QuotaResponse{Unlimited: true}
	}
	expires := status.Ledger.TrialExpiresAt
	return QuotaResponse{
		Subscribed:         status.Ledger.IsSubscribed,
		InTrial:            status.InTrial,
		TrialExpiresAt:     &expires,
		FreeViewsRemaining: status.Ledger.FreeViewsRemaining,
		FreeViewsPerWeek:   status.Ledger.FreeViewsPerWeek,
		WeeklyUsed:         status.WeeklyUsed,
		WeeklyRemaining:    status.WeeklyRemaining,
	}
}

// ListUnlockedQuery is the query of GET /access/unlocked.
type ListUnlockedQuery struct {
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"next_token"`
}

// UnlockedProfile is one entry of the unlocked profiles page.
type UnlockedProfile struct {
	ProfileID string    `json:"profile_id"`
	ViewedAt  time.Time `json:"viewed_at"`
}

// UnlockedProfilesResponse is a page of unlocked profiles.
type UnlockedProfilesResponse struct {
	Items     []UnlockedProfile `json:"items"`
	NextToken *string           `json:"next_token,omitempty"`
}

// ToUnlockedProfilesResponse converts a page of views.
func ToUnlockedProfilesResponse(views []domain.ProfileView, next *string) UnlockedProfilesResponse {
	items := make([]UnlockedProfile, 0, len(views))
	for _, v := range views {
		items = append(items, UnlockedProfile{ProfileID: v.ProfileID, ViewedAt: v.ViewedAt})
	}
	return UnlockedProfilesResponse{Items: items, NextToken: next}
}
