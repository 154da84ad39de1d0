package domain

import "time"

// DefaultWeeklyWindow is the trailing window the weekly quota is counted over.
const DefaultWeeklyWindow = 7 * 24 * time.Hour

// ClubAccess is the per-employer view quota ledger.
type ClubAccess struct {
	UserID             string    `json:"user_id"`
	FreeViewsRemaining int       `json:"free_views_remaining"`
	FreeViewsPerWeek   int       `json:"free_views_per_week"`
	TrialExpiresAt     time.Time `json:"trial_expires_at"`
	IsSubscribed       bool      `json:"is_subscribed"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// InTrial reports whether now falls before the trial expiry.
func (c *ClubAccess) InTrial(now time.Time) bool {
	return now.Before(c.TrialExpiresAt)
}

// NeedsWeeklyCount reports whether DecideUnlock will look at the weekly usage,
// i.e. the ledger is past its trial, unsubscribed and has a weekly allowance.
func (c *ClubAccess) NeedsWeeklyCount(now time.Time) bool {
	return !c.IsSubscribed && !c.InTrial(now) && c.FreeViewsPerWeek > 0
}

// ChargeKind is the way an unlock is paid for.
type ChargeKind string

const (
	ChargeSubscription ChargeKind = "subscription"
	ChargeTrial        ChargeKind = "trial"
	ChargeWeekly       ChargeKind = "weekly"
	ChargePaywall      ChargeKind = "paywall"
)

// UnlockDecision is the outcome of DecideUnlock for a ledger snapshot.
type UnlockDecision struct {
	Kind ChargeKind
	// FreeViewsRemaining is the trial balance after the charge (trial only).
	FreeViewsRemaining int
	// WeeklyRemaining is the weekly allowance left after the charge (weekly only).
	WeeklyRemaining int
}

// DecideUnlock chooses how a new unlock is paid for. weeklyUsed is the number of
// views recorded within the trailing weekly window; it is ignored unless
// NeedsWeeklyCount is true.
func DecideUnlock(ledger *ClubAccess, weeklyUsed int, now time.Time) UnlockDecision {
	if ledger.IsSubscribed {
		return UnlockDecision{Kind: ChargeSubscription}
	}

	inTrial := ledger.InTrial(now)
	if inTrial && ledger.FreeViewsRemaining > 0 {
		return UnlockDecision{Kind: ChargeTrial, FreeViewsRemaining: ledger.FreeViewsRemaining - 1}
	}

	if !inTrial && ledger.FreeViewsPerWeek > 0 && weeklyUsed < ledger.FreeViewsPerWeek {
		return UnlockDecision{Kind: ChargeWeekly, WeeklyRemaining: ledger.FreeViewsPerWeek - weeklyUsed - 1}
	}

	return UnlockDecision{Kind: ChargePaywall}
}

// UnlockCharge is what the store must apply atomically to record a new unlock.
type UnlockCharge struct {
	ViewerUserID string
	ProfileID    string
	Kind         ChargeKind
	ViewedAt     time.Time
	// WeeklyLimit and WindowStart are used for ChargeWeekly re-validation under lock.
	WeeklyLimit int
	WindowStart time.Time
}

// UnlockReceipt is what the store reports after applying an UnlockCharge.
type UnlockReceipt struct {
	// AlreadyViewed is true when a concurrent request recorded the view first; nothing was charged.
	AlreadyViewed      bool
	FreeViewsRemaining int
	WeeklyUsed         int
}

// QuotaStatus is a read-only snapshot of an employer's ledger.
type QuotaStatus struct {
	// Unlimited is set for admins, who have no ledger.
	Unlimited       bool
	Ledger          ClubAccess
	InTrial         bool
	WeeklyUsed      int
	WeeklyRemaining int
}

// NewQuotaStatus builds a snapshot of the ledger at now.
func NewQuotaStatus(ledger ClubAccess, weeklyUsed int, now time.Time) QuotaStatus {
	status := QuotaStatus{Ledger: ledger, InTrial: ledger.InTrial(now), WeeklyUsed: weeklyUsed}
	if !status.InTrial {
		status.WeeklyRemaining = max(ledger.FreeViewsPerWeek-weeklyUsed, 0)
	}
	return status
}
