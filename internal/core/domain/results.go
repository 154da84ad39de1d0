package domain

import "time"

// UnlockAccess is the wire-level verdict of an unlock attempt.
type UnlockAccess string

const (
	UnlockFull    UnlockAccess = "full"
	UnlockPaywall UnlockAccess = "paywall"
	UnlockDenied  UnlockAccess = "denied"
)

// PaywallMessage is shown to employers whose quota is exhausted.
const PaywallMessage = "You have used all free profile views. Subscribe to unlock more specialists."

// UnlockResult is what the view quota ledger returns for one unlock call.
type UnlockResult struct {
	Access             UnlockAccess
	Unlimited          bool
	AlreadyViewed      bool
	Subscribed         bool
	FreeViewsRemaining *int
	WeeklyRemaining    *int
	TrialExpiresAt     *time.Time
	Message            string
}

// ResolvedProfile is a single profile redacted for the requesting viewer.
type ResolvedProfile struct {
	Profile *Profile
	Related RelatedRecords
	Access  AccessTier
}

// ProfileListing is a page of listing cards.
type ProfileListing struct {
	Profiles         []ProfileSummary
	RelatedByProfile map[string]CardRecords
}
