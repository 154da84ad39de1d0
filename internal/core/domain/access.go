package domain

// AccessTier is the access level computed for a viewer/profile pair.
type AccessTier string

const (
	TierOwner   AccessTier = "owner"
	TierFull    AccessTier = "full"
	TierPreview AccessTier = "preview"
	TierHidden  AccessTier = "hidden"
)

// SeesEverything reports whether the tier exposes contacts, real names and private portfolio items.
func (t AccessTier) SeesEverything() bool {
	return t == TierOwner || t == TierFull
}

// NeedsViewLookup reports whether GetAccessLevel depends on a recorded profile view,
// so callers only hit the store when the answer can change the tier.
func NeedsViewLookup(viewer *Viewer, profile *Profile) bool {
	if profile == nil || viewer == nil {
		return false
	}
	if viewer.UserID == profile.UserID || viewer.IsAdmin() {
		return false
	}
	return viewer.IsEmployer() && profile.EffectiveVisibility() != VisibilityHidden
}

// GetAccessLevel derives the tier for viewer on profile. hasViewed is the
// "a ViewRecord exists for (viewer, profile)" fact and is only consulted for employers.
func GetAccessLevel(viewer *Viewer, profile *Profile, hasViewed bool) AccessTier {
	if profile == nil {
		return TierHidden
	}
	if viewer != nil && viewer.UserID != "" && viewer.UserID == profile.UserID {
		return TierOwner
	}
	if viewer.IsAdmin() {
		return TierFull
	}

	switch profile.EffectiveVisibility() {
	case VisibilityHidden:
		return TierHidden
	case VisibilityClubsOnly:
		if !viewer.IsEmployer() {
			return TierHidden
		}
		return employerTier(hasViewed)
	default:
		if viewer.IsEmployer() {
			return employerTier(hasViewed)
		}
		return TierPreview
	}
}

func employerTier(hasViewed bool) AccessTier {
	if hasViewed {
		return TierFull
	}
	return TierPreview
}

// ListableFor reports whether a profile returned by the listing query may be shown to viewer.
// clubs_only profiles are dropped for everyone except employers and admins.
func ListableFor(viewer *Viewer, profile *Profile) bool {
	switch profile.EffectiveVisibility() {
	case VisibilityHidden:
		return false
	case VisibilityClubsOnly:
		return viewer.IsEmployer() || viewer.IsAdmin()
	}
	return true
}

// ListableVisibilities are the levels the listing query pre-filters on.
var ListableVisibilities = []VisibilityLevel{VisibilityPublicPreview, VisibilityClubsOnly}
