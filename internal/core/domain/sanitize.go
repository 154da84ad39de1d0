package domain

// DefaultCurrentOrgPlaceholder replaces the current employer's name when a specialist hides it.
const DefaultCurrentOrgPlaceholder = "Confidential organization"

// SanitizeProfile returns a copy of profile redacted for tier, or nil for TierHidden.
func SanitizeProfile(profile *Profile, tier AccessTier) *Profile {
	if profile == nil || tier == TierHidden {
		return nil
	}
	out := *profile
	if tier.SeesEverything() {
		return &out
	}

	if !profile.ShowName {
		out.FirstName = nil
		out.LastName = nil
	}
	out.Email = nil
	out.Phone = nil
	out.Telegram = nil
	out.LinkedInURL = nil
	out.PortfolioURL = nil
	return &out
}

// AdjustRelatedRecords applies preview-tier rules to related records. Owner and
// full tiers get the records back untouched. The input is never mutated.
func AdjustRelatedRecords(related RelatedRecords, profile *Profile, tier AccessTier, placeholder string) RelatedRecords {
	if tier != TierPreview || profile == nil {
		return related
	}
	if placeholder == "" {
		placeholder = DefaultCurrentOrgPlaceholder
	}

	out := related
	if profile.HideCurrentOrg {
		out.Experiences = make([]Experience, len(related.Experiences))
		for i, exp := range related.Experiences {
			if exp.IsCurrent {
				exp.CompanyName = placeholder
			}
			out.Experiences[i] = exp
		}
	}

	out.Portfolio = make([]PortfolioItem, 0, len(related.Portfolio))
	for _, item := range related.Portfolio {
		if item.Visibility == PortfolioPublic {
			out.Portfolio = append(out.Portfolio, item)
		}
	}
	return out
}

// ProfileSummary is the listing projection. Names and contacts are never part of it.
type ProfileSummary struct {
	ProfileID       string          `json:"id"`
	FirstName       *string         `json:"first_name"`
	LastName        *string         `json:"last_name"`
	Email           *string         `json:"email"`
	Phone           *string         `json:"phone"`
	Telegram        *string         `json:"telegram"`
	AvatarURL       *string         `json:"avatar_url"`
	City            *string         `json:"city"`
	Country         *string         `json:"country"`
	DesiredPosition *string         `json:"desired_position"`
	VisibilityLevel VisibilityLevel `json:"visibility_level"`
	Access          AccessTier      `json:"access"`
}

// Summarize projects a profile into its listing card. tier is reported but never widens the projection.
func Summarize(profile *Profile, tier AccessTier) ProfileSummary {
	return ProfileSummary{
		ProfileID:       profile.ProfileID,
		AvatarURL:       profile.AvatarURL,
		City:            profile.City,
		Country:         profile.Country,
		DesiredPosition: profile.DesiredPosition,
		VisibilityLevel: profile.EffectiveVisibility(),
		Access:          tier,
	}
}
