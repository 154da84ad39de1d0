package domain

// Viewer is the identity on whose behalf a profile is read or unlocked.
// A nil *Viewer means an anonymous caller.
type Viewer struct {
	UserID string
	Roles  []Role
}

// Role returns the viewer's effective role; anonymous viewers resolve to RoleNone.
func (v *Viewer) Role() Role {
	if v == nil {
		return RoleNone
	}
	return EffectiveRole(v.Roles)
}

// IsAdmin reports whether the effective role is admin.
func (v *Viewer) IsAdmin() bool { return v.Role() == RoleAdmin }

// IsEmployer reports whether the effective role is employer.
func (v *Viewer) IsEmployer() bool { return v.Role() == RoleEmployer }

// ID returns the viewer's user id, or "" for anonymous viewers.
func (v *Viewer) ID() string {
	if v == nil {
		return ""
	}
	return v.UserID
}
