package domain

// Role is one of the fixed roles a user can hold.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleEmployer   Role = "employer"
	RoleSpecialist Role = "specialist"
	// RoleNone is the effective role of anonymous viewers and users without a known role.
	RoleNone Role = ""
)

// rolePriority is ordered from highest to lowest.
var rolePriority = []Role{RoleAdmin, RoleEmployer, RoleSpecialist}

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	for _, known := range rolePriority {
		if r == known {
			return true
		}
	}
	return false
}

// EffectiveRole reduces a multi-valued role set to the single highest-priority role
// (admin > employer > specialist). Unknown values are ignored.
func EffectiveRole(roles []Role) Role {
	for _, candidate := range rolePriority {
		for _, r := range roles {
			if r == candidate {
				return candidate
			}
		}
	}
	return RoleNone
}
