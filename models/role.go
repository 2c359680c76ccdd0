package models

// Role is the closed set of account types in the program.
type Role string

const (
	RoleParticipant Role = "participant"
	RoleMentor      Role = "mentor"
	RoleOther       Role = "other"
)

// ParseRole maps a raw string onto the closed role set.
// Anything unrecognized collapses to RoleOther with ok=false.
func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleParticipant:
		return RoleParticipant, true
	case RoleMentor:
		return RoleMentor, true
	case RoleOther:
		return RoleOther, true
	default:
		return RoleOther, false
	}
}

func (r Role) String() string {
	return string(r)
}
