package user

import "strings"

type Role string

const (
	RoleMember  Role = "member"
	RolePartner Role = "partner"
	RoleAdmin   Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleMember, RolePartner, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// RoleFromClaim maps the role names the backend puts in access tokens onto Role.
// Unknown or missing roles fall back to member.
func RoleFromClaim(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "partner", "merchant", "partneradmin":
		return RolePartner
	case "admin", "administrator", "superadmin":
		return RoleAdmin
	default:
		return RoleMember
	}
}
