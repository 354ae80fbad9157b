package user

import "strings"

// Profile is the backend's view of the signed-in user. It is never stored locally.
type Profile struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Role        Role   `json:"role"`
}

func (p Profile) DisplayName() string {
	name := strings.TrimSpace(p.FirstName + " " + p.LastName)
	if name == "" {
		return p.Email
	}
	return name
}

func (p Profile) IsPartner() bool {
	return p.Role == RolePartner || p.Role == RoleAdmin
}
