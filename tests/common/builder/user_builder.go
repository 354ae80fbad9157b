//go:build unit || e2e

package builder

import (
	"maya-connect/internal/domain/user"
)

type UserBuilder struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	Phone     string
	Role      user.Role
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:        "7f3c2a4e-1b6d-4c8e-9a0f-2d5e6b7c8a91",
		Email:     "amina@example.com",
		FirstName: "Amina",
		LastName:  "Diallo",
		Phone:     "+33612345678",
		Role:      user.RoleMember,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildProfile() user.Profile {
	return user.Profile{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		PhoneNumber: u.Phone,
		Role:        u.Role,
	}
}

// BuildBackendDTO is the profile as the backend's /users/me returns it.
func (u *UserBuilder) BuildBackendDTO() map[string]any {
	return map[string]any{
		"id":          u.ID,
		"email":       u.Email,
		"firstName":   u.FirstName,
		"lastName":    u.LastName,
		"phoneNumber": u.Phone,
		"role":        string(u.Role),
	}
}

func (u *UserBuilder) WithID(id string) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role user.Role) *UserBuilder {
	u.Role = role
	return u
}
