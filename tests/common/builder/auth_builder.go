//go:build unit || e2e

package builder

import (
	"maya-connect/internal/domain/auth"
	reqdto "maya-connect/internal/handler/dto/request"
)

// AuthBuilder holds login credentials matching the default UserBuilder profile.
type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{Email: "amina@example.com", Password: "Abc12345"}
}

func (a *AuthBuilder) WithPassword(password string) *AuthBuilder {
	a.Password = password
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{Email: a.Email, Password: a.Password}
}

// BuildCredentials panics on invalid input; use BuildDTO for validation cases.
func (a *AuthBuilder) BuildCredentials() auth.Credentials {
	c, err := auth.NewCredentials(a.Email, a.Password)
	if err != nil {
		panic(err)
	}
	return c
}
