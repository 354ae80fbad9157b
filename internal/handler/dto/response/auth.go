package response

import (
	"time"

	"maya-connect/internal/domain/user"
	"maya-connect/internal/usecase/commands"
)

type UserResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DisplayName string `json:"displayName"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Role        string `json:"role"`
}

type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	ExpiresAt   *time.Time   `json:"expiresAt,omitempty"`
	User        UserResponse `json:"user"`
}

func FromProfile(p user.Profile) UserResponse {
	return UserResponse{
		ID:          p.ID,
		Email:       p.Email,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		DisplayName: p.DisplayName(),
		PhoneNumber: p.PhoneNumber,
		Role:        p.Role.String(),
	}
}

func FromLoginResult(r *commands.LoginResult) LoginResponse {
	resp := LoginResponse{
		AccessToken: r.TokenPair.AccessToken,
		User:        FromProfile(r.User),
	}
	if !r.TokenPair.ExpiresAt.IsZero() {
		exp := r.TokenPair.ExpiresAt
		resp.ExpiresAt = &exp
	}
	return resp
}
