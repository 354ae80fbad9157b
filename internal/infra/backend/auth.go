package backend

import (
	"context"
	"net/http"

	"maya-connect/internal/domain/auth"
	"maya-connect/internal/domain/user"
	"maya-connect/internal/pkg/rawdto"
)

var (
	accessTokenFields  = []string{"accessToken", "token", "access_token", "jwt"}
	refreshTokenFields = []string{"refreshToken", "refresh_token"}
	expiryFields       = []string{"expiresAt", "accessTokenExpiresAt", "expiration", "expires"}
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a token pair.
func (c *Client) Login(ctx context.Context, credentials auth.Credentials) (auth.TokenPair, error) {
	var raw map[string]any
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/api/auth/login",
		body:   loginRequest{Email: credentials.Email().Value(), Password: credentials.Password().Value()},
	}, &raw)
	if err != nil {
		return auth.TokenPair{}, err
	}

	// Some deployments nest the tokens under "data".
	if inner, ok := rawdto.Object(raw, "data", "result"); ok {
		raw = inner
	}
	expiresAt, _ := rawdto.Time(raw, expiryFields...)
	return auth.NewTokenPair(
		rawdto.String(raw, accessTokenFields...),
		rawdto.String(raw, refreshTokenFields...),
		expiresAt,
	)
}

type RegisterRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	BirthDate   string `json:"birthDate"`
	Password    string `json:"password"`
	Street      string `json:"street"`
	City        string `json:"city"`
	PostalCode  string `json:"postalCode"`
	Country     string `json:"country"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (user.Profile, error) {
	var raw map[string]any
	err := c.do(ctx, request{method: http.MethodPost, path: "/api/auth/register", body: req}, &raw)
	if err != nil {
		return user.Profile{}, err
	}
	return profileFrom(raw), nil
}

func (c *Client) GetCurrentUser(ctx context.Context, token string) (user.Profile, error) {
	var raw map[string]any
	err := c.do(ctx, request{method: http.MethodGet, path: "/api/users/me", token: token}, &raw)
	if err != nil {
		return user.Profile{}, err
	}
	return profileFrom(raw), nil
}

func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, request{method: http.MethodPost, path: "/api/auth/logout", token: token}, nil)
}

func profileFrom(raw map[string]any) user.Profile {
	if inner, ok := rawdto.Object(raw, "user", "data"); ok {
		raw = inner
	}
	return user.Profile{
		ID:          rawdto.String(raw, "id", "userId", "_id"),
		Email:       rawdto.String(raw, "email"),
		FirstName:   rawdto.String(raw, "firstName", "givenName"),
		LastName:    rawdto.String(raw, "lastName", "familyName"),
		PhoneNumber: rawdto.String(raw, "phoneNumber", "phone"),
		Role:        user.RoleFromClaim(rawdto.String(raw, "role", "userType")),
	}
}
