package jwt

import (
	"errors"
	"time"

	"maya-connect/internal/pkg/rawdto"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

const (
	claimNameID = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier"
	claimEmail  = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/emailaddress"
	claimRole   = "http://schemas.microsoft.com/ws/2008/06/identity/claims/role"
)

var (
	userIDClaims    = []string{"user_id", "userId", "sub", "nameid", claimNameID}
	emailClaims     = []string{"email", "unique_name", claimEmail}
	roleClaims      = []string{"role", "roles", claimRole}
	firstNameClaims = []string{"given_name", "firstName"}
	lastNameClaims  = []string{"family_name", "lastName"}
)

// Claims is the subset of a backend access token the service relies on.
type Claims struct {
	UserID    string
	Email     string
	Role      string
	FirstName string
	LastName  string
	ExpiresAt time.Time
}

// Service reads backend access tokens. Without a secret the signature is not
// checked and expiry is left to the caller; the backend still rejects forged tokens.
type Service struct {
	secretKey []byte
	now       func() time.Time
}

func NewService(secretKey string, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		secretKey: []byte(secretKey),
		now:       now,
	}
}

func (s *Service) Verifies() bool {
	return len(s.secretKey) > 0
}

// GenerateToken signs claims with the configured secret. A ttl of zero leaves
// out the exp claim. The backend issues real tokens; this exists for local
// tooling and tests.
func (s *Service) GenerateToken(c Claims, ttl time.Duration) (string, error) {
	if !s.Verifies() {
		return "", errors.New("jwt: no secret configured")
	}
	now := s.now()
	mc := jwt.MapClaims{
		"sub":         c.UserID,
		"email":       c.Email,
		"role":        c.Role,
		"given_name":  c.FirstName,
		"family_name": c.LastName,
		"iat":         now.Unix(),
	}
	if ttl > 0 {
		mc["exp"] = now.Add(ttl).Unix()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mc)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	var (
		token *jwt.Token
		err   error
	)
	if s.Verifies() {
		token, err = jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return s.secretKey, nil
		}, jwt.WithTimeFunc(s.now))
	} else {
		token, _, err = jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	}

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	claims := &Claims{
		UserID:    rawdto.String(mc, userIDClaims...),
		Email:     rawdto.String(mc, emailClaims...),
		Role:      firstRole(mc),
		FirstName: rawdto.String(mc, firstNameClaims...),
		LastName:  rawdto.String(mc, lastNameClaims...),
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}
	if claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// firstRole accepts a single role or a list of roles.
func firstRole(mc jwt.MapClaims) string {
	for _, k := range roleClaims {
		switch v := mc[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case []any:
			for _, item := range v {
				if s := rawdto.StringValue(item); s != "" {
					return s
				}
			}
		}
	}
	return ""
}
