//go:build e2e

package e2e

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"maya-connect/internal/domain/user"
	"maya-connect/tests/common/authtest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FakeBackend serves the subset of the Maya REST API the gateway calls.
type FakeBackend struct {
	*httptest.Server

	t   *testing.T
	jwt *authtest.JWTHelper

	mu       sync.Mutex
	accounts map[string]account
	tokens   map[string]string // access token -> email
	qrIssued int
}

type account struct {
	password string
	profile  user.Profile
}

func NewFakeBackend(t *testing.T, secret string) *FakeBackend {
	t.Helper()

	f := &FakeBackend{
		t:        t,
		jwt:      authtest.NewJWTHelper(secret, nil),
		accounts: map[string]account{},
		tokens:   map[string]string{},
	}

	r := gin.New()
	api := r.Group("/api")
	api.POST("/auth/login", f.login)
	api.POST("/auth/register", f.register)
	api.POST("/auth/logout", f.authorized(func(c *gin.Context, _ user.Profile) { c.Status(http.StatusNoContent) }))
	api.GET("/users/me", f.authorized(func(c *gin.Context, p user.Profile) {
		c.JSON(http.StatusOK, gin.H{
			"id":        p.ID,
			"email":     p.Email,
			"firstName": p.FirstName,
			"lastName":  p.LastName,
			"role":      p.Role.String(),
		})
	}))
	api.GET("/qrcodes/current", f.authorized(f.currentQR))
	api.POST("/qrcodes/issue-token", f.authorized(f.currentQR))
	api.GET("/partners/search", f.authorized(f.searchPartners))
	api.GET("/subscriptions/has-active", f.authorized(func(c *gin.Context, _ user.Profile) {
		c.JSON(http.StatusOK, gin.H{"hasActiveSubscription": false})
	}))

	f.Server = httptest.NewServer(r)
	t.Cleanup(f.Close)
	return f
}

// AddAccount registers credentials the fake login accepts.
func (f *FakeBackend) AddAccount(email, password string, role user.Role) user.Profile {
	f.mu.Lock()
	defer f.mu.Unlock()

	p := user.Profile{
		ID:        uuid.NewString(),
		Email:     email,
		FirstName: "Amina",
		LastName:  "Diallo",
		Role:      role,
	}
	f.accounts[strings.ToLower(email)] = account{password: password, profile: p}
	return p
}

func (f *FakeBackend) QRIssued() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.qrIssued
}

func (f *FakeBackend) login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "malformed body"})
		return
	}

	f.mu.Lock()
	acc, ok := f.accounts[strings.ToLower(req.Email)]
	f.mu.Unlock()
	if !ok || acc.password != req.Password {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	token := f.jwt.GenerateToken(f.t, acc.profile, time.Hour)
	f.mu.Lock()
	f.tokens[token] = acc.profile.Email
	f.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"accessToken": token,
			"expiresAt":   time.Now().Add(time.Hour).UTC().Format(time.RFC3339),
		},
	})
}

func (f *FakeBackend) register(c *gin.Context) {
	var req struct {
		Email     string `json:"email"`
		Password  string `json:"password"`
		FirstName string `json:"firstName"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "malformed body"})
		return
	}

	f.mu.Lock()
	_, taken := f.accounts[strings.ToLower(req.Email)]
	f.mu.Unlock()
	if taken {
		c.JSON(http.StatusConflict, gin.H{"message": "Email already registered"})
		return
	}

	p := f.AddAccount(req.Email, req.Password, user.RoleMember)
	c.JSON(http.StatusCreated, gin.H{"id": p.ID, "email": p.Email, "firstName": req.FirstName, "role": "member"})
}

func (f *FakeBackend) currentQR(c *gin.Context, p user.Profile) {
	f.mu.Lock()
	f.qrIssued++
	n := f.qrIssued
	f.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"token":     p.ID + "-" + uuid.NewString()[:8],
		"expiresAt": time.Now().Add(5 * time.Minute).UTC().Format(time.RFC3339),
		"serial":    n,
	})
}

func (f *FakeBackend) searchPartners(c *gin.Context, _ user.Profile) {
	c.JSON(http.StatusOK, gin.H{
		"items": []gin.H{
			{"id": "p-1", "name": "Chez Awa", "distanceKm": 0.8, "rating": 4.6, "discountPercentage": 15},
			{"id": "p-2", "name": "Le Baobab", "distanceKm": 2.4, "rating": 4.1},
			{"id": "p-3", "name": "Trop Loin", "distanceKm": 40, "rating": 5, "discountPercentage": 30},
		},
		"totalCount": 3,
	})
}

func (f *FakeBackend) authorized(next func(*gin.Context, user.Profile)) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")

		f.mu.Lock()
		email, ok := f.tokens[token]
		acc := f.accounts[strings.ToLower(email)]
		f.mu.Unlock()

		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		next(c, acc.profile)
	}
}
