package password

import (
	"errors"
)

const MinLength = 8

var (
	ErrTooShort     = errors.New("password must be at least 8 characters long")
	ErrMissingDigit = errors.New("password must contain at least one digit")
	ErrMissingUpper = errors.New("password must contain at least one uppercase letter")
)

// Criteria reports each strength rule separately so a form can show them as a checklist.
type Criteria struct {
	MinLength bool `json:"minLength"`
	HasDigit  bool `json:"hasDigit"`
	HasUpper  bool `json:"hasUpper"`
}

// Check counts only ASCII digits and capitals; "Ａ" or "٣" satisfy neither rule.
func Check(password string) Criteria {
	var c Criteria
	c.MinLength = len([]rune(password)) >= MinLength
	for _, r := range password {
		switch {
		case '0' <= r && r <= '9':
			c.HasDigit = true
		case 'A' <= r && r <= 'Z':
			c.HasUpper = true
		}
	}
	return c
}

func (c Criteria) OK() bool {
	return c.MinLength && c.HasDigit && c.HasUpper
}

// Err returns the first unmet rule, or nil.
func (c Criteria) Err() error {
	switch {
	case !c.MinLength:
		return ErrTooShort
	case !c.HasDigit:
		return ErrMissingDigit
	case !c.HasUpper:
		return ErrMissingUpper
	default:
		return nil
	}
}
