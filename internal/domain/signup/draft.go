package signup

import (
	"errors"
	"regexp"
	"strings"

	"maya-connect/internal/pkg/password"
	"maya-connect/internal/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type Step string

const (
	StepPersonal Step = "personal"
	StepSecurity Step = "security"
	StepAddress  Step = "address"
)

// Steps in wizard order.
var Steps = []Step{StepPersonal, StepSecurity, StepAddress}

var ErrUnknownStep = errors.New("unknown signup step")

func ParseStep(s string) (Step, error) {
	for _, step := range Steps {
		if string(step) == s {
			return step, nil
		}
	}
	return "", ErrUnknownStep
}

func (s Step) index() int {
	for i, step := range Steps {
		if step == s {
			return i
		}
	}
	return -1
}

type PersonalInfo struct {
	FirstName   string `json:"firstName" validate:"notblank"`
	LastName    string `json:"lastName" validate:"notblank"`
	Email       string `json:"email" validate:"notblank,email"`
	PhoneNumber string `json:"phoneNumber" validate:"notblank"`
	BirthDate   string `json:"birthDate" validate:"notblank,isodate"`
}

type Security struct {
	Password        string `json:"password" validate:"notblank,strongpassword"`
	ConfirmPassword string `json:"confirmPassword" validate:"notblank,eqfield=Password"`
}

type Address struct {
	Street     string `json:"street" validate:"notblank"`
	City       string `json:"city" validate:"notblank"`
	PostalCode string `json:"postalCode" validate:"notblank"`
	Country    string `json:"country" validate:"notblank"`
}

// Draft is the in-memory signup form. It is never persisted.
type Draft struct {
	Personal PersonalInfo `json:"personal"`
	Security Security     `json:"security"`
	Address  Address      `json:"address"`
}

// FieldErrors maps a json field name to a user-facing message.
type FieldErrors map[string]string

func (e FieldErrors) Empty() bool { return len(e) == 0 }

// ValidateStep checks only the fields that belong to step.
func ValidateStep(d Draft, step Step) FieldErrors {
	var target any
	switch step {
	case StepPersonal:
		target = d.Personal
	case StepSecurity:
		target = d.Security
	case StepAddress:
		target = d.Address
	default:
		return FieldErrors{"step": "Unknown step"}
	}

	errs := FieldErrors{}
	err := validation.Validate.Struct(target)
	if err == nil {
		return errs
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs["form"] = err.Error()
		return errs
	}
	for _, fe := range verrs {
		errs[fe.Field()] = message(fe)
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank":
		return "This field is required"
	case "email":
		return "Enter a valid email address"
	case "isodate":
		return "Use the YYYY-MM-DD format"
	case "eqfield":
		return "Passwords do not match"
	case "strongpassword":
		switch password.Check(fe.Value().(string)).Err() {
		case password.ErrTooShort:
			return "Password must be at least 8 characters"
		case password.ErrMissingDigit:
			return "Password must contain at least one digit"
		default:
			return "Password must contain at least one uppercase letter"
		}
	default:
		return "Invalid value"
	}
}

var (
	isoDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	nonDigit     = regexp.MustCompile(`\D`)
)

// FormatBirthDate turns "19900115" into "1990-01-15". Input already in YYYY-MM-DD
// passes through; anything else is reduced to its digits.
func FormatBirthDate(input string) string {
	input = strings.TrimSpace(input)
	if isoDateRegex.MatchString(input) {
		return input
	}
	digits := nonDigit.ReplaceAllString(input, "")
	if len(digits) == 8 {
		return digits[:4] + "-" + digits[4:6] + "-" + digits[6:]
	}
	return digits
}
