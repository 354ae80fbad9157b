//go:build unit || e2e

package builder

import (
	"maya-connect/internal/domain/signup"
)

type SignupBuilder struct {
	draft signup.Draft
}

func NewSignupBuilder() *SignupBuilder {
	return &SignupBuilder{draft: signup.Draft{
		Personal: signup.PersonalInfo{
			FirstName:   "Amina",
			LastName:    "Diallo",
			Email:       "amina@example.com",
			PhoneNumber: "+33612345678",
			BirthDate:   "1990-01-15",
		},
		Security: signup.Security{
			Password:        "Abc12345",
			ConfirmPassword: "Abc12345",
		},
		Address: signup.Address{
			Street:     "12 avenue Foch",
			City:       "Paris",
			PostalCode: "75016",
			Country:    "FR",
		},
	}}
}

func (b *SignupBuilder) With(mutate func(*signup.Draft)) *SignupBuilder {
	mutate(&b.draft)
	return b
}

func (b *SignupBuilder) Build() signup.Draft {
	return b.draft
}
