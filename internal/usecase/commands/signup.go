package commands

import (
	"context"
	"net/http"

	"maya-connect/internal/domain/signup"
	"maya-connect/internal/domain/user"
	"maya-connect/internal/infra/backend"
	"maya-connect/internal/pkg/errs"
)

const EmailTakenMessage = "An account with this email already exists"

var (
	ErrSignupInvalid = errs.New("signup form invalid")
	ErrEmailTaken    = errs.New("email already registered")
)

// SignupResult carries the created profile on success, or the step and field
// errors the form should show.
type SignupResult struct {
	User   *user.Profile
	Step   signup.Step
	Errors signup.FieldErrors
}

type SignupCommands interface {
	Submit(ctx context.Context, draft signup.Draft) (*SignupResult, error)
}

type signupCommandsImpl struct {
	api RegistrationAPI
}

func NewSignupCommands(api RegistrationAPI) SignupCommands {
	return &signupCommandsImpl{api: api}
}

func (s *signupCommandsImpl) Submit(ctx context.Context, draft signup.Draft) (*SignupResult, error) {
	draft.Personal.BirthDate = signup.FormatBirthDate(draft.Personal.BirthDate)

	w := signup.ResumeAt(signup.StepAddress)
	if !w.Submit(draft) {
		return &SignupResult{Step: w.Step(), Errors: w.Errors()}, ErrSignupInvalid
	}

	profile, err := s.api.Register(ctx, toRegisterRequest(draft))
	if err != nil {
		if backend.StatusOf(err) == http.StatusConflict {
			w.Reject(signup.StepPersonal, "email", EmailTakenMessage)
			return &SignupResult{Step: w.Step(), Errors: w.Errors()}, errs.Mark(err, ErrEmailTaken)
		}
		return nil, err
	}

	return &SignupResult{User: &profile, Step: w.Step(), Errors: w.Errors()}, nil
}

func toRegisterRequest(d signup.Draft) backend.RegisterRequest {
	return backend.RegisterRequest{
		FirstName:   d.Personal.FirstName,
		LastName:    d.Personal.LastName,
		Email:       d.Personal.Email,
		PhoneNumber: d.Personal.PhoneNumber,
		BirthDate:   d.Personal.BirthDate,
		Password:    d.Security.Password,
		Street:      d.Address.Street,
		City:        d.Address.City,
		PostalCode:  d.Address.PostalCode,
		Country:     d.Address.Country,
	}
}
