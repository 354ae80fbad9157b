package response

import (
	"maya-connect/internal/domain/signup"
	"maya-connect/internal/usecase/commands"
)

type SignupStepResponse struct {
	Step   signup.Step        `json:"step"`
	Valid  bool               `json:"valid"`
	Next   signup.Step        `json:"next,omitempty"`
	Errors signup.FieldErrors `json:"errors"`
}

type SignupResponse struct {
	User   *UserResponse      `json:"user,omitempty"`
	Step   signup.Step        `json:"step"`
	Errors signup.FieldErrors `json:"errors,omitempty"`
}

type FormatBirthDateResponse struct {
	Value string `json:"value"`
}

func FromSignupResult(r *commands.SignupResult) SignupResponse {
	resp := SignupResponse{Step: r.Step, Errors: r.Errors}
	if r.User != nil {
		u := FromProfile(*r.User)
		resp.User = &u
	}
	return resp
}
