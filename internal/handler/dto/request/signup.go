package request

import "maya-connect/internal/domain/signup"

// SignupRequest is the whole form. Fields are validated per step by the signup
// package, so there are no binding tags here.
type SignupRequest struct {
	signup.Draft
}

type FormatBirthDateRequest struct {
	Input string `json:"input"`
}
