package usecase

import "errors"

// Workflow errors. Each maps to a distinct user-visible message; everything
// else that escapes a service is an infrastructure failure and surfaces as a
// generic internal error.
var (
	ErrValidation         = errors.New("validation failed")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrDuplicateAccount   = errors.New("an account with this email already exists")
	ErrInvalidToken       = errors.New("invalid or expired confirmation link")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailNotConfirmed  = errors.New("email address not confirmed yet")
	ErrAccountNotFound    = errors.New("account not found")
	ErrAlreadyConfirmed   = errors.New("email address already confirmed")
)
