package domain

import (
	"errors"
	"strings"
)

// Sentinel errors for the auth screen. Collaborator adapters map their
// failures onto these so the surfaces can pick a user-visible message.
var (
	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("invalid form input")

	// ErrBackendUnavailable covers transport failures and unexpected
	// collaborator responses.
	ErrBackendUnavailable = errors.New("authentication service unavailable")

	// ErrInsecureTransport is returned when a collaborator would receive a
	// password over an unencrypted channel.
	ErrInsecureTransport = errors.New("refusing to send credentials over an insecure channel")

	ErrInvalidCredentials = errors.New("invalid credentials provided")
	ErrAccountNotFound    = errors.New("account not found")
	ErrRateLimited        = errors.New("too many attempts")

	ErrUserAlreadyExists = errors.New("user with this email already exists")
	ErrPasswordPolicy    = errors.New("password does not satisfy the password policy")
)

// FieldViolation names one field that failed one rule.
type FieldViolation struct {
	Field string
	Rule  string
}

// ValidationError lists every field a submission failed on.
type ValidationError struct {
	Fields []FieldViolation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" ("+f.Rule+")")
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, ", ")
}

// Is lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Has reports whether field failed any rule.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}
