package domain

import (
	"context"
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// validatorInstance is shared so struct metadata is cached once.
var validatorInstance = validator.New()

func init() {
	// Password has no exported fields; validate the revealed value instead.
	validatorInstance.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if p, ok := field.Interface().(Password); ok {
			return p.Reveal()
		}
		return nil
	}, Password{})
}

// Credentials is what a submitted form hands to a collaborator.
type Credentials struct {
	Email    string   `validate:"required,email"`
	Password Password `validate:"required"`
}

// Validate checks both fields are present and the email is well formed.
// It returns a *ValidationError naming the failing fields.
func (c Credentials) Validate() error {
	err := validatorInstance.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	verr := &ValidationError{}
	for _, fe := range fieldErrs {
		verr.Fields = append(verr.Fields, FieldViolation{Field: fe.Field(), Rule: fe.Tag()})
	}
	return verr
}

// Session is what a collaborator returns on success.
type Session struct {
	Token string
	Email string
}

// Authenticator is the external collaborator that signs a user in.
type Authenticator interface {
	SignIn(ctx context.Context, creds Credentials) (*Session, error)
}

// Registrar is the external collaborator that creates an account.
type Registrar interface {
	SignUp(ctx context.Context, creds Credentials) (*Session, error)
}
