package authscreen

import (
	"errors"

	"github.com/nfrund/denik/internal/domain"
	"github.com/nfrund/denik/internal/i18n"
)

// Level is the severity of a feedback message.
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelError   Level = "error"
)

// Feedback is what the user is told after submitting tab's form.
type Feedback struct {
	Level Level
	Key   i18n.Key
}

// FeedbackFor maps a submission result onto a user-visible message.
// Unknown errors read as "service unavailable".
func FeedbackFor(tab Tab, outcome Outcome, err error) Feedback {
	if err != nil {
		return Feedback{Level: LevelError, Key: errorKey(err)}
	}

	switch outcome.Status {
	case StatusSignedIn:
		return Feedback{Level: LevelSuccess, Key: i18n.StatusSignedIn}
	case StatusRegistered:
		return Feedback{Level: LevelSuccess, Key: i18n.StatusRegistered}
	}
	if tab == TabRegister {
		return Feedback{Level: LevelInfo, Key: i18n.StatusRegisterPending}
	}
	return Feedback{Level: LevelInfo, Key: i18n.StatusLoginPending}
}

func errorKey(err error) i18n.Key {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		// A missing field outranks a malformed one.
		for _, f := range verr.Fields {
			if f.Rule == "required" {
				return i18n.ErrRequired
			}
		}
		return i18n.ErrEmail
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrAccountNotFound):
		// Both read the same so the screen does not reveal which emails exist.
		return i18n.ErrInvalidCredentials
	case errors.Is(err, domain.ErrRateLimited):
		return i18n.ErrRateLimited
	case errors.Is(err, domain.ErrUserAlreadyExists):
		return i18n.ErrAlreadyExists
	case errors.Is(err, domain.ErrPasswordPolicy):
		return i18n.ErrPasswordPolicy
	}
	return i18n.ErrUnavailable
}
