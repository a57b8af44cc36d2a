// Package authscreen holds the state of the sign-in/sign-up screen: which
// tab is active, what has been typed into each form, and what happens when a
// form is submitted. Web and terminal front ends both drive a Screen.
//
// A Screen is owned by one caller and is not safe for concurrent use.
package authscreen

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nfrund/denik/internal/diagnostics"
	"github.com/nfrund/denik/internal/domain"
)

// FormState is the content of one form.
type FormState struct {
	Email    string
	Password domain.Password
}

func (f FormState) credentials() domain.Credentials {
	return domain.Credentials{Email: f.Email, Password: f.Password}
}

func (f *FormState) set(field Field, value string) error {
	switch field {
	case FieldEmail:
		f.Email = value
	case FieldPassword:
		f.Password = domain.NewPassword(value)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownField, int(field))
	}
	return nil
}

// Status is how a submission ended.
type Status int

const (
	// StatusPending means the submission was recorded but no collaborator
	// is configured to act on it.
	StatusPending Status = iota
	StatusSignedIn
	StatusRegistered
)

func (s Status) String() string {
	switch s {
	case StatusSignedIn:
		return "signed_in"
	case StatusRegistered:
		return "registered"
	}
	return "pending"
}

// Outcome is the result of a successful submission.
type Outcome struct {
	Status  Status
	Session *domain.Session
}

// Dependencies are the collaborators a Screen reports to. Any may be nil.
type Dependencies struct {
	Sink          diagnostics.Sink
	Authenticator domain.Authenticator
	Registrar     domain.Registrar
	Logger        *slog.Logger
}

// Screen is the auth screen state.
type Screen struct {
	active   Tab
	login    FormState
	register FormState

	sink   diagnostics.Sink
	auth   domain.Authenticator
	reg    domain.Registrar
	logger *slog.Logger

	requestID string
}

// New mounts a screen with the login tab active and both forms empty.
func New(deps Dependencies) *Screen {
	sink := deps.Sink
	if sink == nil {
		sink = diagnostics.Discard
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Screen{
		active: TabLogin,
		sink:   sink,
		auth:   deps.Authenticator,
		reg:    deps.Registrar,
		logger: logger,
	}
}

// WithRequestID tags the attempts this screen emits.
func (s *Screen) WithRequestID(id string) *Screen {
	s.requestID = id
	return s
}

// ActiveTab returns the visible tab.
func (s *Screen) ActiveTab() Tab {
	return s.active
}

// SelectTab makes tab the visible one. An invalid tab leaves the state unchanged.
func (s *Screen) SelectTab(tab Tab) error {
	if !tab.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownTab, int(tab))
	}
	s.active = tab
	return nil
}

// SetLoginField updates one login input. No validation happens here.
func (s *Screen) SetLoginField(field Field, value string) error {
	return s.login.set(field, value)
}

// SetRegisterField updates one registration input. No validation happens here.
func (s *Screen) SetRegisterField(field Field, value string) error {
	return s.register.set(field, value)
}

// Login returns a copy of the login form.
func (s *Screen) Login() FormState {
	return s.login
}

// Register returns a copy of the registration form.
func (s *Screen) Register() FormState {
	return s.register
}

// Form returns a copy of the form behind tab.
func (s *Screen) Form(tab Tab) FormState {
	if tab == TabRegister {
		return s.register
	}
	return s.login
}

// SubmitLogin validates the login form, reports the attempt and hands the
// credentials to the authenticator when one is configured. Form values are
// kept either way.
func (s *Screen) SubmitLogin(ctx context.Context) (Outcome, error) {
	creds := s.login.credentials()
	if err := creds.Validate(); err != nil {
		return Outcome{}, err
	}

	s.report(ctx, diagnostics.KindLogin, creds.Email)

	if s.auth == nil {
		return Outcome{Status: StatusPending}, nil
	}
	session, err := s.auth.SignIn(ctx, creds)
	if err != nil {
		return Outcome{}, fmt.Errorf("sign in: %w", err)
	}
	return Outcome{Status: StatusSignedIn, Session: session}, nil
}

// SubmitRegister is SubmitLogin for the registration form and registrar.
func (s *Screen) SubmitRegister(ctx context.Context) (Outcome, error) {
	creds := s.register.credentials()
	if err := creds.Validate(); err != nil {
		return Outcome{}, err
	}

	s.report(ctx, diagnostics.KindRegister, creds.Email)

	if s.reg == nil {
		return Outcome{Status: StatusPending}, nil
	}
	session, err := s.reg.SignUp(ctx, creds)
	if err != nil {
		return Outcome{}, fmt.Errorf("sign up: %w", err)
	}
	return Outcome{Status: StatusRegistered, Session: session}, nil
}

// Submit submits whichever form is active.
func (s *Screen) Submit(ctx context.Context) (Outcome, error) {
	if s.active == TabRegister {
		return s.SubmitRegister(ctx)
	}
	return s.SubmitLogin(ctx)
}

// report never fails the submission; a broken diagnostic channel is logged.
func (s *Screen) report(ctx context.Context, kind diagnostics.Kind, email string) {
	attempt := diagnostics.NewAttempt(kind, email, s.requestID)
	if err := s.sink.Emit(ctx, attempt); err != nil {
		s.logger.WarnContext(ctx, "Failed to emit auth attempt", "kind", kind, "error", err)
	}
}
