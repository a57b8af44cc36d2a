package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/denik/internal/authscreen"
	"github.com/nfrund/denik/internal/diagnostics"
	"github.com/nfrund/denik/internal/domain"
	"github.com/nfrund/denik/internal/i18n"
	"github.com/nfrund/denik/internal/middleware"
	"github.com/nfrund/denik/internal/view"
	"github.com/nfrund/denik/internal/view/dto/auth"
	"github.com/nfrund/denik/web/src/templates/layouts"
	"github.com/nfrund/denik/web/src/templates/pages"
	hxhttp "maragu.dev/gomponents-htmx/http"
)

// AuthCookieName holds the session token handed over by the auth backend.
const AuthCookieName = "auth_token"

// AuthHandler serves the auth screen. Each request mounts a fresh screen.
type AuthHandler struct {
	sink   diagnostics.Sink
	authn  domain.Authenticator
	reg    domain.Registrar
	locale string
}

// NewAuthHandler creates a new AuthHandler. authn and reg may be nil, in
// which case submissions stay pending. A non-empty locale overrides
// Accept-Language.
func NewAuthHandler(sink diagnostics.Sink, authn domain.Authenticator, reg domain.Registrar, locale string) *AuthHandler {
	return &AuthHandler{sink: sink, authn: authn, reg: reg, locale: locale}
}

func (h *AuthHandler) localizer(c echo.Context) *i18n.Localizer {
	return localizerFor(c, h.locale)
}

func localizerFor(c echo.Context, locale string) *i18n.Localizer {
	if locale != "" {
		return i18n.New(locale)
	}
	return i18n.New(c.Request().Header.Get("Accept-Language"))
}

func (h *AuthHandler) mount(c echo.Context) *authscreen.Screen {
	return authscreen.New(authscreen.Dependencies{
		Sink:          h.sink,
		Authenticator: h.authn,
		Registrar:     h.reg,
		Logger:        middleware.FromContext(c.Request().Context()),
	}).WithRequestID(middleware.RequestID(c))
}

// ScreenGet renders the full auth page (GET /auth).
func (h *AuthHandler) ScreenGet(c echo.Context) error {
	t := h.localizer(c)
	s := h.mount(c)

	// An unknown ?tab= falls back to the login tab.
	if tab, err := authscreen.ParseTab(c.QueryParam("tab")); err == nil {
		_ = s.SelectTab(tab)
	}
	if email := view.PopFormEmail(c); email != "" {
		_ = setField(s, s.ActiveTab(), authscreen.FieldEmail, email)
	}

	flashes := view.GetFlashData(c)
	page := view.Component(pages.AuthPage(auth.FromScreen(s, t)))
	return c.Render(http.StatusOK, "", layouts.Base(t.Lang(), "", flashes, page))
}

// TabGet renders the tab strip with the requested tab selected
// (GET /auth/tab/:tab). The panels and whatever was typed into them stay in
// the page.
func (h *AuthHandler) TabGet(c echo.Context) error {
	var req TabRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid tab")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid tab")
	}
	tab, err := authscreen.ParseTab(req.Tab)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid tab")
	}

	s := h.mount(c)
	if err := s.SelectTab(tab); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid tab")
	}
	return c.Render(http.StatusOK, "", pages.TabList(auth.FromScreen(s, h.localizer(c))))
}

// LoginPost handles the login form (POST /auth/login).
func (h *AuthHandler) LoginPost(c echo.Context) error {
	return h.submit(c, authscreen.TabLogin)
}

// RegisterPost handles the registration form (POST /auth/register).
func (h *AuthHandler) RegisterPost(c echo.Context) error {
	return h.submit(c, authscreen.TabRegister)
}

func (h *AuthHandler) submit(c echo.Context, tab authscreen.Tab) error {
	var form CredentialsForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)
	t := h.localizer(c)

	s := h.mount(c)
	_ = s.SelectTab(tab)
	_ = setField(s, tab, authscreen.FieldEmail, form.Email)
	_ = setField(s, tab, authscreen.FieldPassword, form.Password)

	outcome, err := s.Submit(ctx)
	feedback := authscreen.FeedbackFor(tab, outcome, err)
	logFailure(logger, tab, form.Email, err)

	signedIn := err == nil && outcome.Session != nil
	if signedIn {
		setAuthCookie(c, outcome.Session.Token)
	}
	msg := t.T(feedback.Key)

	if hxhttp.IsRequest(c.Request().Header) {
		if signedIn {
			view.SetFlashSuccess(c, msg)
			hxhttp.SetRedirect(c.Response().Header(), "/")
		}
		return c.Render(http.StatusOK, "", pages.Status(&auth.Status{Level: feedback.Level, Text: msg}))
	}

	setFlash(c, feedback.Level, msg)
	if signedIn {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	view.SetFormEmail(c, form.Email)
	return c.Redirect(http.StatusSeeOther, "/auth?tab="+tab.String())
}

// Logout expires the auth cookie (GET /auth/logout).
func (h *AuthHandler) Logout(c echo.Context) error {
	setAuthCookie(c, "")
	view.SetFlashInfo(c, h.localizer(c).T(i18n.StatusLoggedOut))
	return c.Redirect(http.StatusSeeOther, "/auth")
}

func setField(s *authscreen.Screen, tab authscreen.Tab, field authscreen.Field, value string) error {
	if tab == authscreen.TabRegister {
		return s.SetRegisterField(field, value)
	}
	return s.SetLoginField(field, value)
}

func setFlash(c echo.Context, level authscreen.Level, msg string) {
	switch level {
	case authscreen.LevelSuccess:
		view.SetFlashSuccess(c, msg)
	case authscreen.LevelError:
		view.SetFlashError(c, msg)
	default:
		view.SetFlashInfo(c, msg)
	}
}

// logFailure records why a submission failed. Expected outcomes such as a
// wrong password are not errors of the app.
func logFailure(logger *slog.Logger, tab authscreen.Tab, email string, err error) {
	switch {
	case err == nil, errors.Is(err, domain.ErrValidation):
		return
	case errors.Is(err, domain.ErrBackendUnavailable), errors.Is(err, domain.ErrInsecureTransport):
		logger.Error("Auth backend failed", "tab", tab.String(), "email", email, "error", err)
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrRateLimited), errors.Is(err, domain.ErrUserAlreadyExists),
		errors.Is(err, domain.ErrPasswordPolicy):
		logger.Info("Auth attempt rejected", "tab", tab.String(), "email", email, "reason", err)
	default:
		logger.Error("Unexpected auth error", "tab", tab.String(), "email", email, "error", err)
	}
}

// setAuthCookie stores the session token, or expires the cookie when token is empty.
func setAuthCookie(c echo.Context, token string) {
	cookie := &http.Cookie{
		Name:     AuthCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.Request().TLS != nil,
		SameSite: http.SameSiteLaxMode,
	}
	if token == "" {
		cookie.MaxAge = -1
	} else {
		cookie.Expires = time.Now().UTC().Add(24 * time.Hour)
	}
	c.SetCookie(cookie)
}
