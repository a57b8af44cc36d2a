package handlers_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/denik/internal/diagnostics"
	"github.com/nfrund/denik/internal/domain"
	"github.com/nfrund/denik/internal/handlers"
	"github.com/nfrund/denik/internal/middleware"
	"github.com/nfrund/denik/internal/rendering"
	"github.com/nfrund/denik/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

const testPassword = "velmi-tajne-heslo"

// stubBackend records what it was called with and answers with err or a session.
type stubBackend struct {
	mu    sync.Mutex
	calls []domain.Credentials
	err   error
}

func (s *stubBackend) answer(creds domain.Credentials) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, creds)
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Session{Token: "session-token", Email: creds.Email}, nil
}

func (s *stubBackend) SignIn(_ context.Context, creds domain.Credentials) (*domain.Session, error) {
	return s.answer(creds)
}

func (s *stubBackend) SignUp(_ context.Context, creds domain.Credentials) (*domain.Session, error) {
	return s.answer(creds)
}

type testEnv struct {
	e        *echo.Echo
	logs     *bytes.Buffer
	attempts *[]diagnostics.Attempt
}

// setupAuthTest wires the handlers the way the server does, minus the bus.
// backend may be nil.
func setupAuthTest(t *testing.T, backend *stubBackend) testEnv {
	t.Helper()

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var attempts []diagnostics.Attempt
	sink := diagnostics.MultiSink{
		diagnostics.NewLogSink(logger),
		diagnostics.SinkFunc(func(_ context.Context, a diagnostics.Attempt) error {
			attempts = append(attempts, a)
			return nil
		}),
	}

	var authHandler *handlers.AuthHandler
	if backend != nil {
		authHandler = handlers.NewAuthHandler(sink, backend, backend, "cs")
	} else {
		authHandler = handlers.NewAuthHandler(sink, nil, nil, "cs")
	}

	e := echo.New()
	e.Renderer = rendering.New()
	e.Validator = handlers.NewValidator()
	e.Use(echomw.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(testSessionSecret))))

	e.GET("/", handlers.NewHomeHandler("cs").HomeGet)
	e.GET("/auth", authHandler.ScreenGet)
	e.GET("/auth/tab/:tab", authHandler.TabGet)
	e.POST("/auth/login", authHandler.LoginPost)
	e.POST("/auth/register", authHandler.RegisterPost)
	e.GET("/auth/logout", authHandler.Logout)
	e.GET("/theme.css", handlers.NewThemeHandler(theme.Default()).CSSGet)

	return testEnv{e: e, logs: logs, attempts: &attempts}
}

func (env testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func formRequest(path, email, password string, htmx bool) *http.Request {
	form := url.Values{}
	form.Set("email", email)
	form.Set("password", password)
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	return req
}

// followCookies returns a GET request carrying the cookies rec set. Like a
// browser, a later Set-Cookie for the same name wins.
func followCookies(rec *httptest.ResponseRecorder, target string) *http.Request {
	latest := map[string]*http.Cookie{}
	var order []string
	for _, c := range rec.Result().Cookies() {
		if _, seen := latest[c.Name]; !seen {
			order = append(order, c.Name)
		}
		latest[c.Name] = c
	}

	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, name := range order {
		req.AddCookie(&http.Cookie{Name: name, Value: latest[name].Value})
	}
	return req
}

// assertFlashMessage decodes the flash session the response set.
func assertFlashMessage(t *testing.T, rec *httptest.ResponseRecorder, key, expected string) {
	t.Helper()

	req := followCookies(rec, "/")
	sess, err := sessions.NewCookieStore([]byte(testSessionSecret)).Get(req, "flash-session")
	require.NoError(t, err)

	flashes := sess.Flashes(key)
	require.NotEmpty(t, flashes, "expected flash message but found none for key: %s", key)
	assert.Equal(t, expected, flashes[0])
}

func authCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == handlers.AuthCookieName {
			return c
		}
	}
	return nil
}

func TestScreenGet_MountsLoginTabWithEmptyForms(t *testing.T) {
	env := setupAuthTest(t, nil)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/auth", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<html lang="cs">`)
	assert.Contains(t, body, `id="auth-tab-0" role="tab" href="/auth?tab=login" aria-selected="true"`)
	assert.Contains(t, body, `action="/auth/login"`)
	assert.NotContains(t, body, "value=")
}

func TestScreenGet_SelectsTabFromQuery(t *testing.T) {
	env := setupAuthTest(t, nil)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/auth?tab=register", nil))
	assert.Contains(t, rec.Body.String(), `action="/auth/register"`)

	rec = env.do(httptest.NewRequest(http.MethodGet, "/auth?tab=nonsense", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `action="/auth/login"`)
}

func TestTabGet(t *testing.T) {
	env := setupAuthTest(t, nil)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/auth/tab/register", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), `<nav id="auth-tablist"`))
	assert.Contains(t, rec.Body.String(), `href="/auth?tab=register" aria-selected="true"`)
	assert.NotContains(t, rec.Body.String(), "<html")

	rec = env.do(httptest.NewRequest(http.MethodGet, "/auth/tab/admin", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTabSwitch_KeepsBothForms(t *testing.T) {
	env := setupAuthTest(t, nil)

	page := env.do(httptest.NewRequest(http.MethodGet, "/auth", nil)).Body.String()
	for _, id := range []string{"login-email", "login-password", "register-email", "register-password"} {
		assert.Contains(t, page, `id="`+id+`"`)
	}
	assert.Contains(t, page, `hx-target="#auth-tablist"`)
	assert.Contains(t, page, `src="/static/tabs.js"`)

	for _, tab := range []string{"register", "login"} {
		req := httptest.NewRequest(http.MethodGet, "/auth/tab/"+tab, nil)
		req.Header.Set("HX-Request", "true")
		rec := env.do(req)
		require.Equal(t, http.StatusOK, rec.Code)

		// The swap replaces only the tab strip, so typed fields survive.
		body := rec.Body.String()
		assert.Contains(t, body, `href="/auth?tab=`+tab+`" aria-selected="true"`)
		assert.NotContains(t, body, "<input")
		assert.NotContains(t, body, "<form")
	}
}

func TestLoginPost_PendingWithoutBackend(t *testing.T) {
	env := setupAuthTest(t, nil)

	rec := env.do(formRequest("/auth/login", "jana@example.cz", testPassword, false))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/auth?tab=login", rec.Header().Get(echo.HeaderLocation))
	assertFlashMessage(t, rec, "info", "Přihlášení zatím není k dispozici.")
	assertFlashMessage(t, rec, "form_email", "jana@example.cz")
	assert.Nil(t, authCookie(rec))

	require.Len(t, *env.attempts, 1)
	assert.Equal(t, diagnostics.KindLogin, (*env.attempts)[0].Kind)
	assert.Equal(t, "jana@example.cz", (*env.attempts)[0].Email)
	assert.NotEmpty(t, (*env.attempts)[0].RequestID)

	assert.Contains(t, env.logs.String(), `msg="Login attempt" email=jana@example.cz`)
	assert.NotContains(t, env.logs.String(), testPassword)
}

func TestLoginPost_RedirectPrefillsEmailOnly(t *testing.T) {
	env := setupAuthTest(t, nil)

	rec := env.do(formRequest("/auth/login", "jana@example.cz", testPassword, false))
	page := env.do(followCookies(rec, rec.Header().Get(echo.HeaderLocation)))

	body := page.Body.String()
	assert.Contains(t, body, `value="jana@example.cz"`)
	assert.Contains(t, body, "Přihlášení zatím není k dispozici.")
	assert.NotContains(t, body, testPassword)
}

func TestRegisterPost_HTMXKeepsFormsAndShowsStatus(t *testing.T) {
	env := setupAuthTest(t, nil)

	rec := env.do(formRequest("/auth/register", "petr@example.cz", testPassword, true))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `<p class="status status-info" role="status">Registrace zatím není k dispozici.</p>`, rec.Body.String())
	assert.Empty(t, rec.Header().Get("HX-Redirect"))

	require.Len(t, *env.attempts, 1)
	assert.Equal(t, diagnostics.KindRegister, (*env.attempts)[0].Kind)
	assert.Contains(t, env.logs.String(), `msg="Registration attempt" email=petr@example.cz`)
	assert.NotContains(t, env.logs.String(), testPassword)
}

func TestSubmit_ValidationFailureReportsNothing(t *testing.T) {
	backend := &stubBackend{}
	env := setupAuthTest(t, backend)

	tests := []struct {
		name     string
		email    string
		password string
		want     string
	}{
		{"missing password", "jana@example.cz", "", "Vyplňte e-mail i heslo."},
		{"missing email", "", testPassword, "Vyplňte e-mail i heslo."},
		{"malformed email", "jana", testPassword, "Zadejte platnou e-mailovou adresu."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(formRequest("/auth/login", tt.email, tt.password, true))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), `role="alert"`)
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}

	assert.Empty(t, *env.attempts)
	assert.Empty(t, backend.calls)
}

func TestLoginPost_SignedIn(t *testing.T) {
	backend := &stubBackend{}
	env := setupAuthTest(t, backend)

	t.Run("plain post", func(t *testing.T) {
		rec := env.do(formRequest("/auth/login", "jana@example.cz", testPassword, false))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
		cookie := authCookie(rec)
		require.NotNil(t, cookie)
		assert.Equal(t, "session-token", cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assertFlashMessage(t, rec, "success", "Přihlášení proběhlo úspěšně.")
	})

	t.Run("htmx", func(t *testing.T) {
		rec := env.do(formRequest("/auth/login", "jana@example.cz", testPassword, true))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("HX-Redirect"))
		require.NotNil(t, authCookie(rec))
	})

	require.Len(t, backend.calls, 2)
	assert.Equal(t, "jana@example.cz", backend.calls[0].Email)
	assert.Equal(t, testPassword, backend.calls[0].Password.Reveal())
	assert.NotContains(t, env.logs.String(), testPassword)
}

func TestSubmit_BackendErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
		err  error
		want string
	}{
		{"invalid credentials", "/auth/login", domain.ErrInvalidCredentials, "Neplatný e-mail nebo heslo."},
		{"unknown account reads the same", "/auth/login", domain.ErrAccountNotFound, "Neplatný e-mail nebo heslo."},
		{"already registered", "/auth/register", domain.ErrUserAlreadyExists, "Účet s tímto e-mailem již existuje."},
		{"unavailable", "/auth/login", domain.ErrBackendUnavailable, "Služba není dostupná. Zkuste to později."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupAuthTest(t, &stubBackend{err: tt.err})

			rec := env.do(formRequest(tt.path, "jana@example.cz", testPassword, true))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
			assert.Nil(t, authCookie(rec))
			assert.NotContains(t, env.logs.String(), testPassword)
		})
	}
}

func TestLogout(t *testing.T) {
	env := setupAuthTest(t, nil)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/auth/logout", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/auth", rec.Header().Get(echo.HeaderLocation))
	cookie := authCookie(rec)
	require.NotNil(t, cookie)
	assert.Equal(t, -1, cookie.MaxAge)
	assertFlashMessage(t, rec, "info", "Byli jste odhlášeni.")
}

func TestHomeGet(t *testing.T) {
	env := setupAuthTest(t, nil)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/auth", rec.Header().Get(echo.HeaderLocation))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: handlers.AuthCookieName, Value: "session-token"})
	rec = env.do(req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Jste přihlášeni.")
}

func TestThemeCSS(t *testing.T) {
	env := setupAuthTest(t, nil)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/theme.css", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/css; charset=utf-8", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Body.String(), theme.Default().Palette.Primary.Main)
}
