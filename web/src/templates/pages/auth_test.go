package pages_test

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/nfrund/denik/internal/authscreen"
	"github.com/nfrund/denik/internal/i18n"
	"github.com/nfrund/denik/internal/view/dto/auth"
	"github.com/nfrund/denik/web/src/templates/pages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

var passwordInput = regexp.MustCompile(`<input[^>]*type="password"[^>]*>`)

func TestAuthPage_LoginActive(t *testing.T) {
	out := render(t, pages.AuthPage(auth.ScreenData{
		Active:     authscreen.TabLogin,
		LoginEmail: "jana@example.cz",
		T:          i18n.New("cs"),
	}))

	assert.Contains(t, out, "<h1>Online Deník</h1>")
	assert.Contains(t, out, `role="tablist"`)
	assert.Contains(t, out, `id="auth-tab-0"`)
	assert.Contains(t, out, `id="auth-tab-1"`)
	assert.Contains(t, out, `aria-selected="true"`)
	assert.Contains(t, out, `id="auth-tabpanel-0" role="tabpanel" aria-labelledby="auth-tab-0"`)
	assert.Contains(t, out, `id="auth-tabpanel-1" role="tabpanel" aria-labelledby="auth-tab-1" hidden`)
	assert.Contains(t, out, `action="/auth/login"`)
	assert.Contains(t, out, `action="/auth/register"`)
	assert.Contains(t, out, `value="jana@example.cz"`)
	assert.Equal(t, 1, strings.Count(out, "value="))
	assert.Contains(t, out, `autocomplete="current-password"`)
	assert.Contains(t, out, "Přihlásit se")
	assert.Contains(t, out, `aria-label="E-mailová adresa pro přihlášení"`)
	assert.Contains(t, out, `id="auth-status"`)

	pw := passwordInput.FindAllString(out, -1)
	require.Len(t, pw, 2)
	for _, input := range pw {
		assert.NotContains(t, input, "value=")
		assert.Contains(t, input, "required")
	}
}

func TestAuthPage_RegisterActive(t *testing.T) {
	out := render(t, pages.AuthTabs(auth.ScreenData{
		Active: authscreen.TabRegister,
		T:      i18n.New("en"),
	}))

	assert.Contains(t, out, `id="auth-tabs"`)
	assert.Contains(t, out, `action="/auth/register"`)
	assert.Contains(t, out, `hx-post="/auth/register"`)
	assert.Contains(t, out, `hx-target="#auth-status"`)
	assert.Contains(t, out, `autocomplete="new-password"`)
	assert.Contains(t, out, `id="auth-tabpanel-0" role="tabpanel" aria-labelledby="auth-tab-0" hidden`)
	assert.NotContains(t, out, "value=")
	assert.Contains(t, out, `hx-get="/auth/tab/login"`)
	assert.Contains(t, out, `hx-target="#auth-tablist"`)
}

func TestTabList(t *testing.T) {
	out := render(t, pages.TabList(auth.ScreenData{
		Active: authscreen.TabRegister,
		T:      i18n.New("cs"),
	}))

	assert.True(t, strings.HasPrefix(out, `<nav id="auth-tablist"`))
	assert.Contains(t, out, `id="auth-tab-0" role="tab" href="/auth?tab=login" aria-selected="false"`)
	assert.Contains(t, out, `id="auth-tab-1" role="tab" href="/auth?tab=register" aria-selected="true"`)
	assert.NotContains(t, out, "<form")
	assert.NotContains(t, out, "<input")
}

func TestStatus(t *testing.T) {
	assert.Nil(t, pages.Status(nil))

	out := render(t, pages.Status(&auth.Status{Level: authscreen.LevelError, Text: "Chyba"}))
	assert.Equal(t, `<p class="status status-error" role="alert">Chyba</p>`, out)

	out = render(t, pages.Status(&auth.Status{Level: authscreen.LevelInfo, Text: "Zatím ne"}))
	assert.Contains(t, out, `role="status"`)
}

func TestHomePage(t *testing.T) {
	out := render(t, pages.HomePage(auth.HomeData{T: i18n.New("cs")}))
	assert.Contains(t, out, `href="/auth/logout"`)
}
