package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/denik/internal/theme"
	"github.com/nfrund/denik/internal/view"
	"github.com/nfrund/denik/internal/view/dto/auth"
	"github.com/nfrund/denik/web/src/templates/layouts"
	"github.com/nfrund/denik/web/src/templates/pages"
)

// HomeHandler serves the landing page.
type HomeHandler struct {
	locale string
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(locale string) *HomeHandler {
	return &HomeHandler{locale: locale}
}

// HomeGet sends visitors without a session to the auth screen.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	cookie, err := c.Cookie(AuthCookieName)
	if err != nil || cookie.Value == "" {
		return c.Redirect(http.StatusSeeOther, "/auth")
	}

	t := localizerFor(c, h.locale)
	page := view.Component(pages.HomePage(auth.HomeData{T: t}))
	return c.Render(http.StatusOK, "", layouts.Base(t.Lang(), "", view.GetFlashData(c), page))
}

// ThemeHandler serves the theme as CSS.
type ThemeHandler struct {
	css []byte
}

// NewThemeHandler renders t once.
func NewThemeHandler(t theme.Theme) *ThemeHandler {
	return &ThemeHandler{css: []byte(t.CSS())}
}

// CSSGet handles GET /theme.css.
func (h *ThemeHandler) CSSGet(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=3600")
	return c.Blob(http.StatusOK, "text/css; charset=utf-8", h.css)
}

// HealthGet handles GET /health.
func HealthGet(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
