package rendering

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"maragu.dev/gomponents"
)

// Renderer lets handlers pass templ components and gomponents nodes to
// c.Render. The template name is ignored.
type Renderer struct{}

// New returns the echo.Renderer for the app.
func New() *Renderer {
	return &Renderer{}
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, _ string, data any, c echo.Context) error {
	return Write(c.Request().Context(), w, data)
}

// Write renders a templ.Component or gomponents.Node to w.
func Write(ctx context.Context, w io.Writer, component any) error {
	switch v := component.(type) {
	case templ.Component:
		return v.Render(ctx, w)
	case gomponents.Node:
		return v.Render(w)
	case nil:
		return nil
	}
	return fmt.Errorf("unsupported component type %T", component)
}
