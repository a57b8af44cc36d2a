package rendering_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/denik/internal/rendering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func TestWrite(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer
	require.NoError(t, rendering.Write(ctx, &buf, h.Span(g.Text("uzel"))))
	assert.Equal(t, "<span>uzel</span>", buf.String())

	buf.Reset()
	comp := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "komponenta")
		return err
	})
	require.NoError(t, rendering.Write(ctx, &buf, comp))
	assert.Equal(t, "komponenta", buf.String())

	assert.Error(t, rendering.Write(ctx, &buf, 42))
}

func TestRendererWithEcho(t *testing.T) {
	e := echo.New()
	e.Renderer = rendering.New()
	e.GET("/", func(c echo.Context) error {
		return c.Render(http.StatusTeapot, "", h.P(g.Text("ahoj")))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "<p>ahoj</p>", rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
}
