package layouts_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/nfrund/denik/internal/view"
	"github.com/nfrund/denik/web/src/templates/layouts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func TestCalculateTitle(t *testing.T) {
	assert.Equal(t, "Online Deník", layouts.CalculateTitle(""))
	assert.Equal(t, "Online Deník", layouts.CalculateTitle("Online Deník"))
	assert.Equal(t, "Home - Online Deník", layouts.CalculateTitle("Home"))
}

func TestBase(t *testing.T) {
	var buf bytes.Buffer
	page := view.Component(h.Main(g.Text("obsah")))
	flashes := view.FlashData{Error: []string{"chyba"}}

	require.NoError(t, layouts.Base("cs", "", flashes, page).Render(context.Background(), &buf))

	out := buf.String()
	assert.Contains(t, out, "<!doctype html>")
	assert.Contains(t, out, `<html lang="cs">`)
	assert.Contains(t, out, "<title>Online Deník</title>")
	assert.Contains(t, out, `href="/theme.css"`)
	assert.Contains(t, out, "<main>obsah</main>")
	assert.Contains(t, out, "chyba")
}
