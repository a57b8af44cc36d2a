package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/nfrund/denik/internal/view"
	"github.com/nfrund/denik/web/src/templates/partials"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

// Base wraps page content in the HTML document shared by all pages.
func Base(lang, title string, flashes view.FlashData, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		doc := h.Doctype(
			h.HTML(
				h.Lang(lang),
				h.Head(
					h.Meta(h.Charset("utf-8")),
					h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
					h.TitleEl(g.Text(CalculateTitle(title))),
					h.Link(h.Rel("stylesheet"), h.Href("/theme.css")),
					h.Link(h.Rel("stylesheet"), h.Href("/static/app.css")),
					h.Script(h.Src(htmxSrc), h.Defer()),
					h.Script(h.Src("/static/tabs.js"), h.Defer()),
				),
				h.Body(
					partials.Flash(flashes),
					view.Node(ctx, content),
				),
			),
		)
		return doc.Render(w)
	})
}
