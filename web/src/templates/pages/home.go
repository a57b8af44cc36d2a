package pages

import (
	"github.com/nfrund/denik/internal/i18n"
	"github.com/nfrund/denik/internal/view/dto/auth"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// HomePage is the minimal page shown once a session cookie is present.
func HomePage(d auth.HomeData) g.Node {
	return h.Div(
		h.Class("backdrop"),
		h.Main(
			h.Class("paper"),
			h.H1(g.Text(d.T.T(i18n.Title))),
			h.P(g.Text(d.T.T(i18n.HomeSignedIn))),
			h.A(
				h.Class("button button-contained"),
				h.Href("/auth/logout"),
				g.Text(d.T.T(i18n.HomeLogout)),
			),
		),
	)
}
