package partials

import (
	"github.com/nfrund/denik/internal/view"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Flash renders the one-shot messages above the page, or nothing.
func Flash(data view.FlashData) g.Node {
	if data.Empty() {
		return nil
	}
	return h.Div(
		h.Class("flashes"),
		g.Map(data.Success, func(msg string) g.Node { return message("success", msg) }),
		g.Map(data.Info, func(msg string) g.Node { return message("info", msg) }),
		g.Map(data.Error, func(msg string) g.Node { return message("error", msg) }),
	)
}

func message(level, msg string) g.Node {
	role := "status"
	if level == "error" {
		role = "alert"
	}
	return h.P(h.Class("flash flash-"+level), h.Role(role), g.Text(msg))
}
