package pages

import (
	"strconv"

	"github.com/nfrund/denik/internal/authscreen"
	"github.com/nfrund/denik/internal/i18n"
	"github.com/nfrund/denik/internal/view/dto/auth"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// Element ids shared with the handlers.
const (
	TabsID    = "auth-tabs"
	TabListID = "auth-tablist"
	StatusID  = "auth-status"
)

func tabID(tab authscreen.Tab) string {
	return "auth-tab-" + strconv.Itoa(tab.Index())
}

func panelID(tab authscreen.Tab) string {
	return "auth-tabpanel-" + strconv.Itoa(tab.Index())
}

// AuthPage is the whole auth screen: backdrop, card, tabs and status region.
func AuthPage(d auth.ScreenData) g.Node {
	return h.Div(
		h.Class("backdrop"),
		h.Main(
			h.Class("paper"),
			h.H1(g.Text(d.T.T(i18n.Title))),
			AuthTabs(d),
			h.Div(h.ID(StatusID), g.Attr("aria-live", "polite"), Status(d.Status)),
		),
	)
}

// AuthTabs is the tab strip plus both panels. Both forms are always in the
// document so switching tabs never discards what was typed.
func AuthTabs(d auth.ScreenData) g.Node {
	return h.Div(
		h.ID(TabsID),
		TabList(d),
		g.Map(authscreen.Tabs, func(tab authscreen.Tab) g.Node { return panel(d, tab) }),
	)
}

// TabList is the tab strip alone, the fragment swapped in on a tab switch.
// /static/tabs.js then shows the panel of the selected tab.
func TabList(d auth.ScreenData) g.Node {
	return h.Nav(
		h.ID(TabListID),
		h.Class("tabs"),
		h.Role("tablist"),
		g.Map(authscreen.Tabs, func(tab authscreen.Tab) g.Node { return tabLink(d, tab) }),
	)
}

func tabLink(d auth.ScreenData, tab authscreen.Tab) g.Node {
	label := i18n.TabLogin
	if tab == authscreen.TabRegister {
		label = i18n.TabRegister
	}
	selected := tab == d.Active
	return h.A(
		h.Class("tab"),
		h.ID(tabID(tab)),
		h.Role("tab"),
		h.Href("/auth?tab="+tab.String()),
		h.Aria("selected", strconv.FormatBool(selected)),
		h.Aria("controls", panelID(tab)),
		hx.Get("/auth/tab/"+tab.String()),
		hx.Target("#"+TabListID),
		hx.Swap("outerHTML"),
		hx.PushURL("/auth?tab="+tab.String()),
		g.Text(d.T.T(label)),
	)
}

// panel renders tab's form; inactive panels are hidden.
func panel(d auth.ScreenData, tab authscreen.Tab) g.Node {
	return h.Div(
		h.ID(panelID(tab)),
		h.Role("tabpanel"),
		h.Aria("labelledby", tabID(tab)),
		g.If(tab != d.Active, g.Attr("hidden")),
		form(d, tab),
	)
}

type formText struct {
	action        string
	button        i18n.Key
	ariaEmail     i18n.Key
	ariaPassword  i18n.Key
	passwordHints string
}

func textsFor(tab authscreen.Tab) formText {
	if tab == authscreen.TabRegister {
		return formText{
			action:        "/auth/register",
			button:        i18n.ButtonRegister,
			ariaEmail:     i18n.AriaRegisterEmail,
			ariaPassword:  i18n.AriaRegisterPassword,
			passwordHints: "new-password",
		}
	}
	return formText{
		action:        "/auth/login",
		button:        i18n.ButtonLogin,
		ariaEmail:     i18n.AriaLoginEmail,
		ariaPassword:  i18n.AriaLoginPassword,
		passwordHints: "current-password",
	}
}

func form(d auth.ScreenData, tab authscreen.Tab) g.Node {
	txt := textsFor(tab)
	prefix := tab.String()
	emailID := prefix + "-email"
	passwordID := prefix + "-password"

	return h.Form(
		h.Class("auth-form"),
		h.Method("post"),
		h.Action(txt.action),
		hx.Post(txt.action),
		hx.Target("#"+StatusID),
		hx.Swap("innerHTML"),
		h.Div(
			h.Class("text-field"),
			h.Label(h.For(emailID), g.Text(d.T.T(i18n.FieldEmail))),
			h.Input(
				h.ID(emailID),
				h.Name("email"),
				h.Type("email"),
				h.AutoComplete("email"),
				h.Required(),
				h.Aria("label", d.T.T(txt.ariaEmail)),
				g.If(d.Email(tab) != "", h.Value(d.Email(tab))),
			),
		),
		h.Div(
			h.Class("text-field"),
			h.Label(h.For(passwordID), g.Text(d.T.T(i18n.FieldPassword))),
			// No value attribute: a password is never echoed back into markup.
			h.Input(
				h.ID(passwordID),
				h.Name("password"),
				h.Type("password"),
				h.AutoComplete(txt.passwordHints),
				h.Required(),
				h.Aria("label", d.T.T(txt.ariaPassword)),
			),
		),
		h.Button(
			h.Type("submit"),
			h.Class("button button-contained"),
			g.Text(d.T.T(txt.button)),
		),
	)
}

// Status renders a submission message, or nothing.
func Status(st *auth.Status) g.Node {
	if st == nil {
		return nil
	}
	role := "status"
	if st.Level == authscreen.LevelError {
		role = "alert"
	}
	return h.P(
		h.Class("status status-"+string(st.Level)),
		h.Role(role),
		g.Text(st.Text),
	)
}
