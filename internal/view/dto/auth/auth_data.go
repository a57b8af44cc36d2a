package auth

import (
	"github.com/nfrund/denik/internal/authscreen"
	"github.com/nfrund/denik/internal/i18n"
)

// Status is a message shown in the #auth-status region.
type Status struct {
	Level authscreen.Level
	Text  string
}

// ScreenData is the view model for the auth page and its fragments.
// It carries emails only; password inputs are always rendered empty.
type ScreenData struct {
	Active        authscreen.Tab
	LoginEmail    string
	RegisterEmail string
	Status        *Status
	T             *i18n.Localizer
}

// FromScreen copies what the markup needs out of a mounted screen.
func FromScreen(s *authscreen.Screen, t *i18n.Localizer) ScreenData {
	return ScreenData{
		Active:        s.ActiveTab(),
		LoginEmail:    s.Login().Email,
		RegisterEmail: s.Register().Email,
		T:             t,
	}
}

// Email returns the email shown in tab's form.
func (d ScreenData) Email(tab authscreen.Tab) string {
	if tab == authscreen.TabRegister {
		return d.RegisterEmail
	}
	return d.LoginEmail
}

// HomeData is the view model for the signed-in landing page.
type HomeData struct {
	T *i18n.Localizer
}
