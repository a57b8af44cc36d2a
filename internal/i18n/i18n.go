// Package i18n holds the screen's user-facing strings. Czech is the
// default, English is the alternative.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Key identifies one message.
type Key string

const (
	Title                Key = "auth.title"
	TabLogin             Key = "auth.tab.login"
	TabRegister          Key = "auth.tab.register"
	FieldEmail           Key = "auth.field.email"
	FieldPassword        Key = "auth.field.password"
	AriaLoginEmail       Key = "auth.aria.login.email"
	AriaLoginPassword    Key = "auth.aria.login.password"
	AriaRegisterEmail    Key = "auth.aria.register.email"
	AriaRegisterPassword Key = "auth.aria.register.password"
	ButtonLogin          Key = "auth.button.login"
	ButtonRegister       Key = "auth.button.register"

	StatusLoginPending    Key = "auth.status.login.pending"
	StatusRegisterPending Key = "auth.status.register.pending"
	StatusSignedIn        Key = "auth.status.signed_in"
	StatusRegistered      Key = "auth.status.registered"
	StatusLoggedOut       Key = "auth.status.logged_out"

	ErrRequired           Key = "auth.error.required"
	ErrEmail              Key = "auth.error.email"
	ErrInvalidCredentials Key = "auth.error.invalid_credentials"
	ErrRateLimited        Key = "auth.error.rate_limited"
	ErrAlreadyExists      Key = "auth.error.already_exists"
	ErrPasswordPolicy     Key = "auth.error.password_policy"
	ErrUnavailable        Key = "auth.error.unavailable"

	HomeSignedIn Key = "home.signed_in"
	HomeLogout   Key = "home.logout"
	TUIHelp      Key = "tui.help"
)

var translations = map[language.Tag]map[Key]string{
	language.Czech: {
		Title:                 "Online Deník",
		TabLogin:              "Přihlášení",
		TabRegister:           "Registrace",
		FieldEmail:            "E-mail",
		FieldPassword:         "Heslo",
		AriaLoginEmail:        "E-mailová adresa pro přihlášení",
		AriaLoginPassword:     "Heslo pro přihlášení",
		AriaRegisterEmail:     "E-mailová adresa pro registraci",
		AriaRegisterPassword:  "Heslo pro registraci",
		ButtonLogin:           "Přihlásit se",
		ButtonRegister:        "Registrovat se",
		StatusLoginPending:    "Přihlášení zatím není k dispozici.",
		StatusRegisterPending: "Registrace zatím není k dispozici.",
		StatusSignedIn:        "Přihlášení proběhlo úspěšně.",
		StatusRegistered:      "Účet byl vytvořen.",
		StatusLoggedOut:       "Byli jste odhlášeni.",
		ErrRequired:           "Vyplňte e-mail i heslo.",
		ErrEmail:              "Zadejte platnou e-mailovou adresu.",
		ErrInvalidCredentials: "Neplatný e-mail nebo heslo.",
		ErrRateLimited:        "Příliš mnoho pokusů. Zkuste to později.",
		ErrAlreadyExists:      "Účet s tímto e-mailem již existuje.",
		ErrPasswordPolicy:     "Heslo nesplňuje požadavky.",
		ErrUnavailable:        "Služba není dostupná. Zkuste to později.",
		HomeSignedIn:          "Jste přihlášeni.",
		HomeLogout:            "Odhlásit se",
		TUIHelp:               "tab: další pole • ←/→: přepnout záložku • enter: odeslat • esc: konec",
	},
	language.English: {
		Title:                 "Online Journal",
		TabLogin:              "Sign in",
		TabRegister:           "Sign up",
		FieldEmail:            "Email",
		FieldPassword:         "Password",
		AriaLoginEmail:        "Email address for sign-in",
		AriaLoginPassword:     "Password for sign-in",
		AriaRegisterEmail:     "Email address for registration",
		AriaRegisterPassword:  "Password for registration",
		ButtonLogin:           "Sign in",
		ButtonRegister:        "Sign up",
		StatusLoginPending:    "Signing in is not available yet.",
		StatusRegisterPending: "Registration is not available yet.",
		StatusSignedIn:        "Signed in successfully.",
		StatusRegistered:      "Account created.",
		StatusLoggedOut:       "You have been logged out.",
		ErrRequired:           "Please fill in both email and password.",
		ErrEmail:              "Please enter a valid email address.",
		ErrInvalidCredentials: "Invalid email or password.",
		ErrRateLimited:        "Too many attempts. Please try again later.",
		ErrAlreadyExists:      "An account with this email already exists.",
		ErrPasswordPolicy:     "The password does not meet the requirements.",
		ErrUnavailable:        "The service is unavailable. Please try again later.",
		HomeSignedIn:          "You are signed in.",
		HomeLogout:            "Log out",
		TUIHelp:               "tab: next field • ←/→: switch tab • enter: submit • esc: quit",
	},
}

// Supported lists the available languages; the first is the default.
var Supported = []language.Tag{language.Czech, language.English}

var (
	cat     = mustBuildCatalog()
	matcher = language.NewMatcher(Supported)
)

func mustBuildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(Supported[0]))
	for tag, msgs := range translations {
		for key, msg := range msgs {
			if err := b.SetString(tag, string(key), msg); err != nil {
				panic(err)
			}
		}
	}
	return b
}

// Localizer prints messages in one language.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a localizer for the closest supported match of the given
// language preferences (tags or Accept-Language values). With no usable
// preference it returns the default language.
func New(prefs ...string) *Localizer {
	_, idx := language.MatchStrings(matcher, prefs...)
	tag := Supported[idx]
	return &Localizer{tag: tag, printer: message.NewPrinter(tag, message.Catalog(cat))}
}

// Tag returns the language in use.
func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// Lang returns the BCP 47 code, e.g. for the html lang attribute.
func (l *Localizer) Lang() string {
	return l.tag.String()
}

// T returns the message for key. Messages are plain text, never format
// strings, so user input cannot inject verbs.
func (l *Localizer) T(key Key) string {
	return l.printer.Sprintf(string(key))
}
