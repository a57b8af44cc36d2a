// Package theme is the visual definition of the auth screen: a dark palette
// with a red accent, rounded corners and a few per-component overrides.
// The value is constant; the web and terminal surfaces only project it.
package theme

// Mode is the palette mode.
type Mode string

const (
	ModeDark  Mode = "dark"
	ModeLight Mode = "light"
)

// ColorSet is one palette entry with its variants.
type ColorSet struct {
	Main         string
	Light        string
	Dark         string
	ContrastText string
}

// Palette holds every color the screen uses.
type Palette struct {
	Mode       Mode
	Primary    ColorSet
	Background struct {
		Default string
		Paper   string
	}
	Text struct {
		Primary   string
		Secondary string
	}
}

// HeadingStyle overrides one heading level.
type HeadingStyle struct {
	FontWeight int
}

// Typography describes fonts.
type Typography struct {
	FontFamily string
	H4         HeadingStyle
}

// Shape describes corner rounding, in pixels.
type Shape struct {
	BorderRadius int
}

// ButtonStyle overrides buttons.
type ButtonStyle struct {
	TextTransform      string
	FontWeight         int
	Padding            string
	ContainedBg        string
	ContainedHoverBg   string
	ContainedTextColor string
}

// TextFieldStyle overrides outlined text fields.
type TextFieldStyle struct {
	HoverBorderColor string
	FocusBorderColor string
}

// TabStyle overrides the tab strip.
type TabStyle struct {
	Color         string
	SelectedColor string
}

// Components groups the per-component overrides.
type Components struct {
	Button    ButtonStyle
	TextField TextFieldStyle
	Tab       TabStyle
}

// Backdrop is what sits behind the card.
type Backdrop struct {
	ImageURL     string
	Gradient     string
	OverlayColor string
	OverlayBlur  int
	PaperBlur    int
}

// Theme is the whole definition.
type Theme struct {
	Name       string
	Palette    Palette
	Typography Typography
	Shape      Shape
	Components Components
	Backdrop   Backdrop
}

const (
	red        = "#f44336"
	redHover   = "#d32f2f"
	white      = "#ffffff"
	whiteMuted = "rgba(255, 255, 255, 0.7)"
)

// defaultTheme is never handed out directly; Default returns a copy.
var defaultTheme = func() Theme {
	t := Theme{
		Name: "denik-dark",
		Palette: Palette{
			Mode: ModeDark,
			Primary: ColorSet{
				Main:         red,
				Light:        "#ff7961",
				Dark:         "#ba000d",
				ContrastText: white,
			},
		},
		Typography: Typography{
			FontFamily: `"Roboto", "Helvetica", "Arial", sans-serif`,
			H4:         HeadingStyle{FontWeight: 600},
		},
		Shape: Shape{BorderRadius: 12},
		Components: Components{
			Button: ButtonStyle{
				TextTransform:      "none",
				FontWeight:         600,
				Padding:            "10px 24px",
				ContainedBg:        red,
				ContainedHoverBg:   redHover,
				ContainedTextColor: white,
			},
			TextField: TextFieldStyle{
				HoverBorderColor: red,
				FocusBorderColor: red,
			},
			Tab: TabStyle{
				Color:         whiteMuted,
				SelectedColor: red,
			},
		},
		Backdrop: Backdrop{
			ImageURL:     "/static/backdrop.svg",
			Gradient:     "linear-gradient(135deg, #1a1a2e 0%, #16213e 50%, #0f3460 100%)",
			OverlayColor: "rgba(0, 0, 0, 0.5)",
			OverlayBlur:  2,
			PaperBlur:    10,
		},
	}
	t.Palette.Background.Default = "#121212"
	t.Palette.Background.Paper = "rgba(30, 30, 30, 0.9)"
	t.Palette.Text.Primary = white
	t.Palette.Text.Secondary = whiteMuted
	return t
}()

// Default returns the application theme. Every call returns an independent
// copy, so callers cannot change what others see.
func Default() Theme {
	return defaultTheme
}
