package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nfrund/denik/internal/authscreen"
	"github.com/nfrund/denik/internal/theme"
)

// Styles are the lipgloss renditions of the theme.
type Styles struct {
	Card        lipgloss.Style
	Title       lipgloss.Style
	Tab         lipgloss.Style
	ActiveTab   lipgloss.Style
	Label       lipgloss.Style
	Input       lipgloss.Style
	Focused     lipgloss.Style
	Button      lipgloss.Style
	ButtonFocus lipgloss.Style
	Status      map[authscreen.Level]lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles derives terminal styles from t.
func NewStyles(t theme.Theme) Styles {
	p := t.Palette
	bg := p.Background.Default
	primary := termColor(p.Primary.Main, bg)
	hover := termColor(t.Components.Button.ContainedHoverBg, bg)
	contrast := termColor(t.Components.Button.ContainedTextColor, bg)
	text := termColor(p.Text.Primary, bg)
	muted := termColor(p.Text.Secondary, bg)
	light := termColor(p.Primary.Light, bg)

	return Styles{
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 3),
		Title: lipgloss.NewStyle().
			Foreground(text).
			Bold(t.Typography.H4.FontWeight >= 600).
			MarginBottom(1),
		Tab: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 2),
		ActiveTab: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			Underline(true).
			Padding(0, 2),
		Label: lipgloss.NewStyle().
			Foreground(muted),
		Input: lipgloss.NewStyle().
			Foreground(text),
		Focused: lipgloss.NewStyle().
			Foreground(primary),
		Button: lipgloss.NewStyle().
			Foreground(contrast).
			Background(primary).
			Padding(0, 2),
		ButtonFocus: lipgloss.NewStyle().
			Foreground(contrast).
			Background(hover).
			Bold(true).
			Padding(0, 2),
		Status: map[authscreen.Level]lipgloss.Style{
			authscreen.LevelSuccess: lipgloss.NewStyle().Foreground(light).Bold(true),
			authscreen.LevelInfo:    lipgloss.NewStyle().Foreground(text),
			authscreen.LevelError:   lipgloss.NewStyle().Foreground(primary).Italic(true),
		},
		Help: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),
	}
}

// termColor turns a CSS color into a terminal color. Terminals have no alpha,
// so rgba() colors are blended over the hex background bg.
func termColor(css, bg string) lipgloss.Color {
	css = strings.TrimSpace(css)
	if strings.HasPrefix(css, "#") {
		return lipgloss.Color(css)
	}

	var r, g, b int
	var a float64
	if _, err := fmt.Sscanf(css, "rgba(%d, %d, %d, %g)", &r, &g, &b, &a); err != nil {
		return lipgloss.Color(bg)
	}
	var br, bgr, bb int
	if _, err := fmt.Sscanf(bg, "#%02x%02x%02x", &br, &bgr, &bb); err != nil {
		br, bgr, bb = 0, 0, 0
	}
	blend := func(fg, back int) int {
		return int(a*float64(fg) + (1-a)*float64(back) + 0.5)
	}
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", blend(r, br), blend(g, bgr), blend(b, bb)))
}
