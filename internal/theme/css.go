package theme

import (
	"fmt"
	"strings"
)

// CSS renders the theme as custom properties plus the component rules the
// auth page relies on.
func (t Theme) CSS() string {
	var b strings.Builder

	p := t.Palette
	c := t.Components
	radius := fmt.Sprintf("%dpx", t.Shape.BorderRadius)

	b.WriteString(":root {\n")
	writeVar(&b, "color-scheme", string(p.Mode))
	writeVar(&b, "--primary-main", p.Primary.Main)
	writeVar(&b, "--primary-light", p.Primary.Light)
	writeVar(&b, "--primary-dark", p.Primary.Dark)
	writeVar(&b, "--primary-contrast", p.Primary.ContrastText)
	writeVar(&b, "--background-default", p.Background.Default)
	writeVar(&b, "--background-paper", p.Background.Paper)
	writeVar(&b, "--text-primary", p.Text.Primary)
	writeVar(&b, "--text-secondary", p.Text.Secondary)
	writeVar(&b, "--font-family", t.Typography.FontFamily)
	writeVar(&b, "--radius", radius)
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "body {\n  margin: 0;\n  font-family: var(--font-family);\n  background-color: var(--background-default);\n  color: var(--text-primary);\n}\n\n")

	fmt.Fprintf(&b, ".backdrop {\n  min-height: 100vh;\n  display: flex;\n  align-items: center;\n  justify-content: center;\n  position: relative;\n  background-image: url(%s), %s;\n  background-size: cover;\n  background-position: center;\n  background-repeat: no-repeat;\n}\n\n",
		t.Backdrop.ImageURL, t.Backdrop.Gradient)
	fmt.Fprintf(&b, ".backdrop::before {\n  content: \"\";\n  position: absolute;\n  inset: 0;\n  background-color: %s;\n  backdrop-filter: blur(%dpx);\n}\n\n",
		t.Backdrop.OverlayColor, t.Backdrop.OverlayBlur)

	fmt.Fprintf(&b, ".paper {\n  position: relative;\n  z-index: 1;\n  background-color: var(--background-paper);\n  backdrop-filter: blur(%dpx);\n  border-radius: var(--radius);\n}\n\n", t.Backdrop.PaperBlur)

	fmt.Fprintf(&b, "h1 {\n  font-weight: %d;\n}\n\n", t.Typography.H4.FontWeight)

	fmt.Fprintf(&b, ".tab {\n  color: %s;\n}\n.tab[aria-selected=\"true\"] {\n  color: %s;\n  border-bottom-color: %s;\n}\n\n",
		c.Tab.Color, c.Tab.SelectedColor, c.Tab.SelectedColor)

	fmt.Fprintf(&b, ".button {\n  text-transform: %s;\n  font-weight: %d;\n  padding: %s;\n  border-radius: var(--radius);\n}\n",
		c.Button.TextTransform, c.Button.FontWeight, c.Button.Padding)
	fmt.Fprintf(&b, ".button-contained {\n  background-color: %s;\n  color: %s;\n}\n.button-contained:hover {\n  background-color: %s;\n}\n\n",
		c.Button.ContainedBg, c.Button.ContainedTextColor, c.Button.ContainedHoverBg)

	fmt.Fprintf(&b, ".text-field input {\n  border-radius: var(--radius);\n}\n.text-field input:hover {\n  border-color: %s;\n}\n.text-field input:focus {\n  border-color: %s;\n}\n",
		c.TextField.HoverBorderColor, c.TextField.FocusBorderColor)

	return b.String()
}

func writeVar(b *strings.Builder, name, value string) {
	fmt.Fprintf(b, "  %s: %s;\n", name, value)
}
