// Package tui is the terminal rendition of the auth screen.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nfrund/denik/internal/authscreen"
	"github.com/nfrund/denik/internal/i18n"
	"github.com/nfrund/denik/internal/theme"
)

type focus int

const (
	focusTabs focus = iota
	focusEmail
	focusPassword
	focusSubmit
	focusCount
)

// submittedMsg carries a finished submission back into Update.
type submittedMsg struct {
	tab     authscreen.Tab
	outcome authscreen.Outcome
	err     error
}

type statusLine struct {
	level authscreen.Level
	text  string
}

// Model drives one Screen from the keyboard. The screen is only touched
// inside Update. While a submission runs its command reads the screen, so
// Update drops key presses and stops writing to the screen until the result
// arrives.
type Model struct {
	ctx    context.Context
	screen *authscreen.Screen
	t      *i18n.Localizer
	styles Styles

	// inputs[tab][field]
	inputs     [2][2]textinput.Model
	focus      focus
	submitting bool
	status     *statusLine
	quitting   bool
}

// New builds a model over screen. The active tab is the screen's.
func New(ctx context.Context, screen *authscreen.Screen, t *i18n.Localizer, th theme.Theme) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	m := Model{
		ctx:    ctx,
		screen: screen,
		t:      t,
		styles: NewStyles(th),
		focus:  focusEmail,
	}
	for _, tab := range authscreen.Tabs {
		email := textinput.New()
		email.Prompt = ""
		email.CharLimit = 254
		email.Width = 32
		email.Placeholder = "jmeno@example.cz"
		email.TextStyle = m.styles.Input
		email.SetValue(screen.Form(tab).Email)

		password := textinput.New()
		password.Prompt = ""
		password.CharLimit = 128
		password.Width = 32
		password.EchoMode = textinput.EchoPassword
		password.EchoCharacter = '•'
		password.TextStyle = m.styles.Input

		m.inputs[tab][authscreen.FieldEmail] = email
		m.inputs[tab][authscreen.FieldPassword] = password
	}
	m.syncFocus()
	return m
}

// Screen exposes the driven screen.
func (m Model) Screen() *authscreen.Screen {
	return m.screen
}

// Status returns the text of the last submission result.
func (m Model) Status() string {
	if m.status == nil {
		return ""
	}
	return m.status.text
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case submittedMsg:
		m.submitting = false
		fb := authscreen.FeedbackFor(msg.tab, msg.outcome, msg.err)
		m.status = &statusLine{level: fb.Level, text: m.t.T(fb.Key)}
		return m, nil

	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" || key == "esc" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.submitting {
			return m, nil
		}

		switch key {
		case "ctrl+l":
			return m.selectTab(authscreen.TabLogin), nil
		case "ctrl+r":
			return m.selectTab(authscreen.TabRegister), nil
		case "tab", "down":
			return m.moveFocus(1), nil
		case "shift+tab", "up":
			return m.moveFocus(-1), nil
		case "left", "right":
			if m.focus == focusTabs {
				return m.selectTab(otherTab(m.screen.ActiveTab())), nil
			}
		case "enter":
			switch m.focus {
			case focusTabs, focusEmail:
				return m.moveFocus(1), nil
			default:
				return m.submit()
			}
		}
	}

	return m.updateInput(msg)
}

func otherTab(tab authscreen.Tab) authscreen.Tab {
	if tab == authscreen.TabLogin {
		return authscreen.TabRegister
	}
	return authscreen.TabLogin
}

func (m Model) selectTab(tab authscreen.Tab) Model {
	if err := m.screen.SelectTab(tab); err != nil {
		return m
	}
	m.syncFocus()
	return m
}

func (m Model) moveFocus(delta int) Model {
	m.focus = focus((int(m.focus) + delta + int(focusCount)) % int(focusCount))
	m.syncFocus()
	return m
}

// syncFocus focuses exactly the input under the cursor on the active tab.
func (m *Model) syncFocus() {
	active := m.screen.ActiveTab()
	for _, tab := range authscreen.Tabs {
		for field := range m.inputs[tab] {
			in := &m.inputs[tab][field]
			if tab == active && m.focusedField() == authscreen.Field(field) {
				in.Focus()
			} else {
				in.Blur()
			}
		}
	}
}

func (m Model) focusedField() authscreen.Field {
	switch m.focus {
	case focusEmail:
		return authscreen.FieldEmail
	case focusPassword:
		return authscreen.FieldPassword
	}
	return -1
}

// updateInput forwards msg to the focused input and mirrors its value into
// the screen unless a submission is running.
func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	field := m.focusedField()
	if field < 0 {
		return m, nil
	}
	tab := m.screen.ActiveTab()

	var cmd tea.Cmd
	m.inputs[tab][field], cmd = m.inputs[tab][field].Update(msg)
	if m.submitting {
		return m, cmd
	}

	value := m.inputs[tab][field].Value()
	if tab == authscreen.TabRegister {
		_ = m.screen.SetRegisterField(field, value)
	} else {
		_ = m.screen.SetLoginField(field, value)
	}
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	m.submitting = true
	m.status = nil
	screen, ctx := m.screen, m.ctx
	tab := screen.ActiveTab()
	return m, func() tea.Msg {
		outcome, err := screen.Submit(ctx)
		return submittedMsg{tab: tab, outcome: outcome, err: err}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	s := m.styles
	active := m.screen.ActiveTab()

	var b strings.Builder
	b.WriteString(s.Title.Render(m.t.T(i18n.Title)))
	b.WriteString("\n")
	b.WriteString(m.tabStrip())
	b.WriteString("\n\n")

	b.WriteString(m.field(i18n.FieldEmail, m.inputs[active][authscreen.FieldEmail], focusEmail))
	b.WriteString(m.field(i18n.FieldPassword, m.inputs[active][authscreen.FieldPassword], focusPassword))

	button := i18n.ButtonLogin
	if active == authscreen.TabRegister {
		button = i18n.ButtonRegister
	}
	label := m.t.T(button)
	if m.submitting {
		label += " …"
	}
	if m.focus == focusSubmit {
		b.WriteString(s.ButtonFocus.Render(label))
	} else {
		b.WriteString(s.Button.Render(label))
	}
	b.WriteString("\n\n")

	if m.status != nil {
		b.WriteString(s.Status[m.status.level].Render(m.status.text))
		b.WriteString("\n")
	}
	b.WriteString(s.Help.Render(m.t.T(i18n.TUIHelp)))

	return s.Card.Render(b.String()) + "\n"
}

func (m Model) tabStrip() string {
	labels := []i18n.Key{i18n.TabLogin, i18n.TabRegister}
	parts := make([]string, 0, len(labels))
	for _, tab := range authscreen.Tabs {
		style := m.styles.Tab
		if tab == m.screen.ActiveTab() {
			style = m.styles.ActiveTab
		}
		label := m.t.T(labels[tab])
		if m.focus == focusTabs && tab == m.screen.ActiveTab() {
			label = "‹ " + label + " ›"
		}
		parts = append(parts, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) field(label i18n.Key, in textinput.Model, f focus) string {
	labelStyle := m.styles.Label
	if m.focus == f {
		labelStyle = m.styles.Focused
	}
	return labelStyle.Render(m.t.T(label)) + "\n" + in.View() + "\n\n"
}
