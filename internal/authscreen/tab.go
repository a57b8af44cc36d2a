package authscreen

import (
	"errors"
	"fmt"
)

// Tab selects which of the two forms is visible.
type Tab int

const (
	TabLogin    Tab = 0
	TabRegister Tab = 1
)

// Tabs lists every tab in display order.
var Tabs = []Tab{TabLogin, TabRegister}

var (
	ErrUnknownTab   = errors.New("unknown tab")
	ErrUnknownField = errors.New("unknown field")
)

// Valid reports whether t is one of the two tabs.
func (t Tab) Valid() bool {
	return t == TabLogin || t == TabRegister
}

// Index returns the tab's position, as used in element ids.
func (t Tab) Index() int {
	return int(t)
}

// String returns the name used in URLs and flags.
func (t Tab) String() string {
	switch t {
	case TabLogin:
		return "login"
	case TabRegister:
		return "register"
	}
	return fmt.Sprintf("tab(%d)", int(t))
}

// ParseTab accepts a tab name or index. Empty input means the login tab.
func ParseTab(s string) (Tab, error) {
	switch s {
	case "", "login", "0":
		return TabLogin, nil
	case "register", "1":
		return TabRegister, nil
	}
	return TabLogin, fmt.Errorf("%w: %q", ErrUnknownTab, s)
}

// Field names one input of a form.
type Field int

const (
	FieldEmail Field = iota
	FieldPassword
)

// ParseField maps a form input name to a Field.
func ParseField(s string) (Field, error) {
	switch s {
	case "email":
		return FieldEmail, nil
	case "password":
		return FieldPassword, nil
	}
	return FieldEmail, fmt.Errorf("%w: %q", ErrUnknownField, s)
}

func (f Field) String() string {
	switch f {
	case FieldEmail:
		return "email"
	case FieldPassword:
		return "password"
	}
	return fmt.Sprintf("field(%d)", int(f))
}
