package domain

import (
	"fmt"
	"log/slog"
)

// Redacted is what a Password prints as, whatever the verb or encoder.
const Redacted = "[REDACTED]"

// Password holds a raw password. It cannot be turned into a loggable or
// printable representation: fmt, slog, encoding/json and encoding/text all
// see Redacted. Only collaborator adapters should call Reveal.
type Password struct {
	value string
}

// NewPassword wraps a raw password.
func NewPassword(raw string) Password {
	return Password{value: raw}
}

// Reveal returns the raw password for transmission to a collaborator.
func (p Password) Reveal() string {
	return p.value
}

// IsEmpty reports whether the password is empty without revealing it.
func (p Password) IsEmpty() bool {
	return p.value == ""
}

// String implements fmt.Stringer.
func (p Password) String() string {
	return Redacted
}

// GoString implements fmt.GoStringer so %#v does not dump the struct.
func (p Password) GoString() string {
	return Redacted
}

// Format implements fmt.Formatter and covers every verb, including %x and %q.
func (p Password) Format(f fmt.State, verb rune) {
	_, _ = f.Write([]byte(Redacted))
}

// LogValue implements slog.LogValuer.
func (p Password) LogValue() slog.Value {
	return slog.StringValue(Redacted)
}

// MarshalJSON implements json.Marshaler.
func (p Password) MarshalJSON() ([]byte, error) {
	return []byte(`"` + Redacted + `"`), nil
}

// MarshalText implements encoding.TextMarshaler.
func (p Password) MarshalText() ([]byte, error) {
	return []byte(Redacted), nil
}
