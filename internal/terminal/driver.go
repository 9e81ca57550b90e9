// SPDX-License-Identifier: MPL-2.0

package terminal

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// KindAlacritty is the Alacritty terminal. It is the zero value of Kind.
	KindAlacritty Kind = iota
	// KindUrxvt is rxvt-unicode.
	KindUrxvt
	// KindGnomeTerminal is GNOME Terminal.
	KindGnomeTerminal
	// KindXTerm is xterm.
	KindXTerm
	// KindCustom is a user-supplied invocation template.
	KindCustom

	customPrefix = "custom("
	customSuffix = ")"
)

// ErrInvalidDriver is the sentinel error wrapped by ParseError.
var ErrInvalidDriver = errors.New("invalid terminal")

var (
	// Alacritty launches alacritty.
	Alacritty = Driver{kind: KindAlacritty}
	// Urxvt launches urxvt.
	Urxvt = Driver{kind: KindUrxvt}
	// GnomeTerminal launches gnome-terminal.
	GnomeTerminal = Driver{kind: KindGnomeTerminal}
	// XTerm launches xterm.
	XTerm = Driver{kind: KindXTerm}

	// names maps the closed set of drivers to their identifiers.
	names = map[Kind]string{
		KindAlacritty:     "alacritty",
		KindUrxvt:         "urxvt",
		KindGnomeTerminal: "gnome-terminal",
		KindXTerm:         "xterm",
	}
)

type (
	// Kind identifies a driver variant.
	Kind int

	// Driver is one terminal emulator's invocation convention. Named drivers
	// carry no data; the custom driver carries a free-form template.
	// The zero value is Alacritty.
	Driver struct {
		kind     Kind
		template string
	}

	// ParseError is returned when an identifier names no known driver and is
	// not of the form custom(...). It wraps ErrInvalidDriver.
	ParseError struct {
		Value string
	}
)

// Custom returns a driver that carries template verbatim.
func Custom(template string) Driver {
	return Driver{kind: KindCustom, template: template}
}

// Default returns the driver used when nothing else is configured.
func Default() Driver { return Alacritty }

// Drivers returns the named drivers in declaration order.
func Drivers() []Driver {
	return []Driver{Alacritty, Urxvt, GnomeTerminal, XTerm}
}

// Names returns the identifiers of the named drivers.
func Names() []string {
	drivers := Drivers()
	out := make([]string, len(drivers))
	for i, d := range drivers {
		out[i] = d.String()
	}
	return out
}

// Parse converts an identifier into a Driver. Named drivers match exactly and
// case-sensitively; anything else must look like custom(<template>), in which
// case <template> is kept as-is. Whitespace is significant.
func Parse(s string) (Driver, error) {
	for kind, name := range names {
		if s == name {
			return Driver{kind: kind}, nil
		}
	}

	if strings.HasPrefix(s, customPrefix) && strings.HasSuffix(s, customSuffix) &&
		len(s) >= len(customPrefix)+len(customSuffix) {
		return Custom(s[len(customPrefix) : len(s)-len(customSuffix)]), nil
	}

	return Driver{}, &ParseError{Value: s}
}

// Format returns the identifier of d. Parse(Format(d)) == d for every driver.
func Format(d Driver) string {
	if d.kind == KindCustom {
		return customPrefix + d.template + customSuffix
	}
	return names[d.kind]
}

// Template returns the custom template, or "" for named drivers.
func (d Driver) Template() string { return d.template }

// IsCustom reports whether d is the custom-template driver.
func (d Driver) IsCustom() bool { return d.kind == KindCustom }

// String returns the identifier of d.
func (d Driver) String() string { return Format(d) }

// MarshalText implements encoding.TextMarshaler.
func (d Driver) MarshalText() ([]byte, error) {
	return []byte(Format(d)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Driver) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid terminal %q: must be one of %s, or of the form \"custom(.. your command here ..)\"",
		e.Value, strings.Join(quoted(Names()), ", "))
}

// Unwrap returns ErrInvalidDriver for errors.Is() compatibility.
func (e *ParseError) Unwrap() error { return ErrInvalidDriver }

func quoted(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = fmt.Sprintf("%q", s)
	}
	return out
}
