// SPDX-License-Identifier: MPL-2.0

package terminal

import (
	"errors"
	"strings"
	"testing"
)

func TestParse_NamedDrivers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Driver
	}{
		{"alacritty", Alacritty},
		{"urxvt", Urxvt},
		{"gnome-terminal", GnomeTerminal},
		{"xterm", XTerm},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if got.IsCustom() {
				t.Errorf("Parse(%q) reported custom", tt.in)
			}
		})
	}
}

func TestParse_Custom(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in           string
		wantTemplate string
	}{
		{"custom(st -d {path})", "st -d {path}"},
		{"custom()", ""},
		{"custom( padded )", " padded "},
		{"custom(nested(parens))", "nested(parens)"},
		{"custom())", ")"},
		{"custom(alacritty)", "alacritty"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.in, err)
			}
			if got.kind != KindCustom {
				t.Fatalf("Parse(%q).kind = %v, want KindCustom", tt.in, got.kind)
			}
			if got.Template() != tt.wantTemplate {
				t.Errorf("Parse(%q).Template() = %q, want %q", tt.in, got.Template(), tt.wantTemplate)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"Alacritty",
		"XTERM",
		" alacritty",
		"alacritty ",
		"konsole",
		"custom(",
		"custom)",
		"custom",
		"Custom(x)",
		" custom(x)",
		"custom(x) ",
		"custom(x",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(in)
			if err == nil {
				t.Fatalf("Parse(%q) expected error", in)
			}
			if !errors.Is(err, ErrInvalidDriver) {
				t.Errorf("Parse(%q) error does not wrap ErrInvalidDriver: %v", in, err)
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) || parseErr.Value != in {
				t.Errorf("Parse(%q) error = %#v, want *ParseError with Value set", in, err)
			}
			msg := err.Error()
			if !strings.Contains(msg, "alacritty") || !strings.Contains(msg, "custom(") {
				t.Errorf("Parse(%q) error message %q should describe both accepted forms", in, msg)
			}
		})
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	t.Parallel()

	drivers := append(Drivers(),
		Custom(""),
		Custom("st -d {path}"),
		Custom(")("),
		Custom("custom(inner)"),
	)

	for _, d := range drivers {
		got, err := Parse(Format(d))
		if err != nil {
			t.Errorf("Parse(Format(%#v)) returned error: %v", d, err)
			continue
		}
		if got != d {
			t.Errorf("Parse(Format(%#v)) = %#v", d, got)
		}
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	if Default() != Alacritty {
		t.Errorf("Default() = %v, want alacritty", Default())
	}
	var zero Driver
	if zero != Alacritty {
		t.Errorf("zero Driver = %v, want alacritty", zero)
	}
}

func TestNames(t *testing.T) {
	t.Parallel()

	want := []string{"alacritty", "urxvt", "gnome-terminal", "xterm"}
	got := Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDriver_TextMarshaling(t *testing.T) {
	t.Parallel()

	text, err := GnomeTerminal.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() returned error: %v", err)
	}
	if string(text) != "gnome-terminal" {
		t.Errorf("MarshalText() = %q, want gnome-terminal", text)
	}

	var d Driver
	if err := d.UnmarshalText([]byte("custom(foot -D {path})")); err != nil {
		t.Fatalf("UnmarshalText() returned error: %v", err)
	}
	if d != Custom("foot -D {path}") {
		t.Errorf("UnmarshalText() produced %#v", d)
	}

	before := Urxvt
	d = before
	if err := d.UnmarshalText([]byte("nope")); !errors.Is(err, ErrInvalidDriver) {
		t.Errorf("UnmarshalText(nope) error = %v, want ErrInvalidDriver", err)
	}
	if d != before {
		t.Errorf("failed UnmarshalText modified the driver: %#v", d)
	}
}
