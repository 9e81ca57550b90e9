// SPDX-License-Identifier: MPL-2.0

package sanitize

import (
	"errors"
	"strings"
	"testing"

	"github.com/i3ctl/i3ctl/internal/testutil"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		want     string
		wantWarn bool
	}{
		{"plain path", "/home/alice/proj", "/home/alice/proj", false},
		{"root", "/", "/", false},
		{"space warns but passes", "/home/alice/my proj", "/home/alice/my proj", true},
		{"newline escaped", "/tmp/a\nb", `/tmp/a\nb`, true},
		{"tab escaped", "/tmp/a\tb", `/tmp/a\tb`, true},
		{"double quote escaped", `/tmp/a"b`, `/tmp/a\"b`, false},
		{"backslash escaped", `/tmp/a\b`, `/tmp/a\\b`, false},
		{"unicode passes through", "/tmp/café", "/tmp/café", true},
		{"dollar untouched", "/tmp/$HOME", "/tmp/$HOME", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			logger, buf := testutil.NewLogger()
			got, err := Sanitize(tt.raw, logger)
			if err != nil {
				t.Fatalf("Sanitize(%q) returned error: %v", tt.raw, err)
			}
			if got.String() != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.raw, got.String(), tt.want)
			}
			warned := strings.Contains(buf.String(), "outside printable ASCII")
			if warned != tt.wantWarn {
				t.Errorf("Sanitize(%q) warned = %v, want %v (log: %q)", tt.raw, warned, tt.wantWarn, buf.String())
			}
		})
	}
}

func TestSanitize_RejectsSingleQuote(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"/tmp/a'b", "'", "/home/o'neil/ü", "/home/o'neil/ü\n"} {
		logger, buf := testutil.NewLogger()
		got, err := Sanitize(raw, logger)
		if err == nil {
			t.Fatalf("Sanitize(%q) expected error", raw)
		}
		if got != (Path{}) {
			t.Errorf("Sanitize(%q) = %q on error, want the zero Path", raw, got)
		}
		// Rejection comes before the non-ASCII check, so nothing is logged.
		if buf.Len() != 0 {
			t.Errorf("Sanitize(%q) logged %q before rejecting", raw, buf.String())
		}
		if !errors.Is(err, ErrSingleQuote) {
			t.Errorf("Sanitize(%q) error does not wrap ErrSingleQuote: %v", raw, err)
		}
		var sanErr *Error
		if !errors.As(err, &sanErr) || sanErr.Raw != raw {
			t.Errorf("Sanitize(%q) error = %#v, want *Error with Raw set", raw, err)
		}
	}
}

func TestSanitize_OutputHasNoRawControlCharacters(t *testing.T) {
	t.Parallel()

	raw := "/a\nb\tc\"d\\e\n\n\t"
	got, err := Sanitize(raw, nil)
	if err != nil {
		t.Fatalf("Sanitize returned error: %v", err)
	}
	s := got.String()
	for _, forbidden := range []string{"\n", "\t", "'"} {
		if strings.Contains(s, forbidden) {
			t.Errorf("sanitized path %q still contains %q", got, forbidden)
		}
	}
	// Every double quote must be preceded by a backslash.
	for i := 0; i < len(s); i++ {
		if s[i] == '"' && (i == 0 || s[i-1] != '\\') {
			t.Errorf("unescaped double quote at %d in %q", i, s)
		}
	}
	want := `/a\nb\tc\"d\\e\n\n\t`
	if s != want {
		t.Errorf("Sanitize(%q) = %q, want %q", raw, s, want)
	}
}

func TestPath_ZeroValue(t *testing.T) {
	t.Parallel()

	var p Path
	if p.String() != "" {
		t.Errorf("zero Path = %q, want empty", p.String())
	}
}

func TestIsASCIIGraphic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"/usr/local", true},
		{"~!@#", true},
		{"a b", false},
		{"a\x7f", false},
		{"ñ", false},
	}
	for _, tt := range tests {
		if got := IsASCIIGraphic(tt.in); got != tt.want {
			t.Errorf("IsASCIIGraphic(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEscapeControl_PanicsOnSingleQuote(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("escapeControl did not panic on single quote")
		}
	}()
	_ = escapeControl("a'b")
}
