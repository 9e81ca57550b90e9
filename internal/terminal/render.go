// SPDX-License-Identifier: MPL-2.0

package terminal

import (
	"errors"
	"fmt"

	"github.com/i3ctl/i3ctl/internal/sanitize"

	"github.com/charmbracelet/log"
)

// ErrNotImplemented is wrapped by RenderError for drivers that cannot render yet.
var ErrNotImplemented = errors.New("not implemented")

// RenderError is returned when a driver cannot produce a launch command.
type RenderError struct {
	Driver Driver
	Reason error
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	return fmt.Sprintf("cannot render terminal %s: %v", e.Driver, e.Reason)
}

// Unwrap returns the reason, so errors.Is(err, ErrNotImplemented) works.
func (e *RenderError) Unwrap() error { return e.Reason }

// Render returns the shell command that starts d in path. The path is placed
// inside single quotes. sanitize.Path can only be built by sanitize.Sanitize,
// which guarantees it holds no single quote.
//
// xterm cannot be given a working directory with the quoting i3 allows, so it
// is started without one and a warning is logged. Custom templates are not
// rendered.
func (d Driver) Render(path sanitize.Path, logger *log.Logger) (string, error) {
	switch d.kind {
	case KindAlacritty:
		return fmt.Sprintf("alacritty --working-directory '%s'", path.String()), nil
	case KindUrxvt:
		return fmt.Sprintf("urxvt --chdir '%s'", path.String()), nil
	case KindGnomeTerminal:
		return fmt.Sprintf("gnome-terminal --working-directory='%s'", path.String()), nil
	case KindXTerm:
		if logger != nil {
			logger.Warn("cannot pass a working directory to xterm through i3, opening it without one",
				"path", path.String())
		}
		return "xterm", nil
	case KindCustom:
		return "", &RenderError{
			Driver: d,
			Reason: fmt.Errorf("custom terminal templates are %w", ErrNotImplemented),
		}
	default:
		return "", &RenderError{Driver: d, Reason: fmt.Errorf("unknown terminal kind %d", d.kind)}
	}
}
