// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"bytes"

	"github.com/charmbracelet/log"
)

// NewLogger returns a debug-level logger that writes plain text into the
// returned buffer.
func NewLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{
		Level: log.DebugLevel,
	})
	return logger, &buf
}
