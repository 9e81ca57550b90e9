// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"errors"
	"fmt"
)

// OS name constants for runtime.GOOS comparisons.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// ErrUnsupported is returned on operating systems i3ctl does not support.
var ErrUnsupported = errors.New("unsupported operating system")

// Check returns an error wrapping ErrUnsupported when goos cannot run i3ctl.
func Check(goos string) error {
	if goos == Windows {
		return fmt.Errorf("%w: Windows is not supported", ErrUnsupported)
	}
	return nil
}
