// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"errors"
	"testing"
)

func TestCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		goos    string
		wantErr bool
	}{
		{Linux, false},
		{Darwin, false},
		{"freebsd", false},
		{"openbsd", false},
		{Windows, true},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			t.Parallel()

			err := Check(tt.goos)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Check(%q) error = %v, wantErr %v", tt.goos, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrUnsupported) {
				t.Errorf("Check(%q) error does not wrap ErrUnsupported: %v", tt.goos, err)
			}
		})
	}
}
