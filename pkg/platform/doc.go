// SPDX-License-Identifier: MPL-2.0

// Package platform centralizes operating-system checks.
//
// i3ctl talks to i3 or sway over a Unix socket, so it only runs on Unix-like
// systems; Check rejects everything else up front.
package platform
