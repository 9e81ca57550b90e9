// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError records what i3ctl was doing, which resource was involved and
// how to fix it. Errors may also point at an Issue: a Markdown page rendered
// with glamour that explains a recurring problem in more depth.
package issue
