// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate and ensuring consistent error handling.
//
// Common helpers include environment lookups backed by maps (MapEnv), in-memory
// config files (MustWriteFile), working-directory changes (MustChdir) and
// loggers that capture output for assertions (NewLogger).
package testutil
