// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE parsing utilities.
//
// Decoding a user document follows three steps:
//
//  1. Compile the embedded schema
//  2. Compile user data and unify it with a schema definition
//  3. Validate and decode into a Go value
//
// # Usage
//
//	//go:embed config_schema.cue
//	var schema []byte
//
//	values, err := cueutil.Decode[map[string]any](schema, data, "#Config", "config.cue")
//	if err != nil {
//	    return nil, err // error names the file and the CUE path
//	}
package cueutil
