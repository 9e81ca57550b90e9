// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// DefaultMaxFileSize bounds the size of user documents (1 MiB).
const DefaultMaxFileSize int64 = 1 << 20

// Decode compiles schema, unifies data with the schema definition at
// definition (e.g. "#Config") and decodes the result into a T.
// filename only appears in error messages.
func Decode[T any](schema, data []byte, definition, filename string) (T, error) {
	var result T

	if err := CheckFileSize(data, DefaultMaxFileSize, filename); err != nil {
		return result, err
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileBytes(schema)
	if schemaValue.Err() != nil {
		return result, fmt.Errorf("internal error: failed to compile schema: %w", schemaValue.Err())
	}

	root := schemaValue.LookupPath(cue.ParsePath(definition))
	if root.Err() != nil {
		return result, fmt.Errorf("internal error: schema definition %s not found: %w", definition, root.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(filename))
	if userValue.Err() != nil {
		return result, FormatError(userValue.Err(), filename)
	}

	unified := root.Unify(userValue)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return result, FormatError(err, filename)
	}

	if err := unified.Decode(&result); err != nil {
		return result, FormatError(err, filename)
	}

	return result, nil
}
