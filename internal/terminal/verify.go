// SPDX-License-Identifier: MPL-2.0

package terminal

import (
	"errors"
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// ErrMalformedCommand is returned by VerifyCommand when a command is not a
// single plain shell command.
var ErrMalformedCommand = errors.New("malformed command")

// VerifyCommand parses command as POSIX shell and checks that it is exactly
// one simple command with no redirections, background operator or expansions.
func VerifyCommand(command string) error {
	parser := syntax.NewParser(syntax.Variant(syntax.LangPOSIX))
	file, err := parser.Parse(strings.NewReader(command), "command")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedCommand, err)
	}

	if len(file.Stmts) != 1 {
		return fmt.Errorf("%w: want 1 statement, got %d", ErrMalformedCommand, len(file.Stmts))
	}

	stmt := file.Stmts[0]
	if _, ok := stmt.Cmd.(*syntax.CallExpr); !ok {
		return fmt.Errorf("%w: not a simple command", ErrMalformedCommand)
	}
	if stmt.Background || stmt.Negated || len(stmt.Redirs) > 0 {
		return fmt.Errorf("%w: unexpected operator or redirection", ErrMalformedCommand)
	}

	var expansion syntax.Node
	syntax.Walk(stmt, func(node syntax.Node) bool {
		switch node.(type) {
		case *syntax.CmdSubst, *syntax.ParamExp, *syntax.ArithmExp, *syntax.ProcSubst:
			if expansion == nil {
				expansion = node
			}
			return false
		}
		return true
	})
	if expansion != nil {
		return fmt.Errorf("%w: unexpected expansion at %s", ErrMalformedCommand, expansion.Pos())
	}

	return nil
}
