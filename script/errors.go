// SPDX-License-Identifier: MIT

package script

import "errors"

var (
	// ErrSyntax indicates wrong arity or an unparsable argument.
	ErrSyntax = errors.New("script: syntax error")
	// ErrUnknownCommand indicates an unrecognised verb.
	ErrUnknownCommand = errors.New("script: unknown command")
	// ErrUnknownName indicates a vertex or edge name never defined.
	ErrUnknownName = errors.New("script: unknown name")
	// ErrDuplicateName indicates a vertex name already in use.
	ErrDuplicateName = errors.New("script: name already defined")
	// ErrRejected indicates the graph refused the operation.
	ErrRejected = errors.New("script: operation rejected")
)
