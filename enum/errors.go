// SPDX-License-Identifier: MIT

package enum

import "errors"

// Use errors.Is against these sentinels; messages carry the offending value and type.
var (
	// ErrInvalidArgument classifies set construction with a missing or unknown binding.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidValue classifies lookups of a payload the enum type does not declare.
	ErrInvalidValue = errors.New("invalid enum value")

	// ErrUnexpectedValue classifies attaching a value of the wrong type to a bound set.
	ErrUnexpectedValue = errors.New("unexpected enum value")

	// ErrBadCall classifies operations that need a set bound to a declared type.
	ErrBadCall = errors.New("bad call")

	// ErrNoSuchConstant classifies accessor lookups of an undeclared key.
	ErrNoSuchConstant = errors.New("no such enum constant")

	// ErrInvalidDeclaration classifies malformed type or contract declarations.
	ErrInvalidDeclaration = errors.New("invalid enum declaration")

	// ErrDuplicateType classifies a second declaration under an already registered name.
	ErrDuplicateType = errors.New("duplicate enum type")
)
