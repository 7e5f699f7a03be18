package domain

import "errors"

var (
	// ErrInvalidInput marks a precondition violation detected before any
	// stepping begins.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnreachable means no heading in either rotation fan clears the
	// no-fly zones while staying inside the confinement area.
	ErrUnreachable = errors.New("target unreachable")
)
