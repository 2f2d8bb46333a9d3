package content

import "errors"

// Content lookup errors. None of them is fatal: callers log them and abort
// the current operation, leaving whatever is on screen untouched.
var (
	// ErrNullContent scenario or step data is absent.
	ErrNullContent = errors.New("null content")

	// ErrOutOfRange chapter or section index is beyond the configured content.
	ErrOutOfRange = errors.New("index out of range")

	// ErrContentNotFound chapter+section combination has no scenario bound.
	ErrContentNotFound = errors.New("content not found")
)
