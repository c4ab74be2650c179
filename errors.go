package snudown

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyInput           = errors.New("input cannot be empty")
	ErrCompile              = errors.New("markdown compilation failed")
	ErrSanitize             = errors.New("HTML sanitization failed")
	ErrInvalidMaxCharacters = errors.New("max characters must be >= 0")
	ErrNilCompiler          = errors.New("compiler cannot be nil")

	// Internal to extraction; logged, never returned by Extract.
	ErrFragmentParse = errors.New("failed to parse HTML fragment")
)
