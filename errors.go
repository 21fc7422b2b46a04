package rasterbuilder

import "fmt"

// ParseError reports an input file that could not be read or decoded into a
// valid layer set.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// UnsupportedProfileError reports a layer count that matches no known color
// profile. Only 1 (grayscale) and 3 (YCbCr) are supported.
type UnsupportedProfileError struct {
	Layers int
}

func (e *UnsupportedProfileError) Error() string {
	return fmt.Sprintf("unsupported color profile: %d layers (want 1 or 3)", e.Layers)
}
