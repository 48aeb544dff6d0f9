package graph

import (
	"errors"
	"fmt"
)

// ErrNoInput is returned when no input file was given or a pattern matched
// nothing.
var ErrNoInput = errors.New("no input files")

// ErrUnsupportedFormat is returned for a format missing from FormatRegistry.
var ErrUnsupportedFormat = errors.New("unsupported RDF format")

// ParseError reports a file that could not be opened or parsed.
type ParseError struct {
	Path   string
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parse %s: %v", e.Format, e.Err)
	}
	return fmt.Sprintf("parse %s (%s): %v", e.Path, e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
