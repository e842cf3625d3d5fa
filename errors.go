package vgplot

import "fmt"

// ParseError indicates a malformed style/label string.
type ParseError struct {
	Input string
	Pos   int
	Char  rune
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse style %q: unrecognized character %q at position %d",
		e.Input, e.Char, e.Pos)
}

// FormatError indicates a data file whose column count changes mid-file.
type FormatError struct {
	File string
	Line int
	Want int
	Got  int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s:%d: got %d columns, want %d", e.File, e.Line, e.Got, e.Want)
}

// OutOfBoundsError indicates a subplot index outside its grid.
type OutOfBoundsError struct {
	Index      int
	Rows, Cols int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("subplot index %d outside %dx%d grid", e.Index, e.Rows, e.Cols)
}

// UnrecognizedOptionError indicates an unknown keyword token.
type UnrecognizedOptionError struct {
	Option string
}

func (e *UnrecognizedOptionError) Error() string {
	return fmt.Sprintf("unrecognized option %q", e.Option)
}

// ConfigurationError indicates an ambiguous or ill-typed argument.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string {
	return e.Msg
}

func configErrorf(f string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{Msg: fmt.Sprintf(f, args...)}
}

// MissingCapabilityError indicates that no export terminal could be
// determined from a filename and none was given explicitly.
type MissingCapabilityError struct {
	Path string
}

func (e *MissingCapabilityError) Error() string {
	return fmt.Sprintf("no terminal known for %q; pass a format explicitly", e.Path)
}
