package product

import (
	"errors"
	"fmt"
)

// EmptyArgumentError reports an empty file name or result.
type EmptyArgumentError struct{}

func (e *EmptyArgumentError) Error() string {
	return "Error: empty argument"
}

// FileOpenError reports a file that could not be opened in the requested mode.
type FileOpenError struct {
	Path string
	Err  error
}

func (e *FileOpenError) Error() string {
	return "Error: unable to open the file " + e.Path
}

func (e *FileOpenError) Unwrap() error { return e.Err }

// FileReadError reports input that could not be parsed into three integers.
// Line is the 1-based line where parsing stopped, 0 for an empty file.
type FileReadError struct {
	Path string
	Line int
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("Error: unable to read the file %s at the line %d", e.Path, e.Line)
}

func (e *FileReadError) Unwrap() error { return e.Err }

type FileWriteError struct {
	Path string
	Err  error
}

func (e *FileWriteError) Error() string {
	return "Error: unable to write file " + e.Path
}

func (e *FileWriteError) Unwrap() error { return e.Err }

// OutOfRangeError reports a value outside the closed interval [Begin, End].
type OutOfRangeError struct {
	Value int
	Begin int
	End   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("Error: the argument %d don't hit to the range [%d, %d]", e.Value, e.Begin, e.End)
}

// IsKnown reports whether err belongs to the package's error taxonomy.
func IsKnown(err error) bool {
	var (
		emptyErr *EmptyArgumentError
		openErr  *FileOpenError
		readErr  *FileReadError
		writeErr *FileWriteError
		rangeErr *OutOfRangeError
	)
	return errors.As(err, &emptyErr) ||
		errors.As(err, &openErr) ||
		errors.As(err, &readErr) ||
		errors.As(err, &writeErr) ||
		errors.As(err, &rangeErr)
}
