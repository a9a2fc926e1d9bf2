package product

import (
	"io"
	"os"
)

// WriteResult replaces the content of the file at path with result and a
// trailing newline.
func WriteResult(path, result string) (err error) {
	if path == "" || result == "" {
		return &EmptyArgumentError{}
	}

	f, err := os.Create(path)
	if err != nil {
		return &FileOpenError{Path: path, Err: err}
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = &FileWriteError{Path: path, Err: closeErr}
		}
	}()

	if _, werr := io.WriteString(f, result+"\n"); werr != nil {
		return &FileWriteError{Path: path, Err: werr}
	}
	return nil
}
