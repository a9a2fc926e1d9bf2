package product

import (
	"bufio"
	"io"
	"os"
	"strconv"
)

// InputRecord holds the two factors and the candidate product.
type InputRecord struct {
	A       int
	B       int
	Product int
}

// ReadInput parses the first three whitespace-separated integers of the file
// at path. Values must fit in 32 bits. Anything after the third integer is
// ignored.
func ReadInput(path string) (InputRecord, error) {
	if path == "" {
		return InputRecord{}, &EmptyArgumentError{}
	}

	f, err := os.Open(path)
	if err != nil {
		return InputRecord{}, &FileOpenError{Path: path, Err: err}
	}
	defer f.Close()

	words := &wordSplitter{}
	sc := bufio.NewScanner(f)
	sc.Split(words.split)

	values := make([]int, 0, 3)
	lastLine := 0
	for len(values) < 3 && sc.Scan() {
		lastLine = words.tokenLine
		n, convErr := strconv.ParseInt(sc.Text(), 10, 32)
		if convErr != nil {
			return InputRecord{}, &FileReadError{Path: path, Line: lastLine, Err: convErr}
		}
		values = append(values, int(n))
	}
	if err := sc.Err(); err != nil {
		return InputRecord{}, &FileReadError{Path: path, Line: words.newlines + 1, Err: err}
	}
	if len(values) < 3 {
		return InputRecord{}, &FileReadError{Path: path, Line: lastLine, Err: io.ErrUnexpectedEOF}
	}

	return InputRecord{A: values[0], B: values[1], Product: values[2]}, nil
}

// wordSplitter is a bufio.SplitFunc source that yields whitespace-separated
// words and remembers the 1-based line of the last one. Whitespace is consumed
// as soon as it is seen so that runs of any length never fill the buffer.
type wordSplitter struct {
	newlines  int
	tokenLine int
}

func (w *wordSplitter) split(data []byte, atEOF bool) (int, []byte, error) {
	start := 0
	for start < len(data) && isSpace(data[start]) {
		if data[start] == '\n' {
			w.newlines++
		}
		start++
	}

	for i := start; i < len(data); i++ {
		if isSpace(data[i]) {
			w.tokenLine = w.newlines + 1
			return i, data[start:i], nil
		}
	}

	if atEOF && start < len(data) {
		w.tokenLine = w.newlines + 1
		return len(data), data[start:], nil
	}
	return start, nil, nil
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
