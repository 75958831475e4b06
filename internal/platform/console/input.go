// Package console runs a game as a line-oriented terminal program: it reads
// one command per line and prints the board after every turn.
package console

import (
	"bufio"
	"errors"
	"io"
)

// InputSource yields raw command lines. ReadLine blocks until a line is
// available; any error ends the session.
type InputSource interface {
	ReadLine() (string, error)
}

// LineReader reads newline-terminated lines from an io.Reader.
type LineReader struct {
	r *bufio.Reader
}

// NewLineReader wraps r in a buffered line reader.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// ReadLine returns the next line including its newline. A final line without
// a newline is returned before io.EOF.
func (l *LineReader) ReadLine() (string, error) {
	line, err := l.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", err
	}
	return line, nil
}
