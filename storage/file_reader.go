package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultMaxLineBytes bounds a single input line.
const DefaultMaxLineBytes = 1024 * 1024

// ErrLineTooLong is returned by ReadRow for a line longer than the reader's
// limit. The rest of that line is skipped, so reading can continue.
var ErrLineTooLong = errors.New("line too long")

// FileReader reads delimiter-separated lines. Each line is trimmed of
// surrounding whitespace and split on the delimiter; quoting and escaping
// are not supported.
type FileReader struct {
	closer    io.Closer
	reader    *bufio.Reader
	delimiter string
	line      int
}

// OpenFile opens path for reading. The returned error wraps the OS error so
// callers can test it with errors.Is(err, fs.ErrNotExist).
func OpenFile(path string, delimiter rune) (*FileReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("file: open %q: %w", path, err)
	}
	r := NewReader(f, delimiter)
	r.closer = f
	return r, nil
}

// NewReader wraps an already open stream with the default line limit.
func NewReader(r io.Reader, delimiter rune) *FileReader {
	return NewReaderSize(r, delimiter, DefaultMaxLineBytes)
}

// NewReaderSize wraps r, rejecting lines longer than maxLine bytes.
func NewReaderSize(r io.Reader, delimiter rune, maxLine int) *FileReader {
	return &FileReader{reader: bufio.NewReaderSize(r, maxLine), delimiter: string(delimiter)}
}

// ReadHeader returns the split first line. An empty stream yields io.EOF.
func (r *FileReader) ReadHeader() ([]string, error) {
	if r.line != 0 {
		return nil, errors.New("file: header already read")
	}
	return r.ReadRow()
}

func (r *FileReader) ReadRow() ([]string, error) {
	data, isPrefix, err := r.reader.ReadLine()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("file: read line %d: %w", r.line+1, err)
	}
	r.line++

	if isPrefix {
		if err := r.skipRestOfLine(); err != nil {
			return nil, fmt.Errorf("file: read line %d: %w", r.line, err)
		}
		return nil, fmt.Errorf("file: line %d: %w", r.line, ErrLineTooLong)
	}
	return strings.Split(strings.TrimSpace(string(data)), r.delimiter), nil
}

func (r *FileReader) skipRestOfLine() error {
	for {
		_, isPrefix, err := r.reader.ReadLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if !isPrefix {
			return nil
		}
	}
}

func (r *FileReader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
