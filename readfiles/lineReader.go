package readfiles

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/notargets/delaunayplot/mesh"
)

// lineReader hands out whitespace separated records one line at a time, tracking the line number for diagnostics
type lineReader struct {
	scanner *bufio.Scanner
	name    string
	line    int
}

func newLineReader(r io.Reader, name string) *lineReader {
	return &lineReader{
		scanner: bufio.NewScanner(r),
		name:    name,
	}
}

func (lr *lineReader) errorf(format string, args ...any) error {
	return &mesh.FormatError{Name: lr.name, Line: lr.line, Msg: fmt.Sprintf(format, args...)}
}

// getFields reads the next line and requires at least n fields on it, extra trailing fields are ignored
func (lr *lineReader) getFields(what string, n int) (fields []string, err error) {
	if !lr.scanner.Scan() {
		if err = lr.scanner.Err(); err != nil {
			return nil, &mesh.FormatError{Name: lr.name, Line: lr.line + 1, Msg: "read failed", Err: err}
		}
		return nil, &mesh.FormatError{Name: lr.name, Line: lr.line + 1,
			Msg: fmt.Sprintf("unexpected EOF reading %s", what)}
	}
	lr.line++
	fields = strings.Fields(lr.scanner.Text())
	if len(fields) < n {
		return nil, lr.errorf("invalid %s line: expected %d fields, got %d", what, n, len(fields))
	}
	return fields[:n], nil
}

// expectEnd consumes the rest of the input, only blank lines may follow the last record
func (lr *lineReader) expectEnd(last string) error {
	for lr.scanner.Scan() {
		lr.line++
		if strings.TrimSpace(lr.scanner.Text()) != "" {
			return lr.errorf("unexpected data after the last %s record", last)
		}
	}
	if err := lr.scanner.Err(); err != nil {
		return &mesh.FormatError{Name: lr.name, Line: lr.line + 1, Msg: "read failed", Err: err}
	}
	return nil
}

func (lr *lineReader) parseInts(what string, fields []string, out []int) (err error) {
	for i, f := range fields {
		if out[i], err = strconv.Atoi(f); err != nil {
			return &mesh.FormatError{Name: lr.name, Line: lr.line,
				Msg: fmt.Sprintf("invalid %s field %d", what, i+1), Err: err}
		}
	}
	return
}

func (lr *lineReader) parseFloats(what string, fields []string, out []float64) (err error) {
	for i, f := range fields {
		if out[i], err = strconv.ParseFloat(f, 64); err != nil {
			return &mesh.FormatError{Name: lr.name, Line: lr.line,
				Msg: fmt.Sprintf("invalid %s field %d", what, i+1), Err: err}
		}
	}
	return
}

// readCount reads a header line made of non-negative integers
func (lr *lineReader) readCount(what string, counts []int) (err error) {
	var (
		fields []string
	)
	if fields, err = lr.getFields(what, len(counts)); err != nil {
		return
	}
	if err = lr.parseInts(what, fields, counts); err != nil {
		return
	}
	for _, c := range counts {
		if c < 0 {
			return lr.errorf("invalid %s: negative count %d", what, c)
		}
	}
	return
}
