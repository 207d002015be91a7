package mesh

import "fmt"

// FormatError reports a missing, truncated or malformed input file
type FormatError struct {
	Name string // File name
	Line int    // 1-based line number, zero when the error is not tied to a line
	Msg  string
	Err  error
}

func (e *FormatError) Error() string {
	var s string
	if e.Line > 0 {
		s = fmt.Sprintf("%s:%d: %s", e.Name, e.Line, e.Msg)
	} else {
		s = fmt.Sprintf("%s: %s", e.Name, e.Msg)
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *FormatError) Unwrap() error { return e.Err }

// GeometryError reports indices outside the mesh or a point set too small to plot
type GeometryError struct {
	Name string
	Msg  string
}

func (e *GeometryError) Error() string {
	if e.Name == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Name, e.Msg)
}
