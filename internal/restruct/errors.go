package restruct

import "fmt"

// InputError reports a document that is missing, unreadable, or of an
// unsupported format. Fatal; no partial output is written.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input %s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// RangeError reports invalid page bounds or a malformed start-header
// designator. A start header that is simply never encountered is not
// an error; it yields zero sections.
type RangeError struct {
	Msg string
}

func (e *RangeError) Error() string { return "range: " + e.Msg }

// PatternError reports a syntactically invalid heading pattern,
// raised before any span is processed.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("heading pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }
