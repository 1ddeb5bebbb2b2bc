package xmlmap

import (
	"fmt"

	"github.com/pkg/errors"
)

// Property is a typed, named unit of serializable state. Parse reads
// the matching node into the property value, Emit renders the value
// back to an equivalent node. Parse after Emit must round-trip.
type Property interface {
	TagName() string
	Parse(n *Node) error
	Emit() *Node
}

// FormatError reports a malformed value or a missing required field,
// with the offending tag name attached.
type FormatError struct {
	Tag string
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("element %q: %v", e.Tag, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// FormatErrorf builds a FormatError for the given tag. Concrete
// property implementations outside this package use it to report
// malformed values the same way the builtin properties do.
func FormatErrorf(tag string, format string, a ...interface{}) error {
	return &FormatError{Tag: tag, Err: errors.Errorf(format, a...)}
}

func formatErrorf(tag string, format string, a ...interface{}) error {
	return FormatErrorf(tag, format, a...)
}

// IsFormatError reports whether any error in err's chain is a
// FormatError.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}
