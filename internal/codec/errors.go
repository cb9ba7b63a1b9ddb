package codec

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies decode failures.
type ErrorKind string

// Decode error kinds.
const (
	// ErrMalformedShape: wrong JSON kind, wrong array arity, unknown tag or
	// missing field.
	ErrMalformedShape ErrorKind = "MALFORMED_SHAPE"

	// ErrUnknownFormatVersion: the format version is not supported by the
	// dialect being decoded.
	ErrUnknownFormatVersion ErrorKind = "UNKNOWN_FORMAT_VERSION"

	// ErrFieldTypeMismatch: a field holds a node of another kind (a value
	// tag where a type is expected) or a scalar outside its domain.
	ErrFieldTypeMismatch ErrorKind = "FIELD_TYPE_MISMATCH"
)

// Error is a decode error with the JSON location it was raised at.
type Error struct {
	Kind    ErrorKind
	Path    []string // JSON pointer segments, outermost first
	Tag     string   // tag of the enclosing node, if known
	Message string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(strings.ToLower(strings.ReplaceAll(string(e.Kind), "_", " ")))
	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(e.Pointer())
	}
	if e.Tag != "" {
		fmt.Fprintf(&b, " (tag %q)", e.Tag)
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	return b.String()
}

// Pointer renders Path as a JSON pointer ("" for the document root).
func (e *Error) Pointer() string {
	if len(e.Path) == 0 {
		return ""
	}
	escaped := make([]string, len(e.Path))
	for i, seg := range e.Path {
		seg = strings.ReplaceAll(seg, "~", "~0")
		escaped[i] = strings.ReplaceAll(seg, "/", "~1")
	}
	return "/" + strings.Join(escaped, "/")
}

// Malformed creates an ErrMalformedShape error.
func Malformed(format string, args ...any) *Error {
	return &Error{Kind: ErrMalformedShape, Message: fmt.Sprintf(format, args...)}
}

// Mismatch creates an ErrFieldTypeMismatch error.
func Mismatch(format string, args ...any) *Error {
	return &Error{Kind: ErrFieldTypeMismatch, Message: fmt.Sprintf(format, args...)}
}

// UnknownVersion creates an ErrUnknownFormatVersion error.
func UnknownVersion(format string, args ...any) *Error {
	return &Error{Kind: ErrUnknownFormatVersion, Message: fmt.Sprintf(format, args...)}
}

// WithTag returns e with Tag set.
func (e *Error) WithTag(tag string) *Error {
	ne := *e
	ne.Tag = tag
	return &ne
}

// At prefixes the path of a decode error with segment. Errors that are not
// decode errors are wrapped with the segment as context.
func At(err error, segment any) error {
	if err == nil {
		return nil
	}
	seg := fmt.Sprint(segment)
	var e *Error
	if errors.As(err, &e) {
		ne := *e
		ne.Path = append([]string{seg}, e.Path...)
		return &ne
	}
	return fmt.Errorf("%s: %w", seg, err)
}

// Tagged sets the enclosing tag on a decode error that has none yet.
func Tagged(err error, tag string) error {
	var e *Error
	if errors.As(err, &e) && e.Tag == "" {
		return e.WithTag(tag)
	}
	return err
}

// KindOf returns the kind of a decode error, or "" if err is not one.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsMalformedShape reports whether err is an ErrMalformedShape error.
func IsMalformedShape(err error) bool { return KindOf(err) == ErrMalformedShape }

// IsUnknownFormatVersion reports whether err is an ErrUnknownFormatVersion error.
func IsUnknownFormatVersion(err error) bool { return KindOf(err) == ErrUnknownFormatVersion }

// IsFieldTypeMismatch reports whether err is an ErrFieldTypeMismatch error.
func IsFieldTypeMismatch(err error) bool { return KindOf(err) == ErrFieldTypeMismatch }
