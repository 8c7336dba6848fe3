package securefile

import (
	"errors"
	"fmt"
)

// Kind classifies accessor failures.
type Kind int

const (
	// KindAccessDenied marks a policy violation: bad extension, oversized
	// file, unsafe filename, or an I/O fault other than absence.
	KindAccessDenied Kind = iota
	// KindNotFound marks a path that does not exist.
	KindNotFound
	// KindParse marks content that is not a well-formed JSON object.
	KindParse
)

func (k Kind) String() string {
	switch k {
	case KindAccessDenied:
		return "access denied"
	case KindNotFound:
		return "not found"
	case KindParse:
		return "parse error"
	default:
		return "unknown"
	}
}

// Error is the only error type the accessor returns.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the access error kind carried by err, if any.
func KindOf(err error) (Kind, bool) {
	var accessErr *Error
	if errors.As(err, &accessErr) {
		return accessErr.Kind, true
	}
	return 0, false
}

// IsNotFound reports whether err is an accessor not-found failure.
func IsNotFound(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindNotFound
}
