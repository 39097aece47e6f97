package main

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies slicing failures.
type Kind int

const (
	KindUnknown Kind = iota
	KindSourceNotFound
	KindDecodeFailure
	KindGridTooSmall
	KindDirectoryCreateFailure
	KindFrameWriteFailure
	KindResourceFailure
)

func (k Kind) String() string {
	switch k {
	case KindSourceNotFound:
		return "source not found"
	case KindDecodeFailure:
		return "decode failure"
	case KindGridTooSmall:
		return "grid too small"
	case KindDirectoryCreateFailure:
		return "directory create failure"
	case KindFrameWriteFailure:
		return "frame write failure"
	case KindResourceFailure:
		return "resource failure"
	default:
		return "unknown"
	}
}

// SliceError is returned for any failure while slicing a set.
// Animation is empty and Frame is -1 when the failure
// is not tied to a particular frame.
type SliceError struct {
	Kind      Kind
	Set       string
	Animation string
	Frame     int
	Err       error
}

func (e *SliceError) Error() string {
	where := fmt.Sprintf("set %q", e.Set)

	if e.Animation != "" {
		where += fmt.Sprintf(", animation %q", e.Animation)
	}

	if e.Frame >= 0 {
		where += fmt.Sprintf(", frame %d", e.Frame)
	}

	return fmt.Sprintf("%s (%s): %v", e.Kind, where, e.Err)
}

// Cause returns the underlying error for errors.Cause.
func (e *SliceError) Cause() error { return e.Err }

func (e *SliceError) Unwrap() error { return e.Err }

func setError(kind Kind, set string, err error) error {
	return &SliceError{Kind: kind, Set: set, Frame: -1, Err: err}
}

func frameError(kind Kind, set, anim string, frame int, err error) error {
	return &SliceError{Kind: kind, Set: set, Animation: anim, Frame: frame, Err: err}
}

// KindOf reports the kind of the first SliceError in err's chain.
func KindOf(err error) Kind {
	var se *SliceError

	if errors.As(err, &se) {
		return se.Kind
	}

	return KindUnknown
}
