// Package lfterr defines the error kinds shared by the lftgen pipeline.
// Callers branch on Kind rather than parsing message text.
package lfterr

import (
	"errors"
	"fmt"
)

// Kind classifies a pipeline failure.
type Kind uint8

const (
	KindUnknown Kind = iota
	// KindConfiguration: invalid backend configuration, e.g. the remote
	// variant constructed without a credential.
	KindConfiguration
	// KindSetup: local model load failed even with the fallback checkpoint.
	KindSetup
	// KindInference: the completion call failed, either a non-2xx response
	// or a transport-level fault.
	KindInference
	// KindPersistence: writing a generated artifact to disk failed.
	KindPersistence
	// KindGeneration is the umbrella kind returned at the service boundary,
	// always wrapping one of the kinds above.
	KindGeneration
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindSetup:
		return "setup"
	case KindInference:
		return "inference"
	case KindPersistence:
		return "persistence"
	case KindGeneration:
		return "generation"
	default:
		return "unknown"
	}
}

// Error is the single error type produced by the lftgen core.
type Error struct {
	Kind Kind
	// Status is the HTTP status code for inference failures, 0 otherwise.
	Status int
	// Transport marks inference failures that happened below HTTP
	// (DNS, timeout, connection reset).
	Transport bool
	Msg       string
	Err       error
}

func (e *Error) Error() string {
	switch {
	case e.Msg != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	case e.Msg != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error { return e.Err }

// New creates an Error with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an underlying error.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the kind of the outermost *Error in err's chain,
// or KindUnknown when there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// CauseKind walks past the KindGeneration umbrella and returns the kind of
// the underlying failure. For a bare non-umbrella *Error it behaves like
// KindOf.
func CauseKind(err error) Kind {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return KindUnknown
		}
		if e.Kind != KindGeneration {
			return e.Kind
		}
		err = e.Err
	}
	return KindUnknown
}
