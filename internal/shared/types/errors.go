package types

import (
	"errors"
	"fmt"
)

// Kind classifies a failure surfaced by an operation
type Kind int

const (
	KindOperationError Kind = iota
	KindUnknownCommand
	KindInvalidInput
	KindSourceNotFound
	KindDestDirCreateFailed
	KindTransferFailed
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindUnknownCommand:
		return "unknown command"
	case KindInvalidInput:
		return "invalid input"
	case KindSourceNotFound:
		return "source not found"
	case KindDestDirCreateFailed:
		return "destination directory create failed"
	case KindTransferFailed:
		return "transfer failed"
	default:
		return "operation error"
	}
}

// Error is a categorised operation failure
type Error struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so callers can write
// errors.Is(err, &types.Error{Kind: types.KindSourceNotFound}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Op == "" && t.Path == "" && t.Err == nil
}

// Wrap attaches a kind to err. A nil err stays nil.
func Wrap(kind Kind, op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

// InvalidInput reports an argument that failed validation
func InvalidInput(op, format string, args ...interface{}) error {
	return &Error{Kind: KindInvalidInput, Op: op, Err: fmt.Errorf(format, args...)}
}

// UnknownCommand reports an unregistered command name
func UnknownCommand(name string) error {
	return &Error{Kind: KindUnknownCommand, Op: name}
}

// SourceNotFound reports a missing or inaccessible operand
func SourceNotFound(op, path string, err error) error {
	return &Error{Kind: KindSourceNotFound, Op: op, Path: path, Err: err}
}

// KindOf returns the kind of err. Errors that carry no kind are
// operation errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindOperationError
}

// IsKind reports whether err carries the given kind
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
