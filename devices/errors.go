package devices

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure so callers can react without matching on
// concrete error types.
type ErrorKind int

const (
	// BridgeCommandError is any error-marked adb response, or a failure to
	// run adb at all.
	BridgeCommandError ErrorKind = iota
	// NoSuchRemotePath is adb reporting a missing file or directory.
	NoSuchRemotePath
	// PreconditionFailure is raised when zero or multiple devices are found.
	PreconditionFailure
	// MalformedResponse is raised when a numeric field cannot be parsed.
	MalformedResponse
)

func (k ErrorKind) String() string {
	switch k {
	case BridgeCommandError:
		return "bridge_command_error"
	case NoSuchRemotePath:
		return "no_such_remote_path"
	case PreconditionFailure:
		return "precondition_failure"
	case MalformedResponse:
		return "malformed_response"
	default:
		return "unknown"
	}
}

// AdbError is the single error type returned by the adb client and the
// screenshot workflow.
type AdbError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// NewError creates an AdbError of the given kind.
func NewError(kind ErrorKind, message string) *AdbError {
	return &AdbError{Kind: kind, Message: message}
}

// WrapError creates an AdbError of the given kind with an underlying cause.
func WrapError(kind ErrorKind, message string, err error) *AdbError {
	return &AdbError{Kind: kind, Message: message, Err: err}
}

func (e *AdbError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AdbError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first AdbError in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var adbErr *AdbError
	if errors.As(err, &adbErr) {
		return adbErr.Kind, true
	}
	return 0, false
}

// IsKind reports whether err carries an AdbError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
