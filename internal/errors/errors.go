package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/AshokKumar3502/facemirror/internal/logger"
)

// Kind classifies a failure into one of the user-facing categories.
type Kind string

const (
	// KindKeyMissing means no analysis credential is configured.
	KindKeyMissing Kind = "key_missing"
	// KindInvalidKey means the analysis capability rejected the credential.
	KindInvalidKey Kind = "invalid_key"
	// KindGeneral covers any other analysis failure: network, malformed or empty response.
	KindGeneral Kind = "general"
	// KindWriteFailed means the store rejected a write, typically on quota.
	KindWriteFailed Kind = "write_failed"
	// KindPermissionDenied means the platform notification permission is not granted.
	KindPermissionDenied Kind = "permission_denied"
)

// Error is a classified failure. It wraps an optional cause and carries the
// Kind the session layer uses to pick user-facing copy.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a classified error with no underlying cause.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap creates a classified error around an underlying cause.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf extracts the Kind from err. Unclassified errors report KindGeneral.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindGeneral
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
