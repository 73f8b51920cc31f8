package core

import (
	"errors"
	"fmt"
)

// Kind classifies a domain error so callers can decide how to react
// without parsing message strings.
type Kind string

const (
	KindNotFound          Kind = "not_found"
	KindConflict          Kind = "conflict"
	KindInvalidTransition Kind = "invalid_transition"
	KindInvalidState      Kind = "invalid_state"
	KindImmutableEntity   Kind = "immutable_entity"
	KindExpired           Kind = "expired"
	KindInvalidArgument   Kind = "invalid_argument"
	KindUploadFailed      Kind = "upload_failed"
)

// Error is the error type every service operation returns for expected
// failures. Details carries structured context (current status, allowed next
// states, offending identifiers) for client-facing diagnostics.
type Error struct {
	Kind    Kind
	Message string
	Details map[string]any
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// KindOf returns the Kind of err, or "" when err is not a domain Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err is a domain Error of the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

func NotFound(entity, id string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: entity + " not found",
		Details: map[string]any{"id": id},
	}
}

func Conflict(message string, details map[string]any) *Error {
	return &Error{Kind: KindConflict, Message: message, Details: details}
}

func InvalidTransition(current, requested string, allowed []string) *Error {
	return &Error{
		Kind:    KindInvalidTransition,
		Message: fmt.Sprintf("cannot transition from %s to %s", current, requested),
		Details: map[string]any{
			"currentStatus":   current,
			"requestedStatus": requested,
			"allowedStatuses": allowed,
		},
	}
}

func InvalidState(message, current string) *Error {
	return &Error{
		Kind:    KindInvalidState,
		Message: message,
		Details: map[string]any{"currentStatus": current},
	}
}

func ImmutableEntity(entity, id, status string) *Error {
	return &Error{
		Kind:    KindImmutableEntity,
		Message: entity + " is sealed and can no longer be modified",
		Details: map[string]any{"id": id, "currentStatus": status},
	}
}

func Expired(message string) *Error {
	return &Error{Kind: KindExpired, Message: message}
}

func InvalidArgument(message string) *Error {
	return &Error{Kind: KindInvalidArgument, Message: message}
}

func UploadFailed(cause error) *Error {
	return &Error{Kind: KindUploadFailed, Message: "failed to store proof media", cause: cause}
}
