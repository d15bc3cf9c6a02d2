// Package apperr defines the error taxonomy shared by every layer of the
// dataset service.
//
// Errors are raised at the layer nearest their detection and propagate
// unmodified to the boundary (HTTP or CLI), which maps the Code to a status
// and a fixed category message. Nothing in the service retries.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Code categorizes errors.
type Code string

const (
	// CodeMalformedPayload indicates a payload that is not a JSON object.
	CodeMalformedPayload Code = "MALFORMED_PAYLOAD"

	// CodeDatasetNotFound indicates a groupBy query against a dataset with no records.
	CodeDatasetNotFound Code = "DATASET_NOT_FOUND"

	// CodeDatasetEmpty is raised by the query engine when asked to group zero records.
	CodeDatasetEmpty Code = "DATASET_EMPTY"

	// CodeBadRequest indicates invalid caller input other than payload shape.
	CodeBadRequest Code = "BAD_REQUEST"

	// CodeStorageFault indicates an I/O failure in the record store.
	CodeStorageFault Code = "STORAGE_FAULT"

	// CodeUnclassified is the catch-all.
	CodeUnclassified Code = "UNCLASSIFIED"
)

// Error is a coded error carrying a human-readable message and an optional
// underlying cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Detail returns the message shown to callers as diagnostic detail.
func (e *Error) Detail() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// New creates an Error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an Error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an existing error.
func Wrap(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// CodeOf extracts the code from err. Uses errors.As so wrapped errors match.
// Returns CodeUnclassified for errors that carry no code.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnclassified
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}

// Detail returns the diagnostic detail string for any error.
func Detail(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Detail()
	}
	return err.Error()
}

// HTTPStatus maps a code to its HTTP status.
func HTTPStatus(code Code) int {
	switch code {
	case CodeDatasetNotFound, CodeDatasetEmpty:
		return http.StatusNotFound
	case CodeMalformedPayload, CodeBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Category returns the fixed category message reported alongside a code.
func Category(code Code) string {
	switch code {
	case CodeDatasetNotFound, CodeDatasetEmpty:
		return "Dataset not found"
	case CodeMalformedPayload:
		return "Malformed JSON request"
	case CodeBadRequest:
		return "Bad request"
	case CodeStorageFault:
		return "Storage failure"
	default:
		return "An unexpected error occurred"
	}
}
