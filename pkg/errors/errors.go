// Package errors defines the error kinds shared by the REST and gRPC
// transports. Each kind knows its HTTP status and gRPC code.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// internalMessage is what clients see for errors without a known kind.
const internalMessage = "internal server error"

// Coded is implemented by every error kind in this package.
type Coded interface {
	error
	HTTPStatus() int
	GRPCStatus() *status.Status
}

// detail is the resource and optional client-facing message of an error.
type detail struct {
	Resource string
	Message  string
}

func (d detail) text(fallback string) string {
	if d.Message != "" {
		return d.Message
	}
	return fmt.Sprintf("%s %s", d.Resource, fallback)
}

// ValidationError is a rejected input, optionally tied to one field.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Message
	}
	return fmt.Sprintf("validation failed: %s - %s", e.Field, e.Message)
}

// HTTPStatus is 400.
func (e *ValidationError) HTTPStatus() int { return http.StatusBadRequest }

// GRPCStatus is InvalidArgument.
func (e *ValidationError) GRPCStatus() *status.Status {
	return status.New(codes.InvalidArgument, e.Error())
}

// NotFoundError reports a missing resource. Message, when set, is returned
// to clients verbatim.
type NotFoundError struct{ detail }

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource, message string) *NotFoundError {
	return &NotFoundError{detail{Resource: resource, Message: message}}
}

func (e *NotFoundError) Error() string { return e.text("not found") }

// HTTPStatus is 404.
func (e *NotFoundError) HTTPStatus() int { return http.StatusNotFound }

// GRPCStatus is NotFound.
func (e *NotFoundError) GRPCStatus() *status.Status {
	return status.New(codes.NotFound, e.Error())
}

// AlreadyExistsError reports a uniqueness conflict.
type AlreadyExistsError struct{ detail }

// NewAlreadyExistsError creates a new already exists error
func NewAlreadyExistsError(resource, message string) *AlreadyExistsError {
	return &AlreadyExistsError{detail{Resource: resource, Message: message}}
}

func (e *AlreadyExistsError) Error() string { return e.text("already exists") }

// HTTPStatus is 409.
func (e *AlreadyExistsError) HTTPStatus() int { return http.StatusConflict }

// GRPCStatus is AlreadyExists.
func (e *AlreadyExistsError) GRPCStatus() *status.Status {
	return status.New(codes.AlreadyExists, e.Error())
}

// InternalError wraps a cause that must not reach clients.
type InternalError struct {
	Message string
	Err     error
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *InternalError {
	return &InternalError{Message: message, Err: err}
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *InternalError) Unwrap() error { return e.Err }

// HTTPStatus is 500.
func (e *InternalError) HTTPStatus() int { return http.StatusInternalServerError }

// GRPCStatus is Internal and carries Message only.
func (e *InternalError) GRPCStatus() *status.Status {
	return status.New(codes.Internal, e.Message)
}

// IsNotFound reports whether err or any error it wraps is a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return stderrors.As(err, &target)
}

// IsValidation reports whether err or any error it wraps is a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return stderrors.As(err, &target)
}

// IsAlreadyExists reports whether err or any error it wraps is an AlreadyExistsError.
func IsAlreadyExists(err error) bool {
	var target *AlreadyExistsError
	return stderrors.As(err, &target)
}

// Classify returns the first Coded error in err's chain. ok is false for
// errors of unknown kind, which callers treat as internal.
func Classify(err error) (coded Coded, ok bool) {
	if err == nil {
		return nil, false
	}
	ok = stderrors.As(err, &coded)
	return coded, ok
}

// ToGRPC converts err into a gRPC status error. Errors of unknown kind are
// reported as Internal without their message.
func ToGRPC(err error) error {
	if err == nil {
		return nil
	}
	if coded, ok := Classify(err); ok {
		return coded.GRPCStatus().Err()
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.Error(codes.Internal, internalMessage)
}
