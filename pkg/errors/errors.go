// Package errors provides the error taxonomy of the bridge protocol.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrNoResponse       = errors.New("no response")
	ErrServer           = errors.New("server error")
	ErrDecode           = errors.New("malformed response")
	ErrTransport        = errors.New("transport failure")
	ErrClosed           = errors.New("client closed")
	ErrSessionBroken    = errors.New("session broken")
	ErrInvalidOrder     = errors.New("invalid order")
	ErrTicketRange      = errors.New("ticket out of range")
	ErrInvalidTimeframe = errors.New("invalid timeframe")
	ErrUnknownIndicator = errors.New("unknown indicator")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrConfigInvalid    = errors.New("invalid configuration")
	ErrDataNotFound     = errors.New("data not found")
	ErrDatabaseError    = errors.New("database error")
)

// ServerError is an error envelope reported by the terminal. Absent wire
// fields are left empty; RawCode is nil when error_code was not sent.
type ServerError struct {
	Code        Code
	RawCode     *int
	Description string
	Message     string
}

func (e *ServerError) Error() string {
	switch {
	case e.Message != "" && e.Description != "":
		return fmt.Sprintf("server error [%s]: %s: %s", e.Code, e.Description, e.Message)
	case e.Message != "":
		return fmt.Sprintf("server error [%s]: %s", e.Code, e.Message)
	case e.Description != "":
		return fmt.Sprintf("server error [%s]: %s", e.Code, e.Description)
	}
	return fmt.Sprintf("server error [%s]", e.Code)
}

// Is makes errors.Is(err, ErrServer) match any ServerError.
func (e *ServerError) Is(target error) bool {
	return target == ErrServer
}

// NewServerError creates a ServerError, resolving rawCode through FromCode.
func NewServerError(rawCode *int, description, message string) *ServerError {
	code := CodeUnknown
	if rawCode != nil {
		code = FromCode(*rawCode)
	}
	return &ServerError{
		Code:        code,
		RawCode:     rawCode,
		Description: description,
		Message:     message,
	}
}

// DecodeError means the response text did not have the expected shape.
type DecodeError struct {
	Action string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Action == "" {
		return fmt.Sprintf("decode response: %v", e.Err)
	}
	return fmt.Sprintf("decode %s response: %v", e.Action, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrDecode) match any DecodeError.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// NewDecodeError creates a new DecodeError.
func NewDecodeError(action string, err error) *DecodeError {
	return &DecodeError{
		Action: action,
		Err:    err,
	}
}

// TransportError is a socket level failure during send or receive.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrTransport) match any TransportError.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// NewTransportError creates a new TransportError.
func NewTransportError(op string, err error) *TransportError {
	return &TransportError{
		Op:  op,
		Err: err,
	}
}

// ValidationError represents a rejected builder or CLI argument.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s (%v): %s", e.Field, e.Value, e.Message)
}

// Unwrap lets errors.Is(err, ErrInvalidArgument) match.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// Broken marks cause as the failure that poisoned a session.
func Broken(cause error) error {
	return fmt.Errorf("%w: %w", ErrSessionBroken, cause)
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
