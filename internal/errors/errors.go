// Package errors provides custom error types for the legalbot client.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	ErrServiceUnreachable = errors.New("answer service unreachable")
	ErrInvalidResponse    = errors.New("invalid response format")
	ErrSpeechUnsupported  = errors.New("speech recognition not supported")
)

// ServiceError represents a failed answer service request.
type ServiceError struct {
	StatusCode int
	Endpoint   string
	Message    string
}

func (e *ServiceError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("service error [%d] at %s: %s", e.StatusCode, e.Endpoint, e.Message)
	}
	return fmt.Sprintf("service error at %s: %s", e.Endpoint, e.Message)
}

// NewServiceError creates a new ServiceError
func NewServiceError(statusCode int, endpoint, message string) *ServiceError {
	return &ServiceError{
		StatusCode: statusCode,
		Endpoint:   endpoint,
		Message:    message,
	}
}

// NetworkError represents a transport-level failure before any HTTP
// response was received.
type NetworkError struct {
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error reaching %s: %v", e.Endpoint, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Is allows comparison with the ErrServiceUnreachable sentinel
func (e *NetworkError) Is(target error) bool {
	if target == ErrServiceUnreachable {
		return true
	}
	_, ok := target.(*NetworkError)
	return ok
}

// NewNetworkError creates a new NetworkError
func NewNetworkError(endpoint string, err error) *NetworkError {
	return &NetworkError{Endpoint: endpoint, Err: err}
}

// ParseError represents a malformed service response.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s", e.Message)
}

// Is allows comparison with the ErrInvalidResponse sentinel
func (e *ParseError) Is(target error) bool {
	if target == ErrInvalidResponse {
		return true
	}
	_, ok := target.(*ParseError)
	return ok
}

// NewParseError creates a new ParseError
func NewParseError(message string) *ParseError {
	return &ParseError{Message: message}
}

// CapabilityError represents a missing host capability, such as a speech
// engine that is not available in the current environment.
type CapabilityError struct {
	Capability string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("%s is not available in this environment", e.Capability)
}

// Is allows comparison with the ErrSpeechUnsupported sentinel
func (e *CapabilityError) Is(target error) bool {
	if target == ErrSpeechUnsupported {
		return true
	}
	_, ok := target.(*CapabilityError)
	return ok
}

// NewCapabilityError creates a new CapabilityError
func NewCapabilityError(capability string) *CapabilityError {
	return &CapabilityError{Capability: capability}
}

// IsServiceError reports whether err is a ServiceError
func IsServiceError(err error) bool {
	var se *ServiceError
	return errors.As(err, &se)
}

// IsNetworkError reports whether err is a transport-level failure
func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// IsCapabilityError reports whether err is a missing-capability error
func IsCapabilityError(err error) bool {
	var ce *CapabilityError
	return errors.As(err, &ce)
}

// GetHTTPStatus extracts the HTTP status from a ServiceError, or 0.
func GetHTTPStatus(err error) int {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}

// GetEndpoint extracts the endpoint from a structured error, or "".
func GetEndpoint(err error) string {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Endpoint
	}
	var ne *NetworkError
	if errors.As(err, &ne) {
		return ne.Endpoint
	}
	return ""
}
