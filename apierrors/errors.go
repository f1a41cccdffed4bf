// Package apierrors defines the error taxonomy returned by the DefiLlama client.
//
// Every failure surfaced by the client is exactly one of four kinds so callers can
// branch on the kind without matching error strings.
package apierrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorCategory represents the category of an error
type ErrorCategory string

const (
	// CategoryTransport represents connection, DNS, timeout and cancellation failures
	CategoryTransport ErrorCategory = "transport"
	// CategoryHTTP represents non-2xx responses from the service
	CategoryHTTP ErrorCategory = "http"
	// CategoryValidation represents response bodies that do not match the expected schema
	CategoryValidation ErrorCategory = "validation"
	// CategoryArgument represents invalid caller input detected before any request is made
	CategoryArgument ErrorCategory = "argument"
)

// maxBodyInMessage bounds how much of a response body Error() prints.
const maxBodyInMessage = 256

// CategorizedError is implemented by every error kind in this package.
type CategorizedError interface {
	error
	Category() ErrorCategory
}

// TransportError reports that the request never produced an HTTP response.
type TransportError struct {
	Operation string
	URL       string
	Cause     error
}

// NewTransportError creates a transport error
func NewTransportError(operation, url string, cause error) *TransportError {
	return &TransportError{Operation: operation, URL: url, Cause: cause}
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport error requesting %s: %v", e.Operation, e.URL, e.Cause)
}

// Unwrap returns the underlying cause
func (e *TransportError) Unwrap() error {
	return e.Cause
}

// Category implements CategorizedError
func (e *TransportError) Category() ErrorCategory {
	return CategoryTransport
}

// HTTPError reports a non-2xx response. Body holds the raw response body.
type HTTPError struct {
	Operation  string
	URL        string
	StatusCode int
	Body       []byte
}

// NewHTTPError creates an HTTP status error
func NewHTTPError(operation, url string, statusCode int, body []byte) *HTTPError {
	return &HTTPError{Operation: operation, URL: url, StatusCode: statusCode, Body: body}
}

// Error implements the error interface
func (e *HTTPError) Error() string {
	body := strings.TrimSpace(string(e.Body))
	if len(body) > maxBodyInMessage {
		body = body[:maxBodyInMessage] + "..."
	}
	return fmt.Sprintf("%s: unexpected status %d from %s: %s", e.Operation, e.StatusCode, e.URL, body)
}

// Category implements CategorizedError
func (e *HTTPError) Category() ErrorCategory {
	return CategoryHTTP
}

// ValidationError reports a decoded body that does not satisfy the expected schema.
// Path locates the offending value, e.g. `$.coins["coingecko:ethereum"].price`.
type ValidationError struct {
	Operation string
	Path      string
	Expected  string
	Actual    string
}

// NewValidationError creates a validation error for the value at path
func NewValidationError(path, expected, actual string) *ValidationError {
	return &ValidationError{Path: path, Expected: expected, Actual: actual}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("invalid response at %s: expected %s, got %s", e.Path, e.Expected, e.Actual)
	if e.Operation != "" {
		return e.Operation + ": " + msg
	}
	return msg
}

// Category implements CategorizedError
func (e *ValidationError) Category() ErrorCategory {
	return CategoryValidation
}

// ArgumentError reports invalid caller input. No request was sent.
type ArgumentError struct {
	Operation string
	Parameter string
	Reason    string
}

// NewArgumentError creates an invalid argument error
func NewArgumentError(operation, parameter, reason string) *ArgumentError {
	return &ArgumentError{Operation: operation, Parameter: parameter, Reason: reason}
}

// Error implements the error interface
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: invalid parameter '%s': %s", e.Operation, e.Parameter, e.Reason)
}

// Category implements CategorizedError
func (e *ArgumentError) Category() ErrorCategory {
	return CategoryArgument
}

// Categorize returns the category of err, or "" when err is nil or not from this package.
func Categorize(err error) ErrorCategory {
	var catErr CategorizedError
	if errors.As(err, &catErr) {
		return catErr.Category()
	}
	return ""
}

// IsTransport reports whether err is a TransportError
func IsTransport(err error) bool {
	return Categorize(err) == CategoryTransport
}

// IsHTTP reports whether err is an HTTPError
func IsHTTP(err error) bool {
	return Categorize(err) == CategoryHTTP
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	return Categorize(err) == CategoryValidation
}

// IsArgument reports whether err is an ArgumentError
func IsArgument(err error) bool {
	return Categorize(err) == CategoryArgument
}

// StatusCode returns the HTTP status carried by err, or 0 if err is not an HTTPError.
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}

// IsNotFound reports whether the service rejected the lookup. The service answers
// unknown slugs with 400 on some endpoints and 404 on others.
func IsNotFound(err error) bool {
	code := StatusCode(err)
	return code == http.StatusNotFound || code == http.StatusBadRequest
}
