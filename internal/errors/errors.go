// Package errors provides the error taxonomy for the assistant engine.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ============================================================
// Error Categories
// ============================================================

// Category defines the type of error for handling decisions.
type Category int

const (
	// CategoryTransport errors come from network I/O (REST backend or
	// model stream). These are the only errors surfaced through the
	// caller's error callback.
	CategoryTransport Category = iota

	// CategoryExecution errors come from tool or plan execution and are
	// reported to the user as a polite utterance, never as raw errors.
	CategoryExecution

	// CategoryUser errors are due to malformed external input
	// (an unparseable plan, an invalid tool parameter).
	CategoryUser
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryTransport:
		return "transport"
	case CategoryExecution:
		return "execution"
	case CategoryUser:
		return "user"
	default:
		return "unknown"
	}
}

// ============================================================
// AppError - Main Error Type
// ============================================================

// AppError is the main error type for engine-internal failures.
type AppError struct {
	// Code is a unique error code for programmatic handling
	Code string

	// Message is a short description of what failed
	Message string

	// Category determines how the error should be handled
	Category Category

	// Inner is the underlying error
	Inner error
}

// Error returns the error message.
func (e *AppError) Error() string {
	var sb strings.Builder

	if e.Code != "" {
		sb.WriteString("[")
		sb.WriteString(e.Code)
		sb.WriteString("] ")
	}

	sb.WriteString(e.Message)

	if e.Inner != nil {
		innerMsg := e.Inner.Error()
		if innerMsg != "" && innerMsg != e.Message {
			sb.WriteString(": ")
			sb.WriteString(innerMsg)
		}
	}

	return sb.String()
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Inner
}

// New creates a new AppError.
func New(code, message string, category Category) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Category: category,
	}
}

// Wrap wraps an existing error with code and category.
func Wrap(err error, code, message string, category Category) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:     code,
		Message:  message,
		Category: category,
		Inner:    err,
	}
}

// ============================================================
// Error Codes
// ============================================================

const (
	// Backend errors
	CodeAPIStatus      = "API_STATUS"
	CodeNetworkFailure = "NETWORK_FAILURE"

	// Model errors
	CodeModelStream = "MODEL_STREAM"

	// Plan errors
	CodePlanParse     = "PLAN_PARSE"
	CodePlanInvalid   = "PLAN_INVALID"
	CodeToolNotFound  = "TOOL_NOT_FOUND"
	CodeToolExecution = "TOOL_EXECUTION"
)

// ============================================================
// Typed Domain Errors
// ============================================================

// ApiError is returned by the REST invoker on any non-2xx status.
// Body carries the raw response text, untouched.
type ApiError struct {
	Status int
	Body   string
}

func (e *ApiError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Body)
}

// ToolNotFoundError is returned when a plan references an unregistered
// tool. It aborts the entire plan.
type ToolNotFoundError struct {
	Name string
}

func (e *ToolNotFoundError) Error() string {
	return "tool not found: " + e.Name
}

// PlanParseError is returned when the model's plan output did not
// contain a valid JSON array of steps.
type PlanParseError struct {
	Inner error
}

func (e *PlanParseError) Error() string {
	if e.Inner != nil {
		return "plan parse failed: " + e.Inner.Error()
	}
	return "plan parse failed"
}

func (e *PlanParseError) Unwrap() error {
	return e.Inner
}

// ============================================================
// Helpers
// ============================================================

// GetCategory extracts the category from an error. Transport is the
// default for unrecognized errors, matching the outer orchestration
// wrapper's handling.
func GetCategory(err error) Category {
	if err == nil {
		return CategoryTransport
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Category
	}

	return CategoryTransport
}

// IsApiError reports whether err is (or wraps) an ApiError.
func IsApiError(err error) bool {
	var apiErr *ApiError
	return errors.As(err, &apiErr)
}

// IsToolNotFound reports whether err is (or wraps) a ToolNotFoundError.
func IsToolNotFound(err error) bool {
	var tnf *ToolNotFoundError
	return errors.As(err, &tnf)
}

// IsPlanParse reports whether err is (or wraps) a PlanParseError.
func IsPlanParse(err error) bool {
	var ppe *PlanParseError
	return errors.As(err, &ppe)
}
