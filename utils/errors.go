package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies an AppError.
type ErrorCode string

const (
	ErrCodeInvalidRequestBody     ErrorCode = "INVALID_REQUEST_BODY"
	ErrCodeReportValidationFailed ErrorCode = "REPORT_VALIDATION_FAILED"

	ErrCodeAIResponseNotJSON       ErrorCode = "AI_RESPONSE_NOT_JSON"
	ErrCodeAIResponseMissingFields ErrorCode = "AI_RESPONSE_MISSING_FIELDS"
	ErrCodeAICallFailed            ErrorCode = "AI_CALL_FAILED"
)

// FieldError describes one invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError is the error type every handler failure is reported as.
type AppError struct {
	Code    ErrorCode
	Status  int
	Message string
	Fields  []FieldError
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// NewInvalidRequestBodyError reports a body that could not be decoded into
// a report, either malformed JSON or a field of the wrong type.
func NewInvalidRequestBodyError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidRequestBody,
		Status:  http.StatusUnprocessableEntity,
		Message: "Invalid JSON payload. Please ensure the request body is valid JSON.",
		Err:     err,
	}
}

// NewReportValidationError reports absent or null report fields.
func NewReportValidationError(fields []FieldError) *AppError {
	return &AppError{
		Code:    ErrCodeReportValidationFailed,
		Status:  http.StatusUnprocessableEntity,
		Message: "Invalid scam report data provided.",
		Fields:  fields,
	}
}

// NewAIResponseNotJSONError reports a reply that is not a JSON object.
func NewAIResponseNotJSONError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeAIResponseNotJSON,
		Status:  http.StatusInternalServerError,
		Message: "Failed to parse AI response as JSON. The AI might not have followed the JSON output instruction.",
		Err:     err,
	}
}

// NewAIResponseMissingFieldsError reports a reply without usable document fields.
func NewAIResponseMissingFieldsError(details string) *AppError {
	return &AppError{
		Code:    ErrCodeAIResponseMissingFields,
		Status:  http.StatusInternalServerError,
		Message: "AI response did not contain all required document fields.",
		Err:     errors.New(details),
	}
}

// NewAICallFailedError reports any other failure talking to the AI service.
func NewAICallFailedError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeAICallFailed,
		Status:  http.StatusInternalServerError,
		Message: fmt.Sprintf("An unexpected error occurred while generating documents: %v", err),
		Err:     err,
	}
}

// AsAppError returns err as an AppError, classifying unknown errors as
// AI call failures.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewAICallFailedError(err)
}
