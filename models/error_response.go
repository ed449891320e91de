package models

import "reclaimme/utils"

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Detail    string             `json:"detail"`
	Code      string             `json:"code"`
	Status    int                `json:"status"`
	Errors    []utils.FieldError `json:"errors,omitempty"`
	RequestID string             `json:"request_id,omitempty"`
}

// NewErrorResponse renders an AppError for the wire.
func NewErrorResponse(err *utils.AppError, requestID string) ErrorResponse {
	return ErrorResponse{
		Detail:    err.Message,
		Code:      string(err.Code),
		Status:    err.Status,
		Errors:    err.Fields,
		RequestID: requestID,
	}
}
