package dto

import "time"

// ErrorResponse is the JSON error envelope returned by every failing
// endpoint.
//
// Fields:
//   - Message: human-readable summary of what failed.
//   - ErrorDetails: underlying cause description, omitted when absent.
//   - Timestamp: when the error response was produced.
type ErrorResponse struct {
	Message      string    `json:"message" example:"failed to query data"`
	ErrorDetails string    `json:"error,omitempty" example:"storage query failed"`
	Timestamp    time.Time `json:"timestamp"`
}

// Error implements the error interface so an ErrorResponse can travel
// through gin's error list.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}

// NewErrorResponse builds an ErrorResponse from a message and an optional
// underlying error.
//
// Parameters:
//   - message: human-readable summary.
//   - err: underlying cause; may be nil.
//
// Returns:
//   - ErrorResponse: envelope ready for JSON serialization.
func NewErrorResponse(message string, err error) ErrorResponse {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return ErrorResponse{
		Message:      message,
		ErrorDetails: details,
		Timestamp:    time.Now().UTC(),
	}
}
