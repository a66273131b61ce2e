package dto

import "time"

// ErrorResponse is the standardized JSON error body returned by the API.
//
// It also implements the error interface so middlewares can log or wrap it
// uniformly.
type ErrorResponse struct {
	Message      string    `json:"message" example:"invalid start_date format, expected YYYY-MM-DD"`
	ErrorDetails string    `json:"error,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}

// NewErrorResponse builds an ErrorResponse with the current timestamp.
// err may be nil when there is no underlying cause worth exposing.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
