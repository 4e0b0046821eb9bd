package common

// ErrorBody is the public wire shape of every failure response.
type ErrorBody struct {
	Error string `json:"error"`
}

// Ack is the public wire shape of a successful contact submission.
type Ack struct {
	OK bool `json:"ok"`
}

// NewErrorBody creates a new error response body
func NewErrorBody(message string) ErrorBody {
	return ErrorBody{Error: message}
}
