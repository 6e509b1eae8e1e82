package types

import "time"

// Response is the envelope every API route answers with.
type Response struct {
	Success   bool      `json:"success"`
	Data      any       `json:"data"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func NewResponse(success bool, data any, message string) Response {
	return Response{
		Success:   success,
		Data:      data,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}

func Success(data any, message string) Response {
	if message == "" {
		message = "Success"
	}
	return NewResponse(true, data, message)
}

func Failure(message string, data any) Response {
	if message == "" {
		message = "Error"
	}
	return NewResponse(false, data, message)
}
