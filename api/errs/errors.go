package errs

import (
	"errors"
	"net/http"
)

var (
	ErrContactNotFound     = errors.New("contact not found")
	ErrProjectNotFound     = errors.New("project not found")
	ErrTaskNotFound        = errors.New("task not found")
	ErrMemberNotFound      = errors.New("member not found in project")
	ErrContactConflict     = errors.New("a contact with this email already exists")
	ErrMemberConflict      = errors.New("contact is already a member of this project")
	ErrUnknownAssignee     = errors.New("assignee does not exist")
	ErrUnknownProject      = errors.New("project does not exist")
	ErrTooManyRequests     = errors.New("too many requests from this IP, please try again later")
	ErrDatabaseUnavailable = errors.New("database is not set up yet")
)

var ErrStatusMap = map[error]int{
	ErrContactNotFound:     http.StatusNotFound,
	ErrProjectNotFound:     http.StatusNotFound,
	ErrTaskNotFound:        http.StatusNotFound,
	ErrMemberNotFound:      http.StatusNotFound,
	ErrContactConflict:     http.StatusBadRequest,
	ErrMemberConflict:      http.StatusBadRequest,
	ErrUnknownAssignee:     http.StatusBadRequest,
	ErrUnknownProject:      http.StatusBadRequest,
	ErrTooManyRequests:     http.StatusTooManyRequests,
	ErrDatabaseUnavailable: http.StatusServiceUnavailable,
}

const UnhandledMessage = "An unexpected error occurred"

// Resolve maps err to the status code and client message of its envelope.
// Errors outside the taxonomy are 500s and only expose their text when
// verbose is set.
func Resolve(err error, verbose bool) (int, string) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return http.StatusBadRequest, vErr.Error()
	}
	for knownErr, statusCode := range ErrStatusMap {
		if errors.Is(err, knownErr) {
			return statusCode, knownErr.Error()
		}
	}
	if verbose {
		return http.StatusInternalServerError, err.Error()
	}
	return http.StatusInternalServerError, UnhandledMessage
}
