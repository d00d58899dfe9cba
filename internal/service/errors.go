package service

import (
	"errors"
	"fmt"
)

// StatusError is returned by backends when the server answered but the
// request did not succeed: a non-2xx status, or a 2xx whose body does not
// hold a usable task.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %d", e.Code)
	}
	return fmt.Sprintf("server returned status %d: %s", e.Code, e.Message)
}

// StatusCode returns the HTTP status carried by err, or 0 when err did not
// come with a server response.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	return 0
}
