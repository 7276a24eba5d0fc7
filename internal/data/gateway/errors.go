package gateway

import (
	"errors"
	"fmt"
	"net/http"

	"movie-rental/internal/data/entity"
)

// ErrNotFound matches any gateway error caused by a 404 from the backend.
var ErrNotFound = errors.New("not found")

// ErrMissingID reports a successful write whose response record has no id.
var ErrMissingID = errors.New("response carried no id")

type Operation string

const (
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// StatusError reports a non-2xx response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("backend returned status %d", e.Code)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.Code, e.Body)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.Code == http.StatusNotFound
}

// FetchError reports a failed collection read.
type FetchError struct {
	Resource entity.Kind
	Cause    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Resource.Path()[1:], e.Cause)
}

func (e *FetchError) Unwrap() error { return e.Cause }

// WriteError reports a failed create, update or delete.
type WriteError struct {
	Resource  entity.Kind
	Operation Operation
	ID        int64 // zero for creates
	Cause     error
}

func (e *WriteError) Error() string {
	if e.ID == 0 {
		return fmt.Sprintf("%s %s: %v", e.Operation, e.Resource, e.Cause)
	}
	return fmt.Sprintf("%s %s %d: %v", e.Operation, e.Resource, e.ID, e.Cause)
}

func (e *WriteError) Unwrap() error { return e.Cause }

// NotFound reports whether the backend answered 404.
func (e *WriteError) NotFound() bool {
	return errors.Is(e.Cause, ErrNotFound)
}
