package store

import (
	"errors"
	"fmt"

	"movie-rental/internal/data/entity"
	"movie-rental/pkg/utils"
)

var (
	ErrClosed    = errors.New("store is closed")
	ErrNotLoaded = errors.New("collection has not finished loading")
)

// genericLoadError is what views show in place of a list that failed to load.
const genericLoadError = "Failed to load data."

// ValidationError is raised before any network call. Fields is keyed by the
// form field name.
type ValidationError struct {
	Resource entity.Kind
	Fields   map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Resource, utils.FormatValidationErrors(e.Fields))
}

func validationError(kind entity.Kind, fields map[string]string) *ValidationError {
	return &ValidationError{Resource: kind, Fields: fields}
}
