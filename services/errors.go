package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/blogem/config-store/repositories"
)

var (
	ErrNotFound         = errors.New("configuration entry not found")
	ErrForbidden        = errors.New("configuration entry belongs to another scope or tenant")
	ErrDuplicateKey     = errors.New("an active configuration entry with this key already exists")
	ErrCategoryInvalid  = errors.New("category is not valid for scope")
	ErrStoreUnavailable = errors.New("configuration store unavailable")
	ErrValidationFailed = errors.New("validation failed")
)

// ValidationError carries the field messages of a rejected value or request
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, ", ")
}

// Is makes errors.Is(err, ErrValidationFailed) match
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

func validationFailed(messages []string) error {
	return &ValidationError{Errors: messages}
}

// storeError wraps an infrastructure failure; it matches both ErrStoreUnavailable and its cause
type storeError struct {
	op  string
	err error
}

func (e *storeError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.op, e.err)
}

func (e *storeError) Unwrap() []error {
	return []error{ErrStoreUnavailable, e.err}
}

// mapRepoError translates repository errors into the service taxonomy
func mapRepoError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, repositories.ErrDuplicateKey):
		return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
	default:
		return &storeError{op: op, err: err}
	}
}
