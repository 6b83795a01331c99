package model

import (
	"errors"
	"fmt"
)

// =====================================================
// ERROR CODES
// =====================================================
const (
	ErrCodePersonNotFound = "PER001"
	ErrCodeValidation     = "PER002"
	ErrCodeListPeople     = "PER003"
	ErrCodeCreatePerson   = "PER004"
	ErrCodeUpdatePerson   = "PER005"
	ErrCodeDeletePerson   = "PER006"
	ErrCodePeopleStats    = "PER007"
)

// =====================================================
// ERROR DEFINITIONS
// =====================================================
var (
	ErrPersonNotFound = errors.New("person not found")
)

// =====================================================
// CUSTOM ERROR TYPE
// =====================================================

// PersonError wraps a repository/service failure with a stable code.
type PersonError struct {
	Code    string
	Message string
	Err     error
}

func (e *PersonError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *PersonError) Unwrap() error {
	return e.Err
}

func NewListPeopleError(err error) *PersonError {
	return &PersonError{Code: ErrCodeListPeople, Message: "Failed to list people", Err: err}
}

func NewCreatePersonError(err error) *PersonError {
	return &PersonError{Code: ErrCodeCreatePerson, Message: "Failed to create person", Err: err}
}

func NewUpdatePersonError(err error) *PersonError {
	return &PersonError{Code: ErrCodeUpdatePerson, Message: "Failed to update person", Err: err}
}

func NewDeletePersonError(err error) *PersonError {
	return &PersonError{Code: ErrCodeDeletePerson, Message: "Failed to delete person", Err: err}
}

func NewPeopleStatsError(err error) *PersonError {
	return &PersonError{Code: ErrCodePeopleStats, Message: "Failed to compute people stats", Err: err}
}

// IsPersonNotFound reports whether err is the domain not-found signal.
func IsPersonNotFound(err error) bool {
	return errors.Is(err, ErrPersonNotFound)
}
