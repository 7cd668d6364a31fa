package home

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("record not found")
	ErrAuthFailure     = errors.New("incorrect username or password")
	ErrUnauthenticated = errors.New("not authenticated")
	ErrUsernameExists  = errors.New("username already exists")
	ErrInvalidUsername = errors.New("username must be 1-64 characters of letters, digits, '.', '_' or '-'")
)

// StoreError wraps a failure of the underlying database.
type StoreError struct {
	Op     string
	Family string
	ID     uint
	Err    error
}

func (e *StoreError) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("%s %s %d: %v", e.Op, e.Family, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Family, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
