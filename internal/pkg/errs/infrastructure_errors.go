package errs

import (
	"errors"
	"fmt"
)

var (
	ErrStorageFailure     = errors.New("storage failure")
	ErrPersistenceFailure = errors.New("persistence failure")
)

// StorageError reports a failed put or delete against object storage.
type StorageError struct {
	Operation string
	Key       string
	Cause     error
}

func NewStorageError(operation, key string) *StorageError {
	return &StorageError{Operation: operation, Key: key}
}

func NewStorageErrorWithCause(operation, key string, cause error) *StorageError {
	return &StorageError{Operation: operation, Key: key, Cause: cause}
}

func (e *StorageError) Error() string {
	return withCause(fmt.Sprintf("%s: %s %s", ErrStorageFailure, e.Operation, e.Key), e.Cause)
}

func (e *StorageError) Unwrap() error {
	return ErrStorageFailure
}

// PersistenceError reports a failed datastore operation.
type PersistenceError struct {
	Operation string
	Cause     error
}

func NewPersistenceErrorWithCause(operation string, cause error) *PersistenceError {
	return &PersistenceError{Operation: operation, Cause: cause}
}

func (e *PersistenceError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrPersistenceFailure, e.Operation), e.Cause)
}

func (e *PersistenceError) Unwrap() error {
	return ErrPersistenceFailure
}
