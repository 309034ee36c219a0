// Package fault defines the error taxonomy shared by every usecase:
// validation, not-found, conflict, data-access and partial-failure
// outcomes are distinguishable with errors.As / the Is* helpers.
package fault

import (
	"errors"
	"fmt"
)

// Validation: the caller's input is malformed or out of range.
// No state was changed.
type Validation struct {
	Field string
	Msg   string
}

func (e *Validation) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return e.Field + ": " + e.Msg
}

func NewValidation(field, msg string) *Validation { return &Validation{Field: field, Msg: msg} }

// NotFound: a referenced entity does not exist.
type NotFound struct {
	Entity string
	Key    string
}

func (e *NotFound) Error() string { return e.Entity + " not found: " + e.Key }

func NewNotFound(entity, key string) *NotFound { return &NotFound{Entity: entity, Key: key} }

// Conflict: a uniqueness rule was violated on insert (duplicate NIC,
// duplicate loan number, a raced sequence value). Retryable by the caller.
type Conflict struct {
	Msg string
}

func (e *Conflict) Error() string { return e.Msg }

func NewConflict(msg string) *Conflict { return &Conflict{Msg: msg} }

// DataAccess: the storage collaborator failed (transport, server side).
type DataAccess struct {
	Op  string
	Err error
}

func (e *DataAccess) Error() string { return "data access failed during " + e.Op + ": " + e.Err.Error() }
func (e *DataAccess) Unwrap() error { return e.Err }

func WrapDataAccess(op string, err error) *DataAccess { return &DataAccess{Op: op, Err: err} }

// PartialFailure: a multi-step operation committed some steps and then a
// later step failed. The committed steps are NOT rolled back; callers must
// see this distinctly from both success and plain failure.
type PartialFailure struct {
	Committed []string
	Failed    string
	Err       error
}

func (e *PartialFailure) Error() string {
	return fmt.Sprintf("partial failure: %v committed, %s failed: %v", e.Committed, e.Failed, e.Err)
}
func (e *PartialFailure) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var v *Validation
	return errors.As(err, &v)
}

func IsNotFound(err error) bool {
	var v *NotFound
	return errors.As(err, &v)
}

func IsConflict(err error) bool {
	var v *Conflict
	return errors.As(err, &v)
}

func IsPartialFailure(err error) bool {
	var v *PartialFailure
	return errors.As(err, &v)
}
