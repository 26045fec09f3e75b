package store

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// NotFoundError reports a lookup that matched no row.
type NotFoundError struct {
	Entity string
	Ref    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.Ref)
}

func notFound(entity string, id int64) *NotFoundError {
	return &NotFoundError{Entity: entity, Ref: strconv.FormatInt(id, 10)}
}

// ValidationError reports input the store refused to write: missing or
// out-of-range fields, duplicate unique keys, references that would break
// a constraint.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// modernc.org/sqlite surfaces constraint failures as plain errors with the
// SQLite message text; match on that to translate them into validation
// errors instead of leaking storage errors to the caller.

func isUniqueErr(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isForeignKeyErr(err error) bool {
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

func isCheckErr(err error) bool {
	return err != nil && strings.Contains(err.Error(), "CHECK constraint failed")
}
