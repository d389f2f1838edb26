package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrKind classifies why a write was rejected.
type ErrKind string

const (
	// KindValidation — a value failed a range/format check.
	KindValidation ErrKind = "VALIDATION_ERROR"
	// KindUniqueness — a duplicate value hit a unique constraint.
	KindUniqueness ErrKind = "UNIQUENESS_VIOLATION"
	// KindReferential — a foreign key pointed at a missing parent.
	KindReferential ErrKind = "REFERENTIAL_VIOLATION"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ConstraintError reports a write rejected by an integrity rule, either
// by the database or by request validation before the write.
type ConstraintError struct {
	Kind       ErrKind
	Constraint string            // database constraint name, if known
	Fields     map[string]string // field → message, for request validation
	cause      error
}

func (e *ConstraintError) Error() string {
	switch {
	case len(e.Fields) > 0:
		parts := make([]string, 0, len(e.Fields))
		for f, msg := range e.Fields {
			parts = append(parts, f+": "+msg)
		}
		return fmt.Sprintf("%s: %s", e.Kind, strings.Join(parts, "; "))
	case e.Constraint != "":
		return fmt.Sprintf("%s: constraint %q", e.Kind, e.Constraint)
	case e.cause != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.cause)
	default:
		return string(e.Kind)
	}
}

func (e *ConstraintError) Unwrap() error { return e.cause }

// NewValidationError builds a ConstraintError from translated field messages.
func NewValidationError(fields map[string]string) *ConstraintError {
	return &ConstraintError{Kind: KindValidation, Fields: fields}
}

// IsUniqueness reports whether err is a uniqueness violation.
func IsUniqueness(err error) bool { return isKind(err, KindUniqueness) }

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool { return isKind(err, KindValidation) }

// IsReferential reports whether err is a referential violation.
func IsReferential(err error) bool { return isKind(err, KindReferential) }

func isKind(err error, kind ErrKind) bool {
	var ce *ConstraintError
	return errors.As(err, &ce) && ce.Kind == kind
}

// mapWriteError translates database errors into the constraint taxonomy.
// PostgreSQL class 23 codes carry the integrity violations; anything
// else passes through untouched.
func mapWriteError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return &ConstraintError{Kind: KindUniqueness, Constraint: pgErr.ConstraintName, cause: err}
		case "23503":
			return &ConstraintError{Kind: KindReferential, Constraint: pgErr.ConstraintName, cause: err}
		case "23514", "23502":
			return &ConstraintError{Kind: KindValidation, Constraint: pgErr.ConstraintName, cause: err}
		}
	}
	return err
}

// mapReadError normalizes pgx's no-rows sentinel to ErrNotFound.
func mapReadError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
