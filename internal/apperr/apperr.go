package apperr

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

type Kind string

const (
	Unauthenticated  Kind = "unauthenticated"
	Forbidden        Kind = "forbidden"
	ValidationFailed Kind = "validation_failed"
	Conflict         Kind = "conflict"
	NotFound         Kind = "not_found"
	WriteFailed      Kind = "write_failed"
	Internal         Kind = "internal"
)

// FieldError mirrors the per-field entries of the error response body.
type FieldError struct {
	Msg      string `json:"msg"`
	Path     string `json:"path"`
	Type     string `json:"type"`
	Value    string `json:"value"`
	Location string `json:"location"`
}

type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Status() int {
	switch e.Kind {
	case Unauthenticated:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case ValidationFailed:
		return http.StatusUnprocessableEntity
	case Conflict:
		return http.StatusConflict
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Validation builds a ValidationFailed error whose message is the first
// field-level message, matching how the boundary renders it.
func Validation(fields ...FieldError) *Error {
	msg := "validation failed"
	if len(fields) > 0 {
		msg = fields[0].Msg
	}
	return &Error{Kind: ValidationFailed, Message: msg, Fields: fields}
}

func Field(msg, path, value string) FieldError {
	return FieldError{Msg: msg, Path: path, Type: "field", Value: value, Location: "body"}
}

// From classifies an arbitrary error, keeping an existing *Error as-is and
// mapping a PostgreSQL unique violation to Conflict.
func From(err error, fallback string) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	if IsUniqueViolation(err) {
		return &Error{Kind: Conflict, Message: "duplicate value violates a uniqueness constraint"}
	}
	return &Error{Kind: Internal, Message: fallback}
}

// IsUniqueViolation reports whether err is a unique constraint violation
// (SQLSTATE 23505) raised by the database.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
