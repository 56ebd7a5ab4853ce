package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestStatusMapping(t *testing.T) {
	cases := map[Kind]int{
		Unauthenticated:  http.StatusUnauthorized,
		Forbidden:        http.StatusForbidden,
		ValidationFailed: http.StatusUnprocessableEntity,
		Conflict:         http.StatusConflict,
		NotFound:         http.StatusNotFound,
		WriteFailed:      http.StatusInternalServerError,
		Internal:         http.StatusInternalServerError,
	}
	for kind, want := range cases {
		if got := New(kind, "x").Status(); got != want {
			t.Fatalf("kind %s: expected %d, got %d", kind, want, got)
		}
	}
}

func TestValidationMessage(t *testing.T) {
	err := Validation(Field("email already exists", "email", "a@b.c"))
	if err.Kind != ValidationFailed {
		t.Fatalf("expected validation kind, got %s", err.Kind)
	}
	if err.Message != "email already exists" {
		t.Fatalf("expected first field message, got %q", err.Message)
	}
	if len(err.Fields) != 1 || err.Fields[0].Location != "body" {
		t.Fatalf("unexpected fields: %+v", err.Fields)
	}
}

func TestFromKeepsAppError(t *testing.T) {
	orig := New(NotFound, "teacher not found")
	got := From(fmt.Errorf("wrapped: %w", orig), "fallback")
	if got != orig {
		t.Fatalf("expected original error, got %+v", got)
	}
}

func TestFromUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	got := From(fmt.Errorf("insert: %w", pgErr), "fallback")
	if got.Kind != Conflict {
		t.Fatalf("expected conflict, got %s", got.Kind)
	}
}

func TestFromUnknown(t *testing.T) {
	got := From(errors.New("boom"), "something broke")
	if got.Kind != Internal || got.Message != "something broke" {
		t.Fatalf("unexpected classification: %+v", got)
	}
}
