package postgres

import (
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/lib/pq"
)

func TestWrapDBError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		if err := wrapDBError(nil, "insert user"); err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
	})

	t.Run("adds sqlstate and constraint for pq errors", func(t *testing.T) {
		pqErr := &pq.Error{Code: "23505", Constraint: "users_user_id_key", Message: "duplicate key value"}
		err := wrapDBError(pqErr, "insert user")
		if !strings.Contains(err.Error(), "insert user (sqlstate 23505, constraint users_user_id_key)") {
			t.Fatalf("unexpected message: %s", err)
		}
		var target *pq.Error
		if !errors.As(err, &target) {
			t.Fatalf("expected wrapped pq error to be preserved")
		}
	})

	t.Run("keeps cause for plain errors", func(t *testing.T) {
		err := wrapDBError(sql.ErrConnDone, "get user")
		if !errors.Is(err, sql.ErrConnDone) {
			t.Fatalf("expected cause to be preserved, got %v", err)
		}
	})
}

func TestOptionalString(t *testing.T) {
	if got := optionalString("   "); got != nil {
		t.Fatalf("expected nil for blank string, got %q", *got)
	}
	if got := optionalString(" cus_1 "); got == nil || *got != "cus_1" {
		t.Fatalf("unexpected value: %v", got)
	}
}

func TestNullablePatch(t *testing.T) {
	if got := nullablePatch(nil); got != nil {
		t.Fatalf("expected nil for untouched field")
	}

	empty := ""
	if got := nullablePatch(&empty); got == nil || got.Valid {
		t.Fatalf("expected NULL for empty string, got %+v", got)
	}

	value := "https://cdn.example.com/slip.png"
	if got := nullablePatch(&value); got == nil || !got.Valid || got.String != value {
		t.Fatalf("unexpected value: %+v", got)
	}
}

func TestIsNotFound(t *testing.T) {
	if !isNotFound(sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows to be not found")
	}
	if isNotFound(sql.ErrConnDone) {
		t.Fatalf("expected other errors to be found")
	}
}
