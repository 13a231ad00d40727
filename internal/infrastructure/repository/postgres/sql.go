package postgres

import (
	"database/sql"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/lib/pq"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// wrapDBError annotates driver errors with the SQLSTATE and constraint so the
// action layer logs them without knowing about lib/pq.
func wrapDBError(err error, op string) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		details := "sqlstate " + string(pqErr.Code)
		if pqErr.Constraint != "" {
			details += ", constraint " + pqErr.Constraint
		}
		return errors.Wrapf(err, "%s (%s)", op, details)
	}
	return errors.Wrap(err, op)
}

func optionalString(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// nullablePatch maps a patch field to SQL: nil means untouched, "" means NULL.
func nullablePatch(value *string) *sql.NullString {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	return &sql.NullString{String: trimmed, Valid: trimmed != ""}
}

func stringPatch(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	return &trimmed
}

func rowsAffected(res sql.Result, op string) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, wrapDBError(err, op+" rows affected")
	}
	return n > 0, nil
}
