// Package dberrs maps driver errors onto the fulfillment error taxonomy.
package dberrs

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// SQLSTATE codes that mean another transaction won.
const (
	serializationFailure = "40001"
	deadlockDetected     = "40P01"
	lockNotAvailable     = "55P03"
)

// Classify wraps transaction conflicts so callers can match
// errs.ErrConcurrentModification. Other errors are returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if code, ok := sqlState(err); ok && isConflict(code) {
		return fmt.Errorf("%w: sqlstate %s: %w", errs.ErrConcurrentModification, code, err)
	}
	return err
}

func sqlState(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), true
	}
	return "", false
}

func isConflict(code string) bool {
	switch code {
	case serializationFailure, deadlockDetected, lockNotAvailable:
		return true
	default:
		return false
	}
}
