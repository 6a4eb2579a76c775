package dberrs_test

import (
	"errors"
	"fmt"
	"testing"

	"fulfillment/internal/adapters/out/postgres/dberrs"
	"fulfillment/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	plain := errors.New("connection reset")

	tests := []struct {
		name     string
		err      error
		conflict bool
	}{
		{"nil", nil, false},
		{"plain error", plain, false},
		{"pgx serialization failure", &pgconn.PgError{Code: "40001"}, true},
		{"pgx deadlock wrapped", fmt.Errorf("update: %w", &pgconn.PgError{Code: "40P01"}), true},
		{"pgx unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"pq serialization failure", &pq.Error{Code: "40001"}, true},
		{"pq lock not available", &pq.Error{Code: "55P03"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dberrs.Classify(tt.err)

			assert.Equal(t, tt.conflict, errors.Is(got, errs.ErrConcurrentModification))
			if tt.err != nil {
				assert.ErrorIs(t, got, tt.err)
			} else {
				assert.NoError(t, got)
			}
		})
	}
}
