package common

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestHTTPStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{ErrNotFound, http.StatusNotFound},
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrValidation, http.StatusBadRequest},
		{ErrUnsupportedLanguage, http.StatusBadRequest},
		{ErrConflict, http.StatusConflict},
		{ErrAlreadyCompleted, http.StatusConflict},
		{ErrExecutionTimeout, http.StatusGatewayTimeout},
		{ErrExecutionFailed, http.StatusBadGateway},
		{fmt.Errorf("something unexpected"), http.StatusInternalServerError},
		// Wrapped errors keep their mapping.
		{fmt.Errorf("user u1: %w", ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("executor unreachable: %w", ErrExecutionFailed), http.StatusBadGateway},
		// Constraint violations that escape the repositories: duplicate key
		// is a conflict, a dangling foreign key means the referenced row is
		// missing.
		{&pgconn.PgError{Code: "23505"}, http.StatusConflict},
		{fmt.Errorf("write ledger: %w", &pgconn.PgError{Code: "23503"}), http.StatusNotFound},
	}
	for _, tt := range tests {
		if got := HTTPStatusFromError(tt.err); got != tt.want {
			t.Errorf("HTTPStatusFromError(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
