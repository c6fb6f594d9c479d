package common

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound            = errors.New("requested resource not found")
	ErrUnauthorized        = errors.New("unauthorized access")
	ErrForbidden           = errors.New("forbidden access")
	ErrBadRequest          = errors.New("bad request")
	ErrValidation          = errors.New("validation failed")
	ErrConflict            = errors.New("resource conflict") // e.g., email already registered
	ErrAlreadyCompleted    = errors.New("problem already completed")
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrExecutionTimeout    = errors.New("code execution timed out")
	ErrExecutionFailed     = errors.New("code execution failed")
	ErrInternalServer      = errors.New("internal server error")
)

// HTTPStatusFromError maps domain errors to HTTP status codes.
func HTTPStatusFromError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrUnauthorized) {
		return http.StatusUnauthorized
	}
	if errors.Is(err, ErrForbidden) {
		return http.StatusForbidden
	}
	if errors.Is(err, ErrBadRequest) || errors.Is(err, ErrValidation) || errors.Is(err, ErrUnsupportedLanguage) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrConflict) || errors.Is(err, ErrAlreadyCompleted) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrExecutionTimeout) {
		return http.StatusGatewayTimeout
	}
	if errors.Is(err, ErrExecutionFailed) {
		return http.StatusBadGateway
	}

	// pgx constraint violations that escaped repository mapping: a unique
	// violation is a conflict, a foreign-key violation means the referenced
	// row does not exist.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return http.StatusConflict
		case "23503":
			return http.StatusNotFound
		}
	}

	return http.StatusInternalServerError
}
