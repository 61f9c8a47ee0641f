package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// AppError is the wire-level error taxonomy. Validation and not-found
// errors are terminal; store failures carry the driver diagnostic code
// where one is available.
type AppError struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	return e.Message
}

func NewValidationError(message string) *AppError {
	return &AppError{Status: fiber.StatusBadRequest, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Status: fiber.StatusNotFound, Message: message}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Status: fiber.StatusUnauthorized, Message: message}
}

func NewMethodNotAllowedError() *AppError {
	return &AppError{Status: fiber.StatusMethodNotAllowed, Message: "Method not allowed"}
}

// NewUpstreamError covers AI-provider failures (502 class).
func NewUpstreamError(message string, err error) *AppError {
	appErr := &AppError{Status: fiber.StatusBadGateway, Message: message}
	if err != nil {
		appErr.Details = err.Error()
	}
	return appErr
}

// NewStoreError wraps a database failure, surfacing the postgres
// diagnostic code when the driver provides one.
func NewStoreError(message string, err error) *AppError {
	appErr := &AppError{Status: fiber.StatusInternalServerError, Message: message}
	if err == nil {
		return appErr
	}
	appErr.Details = err.Error()
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		appErr.Code = pgErr.Code
	}
	return appErr
}

// IsNotFound reports whether err is a gorm record miss.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
