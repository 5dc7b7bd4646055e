package sqlite

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"strings"

	domainerrors "restaurant/internal/domain/errors"
	"restaurant/internal/errors"

	"gorm.io/gorm"
)

// Helper functions for SQLite error checking. The driver reports extended result
// codes which GORM translates for unique and foreign key violations only.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "unique constraint failed") ||
		strings.Contains(errMsg, "primary key constraint failed")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint failed")
}

func isNotNullConstraintViolation(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "not null constraint failed")
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return strings.Contains(strings.ToLower(err.Error()), "check constraint failed")
}

func isConnectionError(err error) bool {
	if errors.IsAny(err, driver.ErrBadConn, sql.ErrConnDone) {
		return true
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "unable to open database file") ||
		strings.Contains(errMsg, "database is locked") ||
		strings.Contains(errMsg, "database is closed") ||
		strings.Contains(errMsg, "sql: database is closed") ||
		strings.Contains(errMsg, "disk i/o error")
}

// translateError maps a store error onto the domain error taxonomy. Errors that
// already carry a domain kind pass through untouched.
func translateError(ctx context.Context, err error, details string) error {
	if err == nil {
		return nil
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	cause := details + ": " + err.Error()

	switch {
	case ctx.Err() != nil || errors.IsAny(err, context.Canceled, context.DeadlineExceeded):
		return domainerrors.ErrTimeout.WithDetails(cause)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domainerrors.ErrNotFound.WithDetails(details)
	case isUniqueConstraintViolation(err),
		isForeignKeyConstraintViolation(err),
		isCheckConstraintViolation(err),
		isNotNullConstraintViolation(err):
		return domainerrors.ErrConstraintViolation.WithDetails(cause)
	case isConnectionError(err):
		return domainerrors.ErrConnection.WithDetails(cause)
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}
