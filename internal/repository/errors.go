package repository

import (
	"errors"
	"fmt"

	apperrors "go-gin-seat-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolationCode     = "23505"
	pgForeignKeyViolationCode = "23503"
	pgStringTooLongCode       = "22001"
	pgNumericOutOfRangeCode   = "22003"
)

// mapConstraintError 將 PostgreSQL 約束錯誤轉為 apperrors
func mapConstraintError(err error, uniqueErr error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolationCode:
		if uniqueErr != nil {
			return uniqueErr
		}
	case pgForeignKeyViolationCode:
		return apperrors.ErrRelatedNotFound
	case pgStringTooLongCode, pgNumericOutOfRangeCode:
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, pgErr.Message)
	}
	return err
}
