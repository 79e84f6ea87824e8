package repository

import (
	"errors"
	"fmt"
	"testing"

	apperrors "go-gin-seat-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapConstraintError(t *testing.T) {
	pgErr := func(code string) error {
		return fmt.Errorf("insert seat: %w", &pgconn.PgError{Code: code, Message: "value out of range"})
	}

	assert.ErrorIs(t, mapConstraintError(pgErr(pgUniqueViolationCode), apperrors.ErrEmailAlreadyExists), apperrors.ErrEmailAlreadyExists)
	assert.ErrorIs(t, mapConstraintError(pgErr(pgForeignKeyViolationCode), nil), apperrors.ErrRelatedNotFound)
	assert.ErrorIs(t, mapConstraintError(pgErr(pgNumericOutOfRangeCode), nil), apperrors.ErrInvalidInput)
	assert.ErrorIs(t, mapConstraintError(pgErr(pgStringTooLongCode), nil), apperrors.ErrInvalidInput)

	other := errors.New("connection reset")
	assert.Equal(t, other, mapConstraintError(other, nil))

	unique := pgErr(pgUniqueViolationCode)
	assert.Equal(t, unique, mapConstraintError(unique, nil), "unique violation without mapping passes through")
}
