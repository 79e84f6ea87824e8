//go:build integration

package repository_test

import (
	"context"
	"testing"

	"go-gin-seat-booking/internal/model"
	"go-gin-seat-booking/internal/repository"
	apperrors "go-gin-seat-booking/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinedDisplayStrings(t *testing.T) {
	setupTestWithTruncate(t)
	ctx := context.Background()
	f := createFixture(t)

	seat, err := repository.NewSeatRepository(testDB).FindByID(ctx, f.seat.ID)
	require.NoError(t, err)
	assert.Equal(t, "12'th CO seat in Acme company", seat.String())
	assert.Equal(t, 150.25, seat.Price)

	reception, err := repository.NewReceptionRepository(testDB).FindByID(ctx, f.reception.ID)
	require.NoError(t, err)
	assert.Equal(t, "FO for 12'th CO seat in Acme company", reception.String())

	reservation, err := repository.NewReservationRepository(testDB).FindByID(ctx, f.reservation.ID)
	require.NoError(t, err)
	assert.Equal(t, "Reservation: Ann Lee: ann@site.com  -> 12'th CO seat in Acme company with FO", reservation.String())
	assert.Equal(t, model.ReservationStatusConfirmed, reservation.Status)

	assert.Equal(t, f.reservation.String(), reservation.String(), "create returns the joined row")
}

func TestDeleteCompanyCascades(t *testing.T) {
	setupTestWithTruncate(t)
	ctx := context.Background()
	f := createFixture(t)

	require.NoError(t, repository.NewCompanyRepository(testDB).Delete(ctx, f.company.ID))

	assert.Equal(t, 0, countRows(t, "seats"))
	assert.Equal(t, 0, countRows(t, "receptions"))
	assert.Equal(t, 0, countRows(t, "reservations"))
	assert.Equal(t, 1, countRows(t, "users"))
}

func TestDeleteUserCascades(t *testing.T) {
	setupTestWithTruncate(t)
	ctx := context.Background()
	f := createFixture(t)

	require.NoError(t, repository.NewUserRepository(testDB).Delete(ctx, f.user.ID))

	assert.Equal(t, 0, countRows(t, "reservations"))
	assert.Equal(t, 1, countRows(t, "seats"))
	assert.Equal(t, 1, countRows(t, "receptions"))
}

func TestDeleteReceptionCascades(t *testing.T) {
	setupTestWithTruncate(t)
	ctx := context.Background()
	f := createFixture(t)

	require.NoError(t, repository.NewReceptionRepository(testDB).Delete(ctx, f.reception.ID))

	assert.Equal(t, 0, countRows(t, "reservations"))
	assert.Equal(t, 1, countRows(t, "seats"))
}

func TestMissingRelation(t *testing.T) {
	setupTestWithTruncate(t)
	ctx := context.Background()

	_, err := repository.NewSeatRepository(testDB).Create(ctx, &model.Seat{CompanyID: 999, Type: model.SeatTypeSingle, Price: 1})
	assert.ErrorIs(t, err, apperrors.ErrRelatedNotFound)
}

func TestListBy(t *testing.T) {
	setupTestWithTruncate(t)
	ctx := context.Background()
	f := createFixture(t)

	seats, err := repository.NewSeatRepository(testDB).ListByCompanyID(ctx, f.company.ID)
	require.NoError(t, err)
	assert.Len(t, seats, 1)

	receptions, err := repository.NewReceptionRepository(testDB).ListBySeatID(ctx, f.seat.ID)
	require.NoError(t, err)
	assert.Len(t, receptions, 1)

	reservations, err := repository.NewReservationRepository(testDB).FindByUserID(ctx, f.user.ID)
	require.NoError(t, err)
	assert.Len(t, reservations, 1)

	companies, err := repository.NewCompanyRepository(testDB).List(ctx)
	require.NoError(t, err)
	require.Len(t, companies, 1)
	require.NotNil(t, companies[0].TotalSeats)
	assert.Equal(t, 40, *companies[0].TotalSeats)
	assert.False(t, companies[0].CreateAt.IsZero())
}
