package admin

import (
	"math"
	"strings"
	"testing"
	"time"

	"go-gin-seat-booking/internal/model"
	apperrors "go-gin-seat-booking/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int {
	return &n
}

func assertFieldError(t *testing.T, err error, field string) {
	t.Helper()
	verr, ok := apperrors.IsValidationError(err)
	require.True(t, ok, "expected validation error, got %v", err)
	assert.Equal(t, field, verr.Field)
	assert.NotEmpty(t, verr.Message)
}

func TestValidateUser(t *testing.T) {
	assert.NoError(t, validate(&model.User{Email: "a@b.com"}))

	tests := []struct {
		name  string
		user  model.User
		field string
	}{
		{"Empty email", model.User{}, "email"},
		{"Malformed email", model.User{Email: "nobody"}, "email"},
		{"Phone too long", model.User{Email: "a@b.com", PhoneNumber: strings.Repeat("1", 16)}, "phone_number"},
		{"First name too long", model.User{Email: "a@b.com", FirstName: strings.Repeat("a", 256)}, "f_name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertFieldError(t, validate(&tt.user), tt.field)
		})
	}

	t.Run("Message", func(t *testing.T) {
		verr, ok := apperrors.IsValidationError(validate(&model.User{}))
		require.True(t, ok)
		assert.Equal(t, "this field is required", verr.Message)
	})
}

func TestValidateCompany(t *testing.T) {
	assert.NoError(t, validate(&model.Company{Name: "Acme", TotalSeats: intPtr(math.MaxInt32)}))

	assertFieldError(t, validate(&model.Company{}), "name")
	assertFieldError(t, validate(&model.Company{Name: "Acme", TotalSeats: intPtr(math.MaxInt32 + 1)}), "total_seats")
	assertFieldError(t, validate(&model.Company{Name: "Acme", AvailableSeats: intPtr(math.MinInt32 - 1)}), "available_seats")
}

func TestValidateSeat(t *testing.T) {
	valid := model.Seat{CompanyID: 1, SeatNumber: 12, Type: model.SeatTypeCompartment, Price: 99.5}
	assert.NoError(t, validate(&valid))

	t.Run("Largest price that rounds into range", func(t *testing.T) {
		seat := valid
		seat.Price = 99999999.994
		assert.NoError(t, validate(&seat))
	})

	tests := []struct {
		name   string
		mutate func(*model.Seat)
		field  string
	}{
		{"Missing company", func(s *model.Seat) { s.CompanyID = 0 }, "company_id"},
		{"Unknown type", func(s *model.Seat) { s.Type = "XX" }, "type"},
		{"Seat number overflow", func(s *model.Seat) { s.SeatNumber = 3000000000 }, "seat_number"},
		{"Price rounds past ten digits", func(s *model.Seat) { s.Price = 99999999.999 }, "price"},
		{"Price overflow", func(s *model.Seat) { s.Price = 1e9 }, "price"},
		{"NaN price", func(s *model.Seat) { s.Price = math.NaN() }, "price"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seat := valid
			tt.mutate(&seat)
			assertFieldError(t, validate(&seat), tt.field)
		})
	}

	t.Run("Choice message", func(t *testing.T) {
		seat := valid
		seat.Type = "XX"
		verr, ok := apperrors.IsValidationError(validate(&seat))
		require.True(t, ok)
		assert.Equal(t, `"XX" is not a valid choice`, verr.Message)
	})
}

func TestValidateReception(t *testing.T) {
	assert.NoError(t, validate(&model.Reception{SeatID: 1, Type: model.ReceptionTypeDessert, Price: 3.5}))

	assertFieldError(t, validate(&model.Reception{Type: model.ReceptionTypeDrink}), "seat_id")
	assertFieldError(t, validate(&model.Reception{SeatID: 1, Type: "TE"}), "type")
}

func TestValidateReservation(t *testing.T) {
	valid := model.Reservation{
		UserID:      1,
		SeatID:      2,
		ReceptionID: 3,
		Buy:         time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC),
		Status:      model.ReservationStatusConfirmed,
		TotalPrice:  120,
	}
	assert.NoError(t, validate(&valid))

	missingBuy := valid
	missingBuy.Buy = time.Time{}
	assertFieldError(t, validate(&missingBuy), "buy")

	badStatus := valid
	badStatus.Status = "XX"
	assertFieldError(t, validate(&badStatus), "status")

	badTotal := valid
	badTotal.TotalPrice = 1e8
	assertFieldError(t, validate(&badTotal), "total_price")
}
