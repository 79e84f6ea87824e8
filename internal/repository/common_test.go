//go:build integration

package repository_test

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"go-gin-seat-booking/config"
	"go-gin-seat-booking/internal/database"
	"go-gin-seat-booking/internal/model"
	"go-gin-seat-booking/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// testDB 是測試用的資料庫連接池
var testDB *pgxpool.Pool

func TestMain(m *testing.M) {
	cfg := config.LoadTestConfig()

	var err error
	testDB, err = database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize test database: %v", err)
	}

	if err := database.Migrate(context.Background(), testDB); err != nil {
		log.Fatalf("Failed to migrate test database: %v", err)
	}

	log.Println("Test database connected successfully")
	log.Println("Running repository tests...")

	code := m.Run()
	testDB.Close()
	log.Println("Test database closed")

	os.Exit(code)
}

func setupTestWithTruncate(t *testing.T) {
	t.Helper()

	// 清空所有測試資料，保留 schema
	_, err := testDB.Exec(context.Background(),
		"TRUNCATE reservations, receptions, seats, companies, users RESTART IDENTITY CASCADE")
	if err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
}

// fixture 一組完整的使用者、業者、座位、加購與訂位
type fixture struct {
	user        *model.User
	company     *model.Company
	seat        *model.Seat
	reception   *model.Reception
	reservation *model.Reservation
}

func createFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()

	user, err := repository.NewUserRepository(testDB).Create(ctx, &model.User{
		Email: "ann@site.com", FirstName: "Ann", LastName: "Lee", IsActive: true, Password: "!unusable",
	})
	require.NoError(t, err)

	total := 40
	company, err := repository.NewCompanyRepository(testDB).Create(ctx, &model.Company{Name: "Acme", TotalSeats: &total})
	require.NoError(t, err)

	seat, err := repository.NewSeatRepository(testDB).Create(ctx, &model.Seat{
		CompanyID: company.ID, SeatNumber: 12, Type: model.SeatTypeCompartment, Price: 150.25, IsAvailable: true,
	})
	require.NoError(t, err)

	reception, err := repository.NewReceptionRepository(testDB).Create(ctx, &model.Reception{
		SeatID: seat.ID, Type: model.ReceptionTypeFood, Price: 20, IsAvailable: true,
	})
	require.NoError(t, err)

	reservation, err := repository.NewReservationRepository(testDB).Create(ctx, &model.Reservation{
		UserID:      user.ID,
		SeatID:      seat.ID,
		ReceptionID: reception.ID,
		Buy:         time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
		Status:      model.ReservationStatusConfirmed,
		TotalPrice:  170.25,
	})
	require.NoError(t, err)

	return fixture{user, company, seat, reception, reservation}
}

func countRows(t *testing.T, table string) int {
	t.Helper()
	var count int
	err := testDB.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&count)
	require.NoError(t, err)
	return count
}
