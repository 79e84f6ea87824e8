package repository

import (
	"context"
	"errors"
	"fmt"

	"go-gin-seat-booking/internal/model"
	apperrors "go-gin-seat-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SeatRepository interface {
	Create(ctx context.Context, seat *model.Seat) (*model.Seat, error)
	List(ctx context.Context) ([]*model.Seat, error)
	ListByCompanyID(ctx context.Context, companyID int) ([]*model.Seat, error)
	FindByID(ctx context.Context, id int) (*model.Seat, error)
	Update(ctx context.Context, seat *model.Seat) (*model.Seat, error)
	Delete(ctx context.Context, id int) error
}

type SeatRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewSeatRepository(pool *pgxpool.Pool) SeatRepository {
	return &SeatRepositoryImpl{
		pool: pool,
	}
}

// seatSelect 連同所屬業者一起查出，讓 Seat.String() 不需額外查詢
const seatSelect = `
		SELECT s.id, s.company_id, s.seat_number, s.type, s.price, s.is_available,
			c.id, c.name, c.description, c.total_seats, c.available_seats, c.create_at
		FROM %s s
		JOIN companies c ON c.id = s.company_id
`

func seatDest(seat *model.Seat) []any {
	seat.Company = &model.Company{}
	return []any{
		&seat.ID,
		&seat.CompanyID,
		&seat.SeatNumber,
		&seat.Type,
		&seat.Price,
		&seat.IsAvailable,
		&seat.Company.ID,
		&seat.Company.Name,
		&seat.Company.Description,
		&seat.Company.TotalSeats,
		&seat.Company.AvailableSeats,
		&seat.Company.CreateAt,
	}
}

func scanSeat(row pgx.Row) (*model.Seat, error) {
	var seat model.Seat
	if err := row.Scan(seatDest(&seat)...); err != nil {
		return nil, err
	}
	return &seat, nil
}

func (r *SeatRepositoryImpl) Create(ctx context.Context, seat *model.Seat) (*model.Seat, error) {
	query := `
		WITH saved AS (
			INSERT INTO seats (company_id, seat_number, type, price, is_available)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING *
		)` + fmt.Sprintf(seatSelect, "saved")

	created, err := scanSeat(r.pool.QueryRow(ctx, query,
		seat.CompanyID, seat.SeatNumber, seat.Type, seat.Price, seat.IsAvailable,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create seat: %w", mapConstraintError(err, nil))
	}

	return created, nil
}

func (r *SeatRepositoryImpl) List(ctx context.Context) ([]*model.Seat, error) {
	query := fmt.Sprintf(seatSelect, "seats") + `
		ORDER BY s.id
	`
	return r.query(ctx, query)
}

func (r *SeatRepositoryImpl) ListByCompanyID(ctx context.Context, companyID int) ([]*model.Seat, error) {
	query := fmt.Sprintf(seatSelect, "seats") + `
		WHERE s.company_id = $1
		ORDER BY s.seat_number, s.id
	`
	return r.query(ctx, query, companyID)
}

func (r *SeatRepositoryImpl) query(ctx context.Context, query string, args ...any) ([]*model.Seat, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make([]*model.Seat, 0)
	for rows.Next() {
		seat, err := scanSeat(rows)
		if err != nil {
			return nil, err
		}
		seats = append(seats, seat)
	}

	return seats, rows.Err()
}

func (r *SeatRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Seat, error) {
	query := fmt.Sprintf(seatSelect, "seats") + `
		WHERE s.id = $1
	`

	seat, err := scanSeat(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSeatNotFound
		}
		return nil, err
	}

	return seat, nil
}

func (r *SeatRepositoryImpl) Update(ctx context.Context, seat *model.Seat) (*model.Seat, error) {
	query := `
		WITH saved AS (
			UPDATE seats
			SET company_id = $1, seat_number = $2, type = $3, price = $4, is_available = $5
			WHERE id = $6
			RETURNING *
		)` + fmt.Sprintf(seatSelect, "saved")

	updated, err := scanSeat(r.pool.QueryRow(ctx, query,
		seat.CompanyID, seat.SeatNumber, seat.Type, seat.Price, seat.IsAvailable,
		seat.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSeatNotFound
		}
		return nil, fmt.Errorf("failed to update seat: %w", mapConstraintError(err, nil))
	}

	return updated, nil
}

// Delete 刪除座位，其加購項目與相關訂位由外鍵 CASCADE 刪除
func (r *SeatRepositoryImpl) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM seats WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrSeatNotFound
	}

	return nil
}
