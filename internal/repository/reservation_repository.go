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

type ReservationRepository interface {
	Create(ctx context.Context, reservation *model.Reservation) (*model.Reservation, error)
	List(ctx context.Context) ([]*model.Reservation, error)
	FindByID(ctx context.Context, id int) (*model.Reservation, error)
	FindByUserID(ctx context.Context, userID int) ([]*model.Reservation, error)
	Update(ctx context.Context, reservation *model.Reservation) (*model.Reservation, error)
	Delete(ctx context.Context, id int) error
}

type ReservationRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) ReservationRepository {
	return &ReservationRepositoryImpl{
		pool: pool,
	}
}

const reservationSelect = `
		SELECT o.id, o.user_id, o.seat_id, o.reception_id, o.buy, o.status, o.total_price,
			u.id, u.email, u.f_name, u.l_name, u.phone_number, u.birth_date,
			u.is_active, u.is_staff, u.is_superuser, u.password, u.last_login,
			s.id, s.company_id, s.seat_number, s.type, s.price, s.is_available,
			c.id, c.name, c.description, c.total_seats, c.available_seats, c.create_at,
			r.id, r.seat_id, r.type, r.price, r.is_available
		FROM %s o
		JOIN users u ON u.id = o.user_id
		JOIN seats s ON s.id = o.seat_id
		JOIN companies c ON c.id = s.company_id
		JOIN receptions r ON r.id = o.reception_id
`

func scanReservation(row pgx.Row) (*model.Reservation, error) {
	res := model.Reservation{
		User:      &model.User{},
		Seat:      &model.Seat{},
		Reception: &model.Reception{},
	}

	dest := []any{
		&res.ID,
		&res.UserID,
		&res.SeatID,
		&res.ReceptionID,
		&res.Buy,
		&res.Status,
		&res.TotalPrice,
		&res.User.ID,
		&res.User.Email,
		&res.User.FirstName,
		&res.User.LastName,
		&res.User.PhoneNumber,
		&res.User.BirthDate,
		&res.User.IsActive,
		&res.User.IsStaff,
		&res.User.IsSuperuser,
		&res.User.Password,
		&res.User.LastLogin,
	}
	dest = append(dest, seatDest(res.Seat)...)
	dest = append(dest,
		&res.Reception.ID,
		&res.Reception.SeatID,
		&res.Reception.Type,
		&res.Reception.Price,
		&res.Reception.IsAvailable,
	)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationRepositoryImpl) Create(ctx context.Context, reservation *model.Reservation) (*model.Reservation, error) {
	query := `
		WITH saved AS (
			INSERT INTO reservations (user_id, seat_id, reception_id, buy, status, total_price)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING *
		)` + fmt.Sprintf(reservationSelect, "saved")

	created, err := scanReservation(r.pool.QueryRow(ctx, query,
		reservation.UserID, reservation.SeatID, reservation.ReceptionID,
		reservation.Buy.UTC(), reservation.Status, reservation.TotalPrice,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", mapConstraintError(err, nil))
	}

	return created, nil
}

func (r *ReservationRepositoryImpl) List(ctx context.Context) ([]*model.Reservation, error) {
	query := fmt.Sprintf(reservationSelect, "reservations") + `
		ORDER BY o.id
	`
	return r.query(ctx, query)
}

func (r *ReservationRepositoryImpl) FindByUserID(ctx context.Context, userID int) ([]*model.Reservation, error) {
	query := fmt.Sprintf(reservationSelect, "reservations") + `
		WHERE o.user_id = $1
		ORDER BY o.buy DESC, o.id DESC
	`
	return r.query(ctx, query, userID)
}

func (r *ReservationRepositoryImpl) query(ctx context.Context, query string, args ...any) ([]*model.Reservation, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := make([]*model.Reservation, 0)
	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, reservation)
	}

	return reservations, rows.Err()
}

func (r *ReservationRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Reservation, error) {
	query := fmt.Sprintf(reservationSelect, "reservations") + `
		WHERE o.id = $1
	`

	reservation, err := scanReservation(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrReservationNotFound
		}
		return nil, err
	}

	return reservation, nil
}

func (r *ReservationRepositoryImpl) Update(ctx context.Context, reservation *model.Reservation) (*model.Reservation, error) {
	query := `
		WITH saved AS (
			UPDATE reservations
			SET user_id = $1, seat_id = $2, reception_id = $3, buy = $4, status = $5, total_price = $6
			WHERE id = $7
			RETURNING *
		)` + fmt.Sprintf(reservationSelect, "saved")

	updated, err := scanReservation(r.pool.QueryRow(ctx, query,
		reservation.UserID, reservation.SeatID, reservation.ReceptionID,
		reservation.Buy.UTC(), reservation.Status, reservation.TotalPrice,
		reservation.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to update reservation: %w", mapConstraintError(err, nil))
	}

	return updated, nil
}

func (r *ReservationRepositoryImpl) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM reservations WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrReservationNotFound
	}

	return nil
}
