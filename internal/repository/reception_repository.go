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

type ReceptionRepository interface {
	Create(ctx context.Context, reception *model.Reception) (*model.Reception, error)
	List(ctx context.Context) ([]*model.Reception, error)
	ListBySeatID(ctx context.Context, seatID int) ([]*model.Reception, error)
	FindByID(ctx context.Context, id int) (*model.Reception, error)
	Update(ctx context.Context, reception *model.Reception) (*model.Reception, error)
	Delete(ctx context.Context, id int) error
}

type ReceptionRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewReceptionRepository(pool *pgxpool.Pool) ReceptionRepository {
	return &ReceptionRepositoryImpl{
		pool: pool,
	}
}

const receptionSelect = `
		SELECT r.id, r.seat_id, r.type, r.price, r.is_available,
			s.id, s.company_id, s.seat_number, s.type, s.price, s.is_available,
			c.id, c.name, c.description, c.total_seats, c.available_seats, c.create_at
		FROM %s r
		JOIN seats s ON s.id = r.seat_id
		JOIN companies c ON c.id = s.company_id
`

func receptionDest(reception *model.Reception) []any {
	reception.Seat = &model.Seat{}
	return append([]any{
		&reception.ID,
		&reception.SeatID,
		&reception.Type,
		&reception.Price,
		&reception.IsAvailable,
	}, seatDest(reception.Seat)...)
}

func scanReception(row pgx.Row) (*model.Reception, error) {
	var reception model.Reception
	if err := row.Scan(receptionDest(&reception)...); err != nil {
		return nil, err
	}
	return &reception, nil
}

func (r *ReceptionRepositoryImpl) Create(ctx context.Context, reception *model.Reception) (*model.Reception, error) {
	query := `
		WITH saved AS (
			INSERT INTO receptions (seat_id, type, price, is_available)
			VALUES ($1, $2, $3, $4)
			RETURNING *
		)` + fmt.Sprintf(receptionSelect, "saved")

	created, err := scanReception(r.pool.QueryRow(ctx, query,
		reception.SeatID, reception.Type, reception.Price, reception.IsAvailable,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create reception: %w", mapConstraintError(err, nil))
	}

	return created, nil
}

func (r *ReceptionRepositoryImpl) List(ctx context.Context) ([]*model.Reception, error) {
	query := fmt.Sprintf(receptionSelect, "receptions") + `
		ORDER BY r.id
	`
	return r.query(ctx, query)
}

func (r *ReceptionRepositoryImpl) ListBySeatID(ctx context.Context, seatID int) ([]*model.Reception, error) {
	query := fmt.Sprintf(receptionSelect, "receptions") + `
		WHERE r.seat_id = $1
		ORDER BY r.id
	`
	return r.query(ctx, query, seatID)
}

func (r *ReceptionRepositoryImpl) query(ctx context.Context, query string, args ...any) ([]*model.Reception, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	receptions := make([]*model.Reception, 0)
	for rows.Next() {
		reception, err := scanReception(rows)
		if err != nil {
			return nil, err
		}
		receptions = append(receptions, reception)
	}

	return receptions, rows.Err()
}

func (r *ReceptionRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Reception, error) {
	query := fmt.Sprintf(receptionSelect, "receptions") + `
		WHERE r.id = $1
	`

	reception, err := scanReception(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrReceptionNotFound
		}
		return nil, err
	}

	return reception, nil
}

func (r *ReceptionRepositoryImpl) Update(ctx context.Context, reception *model.Reception) (*model.Reception, error) {
	query := `
		WITH saved AS (
			UPDATE receptions
			SET seat_id = $1, type = $2, price = $3, is_available = $4
			WHERE id = $5
			RETURNING *
		)` + fmt.Sprintf(receptionSelect, "saved")

	updated, err := scanReception(r.pool.QueryRow(ctx, query,
		reception.SeatID, reception.Type, reception.Price, reception.IsAvailable,
		reception.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrReceptionNotFound
		}
		return nil, fmt.Errorf("failed to update reception: %w", mapConstraintError(err, nil))
	}

	return updated, nil
}

// Delete 刪除加購項目，相關訂位由外鍵 CASCADE 刪除
func (r *ReceptionRepositoryImpl) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM receptions WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrReceptionNotFound
	}

	return nil
}
