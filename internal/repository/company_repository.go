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

type CompanyRepository interface {
	Create(ctx context.Context, company *model.Company) (*model.Company, error)
	List(ctx context.Context) ([]*model.Company, error)
	FindByID(ctx context.Context, id int) (*model.Company, error)
	Update(ctx context.Context, company *model.Company) (*model.Company, error)
	Delete(ctx context.Context, id int) error
}

type CompanyRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewCompanyRepository(pool *pgxpool.Pool) CompanyRepository {
	return &CompanyRepositoryImpl{
		pool: pool,
	}
}

const companyColumns = `id, name, description, total_seats, available_seats, create_at`

func scanCompany(row pgx.Row) (*model.Company, error) {
	var company model.Company
	err := row.Scan(
		&company.ID,
		&company.Name,
		&company.Description,
		&company.TotalSeats,
		&company.AvailableSeats,
		&company.CreateAt,
	)
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) Create(ctx context.Context, company *model.Company) (*model.Company, error) {
	query := `
		INSERT INTO companies (name, description, total_seats, available_seats)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + companyColumns

	created, err := scanCompany(r.pool.QueryRow(ctx, query,
		company.Name, company.Description, company.TotalSeats, company.AvailableSeats,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create company: %w", mapConstraintError(err, nil))
	}

	return created, nil
}

func (r *CompanyRepositoryImpl) List(ctx context.Context) ([]*model.Company, error) {
	query := `
		SELECT ` + companyColumns + `
		FROM companies
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companies := make([]*model.Company, 0)
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}

	return companies, rows.Err()
}

func (r *CompanyRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Company, error) {
	query := `
		SELECT ` + companyColumns + `
		FROM companies
		WHERE id = $1
	`

	company, err := scanCompany(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, err
	}

	return company, nil
}

// Update create_at 建立後不可修改
func (r *CompanyRepositoryImpl) Update(ctx context.Context, company *model.Company) (*model.Company, error) {
	query := `
		UPDATE companies
		SET name = $1, description = $2, total_seats = $3, available_seats = $4
		WHERE id = $5
		RETURNING ` + companyColumns

	updated, err := scanCompany(r.pool.QueryRow(ctx, query,
		company.Name, company.Description, company.TotalSeats, company.AvailableSeats,
		company.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to update company: %w", mapConstraintError(err, nil))
	}

	return updated, nil
}

// Delete 刪除業者，其座位、加購項目及相關訂位由外鍵 CASCADE 刪除
func (r *CompanyRepositoryImpl) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM companies WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrCompanyNotFound
	}

	return nil
}
