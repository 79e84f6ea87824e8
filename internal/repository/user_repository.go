package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-gin-seat-booking/internal/model"
	apperrors "go-gin-seat-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	FindByID(ctx context.Context, id int) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, user *model.User) (*model.User, error)
	UpdateLastLogin(ctx context.Context, id int, at time.Time) error
	Delete(ctx context.Context, id int) error
}

type UserRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &UserRepositoryImpl{
		pool: pool,
	}
}

const userColumns = `id, email, f_name, l_name, phone_number, birth_date,
		is_active, is_staff, is_superuser, password, last_login`

func scanUser(row pgx.Row) (*model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.PhoneNumber,
		&user.BirthDate,
		&user.IsActive,
		&user.IsStaff,
		&user.IsSuperuser,
		&user.Password,
		&user.LastLogin,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *model.User) (*model.User, error) {
	query := `
		INSERT INTO users (
			email, f_name, l_name, phone_number, birth_date,
			is_active, is_staff, is_superuser, password, last_login
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + userColumns

	created, err := scanUser(r.pool.QueryRow(ctx, query,
		user.Email, user.FirstName, user.LastName, user.PhoneNumber, user.BirthDate,
		user.IsActive, user.IsStaff, user.IsSuperuser, user.Password, user.LastLogin,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", mapConstraintError(err, apperrors.ErrEmailAlreadyExists))
	}

	return created, nil
}

func (r *UserRepositoryImpl) List(ctx context.Context) ([]*model.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*model.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

func (r *UserRepositoryImpl) FindByID(ctx context.Context, id int) (*model.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`

	user, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
	`

	user, err := scanUser(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r *UserRepositoryImpl) Update(ctx context.Context, user *model.User) (*model.User, error) {
	query := `
		UPDATE users
		SET email = $1, f_name = $2, l_name = $3, phone_number = $4, birth_date = $5,
			is_active = $6, is_staff = $7, is_superuser = $8, password = $9, last_login = $10
		WHERE id = $11
		RETURNING ` + userColumns

	updated, err := scanUser(r.pool.QueryRow(ctx, query,
		user.Email, user.FirstName, user.LastName, user.PhoneNumber, user.BirthDate,
		user.IsActive, user.IsStaff, user.IsSuperuser, user.Password, user.LastLogin,
		user.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user: %w", mapConstraintError(err, apperrors.ErrEmailAlreadyExists))
	}

	return updated, nil
}

func (r *UserRepositoryImpl) UpdateLastLogin(ctx context.Context, id int, at time.Time) error {
	query := `
		UPDATE users
		SET last_login = $1
		WHERE id = $2
	`

	result, err := r.pool.Exec(ctx, query, at.UTC(), id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// Delete 直接刪除，相關訂位由外鍵 ON DELETE CASCADE 一併刪除
func (r *UserRepositoryImpl) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM users WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}
