package service

import (
	"context"
	"errors"
	"time"

	"go-gin-seat-booking/internal/auth"
	"go-gin-seat-booking/internal/model"
	"go-gin-seat-booking/internal/repository"
	apperrors "go-gin-seat-booking/pkg/app_errors"
)

// UserService 管理後台對使用者的存取，新增一律經過 UserManager
type UserService interface {
	List(ctx context.Context) ([]*model.User, error)
	FindByID(ctx context.Context, id int) (*model.User, error)
	Create(ctx context.Context, user *model.User) (*model.User, error)
	Update(ctx context.Context, user *model.User) (*model.User, error)
	Delete(ctx context.Context, id int) error
	// Authenticate 以 email / 密碼驗證，停用帳號無法通過
	Authenticate(ctx context.Context, email, password string) (*model.User, error)
	RecordLogin(ctx context.Context, user *model.User) error
}

type UserServiceImpl struct {
	repo    repository.UserRepository
	manager UserManager
	hasher  auth.PasswordHasher
	now     func() time.Time
}

func NewUserService(repo repository.UserRepository, manager UserManager, hasher auth.PasswordHasher) UserService {
	return &UserServiceImpl{repo: repo, manager: manager, hasher: hasher, now: time.Now}
}

func (s *UserServiceImpl) List(ctx context.Context) ([]*model.User, error) {
	return s.repo.List(ctx)
}

func (s *UserServiceImpl) FindByID(ctx context.Context, id int) (*model.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Create user.Password 為明文
func (s *UserServiceImpl) Create(ctx context.Context, user *model.User) (*model.User, error) {
	active, staff, superuser := user.IsActive, user.IsStaff, user.IsSuperuser
	return s.manager.CreateUser(ctx, user.Email, user.Password, model.UserFields{
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		PhoneNumber: user.PhoneNumber,
		BirthDate:   user.BirthDate,
		IsActive:    &active,
		IsStaff:     &staff,
		IsSuperuser: &superuser,
	})
}

// Update 密碼欄位與資料庫不同時視為新的明文密碼並重新雜湊
func (s *UserServiceImpl) Update(ctx context.Context, user *model.User) (*model.User, error) {
	if user.Email == "" {
		return nil, apperrors.ErrEmailRequired
	}

	existing, err := s.repo.FindByID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	user.Email = NormalizeEmail(user.Email)
	if user.Password != existing.Password {
		hashed, err := s.hasher.Hash(user.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	return s.repo.Update(ctx, user)
}

func (s *UserServiceImpl) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *UserServiceImpl) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive || !s.hasher.Verify(user.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}

func (s *UserServiceImpl) RecordLogin(ctx context.Context, user *model.User) error {
	now := s.now().UTC()
	if err := s.repo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return err
	}
	user.LastLogin = &now
	return nil
}
