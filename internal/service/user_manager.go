package service

import (
	"context"
	"strings"

	"go-gin-seat-booking/internal/auth"
	"go-gin-seat-booking/internal/model"
	"go-gin-seat-booking/internal/repository"
	apperrors "go-gin-seat-booking/pkg/app_errors"
	"go-gin-seat-booking/pkg/logger"

	"go.uber.org/zap"
)

type UserManager interface {
	// 建立一般使用者：email 正規化、密碼雜湊後寫入
	CreateUser(ctx context.Context, email, password string, extra model.UserFields) (*model.User, error)
	// 建立超級使用者：is_active / is_staff / is_superuser 一律為 true
	CreateSuperuser(ctx context.Context, email, password string) (*model.User, error)
}

type UserManagerImpl struct {
	repo   repository.UserRepository
	hasher auth.PasswordHasher
}

func NewUserManager(repo repository.UserRepository, hasher auth.PasswordHasher) UserManager {
	return &UserManagerImpl{repo: repo, hasher: hasher}
}

// NormalizeEmail 僅將 @ 之後的網域轉小寫，沒有 @ 時原樣回傳
func NormalizeEmail(email string) string {
	trimmed := strings.TrimSpace(email)
	at := strings.LastIndex(trimmed, "@")
	if at < 0 {
		return email
	}
	return trimmed[:at] + "@" + strings.ToLower(trimmed[at+1:])
}

func (m *UserManagerImpl) CreateUser(ctx context.Context, email, password string, extra model.UserFields) (*model.User, error) {
	if email == "" {
		return nil, apperrors.ErrEmailRequired
	}

	user := model.NewUser()
	user.Email = NormalizeEmail(email)
	extra.Apply(user)

	hashed, err := m.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	user.Password = hashed

	created, err := m.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	logger.WithComponent("user_manager").Info("user created",
		zap.Int("user_id", created.ID),
		zap.Bool("is_staff", created.IsStaff),
	)
	return created, nil
}

func (m *UserManagerImpl) CreateSuperuser(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" {
		return nil, apperrors.ErrEmailRequired
	}

	user, err := m.CreateUser(ctx, email, password, model.UserFields{})
	if err != nil {
		return nil, err
	}

	user.IsActive = true
	user.IsStaff = true
	user.IsSuperuser = true

	return m.repo.Update(ctx, user)
}
