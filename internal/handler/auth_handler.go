package handler

import (
	"net/http"
	"time"

	"go-gin-seat-booking/internal/auth"
	"go-gin-seat-booking/internal/service"
	apperrors "go-gin-seat-booking/pkg/app_errors"
	"go-gin-seat-booking/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	users  service.UserService
	issuer auth.TokenIssuer
}

func NewAuthHandler(users service.UserService, issuer auth.TokenIssuer) *AuthHandler {
	return &AuthHandler{users: users, issuer: issuer}
}

func (h *AuthHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1/admin")
	{
		router.POST("login", h.Login)
	}
}

// LoginRequest 後台登入請求
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token       string    `json:"token"`
	ExpiresAt   time.Time `json:"expires_at"`
	UserID      int       `json:"user_id"`
	Email       string    `json:"email"`
	IsSuperuser bool      `json:"is_superuser"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	user, err := h.users.Authenticate(c, req.Email, req.Password)
	if err != nil {
		handleError(c, err, "Login")
		return
	}
	// 非 staff 與帳密錯誤回相同訊息
	if !user.CanAccessAdmin() {
		handleError(c, apperrors.ErrInvalidCredentials, "Login")
		return
	}

	if err := h.users.RecordLogin(c, user); err != nil {
		handleError(c, err, "Login")
		return
	}

	token, exp, err := h.issuer.Issue(user)
	if err != nil {
		handleError(c, err, "Login")
		return
	}

	logger.WithComponent("handler").Info("admin login", zap.Int("user_id", user.ID))
	c.JSON(http.StatusOK, LoginResponse{
		Token:       token,
		ExpiresAt:   exp,
		UserID:      user.ID,
		Email:       user.Email,
		IsSuperuser: user.IsSuperuser,
	})
}
