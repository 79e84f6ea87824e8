package handler

import (
	"errors"
	"net/http"
	"strconv"

	"go-gin-seat-booking/internal/auth"
	apperrors "go-gin-seat-booking/pkg/app_errors"
	"go-gin-seat-booking/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

// ParamID 解析路徑上的整數 id，失敗時直接回 400
func ParamID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid id",
		})
		return 0, false
	}
	return id, true
}

// handleError 將 apperrors 對應到 HTTP 狀態碼並記錄
func handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))

	if verr, ok := apperrors.IsValidationError(err); ok {
		log.Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": verr.Message,
			"field": verr.Field,
		})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrModelNotRegistered):
		log.Warn("Model not registered")
		c.JSON(http.StatusNotFound, gin.H{"error": "Model not found"})
	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrCompanyNotFound),
		errors.Is(err, apperrors.ErrSeatNotFound),
		errors.Is(err, apperrors.ErrReceptionNotFound),
		errors.Is(err, apperrors.ErrReservationNotFound):
		log.Warn("Object not found")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	case errors.Is(err, apperrors.ErrRelatedNotFound):
		log.Warn("Related object not found")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Related object does not exist"})
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		log.Warn("Email already exists")
		c.JSON(http.StatusConflict, gin.H{"error": "User with this email already exists"})
	case errors.Is(err, apperrors.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidToken):
		log.Warn("Unauthorized")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, apperrors.ErrPermissionDenied):
		log.Warn("Permission denied")
		c.JSON(http.StatusForbidden, gin.H{"error": "Permission denied"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
