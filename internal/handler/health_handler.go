package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger 檢查資料庫連線，*pgxpool.Pool 即符合
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/ping", h.Ping)
}

func (h *HealthHandler) Ping(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "database unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
