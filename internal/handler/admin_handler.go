package handler

import (
	"io"
	"net/http"

	"go-gin-seat-booking/internal/admin"
	apperrors "go-gin-seat-booking/pkg/app_errors"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	site *admin.Site
}

func NewAdminHandler(site *admin.Site) *AdminHandler {
	return &AdminHandler{site: site}
}

// RegisterRoutes middlewares 依序套用在所有後台路由上
func (h *AdminHandler) RegisterRoutes(r *gin.Engine, middlewares ...gin.HandlerFunc) {
	router := r.Group("/api/v1/admin/models", middlewares...)
	{
		router.GET("", h.Index)
		router.GET(":model", h.Changelist)
		router.POST(":model", h.Add)
		router.GET(":model/:id", h.ChangeView)
		router.PUT(":model/:id", h.Change)
		router.DELETE(":model/:id", h.Delete)
	}
}

func (h *AdminHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"models": h.site.Models()})
}

func (h *AdminHandler) Changelist(c *gin.Context) {
	cl, err := h.site.Changelist(c, c.Param("model"))
	if err != nil {
		handleError(c, err, "Changelist")
		return
	}
	c.JSON(http.StatusOK, cl)
}

func (h *AdminHandler) ChangeView(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	view, err := h.site.ChangeView(c, c.Param("model"), id)
	if err != nil {
		handleError(c, err, "ChangeView")
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *AdminHandler) Add(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		handleError(c, apperrors.ErrInvalidInput, "Add")
		return
	}
	view, err := h.site.Add(c, c.Param("model"), body)
	if err != nil {
		handleError(c, err, "Add")
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *AdminHandler) Change(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		handleError(c, apperrors.ErrInvalidInput, "Change")
		return
	}
	view, err := h.site.Change(c, c.Param("model"), id, body)
	if err != nil {
		handleError(c, err, "Change")
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *AdminHandler) Delete(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	if err := h.site.Delete(c, c.Param("model"), id); err != nil {
		handleError(c, err, "Delete")
		return
	}
	c.Status(http.StatusNoContent)
}
