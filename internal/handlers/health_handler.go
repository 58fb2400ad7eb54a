package handlers

import (
	"errors"
	"net/http"

	"giglink_backend/pkg/apperrors"
	"giglink_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	*BaseHandler
}

func NewHealthHandler(base *BaseHandler) *HealthHandler {
	return &HealthHandler{BaseHandler: base}
}

func (h *HealthHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/health", h.Health)
}

// Health pings the database through the request-scoped handle placed there
// by DBMiddleware.
func (h *HealthHandler) Health(c *gin.Context) {
	db, ok := c.Request.Context().Value(contextkeys.DBContextKey).(*gorm.DB)
	if !ok {
		apperrors.HandleError(c, apperrors.InternalError(errors.New("db handle missing from request context")))
		return
	}

	sqlDB, err := db.DB()
	if err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return
	}
	if err := sqlDB.Ping(); err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
