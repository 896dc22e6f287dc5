package handler

import (
	"net/http"
	"strconv"

	"beautycrm_backend/internal/activity/service"
	"beautycrm_backend/platform/httpkit"
	"beautycrm_backend/platform/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler serves the activity timeline.
type Handler struct {
	rec *service.Recorder
	log *logger.Logger
}

// New creates an activity handler.
func New(rec *service.Recorder, log *logger.Logger) *Handler {
	return &Handler{rec: rec, log: log}
}

// Timeline returns a handler listing the timeline of one entity type.
// GET /api/v1/{entity}/:id/activities?limit=
func (h *Handler) Timeline(entityType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			httpkit.Error(c, http.StatusBadRequest, "invalid id", nil)
			return
		}
		limit, _ := strconv.Atoi(c.Query("limit"))

		items, err := h.rec.List(c.Request.Context(), entityType, id, limit)
		if httpkit.HandleError(c, err, h.log) {
			return
		}
		httpkit.OK(c, gin.H{"items": items})
	}
}
