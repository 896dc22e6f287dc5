package handler

import (
	"net/http"

	"beautycrm_backend/internal/opportunities/service"
	"beautycrm_backend/platform/httpkit"
	"beautycrm_backend/platform/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler handles HTTP requests for opportunities.
type Handler struct {
	svc *service.Service
	log *logger.Logger
}

// New creates an opportunities handler.
func New(svc *service.Service, log *logger.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// RegisterRoutes mounts opportunity routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/:id", h.Get)
}

// Get returns one opportunity.
// GET /api/v1/opportunities/:id
func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid opportunity id", nil)
		return
	}

	result, err := h.svc.Get(c.Request.Context(), id)
	if httpkit.HandleError(c, err, h.log) {
		return
	}
	httpkit.OK(c, result)
}
