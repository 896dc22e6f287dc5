package handler

import (
	"net/http"

	"beautycrm_backend/internal/accounts/service"
	"beautycrm_backend/platform/httpkit"
	"beautycrm_backend/platform/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler handles HTTP requests for accounts.
type Handler struct {
	svc *service.Service
	log *logger.Logger
}

// New creates an accounts handler.
func New(svc *service.Service, log *logger.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// RegisterRoutes mounts account routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/:id", h.Get)
}

// Get returns an account with its contacts.
// GET /api/v1/accounts/:id
func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid account id", nil)
		return
	}

	result, err := h.svc.Get(c.Request.Context(), id)
	if httpkit.HandleError(c, err, h.log) {
		return
	}
	httpkit.OK(c, result)
}
