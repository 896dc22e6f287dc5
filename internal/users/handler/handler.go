package handler

import (
	"net/http"

	"beautycrm_backend/internal/users/service"
	"beautycrm_backend/internal/users/transport"
	"beautycrm_backend/platform/httpkit"
	"beautycrm_backend/platform/logger"
	"beautycrm_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler handles HTTP requests for users.
type Handler struct {
	svc *service.Service
	val *validator.Validator
	log *logger.Logger
}

// New creates a users handler.
func New(svc *service.Service, val *validator.Validator, log *logger.Logger) *Handler {
	return &Handler{svc: svc, val: val, log: log}
}

// List returns all users.
// GET /api/v1/users
func (h *Handler) List(c *gin.Context) {
	result, err := h.svc.List(c.Request.Context())
	if httpkit.HandleError(c, err, h.log) {
		return
	}
	httpkit.OK(c, gin.H{"items": result})
}

// Get returns one user.
// GET /api/v1/users/:id
func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid user id", nil)
		return
	}

	result, err := h.svc.Get(c.Request.Context(), id)
	if httpkit.HandleError(c, err, h.log) {
		return
	}
	httpkit.OK(c, result)
}

// Create adds a user.
// POST /api/v1/admin/users
func (h *Handler) Create(c *gin.Context) {
	var req transport.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", validator.FieldErrors(err))
		return
	}

	result, err := h.svc.Create(c.Request.Context(), req)
	if httpkit.HandleError(c, err, h.log) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, result)
}
