package handler

import (
	"errors"
	"io"
	"net/http"

	"beautycrm_backend/internal/prospects/service"
	"beautycrm_backend/internal/prospects/transport"
	"beautycrm_backend/platform/httpkit"
	"beautycrm_backend/platform/logger"
	"beautycrm_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// Handler serves the prospect-only conversion routes.
type Handler struct {
	svc *service.Service
	val *validator.Validator
	log *logger.Logger
}

// New creates a prospect handler.
func New(svc *service.Service, val *validator.Validator, log *logger.Logger) *Handler {
	return &Handler{svc: svc, val: val, log: log}
}

// RegisterRoutes mounts the conversion routes on the prospects group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/:id/opportunity", h.CreateOpportunity)
	rg.POST("/:id/convert", h.Convert)
}

// CreateOpportunity opens an opportunity without converting.
// POST /api/v1/prospects/:id/opportunity
func (h *Handler) CreateOpportunity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid prospect id", nil)
		return
	}
	var req transport.CreateOpportunityRequest
	if !h.bindOptional(c, &req) {
		return
	}
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	result, err := h.svc.CreateOpportunity(c.Request.Context(), id, req.ToDomain(), identity.UserID())
	if httpkit.HandleError(c, err, h.log) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, result)
}

// Convert creates the account, contact and opportunity.
// POST /api/v1/prospects/:id/convert
func (h *Handler) Convert(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid prospect id", nil)
		return
	}
	var req transport.ConvertRequest
	if !h.bindOptional(c, &req) {
		return
	}
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	result, err := h.svc.Convert(c.Request.Context(), id, req.ToDomain(), identity.UserID())
	if httpkit.HandleError(c, err, h.log) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, result)
}

// bindOptional binds a JSON body that may be absent.
func (h *Handler) bindOptional(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return false
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, validator.FieldErrors(err))
		return false
	}
	return true
}
