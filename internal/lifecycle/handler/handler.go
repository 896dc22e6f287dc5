package handler

import (
	"io"
	"net/http"

	"beautycrm_backend/internal/lifecycle/service"
	"beautycrm_backend/internal/lifecycle/transport"
	"beautycrm_backend/platform/httpkit"
	"beautycrm_backend/platform/logger"
	"beautycrm_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgInvalidID        = "invalid id"

	maxImportBytes = 10 << 20
)

// Handler serves the lifecycle routes of one entity type.
type Handler struct {
	svc *service.Service
	val *validator.Validator
	log *logger.Logger
}

// New creates a lifecycle handler.
func New(svc *service.Service, val *validator.Validator, log *logger.Logger) *Handler {
	return &Handler{svc: svc, val: val, log: log}
}

// RegisterRoutes mounts the shared lifecycle routes on rg.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	managers := httpkit.RequireRole(httpkit.RoleAdmin, httpkit.RoleSalesManager)

	rg.GET("", h.List)
	rg.GET("/metrics", h.Metrics)
	rg.POST("/import", managers, h.BulkImport)
	rg.GET("/:id", h.Get)
	rg.GET("/:id/score", h.ScoreBreakdown)
	rg.POST("/:id/qualify", h.Qualify)
	rg.POST("/:id/assign", managers, h.Assign)
	rg.POST("/:id/status", h.ChangeStatus)
	rg.POST("/:id/about", h.GenerateAbout)
}

// List returns a decorated page.
// GET /api/v1/{entity}
func (h *Handler) List(c *gin.Context) {
	var req transport.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, validator.FieldErrors(err))
		return
	}

	result, err := h.svc.List(c.Request.Context(), req)
	if httpkit.HandleError(c, err, h.log) {
		return
	}
	httpkit.OK(c, result)
}

// Metrics returns pipeline KPIs.
// GET /api/v1/{entity}/metrics
func (h *Handler) Metrics(c *gin.Context) {
	result, err := h.svc.Metrics(c.Request.Context())
	if httpkit.HandleError(c, err, h.log) {
		return
	}
	httpkit.OK(c, result)
}

// Get returns one decorated entity.
// GET /api/v1/{entity}/:id
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result, err := h.svc.Get(c.Request.Context(), id)
	if httpkit.HandleError(c, err, h.log) {
		return
	}
	httpkit.OK(c, result)
}

// ScoreBreakdown explains the score.
// GET /api/v1/{entity}/:id/score
func (h *Handler) ScoreBreakdown(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result, err := h.svc.ScoreBreakdown(c.Request.Context(), id)
	if httpkit.HandleError(c, err, h.log) {
		return
	}
	httpkit.OK(c, result)
}

// Qualify moves the entity to Qualified and rescores it.
// POST /api/v1/{entity}/:id/qualify
func (h *Handler) Qualify(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	result, err := h.svc.Qualify(c.Request.Context(), id, identity.UserID())
	if httpkit.HandleError(c, err, h.log) {
		return
	}
	httpkit.OK(c, result)
}

// Assign sets the sales rep.
// POST /api/v1/{entity}/:id/assign
func (h *Handler) Assign(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req transport.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, validator.FieldErrors(err))
		return
	}
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	result, err := h.svc.Assign(c.Request.Context(), id, req.SalesRepID, identity.UserID())
	if httpkit.HandleError(c, err, h.log) {
		return
	}
	httpkit.OK(c, result)
}

// ChangeStatus applies a status transition.
// POST /api/v1/{entity}/:id/status
func (h *Handler) ChangeStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req transport.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, validator.FieldErrors(err))
		return
	}
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	result, err := h.svc.ChangeStatus(c.Request.Context(), id, req.Status, identity.UserID())
	if httpkit.HandleError(c, err, h.log) {
		return
	}
	httpkit.OK(c, result)
}

// GenerateAbout regenerates the about text.
// POST /api/v1/{entity}/:id/about
func (h *Handler) GenerateAbout(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	result, err := h.svc.GenerateAbout(c.Request.Context(), id, identity.UserID())
	if httpkit.HandleError(c, err, h.log) {
		return
	}
	httpkit.OK(c, result)
}

// BulkImport creates entities from a raw JSON array body.
// POST /api/v1/{entity}/import
func (h *Handler) BulkImport(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxImportBytes))
	if err != nil {
		httpkit.Error(c, http.StatusRequestEntityTooLarge, "import payload too large", nil)
		return
	}

	result, err := h.svc.BulkImport(c.Request.Context(), body, identity.UserID())
	if httpkit.HandleError(c, err, h.log) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, result)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return uuid.Nil, false
	}
	return id, true
}
