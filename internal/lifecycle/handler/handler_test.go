package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"beautycrm_backend/internal/lifecycle/domain"
	"beautycrm_backend/internal/lifecycle/repository"
	"beautycrm_backend/internal/lifecycle/service"
	"beautycrm_backend/internal/lifecycle/transport"
	"beautycrm_backend/platform/httpkit"
	"beautycrm_backend/platform/logger"
	"beautycrm_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRepo serves a single row; unused methods panic through the nil embed.
type stubRepo struct {
	repository.EntityRepository
	row domain.Entity
}

func (s *stubRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Entity, error) {
	if id != s.row.ID {
		return domain.Entity{}, repository.ErrNotFound
	}
	return s.row, nil
}

func (s *stubRepo) UpdateStatus(_ context.Context, p repository.UpdateStatusParams) (domain.Entity, error) {
	s.row.Status = p.ToStatus
	return s.row, nil
}

func newRouter(t *testing.T, row domain.Entity, roles ...string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	val := validator.New()
	require.NoError(t, transport.RegisterValidations(val))
	svc := service.New(domain.Prospect, service.Deps{
		Repo:      &stubRepo{row: row},
		Validator: val,
		Log:       logger.Nop(),
	})

	r := gin.New()
	group := r.Group("/prospects", func(c *gin.Context) {
		c.Set(httpkit.ContextUserIDKey, uuid.New())
		c.Set(httpkit.ContextRolesKey, roles)
		c.Next()
	})
	New(svc, val, logger.Nop()).RegisterRoutes(group)
	return r
}

func TestChangeStatusHTTPCodes(t *testing.T) {
	row := domain.Entity{ID: uuid.New(), Name: "Glow", Status: domain.ProspectStatusNegotiating, ModifiedAt: time.Now()}

	cases := []struct {
		name string
		path string
		body string
		want int
		code string
	}{
		{"bogus status", "/prospects/" + row.ID.String() + "/status", `{"status":"Bogus"}`, http.StatusBadRequest, "INVALID_ARGUMENT"},
		{"backward", "/prospects/" + row.ID.String() + "/status", `{"status":"New"}`, http.StatusConflict, "CONFLICT"},
		{"reserved", "/prospects/" + row.ID.String() + "/status", `{"status":"Converted"}`, http.StatusConflict, "CONFLICT"},
		{"missing", "/prospects/" + uuid.NewString() + "/status", `{"status":"Lost"}`, http.StatusNotFound, "NOT_FOUND"},
		{"bad id", "/prospects/nope/status", `{"status":"Lost"}`, http.StatusBadRequest, ""},
		{"forward", "/prospects/" + row.ID.String() + "/status", `{"status":"In Review"}`, http.StatusOK, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRouter(t, row, httpkit.RoleSalesRep)
			req := httptest.NewRequest(http.MethodPost, tc.path, strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			assert.Equal(t, tc.want, rec.Code, rec.Body.String())
			if tc.code != "" {
				var body httpkit.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tc.code, body.Code)
			}
		})
	}
}

func TestImportRequiresManagerRole(t *testing.T) {
	r := newRouter(t, domain.Entity{ID: uuid.New()}, httpkit.RoleSalesRep)
	req := httptest.NewRequest(http.MethodPost, "/prospects/import", strings.NewReader(`[]`))
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestImportRejectsObjectBody(t *testing.T) {
	r := newRouter(t, domain.Entity{ID: uuid.New()}, httpkit.RoleAdmin)
	req := httptest.NewRequest(http.MethodPost, "/prospects/import", strings.NewReader(`{"name":"Glow"}`))
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ARGUMENT")
}
