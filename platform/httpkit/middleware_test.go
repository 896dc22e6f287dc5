package httpkit

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"beautycrm_backend/platform/apperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type jwtCfg struct{ secret string }

func (j jwtCfg) GetJWTAccessSecret() string { return j.secret }

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthedEngine(cfg jwtCfg, roles ...string) *gin.Engine {
	r := gin.New()
	r.GET("/me", AuthRequired(cfg), RequireRole(roles...), func(c *gin.Context) {
		id := MustGetIdentity(c)
		c.JSON(http.StatusOK, gin.H{"id": id.UserID().String()})
	})
	return r
}

func TestAuthRequiredAcceptsIssuedToken(t *testing.T) {
	cfg := jwtCfg{secret: "test-secret"}
	userID := uuid.New()
	token, err := IssueAccessToken(cfg, userID, []string{"sales_manager"}, time.Minute)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	r := newAuthedEngine(cfg, "admin", "sales_manager")
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var body map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body["id"] != userID.String() {
		t.Fatalf("expected user id %s, got %s", userID, body["id"])
	}
}

func TestAuthRequiredRejectsWrongSecretAndMissingRole(t *testing.T) {
	cfg := jwtCfg{secret: "test-secret"}
	token, _ := IssueAccessToken(jwtCfg{secret: "other"}, uuid.New(), []string{"admin"}, time.Minute)

	r := newAuthedEngine(cfg, "admin")
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	repToken, _ := IssueAccessToken(cfg, uuid.New(), []string{"sales_rep"}, time.Minute)
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+repToken)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestHandleErrorMapsKinds(t *testing.T) {
	cases := []struct {
		err     error
		status  int
		code    string
		message string
	}{
		{apperr.NotFound("prospect not found"), http.StatusNotFound, "NOT_FOUND", "prospect not found"},
		{apperr.Validation("invalid status"), http.StatusBadRequest, "INVALID_ARGUMENT", "invalid status"},
		{apperr.Conflict("already converted"), http.StatusConflict, "CONFLICT", "already converted"},
		{errors.New("pq: connection reset"), http.StatusInternalServerError, "INTERNAL", "internal error"},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		if !HandleError(c, tc.err, nil) {
			t.Fatalf("expected error to be handled")
		}
		if rec.Code != tc.status {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.status, rec.Code)
		}
		var body ErrorResponse
		_ = json.Unmarshal(rec.Body.Bytes(), &body)
		if body.Code != tc.code || body.Error != tc.message {
			t.Errorf("%v: unexpected body %+v", tc.err, body)
		}
	}
}

func TestRateLimitBlocksAfterBurst(t *testing.T) {
	limiter := NewPerMinuteLimiter(10, nil)
	r := gin.New()
	r.GET("/", limiter.RateLimit(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, rec.Code)
	}

	if codes[0] != http.StatusNoContent {
		t.Fatalf("expected first request to pass, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("expected limiter to kick in, got %v", codes)
	}
}
