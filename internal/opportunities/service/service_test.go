package service

import (
	"context"
	"testing"
	"time"

	"beautycrm_backend/internal/opportunities/repository"
	"beautycrm_backend/platform/apperr"

	"github.com/google/uuid"
)

type stubReader struct {
	opp repository.Opportunity
	err error
}

func (s stubReader) GetByID(context.Context, uuid.UUID) (repository.Opportunity, error) {
	return s.opp, s.err
}

func TestGetFormatsCloseDate(t *testing.T) {
	svc := New(stubReader{opp: repository.Opportunity{
		ID:                uuid.New(),
		Name:              "Glow Salon",
		Stage:             "Qualification",
		Currency:          "MYR",
		ExpectedCloseDate: time.Date(2026, 6, 8, 0, 0, 0, 0, time.UTC),
	}})

	resp, err := svc.Get(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ExpectedCloseDate != "2026-06-08" {
		t.Fatalf("expected 2026-06-08, got %q", resp.ExpectedCloseDate)
	}
}

func TestGetNotFound(t *testing.T) {
	_, err := New(stubReader{err: repository.ErrNotFound}).Get(context.Background(), uuid.New())
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
