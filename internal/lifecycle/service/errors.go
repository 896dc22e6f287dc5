package service

import (
	"errors"
	"fmt"
	"strings"

	"beautycrm_backend/internal/lifecycle/domain"
	"beautycrm_backend/internal/lifecycle/repository"
	"beautycrm_backend/platform/apperr"
)

func (s *Service) mapRepoErr(op string, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return apperr.NotFound(s.et.Label + " not found").WithOp(s.op(op))
	case errors.Is(err, repository.ErrStatusConflict):
		return apperr.Conflict(s.et.Label + " status changed concurrently, reload and retry").WithOp(s.op(op))
	default:
		return apperr.Internal(strings.ToLower(op)+" failed", err).WithOp(s.op(op))
	}
}

// mapTransitionErr turns a rejected transition into its error kind: unknown
// values are invalid input, every other rejection conflicts with current state.
func (s *Service) mapTransitionErr(op string, err error) error {
	var te *domain.TransitionError
	if !errors.As(err, &te) {
		return apperr.Internal("transition failed", err).WithOp(s.op(op))
	}
	switch {
	case errors.Is(err, domain.ErrUnknownStatus):
		return s.invalidStatus(te.To)
	case errors.Is(err, domain.ErrReservedStatus):
		return apperr.Conflict(fmt.Sprintf("status %q can only be set by converting the %s", te.To, s.et.Label)).
			WithOp(s.op(op))
	default:
		return apperr.Conflict(te.Error()).
			WithOp(s.op(op)).
			WithDetails(map[string]string{"from": te.From, "to": te.To})
	}
}

func (s *Service) invalidStatus(status string) error {
	allowed := s.et.AllowedStatuses()
	return apperr.Validation(fmt.Sprintf("invalid status %q, allowed: %s", status, strings.Join(allowed, ", "))).
		WithDetails(map[string][]string{"allowed": allowed})
}
