package service

import (
	"context"
	"errors"

	"beautycrm_backend/internal/events"
	"beautycrm_backend/internal/lifecycle/domain"
	"beautycrm_backend/internal/lifecycle/ports"
	"beautycrm_backend/internal/lifecycle/repository"
	"beautycrm_backend/internal/lifecycle/transport"
	"beautycrm_backend/platform/apperr"

	"github.com/google/uuid"
)

// Qualify moves the entity to its qualified status and persists a fresh score.
func (s *Service) Qualify(ctx context.Context, id uuid.UUID, actorID uuid.UUID) (transport.QualifyResponse, error) {
	e, err := s.load(ctx, id)
	if err != nil {
		return transport.QualifyResponse{}, err
	}
	if err := s.et.CheckQualify(e.Status); err != nil {
		return transport.QualifyResponse{}, s.mapTransitionErr("Qualify", err)
	}

	score := domain.Score(e.ScoreInput())
	updated, err := s.repo.UpdateStatus(ctx, repository.UpdateStatusParams{
		ID:         id,
		FromStatus: e.Status,
		ToStatus:   s.et.QualifiedStatus,
		Score:      &score,
	})
	if err != nil {
		return transport.QualifyResponse{}, s.mapRepoErr("Qualify", err)
	}

	transitionsTotal.WithLabelValues(string(s.et.Kind), updated.Status).Inc()
	s.log.LifecycleEvent(string(s.et.Kind), id.String(), "qualified", "from", e.Status, "score", score)
	s.publish(ctx, events.EntityStatusChanged{
		BaseEvent:  events.NewBaseEvent(),
		EntityType: string(s.et.Kind),
		EntityID:   id,
		ActorID:    actorID,
		From:       e.Status,
		To:         updated.Status,
	})
	s.publish(ctx, events.EntityQualified{
		BaseEvent:  events.NewBaseEvent(),
		EntityType: string(s.et.Kind),
		EntityID:   id,
		ActorID:    actorID,
		Score:      score,
	})

	return transport.QualifyResponse{Status: updated.Status, Score: score}, nil
}

// Assign sets the owning sales rep. The rep must exist and be active.
func (s *Service) Assign(ctx context.Context, id uuid.UUID, repID uuid.UUID, actorID uuid.UUID) (transport.AssignResponse, error) {
	e, err := s.load(ctx, id)
	if err != nil {
		return transport.AssignResponse{}, err
	}

	rep, err := s.reps.GetRep(ctx, repID)
	if err != nil {
		if errors.Is(err, ports.ErrRepNotFound) {
			return transport.AssignResponse{}, apperr.NotFound("sales rep not found").WithOp(s.op("Assign"))
		}
		return transport.AssignResponse{}, apperr.Internal("sales rep lookup failed", err).WithOp(s.op("Assign"))
	}
	if !rep.Active {
		return transport.AssignResponse{}, apperr.Validation("sales rep is inactive").WithOp(s.op("Assign"))
	}

	if err := s.repo.Assign(ctx, id, rep.ID); err != nil {
		return transport.AssignResponse{}, s.mapRepoErr("Assign", err)
	}

	s.log.LifecycleEvent(string(s.et.Kind), id.String(), "assigned", "rep_id", rep.ID.String())
	s.publish(ctx, events.EntityAssigned{
		BaseEvent:  events.NewBaseEvent(),
		EntityType: string(s.et.Kind),
		EntityID:   id,
		EntityName: e.Name,
		ActorID:    actorID,
		RepID:      rep.ID,
		RepName:    rep.FullName,
		RepEmail:   rep.Email,
	})

	return transport.AssignResponse{SalesRepName: rep.FullName}, nil
}

// ChangeStatus applies a forward-only status transition. Requesting the
// current status returns the entity unchanged.
func (s *Service) ChangeStatus(ctx context.Context, id uuid.UUID, status string, actorID uuid.UUID) (transport.EntityResponse, error) {
	target, ok := s.et.CanonicalStatus(status)
	if !ok {
		return transport.EntityResponse{}, s.invalidStatus(status)
	}

	e, err := s.load(ctx, id)
	if err != nil {
		return transport.EntityResponse{}, err
	}
	if e.Status == target {
		return s.toResponse(e, s.now()), nil
	}
	if err := s.et.CheckTransition(e.Status, target); err != nil {
		return transport.EntityResponse{}, s.mapTransitionErr("ChangeStatus", err)
	}

	params := repository.UpdateStatusParams{ID: id, FromStatus: e.Status, ToStatus: target}
	if s.et.EntersQualified(e.Status, target) {
		score := domain.Score(e.ScoreInput())
		params.Score = &score
	}

	updated, err := s.repo.UpdateStatus(ctx, params)
	if err != nil {
		return transport.EntityResponse{}, s.mapRepoErr("ChangeStatus", err)
	}

	transitionsTotal.WithLabelValues(string(s.et.Kind), target).Inc()
	s.log.LifecycleEvent(string(s.et.Kind), id.String(), "status_changed", "from", e.Status, "to", target)
	s.publish(ctx, events.EntityStatusChanged{
		BaseEvent:  events.NewBaseEvent(),
		EntityType: string(s.et.Kind),
		EntityID:   id,
		ActorID:    actorID,
		From:       e.Status,
		To:         target,
	})
	if params.Score != nil {
		s.publish(ctx, events.EntityQualified{
			BaseEvent:  events.NewBaseEvent(),
			EntityType: string(s.et.Kind),
			EntityID:   id,
			ActorID:    actorID,
			Score:      *params.Score,
		})
	}

	return s.toResponse(updated, s.now()), nil
}

// GenerateAbout regenerates and stores the about text.
func (s *Service) GenerateAbout(ctx context.Context, id uuid.UUID, actorID uuid.UUID) (transport.EntityResponse, error) {
	e, err := s.load(ctx, id)
	if err != nil {
		return transport.EntityResponse{}, err
	}

	text, source, err := s.about.Generate(ctx, e)
	if err != nil {
		return transport.EntityResponse{}, apperr.Internal("about generation failed", err).WithOp(s.op("GenerateAbout"))
	}
	if err := s.repo.UpdateAbout(ctx, id, text); err != nil {
		return transport.EntityResponse{}, s.mapRepoErr("GenerateAbout", err)
	}

	aboutGeneratedTotal.WithLabelValues(string(s.et.Kind), source).Inc()
	s.publish(ctx, events.EntityAboutUpdated{
		BaseEvent:  events.NewBaseEvent(),
		EntityType: string(s.et.Kind),
		EntityID:   id,
		ActorID:    actorID,
		Source:     source,
	})

	return s.Get(ctx, id)
}
