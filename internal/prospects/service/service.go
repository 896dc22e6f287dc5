// Package service implements the prospect-only actions: opening an
// opportunity and converting a prospect into an account.
package service

import (
	"context"
	"errors"
	"time"

	accounts "beautycrm_backend/internal/accounts/repository"
	"beautycrm_backend/internal/events"
	lifecycle "beautycrm_backend/internal/lifecycle/domain"
	lifecyclerepo "beautycrm_backend/internal/lifecycle/repository"
	opportunities "beautycrm_backend/internal/opportunities/repository"
	"beautycrm_backend/internal/prospects/domain"
	"beautycrm_backend/internal/prospects/transport"
	"beautycrm_backend/platform/apperr"
	"beautycrm_backend/platform/logger"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var conversionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "prospect_conversions_total",
	Help: "Prospect conversion attempts by outcome.",
}, []string{"outcome"})

// errAbort marks a rejection decided inside the transaction. The wrapped
// apperr is returned to the caller once the rollback completes.
type errAbort struct{ err error }

func (e errAbort) Error() string { return e.err.Error() }
func (e errAbort) Unwrap() error { return e.err }

// Service runs the prospect conversion flows.
type Service struct {
	tx       Transactor
	bus      events.Bus
	log      *logger.Logger
	defaults domain.Defaults
	now      func() time.Time
}

// New creates the prospect service.
func New(tx Transactor, bus events.Bus, defaults domain.Defaults, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{tx: tx, bus: bus, log: log, defaults: defaults, now: time.Now}
}

// CreateOpportunity opens an opportunity for a prospect that has none yet.
func (s *Service) CreateOpportunity(ctx context.Context, id uuid.UUID, overrides domain.OpportunityOverrides, actorID uuid.UUID) (transport.CreateOpportunityResponse, error) {
	var oppID uuid.UUID
	err := s.tx.WithinTx(ctx, func(st TxStores) error {
		p, err := s.lockOpen(ctx, st.Prospects, id, "CreateOpportunity")
		if err != nil {
			return err
		}
		if p.ConvertedToOpportunityID != nil {
			return errAbort{apperr.Conflict("prospect already has an opportunity").
				WithOp("prospects.CreateOpportunity").
				WithDetails(map[string]string{"opportunityId": p.ConvertedToOpportunityID.String()})}
		}

		draft := domain.BuildOpportunity(p, overrides, s.defaults, s.now())
		oppID, err = st.Opportunities.Create(ctx, opportunityParams(draft, p.ID, nil, nil))
		if err != nil {
			return err
		}
		return st.Prospects.LinkOpportunity(ctx, p.ID, oppID, "")
	})
	if err != nil {
		return transport.CreateOpportunityResponse{}, s.mapTxErr("CreateOpportunity", "create opportunity failed", err)
	}

	s.log.LifecycleEvent(string(lifecycle.KindProspect), id.String(), "opportunity_created", "opportunityId", oppID)
	s.publish(ctx, events.OpportunityCreated{
		BaseEvent:     events.NewBaseEvent(),
		ProspectID:    id,
		OpportunityID: oppID,
		ActorID:       actorID,
	})
	return transport.CreateOpportunityResponse{OpportunityID: oppID}, nil
}

// Convert turns a prospect into an account, its primary contact and an
// opportunity in one transaction. An opportunity opened earlier is reused
// as is, so opportunity overrides are rejected for it.
func (s *Service) Convert(ctx context.Context, id uuid.UUID, overrides domain.Overrides, actorID uuid.UUID) (transport.ConvertResponse, error) {
	var (
		result transport.ConvertResponse
		from   string
	)
	err := s.tx.WithinTx(ctx, func(st TxStores) error {
		p, err := s.lockOpen(ctx, st.Prospects, id, "Convert")
		if err != nil {
			return err
		}
		from = p.Status
		if p.ConvertedToOpportunityID != nil && !overrides.Opportunity.IsZero() {
			return errAbort{apperr.Validation("prospect already has an opportunity; opportunity overrides are not accepted").
				WithOp("prospects.Convert").
				WithDetails(map[string]string{"opportunityId": p.ConvertedToOpportunityID.String()})}
		}

		acc := domain.BuildAccount(p, overrides.Account)
		accountID, err := st.Accounts.CreateAccount(ctx, accounts.CreateAccountParams{
			Name:             acc.Name,
			AccountType:      acc.AccountType,
			Street:           acc.Street,
			City:             acc.City,
			State:            acc.State,
			Country:          acc.Country,
			PostalCode:       acc.PostalCode,
			OwnerID:          acc.OwnerID,
			SourceProspectID: &p.ID,
		})
		if err != nil {
			return err
		}

		c := domain.BuildContact(p, overrides.Contact)
		contactID, err := st.Accounts.CreateContact(ctx, accounts.CreateContactParams{
			AccountID: accountID,
			FirstName: c.FirstName,
			LastName:  c.LastName,
			Email:     c.Email,
			Phone:     c.Phone,
		})
		if err != nil {
			return err
		}

		var oppID uuid.UUID
		if p.ConvertedToOpportunityID != nil {
			oppID = *p.ConvertedToOpportunityID
			if err := st.Opportunities.AttachAccount(ctx, oppID, accountID, contactID); err != nil {
				return err
			}
		} else {
			draft := domain.BuildOpportunity(p, overrides.Opportunity, s.defaults, s.now())
			oppID, err = st.Opportunities.Create(ctx, opportunityParams(draft, p.ID, &accountID, &contactID))
			if err != nil {
				return err
			}
		}

		if err := st.Prospects.LinkOpportunity(ctx, p.ID, oppID, lifecycle.ProspectStatusConverted); err != nil {
			return err
		}
		result = transport.ConvertResponse{AccountID: accountID, ContactID: contactID, OpportunityID: oppID}
		return nil
	})
	if err != nil {
		conversionsTotal.WithLabelValues(outcome(err)).Inc()
		return transport.ConvertResponse{}, s.mapTxErr("Convert", "conversion failed", err)
	}
	conversionsTotal.WithLabelValues("converted").Inc()

	s.log.LifecycleEvent(string(lifecycle.KindProspect), id.String(), "converted",
		"accountId", result.AccountID, "opportunityId", result.OpportunityID)
	s.publish(ctx, events.ProspectConverted{
		BaseEvent:     events.NewBaseEvent(),
		ProspectID:    id,
		AccountID:     result.AccountID,
		ContactID:     result.ContactID,
		OpportunityID: result.OpportunityID,
		ActorID:       actorID,
	})
	s.publish(ctx, events.EntityStatusChanged{
		BaseEvent:  events.NewBaseEvent(),
		EntityType: string(lifecycle.KindProspect),
		EntityID:   id,
		ActorID:    actorID,
		From:       from,
		To:         lifecycle.ProspectStatusConverted,
	})
	return result, nil
}

// lockOpen row-locks the prospect and rejects converted or lost ones.
func (s *Service) lockOpen(ctx context.Context, store ProspectStore, id uuid.UUID, op string) (lifecycle.Entity, error) {
	p, err := store.GetForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, lifecyclerepo.ErrNotFound) {
			return lifecycle.Entity{}, errAbort{apperr.NotFound("prospect not found").WithOp("prospects." + op)}
		}
		return lifecycle.Entity{}, err
	}

	status, ok := lifecycle.Prospect.CanonicalStatus(p.Status)
	if !ok {
		status = p.Status
	}
	switch {
	case status == lifecycle.ProspectStatusConverted:
		return lifecycle.Entity{}, errAbort{apperr.Conflict("prospect is already converted").WithOp("prospects." + op)}
	case lifecycle.Prospect.IsNegative(status):
		return lifecycle.Entity{}, errAbort{apperr.Conflict("prospect is " + status + " and cannot be converted").WithOp("prospects." + op)}
	}
	return p, nil
}

func (s *Service) mapTxErr(op, message string, err error) error {
	var abort errAbort
	if errors.As(err, &abort) {
		return abort.err
	}
	s.log.DatabaseError("prospects."+op, err)
	return apperr.Internal(message, err).WithOp("prospects." + op)
}

func (s *Service) publish(ctx context.Context, event events.Event) {
	if s.bus != nil {
		s.bus.Publish(ctx, event)
	}
}

func outcome(err error) string {
	var abort errAbort
	if errors.As(err, &abort) {
		return "rejected"
	}
	return "failed"
}

func opportunityParams(d domain.OpportunityDraft, prospectID uuid.UUID, accountID, contactID *uuid.UUID) opportunities.CreateParams {
	return opportunities.CreateParams{
		Name:              d.Name,
		Stage:             d.Stage,
		Probability:       d.Probability,
		Amount:            d.Amount,
		ExpectedRevenue:   d.ExpectedRevenue,
		Currency:          d.Currency,
		ExpectedCloseDate: d.ExpectedCloseDate,
		OwnerID:           d.OwnerID,
		AccountID:         accountID,
		PrimaryContactID:  contactID,
		SourceProspectID:  &prospectID,
	}
}
