package wizard

import (
	"context"
	"fmt"
	"time"

	"jdservices/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SubmissionSink persists a finished submission (spreadsheet backend in
// production). The wizard does not retry on failure; the caller resubmits.
type SubmissionSink interface {
	Submit(ctx context.Context, sub models.EstimateSubmission) error
}

// LeadArchiver keeps an internal copy of every submission.
type LeadArchiver interface {
	Create(ctx context.Context, lead models.Lead) (string, error)
}

// Notifier queues the new-lead alert. Fire-and-forget: its failure never
// blocks the success path shown to the user.
type Notifier interface {
	EnqueueLeadAlert(sub models.EstimateSubmission) error
}

// AddressLookup resolves a free-text address into property data.
type AddressLookup interface {
	Lookup(ctx context.Context, address string) (models.PropertyLookup, error)
}

// SessionService drives a wizard session through its step graph.
type SessionService interface {
	Create(ctx context.Context, svc models.Service) (*models.WizardSession, error)
	Get(ctx context.Context, id string) (*models.WizardSession, error)
	Advance(ctx context.Context, id string, ev Event) (*models.WizardSession, error)
	ResolveAddress(ctx context.Context, id, address string, skip bool) (*models.WizardSession, error)
	Back(ctx context.Context, id string) (*models.WizardSession, bool, error)
	Confirm(ctx context.Context, id string) (*models.EstimateSubmission, error)
	Cancel(ctx context.Context, id string) error
}

// DefaultSessionService implements SessionService.
type DefaultSessionService struct {
	Store    SessionStore
	Lookup   AddressLookup
	Sink     SubmissionSink
	Leads    LeadArchiver
	Notifier Notifier
	Logger   *zap.Logger
}

// Create starts a session at its defaults for the chosen service.
func (svc *DefaultSessionService) Create(ctx context.Context, service models.Service) (*models.WizardSession, error) {
	if _, ok := stepGraphs[service]; !ok {
		return nil, ErrUnknownService
	}
	s := NewSession(uuid.New().String(), service)
	if err := svc.save(ctx, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (svc *DefaultSessionService) Get(ctx context.Context, id string) (*models.WizardSession, error) {
	return svc.Store.Get(ctx, id)
}

// Advance applies one event and persists the result. A failed gate leaves the
// stored session untouched.
func (svc *DefaultSessionService) Advance(ctx context.Context, id string, ev Event) (*models.WizardSession, error) {
	s, err := svc.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := Apply(*s, ev)
	if err != nil {
		return nil, err
	}
	if err := svc.save(ctx, &next); err != nil {
		return nil, err
	}
	return &next, nil
}

// ResolveAddress runs the external lookup (unless skipped) and advances past
// the address-lookup step. A lookup failure degrades to found=false and the
// user fills the fields manually at the next step.
func (svc *DefaultSessionService) ResolveAddress(ctx context.Context, id, address string, skip bool) (*models.WizardSession, error) {
	ev := ResolveAddress{Skipped: true}
	if !skip {
		lookup, err := svc.Lookup.Lookup(ctx, address)
		if err != nil {
			svc.Logger.Warn("address lookup failed, falling back to manual entry", zap.Error(err))
			lookup = models.PropertyLookup{Address: address, Found: false}
		}
		ev = ResolveAddress{Lookup: lookup}
	}
	return svc.Advance(ctx, id, ev)
}

// Back steps to the immediately preceding state on the path actually taken,
// or discards the session when backing out of the first step.
func (svc *DefaultSessionService) Back(ctx context.Context, id string) (*models.WizardSession, bool, error) {
	s, err := svc.Store.Get(ctx, id)
	if err != nil {
		return nil, false, err
	}
	next, exited := Back(*s)
	if exited {
		if err := svc.Store.Delete(ctx, id); err != nil {
			return nil, false, err
		}
		return nil, true, nil
	}
	if err := svc.save(ctx, &next); err != nil {
		return nil, false, err
	}
	return &next, false, nil
}

// Confirm hands the finished session to the persistence sink, archives and
// queues the lead alert, then clears the session. A sink failure keeps the
// session (and its computed estimate) intact so the user can resubmit
// without recomputation.
func (svc *DefaultSessionService) Confirm(ctx context.Context, id string) (*models.EstimateSubmission, error) {
	s, err := svc.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	sub, err := BuildSubmission(s)
	if err != nil {
		return nil, err
	}
	if err := svc.Sink.Submit(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to persist submission: %w", err)
	}

	if svc.Leads != nil {
		lead := models.Lead{Submission: sub, CreatedAt: time.Now()}
		if _, err := svc.Leads.Create(ctx, lead); err != nil {
			svc.Logger.Error("failed to archive lead", zap.Error(err))
		}
	}
	if svc.Notifier != nil {
		if err := svc.Notifier.EnqueueLeadAlert(sub); err != nil {
			svc.Logger.Error("failed to enqueue lead alert", zap.Error(err))
		}
	}

	if err := svc.Store.Delete(ctx, id); err != nil {
		svc.Logger.Warn("failed to clear wizard session after submission", zap.Error(err))
	}
	return &sub, nil
}

// Cancel discards a session explicitly.
func (svc *DefaultSessionService) Cancel(ctx context.Context, id string) error {
	return svc.Store.Delete(ctx, id)
}

func (svc *DefaultSessionService) save(ctx context.Context, s *models.WizardSession) error {
	s.UpdatedAt = time.Now()
	return svc.Store.Save(ctx, s)
}
