package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/agenda-api/internal/audit"
	domain "github.com/BruksfildServices01/agenda-api/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/models"
	"github.com/BruksfildServices01/agenda-api/internal/timezone"
)

// UpdateInput: campos nil são preservados. Status é aplicado sem regras
// de transição.
type UpdateInput struct {
	ID                    uuid.UUID
	ProfessionalServiceID *uuid.UUID
	DateTime              *string
	Status                *string
	Observation           *string
}

type Update struct {
	repo  domain.Repository
	loc   *time.Location
	audit *audit.Dispatcher
}

func NewUpdate(repo domain.Repository, loc *time.Location, audit *audit.Dispatcher) *Update {
	return &Update{repo: repo, loc: loc, audit: audit}
}

func (uc *Update) Execute(ctx context.Context, in UpdateInput) (*models.Appointment, error) {
	ap, err := uc.repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if ap == nil {
		return nil, httperr.ErrAppointmentNotFound
	}

	changes := map[string]any{}

	if in.ProfessionalServiceID != nil {
		ok, err := uc.repo.ProfessionalServiceExists(ctx, *in.ProfessionalServiceID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, httperr.ErrProfessionalServiceNotFound
		}
		ap.ProfessionalServiceID = *in.ProfessionalServiceID
		changes["professional_service_id"] = ap.ProfessionalServiceID
	}

	if in.DateTime != nil {
		at, _, err := timezone.Parse(*in.DateTime, uc.loc)
		if err != nil {
			return nil, httperr.ErrInvalidDate
		}
		ap.DateTime = at.UTC()
		changes["date_time"] = ap.DateTime
	}

	if in.Status != nil {
		if !domain.IsValidStatus(*in.Status) {
			return nil, httperr.InvalidErr("invalid_status", "Status inválido")
		}
		ap.Status = *in.Status
		changes["status"] = ap.Status
	}

	if in.Observation != nil {
		ap.Observation = *in.Observation
		changes["observation"] = ap.Observation
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(ctx, audit.Event{
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: changes,
	})

	return uc.repo.FindByID(ctx, ap.ID)
}
