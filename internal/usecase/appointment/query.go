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

// ======================================================
// LIST
// ======================================================

type ListInput struct {
	StartDate string
	EndDate   string
	Status    string
}

type List struct {
	repo domain.Repository
	loc  *time.Location
}

func NewList(repo domain.Repository, loc *time.Location) *List {
	return &List{repo: repo, loc: loc}
}

func (uc *List) Execute(ctx context.Context, in ListInput) ([]models.Appointment, error) {
	f, err := BuildFilter(in.StartDate, in.EndDate, uc.loc)
	if err != nil {
		return nil, err
	}
	f.Status = domain.Status(in.Status)

	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.Appointment{}
	}
	return list, nil
}

// BuildFilter converte o intervalo textual em limites inclusivos. Um
// end_date só com data cobre o dia inteiro.
func BuildFilter(startDate, endDate string, loc *time.Location) (domain.ListFilter, error) {
	var f domain.ListFilter

	if startDate != "" {
		start, _, err := timezone.Parse(startDate, loc)
		if err != nil {
			return f, httperr.ErrInvalidDate
		}
		f.Start = &start
	}

	if endDate != "" {
		end, dateOnly, err := timezone.Parse(endDate, loc)
		if err != nil {
			return f, httperr.ErrInvalidDate
		}
		if dateOnly {
			end = timezone.EndOfDay(end)
		}
		f.End = &end
	}

	return f, nil
}

// ======================================================
// GET / DELETE
// ======================================================

type Get struct {
	repo domain.Repository
}

func NewGet(repo domain.Repository) *Get {
	return &Get{repo: repo}
}

func (uc *Get) Execute(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	ap, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ap == nil {
		return nil, httperr.ErrAppointmentNotFound
	}
	return ap, nil
}

type Delete struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDelete(repo domain.Repository, audit *audit.Dispatcher) *Delete {
	return &Delete{repo: repo, audit: audit}
}

func (uc *Delete) Execute(ctx context.Context, id uuid.UUID) error {
	ap, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if ap == nil {
		return httperr.ErrAppointmentNotFound
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(ctx, audit.Event{
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &id,
	})
	return nil
}
