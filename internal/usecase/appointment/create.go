package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/BruksfildServices01/agenda-api/internal/audit"
	domain "github.com/BruksfildServices01/agenda-api/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/models"
	"github.com/BruksfildServices01/agenda-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	ProfessionalServiceID uuid.UUID
	ClientID              uuid.UUID
	DateTime              string
	Observation           string
}

// ======================================================
// USE CASE
// ======================================================

type Create struct {
	repo  domain.Repository
	loc   *time.Location
	audit *audit.Dispatcher
}

func NewCreate(
	repo domain.Repository,
	loc *time.Location,
	audit *audit.Dispatcher,
) *Create {
	return &Create{repo: repo, loc: loc, audit: audit}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Create) Execute(ctx context.Context, in CreateInput) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Data / hora
	// --------------------------------------------------
	at, _, err := timezone.Parse(in.DateTime, uc.loc)
	if err != nil {
		return nil, httperr.ErrInvalidDate
	}

	// --------------------------------------------------
	// 2️⃣ Cliente e oferta (em paralelo)
	// --------------------------------------------------
	if err := uc.checkReferences(ctx, in.ClientID, in.ProfessionalServiceID); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Criação (status inicial centralizado)
	// --------------------------------------------------
	ap := &models.Appointment{
		ClientID:              in.ClientID,
		ProfessionalServiceID: in.ProfessionalServiceID,
		DateTime:              at.UTC(),
		Status:                string(domain.InitialStatus()),
		Observation:           in.Observation,
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(ctx, audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return uc.repo.FindByID(ctx, ap.ID)
}

// checkReferences consulta cliente e oferta ao mesmo tempo. Quando ambos
// faltam, o erro do cliente tem precedência.
func (uc *Create) checkReferences(ctx context.Context, clientID, professionalServiceID uuid.UUID) error {
	var clientOK, offeringOK bool

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ok, err := uc.repo.ClientExists(gctx, clientID)
		clientOK = ok
		return err
	})
	g.Go(func() error {
		ok, err := uc.repo.ProfessionalServiceExists(gctx, professionalServiceID)
		offeringOK = ok
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if !clientOK {
		return httperr.ErrClientNotFound
	}
	if !offeringOK {
		return httperr.ErrProfessionalServiceNotFound
	}
	return nil
}
