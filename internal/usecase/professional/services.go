package professional

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/agenda-api/internal/audit"
	domain "github.com/BruksfildServices01/agenda-api/internal/domain/professional"
	servicedomain "github.com/BruksfildServices01/agenda-api/internal/domain/service"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

// Cache guarda a lista de serviços oferecidos por profissional.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (bool, error)
	SetJSON(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, keys ...string) error
}

func servicesKey(professionalID uuid.UUID) string {
	return domain.ServicesCacheKey(professionalID)
}

// invalidate é best-effort: o TTL cobre uma falha do Redis.
func invalidate(ctx context.Context, cache Cache, professionalID uuid.UUID) {
	_ = cache.Delete(ctx, servicesKey(professionalID))
}

// ======================================================
// LIST SERVICES
// ======================================================

type ListServices struct {
	repo  domain.Repository
	cache Cache
}

func NewListServices(repo domain.Repository, cache Cache) *ListServices {
	return &ListServices{repo: repo, cache: cache}
}

func (uc *ListServices) Execute(ctx context.Context, professionalID uuid.UUID) ([]models.ProfessionalService, error) {
	var cached []models.ProfessionalService
	if hit, err := uc.cache.GetJSON(ctx, servicesKey(professionalID), &cached); err == nil && hit {
		return cached, nil
	}

	p, err := uc.repo.FindByID(ctx, professionalID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, httperr.ErrProfessionalNotFound
	}

	list, err := uc.repo.ListServices(ctx, professionalID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.ProfessionalService{}
	}

	_ = uc.cache.SetJSON(ctx, servicesKey(professionalID), list)
	return list, nil
}

// ======================================================
// ADD / REMOVE SERVICE
// ======================================================

type LinkInput struct {
	ProfessionalID uuid.UUID
	ServiceID      uuid.UUID
}

type AddService struct {
	repo     domain.Repository
	services servicedomain.Repository
	cache    Cache
	audit    *audit.Dispatcher
}

func NewAddService(
	repo domain.Repository,
	services servicedomain.Repository,
	cache Cache,
	audit *audit.Dispatcher,
) *AddService {
	return &AddService{repo: repo, services: services, cache: cache, audit: audit}
}

func (uc *AddService) Execute(ctx context.Context, in LinkInput) (*models.ProfessionalService, error) {
	svc, err := checkPair(ctx, uc.repo, uc.services, in)
	if err != nil {
		return nil, err
	}

	existing, err := uc.repo.FindService(ctx, in.ProfessionalID, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.ErrAlreadyLinked
	}

	ps := &models.ProfessionalService{
		ProfessionalID: in.ProfessionalID,
		ServiceID:      in.ServiceID,
	}
	if err := uc.repo.AddService(ctx, ps); err != nil {
		return nil, err
	}
	ps.Service = *svc

	invalidate(ctx, uc.cache, in.ProfessionalID)

	uc.audit.Dispatch(ctx, audit.Event{
		Action:   "professional_service_added",
		Entity:   "professional_service",
		EntityID: &ps.ID,
		Metadata: map[string]any{
			"professional_id": in.ProfessionalID,
			"service_id":      in.ServiceID,
		},
	})

	return ps, nil
}

type RemoveService struct {
	repo     domain.Repository
	services servicedomain.Repository
	cache    Cache
	audit    *audit.Dispatcher
}

func NewRemoveService(
	repo domain.Repository,
	services servicedomain.Repository,
	cache Cache,
	audit *audit.Dispatcher,
) *RemoveService {
	return &RemoveService{repo: repo, services: services, cache: cache, audit: audit}
}

func (uc *RemoveService) Execute(ctx context.Context, in LinkInput) error {
	if _, err := checkPair(ctx, uc.repo, uc.services, in); err != nil {
		return err
	}

	existing, err := uc.repo.FindService(ctx, in.ProfessionalID, in.ServiceID)
	if err != nil {
		return err
	}
	if existing == nil {
		return httperr.ErrProfessionalServiceNotFound
	}

	if err := uc.repo.RemoveService(ctx, in.ProfessionalID, in.ServiceID); err != nil {
		return err
	}

	invalidate(ctx, uc.cache, in.ProfessionalID)

	uc.audit.Dispatch(ctx, audit.Event{
		Action:   "professional_service_removed",
		Entity:   "professional_service",
		EntityID: &existing.ID,
	})
	return nil
}

// checkPair garante que profissional e serviço existem.
func checkPair(
	ctx context.Context,
	repo domain.Repository,
	services servicedomain.Repository,
	in LinkInput,
) (*models.Service, error) {
	p, err := repo.FindByID(ctx, in.ProfessionalID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, httperr.ErrProfessionalNotFound
	}

	svc, err := services.FindByID(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, httperr.ErrServiceNotFound
	}
	return svc, nil
}
