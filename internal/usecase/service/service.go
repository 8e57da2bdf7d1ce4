package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/agenda-api/internal/audit"
	professionaldomain "github.com/BruksfildServices01/agenda-api/internal/domain/professional"
	domain "github.com/BruksfildServices01/agenda-api/internal/domain/service"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

// Cache recebe a invalidação das listas de serviços por profissional.
type Cache interface {
	Delete(ctx context.Context, keys ...string) error
}

// invalidateOffers limpa o cache de quem oferta o serviço. Best-effort, como
// no resto do cache: o TTL cobre falhas.
func invalidateOffers(ctx context.Context, repo domain.Repository, cache Cache, serviceID uuid.UUID) {
	if cache == nil {
		return
	}
	ids, err := repo.ProfessionalIDs(ctx, serviceID)
	if err != nil || len(ids) == 0 {
		return
	}
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, professionaldomain.ServicesCacheKey(id))
	}
	_ = cache.Delete(ctx, keys...)
}

// ======================================================
// CREATE
// ======================================================

type CreateInput struct {
	Name        string
	Description string
	Duration    int
	Price       int64
}

type Create struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreate(repo domain.Repository, audit *audit.Dispatcher) *Create {
	return &Create{repo: repo, audit: audit}
}

func (uc *Create) Execute(ctx context.Context, in CreateInput) (*models.Service, error) {
	s := &models.Service{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Duration:    in.Duration,
		Price:       in.Price,
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(ctx, audit.Event{
		Action:   "service_created",
		Entity:   "service",
		EntityID: &s.ID,
	})
	return s, nil
}

// ======================================================
// UPDATE
// ======================================================

type UpdateInput struct {
	ID          uuid.UUID
	Name        *string
	Description *string
	Duration    *int
	Price       *int64
}

type Update struct {
	repo  domain.Repository
	cache Cache
	audit *audit.Dispatcher
}

func NewUpdate(repo domain.Repository, cache Cache, audit *audit.Dispatcher) *Update {
	return &Update{repo: repo, cache: cache, audit: audit}
}

func (uc *Update) Execute(ctx context.Context, in UpdateInput) (*models.Service, error) {
	s, err := uc.repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, httperr.ErrServiceNotFound
	}

	if in.Name != nil {
		s.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		s.Description = strings.TrimSpace(*in.Description)
	}
	if in.Duration != nil {
		s.Duration = *in.Duration
	}
	if in.Price != nil {
		s.Price = *in.Price
	}

	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	invalidateOffers(ctx, uc.repo, uc.cache, s.ID)

	uc.audit.Dispatch(ctx, audit.Event{
		Action:   "service_updated",
		Entity:   "service",
		EntityID: &s.ID,
	})
	return s, nil
}

// ======================================================
// GET / LIST / DELETE
// ======================================================

type Get struct {
	repo domain.Repository
}

func NewGet(repo domain.Repository) *Get {
	return &Get{repo: repo}
}

func (uc *Get) Execute(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	s, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, httperr.ErrServiceNotFound
	}
	return s, nil
}

type List struct {
	repo domain.Repository
}

func NewList(repo domain.Repository) *List {
	return &List{repo: repo}
}

func (uc *List) Execute(ctx context.Context, f domain.Filter) ([]models.Service, int64, error) {
	f.Params = f.Params.Normalize()
	return uc.repo.List(ctx, f)
}

type Delete struct {
	repo  domain.Repository
	cache Cache
	audit *audit.Dispatcher
}

func NewDelete(repo domain.Repository, cache Cache, audit *audit.Dispatcher) *Delete {
	return &Delete{repo: repo, cache: cache, audit: audit}
}

func (uc *Delete) Execute(ctx context.Context, id uuid.UUID) error {
	s, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if s == nil {
		return httperr.ErrServiceNotFound
	}

	// os vínculos somem em cascata; as chaves são calculadas antes
	invalidateOffers(ctx, uc.repo, uc.cache, id)
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(ctx, audit.Event{
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: &id,
	})
	return nil
}
