package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/agenda-api/internal/domain/pagination"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

type Filter struct {
	Name        string
	Description string

	pagination.Params
}

type Repository interface {
	Create(ctx context.Context, s *models.Service) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Service, error)
	List(ctx context.Context, f Filter) ([]models.Service, int64, error)
	Update(ctx context.Context, s *models.Service) error
	Delete(ctx context.Context, id uuid.UUID) error

	// ProfessionalIDs lista quem oferta o serviço.
	ProfessionalIDs(ctx context.Context, serviceID uuid.UUID) ([]uuid.UUID, error)
}
