package professional

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/agenda-api/internal/domain/pagination"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

// ServicesCacheKey é a chave da lista de serviços ofertados em cache.
func ServicesCacheKey(professionalID uuid.UUID) string {
	return fmt.Sprintf("professional:%s:services", professionalID)
}

// Filter combina os termos com OR; termos vazios são ignorados.
type Filter struct {
	Name      string
	Email     string
	Specialty string

	WithServices bool

	pagination.Params
}

type Repository interface {
	// -------- Professional --------
	Create(ctx context.Context, p *models.Professional) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Professional, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Professional, error)
	List(ctx context.Context, f Filter) ([]models.Professional, int64, error)
	Update(ctx context.Context, p *models.Professional) error
	Delete(ctx context.Context, id uuid.UUID) error

	// -------- Offered services --------
	ListServices(ctx context.Context, professionalID uuid.UUID) ([]models.ProfessionalService, error)
	FindService(ctx context.Context, professionalID, serviceID uuid.UUID) (*models.ProfessionalService, error)
	AddService(ctx context.Context, ps *models.ProfessionalService) error
	RemoveService(ctx context.Context, professionalID, serviceID uuid.UUID) error
}
