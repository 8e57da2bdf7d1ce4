package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/agenda-api/internal/models"
)

// ListFilter: limites inclusivos sobre date_time; nil = sem limite.
type ListFilter struct {
	Start  *time.Time
	End    *time.Time
	Status Status
}

type Repository interface {
	// -------- References --------
	ClientExists(ctx context.Context, clientID uuid.UUID) (bool, error)
	ProfessionalServiceExists(ctx context.Context, id uuid.UUID) (bool, error)

	// -------- Appointment --------
	Create(ctx context.Context, ap *models.Appointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Appointment, error)
	List(ctx context.Context, f ListFilter) ([]models.Appointment, error)
	Update(ctx context.Context, ap *models.Appointment) error
	Delete(ctx context.Context, id uuid.UUID) error
}
