package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-api/internal/logger"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

type AppointmentGormRepository struct {
	db  *gorm.DB
	log *logger.Logger
}

var _ domain.Repository = (*AppointmentGormRepository)(nil)

func NewAppointmentGormRepository(db *gorm.DB, log *logger.Logger) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db, log: log}
}

// withRelations carrega cliente e oferta com profissional e serviço.
func withRelations(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Client.User").
		Preload("ProfessionalService.Professional.User").
		Preload("ProfessionalService.Service")
}

// --------------------------------------------------
// References
// --------------------------------------------------

func (r *AppointmentGormRepository) ClientExists(ctx context.Context, clientID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", clientID).
		Count(&count).Error; err != nil {
		r.log.Error("check client failed", "client_id", clientID, "error", err)
		return false, fmt.Errorf("check client: %w", err)
	}
	return count > 0, nil
}

func (r *AppointmentGormRepository) ProfessionalServiceExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ProfessionalService{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		r.log.Error("check professional service failed", "professional_service_id", id, "error", err)
		return false, fmt.Errorf("check professional service: %w", err)
	}
	return count > 0, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) Create(ctx context.Context, ap *models.Appointment) error {
	ap.DateTime = ap.DateTime.UTC()
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(ap).Error; err != nil {
		r.log.Error("create appointment failed", "error", err)
		return fmt.Errorf("create appointment: %w", err)
	}
	return nil
}

func (r *AppointmentGormRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	var ap models.Appointment
	if err := withRelations(r.db.WithContext(ctx)).First(&ap, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.log.Error("find appointment failed", "id", id, "error", err)
		return nil, fmt.Errorf("find appointment: %w", err)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) List(ctx context.Context, f domain.ListFilter) ([]models.Appointment, error) {
	q := withRelations(r.db.WithContext(ctx))

	if f.Start != nil {
		q = q.Where("date_time >= ?", f.Start.UTC())
	}
	if f.End != nil {
		q = q.Where("date_time <= ?", f.End.UTC())
	}
	if f.Status != "" {
		q = q.Where("status = ?", string(f.Status))
	}

	var list []models.Appointment
	if err := q.Order("date_time ASC").Find(&list).Error; err != nil {
		r.log.Error("list appointments failed", "error", err)
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return list, nil
}

func (r *AppointmentGormRepository) Update(ctx context.Context, ap *models.Appointment) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", ap.ID).
		Updates(map[string]any{
			"professional_service_id": ap.ProfessionalServiceID,
			"date_time":               ap.DateTime.UTC(),
			"status":                  ap.Status,
			"observation":             ap.Observation,
		}).Error; err != nil {
		r.log.Error("update appointment failed", "id", ap.ID, "error", err)
		return fmt.Errorf("update appointment: %w", err)
	}
	return nil
}

func (r *AppointmentGormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&models.Appointment{}, "id = ?", id).Error; err != nil {
		r.log.Error("delete appointment failed", "id", id, "error", err)
		return fmt.Errorf("delete appointment: %w", err)
	}
	return nil
}
