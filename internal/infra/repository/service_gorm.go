package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/service"
	"github.com/BruksfildServices01/agenda-api/internal/logger"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

type ServiceGormRepository struct {
	db  *gorm.DB
	log *logger.Logger
}

var _ domain.Repository = (*ServiceGormRepository)(nil)

func NewServiceGormRepository(db *gorm.DB, log *logger.Logger) *ServiceGormRepository {
	return &ServiceGormRepository{db: db, log: log}
}

func (r *ServiceGormRepository) Create(ctx context.Context, s *models.Service) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		r.log.Error("create service failed", "name", s.Name, "error", err)
		return fmt.Errorf("create service: %w", err)
	}
	return nil
}

func (r *ServiceGormRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	var s models.Service
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.log.Error("find service failed", "id", id, "error", err)
		return nil, fmt.Errorf("find service: %w", err)
	}
	return &s, nil
}

func (r *ServiceGormRepository) List(ctx context.Context, f domain.Filter) ([]models.Service, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Service{})
	q = applySearch(q, r.db,
		likeTerm{"LOWER(name) LIKE ?", f.Name},
		likeTerm{"LOWER(description) LIKE ?", f.Description},
	)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		r.log.Error("count services failed", "error", err)
		return nil, 0, fmt.Errorf("count services: %w", err)
	}

	var list []models.Service
	if err := paginate(q.Order("name ASC"), f.Params).Find(&list).Error; err != nil {
		r.log.Error("list services failed", "error", err)
		return nil, 0, fmt.Errorf("list services: %w", err)
	}
	return list, total, nil
}

func (r *ServiceGormRepository) Update(ctx context.Context, s *models.Service) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("id = ?", s.ID).
		Updates(map[string]any{
			"name":        s.Name,
			"description": s.Description,
			"duration":    s.Duration,
			"price":       s.Price,
		}).Error; err != nil {
		r.log.Error("update service failed", "id", s.ID, "error", err)
		return fmt.Errorf("update service: %w", err)
	}
	return nil
}

func (r *ServiceGormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&models.Service{}, "id = ?", id).Error; err != nil {
		r.log.Error("delete service failed", "id", id, "error", err)
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}

func (r *ServiceGormRepository) ProfessionalIDs(ctx context.Context, serviceID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&models.ProfessionalService{}).
		Where("service_id = ?", serviceID).
		Pluck("professional_id", &ids).Error; err != nil {
		r.log.Error("list service professionals failed", "service_id", serviceID, "error", err)
		return nil, fmt.Errorf("list service professionals: %w", err)
	}
	return ids, nil
}
