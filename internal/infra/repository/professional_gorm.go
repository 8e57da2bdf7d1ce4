package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/professional"
	"github.com/BruksfildServices01/agenda-api/internal/logger"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

type ProfessionalGormRepository struct {
	db  *gorm.DB
	log *logger.Logger
}

var _ domain.Repository = (*ProfessionalGormRepository)(nil)

func NewProfessionalGormRepository(db *gorm.DB, log *logger.Logger) *ProfessionalGormRepository {
	return &ProfessionalGormRepository{db: db, log: log}
}

// --------------------------------------------------
// Professional
// --------------------------------------------------

func (r *ProfessionalGormRepository) Create(ctx context.Context, p *models.Professional) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error; err != nil {
		r.log.Error("create professional failed", "user_id", p.UserID, "error", err)
		return fmt.Errorf("create professional: %w", err)
	}
	return nil
}

func (r *ProfessionalGormRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Professional, error) {
	var p models.Professional
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Services.Service").
		First(&p, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.log.Error("find professional failed", "id", id, "error", err)
		return nil, fmt.Errorf("find professional: %w", err)
	}
	return &p, nil
}

func (r *ProfessionalGormRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Professional, error) {
	var p models.Professional
	if err := r.db.WithContext(ctx).First(&p, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.log.Error("find professional by user failed", "user_id", userID, "error", err)
		return nil, fmt.Errorf("find professional by user: %w", err)
	}
	return &p, nil
}

func (r *ProfessionalGormRepository) List(ctx context.Context, f domain.Filter) ([]models.Professional, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Professional{})
	q = applySearch(q, r.db,
		likeTerm{userColumnIn("name"), f.Name},
		likeTerm{userColumnIn("email"), f.Email},
		likeTerm{"LOWER(specialty) LIKE ?", f.Specialty},
	)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		r.log.Error("count professionals failed", "error", err)
		return nil, 0, fmt.Errorf("count professionals: %w", err)
	}

	q = q.Preload("User")
	if f.WithServices {
		q = q.Preload("Services.Service")
	}

	var list []models.Professional
	if err := paginate(q.Order("created_at DESC"), f.Params).Find(&list).Error; err != nil {
		r.log.Error("list professionals failed", "error", err)
		return nil, 0, fmt.Errorf("list professionals: %w", err)
	}
	return list, total, nil
}

func (r *ProfessionalGormRepository) Update(ctx context.Context, p *models.Professional) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Professional{}).
		Where("id = ?", p.ID).
		Updates(map[string]any{
			"specialty": p.Specialty,
			"photo":     p.Photo,
		}).Error; err != nil {
		r.log.Error("update professional failed", "id", p.ID, "error", err)
		return fmt.Errorf("update professional: %w", err)
	}
	return nil
}

func (r *ProfessionalGormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&models.Professional{}, "id = ?", id).Error; err != nil {
		r.log.Error("delete professional failed", "id", id, "error", err)
		return fmt.Errorf("delete professional: %w", err)
	}
	return nil
}

// --------------------------------------------------
// Offered services
// --------------------------------------------------

func (r *ProfessionalGormRepository) ListServices(ctx context.Context, professionalID uuid.UUID) ([]models.ProfessionalService, error) {
	var list []models.ProfessionalService
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where("professional_id = ?", professionalID).
		Order("created_at ASC").
		Find(&list).Error; err != nil {
		r.log.Error("list professional services failed", "professional_id", professionalID, "error", err)
		return nil, fmt.Errorf("list professional services: %w", err)
	}
	return list, nil
}

func (r *ProfessionalGormRepository) FindService(ctx context.Context, professionalID, serviceID uuid.UUID) (*models.ProfessionalService, error) {
	var ps models.ProfessionalService
	err := r.db.WithContext(ctx).
		Where("professional_id = ? AND service_id = ?", professionalID, serviceID).
		First(&ps).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.log.Error("find professional service failed",
			"professional_id", professionalID,
			"service_id", serviceID,
			"error", err,
		)
		return nil, fmt.Errorf("find professional service: %w", err)
	}
	return &ps, nil
}

func (r *ProfessionalGormRepository) AddService(ctx context.Context, ps *models.ProfessionalService) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(ps).Error; err != nil {
		r.log.Error("add professional service failed",
			"professional_id", ps.ProfessionalID,
			"service_id", ps.ServiceID,
			"error", err,
		)
		return fmt.Errorf("add professional service: %w", err)
	}
	return nil
}

func (r *ProfessionalGormRepository) RemoveService(ctx context.Context, professionalID, serviceID uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Where("professional_id = ? AND service_id = ?", professionalID, serviceID).
		Delete(&models.ProfessionalService{}).Error; err != nil {
		r.log.Error("remove professional service failed",
			"professional_id", professionalID,
			"service_id", serviceID,
			"error", err,
		)
		return fmt.Errorf("remove professional service: %w", err)
	}
	return nil
}
