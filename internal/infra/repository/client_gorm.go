package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/client"
	"github.com/BruksfildServices01/agenda-api/internal/logger"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

type ClientGormRepository struct {
	db  *gorm.DB
	log *logger.Logger
}

var _ domain.Repository = (*ClientGormRepository)(nil)

func NewClientGormRepository(db *gorm.DB, log *logger.Logger) *ClientGormRepository {
	return &ClientGormRepository{db: db, log: log}
}

func (r *ClientGormRepository) Create(ctx context.Context, c *models.Client) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(c).Error; err != nil {
		r.log.Error("create client failed", "user_id", c.UserID, "error", err)
		return fmt.Errorf("create client: %w", err)
	}
	return nil
}

func (r *ClientGormRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	var c models.Client
	if err := r.db.WithContext(ctx).Preload("User").First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.log.Error("find client failed", "id", id, "error", err)
		return nil, fmt.Errorf("find client: %w", err)
	}
	return &c, nil
}

func (r *ClientGormRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Client, error) {
	var c models.Client
	if err := r.db.WithContext(ctx).First(&c, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.log.Error("find client by user failed", "user_id", userID, "error", err)
		return nil, fmt.Errorf("find client by user: %w", err)
	}
	return &c, nil
}

func (r *ClientGormRepository) List(ctx context.Context, f domain.Filter) ([]models.Client, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Client{})
	q = applySearch(q, r.db,
		likeTerm{userColumnIn("name"), f.Name},
		likeTerm{userColumnIn("email"), f.Email},
		likeTerm{"LOWER(phone) LIKE ?", f.Phone},
	)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		r.log.Error("count clients failed", "error", err)
		return nil, 0, fmt.Errorf("count clients: %w", err)
	}

	var list []models.Client
	if err := paginate(q.Preload("User").Order("created_at DESC"), f.Params).Find(&list).Error; err != nil {
		r.log.Error("list clients failed", "error", err)
		return nil, 0, fmt.Errorf("list clients: %w", err)
	}
	return list, total, nil
}

func (r *ClientGormRepository) Update(ctx context.Context, c *models.Client) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", c.ID).
		Updates(map[string]any{
			"phone":      c.Phone,
			"birth_date": c.BirthDate,
			"gender":     c.Gender,
			"photo":      c.Photo,
		}).Error; err != nil {
		r.log.Error("update client failed", "id", c.ID, "error", err)
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

func (r *ClientGormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&models.Client{}, "id = ?", id).Error; err != nil {
		r.log.Error("delete client failed", "id", id, "error", err)
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}
