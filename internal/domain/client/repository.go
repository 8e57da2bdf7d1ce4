package client

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/agenda-api/internal/domain/pagination"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

type Filter struct {
	Name  string
	Email string
	Phone string

	pagination.Params
}

type Repository interface {
	Create(ctx context.Context, c *models.Client) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Client, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Client, error)
	List(ctx context.Context, f Filter) ([]models.Client, int64, error)
	Update(ctx context.Context, c *models.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
}
