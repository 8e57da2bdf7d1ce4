package user

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/agenda-api/internal/audit"
	domain "github.com/BruksfildServices01/agenda-api/internal/domain/user"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

// ======================================================
// LIST / GET
// ======================================================

type ListUsers struct {
	repo domain.Repository
}

func NewListUsers(repo domain.Repository) *ListUsers {
	return &ListUsers{repo: repo}
}

func (uc *ListUsers) Execute(ctx context.Context) ([]models.User, error) {
	return uc.repo.List(ctx)
}

type GetUser struct {
	repo domain.Repository
}

func NewGetUser(repo domain.Repository) *GetUser {
	return &GetUser{repo: repo}
}

func (uc *GetUser) Execute(ctx context.Context, id uuid.UUID) (*models.User, error) {
	u, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, httperr.ErrUserNotFound
	}
	return u, nil
}

// ======================================================
// UPDATE
// ======================================================

type UpdateUserInput struct {
	ID   uuid.UUID
	Name string
}

type UpdateUser struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateUser(repo domain.Repository, audit *audit.Dispatcher) *UpdateUser {
	return &UpdateUser{repo: repo, audit: audit}
}

func (uc *UpdateUser) Execute(ctx context.Context, in UpdateUserInput) (*models.User, error) {
	u, err := uc.repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, httperr.ErrUserNotFound
	}

	name := strings.TrimSpace(in.Name)
	if err := uc.repo.UpdateName(ctx, in.ID, name); err != nil {
		return nil, err
	}
	u.Name = name

	uc.audit.Dispatch(ctx, audit.Event{
		Action:   "user_updated",
		Entity:   "user",
		EntityID: &u.ID,
	})

	return u, nil
}

// ======================================================
// DELETE
// ======================================================

type DeleteUser struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteUser(repo domain.Repository, audit *audit.Dispatcher) *DeleteUser {
	return &DeleteUser{repo: repo, audit: audit}
}

func (uc *DeleteUser) Execute(ctx context.Context, id uuid.UUID) error {
	u, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return httperr.ErrUserNotFound
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(ctx, audit.Event{
		Action:   "user_deleted",
		Entity:   "user",
		EntityID: &id,
	})
	return nil
}
