package client

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/agenda-api/internal/audit"
	domain "github.com/BruksfildServices01/agenda-api/internal/domain/client"
	userdomain "github.com/BruksfildServices01/agenda-api/internal/domain/user"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/models"
	"github.com/BruksfildServices01/agenda-api/internal/timezone"
	"github.com/BruksfildServices01/agenda-api/internal/usecase/photo"
)

func parseBirthDate(s string) (time.Time, error) {
	t, _, err := timezone.Parse(s, time.UTC)
	if err != nil {
		return time.Time{}, httperr.ErrInvalidDate
	}
	return t.UTC(), nil
}

// ======================================================
// CREATE
// ======================================================

type CreateInput struct {
	UserID    uuid.UUID
	Phone     string
	BirthDate string
	Gender    string
	Photo     *string
}

type Create struct {
	repo   domain.Repository
	users  userdomain.Repository
	photos *photo.Uploader
	audit  *audit.Dispatcher
}

func NewCreate(
	repo domain.Repository,
	users userdomain.Repository,
	photos *photo.Uploader,
	audit *audit.Dispatcher,
) *Create {
	return &Create{repo: repo, users: users, photos: photos, audit: audit}
}

func (uc *Create) Execute(ctx context.Context, in CreateInput) (*models.Client, error) {
	u, err := uc.users.FindByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, httperr.ErrUserNotFound
	}

	existing, err := uc.repo.FindByUserID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.ErrClientAlreadyExists
	}

	birth, err := parseBirthDate(in.BirthDate)
	if err != nil {
		return nil, err
	}

	c := &models.Client{
		ID:        uuid.New(),
		UserID:    in.UserID,
		Phone:     in.Phone,
		BirthDate: birth,
		Gender:    in.Gender,
	}

	uploaded := false
	if in.Photo != nil && *in.Photo != "" {
		url, up, err := uc.photos.Resolve(ctx, photo.PrefixClients, c.ID, *in.Photo)
		if err != nil {
			return nil, err
		}
		c.Photo, uploaded = url, up
	}

	if err := uc.repo.Create(ctx, c); err != nil {
		if uploaded {
			uc.photos.Remove(ctx, photo.PrefixClients, c.ID)
		}
		return nil, err
	}
	c.User = *u

	uc.audit.Dispatch(ctx, audit.Event{
		Action:   "client_created",
		Entity:   "client",
		EntityID: &c.ID,
	})

	return c, nil
}

// ======================================================
// UPDATE
// ======================================================

type UpdateInput struct {
	ID        uuid.UUID
	Phone     *string
	BirthDate *string
	Gender    *string
	Photo     *string
}

type Update struct {
	repo   domain.Repository
	photos *photo.Uploader
	audit  *audit.Dispatcher
}

func NewUpdate(repo domain.Repository, photos *photo.Uploader, audit *audit.Dispatcher) *Update {
	return &Update{repo: repo, photos: photos, audit: audit}
}

func (uc *Update) Execute(ctx context.Context, in UpdateInput) (*models.Client, error) {
	c, err := uc.repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, httperr.ErrClientNotFound
	}

	if in.Phone != nil {
		c.Phone = *in.Phone
	}
	if in.BirthDate != nil {
		birth, err := parseBirthDate(*in.BirthDate)
		if err != nil {
			return nil, err
		}
		c.BirthDate = birth
	}
	if in.Gender != nil {
		c.Gender = *in.Gender
	}
	// o objeto antigo sai quando a foto deixa de apontar para ele
	dropStored := false
	if in.Photo != nil {
		hadStored := uc.photos.Owns(photo.PrefixClients, c.ID, c.Photo)
		url, uploaded, err := uc.photos.Resolve(ctx, photo.PrefixClients, c.ID, *in.Photo)
		if err != nil {
			return nil, err
		}
		c.Photo = url
		dropStored = hadStored && !uploaded
	}

	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	if dropStored {
		uc.photos.Remove(ctx, photo.PrefixClients, c.ID)
	}

	uc.audit.Dispatch(ctx, audit.Event{
		Action:   "client_updated",
		Entity:   "client",
		EntityID: &c.ID,
	})

	return uc.repo.FindByID(ctx, c.ID)
}

// ======================================================
// GET / LIST
// ======================================================

type Get struct {
	repo domain.Repository
}

func NewGet(repo domain.Repository) *Get {
	return &Get{repo: repo}
}

func (uc *Get) Execute(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, httperr.ErrClientNotFound
	}
	return c, nil
}

type List struct {
	repo domain.Repository
}

func NewList(repo domain.Repository) *List {
	return &List{repo: repo}
}

func (uc *List) Execute(ctx context.Context, f domain.Filter) ([]models.Client, int64, error) {
	f.Params = f.Params.Normalize()
	return uc.repo.List(ctx, f)
}

// ======================================================
// DELETE
// ======================================================

type Delete struct {
	repo   domain.Repository
	photos *photo.Uploader
	audit  *audit.Dispatcher
}

func NewDelete(repo domain.Repository, photos *photo.Uploader, audit *audit.Dispatcher) *Delete {
	return &Delete{repo: repo, photos: photos, audit: audit}
}

func (uc *Delete) Execute(ctx context.Context, id uuid.UUID) error {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return httperr.ErrClientNotFound
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	if c.Photo != "" {
		uc.photos.Remove(ctx, photo.PrefixClients, id)
	}

	uc.audit.Dispatch(ctx, audit.Event{
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: &id,
	})
	return nil
}
