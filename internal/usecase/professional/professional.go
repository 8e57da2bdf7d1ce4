package professional

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/agenda-api/internal/audit"
	domain "github.com/BruksfildServices01/agenda-api/internal/domain/professional"
	userdomain "github.com/BruksfildServices01/agenda-api/internal/domain/user"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/models"
	"github.com/BruksfildServices01/agenda-api/internal/usecase/photo"
)

// ======================================================
// CREATE
// ======================================================

type CreateInput struct {
	UserID    uuid.UUID
	Specialty string
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

func (uc *Create) Execute(ctx context.Context, in CreateInput) (*models.Professional, error) {
	// --------------------------------------------------
	// 1️⃣ Usuário existe e ainda não é profissional
	// --------------------------------------------------
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
		return nil, httperr.ErrProfessionalAlreadyExists
	}

	// --------------------------------------------------
	// 2️⃣ Foto (o id é gerado antes para compor a chave)
	// --------------------------------------------------
	p := &models.Professional{
		ID:        uuid.New(),
		UserID:    in.UserID,
		Specialty: strings.TrimSpace(in.Specialty),
	}

	uploaded := false
	if in.Photo != nil && *in.Photo != "" {
		url, up, err := uc.photos.Resolve(ctx, photo.PrefixProfessionals, p.ID, *in.Photo)
		if err != nil {
			return nil, err
		}
		p.Photo, uploaded = url, up
	}

	// --------------------------------------------------
	// 3️⃣ Persistência
	// --------------------------------------------------
	if err := uc.repo.Create(ctx, p); err != nil {
		if uploaded {
			uc.photos.Remove(ctx, photo.PrefixProfessionals, p.ID)
		}
		return nil, err
	}
	p.User = *u

	uc.audit.Dispatch(ctx, audit.Event{
		Action:   "professional_created",
		Entity:   "professional",
		EntityID: &p.ID,
	})

	return p, nil
}

// ======================================================
// UPDATE
// ======================================================

// UpdateInput: campos nil são preservados.
type UpdateInput struct {
	ID        uuid.UUID
	Specialty *string
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

func (uc *Update) Execute(ctx context.Context, in UpdateInput) (*models.Professional, error) {
	p, err := uc.repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, httperr.ErrProfessionalNotFound
	}

	if in.Specialty != nil {
		p.Specialty = strings.TrimSpace(*in.Specialty)
	}
	// o objeto antigo sai quando a foto deixa de apontar para ele
	dropStored := false
	if in.Photo != nil {
		hadStored := uc.photos.Owns(photo.PrefixProfessionals, p.ID, p.Photo)
		url, uploaded, err := uc.photos.Resolve(ctx, photo.PrefixProfessionals, p.ID, *in.Photo)
		if err != nil {
			return nil, err
		}
		p.Photo = url
		dropStored = hadStored && !uploaded
	}

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	if dropStored {
		uc.photos.Remove(ctx, photo.PrefixProfessionals, p.ID)
	}

	uc.audit.Dispatch(ctx, audit.Event{
		Action:   "professional_updated",
		Entity:   "professional",
		EntityID: &p.ID,
	})

	return uc.repo.FindByID(ctx, p.ID)
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

func (uc *Get) Execute(ctx context.Context, id uuid.UUID) (*models.Professional, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, httperr.ErrProfessionalNotFound
	}
	return p, nil
}

type List struct {
	repo domain.Repository
}

func NewList(repo domain.Repository) *List {
	return &List{repo: repo}
}

func (uc *List) Execute(ctx context.Context, f domain.Filter) ([]models.Professional, int64, error) {
	f.Params = f.Params.Normalize()
	return uc.repo.List(ctx, f)
}

// ======================================================
// DELETE
// ======================================================

type Delete struct {
	repo   domain.Repository
	photos *photo.Uploader
	cache  Cache
	audit  *audit.Dispatcher
}

func NewDelete(
	repo domain.Repository,
	photos *photo.Uploader,
	cache Cache,
	audit *audit.Dispatcher,
) *Delete {
	return &Delete{repo: repo, photos: photos, cache: cache, audit: audit}
}

func (uc *Delete) Execute(ctx context.Context, id uuid.UUID) error {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return httperr.ErrProfessionalNotFound
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	if p.Photo != "" {
		uc.photos.Remove(ctx, photo.PrefixProfessionals, id)
	}
	invalidate(ctx, uc.cache, id)

	uc.audit.Dispatch(ctx, audit.Event{
		Action:   "professional_deleted",
		Entity:   "professional",
		EntityID: &id,
	})
	return nil
}
