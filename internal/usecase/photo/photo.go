package photo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/logger"
	"github.com/BruksfildServices01/agenda-api/internal/media"
	"github.com/BruksfildServices01/agenda-api/internal/validators"
)

const (
	PrefixProfessionals = "professionals"
	PrefixClients       = "clients"
)

type Store interface {
	Put(ctx context.Context, key, contentType string, body []byte) error
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

// Uploader normaliza fotos de perfil e as grava no object storage sob uma
// chave fixa por entidade, sobrescrevendo a versão anterior.
type Uploader struct {
	store   Store
	log     *logger.Logger
	maxSide int
	now     func() time.Time
}

func NewUploader(store Store, log *logger.Logger) *Uploader {
	return &Uploader{
		store:   store,
		log:     log,
		maxSide: media.DefaultMaxSide,
		now:     time.Now,
	}
}

func Key(prefix string, id uuid.UUID) string {
	return fmt.Sprintf("%s/%s.webp", prefix, id)
}

// Resolve devolve o valor a persistir no campo photo e se houve upload.
// Data URLs viram um objeto WebP e a URL pública com ?v=<unix>; qualquer
// outro valor é mantido.
func (u *Uploader) Resolve(ctx context.Context, prefix string, id uuid.UUID, photo string) (string, bool, error) {
	if !validators.IsImageData(photo) {
		return photo, false, nil
	}

	body, err := media.ToWebP(photo, u.maxSide)
	if err != nil {
		if errors.Is(err, media.ErrInvalidDataURL) {
			return "", false, httperr.ErrInvalidImage
		}
		return "", false, err
	}

	key := Key(prefix, id)
	if err := u.store.Put(ctx, key, media.ContentTypeWebP, body); err != nil {
		u.log.Error("photo upload failed", "key", key, "error", err)
		return "", false, fmt.Errorf("upload photo: %w", err)
	}

	return fmt.Sprintf("%s?v=%d", u.store.URL(key), u.now().Unix()), true, nil
}

// Owns diz se o valor salvo aponta para o objeto da entidade no storage.
func (u *Uploader) Owns(prefix string, id uuid.UUID, photo string) bool {
	if photo == "" {
		return false
	}
	base, _, _ := strings.Cut(photo, "?")
	return base == u.store.URL(Key(prefix, id))
}

// Remove apaga o objeto da entidade. Falhas são apenas registradas.
func (u *Uploader) Remove(ctx context.Context, prefix string, id uuid.UUID) {
	key := Key(prefix, id)
	if err := u.store.Delete(ctx, key); err != nil {
		u.log.Warn("photo delete failed", "key", key, "error", err)
	}
}
