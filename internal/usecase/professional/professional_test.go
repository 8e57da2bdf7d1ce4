package professional

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/infra/cache"
	"github.com/BruksfildServices01/agenda-api/internal/infra/repository"
	"github.com/BruksfildServices01/agenda-api/internal/infra/storage"
	"github.com/BruksfildServices01/agenda-api/internal/logger"
	"github.com/BruksfildServices01/agenda-api/internal/models"
	"github.com/BruksfildServices01/agenda-api/internal/testutil"
	"github.com/BruksfildServices01/agenda-api/internal/usecase/photo"
)

type env struct {
	repo     *repository.ProfessionalGormRepository
	users    *repository.UserGormRepository
	services *repository.ServiceGormRepository
	store    *storage.Memory
	cache    *cache.Memory
	photos   *photo.Uploader
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db := testutil.NewDB(t)
	log := logger.Nop()
	store := storage.NewMemory("https://cdn.test")
	return &env{
		repo:     repository.NewProfessionalGormRepository(db, log),
		users:    repository.NewUserGormRepository(db, log),
		services: repository.NewServiceGormRepository(db, log),
		store:    store,
		cache:    cache.NewMemory(),
		photos:   photo.NewUploader(store, log),
	}
}

func (e *env) user(t *testing.T, email string) *models.User {
	t.Helper()
	u := &models.User{Name: "Ana", Email: email, PasswordHash: "x"}
	require.NoError(t, e.users.Create(context.Background(), u))
	return u
}

func (e *env) service(t *testing.T, name string) *models.Service {
	t.Helper()
	s := &models.Service{Name: name, Duration: 30, Price: 5000}
	require.NoError(t, e.services.Create(context.Background(), s))
	return s
}

func pngDataURL(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

// ======================================================
// CREATE / UPDATE / DELETE
// ======================================================

func TestCreateRejectsSecondProfile(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u := e.user(t, "ana@test.com")
	create := NewCreate(e.repo, e.users, e.photos, nil)

	p, err := create.Execute(ctx, CreateInput{UserID: u.ID, Specialty: " Cabelo "})
	require.NoError(t, err)
	assert.Equal(t, "Cabelo", p.Specialty)
	assert.Equal(t, "ana@test.com", p.User.Email)

	_, err = create.Execute(ctx, CreateInput{UserID: u.ID, Specialty: "Barba"})
	assert.ErrorIs(t, err, httperr.ErrProfessionalAlreadyExists)
}

func TestCreateUnknownUser(t *testing.T) {
	e := newEnv(t)
	create := NewCreate(e.repo, e.users, e.photos, nil)

	_, err := create.Execute(context.Background(), CreateInput{UserID: uuid.New(), Specialty: "Cabelo"})
	assert.ErrorIs(t, err, httperr.ErrUserNotFound)
}

func TestCreateUploadsPhoto(t *testing.T) {
	e := newEnv(t)
	u := e.user(t, "ana@test.com")
	img := pngDataURL(t)

	p, err := NewCreate(e.repo, e.users, e.photos, nil).Execute(context.Background(), CreateInput{
		UserID:    u.ID,
		Specialty: "Cabelo",
		Photo:     &img,
	})
	require.NoError(t, err)

	key := photo.Key(photo.PrefixProfessionals, p.ID)
	assert.True(t, strings.HasPrefix(p.Photo, "https://cdn.test/"+key+"?v="))
	_, ok := e.store.Get(key)
	assert.True(t, ok)
}

func TestUpdatePreservesOmittedFields(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u := e.user(t, "ana@test.com")
	url := "https://example.com/ana.png"

	p, err := NewCreate(e.repo, e.users, e.photos, nil).Execute(ctx, CreateInput{
		UserID:    u.ID,
		Specialty: "Cabelo",
		Photo:     &url,
	})
	require.NoError(t, err)

	specialty := "Coloração"
	got, err := NewUpdate(e.repo, e.photos, nil).Execute(ctx, UpdateInput{ID: p.ID, Specialty: &specialty})
	require.NoError(t, err)
	assert.Equal(t, "Coloração", got.Specialty)
	assert.Equal(t, url, got.Photo)
}

func TestUpdateToPlainURLDropsStoredPhoto(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u := e.user(t, "ana@test.com")
	img := pngDataURL(t)

	p, err := NewCreate(e.repo, e.users, e.photos, nil).Execute(ctx, CreateInput{UserID: u.ID, Specialty: "Cabelo", Photo: &img})
	require.NoError(t, err)
	require.Equal(t, 1, e.store.Len())

	update := NewUpdate(e.repo, e.photos, nil)

	// nova foto enviada: o objeto é sobrescrito, não apagado
	again := pngDataURL(t)
	_, err = update.Execute(ctx, UpdateInput{ID: p.ID, Photo: &again})
	require.NoError(t, err)
	assert.Equal(t, 1, e.store.Len())

	url := "https://example.com/ana.png"
	got, err := update.Execute(ctx, UpdateInput{ID: p.ID, Photo: &url})
	require.NoError(t, err)
	assert.Equal(t, url, got.Photo)
	assert.Equal(t, 0, e.store.Len())
}

func TestUpdateUnknownProfessional(t *testing.T) {
	e := newEnv(t)
	specialty := "x"

	_, err := NewUpdate(e.repo, e.photos, nil).Execute(context.Background(), UpdateInput{ID: uuid.New(), Specialty: &specialty})
	assert.ErrorIs(t, err, httperr.ErrProfessionalNotFound)
}

func TestDeleteRemovesPhoto(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u := e.user(t, "ana@test.com")
	img := pngDataURL(t)

	p, err := NewCreate(e.repo, e.users, e.photos, nil).Execute(ctx, CreateInput{UserID: u.ID, Specialty: "Cabelo", Photo: &img})
	require.NoError(t, err)
	require.Equal(t, 1, e.store.Len())

	require.NoError(t, NewDelete(e.repo, e.photos, e.cache, nil).Execute(ctx, p.ID))
	assert.Equal(t, 0, e.store.Len())

	_, err = NewGet(e.repo).Execute(ctx, p.ID)
	assert.ErrorIs(t, err, httperr.ErrProfessionalNotFound)

	err = NewDelete(e.repo, e.photos, e.cache, nil).Execute(ctx, p.ID)
	assert.ErrorIs(t, err, httperr.ErrProfessionalNotFound)
}

// ======================================================
// OFFERED SERVICES
// ======================================================

func TestAddServiceTwiceConflicts(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u := e.user(t, "ana@test.com")
	p, err := NewCreate(e.repo, e.users, e.photos, nil).Execute(ctx, CreateInput{UserID: u.ID, Specialty: "Cabelo"})
	require.NoError(t, err)
	s := e.service(t, "Corte")

	add := NewAddService(e.repo, e.services, e.cache, nil)
	ps, err := add.Execute(ctx, LinkInput{ProfessionalID: p.ID, ServiceID: s.ID})
	require.NoError(t, err)
	assert.Equal(t, "Corte", ps.Service.Name)

	_, err = add.Execute(ctx, LinkInput{ProfessionalID: p.ID, ServiceID: s.ID})
	assert.ErrorIs(t, err, httperr.ErrAlreadyLinked)

	links, err := e.repo.ListServices(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, links, 1)
}

func TestLinkChecksBothSides(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u := e.user(t, "ana@test.com")
	p, err := NewCreate(e.repo, e.users, e.photos, nil).Execute(ctx, CreateInput{UserID: u.ID, Specialty: "Cabelo"})
	require.NoError(t, err)
	s := e.service(t, "Corte")

	add := NewAddService(e.repo, e.services, e.cache, nil)
	_, err = add.Execute(ctx, LinkInput{ProfessionalID: uuid.New(), ServiceID: s.ID})
	assert.ErrorIs(t, err, httperr.ErrProfessionalNotFound)

	_, err = add.Execute(ctx, LinkInput{ProfessionalID: p.ID, ServiceID: uuid.New()})
	assert.ErrorIs(t, err, httperr.ErrServiceNotFound)

	err = NewRemoveService(e.repo, e.services, e.cache, nil).Execute(ctx, LinkInput{ProfessionalID: p.ID, ServiceID: s.ID})
	assert.ErrorIs(t, err, httperr.ErrProfessionalServiceNotFound)
}

func TestListServicesUsesCacheUntilLinkChanges(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u := e.user(t, "ana@test.com")
	p, err := NewCreate(e.repo, e.users, e.photos, nil).Execute(ctx, CreateInput{UserID: u.ID, Specialty: "Cabelo"})
	require.NoError(t, err)

	list := NewListServices(e.repo, e.cache)

	got, err := list.Execute(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.True(t, e.cache.Has(servicesKey(p.ID)))

	s := e.service(t, "Corte")
	_, err = NewAddService(e.repo, e.services, e.cache, nil).Execute(ctx, LinkInput{ProfessionalID: p.ID, ServiceID: s.ID})
	require.NoError(t, err)
	assert.False(t, e.cache.Has(servicesKey(p.ID)))

	got, err = list.Execute(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Corte", got[0].Service.Name)

	require.NoError(t, NewRemoveService(e.repo, e.services, e.cache, nil).Execute(ctx, LinkInput{ProfessionalID: p.ID, ServiceID: s.ID}))
	got, err = list.Execute(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListServicesUnknownProfessional(t *testing.T) {
	e := newEnv(t)

	_, err := NewListServices(e.repo, e.cache).Execute(context.Background(), uuid.New())
	assert.ErrorIs(t, err, httperr.ErrProfessionalNotFound)
}
