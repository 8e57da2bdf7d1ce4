package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/infra/repository"
	"github.com/BruksfildServices01/agenda-api/internal/logger"
	"github.com/BruksfildServices01/agenda-api/internal/models"
	"github.com/BruksfildServices01/agenda-api/internal/testutil"
)

var brt = time.FixedZone("BRT", -3*60*60)

type env struct {
	repo     *repository.AppointmentGormRepository
	clientID uuid.UUID
	offerID  uuid.UUID
	otherID  uuid.UUID
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db := testutil.NewDB(t)

	pu := &models.User{Name: "Ana", Email: "ana@test.com", PasswordHash: "x"}
	cu := &models.User{Name: "Bia", Email: "bia@test.com", PasswordHash: "x"}
	require.NoError(t, db.Create(pu).Error)
	require.NoError(t, db.Create(cu).Error)

	p := &models.Professional{UserID: pu.ID, Specialty: "Cabelo"}
	require.NoError(t, db.Omit("User", "Services").Create(p).Error)
	c := &models.Client{UserID: cu.ID, Gender: "F"}
	require.NoError(t, db.Omit("User").Create(c).Error)

	cut := &models.Service{Name: "Corte", Duration: 30, Price: 5000}
	beard := &models.Service{Name: "Barba", Duration: 20, Price: 3000}
	require.NoError(t, db.Create(cut).Error)
	require.NoError(t, db.Create(beard).Error)

	offer := &models.ProfessionalService{ProfessionalID: p.ID, ServiceID: cut.ID}
	other := &models.ProfessionalService{ProfessionalID: p.ID, ServiceID: beard.ID}
	require.NoError(t, db.Omit("Professional", "Service").Create(offer).Error)
	require.NoError(t, db.Omit("Professional", "Service").Create(other).Error)

	return &env{
		repo:     repository.NewAppointmentGormRepository(db, logger.Nop()),
		clientID: c.ID,
		offerID:  offer.ID,
		otherID:  other.ID,
	}
}

func (e *env) create(t *testing.T, dateTime string) *models.Appointment {
	t.Helper()
	ap, err := NewCreate(e.repo, brt, nil).Execute(context.Background(), CreateInput{
		ClientID:              e.clientID,
		ProfessionalServiceID: e.offerID,
		DateTime:              dateTime,
		Observation:           "primeira vez",
	})
	require.NoError(t, err)
	return ap
}

// ======================================================
// CREATE
// ======================================================

func TestCreateStartsPendingInUTC(t *testing.T) {
	e := newEnv(t)

	ap := e.create(t, "2024-03-10T10:00")

	assert.Equal(t, "pending", ap.Status)
	assert.True(t, ap.DateTime.Equal(time.Date(2024, 3, 10, 13, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Corte", ap.ProfessionalService.Service.Name)
	assert.Equal(t, "Bia", ap.Client.User.Name)
}

func TestCreateChecksReferences(t *testing.T) {
	e := newEnv(t)
	create := NewCreate(e.repo, brt, nil)
	ctx := context.Background()

	_, err := create.Execute(ctx, CreateInput{
		ClientID:              uuid.New(),
		ProfessionalServiceID: e.offerID,
		DateTime:              "2024-03-10T10:00:00Z",
	})
	assert.ErrorIs(t, err, httperr.ErrClientNotFound)

	_, err = create.Execute(ctx, CreateInput{
		ClientID:              e.clientID,
		ProfessionalServiceID: uuid.New(),
		DateTime:              "2024-03-10T10:00:00Z",
	})
	assert.ErrorIs(t, err, httperr.ErrProfessionalServiceNotFound)

	// os dois faltando: cliente primeiro
	_, err = create.Execute(ctx, CreateInput{
		ClientID:              uuid.New(),
		ProfessionalServiceID: uuid.New(),
		DateTime:              "2024-03-10T10:00:00Z",
	})
	assert.ErrorIs(t, err, httperr.ErrClientNotFound)

	list, err := NewList(e.repo, brt).Execute(ctx, ListInput{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreateRejectsBadDate(t *testing.T) {
	e := newEnv(t)

	_, err := NewCreate(e.repo, brt, nil).Execute(context.Background(), CreateInput{
		ClientID:              e.clientID,
		ProfessionalServiceID: e.offerID,
		DateTime:              "10/03/2024",
	})
	assert.ErrorIs(t, err, httperr.ErrInvalidDate)
}

// ======================================================
// UPDATE
// ======================================================

func TestUpdatePatchesOnlyGivenFields(t *testing.T) {
	e := newEnv(t)
	ap := e.create(t, "2024-03-10T10:00:00Z")

	status := "confirmed"
	got, err := NewUpdate(e.repo, brt, nil).Execute(context.Background(), UpdateInput{
		ID:                    ap.ID,
		Status:                &status,
		ProfessionalServiceID: &e.otherID,
	})
	require.NoError(t, err)

	assert.Equal(t, "confirmed", got.Status)
	assert.Equal(t, "Barba", got.ProfessionalService.Service.Name)
	assert.Equal(t, "primeira vez", got.Observation)
	assert.True(t, got.DateTime.Equal(ap.DateTime))
}

func TestUpdateAllowsAnyStatusTransition(t *testing.T) {
	e := newEnv(t)
	ap := e.create(t, "2024-03-10T10:00:00Z")
	update := NewUpdate(e.repo, brt, nil)

	for _, st := range []string{"canceled", "pending", "completed"} {
		s := st
		got, err := update.Execute(context.Background(), UpdateInput{ID: ap.ID, Status: &s})
		require.NoError(t, err)
		assert.Equal(t, st, got.Status)
	}
}

func TestUpdateRejections(t *testing.T) {
	e := newEnv(t)
	ap := e.create(t, "2024-03-10T10:00:00Z")
	update := NewUpdate(e.repo, brt, nil)
	ctx := context.Background()

	bogus := "archived"
	_, err := update.Execute(ctx, UpdateInput{ID: ap.ID, Status: &bogus})
	assert.True(t, httperr.IsKind(err, httperr.KindInvalid))

	missing := uuid.New()
	_, err = update.Execute(ctx, UpdateInput{ID: ap.ID, ProfessionalServiceID: &missing})
	assert.ErrorIs(t, err, httperr.ErrProfessionalServiceNotFound)

	_, err = update.Execute(ctx, UpdateInput{ID: uuid.New(), Status: &bogus})
	assert.ErrorIs(t, err, httperr.ErrAppointmentNotFound)

	got, err := NewGet(e.repo).Execute(ctx, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "pending", got.Status)
}

// ======================================================
// LIST / DELETE
// ======================================================

func TestListDateOnlyEndCoversWholeDay(t *testing.T) {
	e := newEnv(t)
	e.create(t, "2024-03-10T08:00")
	e.create(t, "2024-03-10T23:30")
	e.create(t, "2024-03-11T00:00")

	list, err := NewList(e.repo, brt).Execute(context.Background(), ListInput{
		StartDate: "2024-03-10",
		EndDate:   "2024-03-10",
	})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestListRejectsBadRange(t *testing.T) {
	e := newEnv(t)

	_, err := NewList(e.repo, brt).Execute(context.Background(), ListInput{StartDate: "ontem"})
	assert.ErrorIs(t, err, httperr.ErrInvalidDate)
}

func TestDelete(t *testing.T) {
	e := newEnv(t)
	ap := e.create(t, "2024-03-10T10:00:00Z")
	del := NewDelete(e.repo, nil)
	ctx := context.Background()

	require.NoError(t, del.Execute(ctx, ap.ID))
	assert.ErrorIs(t, del.Execute(ctx, ap.ID), httperr.ErrAppointmentNotFound)
}
