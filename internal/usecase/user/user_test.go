package user

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-api/internal/audit"
	"github.com/BruksfildServices01/agenda-api/internal/auth"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/infra/repository"
	"github.com/BruksfildServices01/agenda-api/internal/logger"
	"github.com/BruksfildServices01/agenda-api/internal/models"
	"github.com/BruksfildServices01/agenda-api/internal/testutil"
)

type env struct {
	db     *gorm.DB
	repo   *repository.UserGormRepository
	tokens *auth.Tokens
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db := testutil.NewDB(t)
	return &env{
		db:     db,
		repo:   repository.NewUserGormRepository(db, logger.Nop()),
		tokens: auth.NewTokens("test-secret", time.Hour),
	}
}

func (e *env) register(checkDomain func(string) bool, dispatcher *audit.Dispatcher) *Register {
	uc := NewRegister(e.repo, e.tokens, dispatcher, checkDomain)
	uc.cost = bcrypt.MinCost
	return uc
}

func TestRegisterThenLogin(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	reg, err := e.register(nil, nil).Execute(ctx, RegisterInput{
		Name:     " Ana ",
		Email:    " Ana@Test.com ",
		Password: "segredo123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana", reg.Name)
	assert.Equal(t, "ana@test.com", reg.Email)
	assert.NotEqual(t, "segredo123", reg.PasswordHash)

	id, err := e.tokens.Parse(reg.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, id)

	got, err := NewLogin(e.repo, e.tokens).Execute(ctx, LoginInput{Email: "ANA@test.com", Password: "segredo123"})
	require.NoError(t, err)
	assert.Equal(t, reg.ID, got.ID)
	assert.NotEmpty(t, got.Token)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	reg := e.register(nil, nil)

	_, err := reg.Execute(ctx, RegisterInput{Name: "Ana", Email: "ana@test.com", Password: "segredo123"})
	require.NoError(t, err)

	_, err = reg.Execute(ctx, RegisterInput{Name: "Outra", Email: "ANA@test.com", Password: "outra123"})
	assert.ErrorIs(t, err, httperr.ErrUserAlreadyExists)
}

func TestRegisterRejectsDomain(t *testing.T) {
	e := newEnv(t)
	reject := func(string) bool { return false }

	_, err := e.register(reject, nil).Execute(context.Background(), RegisterInput{
		Name: "Ana", Email: "ana@nowhere.invalid", Password: "segredo123",
	})
	assert.ErrorIs(t, err, httperr.ErrInvalidEmailDomain)

	users, err := NewListUsers(e.repo).Execute(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestLoginWrongPasswordAndUnknownEmailLookTheSame(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	_, err := e.register(nil, nil).Execute(ctx, RegisterInput{Name: "Ana", Email: "ana@test.com", Password: "segredo123"})
	require.NoError(t, err)

	login := NewLogin(e.repo, e.tokens)

	_, err = login.Execute(ctx, LoginInput{Email: "ana@test.com", Password: "errada"})
	assert.ErrorIs(t, err, httperr.ErrInvalidCredentials)

	_, err = login.Execute(ctx, LoginInput{Email: "bia@test.com", Password: "segredo123"})
	assert.ErrorIs(t, err, httperr.ErrInvalidCredentials)
}

func TestUpdateAndDeleteUser(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	reg, err := e.register(nil, nil).Execute(ctx, RegisterInput{Name: "Ana", Email: "ana@test.com", Password: "segredo123"})
	require.NoError(t, err)

	u, err := NewUpdateUser(e.repo, nil).Execute(ctx, UpdateUserInput{ID: reg.ID, Name: "Ana Maria"})
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", u.Name)
	assert.Equal(t, "ana@test.com", u.Email)

	require.NoError(t, NewDeleteUser(e.repo, nil).Execute(ctx, reg.ID))

	_, err = NewGetUser(e.repo).Execute(ctx, reg.ID)
	assert.ErrorIs(t, err, httperr.ErrUserNotFound)

	_, err = NewUpdateUser(e.repo, nil).Execute(ctx, UpdateUserInput{ID: uuid.New(), Name: "x"})
	assert.ErrorIs(t, err, httperr.ErrUserNotFound)
}

func TestMutationsAreAudited(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	dispatcher := audit.NewDispatcher(audit.New(e.db), logger.Nop(), 10)

	reg, err := e.register(nil, dispatcher).Execute(ctx, RegisterInput{Name: "Ana", Email: "ana@test.com", Password: "segredo123"})
	require.NoError(t, err)

	actorCtx := auth.WithUserID(ctx, reg.ID)
	_, err = NewUpdateUser(e.repo, dispatcher).Execute(actorCtx, UpdateUserInput{ID: reg.ID, Name: "Ana Maria"})
	require.NoError(t, err)

	dispatcher.Close()

	var logs []models.AuditLog
	require.NoError(t, e.db.Order("created_at ASC").Find(&logs).Error)
	require.Len(t, logs, 2)

	actions := []string{logs[0].Action, logs[1].Action}
	assert.ElementsMatch(t, []string{"user_registered", "user_updated"}, actions)
	for _, l := range logs {
		require.NotNil(t, l.UserID)
		assert.Equal(t, reg.ID, *l.UserID)
		assert.Equal(t, "user", l.Entity)
	}
}
