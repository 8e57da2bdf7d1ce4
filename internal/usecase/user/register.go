package user

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/agenda-api/internal/audit"
	domain "github.com/BruksfildServices01/agenda-api/internal/domain/user"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

type TokenIssuer interface {
	Issue(userID uuid.UUID) (string, error)
}

// Authenticated é o usuário devolvido por cadastro e login.
type Authenticated struct {
	models.User
	Token string `json:"token"`
}

// ======================================================
// INPUT
// ======================================================

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// ======================================================
// USE CASE
// ======================================================

type Register struct {
	repo   domain.Repository
	tokens TokenIssuer
	audit  *audit.Dispatcher

	// checkDomain valida o domínio do e-mail; nil desativa.
	checkDomain func(email string) bool
	cost        int
}

func NewRegister(
	repo domain.Repository,
	tokens TokenIssuer,
	audit *audit.Dispatcher,
	checkDomain func(email string) bool,
) *Register {
	return &Register{
		repo:        repo,
		tokens:      tokens,
		audit:       audit,
		checkDomain: checkDomain,
		cost:        bcrypt.DefaultCost,
	}
}

func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*Authenticated, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if uc.checkDomain != nil && !uc.checkDomain(email) {
		return nil, httperr.ErrInvalidEmailDomain
	}

	existing, err := uc.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.cost)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	token, err := uc.tokens.Issue(u.ID)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(ctx, audit.Event{
		UserID:   &u.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &u.ID,
	})

	return &Authenticated{User: *u, Token: token}, nil
}
