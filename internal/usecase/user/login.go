package user

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/user"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
)

type LoginInput struct {
	Email    string
	Password string
}

type Login struct {
	repo   domain.Repository
	tokens TokenIssuer
}

func NewLogin(repo domain.Repository, tokens TokenIssuer) *Login {
	return &Login{repo: repo, tokens: tokens}
}

// Execute não distingue e-mail inexistente de senha errada.
func (uc *Login) Execute(ctx context.Context, in LoginInput) (*Authenticated, error) {
	u, err := uc.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, httperr.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, httperr.ErrInvalidCredentials
	}

	token, err := uc.tokens.Issue(u.ID)
	if err != nil {
		return nil, err
	}

	return &Authenticated{User: *u, Token: token}, nil
}
