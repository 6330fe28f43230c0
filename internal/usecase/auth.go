package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domainErrors "github.com/polkiloo/inventory/internal/domain/errors"
	"github.com/polkiloo/inventory/internal/domain/model"
	"github.com/polkiloo/inventory/internal/domain/repository"
	pkgAuth "github.com/polkiloo/inventory/internal/pkg/auth"
)

// AuthUseCase registers operators and issues their tokens.
type AuthUseCase struct {
	operators repository.OperatorRepository
	hasher    pkgAuth.PasswordHasher
	tokens    pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(operators repository.OperatorRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{operators: operators, hasher: hasher, tokens: strategy}
}

func credentials(login, password string) (string, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return "", domainErrors.ErrInvalidCredentials
	}
	return login, nil
}

// Register creates an operator account and returns an auth token.
func (u *AuthUseCase) Register(ctx context.Context, login, password string) (*model.Operator, string, error) {
	login, err := credentials(login, password)
	if err != nil {
		return nil, "", err
	}

	hash, err := u.hasher.Hash(password)
	if errors.Is(err, pkgAuth.ErrPasswordTooLong) {
		return nil, "", fmt.Errorf("%w: %w", domainErrors.ErrInvalidCredentials, err)
	}
	if err != nil {
		return nil, "", err
	}

	op, err := u.operators.Create(ctx, login, hash)
	if err != nil {
		return nil, "", err
	}
	return u.issue(op)
}

// Authenticate checks credentials of an existing operator.
func (u *AuthUseCase) Authenticate(ctx context.Context, login, password string) (*model.Operator, string, error) {
	login, err := credentials(login, password)
	if err != nil {
		return nil, "", err
	}

	op, err := u.operators.GetByLogin(ctx, login)
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		return nil, "", domainErrors.ErrInvalidCredentials
	case err != nil:
		return nil, "", err
	}

	if err := u.hasher.Compare(op.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}
	return u.issue(op)
}

func (u *AuthUseCase) issue(op *model.Operator) (*model.Operator, string, error) {
	token, err := u.tokens.IssueToken(op.ID)
	if err != nil {
		return nil, "", err
	}
	return op, token, nil
}

// ParseToken extracts operator ID from provided token.
func (u *AuthUseCase) ParseToken(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches operator by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.Operator, error) {
	return u.operators.GetByID(ctx, id)
}
