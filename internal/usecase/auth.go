package usecase

import (
	"context"

	"github.com/google/uuid"

	"wanderbook/internal/domain/auth"
	"wanderbook/internal/domain/user"
	"wanderbook/internal/infra"
	"wanderbook/internal/pkg/errs"
	"wanderbook/internal/pkg/jwt"
	"wanderbook/internal/pkg/password"
	"wanderbook/internal/usecase/queries"
	"wanderbook/internal/usecase/shared"
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthenticatedUser struct {
	ID    uuid.UUID
	Email string
	Role  user.Role
}

type AuthUsecase struct {
	users queries.UserReadStore
	jwt   *jwt.Service
}

func NewAuthUsecase(users queries.UserReadStore, jwtService *jwt.Service) *AuthUsecase {
	return &AuthUsecase{users: users, jwt: jwtService}
}

// Login verifies credentials and issues a token pair. Unknown email and wrong
// password produce the same error so the response never confirms whether an
// account exists.
func (u *AuthUsecase) Login(ctx context.Context, creds auth.Credentials) (*TokenPair, *AuthenticatedUser, error) {
	record, err := u.users.FindAuthByEmail(ctx, creds.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, errs.Mark(err, shared.ErrInvalidCredentials)
		}
		return nil, nil, errs.Wrap(err, "failed to look up user")
	}

	if err := password.ComparePassword(record.PasswordHash, creds.Password().Value()); err != nil {
		return nil, nil, errs.Mark(err, shared.ErrInvalidCredentials)
	}

	role, err := user.NewRole(record.Role)
	if err != nil {
		return nil, nil, errs.Wrap(err, "stored role is invalid")
	}

	pair, err := u.issueTokens(record.ID, role)
	if err != nil {
		return nil, nil, err
	}

	return pair, &AuthenticatedUser{ID: record.ID, Email: record.Email, Role: role}, nil
}

// Refresh exchanges a valid refresh token for a fresh pair.
func (u *AuthUsecase) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrInvalidCredentials)
	}

	view, err := u.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, shared.ErrInvalidCredentials)
		}
		return nil, errs.Wrap(err, "failed to look up user")
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Wrap(err, "stored role is invalid")
	}

	return u.issueTokens(view.ID, role)
}

func (u *AuthUsecase) issueTokens(id uuid.UUID, role user.Role) (*TokenPair, error) {
	access, err := u.jwt.GenerateToken(id, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate access token")
	}
	refresh, err := u.jwt.GenerateRefreshToken(id, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate refresh token")
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
