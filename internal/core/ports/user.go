package ports

import (
	"context"

	"taskboard/internal/core/domain"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user domain.NewUser) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindByID(ctx context.Context, userID uint64) (domain.User, error)
}

// TokenRepository keeps one opaque token per user.
type TokenRepository interface {
	GetOrCreateToken(ctx context.Context, userID uint64) (string, error)
	FindUserByToken(ctx context.Context, token string) (domain.User, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) bool
}

type UserDirectory interface {
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}

// Authenticator resolves a bearer token to its user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (domain.User, error)
}

type AuthService interface {
	Authenticator
	Register(ctx context.Context, input domain.RegisterUserInput) (domain.User, string, error)
	Login(ctx context.Context, credentials domain.Credentials) (string, error)
}
