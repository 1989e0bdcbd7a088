package ports

import (
	"context"

	"github.com/LuisM11/TaskMaster/internal/core/domain"
)

type UserRepository interface {
	CreateUser(ctx context.Context, username, passwordHash string) (domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)
}

// TokenIssuer mints a bearer token for an authenticated user.
type TokenIssuer interface {
	Issue(user domain.User) (string, error)
}

type AuthService interface {
	// Signup creates the account and immediately issues a token for it.
	Signup(ctx context.Context, username, password string) (domain.User, string, error)
	Login(ctx context.Context, username, password string) (domain.User, string, error)
}
