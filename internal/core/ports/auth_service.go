package ports

import (
	"context"

	"github.com/nagarpalika/complaint-system/internal/core/domain"
)

// RegisterInput carries an admin registration request. RegistrationSecret
// must match the configured shared secret.
type RegisterInput struct {
	Username           string
	Email              string
	Password           string
	RegistrationSecret string
}

// AuthService implements admin registration and login.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login authenticates an active admin account and returns a signed
	// bearer token alongside the user.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
