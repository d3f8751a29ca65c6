package ports

import (
	"context"
	"time"

	"github.com/nagarpalika/complaint-system/internal/core/domain"
)

// AuthRepository defines the interface for admin account persistence.
type AuthRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}
