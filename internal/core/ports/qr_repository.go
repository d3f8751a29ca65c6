package ports

import (
	"context"

	"github.com/nagarpalika/complaint-system/internal/core/domain"
)

// QRRepository persists location QR bindings for audit and reuse.
type QRRepository interface {
	Save(ctx context.Context, qr *domain.LocationQR) error
	// FindByLocationWard returns the existing binding for a location+ward
	// pair so repeated requests reuse it instead of minting a new id.
	FindByLocationWard(ctx context.Context, location string, wardNumber int) (*domain.LocationQR, error)
}
