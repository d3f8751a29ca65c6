package ports

import (
	"context"

	"github.com/nagarpalika/complaint-system/internal/core/domain"
)

// GenerateLocationQRInput carries the parameters for a location QR binding.
type GenerateLocationQRInput struct {
	Location    string
	WardNumber  int
	Coordinates *CoordinatesInput // optional
	CreatedBy   string            // admin username, for the audit record
}

// QRService produces QR payload URLs. Rendering the scannable image is the
// frontend's concern; the core only builds the encoded payload.
type QRService interface {
	// GenerateLocationQR builds (and persists) a submission-form URL with
	// location and ward pre-filled as query parameters.
	GenerateLocationQR(ctx context.Context, input GenerateLocationQRInput) (*domain.LocationQR, error)
	// ComplaintPayload returns the public tracking URL for one complaint.
	ComplaintPayload(ctx context.Context, id string) (string, error)
}
