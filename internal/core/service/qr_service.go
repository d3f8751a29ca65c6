package service

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nagarpalika/complaint-system/internal/core/domain"
	"github.com/nagarpalika/complaint-system/internal/core/ports"
)

// QRService builds QR payload URLs against the public submission form.
// Rendering the scannable image is left to the frontend.
type QRService struct {
	repo       ports.QRRepository
	complaints ports.ComplaintRepository
	baseURL    string
	logger     zerolog.Logger
}

func NewQRService(repo ports.QRRepository, complaints ports.ComplaintRepository, baseURL string, logger zerolog.Logger) *QRService {
	return &QRService{
		repo:       repo,
		complaints: complaints,
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger,
	}
}

// GenerateLocationQR builds a submission-form URL with the location and
// ward pre-filled as query parameters. The payload is deterministic for the
// same inputs; an existing binding for the location+ward pair is reused.
// Persistence is audit-only: a failed save still returns the payload.
func (s *QRService) GenerateLocationQR(ctx context.Context, input ports.GenerateLocationQRInput) (*domain.LocationQR, error) {
	if strings.TrimSpace(input.Location) == "" {
		return nil, domain.ErrMissingLocation
	}
	if input.WardNumber == 0 {
		return nil, domain.ErrMissingWardNumber
	}
	if input.WardNumber < domain.MinWardNumber || input.WardNumber > domain.MaxWardNumber {
		return nil, domain.ErrInvalidWardNumber
	}

	if existing, err := s.repo.FindByLocationWard(ctx, input.Location, input.WardNumber); err == nil && existing != nil {
		return existing, nil
	}

	qr := &domain.LocationQR{
		ID:         uuid.NewString(),
		Location:   input.Location,
		WardNumber: input.WardNumber,
		Payload:    s.locationPayload(input),
		CreatedBy:  input.CreatedBy,
		CreatedAt:  time.Now().UTC(),
	}
	if input.Coordinates != nil {
		qr.Coordinates = &domain.Coordinates{Lat: input.Coordinates.Lat, Lng: input.Coordinates.Lng}
	}

	if err := s.repo.Save(ctx, qr); err != nil {
		s.logger.Warn().Err(err).Str("location", input.Location).Msg("failed to persist QR binding")
	}

	s.logger.Info().
		Str("location", input.Location).
		Int("ward", input.WardNumber).
		Msg("location QR generated")

	return qr, nil
}

// ComplaintPayload returns the public tracking URL for one complaint.
func (s *QRService) ComplaintPayload(ctx context.Context, id string) (string, error) {
	complaint, err := s.complaints.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	return s.baseURL + "/track/" + url.PathEscape(complaint.ComplaintNumber), nil
}

func (s *QRService) locationPayload(input ports.GenerateLocationQRInput) string {
	q := url.Values{}
	q.Set("location", input.Location)
	q.Set("ward", strconv.Itoa(input.WardNumber))
	if input.Coordinates != nil {
		q.Set("lat", strconv.FormatFloat(input.Coordinates.Lat, 'f', -1, 64))
		q.Set("lng", strconv.FormatFloat(input.Coordinates.Lng, 'f', -1, 64))
	}
	return s.baseURL + "/submit?" + q.Encode()
}
