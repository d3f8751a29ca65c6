package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/nagarpalika/complaint-system/internal/core/domain"
	"github.com/nagarpalika/complaint-system/internal/core/ports"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// IdempotencyStore abstracts the replay-protection store (Redis). Keys map
// to the complaint number created by the first submission carrying them.
type IdempotencyStore interface {
	Lookup(ctx context.Context, key string) (string, bool, error)
	Remember(ctx context.Context, key, complaintNumber string) error
}

// ComplaintService implements the complaint lifecycle use cases.
type ComplaintService struct {
	repo   ports.ComplaintRepository
	idem   IdempotencyStore
	logger zerolog.Logger
}

func NewComplaintService(repo ports.ComplaintRepository, idem IdempotencyStore, logger zerolog.Logger) *ComplaintService {
	return &ComplaintService{repo: repo, idem: idem, logger: logger}
}

// Submit files a new complaint. The complaint number is generated here and
// never changes afterwards; on a unique-index collision the service retries
// once with a fresh candidate before surfacing the failure. When an
// idempotency key is provided and already seen, the original complaint is
// returned without side effects.
func (s *ComplaintService) Submit(ctx context.Context, input ports.SubmitComplaintInput) (*ports.SubmitResult, error) {
	if err := validateSubmission(input); err != nil {
		return nil, err
	}

	if input.IdempotencyKey != "" {
		number, found, err := s.idem.Lookup(ctx, input.IdempotencyKey)
		if err != nil {
			s.logger.Warn().Err(err).Msg("idempotency lookup failed, submitting anyway")
		} else if found {
			existing, err := s.repo.FindByNumber(ctx, number)
			if err == nil && existing != nil {
				s.logger.Info().
					Str("idempotency_key", input.IdempotencyKey).
					Str("complaint_number", existing.ComplaintNumber).
					Msg("idempotent replay")
				return &ports.SubmitResult{
					ComplaintNumber: existing.ComplaintNumber,
					Status:          string(existing.Status),
					CreatedAt:       existing.CreatedAt,
					AlreadyExisted:  true,
				}, nil
			}
		}
	}

	now := time.Now().UTC()
	incident := input.IncidentDate
	if incident.IsZero() {
		incident = now
	}

	complaint := &domain.Complaint{
		ComplaintNumber: generateComplaintNumber(now),
		Submitter: domain.Submitter{
			Name:    input.Name,
			Phone:   input.Phone,
			Email:   input.Email,
			Address: input.Address,
		},
		WardNumber:    input.WardNumber,
		ComplaintType: domain.ComplaintType(input.ComplaintType),
		Title:         input.Title,
		Description:   input.Description,
		Priority:      domain.Priority(input.Priority),
		Status:        domain.StatusSubmitted,
		IncidentDate:  incident,
		CreatedAt:     now,
	}
	if input.Coordinates != nil {
		complaint.Coordinates = &domain.Coordinates{Lat: input.Coordinates.Lat, Lng: input.Coordinates.Lng}
	}

	created, err := s.repo.Create(ctx, complaint)
	if errors.Is(err, domain.ErrDuplicateComplaintNumber) {
		// Collision on the unique index: regenerate once and retry rather
		// than failing the citizen's submission.
		s.logger.Warn().Str("complaint_number", complaint.ComplaintNumber).Msg("complaint number collision, regenerating")
		complaint.ComplaintNumber = generateComplaintNumber(now)
		created, err = s.repo.Create(ctx, complaint)
	}
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create complaint")
		return nil, err
	}

	if input.IdempotencyKey != "" {
		if err := s.idem.Remember(ctx, input.IdempotencyKey, created.ComplaintNumber); err != nil {
			s.logger.Warn().Err(err).Str("idempotency_key", input.IdempotencyKey).Msg("failed to record idempotency key")
		}
	}

	s.logger.Info().
		Str("complaint_number", created.ComplaintNumber).
		Str("type", input.ComplaintType).
		Str("priority", input.Priority).
		Int("ward", input.WardNumber).
		Msg("complaint submitted")

	return &ports.SubmitResult{
		ComplaintNumber: created.ComplaintNumber,
		Status:          string(created.Status),
		CreatedAt:       created.CreatedAt,
	}, nil
}

// GetByID returns the full complaint for the admin detail view.
func (s *ComplaintService) GetByID(ctx context.Context, id string) (*domain.Complaint, error) {
	return s.repo.FindByID(ctx, id)
}

// Track returns the citizen-facing view by complaint number.
func (s *ComplaintService) Track(ctx context.Context, complaintNumber string) (*domain.Complaint, error) {
	return s.repo.FindByNumber(ctx, complaintNumber)
}

// List returns one page of complaints. Filters combine with AND; absent
// criteria impose no constraint. Page is clamped to 1 and the page size is
// capped at 100; a page past the end yields an empty page with true totals.
func (s *ComplaintService) List(ctx context.Context, input ports.ListComplaintsInput) (*ports.ListComplaintsResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	items, total, err := s.repo.List(ctx, ports.ListComplaintsFilter{
		Status:        input.Status,
		ComplaintType: input.ComplaintType,
		WardNumber:    input.WardNumber,
		Priority:      input.Priority,
		Page:          page,
		Limit:         limit,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list complaints")
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &ports.ListComplaintsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// UpdateStatus applies an admin triage action. Any of the six enumerated
// statuses is accepted from any current state; the action date is stamped
// when the complaint first moves away from Submitted. Assignment fields and
// resolution notes travel independently of the status value.
func (s *ComplaintService) UpdateStatus(ctx context.Context, input ports.UpdateStatusInput) (*domain.Complaint, error) {
	status := domain.ComplaintStatus(input.Status)
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, input.Status)
	}

	existing, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	patch := ports.ComplaintPatch{
		Status:          status,
		AssignedTo:      input.AssignedTo,
		AssignedPhone:   input.AssignedPhone,
		AssignedEmail:   input.AssignedEmail,
		ResolutionNotes: input.ResolutionNotes,
		ActionDate:      input.ActionDate,
	}
	if patch.ActionDate == nil && existing.Status == domain.StatusSubmitted && status != domain.StatusSubmitted {
		now := time.Now().UTC()
		patch.ActionDate = &now
	}

	updated, err := s.repo.UpdateStatus(ctx, input.ID, patch)
	if err != nil {
		return nil, err
	}

	change := &domain.StatusChange{
		ComplaintNumber: updated.ComplaintNumber,
		From:            existing.Status,
		To:              status,
		ChangedBy:       input.UpdatedBy,
		ChangedAt:       time.Now().UTC(),
	}
	if input.ResolutionNotes != nil {
		change.Notes = *input.ResolutionNotes
	}
	if err := s.repo.InsertStatusChange(ctx, change); err != nil {
		s.logger.Warn().Err(err).Str("complaint_number", updated.ComplaintNumber).Msg("failed to record status change")
	}

	s.logger.Info().
		Str("complaint_number", updated.ComplaintNumber).
		Str("from", string(existing.Status)).
		Str("to", input.Status).
		Str("by", input.UpdatedBy).
		Msg("status updated")

	return updated, nil
}

// Stats recomputes the dashboard rollup over the full complaint set. No
// caching: the aggregation runs on every request.
func (s *ComplaintService) Stats(ctx context.Context) (*domain.Statistics, error) {
	return s.repo.Stats(ctx)
}

func validateSubmission(input ports.SubmitComplaintInput) error {
	if !domain.ComplaintType(input.ComplaintType).Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidComplaintType, input.ComplaintType)
	}
	if !domain.Priority(input.Priority).Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidPriority, input.Priority)
	}
	if input.WardNumber < domain.MinWardNumber || input.WardNumber > domain.MaxWardNumber {
		return fmt.Errorf("%w: %d", domain.ErrInvalidWardNumber, input.WardNumber)
	}
	return nil
}

// generateComplaintNumber returns a citizen-facing reference in the format
// CMP-YYYYMMDD-XXXXXXXX. Uniqueness is enforced by the storage index; the
// random suffix makes collisions vanishingly rare.
func generateComplaintNumber(now time.Time) string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("CMP-%s-%08X", now.Format("20060102"), time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("CMP-%s-%08X", now.Format("20060102"), b)
}
