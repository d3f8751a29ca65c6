package ports

import (
	"context"
	"time"

	"github.com/nagarpalika/complaint-system/internal/core/domain"
)

// CoordinatesInput holds optional geographic coordinates.
type CoordinatesInput struct {
	Lat float64
	Lng float64
}

// SubmitComplaintInput carries all data needed to file a new complaint.
type SubmitComplaintInput struct {
	Name          string
	Phone         string
	Email         string
	Address       string
	WardNumber    int
	Coordinates   *CoordinatesInput // optional
	ComplaintType string
	Title         string
	Description   string
	Priority      string
	IncidentDate  time.Time
	// IdempotencyKey, when non-empty, makes the submission replay-safe:
	// a repeated key returns the originally created complaint.
	IdempotencyKey string
}

// SubmitResult is returned by the service after filing a complaint.
type SubmitResult struct {
	ComplaintNumber string
	Status          string
	CreatedAt       time.Time
	// AlreadyExisted is true when the idempotency key matched a previous
	// submission.
	AlreadyExisted bool
}

// UpdateStatusInput carries an admin triage action. Nil pointer fields are
// left unchanged; empty-string pointers clear the stored value.
type UpdateStatusInput struct {
	ID              string
	Status          string
	AssignedTo      *string
	AssignedPhone   *string
	AssignedEmail   *string
	ResolutionNotes *string
	ActionDate      *time.Time
	// UpdatedBy is the admin username recorded in the audit trail.
	UpdatedBy string
}

// ListComplaintsInput carries all parameters for the list endpoint.
type ListComplaintsInput struct {
	Status        string
	ComplaintType string
	WardNumber    int
	Priority      string
	Page          int
	Limit         int
}

// ListComplaintsResult is returned by List.
type ListComplaintsResult struct {
	Items      []*domain.Complaint
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ComplaintService defines use-case operations for complaints.
type ComplaintService interface {
	Submit(ctx context.Context, input SubmitComplaintInput) (*SubmitResult, error)
	GetByID(ctx context.Context, id string) (*domain.Complaint, error)
	// Track retrieves the citizen-facing view by complaint number.
	Track(ctx context.Context, complaintNumber string) (*domain.Complaint, error)
	List(ctx context.Context, input ListComplaintsInput) (*ListComplaintsResult, error)
	UpdateStatus(ctx context.Context, input UpdateStatusInput) (*domain.Complaint, error)
	Stats(ctx context.Context) (*domain.Statistics, error)
}
