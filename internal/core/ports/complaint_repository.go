package ports

import (
	"context"
	"time"

	"github.com/nagarpalika/complaint-system/internal/core/domain"
)

// ListComplaintsFilter carries all query parameters for listing complaints.
// Zero values impose no constraint; criteria combine with logical AND.
type ListComplaintsFilter struct {
	Status        string // optional: exact match on status
	ComplaintType string // optional: exact match on complaint type
	WardNumber    int    // optional: exact match, 0 = no filter
	Priority      string // optional: exact match on priority
	Page          int    // 1-based
	Limit         int    // rows per page (capped at 100 by the service)
}

// ComplaintPatch describes a partial update applied by the status workflow.
// Nil pointer fields are left untouched; empty-string pointers clear the
// stored value (assignment fields may be set or cleared at any time).
type ComplaintPatch struct {
	Status          domain.ComplaintStatus
	AssignedTo      *string
	AssignedPhone   *string
	AssignedEmail   *string
	ResolutionNotes *string
	ActionDate      *time.Time
}

// ComplaintRepository defines persistence operations for complaints.
type ComplaintRepository interface {
	// Create inserts a new complaint. Returns
	// domain.ErrDuplicateComplaintNumber when the unique index on
	// complaint_number rejects the candidate.
	Create(ctx context.Context, c *domain.Complaint) (*domain.Complaint, error)
	FindByID(ctx context.Context, id string) (*domain.Complaint, error)
	FindByNumber(ctx context.Context, complaintNumber string) (*domain.Complaint, error)
	// List returns one page of complaints matching filter, newest first,
	// plus the total matching count.
	List(ctx context.Context, filter ListComplaintsFilter) ([]*domain.Complaint, int64, error)
	// UpdateStatus applies patch to a single complaint and returns the
	// updated document.
	UpdateStatus(ctx context.Context, id string, patch ComplaintPatch) (*domain.Complaint, error)
	// Stats recomputes the dashboard rollup over the full complaint set.
	// Groupings contain only keys that currently have complaints.
	Stats(ctx context.Context) (*domain.Statistics, error)
	// InsertStatusChange appends an entry to the status audit trail.
	InsertStatusChange(ctx context.Context, change *domain.StatusChange) error
}
