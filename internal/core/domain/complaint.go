package domain

import (
	"errors"
	"time"
)

// ComplaintStatus represents the lifecycle state of a complaint.
type ComplaintStatus string

const (
	StatusSubmitted   ComplaintStatus = "Submitted"
	StatusUnderReview ComplaintStatus = "Under Review"
	StatusAccepted    ComplaintStatus = "Accepted"
	StatusInProgress  ComplaintStatus = "In Progress"
	StatusResolved    ComplaintStatus = "Resolved"
	StatusRejected    ComplaintStatus = "Rejected"
)

// Statuses lists every valid lifecycle state. Triage is deliberately
// non-linear: an admin may move a complaint to any of these at any time,
// including reopening a resolved one.
var Statuses = []ComplaintStatus{
	StatusSubmitted,
	StatusUnderReview,
	StatusAccepted,
	StatusInProgress,
	StatusResolved,
	StatusRejected,
}

// Valid reports whether s is one of the enumerated statuses.
func (s ComplaintStatus) Valid() bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// ComplaintType classifies the municipal issue being reported.
type ComplaintType string

const (
	TypeRoad            ComplaintType = "Road"
	TypeNala            ComplaintType = "Nala"
	TypeWaterSupply     ComplaintType = "Water Supply"
	TypeElectricity     ComplaintType = "Electricity"
	TypeWasteManagement ComplaintType = "Waste Management"
	TypePublicHealth    ComplaintType = "Public Health"
	TypeOther           ComplaintType = "Other"
)

// Types lists every valid complaint type.
var Types = []ComplaintType{
	TypeRoad,
	TypeNala,
	TypeWaterSupply,
	TypeElectricity,
	TypeWasteManagement,
	TypePublicHealth,
	TypeOther,
}

// Valid reports whether t is one of the enumerated complaint types.
func (t ComplaintType) Valid() bool {
	for _, v := range Types {
		if v == t {
			return true
		}
	}
	return false
}

// Priority indicates how urgently a complaint should be handled.
type Priority string

const (
	PriorityLow       Priority = "Low"
	PriorityMedium    Priority = "Medium"
	PriorityHigh      Priority = "High"
	PriorityEmergency Priority = "Emergency"
)

// Priorities lists every valid priority.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityEmergency}

// Valid reports whether p is one of the enumerated priorities.
func (p Priority) Valid() bool {
	for _, v := range Priorities {
		if v == p {
			return true
		}
	}
	return false
}

// Ward numbers are bounded by the municipality's administrative layout.
const (
	MinWardNumber = 1
	MaxWardNumber = 50
)

var ErrComplaintNotFound = errors.New("complaint not found")
var ErrDuplicateComplaintNumber = errors.New("duplicate complaint number")
var ErrInvalidStatus = errors.New("invalid complaint status")
var ErrInvalidComplaintType = errors.New("invalid complaint type")
var ErrInvalidPriority = errors.New("invalid priority")
var ErrInvalidWardNumber = errors.New("ward number out of range")
var ErrForbidden = errors.New("access forbidden")

// Coordinates represents a geographic point.
type Coordinates struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// Submitter identifies the citizen who filed a complaint.
type Submitter struct {
	Name    string `json:"name" bson:"name"`
	Phone   string `json:"phone" bson:"phone"`
	Email   string `json:"email,omitempty" bson:"email,omitempty"`
	Address string `json:"address" bson:"address"`
}

// Complaint is the core aggregate root. ComplaintNumber is assigned exactly
// once, at creation, and never changes.
type Complaint struct {
	ID              string          `json:"id"`
	ComplaintNumber string          `json:"complaint_number"`
	Submitter       Submitter       `json:"submitter"`
	WardNumber      int             `json:"ward_number"`
	Coordinates     *Coordinates    `json:"coordinates,omitempty"`
	ComplaintType   ComplaintType   `json:"complaint_type"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Priority        Priority        `json:"priority"`
	Status          ComplaintStatus `json:"status"`
	AssignedTo      string          `json:"assigned_to,omitempty"`
	AssignedPhone   string          `json:"assigned_phone,omitempty"`
	AssignedEmail   string          `json:"assigned_email,omitempty"`
	ResolutionNotes string          `json:"resolution_notes,omitempty"`
	ActionDate      *time.Time      `json:"action_date,omitempty"`
	IncidentDate    time.Time       `json:"incident_date"`
	CreatedAt       time.Time       `json:"created_at"`
}

// StatusChange records a single admin-authored status update for the audit
// trail. Audit writes are best-effort and never fail the update itself.
type StatusChange struct {
	ComplaintNumber string
	From            ComplaintStatus
	To              ComplaintStatus
	ChangedBy       string
	ChangedAt       time.Time
	Notes           string
}

// StatusCount is one (key, count) pair in a statistics grouping. Keys with
// zero complaints are omitted from groupings entirely.
type StatusCount struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// Statistics is the dashboard rollup over the full complaint set.
type Statistics struct {
	Total      int64         `json:"total"`
	ByStatus   []StatusCount `json:"by_status"`
	ByType     []StatusCount `json:"by_type"`
	ByPriority []StatusCount `json:"by_priority"`
}
