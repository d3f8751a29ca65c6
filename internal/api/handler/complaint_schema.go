package handler

import (
	"time"

	"github.com/nagarpalika/complaint-system/internal/core/domain"
)

// successResponse is the envelope for every successful request.
type successResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// CoordinatesRequest is an optional geographic point on incoming requests.
type CoordinatesRequest struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `json:"lng" validate:"gte=-180,lte=180"`
}

// SubmitComplaintRequest is the public submission payload.
type SubmitComplaintRequest struct {
	Name          string              `json:"name" validate:"required"`
	Phone         string              `json:"phone" validate:"required"`
	Email         string              `json:"email" validate:"omitempty,email"`
	Address       string              `json:"address" validate:"required"`
	WardNumber    int                 `json:"ward_number" validate:"required,gte=1,lte=50"`
	Coordinates   *CoordinatesRequest `json:"coordinates"`
	ComplaintType string              `json:"complaint_type" validate:"required,oneof=Road Nala 'Water Supply' Electricity 'Waste Management' 'Public Health' Other"`
	Title         string              `json:"title" validate:"required"`
	Description   string              `json:"description" validate:"required"`
	Priority      string              `json:"priority" validate:"required,oneof=Low Medium High Emergency"`
	IncidentDate  *time.Time          `json:"incident_date"`
}

// SubmitComplaintResponse acknowledges a filed complaint.
type SubmitComplaintResponse struct {
	ComplaintNumber string    `json:"complaint_number"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// UpdateStatusRequest is the admin triage payload. Omitted fields are left
// untouched; explicit empty strings clear the stored value.
type UpdateStatusRequest struct {
	Status          string     `json:"status" validate:"required,oneof=Submitted 'Under Review' Accepted 'In Progress' Resolved Rejected"`
	AssignedTo      *string    `json:"assigned_to"`
	AssignedPhone   *string    `json:"assigned_phone"`
	AssignedEmail   *string    `json:"assigned_email"`
	ResolutionNotes *string    `json:"resolution_notes"`
	ActionDate      *time.Time `json:"action_date"`
}

// ComplaintResponse is the full complaint view returned to admins and to the
// public tracking endpoint.
type ComplaintResponse struct {
	ID              string              `json:"id"`
	ComplaintNumber string              `json:"complaint_number"`
	Name            string              `json:"name"`
	Phone           string              `json:"phone"`
	Email           string              `json:"email,omitempty"`
	Address         string              `json:"address"`
	WardNumber      int                 `json:"ward_number"`
	Coordinates     *domain.Coordinates `json:"coordinates,omitempty"`
	ComplaintType   string              `json:"complaint_type"`
	Title           string              `json:"title"`
	Description     string              `json:"description"`
	Priority        string              `json:"priority"`
	Status          string              `json:"status"`
	AssignedTo      string              `json:"assigned_to,omitempty"`
	AssignedPhone   string              `json:"assigned_phone,omitempty"`
	AssignedEmail   string              `json:"assigned_email,omitempty"`
	ResolutionNotes string              `json:"resolution_notes,omitempty"`
	ActionDate      *time.Time          `json:"action_date,omitempty"`
	IncidentDate    time.Time           `json:"incident_date"`
	CreatedAt       time.Time           `json:"created_at"`
}

// PaginationResponse describes the page window of a list result.
type PaginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// ListComplaintsResponse is the admin list view.
type ListComplaintsResponse struct {
	Complaints []ComplaintResponse `json:"complaints"`
	Pagination PaginationResponse  `json:"pagination"`
}

// GenerateLocationQRRequest asks for a pre-filled submission URL bound to a
// physical spot.
type GenerateLocationQRRequest struct {
	Location    string              `json:"location" validate:"required"`
	WardNumber  int                 `json:"ward_number" validate:"required,gte=1,lte=50"`
	Coordinates *CoordinatesRequest `json:"coordinates"`
}

// LocationQRResponse returns the generated (or reused) QR binding.
type LocationQRResponse struct {
	ID         string    `json:"id"`
	Location   string    `json:"location"`
	WardNumber int       `json:"ward_number"`
	Payload    string    `json:"payload"`
	CreatedAt  time.Time `json:"created_at"`
}

// ComplaintQRResponse returns the tracking URL for one complaint.
type ComplaintQRResponse struct {
	Payload string `json:"payload"`
}
