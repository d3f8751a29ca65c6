package handler

import (
	"time"

	"github.com/nagarpalika/complaint-system/internal/core/domain"
	"github.com/nagarpalika/complaint-system/internal/core/ports"
)

func toSubmitInput(req SubmitComplaintRequest, idempotencyKey string) ports.SubmitComplaintInput {
	input := ports.SubmitComplaintInput{
		Name:           req.Name,
		Phone:          req.Phone,
		Email:          req.Email,
		Address:        req.Address,
		WardNumber:     req.WardNumber,
		ComplaintType:  req.ComplaintType,
		Title:          req.Title,
		Description:    req.Description,
		Priority:       req.Priority,
		IdempotencyKey: idempotencyKey,
	}
	if req.IncidentDate != nil {
		input.IncidentDate = *req.IncidentDate
	} else {
		input.IncidentDate = time.Now().UTC()
	}
	if req.Coordinates != nil {
		input.Coordinates = &ports.CoordinatesInput{Lat: req.Coordinates.Lat, Lng: req.Coordinates.Lng}
	}
	return input
}

func toUpdateStatusInput(id string, req UpdateStatusRequest, updatedBy string) ports.UpdateStatusInput {
	return ports.UpdateStatusInput{
		ID:              id,
		Status:          req.Status,
		AssignedTo:      req.AssignedTo,
		AssignedPhone:   req.AssignedPhone,
		AssignedEmail:   req.AssignedEmail,
		ResolutionNotes: req.ResolutionNotes,
		ActionDate:      req.ActionDate,
		UpdatedBy:       updatedBy,
	}
}

func toComplaintResponse(c *domain.Complaint) ComplaintResponse {
	return ComplaintResponse{
		ID:              c.ID,
		ComplaintNumber: c.ComplaintNumber,
		Name:            c.Submitter.Name,
		Phone:           c.Submitter.Phone,
		Email:           c.Submitter.Email,
		Address:         c.Submitter.Address,
		WardNumber:      c.WardNumber,
		Coordinates:     c.Coordinates,
		ComplaintType:   string(c.ComplaintType),
		Title:           c.Title,
		Description:     c.Description,
		Priority:        string(c.Priority),
		Status:          string(c.Status),
		AssignedTo:      c.AssignedTo,
		AssignedPhone:   c.AssignedPhone,
		AssignedEmail:   c.AssignedEmail,
		ResolutionNotes: c.ResolutionNotes,
		ActionDate:      c.ActionDate,
		IncidentDate:    c.IncidentDate,
		CreatedAt:       c.CreatedAt,
	}
}

func toListResponse(result *ports.ListComplaintsResult) ListComplaintsResponse {
	items := make([]ComplaintResponse, 0, len(result.Items))
	for _, c := range result.Items {
		items = append(items, toComplaintResponse(c))
	}
	return ListComplaintsResponse{
		Complaints: items,
		Pagination: PaginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	}
}
