package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/nagarpalika/complaint-system/internal/core/domain"
	"github.com/nagarpalika/complaint-system/internal/core/ports"
)

type stubComplaintService struct {
	submitInput  *ports.SubmitComplaintInput
	submitResult *ports.SubmitResult
	listInput    *ports.ListComplaintsInput
	listResult   *ports.ListComplaintsResult
	updateInput  *ports.UpdateStatusInput
	complaint    *domain.Complaint
	stats        *domain.Statistics
	err          error
}

func (s *stubComplaintService) Submit(_ context.Context, input ports.SubmitComplaintInput) (*ports.SubmitResult, error) {
	s.submitInput = &input
	return s.submitResult, s.err
}

func (s *stubComplaintService) GetByID(context.Context, string) (*domain.Complaint, error) {
	return s.complaint, s.err
}

func (s *stubComplaintService) Track(context.Context, string) (*domain.Complaint, error) {
	return s.complaint, s.err
}

func (s *stubComplaintService) List(_ context.Context, input ports.ListComplaintsInput) (*ports.ListComplaintsResult, error) {
	s.listInput = &input
	return s.listResult, s.err
}

func (s *stubComplaintService) UpdateStatus(_ context.Context, input ports.UpdateStatusInput) (*domain.Complaint, error) {
	s.updateInput = &input
	return s.complaint, s.err
}

func (s *stubComplaintService) Stats(context.Context) (*domain.Statistics, error) {
	return s.stats, s.err
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewRequestValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

const validSubmitBody = `{
	"name": "Ram Bahadur",
	"phone": "9841000000",
	"address": "Ward 3, Main Road",
	"ward_number": 3,
	"complaint_type": "Road",
	"title": "Pothole near the school",
	"description": "Large pothole causing accidents",
	"priority": "High"
}`

func TestSubmitHandlerReturnsEnvelope(t *testing.T) {
	svc := &stubComplaintService{
		submitResult: &ports.SubmitResult{
			ComplaintNumber: "CMP-20260831-0A1B2C3D",
			Status:          "Submitted",
			CreatedAt:       time.Now().UTC(),
		},
	}
	h := NewComplaintHandler(svc, zerolog.Nop())

	c, rec := newTestContext(t, http.MethodPost, "/api/complaints/submit", validSubmitBody)
	if err := h.Submit(c); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			ComplaintNumber string `json:"complaint_number"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !resp.Success {
		t.Error("success = false")
	}
	if resp.Data.ComplaintNumber != "CMP-20260831-0A1B2C3D" {
		t.Errorf("complaint_number = %q", resp.Data.ComplaintNumber)
	}
	if svc.submitInput.IdempotencyKey != "" {
		t.Errorf("plain submit carried idempotency key %q", svc.submitInput.IdempotencyKey)
	}
}

func TestSubmitHandlerRejectsInvalidBody(t *testing.T) {
	h := NewComplaintHandler(&stubComplaintService{}, zerolog.Nop())

	tests := []struct {
		name string
		body string
	}{
		{"missing required fields", `{"name": "Ram"}`},
		{"ward out of range", strings.Replace(validSubmitBody, `"ward_number": 3`, `"ward_number": 99`, 1)},
		{"unknown complaint type", strings.Replace(validSubmitBody, `"complaint_type": "Road"`, `"complaint_type": "Plumbing"`, 1)},
		{"unknown priority", strings.Replace(validSubmitBody, `"priority": "High"`, `"priority": "Critical"`, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(t, http.MethodPost, "/api/complaints/submit", tt.body)
			if err := h.Submit(c); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestSubmitViaQRReadsIdempotencyHeader(t *testing.T) {
	svc := &stubComplaintService{
		submitResult: &ports.SubmitResult{ComplaintNumber: "CMP-20260831-11111111", Status: "Submitted"},
	}
	h := NewComplaintHandler(svc, zerolog.Nop())

	c, _ := newTestContext(t, http.MethodPost, "/api/complaints/qr/submit", validSubmitBody)
	c.Request().Header.Set("Idempotency-Key", "scan-abc123")
	if err := h.SubmitViaQR(c); err != nil {
		t.Fatalf("SubmitViaQR() error = %v", err)
	}
	if svc.submitInput.IdempotencyKey != "scan-abc123" {
		t.Errorf("idempotency key = %q, want scan-abc123", svc.submitInput.IdempotencyKey)
	}
}

func TestSubmitViaQRReplayReturnsOK(t *testing.T) {
	svc := &stubComplaintService{
		submitResult: &ports.SubmitResult{
			ComplaintNumber: "CMP-20260831-11111111",
			Status:          "Submitted",
			AlreadyExisted:  true,
		},
	}
	h := NewComplaintHandler(svc, zerolog.Nop())

	c, rec := newTestContext(t, http.MethodPost, "/api/complaints/qr/submit", validSubmitBody)
	if err := h.SubmitViaQR(c); err != nil {
		t.Fatalf("SubmitViaQR() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("replayed submission status = %d, want 200", rec.Code)
	}
}

func TestListHandlerParsesQueryParams(t *testing.T) {
	svc := &stubComplaintService{
		listResult: &ports.ListComplaintsResult{Page: 2, Limit: 5, Total: 12, TotalPages: 3},
	}
	h := NewComplaintHandler(svc, zerolog.Nop())

	c, rec := newTestContext(t, http.MethodGet, "/api/complaints?status=Submitted&ward_number=3&page=2&limit=5", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if svc.listInput.Status != "Submitted" || svc.listInput.WardNumber != 3 {
		t.Errorf("filters = %+v", svc.listInput)
	}
	if svc.listInput.Page != 2 || svc.listInput.Limit != 5 {
		t.Errorf("pagination = page %d limit %d", svc.listInput.Page, svc.listInput.Limit)
	}
}

func TestListHandlerRejectsBadIntegers(t *testing.T) {
	h := NewComplaintHandler(&stubComplaintService{}, zerolog.Nop())

	c, _ := newTestContext(t, http.MethodGet, "/api/complaints?ward_number=three", "")
	err := h.List(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("error = %v, want 400", err)
	}
}

func TestUpdateStatusHandlerRecordsActor(t *testing.T) {
	svc := &stubComplaintService{
		complaint: &domain.Complaint{ID: "id-1", ComplaintNumber: "CMP-20260831-22222222", Status: domain.StatusAccepted},
	}
	h := NewComplaintHandler(svc, zerolog.Nop())

	c, rec := newTestContext(t, http.MethodPatch, "/api/complaints/id-1/status", `{"status": "Accepted"}`)
	c.SetParamNames("id")
	c.SetParamValues("id-1")
	c.Set("username", "admin1")

	if err := h.UpdateStatus(c); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if svc.updateInput.UpdatedBy != "admin1" {
		t.Errorf("updated_by = %q, want admin1", svc.updateInput.UpdatedBy)
	}
	if svc.updateInput.ID != "id-1" {
		t.Errorf("id = %q, want id-1", svc.updateInput.ID)
	}
}

func TestUpdateStatusHandlerRejectsUnknownStatus(t *testing.T) {
	h := NewComplaintHandler(&stubComplaintService{}, zerolog.Nop())

	c, _ := newTestContext(t, http.MethodPatch, "/api/complaints/id-1/status", `{"status": "Closed"}`)
	c.SetParamNames("id")
	c.SetParamValues("id-1")
	c.Set("username", "admin1")

	if err := h.UpdateStatus(c); err == nil {
		t.Error("expected a validation error for unknown status")
	}
}

func TestUpdateStatusHandlerRequiresAuthenticatedUser(t *testing.T) {
	h := NewComplaintHandler(&stubComplaintService{}, zerolog.Nop())

	c, _ := newTestContext(t, http.MethodPatch, "/api/complaints/id-1/status", `{"status": "Accepted"}`)
	err := h.UpdateStatus(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("error = %v, want 401", err)
	}
}

func TestTrackHandlerReturnsComplaint(t *testing.T) {
	svc := &stubComplaintService{
		complaint: &domain.Complaint{
			ComplaintNumber: "CMP-20260831-33333333",
			Status:          domain.StatusInProgress,
			Submitter:       domain.Submitter{Name: "Sita"},
		},
	}
	h := NewComplaintHandler(svc, zerolog.Nop())

	c, rec := newTestContext(t, http.MethodGet, "/api/complaints/track/CMP-20260831-33333333", "")
	c.SetParamNames("complaintNumber")
	c.SetParamValues("CMP-20260831-33333333")

	if err := h.Track(c); err != nil {
		t.Fatalf("Track() error = %v", err)
	}
	var resp struct {
		Data ComplaintResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Data.Status != "In Progress" {
		t.Errorf("status = %q, want In Progress", resp.Data.Status)
	}
	if resp.Data.Name != "Sita" {
		t.Errorf("name = %q, want Sita", resp.Data.Name)
	}
}

func TestTrackHandlerPropagatesNotFound(t *testing.T) {
	svc := &stubComplaintService{err: domain.ErrComplaintNotFound}
	h := NewComplaintHandler(svc, zerolog.Nop())

	c, _ := newTestContext(t, http.MethodGet, "/api/complaints/track/CMP-X", "")
	c.SetParamNames("complaintNumber")
	c.SetParamValues("CMP-X")

	if err := h.Track(c); err != domain.ErrComplaintNotFound {
		t.Fatalf("error = %v, want ErrComplaintNotFound", err)
	}
}
