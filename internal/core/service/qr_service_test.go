package service

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/rs/zerolog"

	"github.com/nagarpalika/complaint-system/internal/core/domain"
	"github.com/nagarpalika/complaint-system/internal/core/ports"
)

type stubQRRepo struct {
	saved   []*domain.LocationQR
	saveErr error
}

func (r *stubQRRepo) Save(_ context.Context, qr *domain.LocationQR) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = append(r.saved, qr)
	return nil
}

func (r *stubQRRepo) FindByLocationWard(_ context.Context, location string, ward int) (*domain.LocationQR, error) {
	for _, qr := range r.saved {
		if qr.Location == location && qr.WardNumber == ward {
			return qr, nil
		}
	}
	return nil, domain.ErrQRNotFound
}

const testFrontendURL = "https://complaints.example.gov.np"

func newTestQRService(qrRepo *stubQRRepo, complaints *stubComplaintRepo) *QRService {
	return NewQRService(qrRepo, complaints, testFrontendURL, zerolog.Nop())
}

func TestGenerateLocationQRPayload(t *testing.T) {
	svc := newTestQRService(&stubQRRepo{}, &stubComplaintRepo{})

	qr, err := svc.GenerateLocationQR(context.Background(), ports.GenerateLocationQRInput{
		Location:   "Thamel Chowk",
		WardNumber: 1,
		CreatedBy:  "admin1",
	})
	if err != nil {
		t.Fatalf("GenerateLocationQR() error = %v", err)
	}

	parsed, err := url.Parse(qr.Payload)
	if err != nil {
		t.Fatalf("payload %q is not a valid URL: %v", qr.Payload, err)
	}
	if parsed.Path != "/submit" {
		t.Errorf("payload path = %q, want /submit", parsed.Path)
	}
	q := parsed.Query()
	if q.Get("location") != "Thamel Chowk" {
		t.Errorf("location param = %q, want %q (must survive URL encoding)", q.Get("location"), "Thamel Chowk")
	}
	if q.Get("ward") != "1" {
		t.Errorf("ward param = %q, want 1", q.Get("ward"))
	}
	if qr.ID == "" {
		t.Error("binding has no id")
	}
}

func TestGenerateLocationQRWithCoordinates(t *testing.T) {
	svc := newTestQRService(&stubQRRepo{}, &stubComplaintRepo{})

	qr, err := svc.GenerateLocationQR(context.Background(), ports.GenerateLocationQRInput{
		Location:    "City Hall",
		WardNumber:  5,
		Coordinates: &ports.CoordinatesInput{Lat: 27.7172, Lng: 85.324},
	})
	if err != nil {
		t.Fatalf("GenerateLocationQR() error = %v", err)
	}

	q, _ := url.Parse(qr.Payload)
	if q.Query().Get("lat") != "27.7172" || q.Query().Get("lng") != "85.324" {
		t.Errorf("coordinate params = lat=%q lng=%q", q.Query().Get("lat"), q.Query().Get("lng"))
	}
}

func TestGenerateLocationQRValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   ports.GenerateLocationQRInput
		wantErr error
	}{
		{"missing location", ports.GenerateLocationQRInput{WardNumber: 3}, domain.ErrMissingLocation},
		{"blank location", ports.GenerateLocationQRInput{Location: "   ", WardNumber: 3}, domain.ErrMissingLocation},
		{"missing ward", ports.GenerateLocationQRInput{Location: "Main Gate"}, domain.ErrMissingWardNumber},
		{"ward out of range", ports.GenerateLocationQRInput{Location: "Main Gate", WardNumber: 99}, domain.ErrInvalidWardNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestQRService(&stubQRRepo{}, &stubComplaintRepo{})
			if _, err := svc.GenerateLocationQR(context.Background(), tt.input); !errors.Is(err, tt.wantErr) {
				t.Errorf("GenerateLocationQR() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGenerateLocationQRReusesExistingBinding(t *testing.T) {
	repo := &stubQRRepo{}
	svc := newTestQRService(repo, &stubComplaintRepo{})

	input := ports.GenerateLocationQRInput{Location: "Bus Park", WardNumber: 9}
	first, err := svc.GenerateLocationQR(context.Background(), input)
	if err != nil {
		t.Fatalf("GenerateLocationQR() error = %v", err)
	}
	second, err := svc.GenerateLocationQR(context.Background(), input)
	if err != nil {
		t.Fatalf("GenerateLocationQR() error = %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("repeated request minted a new binding: %q vs %q", second.ID, first.ID)
	}
	if len(repo.saved) != 1 {
		t.Errorf("stored %d bindings, want 1", len(repo.saved))
	}
}

func TestGenerateLocationQRSurvivesSaveFailure(t *testing.T) {
	repo := &stubQRRepo{saveErr: errors.New("mongo down")}
	svc := newTestQRService(repo, &stubComplaintRepo{})

	qr, err := svc.GenerateLocationQR(context.Background(), ports.GenerateLocationQRInput{
		Location:   "Hospital Gate",
		WardNumber: 2,
	})
	if err != nil {
		t.Fatalf("GenerateLocationQR() error = %v, payload must survive a failed save", err)
	}
	if qr.Payload == "" {
		t.Error("empty payload despite successful generation")
	}
}

func TestComplaintPayload(t *testing.T) {
	complaints := &stubComplaintRepo{}
	svc := newTestQRService(&stubQRRepo{}, complaints)

	complaints.complaints = append(complaints.complaints, &domain.Complaint{
		ID:              "id-1",
		ComplaintNumber: "CMP-20260831-0A1B2C3D",
	})

	payload, err := svc.ComplaintPayload(context.Background(), "id-1")
	if err != nil {
		t.Fatalf("ComplaintPayload() error = %v", err)
	}
	want := testFrontendURL + "/track/CMP-20260831-0A1B2C3D"
	if payload != want {
		t.Errorf("payload = %q, want %q", payload, want)
	}

	if _, err := svc.ComplaintPayload(context.Background(), "missing"); !errors.Is(err, domain.ErrComplaintNotFound) {
		t.Errorf("ComplaintPayload() unknown id error = %v, want ErrComplaintNotFound", err)
	}
}
