package domain

import (
	"errors"
	"time"
)

var ErrMissingLocation = errors.New("location is required")
var ErrMissingWardNumber = errors.New("ward number is required")
var ErrQRNotFound = errors.New("location QR not found")

// LocationQR binds a physical location and ward to a generated submission
// URL. It is not tied to any complaint; many complaints may originate from
// one binding. The payload is reconstructible from the inputs, so
// persistence is for audit and reuse only.
type LocationQR struct {
	ID          string       `json:"id"`
	Location    string       `json:"location"`
	WardNumber  int          `json:"ward_number"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Payload     string       `json:"payload"`
	CreatedBy   string       `json:"created_by,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}
