package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/nagarpalika/complaint-system/internal/api/metrics"
	"github.com/nagarpalika/complaint-system/internal/core/domain"
	"github.com/nagarpalika/complaint-system/internal/core/ports"
)

// QRHandler exposes QR payload generation.
type QRHandler struct {
	service ports.QRService
	logger  zerolog.Logger
}

// NewQRHandler creates a QRHandler.
func NewQRHandler(service ports.QRService, logger zerolog.Logger) *QRHandler {
	return &QRHandler{service: service, logger: logger}
}

// GenerateLocation godoc
// @Summary      Generate a location QR payload
// @Description  Builds a submission-form URL with location and ward pre-filled; repeated requests for the same spot reuse the stored binding
// @Tags         qr
// @Accept       json
// @Produce      json
// @Param        location  body      GenerateLocationQRRequest  true  "Location binding"
// @Success      201       {object}  successResponse{data=LocationQRResponse}
// @Failure      400       {object}  errorResponse
// @Failure      422       {object}  errorResponse
// @Security     BearerAuth
// @Router       /api/complaints/qr/generate-location [post]
func (h *QRHandler) GenerateLocation(c echo.Context) error {
	username, err := adminUsername(c)
	if err != nil {
		return err
	}

	var req GenerateLocationQRRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := ports.GenerateLocationQRInput{
		Location:   req.Location,
		WardNumber: req.WardNumber,
		CreatedBy:  username,
	}
	if req.Coordinates != nil {
		input.Coordinates = &ports.CoordinatesInput{Lat: req.Coordinates.Lat, Lng: req.Coordinates.Lng}
	}

	qr, err := h.service.GenerateLocationQR(c.Request().Context(), input)
	if err != nil {
		return err
	}
	metrics.QRPayloadsGeneratedTotal.Inc()

	return c.JSON(http.StatusCreated, successResponse{
		Success: true,
		Message: "location QR generated",
		Data:    toLocationQRResponse(qr),
	})
}

// ComplaintQR godoc
// @Summary      Get a complaint's tracking QR payload
// @Tags         qr
// @Produce      json
// @Param        id   path      string  true  "Complaint ID"
// @Success      200  {object}  successResponse{data=ComplaintQRResponse}
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /api/complaints/{id}/qr [get]
func (h *QRHandler) ComplaintQR(c echo.Context) error {
	payload, err := h.service.ComplaintPayload(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true, Data: ComplaintQRResponse{Payload: payload}})
}

func toLocationQRResponse(qr *domain.LocationQR) LocationQRResponse {
	return LocationQRResponse{
		ID:         qr.ID,
		Location:   qr.Location,
		WardNumber: qr.WardNumber,
		Payload:    qr.Payload,
		CreatedAt:  qr.CreatedAt,
	}
}
