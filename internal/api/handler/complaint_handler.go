package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/nagarpalika/complaint-system/internal/api/metrics"
	"github.com/nagarpalika/complaint-system/internal/core/domain"
	"github.com/nagarpalika/complaint-system/internal/core/ports"
)

// ComplaintHandler exposes the complaint use-cases over HTTP.
type ComplaintHandler struct {
	service ports.ComplaintService
	logger  zerolog.Logger
}

// NewComplaintHandler creates a ComplaintHandler.
func NewComplaintHandler(service ports.ComplaintService, logger zerolog.Logger) *ComplaintHandler {
	return &ComplaintHandler{service: service, logger: logger}
}

// Submit godoc
// @Summary      Submit a complaint
// @Description  Files a new citizen complaint and returns its tracking number
// @Tags         complaints
// @Accept       json
// @Produce      json
// @Param        complaint  body      SubmitComplaintRequest  true  "Complaint payload"
// @Success      201        {object}  successResponse{data=SubmitComplaintResponse}
// @Failure      400        {object}  errorResponse
// @Failure      422        {object}  errorResponse
// @Router       /api/complaints/submit [post]
func (h *ComplaintHandler) Submit(c echo.Context) error {
	return h.submit(c, "")
}

// SubmitViaQR godoc
// @Summary      Submit a complaint scanned from a location QR
// @Description  Same as submit, but replay-safe: repeating the Idempotency-Key header returns the original complaint instead of filing twice
// @Tags         complaints
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string                  false  "Client-generated submission key"
// @Param        complaint        body      SubmitComplaintRequest  true   "Complaint payload"
// @Success      201              {object}  successResponse{data=SubmitComplaintResponse}
// @Failure      400              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Router       /api/complaints/qr/submit [post]
func (h *ComplaintHandler) SubmitViaQR(c echo.Context) error {
	return h.submit(c, c.Request().Header.Get("Idempotency-Key"))
}

func (h *ComplaintHandler) submit(c echo.Context, idempotencyKey string) error {
	var req SubmitComplaintRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.service.Submit(c.Request().Context(), toSubmitInput(req, idempotencyKey))
	if err != nil {
		return err
	}

	status := http.StatusCreated
	message := "complaint submitted successfully"
	if result.AlreadyExisted {
		status = http.StatusOK
		message = "complaint already submitted"
	} else {
		metrics.ComplaintsSubmittedTotal.WithLabelValues(req.ComplaintType, req.Priority).Inc()
	}

	return c.JSON(status, successResponse{
		Success: true,
		Message: message,
		Data: SubmitComplaintResponse{
			ComplaintNumber: result.ComplaintNumber,
			Status:          result.Status,
			CreatedAt:       result.CreatedAt,
		},
	})
}

// Track godoc
// @Summary      Track a complaint by number
// @Description  Public lookup of one complaint by its tracking number
// @Tags         complaints
// @Produce      json
// @Param        complaintNumber  path      string  true  "Complaint number"
// @Success      200              {object}  successResponse{data=ComplaintResponse}
// @Failure      404              {object}  errorResponse
// @Router       /api/complaints/track/{complaintNumber} [get]
func (h *ComplaintHandler) Track(c echo.Context) error {
	number := c.Param("complaintNumber")

	complaint, err := h.service.Track(c.Request().Context(), number)
	if err != nil {
		if errors.Is(err, domain.ErrComplaintNotFound) {
			metrics.TrackingLookupsTotal.WithLabelValues("not_found").Inc()
		}
		return err
	}
	metrics.TrackingLookupsTotal.WithLabelValues("found").Inc()

	return c.JSON(http.StatusOK, successResponse{Success: true, Data: toComplaintResponse(complaint)})
}

// List godoc
// @Summary      List complaints
// @Description  Paginated, filterable admin listing, newest first
// @Tags         complaints
// @Produce      json
// @Param        status          query     string  false  "Filter by status"
// @Param        complaint_type  query     string  false  "Filter by complaint type"
// @Param        ward_number     query     int     false  "Filter by ward number"
// @Param        priority        query     string  false  "Filter by priority"
// @Param        page            query     int     false  "Page (1-based, default 1)"
// @Param        limit           query     int     false  "Page size (default 10, max 100)"
// @Success      200             {object}  successResponse{data=ListComplaintsResponse}
// @Failure      401             {object}  errorResponse
// @Security     BearerAuth
// @Router       /api/complaints [get]
func (h *ComplaintHandler) List(c echo.Context) error {
	input := ports.ListComplaintsInput{
		Status:        c.QueryParam("status"),
		ComplaintType: c.QueryParam("complaint_type"),
		Priority:      c.QueryParam("priority"),
	}
	if v := c.QueryParam("ward_number"); v != "" {
		ward, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "ward_number must be an integer")
		}
		input.WardNumber = ward
	}
	if v := c.QueryParam("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "page must be an integer")
		}
		input.Page = page
	}
	if v := c.QueryParam("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be an integer")
		}
		input.Limit = limit
	}

	result, err := h.service.List(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, successResponse{Success: true, Data: toListResponse(result)})
}

// GetByID godoc
// @Summary      Get one complaint
// @Tags         complaints
// @Produce      json
// @Param        id   path      string  true  "Complaint ID"
// @Success      200  {object}  successResponse{data=ComplaintResponse}
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /api/complaints/{id} [get]
func (h *ComplaintHandler) GetByID(c echo.Context) error {
	complaint, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true, Data: toComplaintResponse(complaint)})
}

// UpdateStatus godoc
// @Summary      Update complaint status
// @Description  Moves a complaint to any valid status and optionally updates assignment and resolution fields
// @Tags         complaints
// @Accept       json
// @Produce      json
// @Param        id      path      string               true  "Complaint ID"
// @Param        update  body      UpdateStatusRequest  true  "Status update"
// @Success      200     {object}  successResponse{data=ComplaintResponse}
// @Failure      404     {object}  errorResponse
// @Failure      422     {object}  errorResponse
// @Security     BearerAuth
// @Router       /api/complaints/{id}/status [patch]
func (h *ComplaintHandler) UpdateStatus(c echo.Context) error {
	username, err := adminUsername(c)
	if err != nil {
		return err
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	complaint, err := h.service.UpdateStatus(c.Request().Context(), toUpdateStatusInput(c.Param("id"), req, username))
	if err != nil {
		return err
	}
	metrics.StatusUpdatesTotal.WithLabelValues(req.Status).Inc()

	return c.JSON(http.StatusOK, successResponse{
		Success: true,
		Message: "complaint status updated",
		Data:    toComplaintResponse(complaint),
	})
}

// Stats godoc
// @Summary      Complaint statistics
// @Description  Dashboard rollup grouped by status, type and priority
// @Tags         complaints
// @Produce      json
// @Success      200  {object}  successResponse{data=domain.Statistics}
// @Failure      401  {object}  errorResponse
// @Security     BearerAuth
// @Router       /api/complaints/stats/overview [get]
func (h *ComplaintHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true, Data: stats})
}
