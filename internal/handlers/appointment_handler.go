package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/prem7151/Kashtex-Agency/internal/domain/appointment"
	"github.com/prem7151/Kashtex-Agency/internal/httperr"
	"github.com/prem7151/Kashtex-Agency/internal/httpresp"
	"github.com/prem7151/Kashtex-Agency/internal/metrics"
	"github.com/prem7151/Kashtex-Agency/internal/middleware"
	ucAppointment "github.com/prem7151/Kashtex-Agency/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create       *ucAppointment.CreateAppointment
	availability *ucAppointment.GetAvailability
	updateStatus *ucAppointment.UpdateStatus
	repo         domain.Repository
	metrics      *metrics.Metrics
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	availability *ucAppointment.GetAvailability,
	updateStatus *ucAppointment.UpdateStatus,
	repo domain.Repository,
	m *metrics.Metrics,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:       create,
		availability: availability,
		updateStatus: updateStatus,
		repo:         repo,
		metrics:      m,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Service string `json:"service" binding:"required"`
	Date    string `json:"date" binding:"required"` // YYYY-MM-DD
	Time    string `json:"time" binding:"required"` // slot label
	Details string `json:"details"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE (PUBLIC)
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Required fields are missing.")
		return
	}

	ap, err := h.create.Execute(
		c.Request.Context(),
		ucAppointment.CreateAppointmentInput{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Service: req.Service,
			Date:    req.Date,
			Time:    req.Time,
			Details: req.Details,
		},
	)

	if err != nil {
		if httperr.IsBusiness(err, "slot_taken") {
			h.metrics.BookingConflicts.Inc()
			httperr.Conflict(c, "slot_taken", "This time slot is already booked. Please choose another time.")
			return
		}

		httperr.Internal(c, "failed_to_create_appointment", "Failed to book appointment.")
		return
	}

	h.metrics.AppointmentsCreated.Inc()
	httpresp.Created(c, ap)
}

// ======================================================
// AVAILABILITY (PUBLIC)
// ======================================================

func (h *AppointmentHandler) Available(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Date parameter required.")
		return
	}

	result, err := h.availability.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "availability_failed", "Failed to fetch available slots.")
		return
	}

	httpresp.OK(c, result)
}

// ======================================================
// LIST (ADMIN)
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	aps, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Failed to fetch appointments.")
		return
	}

	httpresp.List(c, aps)
}

// ======================================================
// STATUS TRANSITION (ADMIN)
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status is required.")
		return
	}

	ap, err := h.updateStatus.Execute(
		c.Request.Context(),
		adminID,
		id,
		domain.Status(req.Status),
	)

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "invalid_status", "Invalid status value.")
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		case httperr.IsBusiness(err, "slot_taken"):
			httperr.Conflict(c, "slot_taken", "Another appointment already occupies this slot.")
		default:
			httperr.Internal(c, "failed_to_update_appointment", "Failed to update appointment.")
		}
		return
	}

	httpresp.OK(c, ap)
}
