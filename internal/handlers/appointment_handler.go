package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/UticaHairSalon/salon-booking/internal/httperr"
	"github.com/UticaHairSalon/salon-booking/internal/httpresp"
	"github.com/UticaHairSalon/salon-booking/internal/middleware"
	"github.com/UticaHairSalon/salon-booking/internal/models"
	ucAppointment "github.com/UticaHairSalon/salon-booking/internal/usecase/appointment"
)

// ======================================================
// HANDLER (admin area)
// ======================================================

type AppointmentHandler struct {
	db           *gorm.DB
	statusUC     *ucAppointment.ChangeStatus
	rescheduleUC *ucAppointment.RescheduleBooking
}

func NewAppointmentHandler(
	db *gorm.DB,
	statusUC *ucAppointment.ChangeStatus,
	rescheduleUC *ucAppointment.RescheduleBooking,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:           db,
		statusUC:     statusUC,
		rescheduleUC: rescheduleUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type RescheduleRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	name := strings.ToLower(strings.TrimSpace(c.Query("name")))
	date := strings.TrimSpace(c.Query("date"))
	sortBy := c.DefaultQuery("sort", "date")

	q := h.db.Model(&models.Appointment{})

	if name != "" {
		q = q.Where("LOWER(customer_name) LIKE ?", "%"+name+"%")
	}
	if date != "" {
		q = q.Where("date = ?", date)
	}

	if sortBy == "name" {
		q = q.Order("customer_name ASC")
	} else {
		q = q.Order("date ASC, time ASC")
	}

	var appts []models.Appointment
	if err := q.Find(&appts).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Failed to fetch appointments.")
		return
	}

	httpresp.List(c, appts)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) ChangeStatus(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status is required.")
		return
	}

	ap, err := h.statusUC.Execute(c.Request.Context(), adminID, id, req.Status)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		case httperr.BusinessCode(err) != "":
			httperr.BadRequest(c, httperr.BusinessCode(err), "Status change not allowed.")
		default:
			httperr.Internal(c, "failed_to_update_status", "Failed to update status.")
		}
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// RESCHEDULE
// ======================================================

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Please fill in date and time.")
		return
	}

	ap, err := h.rescheduleUC.Execute(c.Request.Context(), adminID, id, req.Date, req.Time)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		case httperr.BusinessCode(err) != "":
			httperr.BadRequest(c, httperr.BusinessCode(err), "Invalid date or time.")
		default:
			httperr.Internal(c, "failed_to_reschedule", "Failed to update appointment.")
		}
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	ap, err := h.statusUC.Execute(c.Request.Context(), adminID, id, "cancelled")
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
			return
		}
		httperr.Internal(c, "failed_to_cancel", "Failed to cancel appointment.")
		return
	}

	httpresp.OK(c, ap)
}
