package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/UticaHairSalon/salon-booking/internal/httperr"
	"github.com/UticaHairSalon/salon-booking/internal/httpresp"
	"github.com/UticaHairSalon/salon-booking/internal/middleware"
	ucAppointment "github.com/UticaHairSalon/salon-booking/internal/usecase/appointment"
)

// ======================================================
// HANDLER (customer area)
// ======================================================

type BookingHandler struct {
	createUC  *ucAppointment.CreateBooking
	checkUC   *ucAppointment.CheckSlot
	cancelUC  *ucAppointment.CancelBooking
	reviewUC  *ucAppointment.AttachReview
	historyUC *ucAppointment.BookingHistory
}

func NewBookingHandler(
	createUC *ucAppointment.CreateBooking,
	checkUC *ucAppointment.CheckSlot,
	cancelUC *ucAppointment.CancelBooking,
	reviewUC *ucAppointment.AttachReview,
	historyUC *ucAppointment.BookingHistory,
) *BookingHandler {
	return &BookingHandler{
		createUC:  createUC,
		checkUC:   checkUC,
		cancelUC:  cancelUC,
		reviewUC:  reviewUC,
		historyUC: historyUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Time      string `json:"time" binding:"required"` // HH:MM
	Hairstyle string `json:"hairstyle"`
}

type ReviewRequest struct {
	Rating int    `json:"rating" binding:"required"`
	Text   string `json:"text" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Please fill in all fields.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateBookingInput{
		CustomerName:  req.Name,
		CustomerEmail: req.Email,
		Date:          req.Date,
		Time:          req.Time,
		Hairstyle:     req.Hairstyle,
	})

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "slot_taken"):
			httperr.Conflict(c, "slot_taken", "That time slot is already booked. Please pick another slot.")
		case httperr.BusinessCode(err) != "":
			httperr.BadRequest(c, httperr.BusinessCode(err), "Please fill in all fields with a valid date and time.")
		default:
			httperr.Internal(c, "failed_to_book", "Failed to book appointment. Please try again.")
		}
		return
	}

	httpresp.Created(c, gin.H{
		"appointment":         ap,
		"confirmation_number": ap.ConfirmationNumber,
	})
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *BookingHandler) Availability(c *gin.Context) {
	date := c.Query("date")
	timeStr := c.Query("time")

	available, err := h.checkUC.Execute(c.Request.Context(), date, timeStr)
	if err != nil {
		if code := httperr.BusinessCode(err); code != "" {
			httperr.BadRequest(c, code, "Date and time are required in YYYY-MM-DD and HH:MM form.")
			return
		}
		httperr.Internal(c, "availability_failed", "Could not check the slot. Please try again.")
		return
	}

	httpresp.OK(c, gin.H{
		"date":      date,
		"time":      timeStr,
		"available": available,
	})
}

// ======================================================
// HISTORY
// ======================================================

func (h *BookingHandler) History(c *gin.Context) {
	email := c.MustGet(middleware.ContextUserEmail).(string)

	buckets, err := h.historyUC.Execute(c.Request.Context(), email)
	if err != nil {
		httperr.Internal(c, "failed_to_load_bookings", "Failed to load bookings. Please try again.")
		return
	}

	httpresp.OK(c, buckets)
}

// ======================================================
// CANCEL
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	email := c.MustGet(middleware.ContextUserEmail).(string)

	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), email, id)
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
			return
		}
		httperr.Internal(c, "failed_to_cancel", "Failed to cancel booking. Please try again.")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// REVIEW
// ======================================================

func (h *BookingHandler) Review(c *gin.Context) {
	email := c.MustGet(middleware.ContextUserEmail).(string)

	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Rating and review text are required.")
		return
	}

	ap, err := h.reviewUC.Execute(c.Request.Context(), email, id, req.Rating, req.Text)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		case httperr.BusinessCode(err) != "":
			httperr.BadRequest(c, httperr.BusinessCode(err), "Could not submit review.")
		default:
			httperr.Internal(c, "failed_to_review", "Failed to submit review. Please try again.")
		}
		return
	}

	httpresp.OK(c, ap)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	return uint(id), err
}
