package appointment

import (
	"context"

	"github.com/UticaHairSalon/salon-booking/internal/audit"
	domain "github.com/UticaHairSalon/salon-booking/internal/domain/appointment"
	"github.com/UticaHairSalon/salon-booking/internal/httperr"
	"github.com/UticaHairSalon/salon-booking/internal/models"
	"github.com/UticaHairSalon/salon-booking/internal/validators"
)

type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute cancels the customer's own appointment. Permitted from any prior
// status and idempotent: cancelling twice leaves the status cancelled.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	customerEmail string,
	appointmentID uint,
) (*models.Appointment, error) {

	email := validators.NormalizeEmail(customerEmail)

	ap, err := uc.repo.GetAppointmentForCustomer(ctx, appointmentID, email)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if domain.Status(ap.Status) == domain.StatusCancelled {
		return ap, nil
	}

	ap.Status = string(domain.StatusCancelled)
	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
