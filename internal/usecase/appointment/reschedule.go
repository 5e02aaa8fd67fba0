package appointment

import (
	"context"

	"github.com/UticaHairSalon/salon-booking/internal/audit"
	domain "github.com/UticaHairSalon/salon-booking/internal/domain/appointment"
	"github.com/UticaHairSalon/salon-booking/internal/httperr"
	"github.com/UticaHairSalon/salon-booking/internal/models"
)

type RescheduleBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRescheduleBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RescheduleBooking {
	return &RescheduleBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute overwrites the appointment's date and time in place. The new slot
// is NOT checked for conflicts; the rescheduled appointment may land on an
// occupied slot. Preserved as-is from the product's behavior.
func (uc *RescheduleBooking) Execute(
	ctx context.Context,
	actorID uint,
	appointmentID uint,
	newDate string,
	newTime string,
) (*models.Appointment, error) {

	slot, err := domain.ParseSlot(newDate, newTime)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	oldDate, oldTime := ap.Date, ap.Time
	ap.Date = slot.Date
	ap.Time = slot.Time

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"from": oldDate + " " + oldTime,
			"to":   ap.Date + " " + ap.Time,
		},
	})

	return ap, nil
}
