package appointment

import (
	"context"
	"time"

	"github.com/UticaHairSalon/salon-booking/internal/audit"
	domain "github.com/UticaHairSalon/salon-booking/internal/domain/appointment"
	"github.com/UticaHairSalon/salon-booking/internal/httperr"
	"github.com/UticaHairSalon/salon-booking/internal/models"
	"github.com/UticaHairSalon/salon-booking/internal/timezone"
	"github.com/UticaHairSalon/salon-booking/internal/validators"
)

type AttachReview struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewAttachReview(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *AttachReview {
	return &AttachReview{
		repo:  repo,
		audit: audit,
		now:   timezone.Now,
	}
}

func (uc *AttachReview) Execute(
	ctx context.Context,
	customerEmail string,
	appointmentID uint,
	rating int,
	text string,
) (*models.Appointment, error) {

	email := validators.NormalizeEmail(customerEmail)

	ap, err := uc.repo.GetAppointmentForCustomer(ctx, appointmentID, email)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.AttachReview(ap, rating, text, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "review_attached",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"rating": rating},
	})

	return ap, nil
}
