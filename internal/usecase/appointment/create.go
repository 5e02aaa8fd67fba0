package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/UticaHairSalon/salon-booking/internal/audit"
	domain "github.com/UticaHairSalon/salon-booking/internal/domain/appointment"
	"github.com/UticaHairSalon/salon-booking/internal/httperr"
	"github.com/UticaHairSalon/salon-booking/internal/models"
	"github.com/UticaHairSalon/salon-booking/internal/timezone"
	"github.com/UticaHairSalon/salon-booking/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	CustomerName  string
	CustomerEmail string

	Date string
	Time string

	Hairstyle string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	confirm *domain.ConfirmationGenerator
	now     func() time.Time
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:    repo,
		audit:   audit,
		confirm: domain.NewConfirmationGenerator(),
		now:     timezone.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute checks the requested slot and then inserts the booking. The check
// and the insert are two separate round trips: two concurrent callers can
// both observe a free slot and both succeed. That limitation is part of the
// contract here, not an oversight (see DESIGN.md).
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Appointment, error) {

	name := strings.TrimSpace(in.CustomerName)
	email := validators.NormalizeEmail(in.CustomerEmail)
	if name == "" || email == "" {
		return nil, httperr.ErrBusiness("missing_fields")
	}

	slot, err := domain.ParseSlot(in.Date, in.Time)
	if err != nil {
		return nil, err
	}

	style := strings.TrimSpace(in.Hairstyle)
	if style == "" {
		style = "Not specified"
	}

	count, err := uc.repo.CountActiveBySlot(ctx, slot)
	if err != nil {
		// Indeterminate slot: abort rather than book blind.
		return nil, err
	}
	if count > 0 {
		return nil, httperr.ErrBusiness("slot_taken")
	}

	ap := &models.Appointment{
		CustomerName:       name,
		CustomerEmail:      email,
		Date:               slot.Date,
		Time:               slot.Time,
		Hairstyle:          style,
		Status:             string(domain.InitialStatus()),
		ConfirmationNumber: uc.confirm.Next(uc.now()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"date": ap.Date,
			"time": ap.Time,
		},
	})

	return ap, nil
}
