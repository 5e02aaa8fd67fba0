package appointment

import (
	"context"

	"github.com/UticaHairSalon/salon-booking/internal/audit"
	domain "github.com/UticaHairSalon/salon-booking/internal/domain/appointment"
	"github.com/UticaHairSalon/salon-booking/internal/httperr"
	"github.com/UticaHairSalon/salon-booking/internal/models"
)

type ChangeStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewChangeStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ChangeStatus {
	return &ChangeStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ChangeStatus) Execute(
	ctx context.Context,
	actorID uint,
	appointmentID uint,
	newStatus string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	from := domain.Status(ap.Status)
	to := domain.Status(newStatus)

	// Re-cancelling is idempotent: report success without a second write.
	if from == domain.StatusCancelled && to == domain.StatusCancelled {
		return ap, nil
	}

	if err := domain.CanTransition(from, to); err != nil {
		return nil, err
	}

	ap.Status = string(to)
	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"from": string(from),
			"to":   string(to),
		},
	})

	return ap, nil
}
