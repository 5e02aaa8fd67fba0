package appointment

import (
	"context"

	"github.com/UticaHairSalon/salon-booking/internal/models"
)

type Repository interface {
	// -------- Appointment (create / conflict) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	CountActiveBySlot(
		ctx context.Context,
		slot Slot,
	) (int64, error)

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	GetAppointmentForCustomer(
		ctx context.Context,
		id uint,
		email string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- History --------
	ListAppointmentsByEmail(
		ctx context.Context,
		email string,
	) ([]models.Appointment, error)
}
