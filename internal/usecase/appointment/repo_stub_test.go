package appointment

import (
	"context"
	"errors"

	domain "github.com/UticaHairSalon/salon-booking/internal/domain/appointment"
	"github.com/UticaHairSalon/salon-booking/internal/models"
)

var errNotFound = errors.New("not found")

// repoStub is an in-memory domain.Repository. countErr and createErr let
// individual tests fail specific round trips.
type repoStub struct {
	appts  []models.Appointment
	nextID uint

	countErr  error
	createErr error
	updateErr error
	listErr   error
}

func newRepoStub() *repoStub {
	return &repoStub{nextID: 1}
}

func (r *repoStub) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if r.createErr != nil {
		return r.createErr
	}
	ap.ID = r.nextID
	r.nextID++
	r.appts = append(r.appts, *ap)
	return nil
}

func (r *repoStub) CountActiveBySlot(ctx context.Context, slot domain.Slot) (int64, error) {
	if r.countErr != nil {
		return 0, r.countErr
	}
	var count int64
	for _, ap := range r.appts {
		if ap.Date == slot.Date && ap.Time == slot.Time && domain.IsActive(domain.Status(ap.Status)) {
			count++
		}
	}
	return count, nil
}

func (r *repoStub) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	for i := range r.appts {
		if r.appts[i].ID == id {
			ap := r.appts[i]
			return &ap, nil
		}
	}
	return nil, errNotFound
}

func (r *repoStub) GetAppointmentForCustomer(ctx context.Context, id uint, email string) (*models.Appointment, error) {
	for i := range r.appts {
		if r.appts[i].ID == id && r.appts[i].CustomerEmail == email {
			ap := r.appts[i]
			return &ap, nil
		}
	}
	return nil, errNotFound
}

func (r *repoStub) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	for i := range r.appts {
		if r.appts[i].ID == ap.ID {
			r.appts[i] = *ap
			return nil
		}
	}
	return errNotFound
}

func (r *repoStub) ListAppointmentsByEmail(ctx context.Context, email string) ([]models.Appointment, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []models.Appointment
	for _, ap := range r.appts {
		if ap.CustomerEmail == email {
			out = append(out, ap)
		}
	}
	return out, nil
}

var _ domain.Repository = (*repoStub)(nil)
