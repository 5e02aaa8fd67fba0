package appointment

import (
	"context"
	"time"

	domain "github.com/UticaHairSalon/salon-booking/internal/domain/appointment"
	"github.com/UticaHairSalon/salon-booking/internal/timezone"
	"github.com/UticaHairSalon/salon-booking/internal/validators"
)

type BookingHistory struct {
	repo domain.Repository
	now  func() time.Time
}

func NewBookingHistory(repo domain.Repository) *BookingHistory {
	return &BookingHistory{
		repo: repo,
		now:  timezone.Now,
	}
}

// Execute fetches every appointment booked under the customer's email and
// partitions them into upcoming and past against today's date at the salon.
func (uc *BookingHistory) Execute(
	ctx context.Context,
	customerEmail string,
) (domain.HistoryBuckets, error) {

	email := validators.NormalizeEmail(customerEmail)

	appts, err := uc.repo.ListAppointmentsByEmail(ctx, email)
	if err != nil {
		return domain.HistoryBuckets{}, err
	}

	today := uc.now().Format(domain.DateLayout)
	return domain.Partition(appts, today), nil
}
