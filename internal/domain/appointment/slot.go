package appointment

import (
	"time"

	"github.com/UticaHairSalon/salon-booking/internal/httperr"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Slot is the (date, time) pair an active appointment occupies.
type Slot struct {
	Date string
	Time string
}

func ParseSlot(date, timeStr string) (Slot, error) {
	if date == "" || timeStr == "" {
		return Slot{}, httperr.ErrBusiness("missing_date_or_time")
	}

	if _, err := time.Parse(DateLayout, date); err != nil {
		return Slot{}, httperr.ErrBusiness("invalid_date")
	}
	if _, err := time.Parse(TimeLayout, timeStr); err != nil {
		return Slot{}, httperr.ErrBusiness("invalid_time")
	}

	return Slot{Date: date, Time: timeStr}, nil
}
