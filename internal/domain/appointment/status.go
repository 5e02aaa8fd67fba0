package appointment

import "github.com/UticaHairSalon/salon-booking/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func IsValid(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ===============================
// Transition rules
// ===============================

// Legal edges: pending→confirmed, confirmed→completed, any→cancelled.
// Cancelling an already cancelled appointment is a no-op, not an error.
func CanTransition(from, to Status) error {
	if !IsValid(to) {
		return httperr.ErrBusiness("invalid_status")
	}

	if to == StatusCancelled {
		return nil
	}

	switch {
	case from == StatusPending && to == StatusConfirmed:
		return nil
	case from == StatusConfirmed && to == StatusCompleted:
		return nil
	}

	return httperr.ErrBusiness("invalid_transition")
}

func InitialStatus() Status {
	return StatusPending
}

// Active statuses occupy their (date, time) slot.
func IsActive(s Status) bool {
	return s == StatusPending || s == StatusConfirmed
}
