package appointment

import (
	"context"

	domain "github.com/UticaHairSalon/salon-booking/internal/domain/appointment"
)

type CheckSlot struct {
	repo domain.Repository
}

func NewCheckSlot(repo domain.Repository) *CheckSlot {
	return &CheckSlot{repo: repo}
}

// Execute reports whether the (date, time) slot is free of pending or
// confirmed appointments. Read-only; on a store failure the slot is
// indeterminate and the error propagates.
func (uc *CheckSlot) Execute(
	ctx context.Context,
	date string,
	timeStr string,
) (bool, error) {

	slot, err := domain.ParseSlot(date, timeStr)
	if err != nil {
		return false, err
	}

	count, err := uc.repo.CountActiveBySlot(ctx, slot)
	if err != nil {
		return false, err
	}

	return count == 0, nil
}
