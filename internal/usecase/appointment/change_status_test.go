package appointment

import (
	"context"
	"testing"

	"github.com/UticaHairSalon/salon-booking/internal/httperr"
)

func TestChangeStatusConfirm(t *testing.T) {
	repo := newRepoStub()
	uc := NewChangeStatus(repo, nil)

	id := seedBooking(repo, "ada@example.com", "pending")

	ap, err := uc.Execute(context.Background(), 1, id, "confirmed")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.Status != "confirmed" {
		t.Errorf("status = %s, want confirmed", ap.Status)
	}
}

func TestChangeStatusFullLifecycle(t *testing.T) {
	repo := newRepoStub()
	uc := NewChangeStatus(repo, nil)

	id := seedBooking(repo, "ada@example.com", "pending")

	for _, next := range []string{"confirmed", "completed"} {
		if _, err := uc.Execute(context.Background(), 1, id, next); err != nil {
			t.Fatalf("transition to %s failed: %v", next, err)
		}
	}

	ap, _ := repo.GetAppointment(context.Background(), id)
	if ap.Status != "completed" {
		t.Errorf("final status = %s, want completed", ap.Status)
	}
}

func TestChangeStatusRejectsIllegalEdge(t *testing.T) {
	repo := newRepoStub()
	uc := NewChangeStatus(repo, nil)

	id := seedBooking(repo, "ada@example.com", "pending")

	_, err := uc.Execute(context.Background(), 1, id, "completed")
	if !httperr.IsBusiness(err, "invalid_transition") {
		t.Fatalf("pending -> completed: expected invalid_transition, got %v", err)
	}

	ap, _ := repo.GetAppointment(context.Background(), id)
	if ap.Status != "pending" {
		t.Errorf("illegal transition mutated status to %s", ap.Status)
	}
}

func TestChangeStatusRejectsUnknownStatus(t *testing.T) {
	repo := newRepoStub()
	uc := NewChangeStatus(repo, nil)

	id := seedBooking(repo, "ada@example.com", "pending")

	_, err := uc.Execute(context.Background(), 1, id, "archived")
	if !httperr.IsBusiness(err, "invalid_status") {
		t.Fatalf("expected invalid_status, got %v", err)
	}
}

func TestChangeStatusCancelIsIdempotent(t *testing.T) {
	repo := newRepoStub()
	uc := NewChangeStatus(repo, nil)

	id := seedBooking(repo, "ada@example.com", "cancelled")

	ap, err := uc.Execute(context.Background(), 1, id, "cancelled")
	if err != nil {
		t.Fatalf("re-cancelling errored: %v", err)
	}
	if ap.Status != "cancelled" {
		t.Errorf("status = %s, want cancelled", ap.Status)
	}
}

func TestChangeStatusNotFound(t *testing.T) {
	repo := newRepoStub()
	uc := NewChangeStatus(repo, nil)

	_, err := uc.Execute(context.Background(), 1, 99, "confirmed")
	if !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("expected appointment_not_found, got %v", err)
	}
}
