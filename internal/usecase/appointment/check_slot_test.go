package appointment

import (
	"context"
	"errors"
	"testing"
)

func TestCheckSlotFree(t *testing.T) {
	repo := newRepoStub()
	uc := NewCheckSlot(repo)

	available, err := uc.Execute(context.Background(), "2025-06-01", "10:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !available {
		t.Fatal("empty store should report the slot free")
	}
}

func TestCheckSlotOccupiedByActive(t *testing.T) {
	for _, status := range []string{"pending", "confirmed"} {
		repo := newRepoStub()
		uc := NewCheckSlot(repo)
		seedBooking(repo, "ada@example.com", status)

		available, err := uc.Execute(context.Background(), "2025-06-01", "10:00")
		if err != nil {
			t.Fatalf("status %s: unexpected error: %v", status, err)
		}
		if available {
			t.Errorf("status %s should occupy the slot", status)
		}
	}
}

func TestCheckSlotIgnoresInactive(t *testing.T) {
	for _, status := range []string{"completed", "cancelled"} {
		repo := newRepoStub()
		uc := NewCheckSlot(repo)
		seedBooking(repo, "ada@example.com", status)

		available, err := uc.Execute(context.Background(), "2025-06-01", "10:00")
		if err != nil {
			t.Fatalf("status %s: unexpected error: %v", status, err)
		}
		if !available {
			t.Errorf("status %s should not occupy the slot", status)
		}
	}
}

func TestCheckSlotPropagatesStoreFailure(t *testing.T) {
	repo := newRepoStub()
	repo.countErr = errors.New("store down")
	uc := NewCheckSlot(repo)

	if _, err := uc.Execute(context.Background(), "2025-06-01", "10:00"); err == nil {
		t.Fatal("expected error when the store is down")
	}
}

func TestCheckSlotValidatesInput(t *testing.T) {
	repo := newRepoStub()
	uc := NewCheckSlot(repo)

	if _, err := uc.Execute(context.Background(), "", "10:00"); err == nil {
		t.Fatal("expected error for missing date")
	}
	if _, err := uc.Execute(context.Background(), "2025-06-01", "bad"); err == nil {
		t.Fatal("expected error for malformed time")
	}
}
