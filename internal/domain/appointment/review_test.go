package appointment

import (
	"testing"
	"time"

	"github.com/UticaHairSalon/salon-booking/internal/httperr"
	"github.com/UticaHairSalon/salon-booking/internal/models"
)

func completedAppointment() *models.Appointment {
	return &models.Appointment{
		ID:     1,
		Status: string(StatusCompleted),
	}
}

func TestAttachReview(t *testing.T) {
	ap := completedAppointment()
	now := time.Date(2025, 6, 20, 18, 0, 0, 0, time.UTC)

	if err := AttachReview(ap, 4, "  Great cut!  ", now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !ap.HasReview() {
		t.Fatal("review not attached")
	}
	if *ap.ReviewRating != 4 {
		t.Errorf("rating = %d, want 4", *ap.ReviewRating)
	}
	if *ap.ReviewText != "Great cut!" {
		t.Errorf("text = %q, want trimmed text", *ap.ReviewText)
	}
	if !ap.ReviewedAt.Equal(now) {
		t.Errorf("reviewed at = %v, want %v", ap.ReviewedAt, now)
	}
}

func TestAttachReviewRejectsSecondReview(t *testing.T) {
	ap := completedAppointment()
	now := time.Now()

	if err := AttachReview(ap, 5, "first", now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := AttachReview(ap, 1, "second", now)
	if !httperr.IsBusiness(err, "review_already_exists") {
		t.Fatalf("expected review_already_exists, got %v", err)
	}
	if *ap.ReviewText != "first" {
		t.Errorf("original review overwritten: %q", *ap.ReviewText)
	}
}

func TestAttachReviewRejectsRatingOutOfRange(t *testing.T) {
	for _, rating := range []int{0, -1, 6, 100} {
		ap := completedAppointment()
		err := AttachReview(ap, rating, "text", time.Now())
		if !httperr.IsBusiness(err, "invalid_rating") {
			t.Errorf("rating %d: expected invalid_rating, got %v", rating, err)
		}
	}
}

func TestAttachReviewRequiresCompletedStatus(t *testing.T) {
	for _, status := range []Status{StatusPending, StatusConfirmed, StatusCancelled} {
		ap := &models.Appointment{Status: string(status)}
		err := AttachReview(ap, 5, "text", time.Now())
		if !httperr.IsBusiness(err, "not_completed") {
			t.Errorf("status %s: expected not_completed, got %v", status, err)
		}
	}
}

func TestAttachReviewRequiresText(t *testing.T) {
	ap := completedAppointment()
	err := AttachReview(ap, 5, "   ", time.Now())
	if !httperr.IsBusiness(err, "missing_review_text") {
		t.Fatalf("expected missing_review_text, got %v", err)
	}
}
