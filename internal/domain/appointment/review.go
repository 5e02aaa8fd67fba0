package appointment

import (
	"strings"
	"time"

	"github.com/UticaHairSalon/salon-booking/internal/httperr"
	"github.com/UticaHairSalon/salon-booking/internal/models"
)

type Review struct {
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// AttachReview validates and writes a review onto a completed appointment.
// A review may attach once; there is no edit or delete path afterwards.
func AttachReview(ap *models.Appointment, rating int, text string, now time.Time) error {
	if ap.HasReview() {
		return httperr.ErrBusiness("review_already_exists")
	}
	if Status(ap.Status) != StatusCompleted {
		return httperr.ErrBusiness("not_completed")
	}
	if rating < 1 || rating > 5 {
		return httperr.ErrBusiness("invalid_rating")
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return httperr.ErrBusiness("missing_review_text")
	}

	ap.ReviewRating = &rating
	ap.ReviewText = &text
	ap.ReviewedAt = &now
	return nil
}
