package appointment

import (
	"sort"

	"github.com/UticaHairSalon/salon-booking/internal/models"
)

type HistoryBuckets struct {
	Upcoming []models.Appointment `json:"upcoming"`
	Past     []models.Appointment `json:"past"`
}

// Partition splits a customer's appointments into upcoming and past buckets.
// Completed and cancelled appointments are always past regardless of their
// date; everything else buckets by date against today (YYYY-MM-DD). Every
// appointment lands in exactly one bucket. Both buckets sort descending by
// date, then time.
func Partition(appts []models.Appointment, today string) HistoryBuckets {
	b := HistoryBuckets{
		Upcoming: []models.Appointment{},
		Past:     []models.Appointment{},
	}

	for _, ap := range appts {
		s := Status(ap.Status)
		if s == StatusCompleted || s == StatusCancelled || ap.Date < today {
			b.Past = append(b.Past, ap)
		} else {
			b.Upcoming = append(b.Upcoming, ap)
		}
	}

	sortDesc(b.Upcoming)
	sortDesc(b.Past)
	return b
}

func sortDesc(appts []models.Appointment) {
	sort.SliceStable(appts, func(i, j int) bool {
		if appts[i].Date != appts[j].Date {
			return appts[i].Date > appts[j].Date
		}
		return appts[i].Time > appts[j].Time
	})
}
