package timezone

import "time"

// The salon is a single physical location; "today" for booking-history
// purposes is always evaluated in its local timezone.
const DefaultTimezone = "America/New_York"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// Today returns the current calendar date as YYYY-MM-DD in the given timezone.
func Today(tz string) string {
	return NowIn(tz).Format("2006-01-02")
}
