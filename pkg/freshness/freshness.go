package freshness

import (
	"Genie-Expiry-Tracker/domain"
	"time"
)

const (
	criticalDays = 2
	warningDays  = 7
)

type Result struct {
	DaysUntilExpiry int                 `json:"daysUntilExpiry"`
	Status          domain.ExpiryStatus `json:"status"`
}

// Classify compares calendar days only, so the time of day on either
// argument never changes the result.
func Classify(expiry, today time.Time) Result {
	days := DaysBetween(today, expiry)
	return Result{DaysUntilExpiry: days, Status: StatusFor(days)}
}

func StatusFor(days int) domain.ExpiryStatus {
	switch {
	case days < 0:
		return domain.StatusExpired
	case days <= criticalDays:
		return domain.StatusCritical
	case days <= warningDays:
		return domain.StatusWarning
	default:
		return domain.StatusFresh
	}
}

// DaysBetween returns the whole number of calendar days from a to b.
// Each date is read in its own location and re-anchored at UTC midnight
// so DST transitions cannot produce fractional days.
func DaysBetween(a, b time.Time) int {
	return int(civil(b).Sub(civil(a)).Hours() / 24)
}

// Truncate drops the time-of-day component, keeping the location.
func Truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
