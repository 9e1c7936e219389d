package calculator

import (
	"time"

	"github.com/tara-app/tara/internal/models"
)

// EventPartition splits events into upcoming and past relative to a
// reference time. Input order is preserved within each half.
type EventPartition struct {
	Upcoming []models.Event
	Past     []models.Event
}

// PartitionByDate partitions events around now. Events dated exactly on
// now's calendar day count as upcoming.
func PartitionByDate(events []models.Event, now time.Time) EventPartition {
	today := dayOf(now)

	var p EventPartition
	for _, e := range events {
		if !dayOf(e.Date.Time).Before(today) {
			p.Upcoming = append(p.Upcoming, e)
		} else {
			p.Past = append(p.Past, e)
		}
	}
	return p
}

// dayOf reduces a time to its calendar day as observed in its own location,
// so a UTC-stored event date and a local "now" compare by day, not instant.
func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
