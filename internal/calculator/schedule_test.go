package calculator

import (
	"testing"
	"time"

	"github.com/tara-app/tara/internal/models"
)

func event(id int64, date models.Date) models.Event {
	return models.Event{ID: id, Title: "event", Date: date}
}

func TestPartitionByDate(t *testing.T) {
	now := time.Date(2026, time.March, 15, 18, 30, 0, 0, time.UTC)

	tests := []struct {
		name         string
		events       []models.Event
		wantUpcoming []int64
		wantPast     []int64
	}{
		{
			name:   "empty input",
			events: nil,
		},
		{
			name: "mixed dates keep input order",
			events: []models.Event{
				event(1, models.NewDate(2026, time.April, 1)),
				event(2, models.NewDate(2026, time.January, 10)),
				event(3, models.NewDate(2026, time.March, 20)),
				event(4, models.NewDate(2025, time.December, 25)),
			},
			wantUpcoming: []int64{1, 3},
			wantPast:     []int64{2, 4},
		},
		{
			name: "same day as now counts as upcoming",
			events: []models.Event{
				event(1, models.NewDate(2026, time.March, 15)),
				event(2, models.NewDate(2026, time.March, 14)),
			},
			wantUpcoming: []int64{1},
			wantPast:     []int64{2},
		},
		{
			name: "all upcoming",
			events: []models.Event{
				event(1, models.NewDate(2026, time.March, 16)),
				event(2, models.NewDate(2027, time.January, 1)),
			},
			wantUpcoming: []int64{1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PartitionByDate(tt.events, now)

			if got := ids(p.Upcoming); !equalIDs(got, tt.wantUpcoming) {
				t.Errorf("Upcoming = %v, want %v", got, tt.wantUpcoming)
			}
			if got := ids(p.Past); !equalIDs(got, tt.wantPast) {
				t.Errorf("Past = %v, want %v", got, tt.wantPast)
			}

			// The halves are disjoint and their union is the input set.
			seen := make(map[int64]int)
			for _, e := range p.Upcoming {
				seen[e.ID]++
			}
			for _, e := range p.Past {
				seen[e.ID]++
			}
			if len(seen) != len(tt.events) {
				t.Errorf("partition covers %d events, input had %d", len(seen), len(tt.events))
			}
			for id, n := range seen {
				if n != 1 {
					t.Errorf("event %d appears %d times across the partition", id, n)
				}
			}
		})
	}
}

func TestPartitionByDate_LateEveningStillToday(t *testing.T) {
	// An event dated today must stay upcoming regardless of the clock time
	// within the day.
	now := time.Date(2026, time.March, 15, 23, 59, 0, 0, time.UTC)
	p := PartitionByDate([]models.Event{event(1, models.NewDate(2026, time.March, 15))}, now)

	if len(p.Upcoming) != 1 || len(p.Past) != 0 {
		t.Errorf("got upcoming=%d past=%d, want event kept upcoming", len(p.Upcoming), len(p.Past))
	}
}

func ids(events []models.Event) []int64 {
	var out []int64
	for _, e := range events {
		out = append(out, e.ID)
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
