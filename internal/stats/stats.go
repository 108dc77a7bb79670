// Package stats derives completion rollups from the checks table. A Summary
// is a pure function of its inputs and is recomputed on every read; nothing
// here is cached or mutated.
package stats

import (
	"math"

	"habitgrid/internal/models"
	"habitgrid/internal/utils"
)

// Summary is the completion rollup for a date range.
type Summary struct {
	Done  int
	Total int
	Pct   int
}

// Completion counts checked (date, active-habit) pairs over the inclusive
// range [startISO, endISO]. With no active habits every field is zero; there
// is never a division by zero.
func Completion(startISO, endISO string, activeHabits []models.Habit, checks models.ChecksTable) (Summary, error) {
	dates, err := utils.DateRange(startISO, endISO)
	if err != nil {
		return Summary{}, err
	}
	if len(activeHabits) == 0 {
		return Summary{}, nil
	}

	var done int
	for _, date := range dates {
		dayChecks := checks[date]
		if dayChecks == nil {
			continue
		}
		for _, h := range activeHabits {
			if dayChecks[h.ID] {
				done++
			}
		}
	}

	total := len(dates) * len(activeHabits)
	s := Summary{Done: done, Total: total}
	if total > 0 {
		s.Pct = int(math.Round(float64(done) / float64(total) * 100))
	}
	return s, nil
}
