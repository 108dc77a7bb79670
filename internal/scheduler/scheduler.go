// Package scheduler materializes default habit blocks onto a day's time
// grid. It is pure: callers pass in the current blocks and habit set and
// apply the returned blocks themselves.
package scheduler

import (
	"github.com/google/uuid"

	"habitgrid/internal/constants"
	"habitgrid/internal/models"
	"habitgrid/internal/utils"
)

type Scheduler struct {
	// GridStepMin is the snap granularity for auto-placed blocks.
	GridStepMin int
	// NewID produces block ids; injectable for tests.
	NewID func() string
}

func New() *Scheduler {
	return &Scheduler{
		GridStepMin: constants.GridStepMin,
		NewID:       uuid.NewString,
	}
}

// MaterializeDay returns one new habit block for every active habit that has
// no habit-kind block among existing. Placement starts at 08:00 on an empty
// day, otherwise on the grid line after the latest existing habit block.
// When nothing is missing the result is empty, which makes repeated
// invocation for an unchanged day a no-op.
func (s *Scheduler) MaterializeDay(existing []models.ScheduledBlock, activeHabits []models.Habit) []models.ScheduledBlock {
	represented := make(map[string]bool)
	lastEnd := -1
	for _, b := range existing {
		if b.Kind != models.BlockKindHabit {
			continue
		}
		represented[b.HabitID] = true
		if end := b.End(); end > lastEnd {
			lastEnd = end
		}
	}

	var missing []models.Habit
	for _, h := range activeHabits {
		if !represented[h.ID] {
			missing = append(missing, h)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	cursor := constants.DayStartMin
	if lastEnd >= 0 {
		cursor = utils.CeilToGrid(lastEnd+s.GridStepMin, s.GridStepMin)
	}

	blocks := make([]models.ScheduledBlock, 0, len(missing))
	for _, h := range missing {
		blocks = append(blocks, models.ScheduledBlock{
			ID:          s.NewID(),
			Kind:        models.BlockKindHabit,
			HabitID:     h.ID,
			Title:       h.Name,
			StartMin:    cursor,
			DurationMin: constants.DefaultBlockMin,
			Color:       constants.HabitBlockColor,
		})
		cursor = utils.CeilToGrid(cursor+constants.DefaultBlockMin+s.GridStepMin, s.GridStepMin)
	}
	return blocks
}
