package engine

import (
	"strings"

	"habitgrid/internal/models"
)

// Habits returns a copy of the registry in stored order.
func (e *Engine) Habits() []models.Habit {
	return append([]models.Habit(nil), e.state.Habits...)
}

// ActiveHabits filters the registry down to active habits. The filter runs
// on every call; the active set is never stored redundantly.
func (e *Engine) ActiveHabits() []models.Habit {
	var active []models.Habit
	for _, h := range e.state.Habits {
		if h.Active {
			active = append(active, h)
		}
	}
	return active
}

// HabitByID resolves a habit id. Callers must tolerate a miss: habit-kind
// blocks hold their own denormalized title precisely so display survives a
// cascaded-away habit.
func (e *Engine) HabitByID(id string) (models.Habit, bool) {
	for _, h := range e.state.Habits {
		if h.ID == id {
			return h, true
		}
	}
	return models.Habit{}, false
}

// AddHabit appends a new active habit. A name that trims to empty is
// silently refused. The new habit becomes eligible for default blocks on the
// currently visible dates immediately.
func (e *Engine) AddHabit(name string) *models.Habit {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	h := models.Habit{ID: e.NewID(), Name: name, Active: true}
	e.state.Habits = append(e.state.Habits, h)
	e.persist()
	e.EnsureDefaultBlocks(e.VisibleDates())
	return &h
}

// SetHabitActive sets the active flag; unknown ids are a no-op. Activation
// re-runs the materializer so the habit gets a fresh block at the current
// cursor position on each visible date. Prior placement is never restored.
func (e *Engine) SetHabitActive(id string, active bool) {
	for i := range e.state.Habits {
		if e.state.Habits[i].ID != id {
			continue
		}
		if e.state.Habits[i].Active == active {
			return
		}
		e.state.Habits[i].Active = active
		e.persist()
		e.EnsureDefaultBlocks(e.VisibleDates())
		return
	}
}

// DeleteHabit removes a habit and cascades: every check entry for it on any
// date, and every habit-kind block referencing it on any date, disappear in
// the same logical operation. Custom blocks and other habits are untouched.
// Unknown ids are a no-op.
func (e *Engine) DeleteHabit(id string) {
	idx := -1
	for i, h := range e.state.Habits {
		if h.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	e.state.Habits = append(e.state.Habits[:idx], e.state.Habits[idx+1:]...)

	for date, dayChecks := range e.state.Checks {
		delete(dayChecks, id)
		if len(dayChecks) == 0 {
			delete(e.state.Checks, date)
		}
	}

	for date, blocks := range e.state.Events {
		kept := blocks[:0]
		for _, b := range blocks {
			if b.Kind == models.BlockKindHabit && b.HabitID == id {
				continue
			}
			kept = append(kept, b)
		}
		if len(kept) == 0 {
			delete(e.state.Events, date)
		} else {
			e.state.Events[date] = kept
		}
	}

	e.persist()
}

// SetCheck records whether a habit was completed on a date. Entries are
// created only here, never implicitly.
func (e *Engine) SetCheck(date, habitID string, done bool) {
	if e.state.Checks[date] == nil {
		e.state.Checks[date] = models.DayChecks{}
	}
	e.state.Checks[date][habitID] = done
	e.persist()
}

// Checked reports whether a habit is marked done on a date. Absent entries
// read as false.
func (e *Engine) Checked(date, habitID string) bool {
	return e.state.Checks[date][habitID]
}

// ToggleCheck flips a day's check for a habit.
func (e *Engine) ToggleCheck(date, habitID string) {
	e.SetCheck(date, habitID, !e.Checked(date, habitID))
}
