// Package engine is the composition root of the scheduling core. It owns
// the canonical application state, exposes the habit registry, event store,
// materializer, and view operations, and persists the whole state after
// every mutation. Persistence is best-effort: a failed save is logged and
// swallowed, and the session keeps operating in memory.
//
// The engine is single-threaded by design. Operations complete fully,
// including cascades, before the next one is observable; derived values
// (active habits, sorted blocks, visible dates, completion rollups) are
// recomputed from the canonical state on every read.
package engine

import (
	"time"

	"github.com/google/uuid"

	"habitgrid/internal/logger"
	"habitgrid/internal/models"
	"habitgrid/internal/scheduler"
	"habitgrid/internal/stats"
	"habitgrid/internal/storage"
	"habitgrid/internal/utils"
)

type Engine struct {
	state *models.AppState
	store storage.Provider
	sched *scheduler.Scheduler
	drag  *DragPayload

	// Now and NewID are the engine's clock and id source; injectable for
	// tests.
	Now   func() time.Time
	NewID func() string

	// DefaultHabits seed the state when no persisted blob exists at all.
	DefaultHabits []string
}

// New builds an engine over the given store and scheduler. State is loaded
// lazily by Boot.
func New(store storage.Provider, sched *scheduler.Scheduler) *Engine {
	return &Engine{
		store:         store,
		sched:         sched,
		Now:           time.Now,
		NewID:         uuid.NewString,
		DefaultHabits: nil,
	}
}

// Boot loads persisted state, falling back to built-in defaults when the
// blob is absent or unreadable, normalizes it field by field, and runs the
// materializer for the currently visible dates. It never fails: the worst
// outcome of a broken store is a fresh in-memory session.
func (e *Engine) Boot() {
	today := e.Today()

	state, err := e.store.Load()
	if err != nil || state == nil {
		if err != nil {
			logger.Warn("no usable stored state, starting fresh", "error", err)
		}
		state = e.defaultState(today)
	}
	state.Normalize(today, utils.ValidISODate)
	e.state = state

	e.EnsureDefaultBlocks(e.VisibleDates())
	e.persist()
}

// Today returns the current date as an ISO string.
func (e *Engine) Today() string {
	return utils.ISODate(e.Now())
}

// State exposes the canonical state for read-only use by storage round-trip
// callers. Mutations must go through engine operations.
func (e *Engine) State() *models.AppState {
	return e.state
}

func (e *Engine) defaultState(today string) *models.AppState {
	state := &models.AppState{
		Version:      models.StateVersion,
		SelectedDate: today,
		CurrentView:  models.ViewDay,
		Habits:       []models.Habit{},
		Checks:       models.ChecksTable{},
		Events:       models.EventTable{},
	}
	for _, name := range e.DefaultHabits {
		state.Habits = append(state.Habits, models.Habit{
			ID:     e.NewID(),
			Name:   name,
			Active: true,
		})
	}
	return state
}

// persist writes the state after a mutation. Failures are logged and
// swallowed so a broken disk never blocks interaction.
func (e *Engine) persist() {
	if e.store == nil {
		return
	}
	if err := e.store.Save(e.state); err != nil {
		logger.Warn("failed to persist state", "error", err)
	}
}

// EnsureDefaultBlocks runs the materializer for each of the given dates,
// giving every active habit one block per date. Idempotent per date.
func (e *Engine) EnsureDefaultBlocks(dates []string) {
	active := e.ActiveHabits()
	changed := false
	for _, date := range dates {
		added := e.sched.MaterializeDay(e.state.Events[date], active)
		if len(added) == 0 {
			continue
		}
		e.state.Events[date] = append(e.state.Events[date], added...)
		changed = true
	}
	if changed {
		e.persist()
	}
}

// Completion computes the done/total/pct rollup for the unit of the given
// view containing the selected date: the day itself, its Monday-started
// week, or its calendar month.
func (e *Engine) Completion(view models.View) stats.Summary {
	selected, err := utils.ParseISO(e.state.SelectedDate)
	if err != nil {
		return stats.Summary{}
	}

	var startISO, endISO string
	switch view {
	case models.ViewWeek:
		startISO = utils.ISODate(utils.StartOfWeek(selected))
		endISO = utils.ISODate(utils.EndOfWeek(selected))
	case models.ViewMonth:
		startISO = utils.ISODate(utils.StartOfMonth(selected))
		endISO = utils.ISODate(utils.EndOfMonth(selected))
	default:
		startISO = e.state.SelectedDate
		endISO = e.state.SelectedDate
	}

	summary, err := stats.Completion(startISO, endISO, e.ActiveHabits(), e.state.Checks)
	if err != nil {
		return stats.Summary{}
	}
	return summary
}
