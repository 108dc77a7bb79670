package engine

import (
	"habitgrid/internal/models"
	"habitgrid/internal/utils"
)

// SelectedDate returns the current anchor date.
func (e *Engine) SelectedDate() string {
	return e.state.SelectedDate
}

// CurrentView returns the active view.
func (e *Engine) CurrentView() models.View {
	return e.state.CurrentView
}

// VisibleDates resolves the date set implied by the current view: the
// selected date alone, its Monday-started week, or the month grid covering
// its month.
func (e *Engine) VisibleDates() []string {
	selected, err := utils.ParseISO(e.state.SelectedDate)
	if err != nil {
		return []string{e.state.SelectedDate}
	}
	switch e.state.CurrentView {
	case models.ViewWeek:
		return utils.WeekDates(selected)
	case models.ViewMonth:
		return utils.MonthGridDates(selected)
	default:
		return []string{e.state.SelectedDate}
	}
}

// SetView switches between day, week, and month. Events and habits are not
// touched; the new visible dates just get a materializer pass.
func (e *Engine) SetView(v models.View) {
	if !v.Valid() || v == e.state.CurrentView {
		return
	}
	e.state.CurrentView = v
	e.persist()
	e.EnsureDefaultBlocks(e.VisibleDates())
}

// SelectDate moves the anchor to the given ISO date. Invalid dates are a
// no-op.
func (e *Engine) SelectDate(iso string) {
	if !utils.ValidISODate(iso) || iso == e.state.SelectedDate {
		return
	}
	e.state.SelectedDate = iso
	e.persist()
	e.EnsureDefaultBlocks(e.VisibleDates())
}

// Prev navigates one unit back in the current view.
func (e *Engine) Prev() {
	e.shift(-1)
}

// Next navigates one unit forward in the current view.
func (e *Engine) Next() {
	e.shift(1)
}

// GoToToday resets the anchor to the real current date; the view stays.
func (e *Engine) GoToToday() {
	e.SelectDate(e.Today())
}

func (e *Engine) shift(direction int) {
	selected, err := utils.ParseISO(e.state.SelectedDate)
	if err != nil {
		return
	}
	switch e.state.CurrentView {
	case models.ViewWeek:
		selected = utils.AddDays(selected, 7*direction)
	case models.ViewMonth:
		selected = utils.AddMonths(selected, direction)
	default:
		selected = utils.AddDays(selected, direction)
	}
	e.SelectDate(utils.ISODate(selected))
}
