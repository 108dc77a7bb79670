package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"habitgrid/internal/constants"
	"habitgrid/internal/engine"
)

func newBlockForm(v *blockFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&v.Title),
			huh.NewInput().
				Title("Start (HH:MM)").
				Value(&v.Clock),
			huh.NewInput().
				Title("Duration (minutes)").
				Value(&v.Duration),
			huh.NewInput().
				Title("Color (hex)").
				Value(&v.Color),
			huh.NewText().
				Title("Notes").
				Value(&v.Notes),
		),
	)
}

func newHabitForm(name *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit name").
				Value(name),
		),
	)
}

// openAddDialog seeds the block form with the engine's defaults for a date.
func (m *Model) openAddDialog(date string) {
	seed := m.eng.NewBlockForm(date)
	m.editingDate = date
	m.editingBlock = ""
	m.formValues = &blockFormValues{
		Clock:    seed.Clock,
		Duration: strconv.Itoa(seed.DurationMin),
		Color:    seed.Color,
	}
	m.form = newBlockForm(m.formValues)
	m.state = StateEditing
}

// openEditDialog seeds the block form from an existing block.
func (m *Model) openEditDialog(date, blockID string) bool {
	seed, ok := m.eng.EditBlockForm(date, blockID)
	if !ok {
		return false
	}
	m.editingDate = date
	m.editingBlock = blockID
	m.formValues = &blockFormValues{
		Title:    seed.Title,
		Clock:    seed.Clock,
		Duration: strconv.Itoa(seed.DurationMin),
		Color:    seed.Color,
		Notes:    seed.Notes,
	}
	m.form = newBlockForm(m.formValues)
	m.state = StateEditing
	return true
}

// submitBlockForm converts the dialog values and asks the engine to save.
// A refused save keeps the dialog open with a hint, per the editing
// workflow contract.
func (m *Model) submitBlockForm() {
	v := m.formValues
	duration, err := strconv.Atoi(strings.TrimSpace(v.Duration))
	if err != nil {
		duration = constants.DefaultBlockMin
	}

	saved := m.eng.SaveForm(engine.BlockForm{
		Date:        m.editingDate,
		BlockID:     m.editingBlock,
		Title:       v.Title,
		Clock:       v.Clock,
		DurationMin: duration,
		Color:       v.Color,
		Notes:       v.Notes,
	})
	if !saved {
		m.hint = "Not saved: title must be non-empty and start must be HH:MM"
		m.form = newBlockForm(m.formValues)
		return
	}

	m.hint = ""
	m.form = nil
	m.state = StateCalendar
}
