package engine

import (
	"strings"

	"habitgrid/internal/constants"
	"habitgrid/internal/models"
	"habitgrid/internal/utils"
)

// BlockForm carries the editable fields of the add/edit dialog. An empty
// BlockID means the form creates a new custom block on save; otherwise it
// patches the existing block.
type BlockForm struct {
	Date        string
	BlockID     string
	Title       string
	Clock       string // HH:MM
	DurationMin int
	Color       string
	Notes       string
}

// NewBlockForm seeds an add dialog for a date with the default field
// values: 09:00, 30 minutes, the custom-block color, empty title and notes.
func (e *Engine) NewBlockForm(date string) BlockForm {
	return BlockForm{
		Date:        date,
		Clock:       utils.MinutesToClock(constants.DialogStartMin),
		DurationMin: constants.DefaultBlockMin,
		Color:       constants.CustomBlockColor,
	}
}

// EditBlockForm seeds an edit dialog from an existing block. The second
// return is false when the block is gone.
func (e *Engine) EditBlockForm(date, blockID string) (BlockForm, bool) {
	b, ok := e.BlockAt(date, blockID)
	if !ok {
		return BlockForm{}, false
	}
	return BlockForm{
		Date:        date,
		BlockID:     b.ID,
		Title:       b.Title,
		Clock:       utils.MinutesToClock(b.StartMin),
		DurationMin: b.DurationMin,
		Color:       b.Color,
		Notes:       b.Notes,
	}, true
}

// SaveForm validates and applies the dialog. A title that trims to empty or
// an unparseable time refuses the save and reports false so the dialog can
// stay open; durations below the minimum are clamped up. On success a new
// custom block is created or the edited block's fields are patched.
func (e *Engine) SaveForm(f BlockForm) bool {
	title := strings.TrimSpace(f.Title)
	if title == "" {
		return false
	}

	startMin, err := utils.ClockToMinutes(f.Clock)
	if err != nil {
		return false
	}

	duration := f.DurationMin
	if duration < constants.MinBlockMin {
		duration = constants.MinBlockMin
	}

	color := f.Color
	if color == "" {
		color = constants.CustomBlockColor
	}

	if f.BlockID == "" {
		e.AddBlock(f.Date, models.ScheduledBlock{
			ID:          e.NewID(),
			Kind:        models.BlockKindCustom,
			Title:       title,
			StartMin:    startMin,
			DurationMin: duration,
			Color:       color,
			Notes:       f.Notes,
		})
		return true
	}

	e.PatchBlock(f.Date, f.BlockID, BlockPatch{
		Title:       &title,
		StartMin:    &startMin,
		DurationMin: &duration,
		Color:       &color,
		Notes:       &f.Notes,
	})
	return true
}

// DeleteFromForm removes the block the edit dialog is showing.
func (e *Engine) DeleteFromForm(f BlockForm) {
	if f.BlockID == "" {
		return
	}
	e.DeleteBlock(f.Date, f.BlockID)
}
