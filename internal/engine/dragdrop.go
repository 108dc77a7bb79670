package engine

import (
	"habitgrid/internal/constants"
	"habitgrid/internal/models"
)

type DragSource string

const (
	// DragSourcePalette drags a habit template onto the timeline.
	DragSourcePalette DragSource = "palette"
	// DragSourceExisting repositions an already placed block.
	DragSourceExisting DragSource = "existing"
)

// DragPayload is the transient description of an in-flight drag. It is
// session state only and is never persisted.
type DragPayload struct {
	Source  DragSource
	HabitID string // set for palette drags
	EventID string // set for existing-block drags
	Date    string // the date the grabbed block lives on
}

// StartPaletteDrag begins dragging a habit template.
func (e *Engine) StartPaletteDrag(habitID string) {
	e.drag = &DragPayload{Source: DragSourcePalette, HabitID: habitID}
}

// StartBlockDrag begins repositioning the block with the given id on date.
// The date travels with the payload so a drop on another day can find the
// block where it was grabbed.
func (e *Engine) StartBlockDrag(date, eventID string) {
	e.drag = &DragPayload{Source: DragSourceExisting, EventID: eventID, Date: date}
}

// Dragging returns a copy of the in-flight payload, or nil.
func (e *Engine) Dragging() *DragPayload {
	if e.drag == nil {
		return nil
	}
	p := *e.drag
	return &p
}

// CancelDrag discards the in-flight payload.
func (e *Engine) CancelDrag() {
	e.drag = nil
}

// Drop resolves the in-flight payload against a time-grid cell. An existing
// block is moved to the cell's minute, crossing days when the target date
// differs from where it was grabbed; a palette habit becomes a fresh
// default-shaped block there. The payload is cleared after every attempt,
// and the return reports whether a block actually moved or was created so
// callers can tell the user when a drop landed nowhere.
func (e *Engine) Drop(date string, minute int) bool {
	payload := e.drag
	e.drag = nil
	if payload == nil {
		return false
	}

	switch payload.Source {
	case DragSourceExisting:
		if payload.Date == date {
			if _, ok := e.BlockAt(date, payload.EventID); !ok {
				return false
			}
			e.MoveBlockToTime(date, payload.EventID, minute)
			return true
		}
		block, ok := e.BlockAt(payload.Date, payload.EventID)
		if !ok {
			return false
		}
		e.DeleteBlock(payload.Date, payload.EventID)
		block.StartMin = minute
		e.AddBlock(date, block)
		return true
	case DragSourcePalette:
		habit, ok := e.HabitByID(payload.HabitID)
		if !ok {
			return false
		}
		e.AddBlock(date, models.ScheduledBlock{
			ID:          e.NewID(),
			Kind:        models.BlockKindHabit,
			HabitID:     habit.ID,
			Title:       habit.Name,
			StartMin:    minute,
			DurationMin: constants.DefaultBlockMin,
			Color:       constants.HabitBlockColor,
		})
		return true
	}
	return false
}
