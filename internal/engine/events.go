package engine

import (
	"sort"

	"habitgrid/internal/models"
)

// BlocksFor returns the date's blocks sorted ascending by start time. The
// sort is stable, so blocks sharing a start keep their insertion order. The
// stored collection is never reordered; ordering is a read-time concern.
func (e *Engine) BlocksFor(date string) []models.ScheduledBlock {
	blocks := append([]models.ScheduledBlock(nil), e.state.Events[date]...)
	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].StartMin < blocks[j].StartMin
	})
	return blocks
}

// BlockAt finds a block by id on a date.
func (e *Engine) BlockAt(date, blockID string) (models.ScheduledBlock, bool) {
	for _, b := range e.state.Events[date] {
		if b.ID == blockID {
			return b, true
		}
	}
	return models.ScheduledBlock{}, false
}

// AddBlock appends a fully populated block to a date. The caller supplies
// the id; overlap with existing blocks is allowed and expected.
func (e *Engine) AddBlock(date string, block models.ScheduledBlock) {
	e.state.Events[date] = append(e.state.Events[date], block)
	e.persist()
}

// BlockPatch is a partial update; nil fields are left unchanged.
type BlockPatch struct {
	Title       *string
	StartMin    *int
	DurationMin *int
	Color       *string
	Notes       *string
}

// PatchBlock merges the patch into the matching block. Unknown ids are a
// silent no-op.
func (e *Engine) PatchBlock(date, blockID string, patch BlockPatch) {
	blocks := e.state.Events[date]
	for i := range blocks {
		if blocks[i].ID != blockID {
			continue
		}
		if patch.Title != nil {
			blocks[i].Title = *patch.Title
		}
		if patch.StartMin != nil {
			blocks[i].StartMin = *patch.StartMin
		}
		if patch.DurationMin != nil {
			blocks[i].DurationMin = *patch.DurationMin
		}
		if patch.Color != nil {
			blocks[i].Color = *patch.Color
		}
		if patch.Notes != nil {
			blocks[i].Notes = *patch.Notes
		}
		e.persist()
		return
	}
}

// DeleteBlock removes the matching block. Unknown ids are a silent no-op.
func (e *Engine) DeleteBlock(date, blockID string) {
	blocks := e.state.Events[date]
	for i := range blocks {
		if blocks[i].ID != blockID {
			continue
		}
		e.state.Events[date] = append(blocks[:i], blocks[i+1:]...)
		if len(e.state.Events[date]) == 0 {
			delete(e.state.Events, date)
		}
		e.persist()
		return
	}
}

// MoveBlockToTime repositions a block on its day's time grid, leaving every
// other field untouched.
func (e *Engine) MoveBlockToTime(date, blockID string, newStartMin int) {
	e.PatchBlock(date, blockID, BlockPatch{StartMin: &newStartMin})
}
