package models

type BlockKind string

const (
	BlockKindHabit  BlockKind = "habit"
	BlockKindCustom BlockKind = "custom"
)

// ScheduledBlock is a timed entry on one date's timeline, either derived
// from a habit or freely authored.
type ScheduledBlock struct {
	ID   string    `json:"id"`
	Kind BlockKind `json:"kind"`
	// HabitID is set iff Kind is BlockKindHabit. It is a lookup key, not
	// an owning pointer: the referenced habit may already be gone.
	HabitID     string `json:"habitId,omitempty"`
	Title       string `json:"title"`
	StartMin    int    `json:"startMin"`    // minutes since midnight, 0..1439
	DurationMin int    `json:"durationMin"` // >= 5
	Color       string `json:"color"`       // hex color string
	Notes       string `json:"notes"`
}

// End returns the exclusive end of the block in minutes since midnight.
func (b ScheduledBlock) End() int {
	return b.StartMin + b.DurationMin
}

// EventTable maps ISO date to that day's blocks. Insertion order carries no
// meaning; readers re-sort by StartMin.
type EventTable map[string][]ScheduledBlock
