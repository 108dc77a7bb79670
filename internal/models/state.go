package models

type View string

const (
	ViewDay   View = "day"
	ViewWeek  View = "week"
	ViewMonth View = "month"
)

// Valid reports whether v is one of the known views.
func (v View) Valid() bool {
	return v == ViewDay || v == ViewWeek || v == ViewMonth
}

// AppState is the entire persisted unit. It is serialized and restored
// atomically; there is no partial persistence.
type AppState struct {
	Version      int         `json:"version"`
	SelectedDate string      `json:"selectedDate"` // YYYY-MM-DD
	CurrentView  View        `json:"currentView"`
	Habits       []Habit     `json:"habits"`
	Checks       ChecksTable `json:"checks"`
	Events       EventTable  `json:"events"`
}

const StateVersion = 1

const (
	minBlockDuration     = 5
	defaultBlockDuration = 30
	minutesPerDay        = 1440
)

// Normalize repairs a loaded state field by field so that a malformed or
// partial blob never propagates past the load boundary. Each field falls
// back to its default independently; today supplies the selected date when
// the stored one is unusable.
func (s *AppState) Normalize(today string, validDate func(string) bool) {
	s.Version = StateVersion
	if s.SelectedDate == "" || !validDate(s.SelectedDate) {
		s.SelectedDate = today
	}
	if !s.CurrentView.Valid() {
		s.CurrentView = ViewDay
	}
	if s.Habits == nil {
		s.Habits = []Habit{}
	}
	if s.Checks == nil {
		s.Checks = ChecksTable{}
	}
	if s.Events == nil {
		s.Events = EventTable{}
	}
	for date, checks := range s.Checks {
		if checks == nil || !validDate(date) {
			delete(s.Checks, date)
		}
	}
	for date, blocks := range s.Events {
		if !validDate(date) {
			delete(s.Events, date)
			continue
		}
		kept := blocks[:0]
		for _, b := range blocks {
			if b.ID == "" || (b.Kind != BlockKindHabit && b.Kind != BlockKindCustom) {
				continue
			}
			if b.StartMin < 0 || b.StartMin >= minutesPerDay {
				b.StartMin = 0
			}
			if b.DurationMin < minBlockDuration {
				b.DurationMin = defaultBlockDuration
			}
			kept = append(kept, b)
		}
		s.Events[date] = kept
	}
}
