package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/huh"

	"habitgrid/internal/constants"
	"habitgrid/internal/engine"
)

type SessionState int

const (
	StateCalendar SessionState = iota
	StateHabits
	StateEditing
	StateAddHabit
	StateConfirmDeleteHabit
)

// blockFormValues backs the huh inputs for the add/edit dialog. huh binds
// strings; conversion to engine.BlockForm happens on submit.
type blockFormValues struct {
	Title    string
	Clock    string
	Duration string
	Color    string
	Notes    string
}

type Model struct {
	eng   *engine.Engine
	state SessionState
	keys  KeyMap
	help  help.Model

	width    int
	height   int
	quitting bool
	hint     string

	// Calendar panel
	blockIdx   int // cursor within the selected date's sorted blocks
	dragMinute int // target minute while a drag payload is in flight

	// Habits panel
	habitIdx int

	// Dialogs
	form          *huh.Form
	formValues    *blockFormValues
	editingDate   string
	editingBlock  string // empty while adding
	habitName     string
	habitToDelete string
}

func NewModel(eng *engine.Engine) Model {
	return Model{
		eng:        eng,
		state:      StateCalendar,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		dragMinute: constants.DayStartMin,
	}
}
