package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"habitgrid/internal/constants"
	"habitgrid/internal/models"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case StateEditing:
			return m.updateBlockDialog(msg)
		case StateAddHabit:
			return m.updateHabitDialog(msg)
		case StateConfirmDeleteHabit:
			return m.updateConfirmDelete(msg)
		case StateHabits:
			return m.updateHabits(msg)
		default:
			return m.updateCalendar(msg)
		}
	}

	return m, nil
}

func (m Model) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.eng.Dragging() != nil {
		return m.updateDrag(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Tab):
		m.state = StateHabits
	case key.Matches(msg, m.keys.DayView):
		m.eng.SetView(models.ViewDay)
		m.blockIdx = 0
	case key.Matches(msg, m.keys.WeekView):
		m.eng.SetView(models.ViewWeek)
		m.blockIdx = 0
	case key.Matches(msg, m.keys.MonthVw):
		m.eng.SetView(models.ViewMonth)
		m.blockIdx = 0
	case key.Matches(msg, m.keys.Prev):
		m.eng.Prev()
		m.blockIdx = 0
	case key.Matches(msg, m.keys.Next):
		m.eng.Next()
		m.blockIdx = 0
	case key.Matches(msg, m.keys.Today):
		m.eng.GoToToday()
		m.blockIdx = 0
	case key.Matches(msg, m.keys.Up):
		if m.blockIdx > 0 {
			m.blockIdx--
		}
	case key.Matches(msg, m.keys.Down):
		if m.blockIdx < len(m.selectedBlocks())-1 {
			m.blockIdx++
		}
	case key.Matches(msg, m.keys.Add):
		m.openAddDialog(m.eng.SelectedDate())
	case key.Matches(msg, m.keys.Edit):
		if b, ok := m.cursorBlock(); ok {
			m.openEditDialog(m.eng.SelectedDate(), b.ID)
		}
	case key.Matches(msg, m.keys.Delete):
		if b, ok := m.cursorBlock(); ok {
			m.eng.DeleteBlock(m.eng.SelectedDate(), b.ID)
			if m.blockIdx > 0 {
				m.blockIdx--
			}
		}
	case key.Matches(msg, m.keys.Enter):
		if b, ok := m.cursorBlock(); ok {
			m.eng.StartBlockDrag(m.eng.SelectedDate(), b.ID)
			m.dragMinute = b.StartMin
			m.hint = "Moving block: ↑/↓ shift time, ←/→ change day, enter to drop, esc to cancel"
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// updateDrag handles keys while a drag payload is in flight: the cursor
// rides the time grid until the drop.
func (m Model) updateDrag(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	step := constants.GridStepMin
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.dragMinute-step >= 0 {
			m.dragMinute -= step
		}
	case key.Matches(msg, m.keys.Down):
		if m.dragMinute+step < constants.MinutesPerDay {
			m.dragMinute += step
		}
	case key.Matches(msg, m.keys.Prev):
		m.eng.Prev()
	case key.Matches(msg, m.keys.Next):
		m.eng.Next()
	case key.Matches(msg, m.keys.Enter):
		if m.eng.Drop(m.eng.SelectedDate(), m.dragMinute) {
			m.hint = ""
		} else {
			m.hint = "Nothing dropped · the grabbed block is gone"
		}
		m.blockIdx = 0
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Quit):
		m.eng.CancelDrag()
		m.hint = ""
	}
	return m, nil
}

func (m Model) updateHabits(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	habits := m.eng.Habits()
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.Cancel):
		m.state = StateCalendar
	case key.Matches(msg, m.keys.Up):
		if m.habitIdx > 0 {
			m.habitIdx--
		}
	case key.Matches(msg, m.keys.Down):
		if m.habitIdx < len(habits)-1 {
			m.habitIdx++
		}
	case key.Matches(msg, m.keys.Enter):
		if m.habitIdx < len(habits) {
			m.eng.ToggleCheck(m.eng.SelectedDate(), habits[m.habitIdx].ID)
		}
	case key.Matches(msg, m.keys.Edit):
		if m.habitIdx < len(habits) {
			h := habits[m.habitIdx]
			m.eng.SetHabitActive(h.ID, !h.Active)
		}
	case key.Matches(msg, m.keys.NewHabit):
		m.habitName = ""
		m.form = newHabitForm(&m.habitName)
		m.state = StateAddHabit
	case key.Matches(msg, m.keys.DelHabit):
		if m.habitIdx < len(habits) {
			m.habitToDelete = habits[m.habitIdx].ID
			m.state = StateConfirmDeleteHabit
		}
	case key.Matches(msg, m.keys.Place):
		if m.habitIdx < len(habits) {
			m.eng.StartPaletteDrag(habits[m.habitIdx].ID)
			m.dragMinute = constants.DayStartMin
			m.state = StateCalendar
			m.hint = "Placing habit: ↑/↓ pick time, ←/→ change day, enter to drop, esc to cancel"
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) updateBlockDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.submitBlockForm()
		return m, nil
	case huh.StateAborted:
		m.form = nil
		m.hint = ""
		m.state = StateCalendar
		return m, nil
	}
	return m, cmd
}

func (m Model) updateHabitDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.eng.AddHabit(m.habitName)
		m.form = nil
		m.state = StateHabits
		return m, nil
	case huh.StateAborted:
		m.form = nil
		m.state = StateHabits
		return m, nil
	}
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		m.eng.DeleteHabit(m.habitToDelete)
		if m.habitIdx > 0 {
			m.habitIdx--
		}
	}
	m.habitToDelete = ""
	m.state = StateHabits
	return m, nil
}

func (m Model) selectedBlocks() []models.ScheduledBlock {
	return m.eng.BlocksFor(m.eng.SelectedDate())
}

func (m Model) cursorBlock() (models.ScheduledBlock, bool) {
	blocks := m.selectedBlocks()
	if m.blockIdx < 0 || m.blockIdx >= len(blocks) {
		return models.ScheduledBlock{}, false
	}
	return blocks[m.blockIdx], true
}
