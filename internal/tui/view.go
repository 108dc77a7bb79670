package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"habitgrid/internal/models"
	"habitgrid/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateEditing, StateAddHabit:
		content = m.form.View()
	case StateConfirmDeleteHabit:
		content = m.viewConfirmDelete()
	case StateHabits:
		content = m.viewHabits()
	default:
		content = m.viewCalendar()
	}

	sections := []string{m.viewHeader(), content}
	if m.hint != "" {
		sections = append(sections, hintStyle.Render(m.hint))
	}
	sections = append(sections, m.viewStats(), m.help.View(m.keys))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) viewHeader() string {
	selected, err := utils.ParseISO(m.eng.SelectedDate())
	title := m.eng.SelectedDate()
	if err == nil {
		title = utils.FormatFull(selected)
	}

	var tabs []string
	for _, v := range []models.View{models.ViewDay, models.ViewWeek, models.ViewMonth} {
		label := strings.ToUpper(string(v)[:1]) + string(v)[1:]
		if m.eng.CurrentView() == v && m.state != StateHabits {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	habitsTab := inactiveTabStyle.Render("Habits")
	if m.state == StateHabits {
		habitsTab = activeTabStyle.Render("Habits")
	}
	tabs = append(tabs, habitsTab)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
	)
}

func (m Model) viewCalendar() string {
	switch m.eng.CurrentView() {
	case models.ViewWeek:
		return m.viewWeek()
	case models.ViewMonth:
		return m.viewMonth()
	default:
		return m.viewDay()
	}
}

func (m Model) viewDay() string {
	date := m.eng.SelectedDate()
	blocks := m.eng.BlocksFor(date)
	dragging := m.eng.Dragging()

	var rows []string
	if dragging != nil {
		rows = append(rows, hintStyle.Render(
			fmt.Sprintf("▸ drop at %s", utils.MinutesToClock(m.dragMinute))))
	}
	if len(blocks) == 0 {
		rows = append(rows, dimStyle.Render("  no blocks · press 'a' to add one"))
	}
	for i, b := range blocks {
		row := fmt.Sprintf("%s–%s  %s",
			utils.MinutesToClock(b.StartMin),
			utils.MinutesToClock(b.End()),
			blockStyle(b.Color).Render(b.Title))
		if b.Kind == models.BlockKindHabit && m.eng.Checked(date, b.HabitID) {
			row += checkedStyle.Render(" ✓")
		}
		if b.Notes != "" {
			row += dimStyle.Render("  · " + b.Notes)
		}
		if i == m.blockIdx && m.state == StateCalendar && dragging == nil {
			row = selectedRowStyle.Render("> " + row)
		} else {
			row = "  " + row
		}
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n")
}

func (m Model) viewWeek() string {
	today := m.eng.Today()
	var cols []string
	for _, date := range m.eng.VisibleDates() {
		day, err := utils.ParseISO(date)
		if err != nil {
			continue
		}
		header := fmt.Sprintf("%s %s", utils.FormatWeekday(day), utils.FormatMonthDay(day))
		style := dayHeaderStyle
		if date == today {
			style = todayHeaderStyle
		}
		lines := []string{style.Render(header)}
		if date == m.eng.SelectedDate() {
			lines[0] += " •"
		}
		for _, b := range m.eng.BlocksFor(date) {
			lines = append(lines, fmt.Sprintf("%s %s",
				utils.MinutesToClock(b.StartMin),
				blockStyle(b.Color).Render(truncate(b.Title, 12))))
		}
		cols = append(cols, weekColStyle.Render(strings.Join(lines, "\n")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m Model) viewMonth() string {
	today := m.eng.Today()
	dates := m.eng.VisibleDates()

	var weeks []string
	for i := 0; i < len(dates); i += 7 {
		var cells []string
		for _, date := range dates[i : i+7] {
			day, err := utils.ParseISO(date)
			if err != nil {
				continue
			}
			label := fmt.Sprintf("%2d", day.Day())
			if date == today {
				label = todayHeaderStyle.Render(label)
			} else if date == m.eng.SelectedDate() {
				label = titleStyle.Render(label)
			}
			body := label
			if n := len(m.eng.BlocksFor(date)); n > 0 {
				body += dimStyle.Render(fmt.Sprintf("\n%d blk", n))
			}
			cells = append(cells, cellStyle.Render(body))
		}
		weeks = append(weeks, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, weeks...)
}

func (m Model) viewHabits() string {
	date := m.eng.SelectedDate()
	habits := m.eng.Habits()
	if len(habits) == 0 {
		return dimStyle.Render("No habits yet · press 'n' to add one")
	}

	var rows []string
	for i, h := range habits {
		marker := "[ ]"
		if m.eng.Checked(date, h.ID) {
			marker = checkedStyle.Render("[x]")
		}
		name := h.Name
		if !h.Active {
			name = dimStyle.Render(name + " (inactive)")
		}
		row := fmt.Sprintf("%s %s", marker, name)
		if i == m.habitIdx {
			row = selectedRowStyle.Render("> " + row)
		} else {
			row = "  " + row
		}
		rows = append(rows, row)
	}
	rows = append(rows, "", dimStyle.Render("enter: toggle check · e: activate/deactivate · p: place on timeline"))
	return strings.Join(rows, "\n")
}

func (m Model) viewConfirmDelete() string {
	name := m.habitToDelete
	if h, ok := m.eng.HabitByID(m.habitToDelete); ok {
		name = h.Name
	}
	return fmt.Sprintf(
		"Delete habit %q?\n\nThis removes all of its checks and scheduled blocks.\n\n[y] delete  [any other key] cancel",
		name)
}

func (m Model) viewStats() string {
	day := m.eng.Completion(models.ViewDay)
	week := m.eng.Completion(models.ViewWeek)
	month := m.eng.Completion(models.ViewMonth)
	return statsStyle.Render(fmt.Sprintf(
		"today %d%% (%d/%d) · week %d%% (%d/%d) · month %d%% (%d/%d)",
		day.Pct, day.Done, day.Total,
		week.Pct, week.Done, week.Total,
		month.Pct, month.Done, month.Total))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
