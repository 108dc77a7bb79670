package engine

import (
	"testing"

	"habitgrid/internal/models"
)

func TestVisibleDates(t *testing.T) {
	e, _ := newTestEngine(t) // anchored on Monday 2026-08-24

	tests := []struct {
		view      models.View
		wantLen   int
		wantFirst string
		wantLast  string
	}{
		{models.ViewDay, 1, "2026-08-24", "2026-08-24"},
		{models.ViewWeek, 7, "2026-08-24", "2026-08-30"},
		// Aug 2026 grid: Mon Jul 27 through Sun Sep 6.
		{models.ViewMonth, 42, "2026-07-27", "2026-09-06"},
	}
	for _, tt := range tests {
		t.Run(string(tt.view), func(t *testing.T) {
			e.SetView(tt.view)
			dates := e.VisibleDates()
			if len(dates) != tt.wantLen {
				t.Fatalf("got %d dates, want %d", len(dates), tt.wantLen)
			}
			if len(dates)%7 != 0 && tt.view != models.ViewDay {
				t.Errorf("date count %d not a multiple of 7", len(dates))
			}
			if dates[0] != tt.wantFirst || dates[len(dates)-1] != tt.wantLast {
				t.Errorf("range %s..%s, want %s..%s",
					dates[0], dates[len(dates)-1], tt.wantFirst, tt.wantLast)
			}
		})
	}
}

func TestViewSwitchMaterializesNewDates(t *testing.T) {
	e, _ := newTestEngine(t)

	// Day view boot only materialized today.
	if len(e.BlocksFor("2026-08-25")) != 0 {
		t.Fatal("tomorrow already has blocks in day view")
	}

	e.SetView(models.ViewWeek)

	for _, date := range e.VisibleDates() {
		if got := len(e.BlocksFor(date)); got != 2 {
			t.Errorf("%s has %d habit blocks after week switch, want 2", date, got)
		}
	}
}

func TestViewSwitchDoesNotTouchData(t *testing.T) {
	e, _ := newTestEngine(t)
	e.SetCheck("2026-08-24", "h1", true)
	habitsBefore := len(e.Habits())
	blocksBefore := len(e.BlocksFor("2026-08-24"))

	e.SetView(models.ViewMonth)
	e.SetView(models.ViewDay)

	if len(e.Habits()) != habitsBefore {
		t.Error("view switch changed the registry")
	}
	if len(e.BlocksFor("2026-08-24")) != blocksBefore {
		t.Error("view switch changed today's blocks")
	}
	if !e.Checked("2026-08-24", "h1") {
		t.Error("view switch lost a check")
	}
	if e.SetView("sideways"); e.CurrentView() != models.ViewDay {
		t.Error("invalid view was accepted")
	}
}

func TestNavigation(t *testing.T) {
	tests := []struct {
		name     string
		view     models.View
		forward  bool
		wantDate string
	}{
		{"day next", models.ViewDay, true, "2026-08-25"},
		{"day prev", models.ViewDay, false, "2026-08-23"},
		{"week next", models.ViewWeek, true, "2026-08-31"},
		{"week prev", models.ViewWeek, false, "2026-08-17"},
		{"month next", models.ViewMonth, true, "2026-09-24"},
		{"month prev", models.ViewMonth, false, "2026-07-24"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEngine(t)
			e.SetView(tt.view)
			if tt.forward {
				e.Next()
			} else {
				e.Prev()
			}
			if e.SelectedDate() != tt.wantDate {
				t.Errorf("selected = %s, want %s", e.SelectedDate(), tt.wantDate)
			}
			if e.CurrentView() != tt.view {
				t.Errorf("navigation changed view to %s", e.CurrentView())
			}
		})
	}
}

func TestGoToToday(t *testing.T) {
	e, _ := newTestEngine(t)
	e.SelectDate("2026-01-15")
	e.GoToToday()
	if e.SelectedDate() != "2026-08-24" {
		t.Errorf("selected = %s, want today", e.SelectedDate())
	}
}

func TestSelectDateRejectsInvalid(t *testing.T) {
	e, _ := newTestEngine(t)
	e.SelectDate("not-a-date")
	if e.SelectedDate() != "2026-08-24" {
		t.Errorf("invalid date was accepted: %s", e.SelectedDate())
	}
}

func TestCompletionPerView(t *testing.T) {
	e, _ := newTestEngine(t)
	// h1 checked every day of the week, h2 never.
	for _, date := range []string{
		"2026-08-24", "2026-08-25", "2026-08-26", "2026-08-27",
		"2026-08-28", "2026-08-29", "2026-08-30",
	} {
		e.SetCheck(date, "h1", true)
	}

	day := e.Completion(models.ViewDay)
	if day.Done != 1 || day.Total != 2 || day.Pct != 50 {
		t.Errorf("day completion = %+v", day)
	}
	week := e.Completion(models.ViewWeek)
	if week.Done != 7 || week.Total != 14 || week.Pct != 50 {
		t.Errorf("week completion = %+v", week)
	}
	month := e.Completion(models.ViewMonth)
	// August has 31 days and 2 active habits.
	if month.Total != 62 || month.Done != 7 {
		t.Errorf("month completion = %+v", month)
	}
}
