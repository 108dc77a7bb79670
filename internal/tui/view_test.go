package tui

import (
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"habitgrid/internal/engine"
	"habitgrid/internal/models"
	"habitgrid/internal/scheduler"
)

// memStore is an in-memory storage.Provider so models can be driven without
// touching disk.
type memStore struct {
	state *models.AppState
}

func (m *memStore) Init() error { return nil }

func (m *memStore) Load() (*models.AppState, error) {
	if m.state == nil {
		return nil, errors.New("load failed")
	}
	return m.state, nil
}

func (m *memStore) Save(state *models.AppState) error {
	m.state = state
	return nil
}

func (m *memStore) Close() error          { return nil }
func (m *memStore) GetConfigPath() string { return "mem" }

func newTestModel(t *testing.T) Model {
	t.Helper()
	e := engine.New(&memStore{}, scheduler.New())
	e.Now = func() time.Time {
		return time.Date(2026, 8, 24, 10, 30, 0, 0, time.Local)
	}
	e.Boot()
	return NewModel(e)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"Standup", 12, "Standup"},
		{"Weekly planning call", 12, "Weekly plan…"},
		{"Café rendezvous", 6, "Café …"},
		{"日本語のタイトル", 4, "日本語…"},
		{"ab", 1, "a"},
		{"", 5, ""},
	}
	for _, tt := range tests {
		got := truncate(tt.in, tt.n)
		if got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("truncate(%q, %d) cut mid-rune: %q", tt.in, tt.n, got)
		}
	}
}

func TestDropOnMissingBlockSetsHint(t *testing.T) {
	m := newTestModel(t)
	m.eng.StartBlockDrag(m.eng.SelectedDate(), "ghost")
	m.dragMinute = 600

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := updated.(Model)

	if got.eng.Dragging() != nil {
		t.Error("payload survived drop")
	}
	if got.hint == "" {
		t.Error("missed drop should surface a hint")
	}
}

func TestDropOnExistingBlockClearsHint(t *testing.T) {
	m := newTestModel(t)
	date := m.eng.SelectedDate()
	m.eng.AddBlock(date, models.ScheduledBlock{
		ID: "b1", Kind: models.BlockKindCustom, Title: "Call", StartMin: 540, DurationMin: 30,
	})
	m.eng.StartBlockDrag(date, "b1")
	m.dragMinute = 600
	m.hint = "Moving block"

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := updated.(Model)

	if got.hint != "" {
		t.Errorf("hint = %q, want cleared after a successful drop", got.hint)
	}
	b, ok := got.eng.BlockAt(date, "b1")
	if !ok || b.StartMin != 600 {
		t.Errorf("block = %+v (ok=%v), want StartMin 600", b, ok)
	}
}

func TestEmptyStateCopyUsesDotSeparator(t *testing.T) {
	m := newTestModel(t)

	for name, render := range map[string]func() string{
		"day":    m.viewDay,
		"habits": m.viewHabits,
	} {
		out := render()
		if strings.Contains(out, "—") {
			t.Errorf("%s view uses an em dash: %q", name, out)
		}
		if !strings.Contains(out, "·") {
			t.Errorf("%s view missing the dot separator: %q", name, out)
		}
	}
}
