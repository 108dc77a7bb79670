package stats

import (
	"testing"

	"habitgrid/internal/models"
)

func TestCompletion(t *testing.T) {
	habitA := models.Habit{ID: "a", Name: "Exercise", Active: true}
	habitB := models.Habit{ID: "b", Name: "Read", Active: true}

	tests := []struct {
		name   string
		start  string
		end    string
		habits []models.Habit
		checks models.ChecksTable
		want   Summary
	}{
		{
			name:   "one habit fully checked over three days",
			start:  "2026-08-24",
			end:    "2026-08-26",
			habits: []models.Habit{habitA, habitB},
			checks: models.ChecksTable{
				"2026-08-24": {"a": true},
				"2026-08-25": {"a": true},
				"2026-08-26": {"a": true},
			},
			want: Summary{Done: 3, Total: 6, Pct: 50},
		},
		{
			name:   "no active habits yields all zeros",
			start:  "2026-08-24",
			end:    "2026-08-30",
			habits: nil,
			checks: models.ChecksTable{"2026-08-24": {"a": true}},
			want:   Summary{},
		},
		{
			name:   "empty checks table",
			start:  "2026-08-24",
			end:    "2026-08-24",
			habits: []models.Habit{habitA},
			checks: models.ChecksTable{},
			want:   Summary{Done: 0, Total: 1, Pct: 0},
		},
		{
			name:   "false entries do not count",
			start:  "2026-08-24",
			end:    "2026-08-24",
			habits: []models.Habit{habitA, habitB},
			checks: models.ChecksTable{
				"2026-08-24": {"a": true, "b": false},
			},
			want: Summary{Done: 1, Total: 2, Pct: 50},
		},
		{
			name:   "checks for inactive habits are ignored",
			start:  "2026-08-24",
			end:    "2026-08-24",
			habits: []models.Habit{habitA},
			checks: models.ChecksTable{
				"2026-08-24": {"a": true, "ghost": true},
			},
			want: Summary{Done: 1, Total: 1, Pct: 100},
		},
		{
			name:   "rounding to nearest percent",
			start:  "2026-08-24",
			end:    "2026-08-26",
			habits: []models.Habit{habitA},
			checks: models.ChecksTable{
				"2026-08-24": {"a": true},
			},
			want: Summary{Done: 1, Total: 3, Pct: 33},
		},
		{
			name:   "full week all done",
			start:  "2026-08-24",
			end:    "2026-08-30",
			habits: []models.Habit{habitA},
			checks: models.ChecksTable{
				"2026-08-24": {"a": true},
				"2026-08-25": {"a": true},
				"2026-08-26": {"a": true},
				"2026-08-27": {"a": true},
				"2026-08-28": {"a": true},
				"2026-08-29": {"a": true},
				"2026-08-30": {"a": true},
			},
			want: Summary{Done: 7, Total: 7, Pct: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Completion(tt.start, tt.end, tt.habits, tt.checks)
			if err != nil {
				t.Fatalf("Completion failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Completion = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCompletionBadRange(t *testing.T) {
	if _, err := Completion("garbage", "2026-08-24", nil, nil); err == nil {
		t.Error("expected error for malformed start date")
	}
}
