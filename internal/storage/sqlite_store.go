package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"habitgrid/internal/models"
)

// SQLiteStore round-trips the same state blob as JSONStore through a
// relational layout. Save replaces the whole state in one transaction, which
// keeps the "single atomic persisted unit" contract.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

const schema = `
CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS habits (
	id       TEXT PRIMARY KEY,
	name     TEXT NOT NULL,
	active   INTEGER NOT NULL,
	position INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS checks (
	date     TEXT NOT NULL,
	habit_id TEXT NOT NULL,
	done     INTEGER NOT NULL,
	PRIMARY KEY (date, habit_id)
);
CREATE TABLE IF NOT EXISTS events (
	id           TEXT NOT NULL,
	date         TEXT NOT NULL,
	kind         TEXT NOT NULL,
	habit_id     TEXT,
	title        TEXT NOT NULL,
	start_min    INTEGER NOT NULL,
	duration_min INTEGER NOT NULL,
	color        TEXT NOT NULL,
	notes        TEXT NOT NULL,
	position     INTEGER NOT NULL,
	PRIMARY KEY (date, id)
);
`

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}
	s.db = db
	return nil
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.open()
}

func (s *SQLiteStore) Load() (*models.AppState, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil, fmt.Errorf("no stored state at %s: %w", s.path, err)
	}
	if err := s.open(); err != nil {
		return nil, err
	}

	state := &models.AppState{
		Version: models.StateVersion,
		Habits:  []models.Habit{},
		Checks:  models.ChecksTable{},
		Events:  models.EventTable{},
	}

	rows, err := s.db.Query(`SELECT key, value FROM meta`)
	if err != nil {
		return nil, fmt.Errorf("failed to read meta: %w", err)
	}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			rows.Close()
			return nil, err
		}
		switch key {
		case "selected_date":
			state.SelectedDate = value
		case "current_view":
			state.CurrentView = models.View(value)
		}
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	rows, err = s.db.Query(`SELECT id, name, active FROM habits ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to read habits: %w", err)
	}
	for rows.Next() {
		var h models.Habit
		if err := rows.Scan(&h.ID, &h.Name, &h.Active); err != nil {
			rows.Close()
			return nil, err
		}
		state.Habits = append(state.Habits, h)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	rows, err = s.db.Query(`SELECT date, habit_id, done FROM checks`)
	if err != nil {
		return nil, fmt.Errorf("failed to read checks: %w", err)
	}
	for rows.Next() {
		var date, habitID string
		var done bool
		if err := rows.Scan(&date, &habitID, &done); err != nil {
			rows.Close()
			return nil, err
		}
		if state.Checks[date] == nil {
			state.Checks[date] = models.DayChecks{}
		}
		state.Checks[date][habitID] = done
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	rows, err = s.db.Query(`SELECT id, date, kind, habit_id, title, start_min, duration_min, color, notes FROM events ORDER BY date, position`)
	if err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var b models.ScheduledBlock
		var date string
		var habitID sql.NullString
		if err := rows.Scan(&b.ID, &date, &b.Kind, &habitID, &b.Title, &b.StartMin, &b.DurationMin, &b.Color, &b.Notes); err != nil {
			return nil, err
		}
		b.HabitID = habitID.String
		state.Events[date] = append(state.Events[date], b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return state, nil
}

func (s *SQLiteStore) Save(state *models.AppState) error {
	if err := s.open(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"meta", "habits", "checks", "events"} {
		if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	metaStmt := `INSERT INTO meta (key, value) VALUES (?, ?)`
	if _, err := tx.Exec(metaStmt, "selected_date", state.SelectedDate); err != nil {
		return err
	}
	if _, err := tx.Exec(metaStmt, "current_view", string(state.CurrentView)); err != nil {
		return err
	}

	for i, h := range state.Habits {
		if _, err := tx.Exec(`INSERT INTO habits (id, name, active, position) VALUES (?, ?, ?, ?)`,
			h.ID, h.Name, h.Active, i); err != nil {
			return fmt.Errorf("failed to write habit %s: %w", h.ID, err)
		}
	}

	for date, dayChecks := range state.Checks {
		for habitID, done := range dayChecks {
			if _, err := tx.Exec(`INSERT INTO checks (date, habit_id, done) VALUES (?, ?, ?)`,
				date, habitID, done); err != nil {
				return fmt.Errorf("failed to write check %s/%s: %w", date, habitID, err)
			}
		}
	}

	for date, blocks := range state.Events {
		for i, b := range blocks {
			if _, err := tx.Exec(`INSERT INTO events (id, date, kind, habit_id, title, start_min, duration_min, color, notes, position) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				b.ID, date, string(b.Kind), b.HabitID, b.Title, b.StartMin, b.DurationMin, b.Color, b.Notes, i); err != nil {
				return fmt.Errorf("failed to write event %s: %w", b.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
