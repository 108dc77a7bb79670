package models

// Habit is a recurring practice tracked daily.
type Habit struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// DayChecks maps habit id to whether that habit was completed on a day.
// A missing entry means "not checked".
type DayChecks map[string]bool

// ChecksTable maps ISO date (YYYY-MM-DD) to that day's checks.
type ChecksTable map[string]DayChecks
