package constants

const (
	AppName           = "habitgrid"
	DefaultConfigPath = "~/.config/habitgrid/config.yaml"
	Version           = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// GridStepMin is the minute granularity blocks snap to during auto-placement.
	GridStepMin = 15

	// DayStartMin is where auto-placement begins on an empty day (08:00).
	DayStartMin = 480

	// DialogStartMin is the seeded start time for a fresh add-event dialog (09:00).
	DialogStartMin = 540

	// DefaultBlockMin and MinBlockMin bound block durations.
	DefaultBlockMin = 30
	MinBlockMin     = 5

	// MinutesPerDay bounds StartMin: valid values are 0..MinutesPerDay-1.
	MinutesPerDay = 1440

	// HabitBlockColor and CustomBlockColor are the per-kind default colors.
	HabitBlockColor  = "#90ee90"
	CustomBlockColor = "#add8e6"
)

// DefaultHabitNames seed a brand-new store when no persisted state exists.
var DefaultHabitNames = []string{"Exercise", "Read", "Meditate"}
