package cli

import (
	"fmt"
	"strings"

	"habitgrid/internal/engine"
	"habitgrid/internal/models"
	"habitgrid/internal/scheduler"
	"habitgrid/internal/storage"
	"habitgrid/internal/utils"
)

type Context struct {
	Store         storage.Provider
	Scheduler     *scheduler.Scheduler
	DefaultHabits []string

	eng *engine.Engine
}

// Eng returns the booted engine, loading state on first use. Init is the
// only command that touches the store without booting.
func (c *Context) Eng() *engine.Engine {
	if c.eng == nil {
		c.eng = engine.New(c.Store, c.Scheduler)
		c.eng.DefaultHabits = c.DefaultHabits
		c.eng.Boot()
	}
	return c.eng
}

// resolveDate turns a command-line date argument into an ISO date. "today"
// and the empty string mean the engine's current date.
func resolveDate(eng *engine.Engine, arg string) (string, error) {
	if arg == "" || arg == "today" {
		return eng.Today(), nil
	}
	if !utils.ValidISODate(arg) {
		return "", fmt.Errorf("invalid date %q, use YYYY-MM-DD or 'today'", arg)
	}
	return arg, nil
}

// findHabit resolves a habit by id or by case-insensitive name.
func findHabit(eng *engine.Engine, ref string) (models.Habit, error) {
	if h, ok := eng.HabitByID(ref); ok {
		return h, nil
	}
	for _, h := range eng.Habits() {
		if strings.EqualFold(h.Name, ref) {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("no habit matching %q", ref)
}

func printBlocks(eng *engine.Engine, date string) {
	blocks := eng.BlocksFor(date)
	if len(blocks) == 0 {
		fmt.Println("  no blocks")
		return
	}
	for _, b := range blocks {
		marker := " "
		if b.Kind == models.BlockKindHabit && eng.Checked(date, b.HabitID) {
			marker = "x"
		}
		fmt.Printf("  [%s] %s–%s  %-30s  (%s)\n",
			marker,
			utils.MinutesToClock(b.StartMin),
			utils.MinutesToClock(b.End()),
			b.Title,
			b.Kind)
		if b.Notes != "" {
			fmt.Printf("               %s\n", b.Notes)
		}
	}
}
