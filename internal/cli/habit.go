package cli

import (
	"fmt"
	"strings"
)

type HabitAddCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	h := ctx.Eng().AddHabit(c.Name)
	if h == nil {
		return fmt.Errorf("habit name must not be empty")
	}
	fmt.Printf("Added habit: %s (ID: %s)\n", h.Name, h.ID)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	eng := ctx.Eng()
	habits := eng.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits yet. Add one with 'habitgrid habit add <name>'.")
		return nil
	}
	today := eng.Today()
	for _, h := range habits {
		status := "active"
		if !h.Active {
			status = "inactive"
		}
		marker := " "
		if eng.Checked(today, h.ID) {
			marker = "x"
		}
		fmt.Printf("[%s] %-25s %-8s %s\n", marker, h.Name, status, h.ID)
	}
	return nil
}

type HabitEnableCmd struct {
	Habit string `arg:"" help:"Habit id or name."`
}

func (c *HabitEnableCmd) Run(ctx *Context) error {
	return setActive(ctx, c.Habit, true)
}

type HabitDisableCmd struct {
	Habit string `arg:"" help:"Habit id or name."`
}

func (c *HabitDisableCmd) Run(ctx *Context) error {
	return setActive(ctx, c.Habit, false)
}

func setActive(ctx *Context, ref string, active bool) error {
	eng := ctx.Eng()
	h, err := findHabit(eng, ref)
	if err != nil {
		return err
	}
	eng.SetHabitActive(h.ID, active)
	verb := "Enabled"
	if !active {
		verb = "Disabled"
	}
	fmt.Printf("%s habit: %s\n", verb, h.Name)
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit id or name."`
	Yes   bool   `short:"y" help:"Skip confirmation."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	eng := ctx.Eng()
	h, err := findHabit(eng, c.Habit)
	if err != nil {
		return err
	}
	if !c.Yes {
		fmt.Printf("Delete habit %q and all of its checks and scheduled blocks? [y/N] ", h.Name)
		var answer string
		fmt.Scanln(&answer)
		if !strings.EqualFold(strings.TrimSpace(answer), "y") {
			fmt.Println("Aborted.")
			return nil
		}
	}
	eng.DeleteHabit(h.ID)
	fmt.Printf("Deleted habit: %s\n", h.Name)
	return nil
}

type CheckCmd struct {
	Habit string `arg:"" help:"Habit id or name."`
	Date  string `arg:"" optional:"" help:"Date (YYYY-MM-DD), defaults to today." default:"today"`
	Undo  bool   `short:"u" help:"Clear the check instead of setting it."`
}

func (c *CheckCmd) Run(ctx *Context) error {
	eng := ctx.Eng()
	h, err := findHabit(eng, c.Habit)
	if err != nil {
		return err
	}
	date, err := resolveDate(eng, c.Date)
	if err != nil {
		return err
	}
	eng.SetCheck(date, h.ID, !c.Undo)
	if c.Undo {
		fmt.Printf("Unchecked %s on %s\n", h.Name, date)
	} else {
		fmt.Printf("Checked %s on %s\n", h.Name, date)
	}
	return nil
}
