package cli

import (
	"fmt"

	"habitgrid/internal/utils"
)

type EventAddCmd struct {
	Title    string `arg:"" help:"Event title."`
	Date     string `short:"d" help:"Date (YYYY-MM-DD), defaults to today." default:"today"`
	Time     string `short:"t" help:"Start time (HH:MM)." default:"09:00"`
	Duration int    `short:"D" help:"Duration in minutes." default:"30"`
	Color    string `short:"c" help:"Hex color."`
	Notes    string `short:"n" help:"Free-text notes."`
}

func (c *EventAddCmd) Run(ctx *Context) error {
	eng := ctx.Eng()
	date, err := resolveDate(eng, c.Date)
	if err != nil {
		return err
	}

	form := eng.NewBlockForm(date)
	form.Title = c.Title
	form.Clock = c.Time
	form.DurationMin = c.Duration
	if c.Color != "" {
		form.Color = c.Color
	}
	form.Notes = c.Notes

	if !eng.SaveForm(form) {
		return fmt.Errorf("event not saved: title must be non-empty and time must be HH:MM")
	}
	fmt.Printf("Added event %q on %s at %s\n", c.Title, date, c.Time)
	return nil
}

type EventEditCmd struct {
	ID       string  `arg:"" help:"Block id."`
	Date     string  `short:"d" help:"Date the block lives on, defaults to today." default:"today"`
	Title    *string `help:"New title."`
	Time     *string `short:"t" help:"New start time (HH:MM)."`
	Duration *int    `short:"D" help:"New duration in minutes."`
	Color    *string `short:"c" help:"New hex color."`
	Notes    *string `short:"n" help:"New notes."`
}

func (c *EventEditCmd) Run(ctx *Context) error {
	eng := ctx.Eng()
	date, err := resolveDate(eng, c.Date)
	if err != nil {
		return err
	}

	form, ok := eng.EditBlockForm(date, c.ID)
	if !ok {
		return fmt.Errorf("no block %s on %s", c.ID, date)
	}
	if c.Title != nil {
		form.Title = *c.Title
	}
	if c.Time != nil {
		form.Clock = *c.Time
	}
	if c.Duration != nil {
		form.DurationMin = *c.Duration
	}
	if c.Color != nil {
		form.Color = *c.Color
	}
	if c.Notes != nil {
		form.Notes = *c.Notes
	}

	if !eng.SaveForm(form) {
		return fmt.Errorf("event not saved: title must be non-empty and time must be HH:MM")
	}
	fmt.Printf("Updated event %s\n", c.ID)
	return nil
}

type EventMoveCmd struct {
	ID   string `arg:"" help:"Block id."`
	Time string `arg:"" help:"New start time (HH:MM)."`
	Date string `short:"d" help:"Date the block lives on, defaults to today." default:"today"`
}

func (c *EventMoveCmd) Run(ctx *Context) error {
	eng := ctx.Eng()
	date, err := resolveDate(eng, c.Date)
	if err != nil {
		return err
	}
	minute, err := utils.ClockToMinutes(c.Time)
	if err != nil {
		return err
	}
	if _, ok := eng.BlockAt(date, c.ID); !ok {
		return fmt.Errorf("no block %s on %s", c.ID, date)
	}
	eng.MoveBlockToTime(date, c.ID, minute)
	fmt.Printf("Moved event %s to %s\n", c.ID, c.Time)
	return nil
}

type EventDeleteCmd struct {
	ID   string `arg:"" help:"Block id."`
	Date string `short:"d" help:"Date the block lives on, defaults to today." default:"today"`
}

func (c *EventDeleteCmd) Run(ctx *Context) error {
	eng := ctx.Eng()
	date, err := resolveDate(eng, c.Date)
	if err != nil {
		return err
	}
	if _, ok := eng.BlockAt(date, c.ID); !ok {
		return fmt.Errorf("no block %s on %s", c.ID, date)
	}
	eng.DeleteBlock(date, c.ID)
	fmt.Printf("Deleted event %s\n", c.ID)
	return nil
}

type EventListCmd struct {
	Date string `arg:"" optional:"" help:"Date (YYYY-MM-DD), defaults to today." default:"today"`
}

func (c *EventListCmd) Run(ctx *Context) error {
	eng := ctx.Eng()
	date, err := resolveDate(eng, c.Date)
	if err != nil {
		return err
	}
	for _, b := range eng.BlocksFor(date) {
		fmt.Printf("%s  %s–%s  %-30s  %s\n",
			b.ID,
			utils.MinutesToClock(b.StartMin),
			utils.MinutesToClock(b.End()),
			b.Title,
			b.Kind)
	}
	return nil
}
