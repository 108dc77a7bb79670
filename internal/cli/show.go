package cli

import (
	"fmt"

	"habitgrid/internal/models"
	"habitgrid/internal/utils"
)

// The day/week/month commands are the view read-model on the terminal:
// they anchor the engine on a date, switch the view (which runs the
// materializer for the newly visible dates), and print sorted blocks plus
// the range's completion summary.

type DayCmd struct {
	Date string `arg:"" optional:"" help:"Date to show (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *DayCmd) Run(ctx *Context) error {
	return showView(ctx, c.Date, models.ViewDay)
}

type WeekCmd struct {
	Date string `arg:"" optional:"" help:"Any date inside the week (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *WeekCmd) Run(ctx *Context) error {
	return showView(ctx, c.Date, models.ViewWeek)
}

type MonthCmd struct {
	Date string `arg:"" optional:"" help:"Any date inside the month (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *MonthCmd) Run(ctx *Context) error {
	return showView(ctx, c.Date, models.ViewMonth)
}

func showView(ctx *Context, dateArg string, view models.View) error {
	eng := ctx.Eng()
	date, err := resolveDate(eng, dateArg)
	if err != nil {
		return err
	}
	eng.SelectDate(date)
	eng.SetView(view)

	for _, d := range eng.VisibleDates() {
		day, err := utils.ParseISO(d)
		if err != nil {
			continue
		}
		if view == models.ViewMonth && len(eng.BlocksFor(d)) == 0 {
			continue
		}
		fmt.Printf("%s (%s)\n", utils.FormatFull(day), d)
		printBlocks(eng, d)
		fmt.Println()
	}

	s := eng.Completion(view)
	fmt.Printf("Completion: %d/%d (%d%%)\n", s.Done, s.Total, s.Pct)
	return nil
}
