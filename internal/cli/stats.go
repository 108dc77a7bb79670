package cli

import (
	"fmt"

	"habitgrid/internal/models"
)

type StatsCmd struct {
	Date string `arg:"" optional:"" help:"Anchor date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *StatsCmd) Run(ctx *Context) error {
	eng := ctx.Eng()
	date, err := resolveDate(eng, c.Date)
	if err != nil {
		return err
	}
	eng.SelectDate(date)

	for _, view := range []models.View{models.ViewDay, models.ViewWeek, models.ViewMonth} {
		s := eng.Completion(view)
		fmt.Printf("%-6s %3d/%-3d  %3d%%\n", view, s.Done, s.Total, s.Pct)
	}
	return nil
}
