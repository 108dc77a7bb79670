package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"habitgrid/internal/cli"
	"habitgrid/internal/config"
	"habitgrid/internal/constants"
	"habitgrid/internal/logger"
	"habitgrid/internal/scheduler"
	"habitgrid/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"${config_path}"`
	Debug   bool   `help:"Enable verbose logging to stderr."`

	Init  cli.InitCmd  `cmd:"" help:"Initialize habitgrid storage."`
	Tui   cli.TuiCmd   `cmd:"" help:"Launch the interactive calendar." default:"1"`
	Check cli.CheckCmd `cmd:"" help:"Mark a habit done for a date."`
	Day   cli.DayCmd   `cmd:"" help:"Show the schedule for a day."`
	Week  cli.WeekCmd  `cmd:"" help:"Show the schedule for a week."`
	Month cli.MonthCmd `cmd:"" help:"Show the schedule for a month."`
	Stats cli.StatsCmd `cmd:"" help:"Show completion percentages."`
	Habit struct {
		Add     cli.HabitAddCmd     `cmd:"" help:"Add a new habit."`
		List    cli.HabitListCmd    `cmd:"" help:"List all habits."`
		Enable  cli.HabitEnableCmd  `cmd:"" help:"Reactivate a habit."`
		Disable cli.HabitDisableCmd `cmd:"" help:"Deactivate a habit."`
		Delete  cli.HabitDeleteCmd  `cmd:"" help:"Delete a habit and its history."`
	} `cmd:"" help:"Manage habits."`
	Event struct {
		Add    cli.EventAddCmd    `cmd:"" help:"Add a scheduled block."`
		Edit   cli.EventEditCmd   `cmd:"" help:"Edit a scheduled block."`
		Move   cli.EventMoveCmd   `cmd:"" help:"Move a block to another time."`
		Delete cli.EventDeleteCmd `cmd:"" help:"Delete a scheduled block."`
		List   cli.EventListCmd   `cmd:"" help:"List blocks for a date."`
	} `cmd:"" help:"Manage scheduled blocks."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit tracker and calendar time-blocking companion"),
		kong.UsageOnError(),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if CLI.Debug {
		cfg.Debug = true
	}

	if err := logger.Init(logger.Config{
		Debug:     cfg.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Storage backend follows the path extension.
	var store storage.Provider
	if strings.HasSuffix(cfg.StoragePath, ".json") {
		store = storage.NewJSONStore(cfg.StoragePath)
	} else {
		store = storage.NewSQLiteStore(cfg.StoragePath)
	}
	defer store.Close()

	sched := scheduler.New()
	sched.GridStepMin = cfg.GridStepMin

	appCtx := &cli.Context{
		Store:         store,
		Scheduler:     sched,
		DefaultHabits: cfg.DefaultHabits,
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
