package main

import (
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/moodlog/internal/cli"
	"github.com/julianstephens/moodlog/internal/config"
	"github.com/julianstephens/moodlog/internal/constants"
	"github.com/julianstephens/moodlog/internal/errors"
	"github.com/julianstephens/moodlog/internal/logger"
	"github.com/julianstephens/moodlog/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"string" default:"~/.config/moodlog/config.yaml"`
	Backend string `help:"Storage backend: json, sqlite or badger. Overrides the config file."`
	Path    string `help:"Storage file (json, sqlite) or directory (badger). Overrides the config file."`
	Debug   bool   `help:"Log at debug level and mirror logs to stderr."`

	Init     cli.InitCmd    `cmd:"" help:"Write the config file and initialize storage."`
	Tui      cli.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Log      cli.LogCmd     `cmd:"" help:"Record a mood for a day and time of day."`
	Reflect  cli.ReflectCmd `cmd:"" help:"Record the evening reflection for a day."`
	Day      cli.DayCmd     `cmd:"" help:"Show one day's moods and reflection."`
	Week     cli.WeekCmd    `cmd:"" help:"Show a week with its statistics."`
	Month    cli.MonthCmd   `cmd:"" help:"Show a month calendar with its statistics."`
	Stats    cli.StatsCmd   `cmd:"" help:"Summarize a week or month."`
	Doctor   cli.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	DebugCmd cli.DebugCmd   `cmd:"" name:"debug" help:"Debug commands for troubleshooting."`
	Backup   struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage journal backups."`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Mood journal: three check-ins a day, an evening reflection and trends over time"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}
	if err := cfg.ApplyFlags(CLI.Backend, CLI.Path, CLI.Debug); err != nil {
		errors.Fatal(err)
	}

	if err := logger.Init(logger.Config{
		Debug:      cfg.Log.Debug,
		Dir:        cfg.Log.Dir,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	}); err != nil {
		errors.Fatal(err)
	}

	loc, err := cfg.Location()
	if err != nil {
		errors.Fatal(err)
	}

	store, err := storage.Open(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		errors.Fatal(err)
	}

	configPath, err := config.ExpandHome(CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}
	appCtx := cli.NewContext(cfg, filepath.Clean(configPath), store, loc)

	err = kctx.Run(appCtx)
	if closeErr := store.Backend().Close(); closeErr != nil {
		logger.Warn("failed to close storage", "error", closeErr)
	}
	errors.Fatal(err)
}
