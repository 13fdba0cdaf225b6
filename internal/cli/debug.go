package cli

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/moodlog/internal/models"
	"github.com/julianstephens/moodlog/internal/utils"
)

type DebugCmd struct {
	Path    *DebugPathCmd    `cmd:"" help:"Show storage and config paths."`
	DumpDay *DebugDumpDayCmd `cmd:"" help:"Dump one day's entries as JSON."`
}

type DebugPathCmd struct{}

func (cmd *DebugPathCmd) Run(ctx *Context) error {
	// Output in machine-readable format
	output := map[string]string{
		"backend": ctx.Config.Storage.Backend,
		"storage": ctx.Store.Backend().Path(),
		"config":  ctx.ConfigPath,
		"logs":    ctx.Config.Log.Dir,
	}
	return writeJSON(ctx, output)
}

type DebugDumpDayCmd struct {
	Date string `arg:"" help:"Day to dump (YYYY-MM-DD or 'today')."`
}

// dayDump is the JSON shape of a day; empty buckets are omitted.
type dayDump struct {
	Date       string                  `json:"date"`
	Morning    *models.MoodEntry       `json:"morning,omitempty"`
	Afternoon  *models.MoodEntry       `json:"afternoon,omitempty"`
	Evening    *models.MoodEntry       `json:"evening,omitempty"`
	Reflection *models.ReflectionEntry `json:"reflection,omitempty"`
	Average    *float64                `json:"average"`
}

func (cmd *DebugDumpDayCmd) Run(ctx *Context) error {
	date, err := ctx.ParseDate(cmd.Date)
	if err != nil {
		return err
	}

	snap := ctx.Engine.Snapshot()
	key := utils.DayKey(date)
	day := snap.DailyMood(key)
	return writeJSON(ctx, dayDump{
		Date:       key,
		Morning:    day.Morning,
		Afternoon:  day.Afternoon,
		Evening:    day.Evening,
		Reflection: day.Reflection,
		Average:    snap.AverageMoodForDay(key),
	})
}

func writeJSON(ctx *Context, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	ctx.println(string(jsonBytes))
	return nil
}
