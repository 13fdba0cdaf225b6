package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/moodlog/internal/insights"
	"github.com/julianstephens/moodlog/internal/models"
	"github.com/julianstephens/moodlog/internal/utils"
)

type DayCmd struct {
	Date string `arg:"" optional:"" help:"Day to show (YYYY-MM-DD, today, yesterday)." default:"today"`
}

func (c *DayCmd) Run(ctx *Context) error {
	date, err := ctx.ParseDate(c.Date)
	if err != nil {
		return err
	}

	snap := ctx.Engine.Snapshot()
	key := utils.DayKey(date)
	ctx.println(date.Format(dayHeaderFormat))
	renderDay(ctx.Out, snap.DailyMood(key), snap.AverageMoodForDay(key))
	return nil
}

type WeekCmd struct {
	Date string `arg:"" optional:"" help:"Any day in the week to show." default:"today"`
}

func (c *WeekCmd) Run(ctx *Context) error {
	date, err := ctx.ParseDate(c.Date)
	if err != nil {
		return err
	}

	snap := ctx.Engine.Snapshot()
	days := utils.WeekDays(date)
	ctx.printf("Week of %s - %s\n\n", days[0].Format("Jan 2"), days[6].Format("Jan 2, 2006"))
	ctx.printf("  %-10s %-4s %-4s %-4s %-5s %s\n", "", "AM", "PM", "EVE", "AVG", "REFL")

	for _, d := range days {
		key := utils.DayKey(d)
		day := snap.DailyMood(key)
		cells := make([]string, 0, len(models.TimesOfDay))
		for _, tod := range models.TimesOfDay {
			if e := day.Slot(tod); e != nil {
				cells = append(cells, insights.MoodEmoji(e.Mood))
			} else {
				cells = append(cells, "·")
			}
		}
		refl := " "
		if day.Reflection != nil && day.Reflection.Completed {
			refl = "✓"
		}
		ctx.printf("  %-10s %-4s %-4s %-4s %-5s %s\n", d.Format("Mon 01-02"),
			cells[0], cells[1], cells[2], insights.FormatAverage(snap.AverageMoodForDay(key)), refl)
	}

	ctx.println()
	renderStats(ctx.Out, snap.WeekStats(date), "week")
	return nil
}

type MonthCmd struct {
	Date string `arg:"" optional:"" help:"Any day in the month to show." default:"today"`
}

func (c *MonthCmd) Run(ctx *Context) error {
	date, err := ctx.ParseDate(c.Date)
	if err != nil {
		return err
	}

	snap := ctx.Engine.Snapshot()
	cal := snap.CalendarGrid(date)

	ctx.println(cal.Month.Format("January 2006"))
	ctx.println()
	ctx.printf("  %-4s%s\n", "Wk", "Sun   Mon   Tue   Wed   Thu   Fri   Sat")
	for _, week := range cal.Weeks {
		var b strings.Builder
		for _, day := range week.Days {
			if !day.InMonth {
				b.WriteString("      ")
				continue
			}
			b.WriteString(fmt.Sprintf("%2d%-4s", day.Day, averageEmoji(day.Average)))
		}
		ctx.printf("  %-4d%s\n", week.Number, strings.TrimRight(b.String(), " "))
	}

	ctx.println()
	renderStats(ctx.Out, snap.MonthStats(date), "month")
	return nil
}
