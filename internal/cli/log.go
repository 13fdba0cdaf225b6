package cli

import (
	"errors"
	"fmt"

	"github.com/julianstephens/moodlog/internal/insights"
	"github.com/julianstephens/moodlog/internal/models"
)

// ErrFutureDay is returned when a command tries to record a mood ahead of today.
var ErrFutureDay = errors.New("moods can only be recorded for today or earlier")

type LogCmd struct {
	Mood   int    `arg:"" help:"Mood from 1 (very bad) to 5 (very good)."`
	Bucket string `short:"b" help:"Time of day: morning, afternoon or evening. Defaults to the current one."`
	Date   string `short:"d" help:"Day to record (YYYY-MM-DD, today, yesterday)." default:"today"`
	Note   string `short:"n" help:"Optional note."`
}

func (c *LogCmd) Run(ctx *Context) error {
	date, err := ctx.ParseDate(c.Date)
	if err != nil {
		return err
	}

	l, err := ctx.AcquireLock("log")
	if err != nil {
		return err
	}
	defer l.Release()

	sess := ctx.Session()
	bucket := sess.CurrentTimeOfDay()
	if c.Bucket != "" {
		if bucket, err = models.ParseTimeOfDay(c.Bucket); err != nil {
			return err
		}
	}

	sess.SetCurrentDate(date)
	saved, err := sess.SaveMood(models.MoodLevel(c.Mood), bucket, c.Note)
	if err != nil {
		return err
	}
	if !saved {
		return fmt.Errorf("%w (%s is in the future)", ErrFutureDay, sess.CurrentDateKey())
	}

	mood := models.MoodLevel(c.Mood)
	ctx.printf("✓ Recorded %s %s for %s %s\n",
		insights.MoodEmoji(mood), insights.MoodLabel(mood),
		sess.CurrentDateKey(), insights.TimeOfDayLabel(bucket))
	ctx.printf("  Day average: %s\n", insights.FormatAverage(sess.Engine().AverageMoodForDay(sess.CurrentDateKey())))
	return nil
}
