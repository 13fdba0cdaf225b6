package cli

import (
	"github.com/julianstephens/moodlog/internal/tui"
)

type ReflectCmd struct {
	Skip bool   `help:"Record the reflection as not completed."`
	Note string `short:"n" help:"Reflection notes."`
	Date string `short:"d" help:"Day of the reflection (YYYY-MM-DD, today, yesterday)." default:"today"`
	Form bool   `short:"f" help:"Fill in the reflection interactively."`
}

func (c *ReflectCmd) Run(ctx *Context) error {
	date, err := ctx.ParseDate(c.Date)
	if err != nil {
		return err
	}

	completed := !c.Skip
	notes := c.Note
	if c.Form {
		if err := tui.ReflectionForm(&completed, &notes).Run(); err != nil {
			return err
		}
	}

	l, err := ctx.AcquireLock("reflect")
	if err != nil {
		return err
	}
	defer l.Release()

	sess := ctx.Session()
	sess.SetCurrentDate(date)
	if err := sess.SaveReflection(completed, notes); err != nil {
		return err
	}

	if completed {
		ctx.printf("✓ Reflection completed for %s\n", sess.CurrentDateKey())
	} else {
		ctx.printf("Reflection for %s marked as skipped\n", sess.CurrentDateKey())
	}
	return nil
}
