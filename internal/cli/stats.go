package cli

import (
	"github.com/julianstephens/moodlog/internal/query"
	"github.com/julianstephens/moodlog/internal/utils"
)

type StatsCmd struct {
	Period string `short:"p" help:"Period to summarize." enum:"week,month" default:"month"`
	Date   string `short:"d" help:"Any day in the period." default:"today"`
}

func (c *StatsCmd) Run(ctx *Context) error {
	date, err := ctx.ParseDate(c.Date)
	if err != nil {
		return err
	}

	snap := ctx.Engine.Snapshot()
	var st query.Stats
	if c.Period == "week" {
		st = snap.WeekStats(date)
		days := utils.WeekDays(date)
		ctx.printf("Week of %s - %s\n\n", days[0].Format("Jan 2"), days[6].Format("Jan 2, 2006"))
	} else {
		st = snap.MonthStats(date)
		ctx.printf("%s\n\n", utils.StartOfMonth(date).Format("January 2006"))
	}

	renderStats(ctx.Out, st, c.Period)
	if len(st.Distribution) > 0 {
		ctx.println()
		renderDistribution(ctx.Out, st.Distribution)
	}
	return nil
}
