package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/tradebook"
	"github.com/etnz/tradebook/renderer"
	"github.com/google/subcommands"
)

type statsCmd struct {
	period string
}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "display profits and the revenue chart" }
func (*statsCmd) Usage() string {
	return `tb stats [-p <period>]

  Displays the week, month and year to date profits, the month to date
  profit of each company and the revenue chart of the period.

  Periods are weekly (the last 12 weeks), monthly (the last 12 months) and
  yearly (the last 5 years). On a narrow viewport the monthly chart shows
  only the last 8 months.
`
}

func (c *statsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", tradebook.Weekly.String(), "Chart period (weekly, monthly, yearly)")
}

func (c *statsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := tradebook.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	a, log, err := newApp()
	if err != nil {
		return status(err)
	}
	defer log.Sync()
	defer a.Notifier.Stop()

	if err := a.ChangePeriod(ctx, period); err != nil {
		return status(err)
	}
	v := a.View(viewport())
	fmt.Fprintln(stdout, renderer.PanelText(v.Panel))
	fmt.Fprintln(stdout)
	if len(v.Companies) > 0 {
		printMarkdown(renderer.StatisticsMarkdown(v))
	}
	fmt.Fprint(stdout, renderer.Plot(v.Chart))
	return subcommands.ExitSuccess
}
