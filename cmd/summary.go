package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type summaryCmd struct {
	name string
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show portfolio totals as of a date" }
func (*summaryCmd) Usage() string {
	return `pman summary -name <portfolio> [-date <yyyy-mm-dd>]:
  Show total cost basis, market value, and unrealized gain as of the
  given date (default today).
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "portfolio to report on")
	f.StringVar(&c.date, "date", "", "report date (default today)")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	on, err := parseDateFlag(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -date: %v\n", err)
		return subcommands.ExitUsageError
	}

	s := store()
	p, err := s.LoadPortfolio(c.name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot load portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	market, err := s.LoadMarketData()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot load market data: %v\n", err)
		return subcommands.ExitFailure
	}

	doc, err := renderSummary(p, market, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot value portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}
