package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type holdingCmd struct {
	name string
	date string
}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "show per-instrument holdings as of a date" }
func (*holdingCmd) Usage() string {
	return `pman holding -name <portfolio> [-date <yyyy-mm-dd>]:
  Show shares owned, cost basis, and market value per instrument, as of
  the given date (default today).
`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "portfolio to report on")
	f.StringVar(&c.date, "date", "", "report date (default today)")
}

func (c *holdingCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
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

	doc, err := renderHolding(p, market, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot value portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}
