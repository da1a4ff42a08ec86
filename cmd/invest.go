package cmd

import (
	"context"
	"flag"
	"fmt"
	"maps"
	"os"
	"slices"

	portfolio "github.com/RonnJacob/Portfolio-Manager-sub000"
	"github.com/google/subcommands"
)

type investCmd struct {
	name       string
	tickers    string
	weights    string
	amount     float64
	date       string
	commission float64
}

func (*investCmd) Name() string     { return "invest" }
func (*investCmd) Synopsis() string { return "split one amount across weighted instruments" }
func (*investCmd) Usage() string {
	return `pman invest -name <portfolio> -amount <amount> (-tickers A,B | -weights A:60,B:40) [-date <yyyy-mm-dd>] [-commission <fee>]:
  Invest one amount across several instruments. -tickers splits equally,
  -weights gives each instrument its explicit percentage. An instrument
  that cannot be priced on the date is skipped; the rest still executes.
`
}

func (c *investCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "portfolio to invest into")
	f.StringVar(&c.tickers, "tickers", "", "comma-separated instruments, split equally")
	f.StringVar(&c.weights, "weights", "", "comma-separated TICKER:PERCENT pairs, summing to 100")
	f.Float64Var(&c.amount, "amount", 0, "total amount to invest")
	f.StringVar(&c.date, "date", "", "investment date (default today)")
	f.Float64Var(&c.commission, "commission", 0, "fee charged on each purchased leg")
}

func (c *investCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	on, err := parseDateFlag(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -date: %v\n", err)
		return subcommands.ExitUsageError
	}

	var w portfolio.Weights
	switch {
	case c.weights != "":
		percents, err := parseWeightSpec(c.weights)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -weights: %v\n", err)
			return subcommands.ExitUsageError
		}
		w = portfolio.PercentWeights(percents)
	case c.tickers != "":
		w = portfolio.EqualWeights(parseTickers(c.tickers)...)
	default:
		fmt.Fprintln(os.Stderr, "missing -tickers or -weights flag")
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

	purchases, err := p.Invest(market, money(c.amount), w, on, money(c.commission))
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot invest: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := s.WritePortfolio(p); err != nil {
		fmt.Fprintf(os.Stderr, "cannot save portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	if len(purchases) == 0 {
		fmt.Println("No instrument could be priced, nothing was purchased.")
		return subcommands.ExitSuccess
	}
	for _, ticker := range slices.Sorted(maps.Keys(purchases)) {
		fmt.Printf("Bought %s shares of %s on %s.\n", purchases[ticker], ticker, on)
	}
	return subcommands.ExitSuccess
}
