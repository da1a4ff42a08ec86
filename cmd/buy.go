package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type buyCmd struct {
	name       string
	ticker     string
	amount     float64
	date       string
	commission float64
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "buy an amount worth of shares of one instrument" }
func (*buyCmd) Usage() string {
	return `pman buy -name <portfolio> -ticker <ticker> -amount <amount> [-date <yyyy-mm-dd>] [-commission <fee>]:
  Record a purchase: the amount buys shares at that date's price, the
  commission adds to the cost basis.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "portfolio to buy into")
	f.StringVar(&c.ticker, "ticker", "", "instrument to buy")
	f.Float64Var(&c.amount, "amount", 0, "amount to invest")
	f.StringVar(&c.date, "date", "", "purchase date (default today)")
	f.Float64Var(&c.commission, "commission", 0, "fee charged for the purchase")
}

func (c *buyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
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

	shares, err := p.AddPurchase(market, c.ticker, money(c.amount), on, money(c.commission))
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot buy: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := s.WritePortfolio(p); err != nil {
		fmt.Fprintf(os.Stderr, "cannot save portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Bought %s shares of %s on %s.\n", shares, c.ticker, on)
	return subcommands.ExitSuccess
}
