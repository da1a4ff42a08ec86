package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	portfolio "github.com/RonnJacob/Portfolio-Manager-sub000"
	"github.com/RonnJacob/Portfolio-Manager-sub000/stooq"
	"github.com/google/subcommands"
)

type fetchCmd struct {
	from     string
	to       string
	intraday bool
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch prices for all declared securities" }
func (*fetchCmd) Usage() string {
	return `pman fetch [-from <yyyy-mm-dd>] [-to <yyyy-mm-dd>] [-intraday]:
  Fetch daily closing prices over the date range (default the last 30
  days) and record them in the market data. With -intraday, also record
  today's live quote for securities that carry a feed id.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "start of the date range (default 30 days ago)")
	f.StringVar(&c.to, "to", "", "end of the date range (default today)")
	f.BoolVar(&c.intraday, "intraday", false, "also fetch today's live quotes")
}

func (c *fetchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	today := portfolio.Today()
	from, to := today.Add(-30), today
	var err error
	if c.from != "" {
		if from, err = portfolio.ParseDate(c.from); err != nil {
			fmt.Fprintf(os.Stderr, "invalid -from: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.to != "" {
		if to, err = portfolio.ParseDate(c.to); err != nil {
			fmt.Fprintf(os.Stderr, "invalid -to: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	s := store()
	market, err := s.LoadMarketData()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot load market data: %v\n", err)
		return subcommands.ExitFailure
	}

	client := portfolio.DailyCachedClient()
	if err := stooq.Update(client, market, portfolio.NewRange(from, to)); err != nil {
		// a partial fetch is still worth saving, report and carry on
		fmt.Fprintf(os.Stderr, "fetch incomplete: %v\n", err)
	}
	if c.intraday {
		if err := portfolio.UpdateIntraday(client, market); err != nil {
			fmt.Fprintf(os.Stderr, "intraday fetch incomplete: %v\n", err)
		}
	}

	if err := s.WriteMarketData(market); err != nil {
		fmt.Fprintf(os.Stderr, "cannot save market data: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Market data updated.")
	return subcommands.ExitSuccess
}
