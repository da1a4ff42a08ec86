package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	portfolio "github.com/RonnJacob/Portfolio-Manager-sub000"
	"github.com/google/subcommands"
)

type addSecurityCmd struct {
	ticker   string
	currency string
	feedID   string
}

func (*addSecurityCmd) Name() string     { return "add-security" }
func (*addSecurityCmd) Synopsis() string { return "declare an instrument in the market data" }
func (*addSecurityCmd) Usage() string {
	return `pman add-security -ticker <ticker> -currency <code> [-feed-id <id>]:
  Declare an instrument so prices can be recorded for it. The optional
  feed id enables intraday updates from the live feed.
`
}

func (c *addSecurityCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "ticker", "", "instrument ticker")
	f.StringVar(&c.currency, "currency", "", "ISO 4217 currency code of the instrument's prices")
	f.StringVar(&c.feedID, "feed-id", "", "instrument id on the intraday feed")
}

func (c *addSecurityCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	s := store()
	market, err := s.LoadMarketData()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot load market data: %v\n", err)
		return subcommands.ExitFailure
	}

	if market.Has(c.ticker) {
		fmt.Fprintf(os.Stderr, "cannot add security: %v\n", fmt.Errorf("%w: %q", portfolio.ErrAlreadyExists, c.ticker))
		return subcommands.ExitFailure
	}
	sec, err := portfolio.NewSecurity(c.ticker, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot add security: %v\n", err)
		return subcommands.ExitUsageError
	}
	sec.SetFeedID(c.feedID)
	market.Add(sec)

	if err := s.WriteMarketData(market); err != nil {
		fmt.Fprintf(os.Stderr, "cannot save market data: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added security %s (%s).\n", sec.Ticker(), sec.Currency())
	return subcommands.ExitSuccess
}
