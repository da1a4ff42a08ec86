package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type planApplyCmd struct {
	name       string
	portfolio  string
	commission float64
}

func (*planApplyCmd) Name() string     { return "plan-apply" }
func (*planApplyCmd) Synopsis() string { return "replay a recurring investment plan on a portfolio" }
func (*planApplyCmd) Usage() string {
	return `pman plan-apply -name <plan> -portfolio <portfolio> [-commission <fee>]:
  Invest the plan's amount on every scheduled date in its range, in
  chronological order, and record the purchases in the portfolio.
`
}

func (c *planApplyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "name of the plan to apply")
	f.StringVar(&c.portfolio, "portfolio", "", "portfolio receiving the purchases")
	f.Float64Var(&c.commission, "commission", 0, "fee charged on each purchased leg")
}

func (c *planApplyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	s := store()
	plan, err := s.LoadPlan(c.name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot load plan: %v\n", err)
		return subcommands.ExitFailure
	}
	p, err := s.LoadPortfolio(c.portfolio)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot load portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	market, err := s.LoadMarketData()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot load market data: %v\n", err)
		return subcommands.ExitFailure
	}

	trace, err := plan.Apply(p, market, money(c.commission))
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot apply plan: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := s.WritePortfolio(p); err != nil {
		fmt.Fprintf(os.Stderr, "cannot save portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderTrace(c.name, trace))
	return subcommands.ExitSuccess
}
