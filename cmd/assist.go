package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/RonnJacob/Portfolio-Manager-sub000/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct {
	name string
	date string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "chat with an advisor about a portfolio" }
func (*assistCmd) Usage() string {
	return `pman assist -name <portfolio> [-date <yyyy-mm-dd>]:
  Start an interactive session with an AI advisor grounded with the
  portfolio's holding and summary reports as of the given date.
  Requires the GEMINI_API_KEY environment variable.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "portfolio to discuss")
	f.StringVar(&c.date, "date", "", "report date (default today)")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
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

	var reports []string
	if holding, err := renderHolding(p, market, on); err == nil {
		reports = append(reports, holding)
	}
	if summary, err := renderSummary(p, market, on); err == nil {
		reports = append(reports, summary)
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot create genai client: %v\n", err)
		return subcommands.ExitFailure
	}

	advisor := agent.New(os.Stdout, os.Stdin, reports...)
	if err := advisor.Run(ctx, client); err != nil {
		fmt.Fprintf(os.Stderr, "assist session failed: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
