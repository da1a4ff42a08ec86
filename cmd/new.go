package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	portfolio "github.com/RonnJacob/Portfolio-Manager-sub000"
	"github.com/google/subcommands"
)

type newCmd struct {
	name string
}

func (*newCmd) Name() string     { return "new" }
func (*newCmd) Synopsis() string { return "create a new empty portfolio" }
func (*newCmd) Usage() string {
	return `pman new -name <portfolio>:
  Create a new empty portfolio in the store.
`
}

func (c *newCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "name of the portfolio to create")
}

func (c *newCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "missing -name flag")
		return subcommands.ExitUsageError
	}
	if err := store().CreatePortfolio(portfolio.NewPortfolio(c.name)); err != nil {
		fmt.Fprintf(os.Stderr, "cannot create portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created portfolio %q.\n", c.name)
	return subcommands.ExitSuccess
}
