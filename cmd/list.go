package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list stored portfolios and plans" }
func (*listCmd) Usage() string {
	return `pman list:
  List the portfolios and recurring investment plans in the store.
`
}

func (*listCmd) SetFlags(f *flag.FlagSet) {}

func (*listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	s := store()
	portfolios, err := s.ListPortfolios()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot list portfolios: %v\n", err)
		return subcommands.ExitFailure
	}
	plans, err := s.ListPlans()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot list plans: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println("Portfolios:")
	for _, name := range portfolios {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println("Plans:")
	for _, name := range plans {
		fmt.Printf("  %s\n", name)
	}
	return subcommands.ExitSuccess
}
