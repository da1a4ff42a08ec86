package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	portfolio "github.com/RonnJacob/Portfolio-Manager-sub000"
	"github.com/google/subcommands"
)

type planSetCmd struct {
	name    string
	tickers string
	weights string
	amount  float64
	every   int
	from    string
	to      string
}

func (*planSetCmd) Name() string     { return "plan-set" }
func (*planSetCmd) Synopsis() string { return "create or update a recurring investment plan" }
func (*planSetCmd) Usage() string {
	return `pman plan-set -name <plan> [-tickers A,B] [-weights A:60,B:40] [-amount <amount>] [-every <days>] [-from <yyyy-mm-dd>] [-to <yyyy-mm-dd>]:
  Create or update a named plan. Only the given flags change; a new plan
  needs at least -tickers and -amount.
`
}

func (c *planSetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "name of the plan")
	f.StringVar(&c.tickers, "tickers", "", "comma-separated instruments, split equally")
	f.StringVar(&c.weights, "weights", "", "comma-separated TICKER:PERCENT pairs, summing to 100")
	f.Float64Var(&c.amount, "amount", 0, "amount invested per period")
	f.IntVar(&c.every, "every", 0, "days between investments (default 30 on a new plan)")
	f.StringVar(&c.from, "from", "", "first scheduled date")
	f.StringVar(&c.to, "to", "", "last date of the active range")
}

func (c *planSetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "missing -name flag")
		return subcommands.ExitUsageError
	}

	s := store()
	plan, err := s.LoadPlan(c.name)
	if errors.Is(err, portfolio.ErrNotFound) {
		plan = portfolio.NewRecurringInvestmentPlan()
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "cannot load plan: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.tickers != "" {
		if err := plan.SetInstruments(parseTickers(c.tickers)...); err != nil {
			fmt.Fprintf(os.Stderr, "invalid -tickers: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.weights != "" {
		percents, err := parseWeightSpec(c.weights)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -weights: %v\n", err)
			return subcommands.ExitUsageError
		}
		if err := plan.SetWeights(percents); err != nil {
			fmt.Fprintf(os.Stderr, "invalid -weights: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.amount != 0 {
		if err := plan.SetAmount(money(c.amount)); err != nil {
			fmt.Fprintf(os.Stderr, "invalid -amount: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.every != 0 {
		if err := plan.SetPeriodDays(c.every); err != nil {
			fmt.Fprintf(os.Stderr, "invalid -every: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.from != "" || c.to != "" {
		span := plan.DateRange()
		from, to := span.From, span.To
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
		if err := plan.SetDateRange(from, to); err != nil {
			fmt.Fprintf(os.Stderr, "invalid date range: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	if len(plan.Instruments()) == 0 || !plan.Amount().IsPositive() {
		fmt.Fprintln(os.Stderr, "a plan needs at least -tickers and -amount")
		return subcommands.ExitUsageError
	}
	if err := s.WritePlan(c.name, plan); err != nil {
		fmt.Fprintf(os.Stderr, "cannot save plan: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Plan %q invests %s every %d days over %s.\n", c.name, plan.Amount(), plan.PeriodDays(), plan.DateRange())
	return subcommands.ExitSuccess
}
