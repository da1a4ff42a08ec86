// Package cmd implements the CLI application to manage simulated
// portfolios: recording purchases, weighted investments, recurring plan
// simulations, and point-in-time reports.
package cmd

import (
	"flag"
	"fmt"
	"strings"

	portfolio "github.com/RonnJacob/Portfolio-Manager-sub000"
	"github.com/google/subcommands"
)

// Commands lists all subcommands. A main package registers each of them on
// a commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&newCmd{},
	&listCmd{},
	&buyCmd{},
	&investCmd{},
	&holdingCmd{},
	&summaryCmd{},
	&planSetCmd{},
	&planApplyCmd{},
	&addSecurityCmd{},
	&fetchCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storePath = flag.String("store-path", ".pman", "Path to the folder holding portfolios, plans, and market data")
var defaultCurrency = flag.String("currency", "USD", "Currency for amounts given as plain numbers")

// store returns the application store.
func store() *portfolio.Store { return portfolio.NewStore(*storePath) }

// money builds a Money from a float flag in the application currency.
func money(amount float64) portfolio.Money { return portfolio.M(amount, *defaultCurrency) }

// parseDateFlag parses a -date style flag, defaulting to today when empty.
func parseDateFlag(value string) (portfolio.Date, error) {
	if value == "" {
		return portfolio.Today(), nil
	}
	return portfolio.ParseDate(value)
}

// parseTickers splits a comma-separated ticker list flag.
func parseTickers(value string) []string {
	var tickers []string
	for _, t := range strings.Split(value, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tickers = append(tickers, t)
		}
	}
	return tickers
}

// parseWeightSpec parses a "-weights A:60,B:40" style flag into a
// ticker→percent map.
func parseWeightSpec(value string) (map[string]portfolio.Percent, error) {
	percents := make(map[string]portfolio.Percent)
	for _, pair := range strings.Split(value, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		ticker, pctStr, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("invalid weight %q, want TICKER:PERCENT", pair)
		}
		var pct float64
		if _, err := fmt.Sscanf(strings.TrimSpace(pctStr), "%g", &pct); err != nil {
			return nil, fmt.Errorf("invalid percentage in %q: %w", pair, err)
		}
		percents[strings.TrimSpace(ticker)] = portfolio.P(pct)
	}
	if len(percents) == 0 {
		return nil, fmt.Errorf("empty weight specification")
	}
	return percents, nil
}

// printMarkdown prints a markdown report to the terminal.
func printMarkdown(doc string) { fmt.Println(doc) }
