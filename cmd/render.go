package cmd

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	portfolio "github.com/RonnJacob/Portfolio-Manager-sub000"
)

// This file renders reports as markdown documents. The same documents are
// printed by the reporting commands and fed to the assist agent as context.

// renderHolding renders the per-instrument state of a portfolio as of a
// date: shares owned, cost basis, and market value.
func renderHolding(p *portfolio.Portfolio, oracle portfolio.PriceOracle, on portfolio.Date) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Holding %s on %s\n\n", p.Name(), on)
	fmt.Fprintf(&sb, "| Ticker | Since | Shares | Cost Basis | Market Value |\n")
	fmt.Fprintf(&sb, "|--------|-------|-------:|-----------:|-------------:|\n")

	composition := p.CompositionAsOf(on)
	for _, ticker := range slices.Sorted(maps.Keys(composition)) {
		ledger := p.Ledger(ticker)
		value, err := ledger.MarketValueAsOf(on, oracle)
		if err != nil {
			return "", err
		}
		since := "-"
		if first, ok := ledger.FirstLotDate(); ok {
			since = first.String()
		}
		fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s |\n",
			ticker, since, composition[ticker], ledger.CostBasisAsOf(on), value)
	}
	return sb.String(), nil
}

// renderSummary renders a portfolio's totals as of a date.
func renderSummary(p *portfolio.Portfolio, oracle portfolio.PriceOracle, on portfolio.Date) (string, error) {
	value, err := p.TotalMarketValueAsOf(on, oracle)
	if err != nil {
		return "", err
	}
	cost := p.TotalCostBasisAsOf(on)

	var sb strings.Builder
	fmt.Fprintf(&sb, "# Summary %s on %s\n\n", p.Name(), on)
	fmt.Fprintf(&sb, "| Metric | Value |\n")
	fmt.Fprintf(&sb, "|--------|------:|\n")
	fmt.Fprintf(&sb, "| Cost Basis | %s |\n", cost)
	fmt.Fprintf(&sb, "| Market Value | %s |\n", value)
	fmt.Fprintf(&sb, "| Unrealized Gain | %s |\n", value.Sub(cost))
	return sb.String(), nil
}

// renderTrace renders the dated purchases executed by an applied plan.
func renderTrace(name string, trace portfolio.Trace) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Plan %s execution\n\n", name)
	if len(trace) == 0 {
		fmt.Fprintf(&sb, "No purchase could be executed.\n")
		return sb.String()
	}
	for _, entry := range trace {
		fmt.Fprintf(&sb, "* %s:", entry.Date)
		for _, ticker := range slices.Sorted(maps.Keys(entry.Purchases)) {
			fmt.Fprintf(&sb, " %s=%s", ticker, entry.Purchases[ticker])
		}
		fmt.Fprintln(&sb)
	}
	return sb.String()
}
