// Package portfolio simulates an investment portfolio: it records purchases
// of fractional shares of named instruments over time and answers
// point-in-time questions about cost basis, market value, and composition.
//
// The package is organized around a small set of collaborating types:
//
//   - ShareLedger records dated purchase lots for a single instrument and
//     reconstructs shares owned and cost basis as of any historical date.
//   - Portfolio aggregates ShareLedgers by ticker and values them against a
//     PriceOracle.
//   - Weights describes how one lump amount splits across instruments,
//     either equally or by explicit percentages.
//   - RecurringInvestmentPlan replays a weighted allocation at fixed
//     intervals across a date range (dollar-cost averaging), tolerating
//     per-instrument pricing failures.
//
// Prices are never hidden behind global state: every operation that needs a
// price takes a PriceOracle explicitly, so tests run against deterministic
// stub oracles and the CLI runs against fetched market data.
package portfolio
