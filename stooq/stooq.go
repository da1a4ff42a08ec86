// Package stooq fetches historical daily closing prices from the stooq.com
// CSV endpoint and records them into market data. It is pure glue between
// the provider's wire format and the portfolio package; the valuation core
// never depends on it.
package stooq

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	portfolio "github.com/RonnJacob/Portfolio-Manager-sub000"
)

// Update fetches daily closes for every declared security over the given
// date range and records them. Per-security failures are collected and
// joined so one delisted or mistyped ticker does not block the rest.
func Update(client *http.Client, m *portfolio.MarketData, rng portfolio.Range) error {
	var errs error
	for sec := range m.Securities() {
		points, err := fetchDaily(client, Symbol(sec.Ticker()), rng)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("could not fetch %s: %w", sec.Ticker(), err))
			continue
		}
		for _, pt := range points {
			sec.SetPrice(pt.Date, pt.Close)
		}
		log.Printf("%s: %d daily closes over %s", sec.Ticker(), len(points), rng)
	}
	return errs
}

// Symbol maps a portfolio ticker to a stooq symbol. Stooq uses lower-case
// symbols with a market suffix; a plain US ticker like "AAPL" is quoted as
// "aapl.us". Tickers that already carry a suffix are only lower-cased.
func Symbol(ticker string) string {
	s := strings.ToLower(ticker)
	if !strings.Contains(s, ".") {
		s += ".us"
	}
	return s
}
