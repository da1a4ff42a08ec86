package portfolio

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// MarketData is an in-memory collection of securities and their price
// histories. It implements PriceOracle, so it serves both as the live data
// store behind the CLI and as a deterministic stub in tests.
type MarketData struct {
	index map[string]*Security
}

// NewMarketData returns a new empty market data collection.
func NewMarketData() *MarketData {
	return &MarketData{index: make(map[string]*Security)}
}

// Has reports whether a security is declared for ticker.
func (m *MarketData) Has(ticker string) bool {
	_, ok := m.index[CanonicalTicker(ticker)]
	return ok
}

// Get returns the security declared for ticker, or nil if unknown.
func (m *MarketData) Get(ticker string) *Security {
	return m.index[CanonicalTicker(ticker)]
}

// Add declares a security. Re-adding a ticker replaces its definition.
func (m *MarketData) Add(sec *Security) { m.index[sec.ticker] = sec }

// Securities returns an iterator over the declared securities in ticker
// order.
func (m *MarketData) Securities() iter.Seq[*Security] {
	return func(yield func(*Security) bool) {
		tickers := slices.Collect(maps.Keys(m.index))
		slices.Sort(tickers)
		for _, ticker := range tickers {
			if !yield(m.index[ticker]) {
				return
			}
		}
	}
}

// IsValidInstrument reports whether ticker is a declared security.
func (m *MarketData) IsValidInstrument(ticker string) bool { return m.Has(ticker) }

// Price returns the price of one share of ticker on the given day,
// honoring the PriceOracle contract: unknown tickers, future dates, and
// dates preceding the instrument's history fail with ErrPriceUnavailable;
// non-trading days carry forward the most recent at-or-before price.
func (m *MarketData) Price(ticker string, on Date) (Money, error) {
	sec := m.Get(ticker)
	if sec == nil {
		return Money{}, fmt.Errorf("%w: unknown instrument %q", ErrPriceUnavailable, ticker)
	}
	if on.After(Today()) {
		return Money{}, fmt.Errorf("%w: %s is in the future", ErrPriceUnavailable, on)
	}
	price, ok := sec.prices.ValueAsOf(on)
	if !ok {
		if first, ok := sec.EarliestPriceDate(); ok {
			return Money{}, fmt.Errorf("%w: %q history starts %s, no price on or before %s", ErrPriceUnavailable, sec.ticker, first, on)
		}
		return Money{}, fmt.Errorf("%w: no price history for %q", ErrPriceUnavailable, sec.ticker)
	}
	return M(price, sec.currency), nil
}

var _ PriceOracle = (*MarketData)(nil)
