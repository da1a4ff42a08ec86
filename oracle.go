package portfolio

// PriceOracle resolves a price for an (instrument, date) pair. It is the
// single external capability the valuation and allocation code depends on,
// and it is always passed explicitly: no hidden price-feed singleton, so
// tests can substitute deterministic stubs.
//
// Contract for Price:
//   - a date strictly after today fails with ErrPriceUnavailable;
//   - a date preceding the earliest available history for the ticker fails
//     with ErrPriceUnavailable;
//   - an unknown ticker fails with ErrPriceUnavailable;
//   - for dates between available data points (weekends, holidays) the
//     oracle carries forward the most recent available price at or before
//     that date. Valuation relies on this rule and does not re-implement it.
type PriceOracle interface {
	// IsValidInstrument reports whether ticker is a known instrument.
	IsValidInstrument(ticker string) bool

	// Price returns the price of one share of ticker on the given day.
	Price(ticker string, on Date) (Money, error)
}
