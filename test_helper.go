package portfolio

import "testing"

// Helpers shared by tests in this package.

// testMarket builds a deterministic oracle: each ticker is declared in USD
// with a flat price recorded at 'since', so any at-or-after query resolves
// to that price by carry-forward.
func testMarket(t *testing.T, since Date, prices map[string]float64) *MarketData {
	t.Helper()
	m := NewMarketData()
	for ticker, price := range prices {
		sec, err := NewSecurity(ticker, "USD")
		if err != nil {
			t.Fatalf("invalid test security %q: %v", ticker, err)
		}
		sec.SetPrice(since, price)
		m.Add(sec)
	}
	return m
}

// usd is shorthand for an USD amount in tests.
func usd(amount float64) Money { return M(amount, "USD") }
