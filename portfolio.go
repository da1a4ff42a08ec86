package portfolio

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
)

// Portfolio is a named collection of ShareLedgers keyed by ticker. Tickers
// are case-insensitive and unique; instruments are added by purchase and
// never removed.
type Portfolio struct {
	name    string
	ledgers map[string]*ShareLedger
}

// NewPortfolio creates an empty portfolio.
func NewPortfolio(name string) *Portfolio {
	return &Portfolio{
		name:    name,
		ledgers: make(map[string]*ShareLedger),
	}
}

// Name returns the portfolio's name, used as its identity in the store.
func (p *Portfolio) Name() string { return p.name }

// CanonicalTicker normalizes a ticker for case-insensitive lookups.
func CanonicalTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// Ledger returns the ledger for ticker, or nil if the instrument was never
// purchased.
func (p *Portfolio) Ledger(ticker string) *ShareLedger {
	return p.ledgers[CanonicalTicker(ticker)]
}

// Tickers returns an iterator over all instruments ever purchased, in
// sorted order.
func (p *Portfolio) Tickers() iter.Seq[string] {
	return func(yield func(string) bool) {
		tickers := slices.Collect(maps.Keys(p.ledgers))
		slices.Sort(tickers)
		for _, ticker := range tickers {
			if !yield(ticker) {
				return
			}
		}
	}
}

// AddPurchase buys 'amount' worth of shares of ticker on the given date and
// records the resulting lot. The number of shares bought is amount divided
// by the oracle's price for that date; the lot's cost basis is amount plus
// commission (the commission is a pure fee, it never buys shares).
//
// The whole call fails and nothing is recorded when the ticker is blank,
// the amount is not positive, or the commission is negative
// (ErrInvalidInput), and when the oracle cannot resolve the ticker or price
// it for that date (ErrPriceUnavailable: unknown instrument, future date,
// or date preceding the instrument's price history).
func (p *Portfolio) AddPurchase(oracle PriceOracle, ticker string, amount Money, on Date, commission Money) (Quantity, error) {
	ticker = CanonicalTicker(ticker)
	if ticker == "" {
		return Quantity{}, fmt.Errorf("%w: blank ticker", ErrInvalidInput)
	}
	if !amount.IsPositive() {
		return Quantity{}, fmt.Errorf("%w: non-positive amount %s", ErrInvalidInput, amount)
	}
	if commission.IsNegative() {
		return Quantity{}, fmt.Errorf("%w: negative commission %s", ErrInvalidInput, commission)
	}
	if !oracle.IsValidInstrument(ticker) {
		return Quantity{}, fmt.Errorf("%w: unknown instrument %q", ErrPriceUnavailable, ticker)
	}

	// The oracle rejects future dates and dates preceding the instrument's
	// history, and carries forward the most recent price on non-trading days.
	price, err := oracle.Price(ticker, on)
	if err != nil {
		return Quantity{}, fmt.Errorf("cannot buy %s on %s: %w", ticker, on, err)
	}
	// A zero price can come from a corrupted data file; dividing by it
	// would panic.
	if !price.IsPositive() {
		return Quantity{}, fmt.Errorf("%w: non-positive price %s for %s on %s", ErrPriceUnavailable, price, ticker, on)
	}

	shares := amount.DivPrice(price)
	ledger, ok := p.ledgers[ticker]
	if !ok {
		ledger = NewShareLedger(ticker)
		p.ledgers[ticker] = ledger
	}
	if err := ledger.AddLot(on, shares, amount.Add(commission)); err != nil {
		return Quantity{}, err
	}
	return shares, nil
}

// Invest splits totalAmount across instruments according to weights and
// purchases each computed slice on the given date. It is the
// portfolio-facing entry point of the allocation engine; see Weights for
// the validation rules and the partial-failure policy.
func (p *Portfolio) Invest(oracle PriceOracle, totalAmount Money, weights Weights, on Date, commission Money) (map[string]Quantity, error) {
	return allocate(p, oracle, totalAmount, weights, on, commission)
}

// CompositionAsOf returns shares owned per instrument as of the given date,
// for every instrument ever purchased. Instruments with zero shares as of
// that date are still listed, with a zero quantity.
func (p *Portfolio) CompositionAsOf(on Date) map[string]Quantity {
	composition := make(map[string]Quantity, len(p.ledgers))
	for ticker, ledger := range p.ledgers {
		composition[ticker] = ledger.SharesAsOf(on)
	}
	return composition
}

// TotalCostBasisAsOf sums the cost basis of all ledgers as of the given
// date. An empty portfolio totals zero for any date, by definition.
func (p *Portfolio) TotalCostBasisAsOf(on Date) Money {
	var total Money
	for ticker := range p.Tickers() {
		total = total.Add(p.ledgers[ticker].CostBasisAsOf(on))
	}
	return total
}

// TotalMarketValueAsOf sums the market value of all ledgers as of the given
// date. It fails only if some instrument has non-zero shares as of the date
// and the oracle cannot price it; an empty portfolio totals zero for any
// date.
func (p *Portfolio) TotalMarketValueAsOf(on Date, oracle PriceOracle) (Money, error) {
	var total Money
	for ticker := range p.Tickers() {
		value, err := p.ledgers[ticker].MarketValueAsOf(on, oracle)
		if err != nil {
			return Money{}, err
		}
		total = total.Add(value)
	}
	return total, nil
}
