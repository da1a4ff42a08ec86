package portfolio

import (
	"fmt"
	"iter"
)

// ShareLedger records the dated purchase lots of a single instrument and
// answers "shares owned as of date D" and "cost basis as of date D".
//
// Lots are kept in chronological order with at most one lot per calendar
// date. A ledger is created on the first purchase of its ticker, never
// deleted (there is no sell operation), and mutated only by merging lots.
type ShareLedger struct {
	ticker string
	lots   lots
}

// NewShareLedger creates an empty ledger for the given instrument.
func NewShareLedger(ticker string) *ShareLedger {
	return &ShareLedger{ticker: ticker}
}

// Ticker returns the instrument identifier this ledger records.
func (l *ShareLedger) Ticker() string { return l.ticker }

// Len returns the number of distinct purchase dates in the ledger.
func (l *ShareLedger) Len() int { return len(l.lots) }

// AddLot records shares acquired on a date for a total cost. A purchase on
// an already-present date merges into the existing lot by summing shares
// and cost. Negative shares or cost are rejected.
func (l *ShareLedger) AddLot(on Date, shares Quantity, cost Money) error {
	if shares.IsNegative() {
		return fmt.Errorf("%w: negative share count %s for %s", ErrInvalidInput, shares, l.ticker)
	}
	if cost.IsNegative() {
		return fmt.Errorf("%w: negative cost basis %s for %s", ErrInvalidInput, cost, l.ticker)
	}
	l.lots = l.lots.merge(on, shares, cost)
	return nil
}

// SharesAsOf returns the total shares acquired on or before 'on'. Lots with
// a later date are ignored; a date earlier than every lot yields zero, not
// an error.
func (l *ShareLedger) SharesAsOf(on Date) Quantity {
	var total Quantity
	for _, lot := range l.lots.upTo(on) {
		total = total.Add(lot.Shares)
	}
	return total
}

// CostBasisAsOf returns the cumulative amount paid for shares acquired on
// or before 'on'. It is monotonically non-decreasing in 'on'.
func (l *ShareLedger) CostBasisAsOf(on Date) Money {
	var total Money
	for _, lot := range l.lots.upTo(on) {
		total = total.Add(lot.Cost)
	}
	return total
}

// MarketValueAsOf returns the value of the position on 'on': shares owned
// multiplied by that date's price. When no shares are owned as of 'on' it
// returns zero without consulting the oracle, so a query before the
// instrument's price history begins does not fail. Otherwise a pricing
// failure propagates.
func (l *ShareLedger) MarketValueAsOf(on Date, oracle PriceOracle) (Money, error) {
	shares := l.SharesAsOf(on)
	if shares.IsZero() {
		return Money{}, nil
	}
	price, err := oracle.Price(l.ticker, on)
	if err != nil {
		return Money{}, fmt.Errorf("could not value %s on %s: %w", l.ticker, on, err)
	}
	return price.Mul(shares), nil
}

// FirstLotDate returns the date of the earliest purchase, and false when
// the ledger is empty.
func (l *ShareLedger) FirstLotDate() (Date, bool) {
	if len(l.lots) == 0 {
		return Date{}, false
	}
	return l.lots[0].Date, true
}

// Lots returns an iterator over the purchase lots in chronological order.
func (l *ShareLedger) Lots() iter.Seq[Lot] {
	return func(yield func(Lot) bool) {
		for _, lot := range l.lots {
			if !yield(lot) {
				return
			}
		}
	}
}
