package portfolio

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// Weights specifies how one investable amount splits across a set of
// instruments: either equally across the set, or by explicit percentages.
//
// An explicit specification is valid when its key set exactly equals the
// instrument set, every percentage is non-negative, and they sum to exactly
// 100 with no tolerance, which is why percentages are decimal-backed.
//
// Weights owns its data: constructors clone the caller's map so a later
// mutation of the caller's copy cannot alias the stored specification.
type Weights struct {
	tickers  []string           // the instrument set, canonical and sorted
	percents map[string]Percent // nil means equal weighting
}

// EqualWeights specifies equal weighting across the given instrument set.
func EqualWeights(tickers ...string) Weights {
	return Weights{tickers: canonicalSet(tickers)}
}

// PercentWeights specifies explicit percentages; the instrument set is the
// map's key set. The map is cloned.
func PercentWeights(percents map[string]Percent) Weights {
	w := Weights{percents: make(map[string]Percent, len(percents))}
	for ticker, pct := range percents {
		w.percents[CanonicalTicker(ticker)] = pct
	}
	w.tickers = canonicalSet(slices.Collect(maps.Keys(w.percents)))
	return w
}

// NewWeights specifies explicit percentages over a caller-supplied
// instrument set. Unlike PercentWeights the set may disagree with the map's
// key set; validation will then reject the specification.
func NewWeights(tickers []string, percents map[string]Percent) Weights {
	if percents == nil {
		return EqualWeights(tickers...)
	}
	w := PercentWeights(percents)
	w.tickers = canonicalSet(tickers)
	return w
}

func canonicalSet(tickers []string) []string {
	set := make([]string, 0, len(tickers))
	for _, t := range tickers {
		set = append(set, CanonicalTicker(t))
	}
	slices.Sort(set)
	return slices.Compact(set)
}

// IsEqual reports whether this is the equal-weighting sentinel.
func (w Weights) IsEqual() bool { return w.percents == nil }

// Tickers returns a copy of the instrument set, sorted.
func (w Weights) Tickers() []string { return slices.Clone(w.tickers) }

// Percents returns a copy of the explicit percentage map, or nil for equal
// weighting.
func (w Weights) Percents() map[string]Percent {
	if w.percents == nil {
		return nil
	}
	return maps.Clone(w.percents)
}

// validate checks the specification against its instrument set.
func (w Weights) validate() error {
	if len(w.tickers) == 0 {
		return fmt.Errorf("%w: empty instrument set", ErrInvalidWeights)
	}
	if w.percents == nil {
		return nil
	}
	if len(w.percents) != len(w.tickers) {
		return fmt.Errorf("%w: %d weights for %d instruments", ErrInvalidWeights, len(w.percents), len(w.tickers))
	}
	var sum Percent
	for _, ticker := range w.tickers {
		pct, ok := w.percents[ticker]
		if !ok {
			return fmt.Errorf("%w: no weight for instrument %q", ErrInvalidWeights, ticker)
		}
		if pct.IsNegative() {
			return fmt.Errorf("%w: negative weight %s for %q", ErrInvalidWeights, pct, ticker)
		}
		sum = sum.Add(pct)
	}
	if !sum.IsHundred() {
		return fmt.Errorf("%w: weights sum to %s, want 100%%", ErrInvalidWeights, sum)
	}
	return nil
}

// amountFor computes the slice of 'total' targeted at ticker.
func (w Weights) amountFor(ticker string, total Money) Money {
	if w.percents == nil {
		return total.Div(Q(len(w.tickers)))
	}
	return w.percents[ticker].Of(total)
}

// allocate splits totalAmount across the weighted instrument set and buys
// each slice on the given date, charging the commission on every leg.
//
// Partial-failure policy: the legs are independent, so a leg that cannot be
// priced (ErrPriceUnavailable) is skipped silently and the engine proceeds;
// its absence from the result map is the only signal. When no leg can
// be priced the result is empty but not an error. Malformed requests
// (ErrInvalidInput, ErrInvalidWeights) abort the whole batch before or
// during execution.
func allocate(p *Portfolio, oracle PriceOracle, totalAmount Money, w Weights, on Date, commission Money) (map[string]Quantity, error) {
	if !totalAmount.IsPositive() {
		return nil, fmt.Errorf("%w: non-positive investment amount %s", ErrInvalidInput, totalAmount)
	}
	if err := w.validate(); err != nil {
		return nil, err
	}

	purchased := make(map[string]Quantity)
	for _, ticker := range w.tickers {
		target := w.amountFor(ticker, totalAmount)
		if !target.IsPositive() {
			// A zero-weight instrument buys nothing.
			continue
		}
		shares, err := p.AddPurchase(oracle, ticker, target, on, commission)
		if err != nil {
			if errors.Is(err, ErrPriceUnavailable) {
				continue
			}
			return nil, err
		}
		purchased[ticker] = shares
	}
	return purchased, nil
}
