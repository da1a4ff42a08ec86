package portfolio

import (
	"fmt"
	"iter"
)

// Strategy is an investment scheduling policy that can be replayed against
// a portfolio. The periodic RecurringInvestmentPlan is the only concrete
// strategy today; the contract leaves room for other scheduling variants
// (lump-sum, threshold-triggered) without changing callers.
type Strategy interface {
	Apply(target *Portfolio, oracle PriceOracle, commission Money) (Trace, error)
}

// TraceEntry records the purchases executed on one scheduled date.
type TraceEntry struct {
	Date      Date
	Purchases map[string]Quantity
}

// Trace is the dated record of an applied strategy, in chronological
// order. Scheduled dates that yielded no purchase at all are omitted;
// partially-filled dates list only the instruments actually purchased.
type Trace []TraceEntry

// RecurringInvestmentPlan invests a fixed amount at a fixed interval across
// a date range, split over a weighted instrument set (dollar-cost
// averaging).
//
// The zero configuration from NewRecurringInvestmentPlan is deliberately
// inert: Apply re-validates everything, so nothing executes until the
// amount and the instrument set have been configured. Each setter validates
// its field in isolation and leaves the others untouched on error.
type RecurringInvestmentPlan struct {
	instruments []string
	percents    map[string]Percent // nil means equal weighting
	amount      Money
	periodDays  int
	span        Range
}

// NewRecurringInvestmentPlan creates a plan with defaults: an empty
// instrument set, equal weighting, a 30-day period, and a range of today
// only. Amount must be configured before the plan can be applied.
func NewRecurringInvestmentPlan() *RecurringInvestmentPlan {
	today := Today()
	return &RecurringInvestmentPlan{
		periodDays: 30,
		span:       Range{From: today, To: today},
	}
}

// SetInstruments replaces the target instrument set.
func (plan *RecurringInvestmentPlan) SetInstruments(tickers ...string) error {
	set := canonicalSet(tickers)
	if len(set) == 0 {
		return fmt.Errorf("%w: empty instrument set", ErrInvalidInput)
	}
	plan.instruments = set
	return nil
}

// SetWeights replaces the explicit percentage weights. A nil map restores
// equal weighting. The map is cloned; consistency with the instrument set
// is checked when the plan is applied.
func (plan *RecurringInvestmentPlan) SetWeights(percents map[string]Percent) error {
	if percents == nil {
		plan.percents = nil
		return nil
	}
	w := PercentWeights(percents)
	for _, pct := range w.percents {
		if pct.IsNegative() {
			return fmt.Errorf("%w: negative weight %s", ErrInvalidWeights, pct)
		}
	}
	plan.percents = w.percents
	return nil
}

// SetAmount replaces the amount invested per period.
func (plan *RecurringInvestmentPlan) SetAmount(amount Money) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: non-positive amount per period %s", ErrInvalidInput, amount)
	}
	plan.amount = amount
	return nil
}

// SetPeriodDays replaces the number of days between scheduled investments.
func (plan *RecurringInvestmentPlan) SetPeriodDays(days int) error {
	if days <= 0 {
		return fmt.Errorf("%w: non-positive period %d days", ErrInvalidInput, days)
	}
	plan.periodDays = days
	return nil
}

// SetDateRange replaces the active date range.
func (plan *RecurringInvestmentPlan) SetDateRange(from, to Date) error {
	if from.After(to) {
		return fmt.Errorf("%w: start date %s after end date %s", ErrInvalidInput, from, to)
	}
	plan.span = Range{From: from, To: to}
	return nil
}

// Instruments returns a copy of the target instrument set.
func (plan *RecurringInvestmentPlan) Instruments() []string { return plan.Weights().Tickers() }

// Weights returns the plan's weight specification.
func (plan *RecurringInvestmentPlan) Weights() Weights {
	return NewWeights(plan.instruments, plan.percents)
}

// Amount returns the amount invested per period.
func (plan *RecurringInvestmentPlan) Amount() Money { return plan.amount }

// PeriodDays returns the number of days between scheduled investments.
func (plan *RecurringInvestmentPlan) PeriodDays() int { return plan.periodDays }

// DateRange returns the active date range.
func (plan *RecurringInvestmentPlan) DateRange() Range { return plan.span }

// Schedule returns the scheduled investment dates in increasing order:
// the start date, then every periodDays after it, while within the range.
func (plan *RecurringInvestmentPlan) Schedule() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		if plan.periodDays <= 0 {
			return
		}
		for on := plan.span.From; !on.After(plan.span.To); on = on.Add(plan.periodDays) {
			if !yield(on) {
				return
			}
		}
	}
}

// Apply replays the plan against the target portfolio: for each scheduled
// date, in strictly increasing order, it invests the per-period amount
// according to the plan's weights, charging the commission on every
// purchased leg.
//
// Dates are never reordered or skipped ahead: a later date's allocation
// depends on the lots accumulated by earlier dates in the same ledgers.
// A date where nothing could be purchased is absent from the trace; a
// malformed configuration (ErrInvalidInput, ErrInvalidWeights) aborts the
// whole run.
func (plan *RecurringInvestmentPlan) Apply(target *Portfolio, oracle PriceOracle, commission Money) (Trace, error) {
	if target == nil {
		return nil, fmt.Errorf("%w: nil target portfolio", ErrInvalidInput)
	}
	if !plan.amount.IsPositive() {
		return nil, fmt.Errorf("%w: plan amount is not configured", ErrInvalidInput)
	}

	weights := plan.Weights()
	var trace Trace
	for on := range plan.Schedule() {
		purchases, err := target.Invest(oracle, plan.amount, weights, on, commission)
		if err != nil {
			return nil, fmt.Errorf("plan failed on %s: %w", on, err)
		}
		if len(purchases) == 0 {
			continue
		}
		trace = append(trace, TraceEntry{Date: on, Purchases: purchases})
	}
	return trace, nil
}

var _ Strategy = (*RecurringInvestmentPlan)(nil)
