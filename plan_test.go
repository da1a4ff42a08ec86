package portfolio

import (
	"errors"
	"slices"
	"testing"
)

func testPlan(t *testing.T) *RecurringInvestmentPlan {
	t.Helper()
	plan := NewRecurringInvestmentPlan()
	if err := plan.SetInstruments("AAPL", "MSFT"); err != nil {
		t.Fatal(err)
	}
	if err := plan.SetAmount(usd(1000)); err != nil {
		t.Fatal(err)
	}
	if err := plan.SetDateRange(MustParse("2020-01-01"), MustParse("2020-02-15")); err != nil {
		t.Fatal(err)
	}
	return plan
}

func TestPlanSchedule(t *testing.T) {
	plan := testPlan(t)

	var got []string
	for on := range plan.Schedule() {
		got = append(got, on.String())
	}
	// 30 days after 2020-01-31 is 2020-03-01, past the end of the range.
	want := []string{"2020-01-01", "2020-01-31"}
	if !slices.Equal(got, want) {
		t.Errorf("Schedule = %v, want %v", got, want)
	}
}

func TestPlanApply(t *testing.T) {
	since := MustParse("2019-12-31")
	market := testMarket(t, since, map[string]float64{"AAPL": 100, "MSFT": 100})
	plan := testPlan(t)
	p := NewPortfolio("savings")

	trace, err := plan.Apply(p, market, usd(0))
	if err != nil {
		t.Fatal(err)
	}
	if len(trace) != 2 {
		t.Fatalf("trace has %d entries, want 2", len(trace))
	}
	for _, entry := range trace {
		for ticker, shares := range entry.Purchases {
			if !shares.Equal(Q(5)) {
				t.Errorf("%s on %s = %s shares, want 5", ticker, entry.Date, shares)
			}
		}
	}

	// both periods fully executed: 2 dates of $500 per instrument.
	end := MustParse("2020-02-15")
	if got := p.TotalCostBasisAsOf(end); !got.Equal(usd(2000)) {
		t.Errorf("cost basis = %s, want $2000", got)
	}
}

func TestPlanApplyOmitsEmptyDates(t *testing.T) {
	// The price history starts between the two scheduled dates, so the
	// first date buys nothing at all and must be absent from the trace.
	market := testMarket(t, MustParse("2020-01-15"), map[string]float64{"AAPL": 100, "MSFT": 100})
	plan := testPlan(t)
	p := NewPortfolio("savings")

	trace, err := plan.Apply(p, market, usd(0))
	if err != nil {
		t.Fatal(err)
	}
	if len(trace) != 1 {
		t.Fatalf("trace has %d entries, want 1", len(trace))
	}
	if got := trace[0].Date; got != MustParse("2020-01-31") {
		t.Errorf("trace date = %s, want 2020-01-31", got)
	}
}

func TestPlanApplyRejects(t *testing.T) {
	since := MustParse("2019-12-31")
	market := testMarket(t, since, map[string]float64{"AAPL": 100})

	t.Run("nil portfolio", func(t *testing.T) {
		plan := testPlan(t)
		if _, err := plan.Apply(nil, market, usd(0)); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("err = %v, want ErrInvalidInput", err)
		}
	})

	t.Run("unconfigured amount", func(t *testing.T) {
		plan := NewRecurringInvestmentPlan()
		plan.SetInstruments("AAPL")
		if _, err := plan.Apply(NewPortfolio("savings"), market, usd(0)); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("err = %v, want ErrInvalidInput", err)
		}
	})

	t.Run("weights disagree with instruments", func(t *testing.T) {
		plan := testPlan(t)
		if err := plan.SetWeights(map[string]Percent{"AAPL": P(100)}); err != nil {
			t.Fatal(err)
		}
		if _, err := plan.Apply(NewPortfolio("savings"), market, usd(0)); !errors.Is(err, ErrInvalidWeights) {
			t.Errorf("err = %v, want ErrInvalidWeights", err)
		}
	})
}

func TestPlanSetters(t *testing.T) {
	plan := NewRecurringInvestmentPlan()

	if err := plan.SetInstruments(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty instrument set: err = %v, want ErrInvalidInput", err)
	}
	if err := plan.SetAmount(usd(-1)); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative amount: err = %v, want ErrInvalidInput", err)
	}
	if err := plan.SetPeriodDays(0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("zero period: err = %v, want ErrInvalidInput", err)
	}
	if err := plan.SetDateRange(MustParse("2024-12-31"), MustParse("2024-01-01")); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("inverted range: err = %v, want ErrInvalidInput", err)
	}
	if err := plan.SetWeights(map[string]Percent{"AAPL": P(-10)}); !errors.Is(err, ErrInvalidWeights) {
		t.Errorf("negative weight: err = %v, want ErrInvalidWeights", err)
	}

	// a failed setter leaves the default configuration untouched.
	if plan.PeriodDays() != 30 {
		t.Errorf("PeriodDays = %d, want the default 30", plan.PeriodDays())
	}
}
