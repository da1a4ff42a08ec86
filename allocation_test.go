package portfolio

import (
	"errors"
	"testing"
)

func TestInvestEqualWeights(t *testing.T) {
	since := MustParse("2024-01-01")
	market := testMarket(t, since, map[string]float64{"AAPL": 100, "MSFT": 100})
	p := NewPortfolio("savings")
	on := MustParse("2024-03-01")

	purchases, err := p.Invest(market, usd(1000), EqualWeights("AAPL", "MSFT"), on, usd(0))
	if err != nil {
		t.Fatal(err)
	}
	if len(purchases) != 2 {
		t.Fatalf("purchased %d legs, want 2", len(purchases))
	}
	for ticker, shares := range purchases {
		if !shares.Equal(Q(5)) {
			t.Errorf("shares of %s = %s, want 5", ticker, shares)
		}
	}
}

func TestInvestExplicitWeights(t *testing.T) {
	since := MustParse("2024-01-01")
	market := testMarket(t, since, map[string]float64{"AAPL": 100, "MSFT": 100})
	p := NewPortfolio("savings")
	on := MustParse("2024-03-01")

	w := PercentWeights(map[string]Percent{"AAPL": P(60), "MSFT": P(40)})
	purchases, err := p.Invest(market, usd(1000), w, on, usd(0))
	if err != nil {
		t.Fatal(err)
	}
	if got := purchases["AAPL"]; !got.Equal(Q(6)) {
		t.Errorf("AAPL shares = %s, want 6", got)
	}
	if got := purchases["MSFT"]; !got.Equal(Q(4)) {
		t.Errorf("MSFT shares = %s, want 4", got)
	}
}

func TestInvestRejectsBadWeights(t *testing.T) {
	since := MustParse("2024-01-01")
	market := testMarket(t, since, map[string]float64{"AAPL": 100, "MSFT": 100})
	on := MustParse("2024-03-01")

	tests := []struct {
		name string
		w    Weights
	}{
		{name: "sum below 100", w: PercentWeights(map[string]Percent{"AAPL": P(60), "MSFT": P(39)})},
		{name: "sum above 100", w: PercentWeights(map[string]Percent{"AAPL": P(60), "MSFT": P(41)})},
		{name: "negative weight", w: PercentWeights(map[string]Percent{"AAPL": P(150), "MSFT": P(-50)})},
		{name: "empty set", w: EqualWeights()},
		{name: "set and map disagree", w: NewWeights([]string{"AAPL", "MSFT"}, map[string]Percent{"AAPL": P(100)})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPortfolio("savings")
			if _, err := p.Invest(market, usd(1000), tt.w, on, usd(0)); !errors.Is(err, ErrInvalidWeights) {
				t.Errorf("err = %v, want ErrInvalidWeights", err)
			}
			if got := p.TotalCostBasisAsOf(on); !got.IsZero() {
				t.Errorf("rejected batch was partially recorded: cost basis %s", got)
			}
		})
	}
}

func TestInvestRejectsNonPositiveAmount(t *testing.T) {
	since := MustParse("2024-01-01")
	market := testMarket(t, since, map[string]float64{"AAPL": 100})
	p := NewPortfolio("savings")

	_, err := p.Invest(market, usd(0), EqualWeights("AAPL"), MustParse("2024-03-01"), usd(0))
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

// An unpriceable leg is skipped, the rest of the batch still executes.
func TestInvestSkipsUnpriceableLeg(t *testing.T) {
	market := testMarket(t, MustParse("2024-01-01"), map[string]float64{"AAPL": 100})
	// MSFT is declared, but its history starts after the investment date.
	msft, err := NewSecurity("MSFT", "USD")
	if err != nil {
		t.Fatal(err)
	}
	msft.SetPrice(MustParse("2024-06-01"), 100)
	market.Add(msft)

	p := NewPortfolio("savings")
	on := MustParse("2024-03-01")
	purchases, err := p.Invest(market, usd(1000), EqualWeights("AAPL", "MSFT"), on, usd(0))
	if err != nil {
		t.Fatal(err)
	}
	if len(purchases) != 1 {
		t.Fatalf("purchased %d legs, want only AAPL", len(purchases))
	}
	// AAPL got its half of the total, not the whole amount.
	if got := purchases["AAPL"]; !got.Equal(Q(5)) {
		t.Errorf("AAPL shares = %s, want 5", got)
	}
	if p.Ledger("MSFT") != nil {
		t.Error("skipped leg created a ledger")
	}
}

// When no leg can be priced the result is empty, not an error.
func TestInvestAllLegsUnpriceable(t *testing.T) {
	market := testMarket(t, MustParse("2024-06-01"), map[string]float64{"AAPL": 100, "MSFT": 100})
	p := NewPortfolio("savings")

	purchases, err := p.Invest(market, usd(1000), EqualWeights("AAPL", "MSFT"), MustParse("2024-03-01"), usd(0))
	if err != nil {
		t.Fatal(err)
	}
	if len(purchases) != 0 {
		t.Errorf("purchased %d legs, want none", len(purchases))
	}
}

// A zero-weight instrument buys nothing and is absent from the result.
func TestInvestZeroWeight(t *testing.T) {
	since := MustParse("2024-01-01")
	market := testMarket(t, since, map[string]float64{"AAPL": 100, "MSFT": 100})
	p := NewPortfolio("savings")

	w := PercentWeights(map[string]Percent{"AAPL": P(100), "MSFT": P(0)})
	purchases, err := p.Invest(market, usd(1000), w, MustParse("2024-03-01"), usd(0))
	if err != nil {
		t.Fatal(err)
	}
	if len(purchases) != 1 || !purchases["AAPL"].Equal(Q(10)) {
		t.Errorf("purchases = %v, want AAPL only with 10 shares", purchases)
	}
}
