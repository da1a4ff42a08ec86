package portfolio

import (
	"errors"
	"slices"
	"testing"
)

func TestStorePortfolioRoundtrip(t *testing.T) {
	s := NewStore(t.TempDir())
	since := MustParse("2024-01-01")
	market := testMarket(t, since, map[string]float64{"AAPL": 100, "MSFT": 50})

	p := NewPortfolio("savings")
	if _, err := p.AddPurchase(market, "AAPL", usd(1000), MustParse("2024-01-02"), usd(5)); err != nil {
		t.Fatal(err)
	}
	if _, err := p.AddPurchase(market, "MSFT", usd(500), MustParse("2024-02-01"), usd(0)); err != nil {
		t.Fatal(err)
	}
	if err := s.WritePortfolio(p); err != nil {
		t.Fatal(err)
	}

	loaded, err := s.LoadPortfolio("savings")
	if err != nil {
		t.Fatal(err)
	}
	on := MustParse("2024-03-01")
	if got, want := loaded.TotalCostBasisAsOf(on), p.TotalCostBasisAsOf(on); !got.Equal(want) {
		t.Errorf("cost basis after roundtrip = %s, want %s", got, want)
	}
	if got := loaded.Ledger("AAPL").SharesAsOf(on); !got.Equal(Q(10)) {
		t.Errorf("AAPL shares after roundtrip = %s, want 10", got)
	}
}

func TestStoreCreatePortfolio(t *testing.T) {
	s := NewStore(t.TempDir())
	if err := s.CreatePortfolio(NewPortfolio("savings")); err != nil {
		t.Fatal(err)
	}
	if err := s.CreatePortfolio(NewPortfolio("savings")); !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("second create: err = %v, want ErrAlreadyExists", err)
	}
}

func TestStoreLoadMissing(t *testing.T) {
	s := NewStore(t.TempDir())
	if _, err := s.LoadPortfolio("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadPortfolio: err = %v, want ErrNotFound", err)
	}
	if _, err := s.LoadPlan("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadPlan: err = %v, want ErrNotFound", err)
	}
}

func TestStoreRejectsBadNames(t *testing.T) {
	s := NewStore(t.TempDir())
	// "market" maps to the filename market.jsonl, so it must be rejected
	// just like the literal filename: a portfolio written there would
	// corrupt the market data file.
	for _, name := range []string{"", "a/b", `a\b`, "market", "market.jsonl"} {
		if err := s.CreatePortfolio(NewPortfolio(name)); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("CreatePortfolio(%q): err = %v, want ErrInvalidInput", name, err)
		}
		if _, err := s.LoadPortfolio(name); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("LoadPortfolio(%q): err = %v, want ErrInvalidInput", name, err)
		}
	}
	// the rejected names left the market data untouched.
	if _, err := s.LoadMarketData(); err != nil {
		t.Errorf("market data unreadable after rejected creates: %v", err)
	}
}

func TestStorePlanRoundtrip(t *testing.T) {
	s := NewStore(t.TempDir())

	plan := NewRecurringInvestmentPlan()
	if err := plan.SetInstruments("AAPL", "MSFT"); err != nil {
		t.Fatal(err)
	}
	if err := plan.SetWeights(map[string]Percent{"AAPL": P(60), "MSFT": P(40)}); err != nil {
		t.Fatal(err)
	}
	if err := plan.SetAmount(usd(500)); err != nil {
		t.Fatal(err)
	}
	if err := plan.SetPeriodDays(14); err != nil {
		t.Fatal(err)
	}
	if err := plan.SetDateRange(MustParse("2024-01-02"), MustParse("2024-12-31")); err != nil {
		t.Fatal(err)
	}
	if err := s.WritePlan("monthly", plan); err != nil {
		t.Fatal(err)
	}

	loaded, err := s.LoadPlan("monthly")
	if err != nil {
		t.Fatal(err)
	}
	if got := loaded.Instruments(); !slices.Equal(got, []string{"AAPL", "MSFT"}) {
		t.Errorf("instruments after roundtrip = %v", got)
	}
	if got := loaded.Weights().Percents()["AAPL"]; !got.Equal(P(60)) {
		t.Errorf("AAPL weight after roundtrip = %s, want 60%%", got)
	}
	if !loaded.Amount().Equal(usd(500)) {
		t.Errorf("amount after roundtrip = %s, want $500", loaded.Amount())
	}
	if loaded.PeriodDays() != 14 {
		t.Errorf("period after roundtrip = %d, want 14", loaded.PeriodDays())
	}
	if got := loaded.DateRange(); got.From != MustParse("2024-01-02") || got.To != MustParse("2024-12-31") {
		t.Errorf("range after roundtrip = %s", got)
	}
}

func TestStoreMarketDataRoundtrip(t *testing.T) {
	s := NewStore(t.TempDir())

	m := NewMarketData()
	sec, err := NewSecurity("AAPL", "USD")
	if err != nil {
		t.Fatal(err)
	}
	sec.SetFeedID("4000")
	sec.SetPrice(MustParse("2024-01-05"), 100)
	sec.SetPrice(MustParse("2024-01-08"), 110)
	m.Add(sec)
	if err := s.WriteMarketData(m); err != nil {
		t.Fatal(err)
	}

	loaded, err := s.LoadMarketData()
	if err != nil {
		t.Fatal(err)
	}
	got := loaded.Get("AAPL")
	if got == nil {
		t.Fatal("AAPL missing after roundtrip")
	}
	if got.Currency() != "USD" || got.FeedID() != "4000" {
		t.Errorf("definition after roundtrip = %s %s", got.Currency(), got.FeedID())
	}
	price, err := loaded.Price("AAPL", MustParse("2024-01-08"))
	if err != nil {
		t.Fatal(err)
	}
	if !price.Equal(usd(110)) {
		t.Errorf("price after roundtrip = %s, want $110", price)
	}
}

func TestStoreLoadMissingMarketData(t *testing.T) {
	s := NewStore(t.TempDir())
	m, err := s.LoadMarketData()
	if err != nil {
		t.Fatalf("missing market data should load as empty, got %v", err)
	}
	if m.Has("AAPL") {
		t.Error("empty market data has securities")
	}
}

func TestStoreList(t *testing.T) {
	s := NewStore(t.TempDir())
	if err := s.CreatePortfolio(NewPortfolio("savings")); err != nil {
		t.Fatal(err)
	}
	if err := s.CreatePortfolio(NewPortfolio("retirement")); err != nil {
		t.Fatal(err)
	}
	plan := NewRecurringInvestmentPlan()
	if err := plan.SetInstruments("AAPL"); err != nil {
		t.Fatal(err)
	}
	if err := plan.SetAmount(usd(100)); err != nil {
		t.Fatal(err)
	}
	if err := s.WritePlan("monthly", plan); err != nil {
		t.Fatal(err)
	}

	portfolios, err := s.ListPortfolios()
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(portfolios, []string{"retirement", "savings"}) {
		t.Errorf("ListPortfolios = %v", portfolios)
	}
	plans, err := s.ListPlans()
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(plans, []string{"monthly"}) {
		t.Errorf("ListPlans = %v", plans)
	}
}
