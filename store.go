package portfolio

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// This file persists named portfolios, plans, and market data in a folder,
// in a way that is human-readable and git-friendly: one JSON document per
// line, stable field order, one file per named entity.

const (
	portfolioExt = ".jsonl"
	planExt      = ".plan.json"
	marketFile   = "market.jsonl"
)

// Store persists named portfolios and recurring investment plans, plus the
// shared market data, under a single directory.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir. The directory is created lazily
// on the first write.
func NewStore(dir string) *Store { return &Store{dir: dir} }

// validateName rejects names that would escape the store directory or
// collide with the market data file. The collision check covers the
// resulting filename: a portfolio named "market" would land on marketFile.
func validateName(name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || name == marketFile || name+portfolioExt == marketFile {
		return fmt.Errorf("%w: invalid store name %q", ErrInvalidInput, name)
	}
	return nil
}

// jlot is the persisted form of one purchase lot.
type jlot struct {
	Ticker string   `json:"ticker"`
	Date   Date     `json:"date"`
	Shares Quantity `json:"shares"`
	Cost   Money    `json:"cost"`
}

// EncodePortfolio writes the portfolio's purchase history as JSONL, one lot
// per line, tickers in sorted order and lots in date order.
func EncodePortfolio(w io.Writer, p *Portfolio) error {
	enc := json.NewEncoder(w)
	for ticker := range p.Tickers() {
		for lot := range p.Ledger(ticker).Lots() {
			line := jlot{Ticker: ticker, Date: lot.Date, Shares: lot.Shares, Cost: lot.Cost}
			if err := enc.Encode(line); err != nil {
				return fmt.Errorf("could not encode lot %s %s: %w", ticker, lot.Date, err)
			}
		}
	}
	return nil
}

// DecodePortfolio reads a portfolio's purchase history from JSONL.
func DecodePortfolio(r io.Reader, name string) (*Portfolio, error) {
	p := NewPortfolio(name)
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var j jlot
		if err := json.Unmarshal([]byte(line), &j); err != nil {
			return nil, fmt.Errorf("format error on line %d: %w", n, err)
		}
		ticker := CanonicalTicker(j.Ticker)
		ledger := p.ledgers[ticker]
		if ledger == nil {
			ledger = NewShareLedger(ticker)
			p.ledgers[ticker] = ledger
		}
		if err := ledger.AddLot(j.Date, j.Shares, j.Cost); err != nil {
			return nil, fmt.Errorf("invalid lot on line %d: %w", n, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return p, nil
}

// jplan is the persisted form of a recurring investment plan.
type jplan struct {
	Instruments []string           `json:"instruments"`
	Weights     map[string]Percent `json:"weights,omitempty"`
	Amount      Money              `json:"amount"`
	PeriodDays  int                `json:"periodDays"`
	From        Date               `json:"from"`
	To          Date               `json:"to"`
}

// EncodePlan writes the plan configuration as a single JSON document.
func EncodePlan(w io.Writer, plan *RecurringInvestmentPlan) error {
	j := jplan{
		Instruments: plan.instruments,
		Weights:     plan.percents,
		Amount:      plan.amount,
		PeriodDays:  plan.periodDays,
		From:        plan.span.From,
		To:          plan.span.To,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(j)
}

// DecodePlan reads a plan configuration. Each field goes through its setter
// so a hand-edited file cannot produce an inconsistent plan.
func DecodePlan(r io.Reader) (*RecurringInvestmentPlan, error) {
	var j jplan
	if err := json.NewDecoder(r).Decode(&j); err != nil {
		return nil, fmt.Errorf("format error: %w", err)
	}
	plan := NewRecurringInvestmentPlan()
	if err := plan.SetInstruments(j.Instruments...); err != nil {
		return nil, err
	}
	if err := plan.SetWeights(j.Weights); err != nil {
		return nil, err
	}
	if err := plan.SetAmount(j.Amount); err != nil {
		return nil, err
	}
	if err := plan.SetPeriodDays(j.PeriodDays); err != nil {
		return nil, err
	}
	if err := plan.SetDateRange(j.From, j.To); err != nil {
		return nil, err
	}
	return plan, nil
}

// jmarketLine is the persisted form of one market data fact: either a
// security definition (currency set) or a dated price (on set).
type jmarketLine struct {
	Ticker   string   `json:"ticker"`
	Currency string   `json:"currency,omitempty"`
	FeedID   string   `json:"feedId,omitempty"`
	On       *Date    `json:"on,omitempty"`
	Price    *float64 `json:"price,omitempty"`
}

// EncodeMarketData writes security definitions followed by their dated
// prices, as JSONL.
func EncodeMarketData(w io.Writer, m *MarketData) error {
	enc := json.NewEncoder(w)
	for sec := range m.Securities() {
		def := jmarketLine{Ticker: sec.Ticker(), Currency: sec.Currency(), FeedID: sec.FeedID()}
		if err := enc.Encode(def); err != nil {
			return fmt.Errorf("could not encode security %s: %w", sec.Ticker(), err)
		}
	}
	for sec := range m.Securities() {
		for on, price := range sec.Prices() {
			on, price := on, price
			line := jmarketLine{Ticker: sec.Ticker(), On: &on, Price: &price}
			if err := enc.Encode(line); err != nil {
				return fmt.Errorf("could not encode price %s %s: %w", sec.Ticker(), on, err)
			}
		}
	}
	return nil
}

// DecodeMarketData reads security definitions and prices from JSONL.
// Prices for undeclared tickers are a format error: definitions come first.
func DecodeMarketData(r io.Reader) (*MarketData, error) {
	m := NewMarketData()
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var j jmarketLine
		if err := json.Unmarshal([]byte(line), &j); err != nil {
			return nil, fmt.Errorf("format error on line %d: %w", n, err)
		}
		switch {
		case j.On != nil && j.Price != nil:
			sec := m.Get(j.Ticker)
			if sec == nil {
				return nil, fmt.Errorf("format error on line %d: price for undeclared ticker %q", n, j.Ticker)
			}
			sec.SetPrice(*j.On, *j.Price)
		default:
			sec, err := NewSecurity(j.Ticker, j.Currency)
			if err != nil {
				return nil, fmt.Errorf("format error on line %d: %w", n, err)
			}
			sec.SetFeedID(j.FeedID)
			m.Add(sec)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

// create writes a new file, failing with ErrAlreadyExists when it is
// already there.
func (s *Store) create(filename string, encode func(io.Writer) error) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(s.dir, filename)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("%w: %q", ErrAlreadyExists, filename)
	}
	if err != nil {
		return err
	}
	defer f.Close()
	return encode(f)
}

// write overwrites a file, creating it if needed.
func (s *Store) write(filename string, encode func(io.Writer) error) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return err
	}
	defer f.Close()
	return encode(f)
}

// open opens a file for reading, failing with ErrNotFound when missing.
func (s *Store) open(filename string) (*os.File, error) {
	f, err := os.Open(filepath.Join(s.dir, filename))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, filename)
	}
	return f, err
}

// CreatePortfolio saves a new named portfolio; it fails with
// ErrAlreadyExists when the name is taken.
func (s *Store) CreatePortfolio(p *Portfolio) error {
	if err := validateName(p.Name()); err != nil {
		return err
	}
	return s.create(p.Name()+portfolioExt, func(w io.Writer) error { return EncodePortfolio(w, p) })
}

// WritePortfolio saves a named portfolio, overwriting any previous state.
func (s *Store) WritePortfolio(p *Portfolio) error {
	if err := validateName(p.Name()); err != nil {
		return err
	}
	return s.write(p.Name()+portfolioExt, func(w io.Writer) error { return EncodePortfolio(w, p) })
}

// LoadPortfolio loads a named portfolio; it fails with ErrNotFound when
// the name is unknown.
func (s *Store) LoadPortfolio(name string) (*Portfolio, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	f, err := s.open(name + portfolioExt)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := DecodePortfolio(f, name)
	if err != nil {
		return nil, fmt.Errorf("could not decode portfolio %q: %w", name, err)
	}
	return p, nil
}

// CreatePlan saves a new named plan; it fails with ErrAlreadyExists when
// the name is taken.
func (s *Store) CreatePlan(name string, plan *RecurringInvestmentPlan) error {
	if err := validateName(name); err != nil {
		return err
	}
	return s.create(name+planExt, func(w io.Writer) error { return EncodePlan(w, plan) })
}

// WritePlan saves a named plan, overwriting any previous configuration.
func (s *Store) WritePlan(name string, plan *RecurringInvestmentPlan) error {
	if err := validateName(name); err != nil {
		return err
	}
	return s.write(name+planExt, func(w io.Writer) error { return EncodePlan(w, plan) })
}

// LoadPlan loads a named plan; it fails with ErrNotFound when the name is
// unknown.
func (s *Store) LoadPlan(name string) (*RecurringInvestmentPlan, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	f, err := s.open(name + planExt)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	plan, err := DecodePlan(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode plan %q: %w", name, err)
	}
	return plan, nil
}

// WriteMarketData saves the shared market data file.
func (s *Store) WriteMarketData(m *MarketData) error {
	return s.write(marketFile, func(w io.Writer) error { return EncodeMarketData(w, m) })
}

// LoadMarketData loads the shared market data file. A missing file is an
// empty collection, not an error.
func (s *Store) LoadMarketData() (*MarketData, error) {
	f, err := s.open(marketFile)
	if errors.Is(err, ErrNotFound) {
		return NewMarketData(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := DecodeMarketData(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode market data: %w", err)
	}
	return m, nil
}

// ListPortfolios returns the names of stored portfolios, sorted.
func (s *Store) ListPortfolios() ([]string, error) { return s.list(portfolioExt) }

// ListPlans returns the names of stored plans, sorted.
func (s *Store) ListPlans() ([]string, error) { return s.list(planExt) }

func (s *Store) list(ext string) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ext) || name == marketFile {
			continue
		}
		names = append(names, strings.TrimSuffix(name, ext))
	}
	return names, nil
}
