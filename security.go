package portfolio

import (
	"fmt"
	"iter"
	"regexp"
)

// tickerRegex checks the format of an instrument ticker: 1 to 12 upper-case
// letters, digits, or dots (e.g. "AAPL", "BRK.B").
var tickerRegex = regexp.MustCompile(`^[A-Z0-9.]{1,12}$`)

// currencyCodeRegex checks the format of a currency: 3 upper-case letters.
var currencyCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// ValidateTicker checks that a ticker has a plausible instrument format.
func ValidateTicker(ticker string) error {
	if !tickerRegex.MatchString(ticker) {
		return fmt.Errorf("%w: invalid ticker %q", ErrInvalidInput, ticker)
	}
	return nil
}

// ValidateCurrency checks that a currency is a 3-letter ISO 4217 code.
func ValidateCurrency(currency string) error {
	if !currencyCodeRegex.MatchString(currency) {
		return fmt.Errorf("%w: invalid currency code %q", ErrInvalidInput, currency)
	}
	return nil
}

// Security holds the market data of one instrument: its identity and the
// chronological history of its daily closing prices.
type Security struct {
	ticker   string
	currency string
	feedID   string // optional identifier on the intraday feed
	prices   History[float64]
}

// NewSecurity declares a security. Ticker and currency must be valid.
func NewSecurity(ticker, currency string) (*Security, error) {
	ticker = CanonicalTicker(ticker)
	if err := ValidateTicker(ticker); err != nil {
		return nil, err
	}
	if err := ValidateCurrency(currency); err != nil {
		return nil, err
	}
	return &Security{ticker: ticker, currency: currency}, nil
}

// Ticker returns the instrument's ticker.
func (s *Security) Ticker() string { return s.ticker }

// Currency returns the currency the instrument's prices are quoted in.
func (s *Security) Currency() string { return s.currency }

// FeedID returns the instrument's identifier on the intraday feed, or "".
func (s *Security) FeedID() string { return s.feedID }

// SetFeedID records the instrument's identifier on the intraday feed.
func (s *Security) SetFeedID(id string) { s.feedID = id }

// SetPrice records the closing price for a day, overwriting any previous
// value for that day.
func (s *Security) SetPrice(on Date, price float64) { s.prices.Append(on, price) }

// Prices returns an iterator over the recorded (day, price) pairs in
// chronological order.
func (s *Security) Prices() iter.Seq2[Date, float64] { return s.prices.Values() }

// EarliestPriceDate returns the first day with a recorded price, and false
// when there is no price history at all.
func (s *Security) EarliestPriceDate() (Date, bool) {
	if s.prices.Len() == 0 {
		return Date{}, false
	}
	day, _ := s.prices.Earliest()
	return day, true
}
