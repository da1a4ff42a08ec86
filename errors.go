package portfolio

import "errors"

// Error kinds returned by this package. They are sentinels: callers test
// them with errors.Is, and every returned error wraps exactly one of them.
var (
	// ErrInvalidInput reports a malformed request: blank ticker,
	// non-positive amount, negative commission, unparseable date, or an
	// inconsistent plan configuration.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound reports a missing named entity (portfolio, plan, security).
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists reports an attempt to create a named entity that is
	// already stored.
	ErrAlreadyExists = errors.New("already exists")

	// ErrPriceUnavailable reports that the oracle cannot price a ticker for
	// a date: the date is in the future, precedes the instrument's price
	// history, or the ticker is unknown.
	ErrPriceUnavailable = errors.New("price unavailable")

	// ErrInvalidWeights reports a malformed weight specification: key set
	// mismatch, negative percentage, or a sum different from 100.
	ErrInvalidWeights = errors.New("invalid weights")
)
