package portfolio

import "slices"

// Lot is a dated record of shares acquired and the total amount paid for
// them (price plus commission). A lot is immutable once created except
// through a same-day merge.
type Lot struct {
	Date   Date     `json:"date"`
	Shares Quantity `json:"shares"`
	Cost   Money    `json:"cost"`
}

// lots is a purchase history sorted by date, with at most one lot per
// calendar day: a second purchase on an already-present date merges into
// the existing lot instead of creating a duplicate.
type lots []Lot

// compareDate orders lots for the binary searches below.
func compareDate(l Lot, on Date) int {
	if l.Date.Before(on) {
		return -1
	}
	if l.Date.After(on) {
		return 1
	}
	return 0
}

// merge inserts the purchase keeping the slice sorted, summing shares and
// cost into an existing same-day lot if there is one.
func (l lots) merge(on Date, shares Quantity, cost Money) lots {
	i, found := slices.BinarySearchFunc(l, on, compareDate)
	if found {
		l[i].Shares = l[i].Shares.Add(shares)
		l[i].Cost = l[i].Cost.Add(cost)
		return l
	}
	return slices.Insert(l, i, Lot{Date: on, Shares: shares, Cost: cost})
}

// upTo returns the prefix of lots acquired on or before 'on'.
func (l lots) upTo(on Date) lots {
	i, found := slices.BinarySearchFunc(l, on, compareDate)
	if found {
		i++
	}
	return l[:i]
}
