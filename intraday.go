package portfolio

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
)

// Intraday quotes come from the LS Exchange JSON endpoint. A purchase or
// valuation dated today should see the live/most-recent price, not
// yesterday's close; UpdateIntraday records today's quote so the regular
// carry-forward lookup picks it up.
//
// Securities opt in by carrying a feed id (the numeric instrumentId of the
// endpoint); securities without one are skipped.

const intradayURLFormat = "https://www.ls-tc.de/_rpc/json/instrument/chart/dataForInstrument?instrumentId=%s&series=intraday&type=mini"

// intradayLatest fetches the most recent quote for one instrument id.
func intradayLatest(client *http.Client, feedID string) (float64, error) {
	addr := fmt.Sprintf(intradayURLFormat, feedID)
	var jobj any
	if err := Jwget(client, addr, &jobj); err != nil {
		return 0, fmt.Errorf("error in wget %q: %w", feedID, err)
	}
	path := "$.series.intraday.data[-1:][1]"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("error parsing quote for %q: %q %w", feedID, path, err)
	}
	// jsonpath is never clear about whether it returns a list of 1 answer,
	// or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("error parsing quote for %q: %q not a float: %v", feedID, path, jval)
	}
	return val, nil
}

// UpdateIntraday fetches the latest quote for every security that carries a
// feed id and records it as today's price. Failures are collected per
// security and joined: one instrument without a quote does not prevent the
// others from updating.
func UpdateIntraday(client *http.Client, m *MarketData) error {
	var errs error
	today := Today()
	for sec := range m.Securities() {
		if sec.FeedID() == "" {
			continue
		}
		latest, err := intradayLatest(client, sec.FeedID())
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("could not get intraday for %s: %w", sec.Ticker(), err))
			continue
		}
		sec.SetPrice(today, latest)
	}
	return errs
}
