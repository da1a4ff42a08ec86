package stooq

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"

	portfolio "github.com/RonnJacob/Portfolio-Manager-sub000"
)

const dailyURLFormat = "https://stooq.com/q/d/l/?s=%s&d1=%s&d2=%s&i=d"

// pricePoint is one row of the provider's daily series.
type pricePoint struct {
	Date  portfolio.Date
	Close float64
}

// fetchDaily downloads and parses the daily close series for one symbol.
func fetchDaily(client *http.Client, symbol string, rng portfolio.Range) ([]pricePoint, error) {
	addr := fmt.Sprintf(dailyURLFormat, symbol, stamp(rng.From), stamp(rng.To))
	body, err := portfolio.Wget(client, addr)
	if err != nil {
		return nil, err
	}
	points, err := parseDaily(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("bad response for %q: %w", symbol, err)
	}
	return points, nil
}

// stamp formats a date the way the endpoint's d1/d2 parameters expect.
func stamp(d portfolio.Date) string { return d.Format("20060102") }

// parseDaily reads the provider's CSV: a Date,Open,High,Low,Close,Volume
// header followed by one row per trading day. Stooq answers "No data" in
// plain text for unknown symbols; that surfaces here as a header mismatch.
func parseDaily(r io.Reader) ([]pricePoint, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("could not read header: %w", err)
	}
	if len(header) < 5 || header[0] != "Date" || header[4] != "Close" {
		return nil, fmt.Errorf("unexpected header %q", header)
	}

	var points []pricePoint
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) < 5 {
			return nil, fmt.Errorf("short record %q", record)
		}
		on, err := portfolio.ParseDate(record[0])
		if err != nil {
			return nil, fmt.Errorf("bad date in record %q: %w", record, err)
		}
		closePrice, err := strconv.ParseFloat(record[4], 64)
		if err != nil {
			return nil, fmt.Errorf("bad close in record %q: %w", record, err)
		}
		points = append(points, pricePoint{Date: on, Close: closePrice})
	}
	return points, nil
}
