package stooq

import (
	"strings"
	"testing"

	portfolio "github.com/RonnJacob/Portfolio-Manager-sub000"
)

func TestParseDaily(t *testing.T) {
	csv := `Date,Open,High,Low,Close,Volume
2024-01-05,181.99,182.76,180.17,181.18,62303300
2024-01-08,182.09,185.60,181.50,185.56,59144500
`
	points, err := parseDaily(strings.NewReader(csv))
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != 2 {
		t.Fatalf("parsed %d points, want 2", len(points))
	}
	if points[0].Date != portfolio.MustParse("2024-01-05") || points[0].Close != 181.18 {
		t.Errorf("points[0] = %+v", points[0])
	}
	if points[1].Date != portfolio.MustParse("2024-01-08") || points[1].Close != 185.56 {
		t.Errorf("points[1] = %+v", points[1])
	}
}

func TestParseDailyRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "no data answer", body: "No data"},
		{name: "wrong header", body: "Symbol,Close\naapl.us,181.18\n"},
		{name: "bad close", body: "Date,Open,High,Low,Close,Volume\n2024-01-05,1,1,1,n/a,0\n"},
		{name: "bad date", body: "Date,Open,High,Low,Close,Volume\nsoon,1,1,1,181.18,0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseDaily(strings.NewReader(tt.body)); err == nil {
				t.Error("want an error, got none")
			}
		})
	}
}

func TestSymbol(t *testing.T) {
	tests := []struct{ ticker, want string }{
		{"AAPL", "aapl.us"},
		{"aapl", "aapl.us"},
		{"MC.PA", "mc.pa"},
		{"BRK.B", "brk.b"},
	}
	for _, tt := range tests {
		if got := Symbol(tt.ticker); got != tt.want {
			t.Errorf("Symbol(%q) = %q, want %q", tt.ticker, got, tt.want)
		}
	}
}
