package portfolio

import "testing"

func TestHistoryValueAsOf(t *testing.T) {
	var h History[float64]
	// out of order on purpose, Append keeps the history sorted.
	h.Append(MustParse("2024-01-05"), 105)
	h.Append(MustParse("2024-01-01"), 101)
	h.Append(MustParse("2024-01-03"), 103)

	tests := []struct {
		on   string
		want float64
		ok   bool
	}{
		{on: "2023-12-31"},                       // before any value
		{on: "2024-01-01", want: 101, ok: true},  // exact
		{on: "2024-01-02", want: 101, ok: true},  // carry-forward
		{on: "2024-01-04", want: 103, ok: true},  // carry-forward
		{on: "2024-06-01", want: 105, ok: true},  // after the last value
	}
	for _, tt := range tests {
		t.Run(tt.on, func(t *testing.T) {
			got, ok := h.ValueAsOf(MustParse(tt.on))
			if ok != tt.ok || got != tt.want {
				t.Errorf("ValueAsOf(%s) = %v, %v, want %v, %v", tt.on, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestHistoryAppendOverwrites(t *testing.T) {
	var h History[float64]
	on := MustParse("2024-01-01")
	h.Append(on, 100)
	h.Append(on, 200)

	if h.Len() != 1 {
		t.Fatalf("Len = %d, want 1", h.Len())
	}
	if got, _ := h.Get(on); got != 200 {
		t.Errorf("Get(%s) = %v, want 200", on, got)
	}
}
