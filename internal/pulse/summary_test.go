package pulse

import (
	"testing"

	"github.com/vesper-eve/token-pulse/internal/models"
)

func TestFormatSummary_CriticalLine(t *testing.T) {
	r := &models.PulseResult{
		Address: "0xfoo",
		Found:   true,
		Pulse:   models.PulseCritical,
		Token:   &models.TokenInfo{Symbol: "FOO"},
		Stats: &models.TokenStats{
			Price:     0.0000431,
			Mcap:      42809,
			Volume24h: 1654.9,
			Change24h: -42.88,
		},
	}

	want := "🔴 $FOO — CRITICAL | $0.000043 | mcap $42.8K | vol $1.7K | -42.9%"
	if got := FormatSummary(r); got != want {
		t.Errorf("summary mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestFormatSummary_PositiveChangeCarriesSign(t *testing.T) {
	r := &models.PulseResult{
		Found: true,
		Pulse: models.PulseStrong,
		Token: &models.TokenInfo{Symbol: "PEPE"},
		Stats: &models.TokenStats{
			Price:     0.0000012,
			Mcap:      5_200_000,
			Volume24h: 830_000,
			Change24h: 25,
		},
	}

	want := "💪 $PEPE — STRONG | $0.000001 | mcap $5.2M | vol $830.0K | +25.0%"
	if got := FormatSummary(r); got != want {
		t.Errorf("summary mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestFormatSummary_NotFoundTruncatesAddress(t *testing.T) {
	r := &models.PulseResult{
		Address: "0x6982508145454ce325ddbe47a25d4ec3d2311933",
		Found:   false,
		Pulse:   models.PulseDead,
	}

	want := "0x69825081... — dead"
	if got := FormatSummary(r); got != want {
		t.Errorf("summary mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestFormatSummary_ErrorResultDoesNotPanic(t *testing.T) {
	// Error entries carry no token/stats; formatting must still work
	r := &models.PulseResult{
		Address: "0xB",
		Found:   false,
		Pulse:   models.PulseError,
		Error:   "aggregator returned status 404 for 0xB",
	}

	if got := FormatSummary(r); got != "0xB... — error" {
		t.Errorf("unexpected summary %q", got)
	}
}

func TestFormatSummary_UnknownPulseFallsBack(t *testing.T) {
	r := &models.PulseResult{
		Found: true,
		Pulse: models.Pulse("zombie"),
		Token: &models.TokenInfo{Symbol: "ZZZ"},
		Stats: &models.TokenStats{},
	}

	want := "❓ $ZZZ — ZOMBIE | $0.000000 | mcap $0 | vol $0 | +0.0%"
	if got := FormatSummary(r); got != want {
		t.Errorf("summary mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestFormatCompact(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{42809, "42.8K"},
		{1654.9, "1.7K"},
		{999, "999"},
		{0, "0"},
		{1_000_000, "1.0M"},
		{12_345_678, "12.3M"},
	}
	for _, c := range cases {
		if got := formatCompact(c.in); got != c.want {
			t.Errorf("formatCompact(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
