package betslip

import (
	"math"
	"testing"
)

func TestComputeReturns(t *testing.T) {
	slips := []BetSlip{
		{Status: StatusWon, Stake: "$10", PotentialWinnings: "25"},
		{Status: StatusLost, Stake: "20"},
		{Status: StatusOpen, Stake: "100", PotentialWinnings: "300"},
		{Status: StatusWon, Stake: "ten", PotentialWinnings: "30"},
		{Status: StatusWon, Stake: "1,000", PotentialWinnings: "n/a"},
	}

	got := ComputeReturns(slips)
	if got.Staked != 30 {
		t.Fatalf("unexpected staked: %v", got.Staked)
	}
	if got.Profit != -5 {
		t.Fatalf("unexpected profit: %v", got.Profit)
	}
	if math.Abs(got.ROI()-(-5.0/30.0)) > 1e-9 {
		t.Fatalf("unexpected roi: %v", got.ROI())
	}
}

func TestReturnsROIWithoutStake(t *testing.T) {
	if roi := (Returns{}).ROI(); roi != 0 {
		t.Fatalf("expected zero roi, got %v", roi)
	}
}

func TestComputeReturns_SkipsNonFiniteAmounts(t *testing.T) {
	slips := []BetSlip{
		{Status: StatusWon, Stake: "NaN", PotentialWinnings: "10"},
		{Status: StatusLost, Stake: "Inf"},
		{Status: StatusWon, Stake: "5", PotentialWinnings: "+Infinity"},
		{Status: StatusLost, Stake: "-infinity"},
		{Status: StatusWon, Stake: "10", PotentialWinnings: "15"},
	}

	got := ComputeReturns(slips)
	if got.Staked != 10 || got.Profit != 5 {
		t.Fatalf("unexpected returns: %+v", got)
	}
	if roi := got.ROI(); math.IsNaN(roi) || math.IsInf(roi, 0) {
		t.Fatalf("expected finite roi, got %v", roi)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{in: "$1,250.50", want: 1250.5, ok: true},
		{in: " 7 ", want: 7, ok: true},
		{in: "-3", ok: false},
		{in: "NaN", ok: false},
		{in: "Inf", ok: false},
		{in: "1e400", ok: false},
		{in: "", ok: false},
	}

	for _, tt := range tests {
		got, ok := parseAmount(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Fatalf("parseAmount(%q)=%v,%v want=%v,%v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
