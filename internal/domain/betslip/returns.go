package betslip

import (
	"math"
	"strconv"
	"strings"
)

// Returns aggregates money outcomes over settled slips. Slips whose stake or
// winnings are not numeric are skipped.
type Returns struct {
	Staked float64
	Profit float64
}

// ROI is profit / staked, or 0 when nothing numeric has been staked.
func (r Returns) ROI() float64 {
	if r.Staked == 0 {
		return 0
	}
	return r.Profit / r.Staked
}

func ComputeReturns(slips []BetSlip) Returns {
	var out Returns
	for _, slip := range slips {
		stake, ok := parseAmount(slip.Stake)
		if !ok {
			continue
		}
		switch slip.Status {
		case StatusWon:
			winnings, ok := parseAmount(slip.PotentialWinnings)
			if !ok {
				continue
			}
			out.Staked += stake
			out.Profit += winnings - stake
		case StatusLost:
			out.Staked += stake
			out.Profit -= stake
		}
	}
	return out
}

// parseAmount accepts plain numbers with an optional leading currency sign
// and thousands separators, e.g. "$1,250.50". NaN and infinities are rejected.
func parseAmount(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "$")
	raw = strings.ReplaceAll(raw, ",", "")
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, false
	}
	return v, true
}
