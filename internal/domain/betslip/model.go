package betslip

import (
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/betting-analytics/internal/platform/jsondoc"
)

type Status string

const (
	StatusOpen Status = "open"
	StatusWon  Status = "won"
	StatusLost Status = "lost"
)

func ParseStatus(raw string) (Status, error) {
	switch s := Status(strings.ToLower(strings.TrimSpace(raw))); s {
	case StatusOpen, StatusWon, StatusLost:
		return s, nil
	default:
		return "", fmt.Errorf("unknown bet status %q", raw)
	}
}

// BetSlip is one wager recorded by a user. Odds, stake and winnings are kept
// as the free-form text the user entered.
type BetSlip struct {
	ID                string
	UserID            string
	Status            Status
	BetDetails        jsondoc.Object
	Odds              string
	Stake             string
	PotentialWinnings string
	Result            string
	ScreenshotURL     string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type NewBetSlip struct {
	UserID            string
	Status            Status
	BetDetails        jsondoc.Object
	Odds              string
	Stake             string
	PotentialWinnings string
	Result            string
	ScreenshotURL     string
}

type Patch struct {
	Status            *Status
	BetDetails        *jsondoc.Object
	Odds              *string
	Stake             *string
	PotentialWinnings *string
	Result            *string
	ScreenshotURL     *string
}

func (p Patch) IsEmpty() bool {
	return p.Status == nil &&
		p.BetDetails == nil &&
		p.Odds == nil &&
		p.Stake == nil &&
		p.PotentialWinnings == nil &&
		p.Result == nil &&
		p.ScreenshotURL == nil
}

// ListFilter narrows ListByUser. Zero Limit means no limit.
type ListFilter struct {
	Status *Status
	Limit  int
	Offset int
}

// Summary counts a user's slips per status.
type Summary struct {
	Total int
	Open  int
	Won   int
	Lost  int
}

func (s *Summary) Add(status Status, n int) {
	s.Total += n
	switch status {
	case StatusOpen:
		s.Open += n
	case StatusWon:
		s.Won += n
	case StatusLost:
		s.Lost += n
	}
}

// WinRate is won / settled, or 0 when nothing has settled yet.
func (s Summary) WinRate() float64 {
	settled := s.Won + s.Lost
	if settled == 0 {
		return 0
	}
	return float64(s.Won) / float64(settled)
}
