package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/betting-analytics/internal/domain/betslip"
)

type BetSlipRepository struct {
	store *Store
}

func NewBetSlipRepository(store *Store) *BetSlipRepository {
	return &BetSlipRepository{store: store}
}

func (r *BetSlipRepository) Create(_ context.Context, input betslip.NewBetSlip) (betslip.BetSlip, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[input.UserID]; !ok {
		return betslip.BetSlip{}, fmt.Errorf("insert bet slip for user %s: %w", input.UserID, ErrForeignKeyViolation)
	}

	rowID, err := s.nextID()
	if err != nil {
		return betslip.BetSlip{}, fmt.Errorf("insert bet slip: %w", err)
	}

	status := input.Status
	if status == "" {
		status = betslip.StatusOpen
	}
	now := s.now()
	slip := betslip.BetSlip{
		ID:                rowID,
		UserID:            input.UserID,
		Status:            status,
		BetDetails:        input.BetDetails.Clone(),
		Odds:              strings.TrimSpace(input.Odds),
		Stake:             strings.TrimSpace(input.Stake),
		PotentialWinnings: strings.TrimSpace(input.PotentialWinnings),
		Result:            strings.TrimSpace(input.Result),
		ScreenshotURL:     strings.TrimSpace(input.ScreenshotURL),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	s.betSlips[rowID] = slip

	return cloneBetSlip(slip), nil
}

func (r *BetSlipRepository) GetByID(_ context.Context, slipID string) (betslip.BetSlip, bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	slip, ok := s.betSlips[slipID]
	if !ok {
		return betslip.BetSlip{}, false, nil
	}
	return cloneBetSlip(slip), true, nil
}

func (r *BetSlipRepository) ListByUser(_ context.Context, userID string, filter betslip.ListFilter) ([]betslip.BetSlip, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0)
	for slipID, slip := range s.betSlips {
		if slip.UserID != userID {
			continue
		}
		if filter.Status != nil && slip.Status != *filter.Status {
			continue
		}
		ids = append(ids, slipID)
	}
	s.sortByCreation(ids)

	out := make([]betslip.BetSlip, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		out = append(out, cloneBetSlip(s.betSlips[ids[i]]))
	}
	return page(out, filter.Limit, filter.Offset), nil
}

func (r *BetSlipRepository) SummarizeByUser(_ context.Context, userID string) (betslip.Summary, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var summary betslip.Summary
	for _, slip := range s.betSlips {
		if slip.UserID == userID {
			summary.Add(slip.Status, 1)
		}
	}
	return summary, nil
}

func (r *BetSlipRepository) Update(_ context.Context, slipID string, patch betslip.Patch) (betslip.BetSlip, bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	slip, ok := s.betSlips[slipID]
	if !ok {
		return betslip.BetSlip{}, false, nil
	}

	if patch.Status != nil {
		slip.Status = *patch.Status
	}
	if patch.BetDetails != nil {
		slip.BetDetails = patch.BetDetails.Clone()
	}
	applyText(&slip.Odds, patch.Odds)
	applyText(&slip.Stake, patch.Stake)
	applyText(&slip.PotentialWinnings, patch.PotentialWinnings)
	applyText(&slip.Result, patch.Result)
	applyText(&slip.ScreenshotURL, patch.ScreenshotURL)
	slip.UpdatedAt = s.now()
	s.betSlips[slipID] = slip

	return cloneBetSlip(slip), true, nil
}

func (r *BetSlipRepository) Delete(_ context.Context, slipID string) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.betSlips[slipID]; !ok {
		return false, nil
	}
	delete(s.betSlips, slipID)
	s.forget(slipID)
	return true, nil
}

func cloneBetSlip(slip betslip.BetSlip) betslip.BetSlip {
	slip.BetDetails = slip.BetDetails.Clone()
	return slip
}

func applyText(dst *string, value *string) {
	if value != nil {
		*dst = strings.TrimSpace(*value)
	}
}

func page[T any](items []T, limit, offset int) []T {
	if offset > 0 {
		if offset >= len(items) {
			return []T{}
		}
		items = items[offset:]
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
