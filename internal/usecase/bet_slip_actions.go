package usecase

import (
	"context"
	"strings"

	"github.com/riskibarqy/betting-analytics/internal/domain/betslip"
	"github.com/riskibarqy/betting-analytics/internal/domain/user"
	"github.com/riskibarqy/betting-analytics/internal/platform/id"
	"github.com/riskibarqy/betting-analytics/internal/platform/logging"
	"go.opentelemetry.io/otel/trace"
)

const (
	msgBetSlipCreated      = "Bet slip created successfully"
	msgBetSlipRetrieved    = "Bet slip retrieved successfully"
	msgBetSlipsRetrieved   = "Bet slips retrieved successfully"
	msgBetSlipUpdated      = "Bet slip updated successfully"
	msgBetSlipDeleted      = "Bet slip deleted successfully"
	msgBetSlipNotFound     = "Bet slip not found"
	msgBetSlipInvalid      = "Invalid bet slip input"
	msgBetSlipCreateFailed = "Failed to create bet slip"
	msgBetSlipGetFailed    = "Failed to get bet slip"
	msgBetSlipListFailed   = "Failed to list bet slips"
	msgBetSlipUpdateFailed = "Failed to update bet slip"
	msgBetSlipDeleteFailed = "Failed to delete bet slip"

	defaultBetSlipPageSize = 50
	maxBetSlipPageSize     = 200
)

type BetSlipActions struct {
	repo   betslip.Repository
	users  user.Repository
	logger *logging.Logger
}

func NewBetSlipActions(repo betslip.Repository, users user.Repository, logger *logging.Logger) *BetSlipActions {
	if logger == nil {
		logger = logging.Default()
	}
	return &BetSlipActions{repo: repo, users: users, logger: logger}
}

func (a *BetSlipActions) Create(ctx context.Context, input betslip.NewBetSlip) Result[betslip.BetSlip] {
	ctx, span := startUsecaseSpan(ctx, "usecase.BetSlipActions.Create")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	if input.UserID == "" {
		return invalid[betslip.BetSlip](msgBetSlipInvalid, "user_id is required")
	}
	if input.Status != "" {
		status, err := betslip.ParseStatus(string(input.Status))
		if err != nil {
			return invalid[betslip.BetSlip](msgBetSlipInvalid, err.Error())
		}
		input.Status = status
	}

	_, found, err := a.users.GetByUserID(ctx, input.UserID)
	if err != nil {
		return persistenceFailure[betslip.BetSlip](ctx, a.logger, span, msgBetSlipCreateFailed, err, "user_id", input.UserID)
	}
	if !found {
		return notFound[betslip.BetSlip](msgUserNotFound)
	}

	created, err := a.repo.Create(ctx, input)
	if err != nil {
		return persistenceFailure[betslip.BetSlip](ctx, a.logger, span, msgBetSlipCreateFailed, err, "user_id", input.UserID)
	}
	return succeed(msgBetSlipCreated, created)
}

func (a *BetSlipActions) Get(ctx context.Context, userID, slipID string) Result[betslip.BetSlip] {
	ctx, span := startUsecaseSpan(ctx, "usecase.BetSlipActions.Get")
	defer span.End()

	slip, res, ok := a.loadOwned(ctx, span, userID, slipID, msgBetSlipGetFailed)
	if !ok {
		return res
	}
	return succeed(msgBetSlipRetrieved, slip)
}

func (a *BetSlipActions) ListByUser(ctx context.Context, userID string, filter betslip.ListFilter) Result[[]betslip.BetSlip] {
	ctx, span := startUsecaseSpan(ctx, "usecase.BetSlipActions.ListByUser")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return invalid[[]betslip.BetSlip](msgBetSlipInvalid, "user_id is required")
	}
	if filter.Status != nil {
		status, err := betslip.ParseStatus(string(*filter.Status))
		if err != nil {
			return invalid[[]betslip.BetSlip](msgBetSlipInvalid, err.Error())
		}
		filter.Status = &status
	}
	if filter.Offset < 0 {
		return invalid[[]betslip.BetSlip](msgBetSlipInvalid, "offset must be zero or positive")
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultBetSlipPageSize
	}
	if filter.Limit > maxBetSlipPageSize {
		filter.Limit = maxBetSlipPageSize
	}

	items, err := a.repo.ListByUser(ctx, userID, filter)
	if err != nil {
		return persistenceFailure[[]betslip.BetSlip](ctx, a.logger, span, msgBetSlipListFailed, err, "user_id", userID)
	}
	return succeed(msgBetSlipsRetrieved, items)
}

func (a *BetSlipActions) Update(ctx context.Context, userID, slipID string, patch betslip.Patch) Result[betslip.BetSlip] {
	ctx, span := startUsecaseSpan(ctx, "usecase.BetSlipActions.Update")
	defer span.End()

	if patch.Status != nil {
		status, err := betslip.ParseStatus(string(*patch.Status))
		if err != nil {
			return invalid[betslip.BetSlip](msgBetSlipInvalid, err.Error())
		}
		patch.Status = &status
	}

	slip, res, ok := a.loadOwned(ctx, span, userID, slipID, msgBetSlipUpdateFailed)
	if !ok {
		return res
	}

	updated, found, err := a.repo.Update(ctx, slip.ID, patch)
	if err != nil {
		return persistenceFailure[betslip.BetSlip](ctx, a.logger, span, msgBetSlipUpdateFailed, err, "bet_slip_id", slip.ID)
	}
	if !found {
		return notFound[betslip.BetSlip](msgBetSlipNotFound)
	}
	return succeed(msgBetSlipUpdated, updated)
}

// Delete is idempotent for missing slips but refuses slips owned by someone else.
func (a *BetSlipActions) Delete(ctx context.Context, userID, slipID string) Result[struct{}] {
	ctx, span := startUsecaseSpan(ctx, "usecase.BetSlipActions.Delete")
	defer span.End()

	userID = strings.TrimSpace(userID)
	slipID = strings.TrimSpace(slipID)
	if userID == "" {
		return invalid[struct{}](msgBetSlipInvalid, "user_id is required")
	}
	if !id.Valid(slipID) {
		return succeedEmpty[struct{}](msgBetSlipDeleted)
	}

	slip, found, err := a.repo.GetByID(ctx, slipID)
	if err != nil {
		return persistenceFailure[struct{}](ctx, a.logger, span, msgBetSlipDeleteFailed, err, "bet_slip_id", slipID)
	}
	if !found {
		return succeedEmpty[struct{}](msgBetSlipDeleted)
	}
	if slip.UserID != userID {
		return notFound[struct{}](msgBetSlipNotFound)
	}

	if _, err := a.repo.Delete(ctx, slipID); err != nil {
		return persistenceFailure[struct{}](ctx, a.logger, span, msgBetSlipDeleteFailed, err, "bet_slip_id", slipID)
	}
	return succeedEmpty[struct{}](msgBetSlipDeleted)
}

// loadOwned returns ok=false with the failure result when the slip is missing,
// malformed, or belongs to another user.
func (a *BetSlipActions) loadOwned(ctx context.Context, span trace.Span, userID, slipID, failMsg string) (betslip.BetSlip, Result[betslip.BetSlip], bool) {
	userID = strings.TrimSpace(userID)
	slipID = strings.TrimSpace(slipID)
	if userID == "" {
		return betslip.BetSlip{}, invalid[betslip.BetSlip](msgBetSlipInvalid, "user_id is required"), false
	}
	if !id.Valid(slipID) {
		return betslip.BetSlip{}, notFound[betslip.BetSlip](msgBetSlipNotFound), false
	}

	slip, found, err := a.repo.GetByID(ctx, slipID)
	if err != nil {
		return betslip.BetSlip{}, persistenceFailure[betslip.BetSlip](ctx, a.logger, span, failMsg, err, "bet_slip_id", slipID), false
	}
	if !found || slip.UserID != userID {
		return betslip.BetSlip{}, notFound[betslip.BetSlip](msgBetSlipNotFound), false
	}
	return slip, Result[betslip.BetSlip]{}, true
}
