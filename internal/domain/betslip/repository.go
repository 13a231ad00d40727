package betslip

import "context"

type Repository interface {
	Create(ctx context.Context, input NewBetSlip) (BetSlip, error)
	GetByID(ctx context.Context, id string) (BetSlip, bool, error)
	ListByUser(ctx context.Context, userID string, filter ListFilter) ([]BetSlip, error)
	SummarizeByUser(ctx context.Context, userID string) (Summary, error)
	Update(ctx context.Context, id string, patch Patch) (BetSlip, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
