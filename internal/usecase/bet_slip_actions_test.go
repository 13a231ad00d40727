package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/betting-analytics/internal/domain/betslip"
	"github.com/riskibarqy/betting-analytics/internal/domain/fantasy"
	"github.com/riskibarqy/betting-analytics/internal/domain/user"
	"github.com/riskibarqy/betting-analytics/internal/infrastructure/repository/memory"
	betslipmock "github.com/riskibarqy/betting-analytics/internal/mocks/domain/betslip"
	usermock "github.com/riskibarqy/betting-analytics/internal/mocks/domain/user"
	"github.com/riskibarqy/betting-analytics/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

type testEnv struct {
	store       *memory.Store
	fantasyRepo *memory.FantasyRepository
	users       *UserActions
	betSlips    *BetSlipActions
	chats       *ChatActions
	fantasy     *FantasyActions
	dashboard   *DashboardService
}

func newTestEnv(t *testing.T, userIDs ...string) testEnv {
	t.Helper()

	store := memory.NewStore(nil)
	userRepo := memory.NewUserRepository(store)
	slipRepo := memory.NewBetSlipRepository(store)
	chatRepo := memory.NewChatRepository(store)
	fantasyRepo := memory.NewFantasyRepository(store)
	logger := logging.NewNop()

	env := testEnv{
		store:       store,
		fantasyRepo: fantasyRepo,
		users:       NewUserActions(userRepo, logger),
		betSlips:    NewBetSlipActions(slipRepo, userRepo, logger),
		chats:       NewChatActions(chatRepo, userRepo, logger),
		fantasy:     NewFantasyActions(fantasyRepo, userRepo, fantasy.DefaultRules(), logger),
		dashboard:   NewDashboardService(userRepo, slipRepo, chatRepo, fantasyRepo, logger),
	}
	for _, userID := range userIDs {
		if res := env.users.Create(context.Background(), user.NewUser{UserID: userID, Email: userID + "@b.com"}); !res.Success {
			t.Fatalf("seed user %s: %+v", userID, res)
		}
	}
	return env
}

func TestBetSlipActions_CreateAndList(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, "u1")

	res := env.betSlips.Create(ctx, betslip.NewBetSlip{UserID: "u1", Odds: "+150", Stake: "10"})
	if !res.Success || res.Message != "Bet slip created successfully" {
		t.Fatalf("unexpected create result: %+v", res)
	}
	if res.Data.Status != betslip.StatusOpen {
		t.Fatalf("expected default status open, got %s", res.Data.Status)
	}

	list := env.betSlips.ListByUser(ctx, "u1", betslip.ListFilter{})
	if !list.Success || len(*list.Data) != 1 {
		t.Fatalf("unexpected list result: %+v", list)
	}
}

func TestBetSlipActions_CreateForUnknownUser(t *testing.T) {
	env := newTestEnv(t)

	res := env.betSlips.Create(context.Background(), betslip.NewBetSlip{UserID: "ghost"})
	if res.Success || res.Message != "User not found" || !errors.Is(res.Err, ErrNotFound) {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestBetSlipActions_RejectsUnknownStatus(t *testing.T) {
	env := newTestEnv(t, "u1")

	res := env.betSlips.Create(context.Background(), betslip.NewBetSlip{UserID: "u1", Status: "pushed"})
	if res.Success || !errors.Is(res.Err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %+v", res)
	}
}

func TestBetSlipActions_OwnershipIsEnforced(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, "u1", "u2")

	created := env.betSlips.Create(ctx, betslip.NewBetSlip{UserID: "u1"})
	slipID := created.Data.ID

	if res := env.betSlips.Get(ctx, "u2", slipID); res.Message != "Bet slip not found" {
		t.Fatalf("expected other user to be refused, got %+v", res)
	}

	won := betslip.StatusWon
	if res := env.betSlips.Update(ctx, "u2", slipID, betslip.Patch{Status: &won}); res.Success {
		t.Fatalf("expected update by other user to fail, got %+v", res)
	}
	if res := env.betSlips.Delete(ctx, "u2", slipID); res.Success {
		t.Fatalf("expected delete by other user to fail, got %+v", res)
	}

	updated := env.betSlips.Update(ctx, "u1", slipID, betslip.Patch{Status: &won})
	if !updated.Success || updated.Data.Status != betslip.StatusWon {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	if res := env.betSlips.Delete(ctx, "u1", slipID); !res.Success {
		t.Fatalf("delete: %+v", res)
	}
	if res := env.betSlips.Delete(ctx, "u1", slipID); !res.Success || res.Message != "Bet slip deleted successfully" {
		t.Fatalf("expected repeat delete to succeed, got %+v", res)
	}
}

func TestBetSlipActions_MalformedIDIsNotFound(t *testing.T) {
	repo := betslipmock.NewRepository(t)
	actions := NewBetSlipActions(repo, usermock.NewRepository(t), logging.NewNop())

	res := actions.Get(context.Background(), "u1", "not-a-uuid")
	if res.Message != "Bet slip not found" {
		t.Fatalf("unexpected result: %+v", res)
	}
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestBetSlipActions_ListClampsPageSize(t *testing.T) {
	repo := betslipmock.NewRepository(t)
	actions := NewBetSlipActions(repo, usermock.NewRepository(t), logging.NewNop())

	repo.
		On("ListByUser", mock.Anything, "u1", mock.MatchedBy(func(f betslip.ListFilter) bool { return f.Limit == 200 })).
		Return([]betslip.BetSlip{}, nil).
		Once()

	res := actions.ListByUser(context.Background(), "u1", betslip.ListFilter{Limit: 5000})
	if !res.Success {
		t.Fatalf("unexpected result: %+v", res)
	}
}
