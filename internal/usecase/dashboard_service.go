package usecase

import (
	"context"
	"strings"

	"github.com/riskibarqy/betting-analytics/internal/domain/betslip"
	"github.com/riskibarqy/betting-analytics/internal/domain/chat"
	"github.com/riskibarqy/betting-analytics/internal/domain/fantasy"
	"github.com/riskibarqy/betting-analytics/internal/domain/user"
	"github.com/riskibarqy/betting-analytics/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

const (
	msgDashboardRetrieved = "Dashboard retrieved successfully"
	msgDashboardFailed    = "Failed to load dashboard"

	dashboardRecentBets = 5
)

type BettingOverview struct {
	TotalBets   int
	OpenBets    int
	WonBets     int
	LostBets    int
	WinRate     float64
	TotalProfit float64
	ROI         float64
}

// PopularBet is reserved for community-wide trends; the list is empty until
// aggregation across users exists.
type PopularBet struct {
	Description string
	Count       int
}

type Dashboard struct {
	User             user.User
	Plan             Plan
	Overview         BettingOverview
	RecentBets       []betslip.BetSlip
	PopularBets      []PopularBet
	ChatGroupCount   int
	FantasyTeamCount int
}

type DashboardService struct {
	users    user.Repository
	betSlips betslip.Repository
	chats    chat.Repository
	fantasy  fantasy.Repository
	logger   *logging.Logger
}

func NewDashboardService(
	users user.Repository,
	betSlips betslip.Repository,
	chats chat.Repository,
	fantasyRepo fantasy.Repository,
	logger *logging.Logger,
) *DashboardService {
	if logger == nil {
		logger = logging.Default()
	}
	return &DashboardService{
		users:    users,
		betSlips: betSlips,
		chats:    chats,
		fantasy:  fantasyRepo,
		logger:   logger,
	}
}

func (s *DashboardService) Get(ctx context.Context, userID string) Result[Dashboard] {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Get")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return invalid[Dashboard](msgUserInvalid, "user_id is required")
	}

	u, found, err := s.users.GetByUserID(ctx, userID)
	if err != nil {
		return persistenceFailure[Dashboard](ctx, s.logger, span, msgDashboardFailed, err, "user_id", userID)
	}
	if !found {
		return notFound[Dashboard](msgUserNotFound)
	}

	var (
		summary betslip.Summary
		recent  []betslip.BetSlip
		won     []betslip.BetSlip
		lost    []betslip.BetSlip
		groups  []chat.Group
		teams   []fantasy.Team
	)
	wonStatus, lostStatus := betslip.StatusWon, betslip.StatusLost

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		var err error
		summary, err = s.betSlips.SummarizeByUser(ctx, userID)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		recent, err = s.betSlips.ListByUser(ctx, userID, betslip.ListFilter{Limit: dashboardRecentBets})
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		won, err = s.betSlips.ListByUser(ctx, userID, betslip.ListFilter{Status: &wonStatus})
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		lost, err = s.betSlips.ListByUser(ctx, userID, betslip.ListFilter{Status: &lostStatus})
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		groups, err = s.chats.ListGroupsByUser(ctx, userID)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		teams, err = s.fantasy.ListTeamsByUser(ctx, userID)
		return err
	})
	if err := p.Wait(); err != nil {
		return persistenceFailure[Dashboard](ctx, s.logger, span, msgDashboardFailed, err, "user_id", userID)
	}

	returns := betslip.ComputeReturns(append(won, lost...))
	plan, _ := PlanForMembership(u.Membership)
	if recent == nil {
		recent = []betslip.BetSlip{}
	}

	return succeed(msgDashboardRetrieved, Dashboard{
		User: u,
		Plan: plan,
		Overview: BettingOverview{
			TotalBets:   summary.Total,
			OpenBets:    summary.Open,
			WonBets:     summary.Won,
			LostBets:    summary.Lost,
			WinRate:     summary.WinRate(),
			TotalProfit: returns.Profit,
			ROI:         returns.ROI(),
		},
		RecentBets:       recent,
		PopularBets:      []PopularBet{},
		ChatGroupCount:   len(groups),
		FantasyTeamCount: len(teams),
	})
}
