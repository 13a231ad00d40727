package httpapi

import (
	"time"

	"github.com/riskibarqy/betting-analytics/internal/domain/betslip"
	"github.com/riskibarqy/betting-analytics/internal/domain/chat"
	"github.com/riskibarqy/betting-analytics/internal/domain/fantasy"
	"github.com/riskibarqy/betting-analytics/internal/domain/user"
	"github.com/riskibarqy/betting-analytics/internal/platform/jsondoc"
	"github.com/riskibarqy/betting-analytics/internal/usecase"
)

type createUserRequest struct {
	Email                   string         `json:"email" validate:"omitempty,email,max=320"`
	Membership              string         `json:"membership" validate:"omitempty,oneof=free paid premium"`
	StripeCustomerID        string         `json:"stripe_customer_id" validate:"omitempty,max=255"`
	StripeSubscriptionID    string         `json:"stripe_subscription_id" validate:"omitempty,max=255"`
	NotificationPreferences jsondoc.Object `json:"notification_preferences"`
	LayoutConfig            jsondoc.Object `json:"layout_config"`
}

type updateUserRequest struct {
	Email                   *string         `json:"email" validate:"omitempty,email,max=320"`
	Membership              *string         `json:"membership" validate:"omitempty,oneof=free paid premium"`
	StripeCustomerID        *string         `json:"stripe_customer_id" validate:"omitempty,max=255"`
	StripeSubscriptionID    *string         `json:"stripe_subscription_id" validate:"omitempty,max=255"`
	NotificationPreferences *jsondoc.Object `json:"notification_preferences"`
	LayoutConfig            *jsondoc.Object `json:"layout_config"`
}

func (r updateUserRequest) toPatch() user.Patch {
	patch := user.Patch{
		Email:                   r.Email,
		StripeCustomerID:        r.StripeCustomerID,
		StripeSubscriptionID:    r.StripeSubscriptionID,
		NotificationPreferences: r.NotificationPreferences,
		LayoutConfig:            r.LayoutConfig,
	}
	if r.Membership != nil {
		m := user.Membership(*r.Membership)
		patch.Membership = &m
	}
	return patch
}

type userDTO struct {
	ID                      string         `json:"id"`
	UserID                  string         `json:"user_id"`
	Email                   string         `json:"email"`
	Membership              string         `json:"membership"`
	StripeCustomerID        string         `json:"stripe_customer_id,omitempty"`
	StripeSubscriptionID    string         `json:"stripe_subscription_id,omitempty"`
	NotificationPreferences jsondoc.Object `json:"notification_preferences"`
	LayoutConfig            jsondoc.Object `json:"layout_config"`
	CreatedAt               time.Time      `json:"created_at"`
	UpdatedAt               time.Time      `json:"updated_at"`
}

func userToDTO(v user.User) any {
	return userDTO{
		ID:                      v.ID,
		UserID:                  v.UserID,
		Email:                   v.Email,
		Membership:              string(v.Membership),
		StripeCustomerID:        v.StripeCustomerID,
		StripeSubscriptionID:    v.StripeSubscriptionID,
		NotificationPreferences: v.NotificationPreferences,
		LayoutConfig:            v.LayoutConfig,
		CreatedAt:               v.CreatedAt,
		UpdatedAt:               v.UpdatedAt,
	}
}

type createBetSlipRequest struct {
	Status            string         `json:"status" validate:"omitempty,oneof=open won lost"`
	BetDetails        jsondoc.Object `json:"bet_details"`
	Odds              string         `json:"odds" validate:"max=64"`
	Stake             string         `json:"stake" validate:"max=64"`
	PotentialWinnings string         `json:"potential_winnings" validate:"max=64"`
	Result            string         `json:"result" validate:"max=255"`
	ScreenshotURL     string         `json:"screenshot_url" validate:"omitempty,url,max=2048"`
}

type updateBetSlipRequest struct {
	Status            *string         `json:"status" validate:"omitempty,oneof=open won lost"`
	BetDetails        *jsondoc.Object `json:"bet_details"`
	Odds              *string         `json:"odds" validate:"omitempty,max=64"`
	Stake             *string         `json:"stake" validate:"omitempty,max=64"`
	PotentialWinnings *string         `json:"potential_winnings" validate:"omitempty,max=64"`
	Result            *string         `json:"result" validate:"omitempty,max=255"`
	ScreenshotURL     *string         `json:"screenshot_url" validate:"omitempty,url,max=2048"`
}

func (r updateBetSlipRequest) toPatch() betslip.Patch {
	patch := betslip.Patch{
		BetDetails:        r.BetDetails,
		Odds:              r.Odds,
		Stake:             r.Stake,
		PotentialWinnings: r.PotentialWinnings,
		Result:            r.Result,
		ScreenshotURL:     r.ScreenshotURL,
	}
	if r.Status != nil {
		s := betslip.Status(*r.Status)
		patch.Status = &s
	}
	return patch
}

type betSlipDTO struct {
	ID                string         `json:"id"`
	UserID            string         `json:"user_id"`
	Status            string         `json:"status"`
	BetDetails        jsondoc.Object `json:"bet_details"`
	Odds              string         `json:"odds"`
	Stake             string         `json:"stake"`
	PotentialWinnings string         `json:"potential_winnings"`
	Result            string         `json:"result,omitempty"`
	ScreenshotURL     string         `json:"screenshot_url,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

func betSlipToDTO(v betslip.BetSlip) any {
	return betSlipDTO{
		ID:                v.ID,
		UserID:            v.UserID,
		Status:            string(v.Status),
		BetDetails:        v.BetDetails,
		Odds:              v.Odds,
		Stake:             v.Stake,
		PotentialWinnings: v.PotentialWinnings,
		Result:            v.Result,
		ScreenshotURL:     v.ScreenshotURL,
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
}

func betSlipsToDTO(items []betslip.BetSlip) any {
	return mapSlice(items, betSlipToDTO)
}

type createChatGroupRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=1000"`
}

type updateChatGroupRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

type muteChatGroupRequest struct {
	Muted *bool `json:"muted" validate:"required"`
}

type postChatMessageRequest struct {
	Content         string `json:"content" validate:"required"`
	ParentMessageID string `json:"parent_message_id"`
}

type chatGroupDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func chatGroupToDTO(v chat.Group) any {
	return chatGroupDTO{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func chatGroupsToDTO(items []chat.Group) any {
	return mapSlice(items, chatGroupToDTO)
}

type chatMembershipDTO struct {
	ID        string    `json:"id"`
	GroupID   string    `json:"group_id"`
	UserID    string    `json:"user_id"`
	IsMuted   bool      `json:"is_muted"`
	CreatedAt time.Time `json:"created_at"`
}

func chatMembershipToDTO(v chat.Membership) any {
	return chatMembershipDTO{
		ID:        v.ID,
		GroupID:   v.GroupID,
		UserID:    v.UserID,
		IsMuted:   v.IsMuted,
		CreatedAt: v.CreatedAt,
	}
}

func chatMembershipsToDTO(items []chat.Membership) any {
	return mapSlice(items, chatMembershipToDTO)
}

type chatMessageDTO struct {
	ID              string    `json:"id"`
	GroupID         string    `json:"group_id"`
	UserID          string    `json:"user_id"`
	Content         string    `json:"content"`
	ParentMessageID *string   `json:"parent_message_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func chatMessageToDTO(v chat.Message) any {
	out := chatMessageDTO{
		ID:        v.ID,
		GroupID:   v.GroupID,
		UserID:    v.UserID,
		Content:   v.Content,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
	if v.ParentMessageID != "" {
		parent := v.ParentMessageID
		out.ParentMessageID = &parent
	}
	return out
}

func chatMessagesToDTO(items []chat.Message) any {
	return mapSlice(items, chatMessageToDTO)
}

type createFantasyTeamRequest struct {
	Name          string `json:"name" validate:"required,max=100"`
	League        string `json:"league" validate:"required,max=100"`
	ScoringFormat string `json:"scoring_format" validate:"required,max=50"`
	Season        string `json:"season" validate:"required,max=20"`
}

type updateFantasyTeamRequest struct {
	Name          *string `json:"name" validate:"omitempty,max=100"`
	League        *string `json:"league" validate:"omitempty,max=100"`
	ScoringFormat *string `json:"scoring_format" validate:"omitempty,max=50"`
	Season        *string `json:"season" validate:"omitempty,max=20"`
}

type addFantasyPlayerRequest struct {
	Name        string         `json:"name" validate:"required,max=100"`
	Position    string         `json:"position" validate:"required,max=16"`
	Team        string         `json:"team" validate:"required,max=100"`
	Stats       jsondoc.Object `json:"stats"`
	Projections jsondoc.Object `json:"projections"`
}

type updateFantasyPlayerRequest struct {
	Name        *string         `json:"name" validate:"omitempty,max=100"`
	Position    *string         `json:"position" validate:"omitempty,max=16"`
	Team        *string         `json:"team" validate:"omitempty,max=100"`
	Stats       *jsondoc.Object `json:"stats"`
	Projections *jsondoc.Object `json:"projections"`
}

type fantasyTeamDTO struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Name          string    `json:"name"`
	League        string    `json:"league"`
	ScoringFormat string    `json:"scoring_format"`
	Season        string    `json:"season"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func fantasyTeamToDTO(v fantasy.Team) any {
	return fantasyTeamDTO{
		ID:            v.ID,
		UserID:        v.UserID,
		Name:          v.Name,
		League:        v.League,
		ScoringFormat: v.ScoringFormat,
		Season:        v.Season,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func fantasyTeamsToDTO(items []fantasy.Team) any {
	return mapSlice(items, fantasyTeamToDTO)
}

type fantasyPlayerDTO struct {
	ID          string         `json:"id"`
	TeamID      string         `json:"team_id"`
	Name        string         `json:"name"`
	Position    string         `json:"position"`
	Team        string         `json:"team"`
	Stats       jsondoc.Object `json:"stats"`
	Projections jsondoc.Object `json:"projections"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func fantasyPlayerToDTO(v fantasy.Player) any {
	return fantasyPlayerDTO{
		ID:          v.ID,
		TeamID:      v.TeamID,
		Name:        v.Name,
		Position:    v.Position,
		Team:        v.Team,
		Stats:       v.Stats,
		Projections: v.Projections,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func fantasyPlayersToDTO(items []fantasy.Player) any {
	return mapSlice(items, fantasyPlayerToDTO)
}

type bettingOverviewDTO struct {
	TotalBets   int     `json:"total_bets"`
	OpenBets    int     `json:"open_bets"`
	WonBets     int     `json:"won_bets"`
	LostBets    int     `json:"lost_bets"`
	WinRate     float64 `json:"win_rate"`
	TotalProfit float64 `json:"total_profit"`
	ROI         float64 `json:"roi"`
}

type popularBetDTO struct {
	Description string `json:"description"`
	Count       int    `json:"count"`
}

type dashboardDTO struct {
	User             any                `json:"user"`
	Plan             usecase.Plan       `json:"plan"`
	Overview         bettingOverviewDTO `json:"overview"`
	RecentBets       any                `json:"recent_bets"`
	PopularBets      []popularBetDTO    `json:"popular_bets"`
	ChatGroupCount   int                `json:"chat_group_count"`
	FantasyTeamCount int                `json:"fantasy_team_count"`
}

func dashboardToDTO(v usecase.Dashboard) any {
	popular := make([]popularBetDTO, 0, len(v.PopularBets))
	for _, p := range v.PopularBets {
		popular = append(popular, popularBetDTO{Description: p.Description, Count: p.Count})
	}
	return dashboardDTO{
		User: userToDTO(v.User),
		Plan: v.Plan,
		Overview: bettingOverviewDTO{
			TotalBets:   v.Overview.TotalBets,
			OpenBets:    v.Overview.OpenBets,
			WonBets:     v.Overview.WonBets,
			LostBets:    v.Overview.LostBets,
			WinRate:     v.Overview.WinRate,
			TotalProfit: v.Overview.TotalProfit,
			ROI:         v.Overview.ROI,
		},
		RecentBets:       betSlipsToDTO(v.RecentBets),
		PopularBets:      popular,
		ChatGroupCount:   v.ChatGroupCount,
		FantasyTeamCount: v.FantasyTeamCount,
	}
}

func mapSlice[T any](items []T, fn func(T) any) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
