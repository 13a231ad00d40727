package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/riskibarqy/betting-analytics/internal/domain/fantasy"
	"github.com/riskibarqy/betting-analytics/internal/domain/user"
	"github.com/riskibarqy/betting-analytics/internal/platform/id"
	"github.com/riskibarqy/betting-analytics/internal/platform/logging"
	"go.opentelemetry.io/otel/trace"
)

const (
	msgFantasyTeamCreated        = "Fantasy team created successfully"
	msgFantasyTeamRetrieved      = "Fantasy team retrieved successfully"
	msgFantasyTeamsRetrieved     = "Fantasy teams retrieved successfully"
	msgFantasyTeamUpdated        = "Fantasy team updated successfully"
	msgFantasyTeamDeleted        = "Fantasy team deleted successfully"
	msgFantasyTeamNotFound       = "Fantasy team not found"
	msgFantasyPlayerAdded        = "Fantasy player added successfully"
	msgFantasyPlayersRetrieved   = "Fantasy players retrieved successfully"
	msgFantasyPlayerUpdated      = "Fantasy player updated successfully"
	msgFantasyPlayerRemoved      = "Fantasy player removed successfully"
	msgFantasyPlayerNotFound     = "Fantasy player not found"
	msgFantasyInvalid            = "Invalid fantasy input"
	msgFantasyTeamCreateFailed   = "Failed to create fantasy team"
	msgFantasyTeamGetFailed      = "Failed to get fantasy team"
	msgFantasyTeamListFailed     = "Failed to list fantasy teams"
	msgFantasyTeamUpdateFailed   = "Failed to update fantasy team"
	msgFantasyTeamDeleteFailed   = "Failed to delete fantasy team"
	msgFantasyPlayerAddFailed    = "Failed to add fantasy player"
	msgFantasyPlayerListFailed   = "Failed to list fantasy players"
	msgFantasyPlayerUpdateFailed = "Failed to update fantasy player"
	msgFantasyPlayerRemoveFailed = "Failed to remove fantasy player"
)

type FantasyActions struct {
	repo   fantasy.Repository
	users  user.Repository
	rules  fantasy.Rules
	logger *logging.Logger
}

func NewFantasyActions(repo fantasy.Repository, users user.Repository, rules fantasy.Rules, logger *logging.Logger) *FantasyActions {
	if logger == nil {
		logger = logging.Default()
	}
	return &FantasyActions{repo: repo, users: users, rules: rules, logger: logger}
}

func (a *FantasyActions) CreateTeam(ctx context.Context, input fantasy.NewTeam) Result[fantasy.Team] {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyActions.CreateTeam")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.Name = strings.TrimSpace(input.Name)
	input.League = strings.TrimSpace(input.League)
	input.ScoringFormat = strings.TrimSpace(input.ScoringFormat)
	input.Season = strings.TrimSpace(input.Season)
	switch {
	case input.UserID == "":
		return invalid[fantasy.Team](msgFantasyInvalid, "user_id is required")
	case input.Name == "":
		return invalid[fantasy.Team](msgFantasyInvalid, "name is required")
	case input.League == "":
		return invalid[fantasy.Team](msgFantasyInvalid, "league is required")
	case input.ScoringFormat == "":
		return invalid[fantasy.Team](msgFantasyInvalid, "scoring_format is required")
	case input.Season == "":
		return invalid[fantasy.Team](msgFantasyInvalid, "season is required")
	}

	_, found, err := a.users.GetByUserID(ctx, input.UserID)
	if err != nil {
		return persistenceFailure[fantasy.Team](ctx, a.logger, span, msgFantasyTeamCreateFailed, err, "user_id", input.UserID)
	}
	if !found {
		return notFound[fantasy.Team](msgUserNotFound)
	}

	team, err := a.repo.CreateTeam(ctx, input)
	if err != nil {
		return persistenceFailure[fantasy.Team](ctx, a.logger, span, msgFantasyTeamCreateFailed, err, "user_id", input.UserID)
	}
	return succeed(msgFantasyTeamCreated, team)
}

func (a *FantasyActions) GetTeam(ctx context.Context, userID, teamID string) Result[fantasy.Team] {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyActions.GetTeam")
	defer span.End()

	team, res, ok := a.loadOwnedTeam(ctx, span, userID, teamID, msgFantasyTeamGetFailed)
	if !ok {
		return res
	}
	return succeed(msgFantasyTeamRetrieved, team)
}

func (a *FantasyActions) ListTeamsByUser(ctx context.Context, userID string) Result[[]fantasy.Team] {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyActions.ListTeamsByUser")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return invalid[[]fantasy.Team](msgFantasyInvalid, "user_id is required")
	}

	teams, err := a.repo.ListTeamsByUser(ctx, userID)
	if err != nil {
		return persistenceFailure[[]fantasy.Team](ctx, a.logger, span, msgFantasyTeamListFailed, err, "user_id", userID)
	}
	return succeed(msgFantasyTeamsRetrieved, teams)
}

func (a *FantasyActions) UpdateTeam(ctx context.Context, userID, teamID string, patch fantasy.TeamPatch) Result[fantasy.Team] {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyActions.UpdateTeam")
	defer span.End()

	for field, value := range map[string]*string{
		"name":           patch.Name,
		"league":         patch.League,
		"scoring_format": patch.ScoringFormat,
		"season":         patch.Season,
	} {
		if value != nil && strings.TrimSpace(*value) == "" {
			return invalid[fantasy.Team](msgFantasyInvalid, field+" cannot be empty")
		}
	}

	team, res, ok := a.loadOwnedTeam(ctx, span, userID, teamID, msgFantasyTeamUpdateFailed)
	if !ok {
		return res
	}

	updated, found, err := a.repo.UpdateTeam(ctx, team.ID, patch)
	if err != nil {
		return persistenceFailure[fantasy.Team](ctx, a.logger, span, msgFantasyTeamUpdateFailed, err, "team_id", team.ID)
	}
	if !found {
		return notFound[fantasy.Team](msgFantasyTeamNotFound)
	}
	return succeed(msgFantasyTeamUpdated, updated)
}

// DeleteTeam removes the team and its roster; a missing team is not an error.
func (a *FantasyActions) DeleteTeam(ctx context.Context, userID, teamID string) Result[struct{}] {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyActions.DeleteTeam")
	defer span.End()

	userID = strings.TrimSpace(userID)
	teamID = strings.TrimSpace(teamID)
	if userID == "" {
		return invalid[struct{}](msgFantasyInvalid, "user_id is required")
	}
	if !id.Valid(teamID) {
		return succeedEmpty[struct{}](msgFantasyTeamDeleted)
	}

	team, found, err := a.repo.GetTeam(ctx, teamID)
	if err != nil {
		return persistenceFailure[struct{}](ctx, a.logger, span, msgFantasyTeamDeleteFailed, err, "team_id", teamID)
	}
	if !found {
		return succeedEmpty[struct{}](msgFantasyTeamDeleted)
	}
	if team.UserID != userID {
		return notFound[struct{}](msgFantasyTeamNotFound)
	}

	if _, err := a.repo.DeleteTeam(ctx, teamID); err != nil {
		return persistenceFailure[struct{}](ctx, a.logger, span, msgFantasyTeamDeleteFailed, err, "team_id", teamID)
	}
	return succeedEmpty[struct{}](msgFantasyTeamDeleted)
}

func (a *FantasyActions) AddPlayer(ctx context.Context, userID string, input fantasy.NewPlayer) Result[fantasy.Player] {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyActions.AddPlayer")
	defer span.End()

	input.Name = strings.TrimSpace(input.Name)
	input.Team = strings.TrimSpace(input.Team)
	if input.Name == "" {
		return invalid[fantasy.Player](msgFantasyInvalid, "name is required")
	}
	if input.Team == "" {
		return invalid[fantasy.Player](msgFantasyInvalid, "team is required")
	}
	position, err := fantasy.NormalizePosition(input.Position, a.rules)
	if err != nil {
		return invalid[fantasy.Player](msgFantasyInvalid, err.Error())
	}
	input.Position = position

	team, teamRes, ok := a.loadOwnedTeam(ctx, span, userID, input.TeamID, msgFantasyPlayerAddFailed)
	if !ok {
		return fail[fantasy.Player](teamRes.Message, teamRes.Err)
	}
	input.TeamID = team.ID

	roster, err := a.repo.ListPlayers(ctx, team.ID)
	if err != nil {
		return persistenceFailure[fantasy.Player](ctx, a.logger, span, msgFantasyPlayerAddFailed, err, "team_id", team.ID)
	}
	if err := fantasy.ValidateAddition(roster, input, a.rules); err != nil {
		return invalid[fantasy.Player](msgFantasyInvalid, err.Error())
	}

	player, err := a.repo.AddPlayer(ctx, input)
	if err != nil {
		return persistenceFailure[fantasy.Player](ctx, a.logger, span, msgFantasyPlayerAddFailed, err, "team_id", team.ID)
	}
	return succeed(msgFantasyPlayerAdded, player)
}

func (a *FantasyActions) ListPlayers(ctx context.Context, userID, teamID string) Result[[]fantasy.Player] {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyActions.ListPlayers")
	defer span.End()

	team, teamRes, ok := a.loadOwnedTeam(ctx, span, userID, teamID, msgFantasyPlayerListFailed)
	if !ok {
		return fail[[]fantasy.Player](teamRes.Message, teamRes.Err)
	}

	players, err := a.repo.ListPlayers(ctx, team.ID)
	if err != nil {
		return persistenceFailure[[]fantasy.Player](ctx, a.logger, span, msgFantasyPlayerListFailed, err, "team_id", team.ID)
	}
	return succeed(msgFantasyPlayersRetrieved, players)
}

func (a *FantasyActions) UpdatePlayer(ctx context.Context, userID, teamID, playerID string, patch fantasy.PlayerPatch) Result[fantasy.Player] {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyActions.UpdatePlayer")
	defer span.End()

	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return invalid[fantasy.Player](msgFantasyInvalid, "name cannot be empty")
	}
	if patch.Team != nil && strings.TrimSpace(*patch.Team) == "" {
		return invalid[fantasy.Player](msgFantasyInvalid, "team cannot be empty")
	}
	if patch.Position != nil {
		position, err := fantasy.NormalizePosition(*patch.Position, a.rules)
		if err != nil {
			return invalid[fantasy.Player](msgFantasyInvalid, err.Error())
		}
		patch.Position = &position
	}

	player, res, ok := a.loadRosteredPlayer(ctx, span, userID, teamID, playerID, msgFantasyPlayerUpdateFailed)
	if !ok {
		return res
	}

	updated, found, err := a.repo.UpdatePlayer(ctx, player.ID, patch)
	if err != nil {
		return persistenceFailure[fantasy.Player](ctx, a.logger, span, msgFantasyPlayerUpdateFailed, err, "player_id", player.ID)
	}
	if !found {
		return notFound[fantasy.Player](msgFantasyPlayerNotFound)
	}
	return succeed(msgFantasyPlayerUpdated, updated)
}

// RemovePlayer succeeds when the player is already gone.
func (a *FantasyActions) RemovePlayer(ctx context.Context, userID, teamID, playerID string) Result[struct{}] {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyActions.RemovePlayer")
	defer span.End()

	player, res, ok := a.loadRosteredPlayer(ctx, span, userID, teamID, playerID, msgFantasyPlayerRemoveFailed)
	if !ok {
		if errors.Is(res.Err, ErrNotFound) && res.Message == msgFantasyPlayerNotFound {
			return succeedEmpty[struct{}](msgFantasyPlayerRemoved)
		}
		return fail[struct{}](res.Message, res.Err)
	}

	if _, err := a.repo.RemovePlayer(ctx, player.ID); err != nil {
		return persistenceFailure[struct{}](ctx, a.logger, span, msgFantasyPlayerRemoveFailed, err, "player_id", player.ID)
	}
	return succeedEmpty[struct{}](msgFantasyPlayerRemoved)
}

func (a *FantasyActions) loadOwnedTeam(ctx context.Context, span trace.Span, userID, teamID, failMsg string) (fantasy.Team, Result[fantasy.Team], bool) {
	userID = strings.TrimSpace(userID)
	teamID = strings.TrimSpace(teamID)
	if userID == "" {
		return fantasy.Team{}, invalid[fantasy.Team](msgFantasyInvalid, "user_id is required"), false
	}
	if !id.Valid(teamID) {
		return fantasy.Team{}, notFound[fantasy.Team](msgFantasyTeamNotFound), false
	}

	team, found, err := a.repo.GetTeam(ctx, teamID)
	if err != nil {
		return fantasy.Team{}, persistenceFailure[fantasy.Team](ctx, a.logger, span, failMsg, err, "team_id", teamID), false
	}
	if !found || team.UserID != userID {
		return fantasy.Team{}, notFound[fantasy.Team](msgFantasyTeamNotFound), false
	}
	return team, Result[fantasy.Team]{}, true
}

// loadRosteredPlayer checks team ownership and that the player sits on that team.
func (a *FantasyActions) loadRosteredPlayer(ctx context.Context, span trace.Span, userID, teamID, playerID, failMsg string) (fantasy.Player, Result[fantasy.Player], bool) {
	team, teamRes, ok := a.loadOwnedTeam(ctx, span, userID, teamID, failMsg)
	if !ok {
		return fantasy.Player{}, fail[fantasy.Player](teamRes.Message, teamRes.Err), false
	}

	playerID = strings.TrimSpace(playerID)
	if !id.Valid(playerID) {
		return fantasy.Player{}, notFound[fantasy.Player](msgFantasyPlayerNotFound), false
	}

	player, found, err := a.repo.GetPlayer(ctx, playerID)
	if err != nil {
		return fantasy.Player{}, persistenceFailure[fantasy.Player](ctx, a.logger, span, failMsg, err, "player_id", playerID), false
	}
	if !found || player.TeamID != team.ID {
		return fantasy.Player{}, notFound[fantasy.Player](msgFantasyPlayerNotFound), false
	}
	return player, Result[fantasy.Player]{}, true
}
