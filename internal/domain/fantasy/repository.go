package fantasy

import "context"

type Repository interface {
	CreateTeam(ctx context.Context, input NewTeam) (Team, error)
	GetTeam(ctx context.Context, teamID string) (Team, bool, error)
	ListTeamsByUser(ctx context.Context, userID string) ([]Team, error)
	UpdateTeam(ctx context.Context, teamID string, patch TeamPatch) (Team, bool, error)
	// DeleteTeam also removes the team's players.
	DeleteTeam(ctx context.Context, teamID string) (bool, error)

	AddPlayer(ctx context.Context, input NewPlayer) (Player, error)
	GetPlayer(ctx context.Context, playerID string) (Player, bool, error)
	ListPlayers(ctx context.Context, teamID string) ([]Player, error)
	UpdatePlayer(ctx context.Context, playerID string, patch PlayerPatch) (Player, bool, error)
	RemovePlayer(ctx context.Context, playerID string) (bool, error)
}
