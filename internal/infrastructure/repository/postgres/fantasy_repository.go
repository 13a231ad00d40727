package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/betting-analytics/internal/domain/fantasy"
	qb "github.com/riskibarqy/betting-analytics/internal/platform/querybuilder"
)

type FantasyRepository struct {
	db *sqlx.DB
}

func NewFantasyRepository(db *sqlx.DB) *FantasyRepository {
	return &FantasyRepository{db: db}
}

func (r *FantasyRepository) CreateTeam(ctx context.Context, input fantasy.NewTeam) (fantasy.Team, error) {
	insert, err := qb.InsertModel(fantasyTeamsTable, fantasyTeamInsertModel{
		UserID:        input.UserID,
		Name:          input.Name,
		League:        input.League,
		ScoringFormat: input.ScoringFormat,
		Season:        input.Season,
	})
	if err != nil {
		return fantasy.Team{}, fmt.Errorf("build insert fantasy team model: %w", err)
	}
	query, args, err := insert.Returning(fantasyTeamColumns...).ToSQL()
	if err != nil {
		return fantasy.Team{}, fmt.Errorf("build insert fantasy team query: %w", err)
	}

	var row fantasyTeamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return fantasy.Team{}, wrapDBError(err, "insert fantasy team")
	}
	return fantasyTeamFromRow(row), nil
}

func (r *FantasyRepository) GetTeam(ctx context.Context, teamID string) (fantasy.Team, bool, error) {
	query, args, err := qb.Select(fantasyTeamColumns...).
		From(fantasyTeamsTable).
		Where(qb.Eq("id", teamID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return fantasy.Team{}, false, fmt.Errorf("build get fantasy team query: %w", err)
	}

	var row fantasyTeamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fantasy.Team{}, false, nil
		}
		return fantasy.Team{}, false, wrapDBError(err, "get fantasy team")
	}
	return fantasyTeamFromRow(row), true, nil
}

func (r *FantasyRepository) ListTeamsByUser(ctx context.Context, userID string) ([]fantasy.Team, error) {
	query, args, err := qb.Select(fantasyTeamColumns...).
		From(fantasyTeamsTable).
		Where(qb.Eq("user_id", userID)).
		OrderBy("created_at ASC", "id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list fantasy teams query: %w", err)
	}

	var rows []fantasyTeamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, wrapDBError(err, "list fantasy teams")
	}

	out := make([]fantasy.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, fantasyTeamFromRow(row))
	}
	return out, nil
}

func (r *FantasyRepository) UpdateTeam(ctx context.Context, teamID string, patch fantasy.TeamPatch) (fantasy.Team, bool, error) {
	update, _, err := qb.UpdateModel(fantasyTeamsTable, fantasyTeamPatchModel{
		Name:          stringPatch(patch.Name),
		League:        stringPatch(patch.League),
		ScoringFormat: stringPatch(patch.ScoringFormat),
		Season:        stringPatch(patch.Season),
	})
	if err != nil {
		return fantasy.Team{}, false, fmt.Errorf("build update fantasy team model: %w", err)
	}
	query, args, err := update.
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", teamID)).
		Returning(fantasyTeamColumns...).
		ToSQL()
	if err != nil {
		return fantasy.Team{}, false, fmt.Errorf("build update fantasy team query: %w", err)
	}

	var row fantasyTeamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fantasy.Team{}, false, nil
		}
		return fantasy.Team{}, false, wrapDBError(err, "update fantasy team")
	}
	return fantasyTeamFromRow(row), true, nil
}

func (r *FantasyRepository) DeleteTeam(ctx context.Context, teamID string) (bool, error) {
	return r.deleteByID(ctx, fantasyTeamsTable, teamID, "delete fantasy team")
}

func (r *FantasyRepository) AddPlayer(ctx context.Context, input fantasy.NewPlayer) (fantasy.Player, error) {
	insert, err := qb.InsertModel(fantasyPlayersTable, fantasyPlayerInsertModel{
		TeamID:      input.TeamID,
		Name:        input.Name,
		Position:    input.Position,
		Team:        input.Team,
		Stats:       orEmpty(input.Stats),
		Projections: orEmpty(input.Projections),
	})
	if err != nil {
		return fantasy.Player{}, fmt.Errorf("build insert fantasy player model: %w", err)
	}
	query, args, err := insert.Returning(fantasyPlayerColumns...).ToSQL()
	if err != nil {
		return fantasy.Player{}, fmt.Errorf("build insert fantasy player query: %w", err)
	}

	var row fantasyPlayerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return fantasy.Player{}, wrapDBError(err, "insert fantasy player")
	}
	return fantasyPlayerFromRow(row), nil
}

func (r *FantasyRepository) GetPlayer(ctx context.Context, playerID string) (fantasy.Player, bool, error) {
	query, args, err := qb.Select(fantasyPlayerColumns...).
		From(fantasyPlayersTable).
		Where(qb.Eq("id", playerID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return fantasy.Player{}, false, fmt.Errorf("build get fantasy player query: %w", err)
	}

	var row fantasyPlayerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fantasy.Player{}, false, nil
		}
		return fantasy.Player{}, false, wrapDBError(err, "get fantasy player")
	}
	return fantasyPlayerFromRow(row), true, nil
}

func (r *FantasyRepository) ListPlayers(ctx context.Context, teamID string) ([]fantasy.Player, error) {
	query, args, err := qb.Select(fantasyPlayerColumns...).
		From(fantasyPlayersTable).
		Where(qb.Eq("team_id", teamID)).
		OrderBy("created_at ASC", "id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list fantasy players query: %w", err)
	}

	var rows []fantasyPlayerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, wrapDBError(err, "list fantasy players")
	}

	out := make([]fantasy.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, fantasyPlayerFromRow(row))
	}
	return out, nil
}

func (r *FantasyRepository) UpdatePlayer(ctx context.Context, playerID string, patch fantasy.PlayerPatch) (fantasy.Player, bool, error) {
	update, _, err := qb.UpdateModel(fantasyPlayersTable, fantasyPlayerPatchModel{
		Name:        stringPatch(patch.Name),
		Position:    stringPatch(patch.Position),
		Team:        stringPatch(patch.Team),
		Stats:       patch.Stats,
		Projections: patch.Projections,
	})
	if err != nil {
		return fantasy.Player{}, false, fmt.Errorf("build update fantasy player model: %w", err)
	}
	query, args, err := update.
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", playerID)).
		Returning(fantasyPlayerColumns...).
		ToSQL()
	if err != nil {
		return fantasy.Player{}, false, fmt.Errorf("build update fantasy player query: %w", err)
	}

	var row fantasyPlayerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fantasy.Player{}, false, nil
		}
		return fantasy.Player{}, false, wrapDBError(err, "update fantasy player")
	}
	return fantasyPlayerFromRow(row), true, nil
}

func (r *FantasyRepository) RemovePlayer(ctx context.Context, playerID string) (bool, error) {
	return r.deleteByID(ctx, fantasyPlayersTable, playerID, "delete fantasy player")
}

func (r *FantasyRepository) deleteByID(ctx context.Context, table, id, op string) (bool, error) {
	query, args, err := qb.DeleteFrom(table).Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build %s query: %w", op, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, wrapDBError(err, op)
	}
	return rowsAffected(res, op)
}
