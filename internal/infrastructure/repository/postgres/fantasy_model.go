package postgres

import (
	"time"

	"github.com/riskibarqy/betting-analytics/internal/domain/fantasy"
	"github.com/riskibarqy/betting-analytics/internal/platform/jsondoc"
	qb "github.com/riskibarqy/betting-analytics/internal/platform/querybuilder"
)

const (
	fantasyTeamsTable   = "fantasy_teams"
	fantasyPlayersTable = "fantasy_players"
)

type fantasyTeamTableModel struct {
	ID            string    `db:"id"`
	UserID        string    `db:"user_id"`
	Name          string    `db:"name"`
	League        string    `db:"league"`
	ScoringFormat string    `db:"scoring_format"`
	Season        string    `db:"season"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type fantasyTeamInsertModel struct {
	UserID        string `db:"user_id"`
	Name          string `db:"name"`
	League        string `db:"league"`
	ScoringFormat string `db:"scoring_format"`
	Season        string `db:"season"`
}

type fantasyTeamPatchModel struct {
	Name          *string `db:"name"`
	League        *string `db:"league"`
	ScoringFormat *string `db:"scoring_format"`
	Season        *string `db:"season"`
}

type fantasyPlayerTableModel struct {
	ID          string         `db:"id"`
	TeamID      string         `db:"team_id"`
	Name        string         `db:"name"`
	Position    string         `db:"position"`
	Team        string         `db:"team"`
	Stats       jsondoc.Object `db:"stats"`
	Projections jsondoc.Object `db:"projections"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

type fantasyPlayerInsertModel struct {
	TeamID      string         `db:"team_id"`
	Name        string         `db:"name"`
	Position    string         `db:"position"`
	Team        string         `db:"team"`
	Stats       jsondoc.Object `db:"stats"`
	Projections jsondoc.Object `db:"projections"`
}

type fantasyPlayerPatchModel struct {
	Name        *string         `db:"name"`
	Position    *string         `db:"position"`
	Team        *string         `db:"team"`
	Stats       *jsondoc.Object `db:"stats"`
	Projections *jsondoc.Object `db:"projections"`
}

var (
	fantasyTeamColumns   = qb.Columns(fantasyTeamTableModel{})
	fantasyPlayerColumns = qb.Columns(fantasyPlayerTableModel{})
)

func fantasyTeamFromRow(row fantasyTeamTableModel) fantasy.Team {
	return fantasy.Team{
		ID:            row.ID,
		UserID:        row.UserID,
		Name:          row.Name,
		League:        row.League,
		ScoringFormat: row.ScoringFormat,
		Season:        row.Season,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

func fantasyPlayerFromRow(row fantasyPlayerTableModel) fantasy.Player {
	return fantasy.Player{
		ID:          row.ID,
		TeamID:      row.TeamID,
		Name:        row.Name,
		Position:    row.Position,
		Team:        row.Team,
		Stats:       row.Stats,
		Projections: row.Projections,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
