package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/betting-analytics/internal/domain/fantasy"
)

type FantasyRepository struct {
	store *Store
}

func NewFantasyRepository(store *Store) *FantasyRepository {
	return &FantasyRepository{store: store}
}

func (r *FantasyRepository) CreateTeam(_ context.Context, input fantasy.NewTeam) (fantasy.Team, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[input.UserID]; !ok {
		return fantasy.Team{}, fmt.Errorf("insert fantasy team for user %s: %w", input.UserID, ErrForeignKeyViolation)
	}

	rowID, err := s.nextID()
	if err != nil {
		return fantasy.Team{}, fmt.Errorf("insert fantasy team: %w", err)
	}
	now := s.now()
	team := fantasy.Team{
		ID:            rowID,
		UserID:        input.UserID,
		Name:          strings.TrimSpace(input.Name),
		League:        strings.TrimSpace(input.League),
		ScoringFormat: strings.TrimSpace(input.ScoringFormat),
		Season:        strings.TrimSpace(input.Season),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.teams[rowID] = team
	return team, nil
}

func (r *FantasyRepository) GetTeam(_ context.Context, teamID string) (fantasy.Team, bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	team, ok := s.teams[teamID]
	return team, ok, nil
}

func (r *FantasyRepository) ListTeamsByUser(_ context.Context, userID string) ([]fantasy.Team, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0)
	for teamID, team := range s.teams {
		if team.UserID == userID {
			ids = append(ids, teamID)
		}
	}
	s.sortByCreation(ids)

	out := make([]fantasy.Team, 0, len(ids))
	for _, teamID := range ids {
		out = append(out, s.teams[teamID])
	}
	return out, nil
}

func (r *FantasyRepository) UpdateTeam(_ context.Context, teamID string, patch fantasy.TeamPatch) (fantasy.Team, bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	team, ok := s.teams[teamID]
	if !ok {
		return fantasy.Team{}, false, nil
	}
	applyText(&team.Name, patch.Name)
	applyText(&team.League, patch.League)
	applyText(&team.ScoringFormat, patch.ScoringFormat)
	applyText(&team.Season, patch.Season)
	team.UpdatedAt = s.now()
	s.teams[teamID] = team
	return team, true, nil
}

func (r *FantasyRepository) DeleteTeam(_ context.Context, teamID string) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teams[teamID]; !ok {
		return false, nil
	}
	s.deleteTeamCascade(teamID)
	return true, nil
}

func (r *FantasyRepository) AddPlayer(_ context.Context, input fantasy.NewPlayer) (fantasy.Player, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teams[input.TeamID]; !ok {
		return fantasy.Player{}, fmt.Errorf("insert fantasy player for team %s: %w", input.TeamID, ErrForeignKeyViolation)
	}

	rowID, err := s.nextID()
	if err != nil {
		return fantasy.Player{}, fmt.Errorf("insert fantasy player: %w", err)
	}
	now := s.now()
	p := fantasy.Player{
		ID:          rowID,
		TeamID:      input.TeamID,
		Name:        strings.TrimSpace(input.Name),
		Position:    strings.TrimSpace(input.Position),
		Team:        strings.TrimSpace(input.Team),
		Stats:       input.Stats.Clone(),
		Projections: input.Projections.Clone(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.players[rowID] = p
	return clonePlayer(p), nil
}

func (r *FantasyRepository) GetPlayer(_ context.Context, playerID string) (fantasy.Player, bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.players[playerID]
	if !ok {
		return fantasy.Player{}, false, nil
	}
	return clonePlayer(p), true, nil
}

func (r *FantasyRepository) ListPlayers(_ context.Context, teamID string) ([]fantasy.Player, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0)
	for playerID, p := range s.players {
		if p.TeamID == teamID {
			ids = append(ids, playerID)
		}
	}
	s.sortByCreation(ids)

	out := make([]fantasy.Player, 0, len(ids))
	for _, playerID := range ids {
		out = append(out, clonePlayer(s.players[playerID]))
	}
	return out, nil
}

func (r *FantasyRepository) UpdatePlayer(_ context.Context, playerID string, patch fantasy.PlayerPatch) (fantasy.Player, bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[playerID]
	if !ok {
		return fantasy.Player{}, false, nil
	}
	applyText(&p.Name, patch.Name)
	applyText(&p.Position, patch.Position)
	applyText(&p.Team, patch.Team)
	if patch.Stats != nil {
		p.Stats = patch.Stats.Clone()
	}
	if patch.Projections != nil {
		p.Projections = patch.Projections.Clone()
	}
	p.UpdatedAt = s.now()
	s.players[playerID] = p
	return clonePlayer(p), true, nil
}

func (r *FantasyRepository) RemovePlayer(_ context.Context, playerID string) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.players[playerID]; !ok {
		return false, nil
	}
	delete(s.players, playerID)
	s.forget(playerID)
	return true, nil
}

func clonePlayer(p fantasy.Player) fantasy.Player {
	p.Stats = p.Stats.Clone()
	p.Projections = p.Projections.Clone()
	return p
}
