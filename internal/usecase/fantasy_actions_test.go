package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/riskibarqy/betting-analytics/internal/domain/fantasy"
)

func newTeamInput(userID string) fantasy.NewTeam {
	return fantasy.NewTeam{UserID: userID, Name: "Sharp Money", League: "NFL", ScoringFormat: "PPR", Season: "2026"}
}

func TestFantasyActions_TeamLifecycle(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, "u1", "u2")

	created := env.fantasy.CreateTeam(ctx, newTeamInput("u1"))
	if !created.Success || created.Message != "Fantasy team created successfully" {
		t.Fatalf("unexpected create result: %+v", created)
	}
	teamID := created.Data.ID

	if res := env.fantasy.GetTeam(ctx, "u2", teamID); res.Message != "Fantasy team not found" {
		t.Fatalf("expected other user to be refused, got %+v", res)
	}

	name := "Square Money"
	updated := env.fantasy.UpdateTeam(ctx, "u1", teamID, fantasy.TeamPatch{Name: &name})
	if !updated.Success || updated.Data.Name != name || updated.Data.League != "NFL" {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	list := env.fantasy.ListTeamsByUser(ctx, "u1")
	if !list.Success || len(*list.Data) != 1 {
		t.Fatalf("unexpected list result: %+v", list)
	}

	if res := env.fantasy.DeleteTeam(ctx, "u2", teamID); res.Success {
		t.Fatalf("expected delete by other user to fail")
	}
	if res := env.fantasy.DeleteTeam(ctx, "u1", teamID); !res.Success {
		t.Fatalf("delete team: %+v", res)
	}
	if res := env.fantasy.DeleteTeam(ctx, "u1", teamID); !res.Success {
		t.Fatalf("expected repeat delete to succeed, got %+v", res)
	}
}

func TestFantasyActions_CreateTeamRequiresFields(t *testing.T) {
	env := newTestEnv(t, "u1")
	input := newTeamInput("u1")
	input.ScoringFormat = " "

	res := env.fantasy.CreateTeam(context.Background(), input)
	if res.Success || !errors.Is(res.Err, ErrInvalidInput) || !strings.Contains(res.Err.Error(), "scoring_format") {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestFantasyActions_RosterRules(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, "u1")
	team := env.fantasy.CreateTeam(ctx, newTeamInput("u1")).Data

	added := env.fantasy.AddPlayer(ctx, "u1", fantasy.NewPlayer{TeamID: team.ID, Name: "Patrick Mahomes", Position: "qb", Team: "KC"})
	if !added.Success || added.Data.Position != "QB" {
		t.Fatalf("unexpected add result: %+v", added)
	}

	dup := env.fantasy.AddPlayer(ctx, "u1", fantasy.NewPlayer{TeamID: team.ID, Name: "patrick mahomes", Position: "QB", Team: "kc"})
	if dup.Success || !errors.Is(dup.Err, ErrInvalidInput) {
		t.Fatalf("expected duplicate to be rejected, got %+v", dup)
	}

	bad := env.fantasy.AddPlayer(ctx, "u1", fantasy.NewPlayer{TeamID: team.ID, Name: "X", Position: "Q-B", Team: "KC"})
	if bad.Success || !errors.Is(bad.Err, ErrInvalidInput) {
		t.Fatalf("expected bad position to be rejected, got %+v", bad)
	}

	players := env.fantasy.ListPlayers(ctx, "u1", team.ID)
	if !players.Success || len(*players.Data) != 1 {
		t.Fatalf("unexpected players: %+v", players)
	}
}

func TestFantasyActions_PlayerMustBelongToTeam(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, "u1")
	t1 := env.fantasy.CreateTeam(ctx, newTeamInput("u1")).Data
	t2 := env.fantasy.CreateTeam(ctx, newTeamInput("u1")).Data
	player := env.fantasy.AddPlayer(ctx, "u1", fantasy.NewPlayer{TeamID: t1.ID, Name: "Josh Allen", Position: "QB", Team: "BUF"}).Data

	pos := "wr"
	if res := env.fantasy.UpdatePlayer(ctx, "u1", t2.ID, player.ID, fantasy.PlayerPatch{Position: &pos}); res.Message != "Fantasy player not found" {
		t.Fatalf("expected player lookup through wrong team to fail, got %+v", res)
	}

	updated := env.fantasy.UpdatePlayer(ctx, "u1", t1.ID, player.ID, fantasy.PlayerPatch{Position: &pos})
	if !updated.Success || updated.Data.Position != "WR" {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	if res := env.fantasy.RemovePlayer(ctx, "u1", t1.ID, player.ID); !res.Success {
		t.Fatalf("remove player: %+v", res)
	}
	if res := env.fantasy.RemovePlayer(ctx, "u1", t1.ID, player.ID); !res.Success {
		t.Fatalf("expected repeat removal to succeed, got %+v", res)
	}
}

func TestFantasyActions_DeleteTeamRemovesPlayers(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, "u1")
	team := env.fantasy.CreateTeam(ctx, newTeamInput("u1")).Data
	player := env.fantasy.AddPlayer(ctx, "u1", fantasy.NewPlayer{TeamID: team.ID, Name: "Derrick Henry", Position: "RB", Team: "BAL"}).Data

	if res := env.fantasy.DeleteTeam(ctx, "u1", team.ID); !res.Success {
		t.Fatalf("delete team: %+v", res)
	}

	if _, found, _ := env.fantasyRepo.GetPlayer(ctx, player.ID); found {
		t.Fatalf("expected player to be removed with its team")
	}
}
