package httpapi

import (
	"net/http"

	"github.com/riskibarqy/betting-analytics/internal/domain/fantasy"
)

func (h *Handler) CreateFantasyTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateFantasyTeam")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createFantasyTeamRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	res := h.fantasy.CreateTeam(ctx, fantasy.NewTeam{
		UserID:        principal.UserID,
		Name:          req.Name,
		League:        req.League,
		ScoringFormat: req.ScoringFormat,
		Season:        req.Season,
	})
	writeResult(ctx, w, http.StatusCreated, res, fantasyTeamToDTO)
}

func (h *Handler) ListMyFantasyTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyFantasyTeams")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeResult(ctx, w, http.StatusOK, h.fantasy.ListTeamsByUser(ctx, principal.UserID), fantasyTeamsToDTO)
}

func (h *Handler) GetFantasyTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFantasyTeam")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeResult(ctx, w, http.StatusOK, h.fantasy.GetTeam(ctx, principal.UserID, r.PathValue("teamID")), fantasyTeamToDTO)
}

func (h *Handler) UpdateFantasyTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateFantasyTeam")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateFantasyTeamRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	res := h.fantasy.UpdateTeam(ctx, principal.UserID, r.PathValue("teamID"), fantasy.TeamPatch{
		Name:          req.Name,
		League:        req.League,
		ScoringFormat: req.ScoringFormat,
		Season:        req.Season,
	})
	writeResult(ctx, w, http.StatusOK, res, fantasyTeamToDTO)
}

func (h *Handler) DeleteFantasyTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteFantasyTeam")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeResult(ctx, w, http.StatusOK, h.fantasy.DeleteTeam(ctx, principal.UserID, r.PathValue("teamID")), nil)
}

func (h *Handler) AddFantasyPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddFantasyPlayer")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req addFantasyPlayerRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	res := h.fantasy.AddPlayer(ctx, principal.UserID, fantasy.NewPlayer{
		TeamID:      r.PathValue("teamID"),
		Name:        req.Name,
		Position:    req.Position,
		Team:        req.Team,
		Stats:       req.Stats,
		Projections: req.Projections,
	})
	writeResult(ctx, w, http.StatusCreated, res, fantasyPlayerToDTO)
}

func (h *Handler) ListFantasyPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFantasyPlayers")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeResult(ctx, w, http.StatusOK, h.fantasy.ListPlayers(ctx, principal.UserID, r.PathValue("teamID")), fantasyPlayersToDTO)
}

func (h *Handler) UpdateFantasyPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateFantasyPlayer")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateFantasyPlayerRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	res := h.fantasy.UpdatePlayer(ctx, principal.UserID, r.PathValue("teamID"), r.PathValue("playerID"), fantasy.PlayerPatch{
		Name:        req.Name,
		Position:    req.Position,
		Team:        req.Team,
		Stats:       req.Stats,
		Projections: req.Projections,
	})
	writeResult(ctx, w, http.StatusOK, res, fantasyPlayerToDTO)
}

func (h *Handler) RemoveFantasyPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveFantasyPlayer")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	res := h.fantasy.RemovePlayer(ctx, principal.UserID, r.PathValue("teamID"), r.PathValue("playerID"))
	writeResult(ctx, w, http.StatusOK, res, nil)
}
