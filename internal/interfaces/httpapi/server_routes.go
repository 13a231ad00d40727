package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/pricing", handler.ListPricingPlans)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	auth := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(verifier, h)
	}

	registerUserRoutes(mux, handler, auth)
	registerBetSlipRoutes(mux, handler, auth)
	registerChatRoutes(mux, handler, auth)
	registerFantasyRoutes(mux, handler, auth)
}

func registerUserRoutes(mux *http.ServeMux, handler *Handler, auth func(http.HandlerFunc) http.Handler) {
	mux.Handle("POST /v1/users/me", auth(handler.CreateMe))
	mux.Handle("GET /v1/users/me", auth(handler.GetMe))
	mux.Handle("PATCH /v1/users/me", auth(handler.UpdateMe))
	mux.Handle("DELETE /v1/users/me", auth(handler.DeleteMe))
	mux.Handle("GET /v1/dashboard", auth(handler.GetDashboard))
}

func registerBetSlipRoutes(mux *http.ServeMux, handler *Handler, auth func(http.HandlerFunc) http.Handler) {
	mux.Handle("POST /v1/bet-slips", auth(handler.CreateBetSlip))
	mux.Handle("GET /v1/bet-slips", auth(handler.ListMyBetSlips))
	mux.Handle("GET /v1/bet-slips/{betSlipID}", auth(handler.GetBetSlip))
	mux.Handle("PATCH /v1/bet-slips/{betSlipID}", auth(handler.UpdateBetSlip))
	mux.Handle("DELETE /v1/bet-slips/{betSlipID}", auth(handler.DeleteBetSlip))
}

func registerChatRoutes(mux *http.ServeMux, handler *Handler, auth func(http.HandlerFunc) http.Handler) {
	mux.Handle("POST /v1/chat/groups", auth(handler.CreateChatGroup))
	mux.Handle("GET /v1/chat/groups", auth(handler.ListChatGroups))
	mux.Handle("GET /v1/chat/groups/me", auth(handler.ListMyChatGroups))
	mux.Handle("GET /v1/chat/groups/{groupID}", auth(handler.GetChatGroup))
	mux.Handle("PATCH /v1/chat/groups/{groupID}", auth(handler.UpdateChatGroup))
	mux.Handle("DELETE /v1/chat/groups/{groupID}", auth(handler.DeleteChatGroup))
	mux.Handle("POST /v1/chat/groups/{groupID}/membership", auth(handler.JoinChatGroup))
	mux.Handle("DELETE /v1/chat/groups/{groupID}/membership", auth(handler.LeaveChatGroup))
	mux.Handle("PUT /v1/chat/groups/{groupID}/membership/mute", auth(handler.MuteChatGroup))
	mux.Handle("GET /v1/chat/groups/{groupID}/members", auth(handler.ListChatMembers))
	mux.Handle("POST /v1/chat/groups/{groupID}/messages", auth(handler.PostChatMessage))
	mux.Handle("GET /v1/chat/groups/{groupID}/messages", auth(handler.ListChatMessages))
	mux.Handle("GET /v1/chat/messages/{messageID}/replies", auth(handler.ListChatReplies))
	mux.Handle("DELETE /v1/chat/messages/{messageID}", auth(handler.DeleteChatMessage))
}

func registerFantasyRoutes(mux *http.ServeMux, handler *Handler, auth func(http.HandlerFunc) http.Handler) {
	mux.Handle("POST /v1/fantasy/teams", auth(handler.CreateFantasyTeam))
	mux.Handle("GET /v1/fantasy/teams", auth(handler.ListMyFantasyTeams))
	mux.Handle("GET /v1/fantasy/teams/{teamID}", auth(handler.GetFantasyTeam))
	mux.Handle("PATCH /v1/fantasy/teams/{teamID}", auth(handler.UpdateFantasyTeam))
	mux.Handle("DELETE /v1/fantasy/teams/{teamID}", auth(handler.DeleteFantasyTeam))
	mux.Handle("POST /v1/fantasy/teams/{teamID}/players", auth(handler.AddFantasyPlayer))
	mux.Handle("GET /v1/fantasy/teams/{teamID}/players", auth(handler.ListFantasyPlayers))
	mux.Handle("PATCH /v1/fantasy/teams/{teamID}/players/{playerID}", auth(handler.UpdateFantasyPlayer))
	mux.Handle("DELETE /v1/fantasy/teams/{teamID}/players/{playerID}", auth(handler.RemoveFantasyPlayer))
}
