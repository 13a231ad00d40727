package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/riskibarqy/betting-analytics/internal/domain/fantasy"
	"github.com/riskibarqy/betting-analytics/internal/domain/user"
	"github.com/riskibarqy/betting-analytics/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/betting-analytics/internal/platform/logging"
	"github.com/riskibarqy/betting-analytics/internal/usecase"
)

type stubVerifier map[string]user.Principal

func (s stubVerifier) VerifyAccessToken(_ context.Context, token string) (user.Principal, error) {
	p, ok := s[token]
	if !ok {
		return user.Principal{}, fmt.Errorf("%w: unknown token", usecase.ErrUnauthorized)
	}
	return p, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	store := memory.NewStore(nil)
	users := memory.NewUserRepository(store)
	slips := memory.NewBetSlipRepository(store)
	chats := memory.NewChatRepository(store)
	teams := memory.NewFantasyRepository(store)
	logger := logging.NewNop()

	handler := NewHandler(
		usecase.NewUserActions(users, logger),
		usecase.NewBetSlipActions(slips, users, logger),
		usecase.NewChatActions(chats, users, logger),
		usecase.NewFantasyActions(teams, users, fantasy.DefaultRules(), logger),
		usecase.NewDashboardService(users, slips, chats, teams, logger),
		logger,
	)
	verifier := stubVerifier{
		"token-u1": {UserID: "u1", Email: "u1@example.com"},
		"token-u2": {UserID: "u2", Email: "u2@example.com"},
	}
	return NewRouter(handler, verifier, logger, true, []string{"*"})
}

func call(t *testing.T, router http.Handler, method, path, token, body string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec.Code, decodeBody(t, rec)
}

func dataField(t *testing.T, body map[string]any, key string) any {
	t.Helper()

	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %+v", body)
	}
	return data[key]
}

func TestRouter_RequiresBearerToken(t *testing.T) {
	router := newTestRouter(t)

	if code, body := call(t, router, http.MethodGet, "/v1/users/me", "", ""); code != http.StatusUnauthorized || body["success"] != false {
		t.Fatalf("expected 401 without token, got %d %+v", code, body)
	}
	if code, _ := call(t, router, http.MethodGet, "/v1/users/me", "forged", ""); code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown token, got %d", code)
	}
}

func TestRouter_PublicRoutes(t *testing.T) {
	router := newTestRouter(t)

	code, body := call(t, router, http.MethodGet, "/v1/pricing", "", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if plans, ok := body["data"].([]any); !ok || len(plans) != 3 {
		t.Fatalf("expected three plans, got %+v", body["data"])
	}

	if code, _ := call(t, router, http.MethodGet, "/healthz", "", ""); code != http.StatusOK {
		t.Fatalf("expected healthz 200, got %d", code)
	}

	req := httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "openapi:") {
		t.Fatalf("expected openapi document, got %d", rec.Code)
	}
}

func TestRouter_UserLifecycle(t *testing.T) {
	router := newTestRouter(t)

	code, body := call(t, router, http.MethodPost, "/v1/users/me", "token-u1", `{"layout_config":{"theme":"dark"}}`)
	if code != http.StatusCreated || body["message"] != "User created successfully" {
		t.Fatalf("unexpected create response: %d %+v", code, body)
	}
	if got := dataField(t, body, "email"); got != "u1@example.com" {
		t.Fatalf("expected email from principal, got %v", got)
	}
	if got := dataField(t, body, "membership"); got != "free" {
		t.Fatalf("expected default membership, got %v", got)
	}

	code, body = call(t, router, http.MethodPatch, "/v1/users/me", "token-u1", `{"membership":"premium"}`)
	if code != http.StatusOK || dataField(t, body, "membership") != "premium" {
		t.Fatalf("unexpected update response: %d %+v", code, body)
	}

	if code, _ := call(t, router, http.MethodPatch, "/v1/users/me", "token-u1", `{"membership":"gold"}`); code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad membership, got %d", code)
	}
	if code, _ := call(t, router, http.MethodPatch, "/v1/users/me", "token-u1", `{"nickname":"x"}`); code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown field, got %d", code)
	}

	code, body = call(t, router, http.MethodDelete, "/v1/users/me", "token-u1", "")
	if code != http.StatusOK || body["message"] != "User deleted successfully" {
		t.Fatalf("unexpected delete response: %d %+v", code, body)
	}
	if _, ok := body["data"]; ok {
		t.Fatalf("delete response must not carry data: %+v", body)
	}

	code, body = call(t, router, http.MethodGet, "/v1/users/me", "token-u1", "")
	if code != http.StatusNotFound || body["message"] != "User not found" {
		t.Fatalf("expected not found after delete, got %d %+v", code, body)
	}

	if code, _ := call(t, router, http.MethodDelete, "/v1/users/me", "token-u1", ""); code != http.StatusOK {
		t.Fatalf("expected repeated delete to succeed, got %d", code)
	}
	if code, _ := call(t, router, http.MethodPatch, "/v1/users/me", "token-u1", `{"email":"a@b.com"}`); code != http.StatusNotFound {
		t.Fatalf("expected update of missing user to be not found, got %d", code)
	}
}

func TestRouter_BetSlipsAndDashboard(t *testing.T) {
	router := newTestRouter(t)
	call(t, router, http.MethodPost, "/v1/users/me", "token-u1", "")
	call(t, router, http.MethodPost, "/v1/users/me", "token-u2", "")

	code, body := call(t, router, http.MethodPost, "/v1/bet-slips", "token-u1", `{"stake":"$10","potential_winnings":"30","odds":"+200","bet_details":{"market":"moneyline"}}`)
	if code != http.StatusCreated || dataField(t, body, "status") != "open" {
		t.Fatalf("unexpected create response: %d %+v", code, body)
	}
	slipID, _ := dataField(t, body, "id").(string)

	code, body = call(t, router, http.MethodPatch, "/v1/bet-slips/"+slipID, "token-u1", `{"status":"won","result":"Covered"}`)
	if code != http.StatusOK || dataField(t, body, "status") != "won" {
		t.Fatalf("unexpected update response: %d %+v", code, body)
	}

	if code, _ := call(t, router, http.MethodGet, "/v1/bet-slips/"+slipID, "token-u2", ""); code != http.StatusNotFound {
		t.Fatalf("expected other user to get 404, got %d", code)
	}

	code, body = call(t, router, http.MethodGet, "/v1/bet-slips?status=won&limit=10", "token-u1", "")
	if items, ok := body["data"].([]any); code != http.StatusOK || !ok || len(items) != 1 {
		t.Fatalf("unexpected list response: %d %+v", code, body)
	}
	if code, _ := call(t, router, http.MethodGet, "/v1/bet-slips?limit=abc", "token-u1", ""); code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad limit, got %d", code)
	}

	code, body = call(t, router, http.MethodGet, "/v1/dashboard", "token-u1", "")
	if code != http.StatusOK {
		t.Fatalf("unexpected dashboard response: %d %+v", code, body)
	}
	overview := dataField(t, body, "overview").(map[string]any)
	if overview["won_bets"] != float64(1) || overview["total_profit"] != float64(20) {
		t.Fatalf("unexpected overview: %+v", overview)
	}
}

func TestRouter_DashboardIgnoresNonNumericStake(t *testing.T) {
	router := newTestRouter(t)
	call(t, router, http.MethodPost, "/v1/users/me", "token-u1", "")

	if code, body := call(t, router, http.MethodPost, "/v1/bet-slips", "token-u1", `{"stake":"NaN","potential_winnings":"10","status":"won"}`); code != http.StatusCreated {
		t.Fatalf("unexpected create response: %d %+v", code, body)
	}
	if code, body := call(t, router, http.MethodPost, "/v1/bet-slips", "token-u1", `{"stake":"4","potential_winnings":"10","status":"won"}`); code != http.StatusCreated {
		t.Fatalf("unexpected create response: %d %+v", code, body)
	}

	code, body := call(t, router, http.MethodGet, "/v1/dashboard", "token-u1", "")
	if code != http.StatusOK || body["success"] != true {
		t.Fatalf("unexpected dashboard response: %d %+v", code, body)
	}
	overview := dataField(t, body, "overview").(map[string]any)
	if overview["total_profit"] != float64(6) {
		t.Fatalf("unexpected overview: %+v", overview)
	}
}

func TestRouter_ChatMembershipRules(t *testing.T) {
	router := newTestRouter(t)
	call(t, router, http.MethodPost, "/v1/users/me", "token-u1", "")
	call(t, router, http.MethodPost, "/v1/users/me", "token-u2", "")

	code, body := call(t, router, http.MethodPost, "/v1/chat/groups", "token-u1", `{"name":"NFL Sundays"}`)
	if code != http.StatusCreated {
		t.Fatalf("unexpected create group response: %d %+v", code, body)
	}
	groupID, _ := dataField(t, body, "id").(string)
	messagesPath := "/v1/chat/groups/" + groupID + "/messages"

	if code, _ := call(t, router, http.MethodPost, messagesPath, "token-u2", `{"content":"hi"}`); code != http.StatusForbidden {
		t.Fatalf("expected non-member post to be forbidden, got %d", code)
	}

	if code, _ := call(t, router, http.MethodPost, "/v1/chat/groups/"+groupID+"/membership", "token-u2", ""); code != http.StatusOK {
		t.Fatalf("expected join to succeed, got %d", code)
	}
	code, body = call(t, router, http.MethodPut, "/v1/chat/groups/"+groupID+"/membership/mute", "token-u2", `{"muted":true}`)
	if code != http.StatusOK || dataField(t, body, "is_muted") != true {
		t.Fatalf("unexpected mute response: %d %+v", code, body)
	}

	code, body = call(t, router, http.MethodPost, messagesPath, "token-u2", `{"content":"hi"}`)
	if code != http.StatusCreated {
		t.Fatalf("unexpected post response: %d %+v", code, body)
	}
	if parent := dataField(t, body, "parent_message_id"); parent != nil {
		t.Fatalf("expected null parent, got %v", parent)
	}

	code, body = call(t, router, http.MethodGet, "/v1/chat/groups/me", "token-u2", "")
	if items, ok := body["data"].([]any); code != http.StatusOK || !ok || len(items) != 1 {
		t.Fatalf("unexpected my groups response: %d %+v", code, body)
	}
}

func TestRouter_FantasyRoster(t *testing.T) {
	router := newTestRouter(t)
	call(t, router, http.MethodPost, "/v1/users/me", "token-u1", "")

	code, body := call(t, router, http.MethodPost, "/v1/fantasy/teams", "token-u1", `{"name":"Sharp Money","league":"NFL","scoring_format":"PPR","season":"2026"}`)
	if code != http.StatusCreated {
		t.Fatalf("unexpected create team response: %d %+v", code, body)
	}
	teamID, _ := dataField(t, body, "id").(string)
	playersPath := "/v1/fantasy/teams/" + teamID + "/players"

	code, body = call(t, router, http.MethodPost, playersPath, "token-u1", `{"name":"Josh Allen","position":"qb","team":"BUF"}`)
	if code != http.StatusCreated || dataField(t, body, "position") != "QB" {
		t.Fatalf("unexpected add player response: %d %+v", code, body)
	}
	if code, _ := call(t, router, http.MethodPost, playersPath, "token-u1", `{"name":"Josh Allen","position":"QB","team":"BUF"}`); code != http.StatusBadRequest {
		t.Fatalf("expected duplicate player to be rejected, got %d", code)
	}
	if code, _ := call(t, router, http.MethodPost, "/v1/fantasy/teams", "token-u1", `{"name":"Missing fields"}`); code != http.StatusBadRequest {
		t.Fatalf("expected validation failure, got %d", code)
	}

	if code, _ := call(t, router, http.MethodDelete, "/v1/fantasy/teams/"+teamID, "token-u1", ""); code != http.StatusOK {
		t.Fatalf("expected delete to succeed, got %d", code)
	}
	if code, _ := call(t, router, http.MethodGet, playersPath, "token-u1", ""); code != http.StatusNotFound {
		t.Fatalf("expected roster of deleted team to be not found, got %d", code)
	}
}
