package httpapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/betting-analytics/internal/platform/logging"
	"github.com/riskibarqy/betting-analytics/internal/usecase"
)

type Handler struct {
	users     *usecase.UserActions
	betSlips  *usecase.BetSlipActions
	chats     *usecase.ChatActions
	fantasy   *usecase.FantasyActions
	dashboard *usecase.DashboardService
	logger    *logging.Logger
	validator *validator.Validate
}

func NewHandler(
	users *usecase.UserActions,
	betSlips *usecase.BetSlipActions,
	chats *usecase.ChatActions,
	fantasy *usecase.FantasyActions,
	dashboard *usecase.DashboardService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		users:     users,
		betSlips:  betSlips,
		chats:     chats,
		fantasy:   fantasy,
		dashboard: dashboard,
		logger:    logger,
		validator: validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, "", map[string]string{"status": "ok"})
}

func (h *Handler) ListPricingPlans(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPricingPlans")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, "Pricing plans retrieved successfully", usecase.PricingCatalog())
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboard")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeResult(ctx, w, http.StatusOK, h.dashboard.Get(ctx, principal.UserID), dashboardToDTO)
}
