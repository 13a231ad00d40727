package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/betting-analytics/internal/domain/betslip"
	"github.com/riskibarqy/betting-analytics/internal/usecase"
)

func (h *Handler) CreateBetSlip(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateBetSlip")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createBetSlipRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	res := h.betSlips.Create(ctx, betslip.NewBetSlip{
		UserID:            principal.UserID,
		Status:            betslip.Status(req.Status),
		BetDetails:        req.BetDetails,
		Odds:              req.Odds,
		Stake:             req.Stake,
		PotentialWinnings: req.PotentialWinnings,
		Result:            req.Result,
		ScreenshotURL:     req.ScreenshotURL,
	})
	writeResult(ctx, w, http.StatusCreated, res, betSlipToDTO)
}

func (h *Handler) ListMyBetSlips(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyBetSlips")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	filter := betslip.ListFilter{}
	if raw := strings.TrimSpace(r.URL.Query().Get("status")); raw != "" {
		status := betslip.Status(raw)
		filter.Status = &status
	}
	if filter.Limit, err = queryInt(r, "limit"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if filter.Offset, err = queryInt(r, "offset"); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeResult(ctx, w, http.StatusOK, h.betSlips.ListByUser(ctx, principal.UserID, filter), betSlipsToDTO)
}

func (h *Handler) GetBetSlip(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetBetSlip")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeResult(ctx, w, http.StatusOK, h.betSlips.Get(ctx, principal.UserID, r.PathValue("betSlipID")), betSlipToDTO)
}

func (h *Handler) UpdateBetSlip(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateBetSlip")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateBetSlipRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	res := h.betSlips.Update(ctx, principal.UserID, r.PathValue("betSlipID"), req.toPatch())
	writeResult(ctx, w, http.StatusOK, res, betSlipToDTO)
}

func (h *Handler) DeleteBetSlip(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteBetSlip")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	betSlipID := strings.TrimSpace(r.PathValue("betSlipID"))
	if betSlipID == "" {
		writeError(ctx, w, fmt.Errorf("%w: bet slip id is required", usecase.ErrInvalidInput))
		return
	}

	writeResult(ctx, w, http.StatusOK, h.betSlips.Delete(ctx, principal.UserID, betSlipID), nil)
}
