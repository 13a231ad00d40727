package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/betting-analytics/internal/domain/user"
)

func (h *Handler) CreateMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMe")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createUserRequest
	if r.ContentLength != 0 {
		if err := h.decodeAndValidate(ctx, r, &req); err != nil {
			writeError(ctx, w, err)
			return
		}
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		email = principal.Email
	}

	res := h.users.Create(ctx, user.NewUser{
		UserID:                  principal.UserID,
		Email:                   email,
		Membership:              user.Membership(req.Membership),
		StripeCustomerID:        req.StripeCustomerID,
		StripeSubscriptionID:    req.StripeSubscriptionID,
		NotificationPreferences: req.NotificationPreferences,
		LayoutConfig:            req.LayoutConfig,
	})
	writeResult(ctx, w, http.StatusCreated, res, userToDTO)
}

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMe")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeResult(ctx, w, http.StatusOK, h.users.Get(ctx, principal.UserID), userToDTO)
}

func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMe")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateUserRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeResult(ctx, w, http.StatusOK, h.users.Update(ctx, principal.UserID, req.toPatch()), userToDTO)
}

func (h *Handler) DeleteMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMe")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeResult(ctx, w, http.StatusOK, h.users.Delete(ctx, principal.UserID), nil)
}
