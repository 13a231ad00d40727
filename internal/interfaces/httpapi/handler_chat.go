package httpapi

import (
	"net/http"

	"github.com/riskibarqy/betting-analytics/internal/domain/chat"
)

func (h *Handler) CreateChatGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateChatGroup")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createChatGroupRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	res := h.chats.CreateGroup(ctx, principal.UserID, chat.NewGroup{Name: req.Name, Description: req.Description})
	writeResult(ctx, w, http.StatusCreated, res, chatGroupToDTO)
}

func (h *Handler) ListChatGroups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListChatGroups")
	defer span.End()

	writeResult(ctx, w, http.StatusOK, h.chats.ListGroups(ctx), chatGroupsToDTO)
}

func (h *Handler) ListMyChatGroups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyChatGroups")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeResult(ctx, w, http.StatusOK, h.chats.ListGroupsByUser(ctx, principal.UserID), chatGroupsToDTO)
}

func (h *Handler) GetChatGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetChatGroup")
	defer span.End()

	writeResult(ctx, w, http.StatusOK, h.chats.GetGroup(ctx, r.PathValue("groupID")), chatGroupToDTO)
}

func (h *Handler) UpdateChatGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateChatGroup")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateChatGroupRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	res := h.chats.UpdateGroup(ctx, principal.UserID, r.PathValue("groupID"), chat.GroupPatch{
		Name:        req.Name,
		Description: req.Description,
	})
	writeResult(ctx, w, http.StatusOK, res, chatGroupToDTO)
}

func (h *Handler) DeleteChatGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteChatGroup")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeResult(ctx, w, http.StatusOK, h.chats.DeleteGroup(ctx, principal.UserID, r.PathValue("groupID")), nil)
}

func (h *Handler) JoinChatGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.JoinChatGroup")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeResult(ctx, w, http.StatusOK, h.chats.JoinGroup(ctx, principal.UserID, r.PathValue("groupID")), chatMembershipToDTO)
}

func (h *Handler) LeaveChatGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LeaveChatGroup")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeResult(ctx, w, http.StatusOK, h.chats.LeaveGroup(ctx, principal.UserID, r.PathValue("groupID")), nil)
}

func (h *Handler) MuteChatGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MuteChatGroup")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req muteChatGroupRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	res := h.chats.SetMuted(ctx, principal.UserID, r.PathValue("groupID"), *req.Muted)
	writeResult(ctx, w, http.StatusOK, res, chatMembershipToDTO)
}

func (h *Handler) ListChatMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListChatMembers")
	defer span.End()

	writeResult(ctx, w, http.StatusOK, h.chats.ListMembers(ctx, r.PathValue("groupID")), chatMembershipsToDTO)
}

func (h *Handler) PostChatMessage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PostChatMessage")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req postChatMessageRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	res := h.chats.PostMessage(ctx, chat.NewMessage{
		GroupID:         r.PathValue("groupID"),
		UserID:          principal.UserID,
		Content:         req.Content,
		ParentMessageID: req.ParentMessageID,
	})
	writeResult(ctx, w, http.StatusCreated, res, chatMessageToDTO)
}

func (h *Handler) ListChatMessages(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListChatMessages")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	res := h.chats.ListMessages(ctx, principal.UserID, r.PathValue("groupID"), limit)
	writeResult(ctx, w, http.StatusOK, res, chatMessagesToDTO)
}

func (h *Handler) ListChatReplies(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListChatReplies")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	res := h.chats.ListReplies(ctx, principal.UserID, r.PathValue("messageID"))
	writeResult(ctx, w, http.StatusOK, res, chatMessagesToDTO)
}

func (h *Handler) DeleteChatMessage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteChatMessage")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeResult(ctx, w, http.StatusOK, h.chats.DeleteMessage(ctx, principal.UserID, r.PathValue("messageID")), nil)
}
