package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/riskibarqy/betting-analytics/internal/domain/chat"
	"github.com/riskibarqy/betting-analytics/internal/domain/user"
	"github.com/riskibarqy/betting-analytics/internal/platform/id"
	"github.com/riskibarqy/betting-analytics/internal/platform/logging"
	"go.opentelemetry.io/otel/trace"
)

const (
	msgChatGroupCreated        = "Chat group created successfully"
	msgChatGroupRetrieved      = "Chat group retrieved successfully"
	msgChatGroupsRetrieved     = "Chat groups retrieved successfully"
	msgChatGroupUpdated        = "Chat group updated successfully"
	msgChatGroupDeleted        = "Chat group deleted successfully"
	msgChatGroupNotFound       = "Chat group not found"
	msgChatGroupJoined         = "Joined chat group successfully"
	msgChatGroupLeft           = "Left chat group successfully"
	msgChatMembershipUpdated   = "Chat membership updated successfully"
	msgChatMembershipNotFound  = "Chat membership not found"
	msgChatMembersRetrieved    = "Chat members retrieved successfully"
	msgChatMessageCreated      = "Chat message created successfully"
	msgChatMessagesRetrieved   = "Chat messages retrieved successfully"
	msgChatMessageDeleted      = "Chat message deleted successfully"
	msgChatMessageNotFound     = "Chat message not found"
	msgChatNotMember           = "Not a member of this chat group"
	msgChatNotAuthor           = "Only the author can delete this message"
	msgChatInvalid             = "Invalid chat input"
	msgChatGroupCreateFailed   = "Failed to create chat group"
	msgChatGroupGetFailed      = "Failed to get chat group"
	msgChatGroupListFailed     = "Failed to list chat groups"
	msgChatGroupUpdateFailed   = "Failed to update chat group"
	msgChatGroupDeleteFailed   = "Failed to delete chat group"
	msgChatJoinFailed          = "Failed to join chat group"
	msgChatLeaveFailed         = "Failed to leave chat group"
	msgChatMembershipFailed    = "Failed to update chat membership"
	msgChatMembersListFailed   = "Failed to list chat members"
	msgChatMessageCreateFailed = "Failed to create chat message"
	msgChatMessageListFailed   = "Failed to list chat messages"
	msgChatMessageDeleteFailed = "Failed to delete chat message"

	maxChatMessageLength   = 4000
	defaultChatMessagePage = 50
	maxChatMessagePage     = 200
)

type ChatActions struct {
	repo   chat.Repository
	users  user.Repository
	logger *logging.Logger
}

func NewChatActions(repo chat.Repository, users user.Repository, logger *logging.Logger) *ChatActions {
	if logger == nil {
		logger = logging.Default()
	}
	return &ChatActions{repo: repo, users: users, logger: logger}
}

// CreateGroup creates the group and makes its creator the first member.
func (a *ChatActions) CreateGroup(ctx context.Context, userID string, input chat.NewGroup) Result[chat.Group] {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChatActions.CreateGroup")
	defer span.End()

	userID = strings.TrimSpace(userID)
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)
	if userID == "" {
		return invalid[chat.Group](msgChatInvalid, "user_id is required")
	}
	if input.Name == "" {
		return invalid[chat.Group](msgChatInvalid, "name is required")
	}

	_, found, err := a.users.GetByUserID(ctx, userID)
	if err != nil {
		return persistenceFailure[chat.Group](ctx, a.logger, span, msgChatGroupCreateFailed, err, "user_id", userID)
	}
	if !found {
		return notFound[chat.Group](msgUserNotFound)
	}

	group, err := a.repo.CreateGroup(ctx, input)
	if err != nil {
		return persistenceFailure[chat.Group](ctx, a.logger, span, msgChatGroupCreateFailed, err, "user_id", userID)
	}
	if _, err := a.repo.AddMember(ctx, group.ID, userID); err != nil {
		return persistenceFailure[chat.Group](ctx, a.logger, span, msgChatGroupCreateFailed, err, "group_id", group.ID, "user_id", userID)
	}
	return succeed(msgChatGroupCreated, group)
}

func (a *ChatActions) GetGroup(ctx context.Context, groupID string) Result[chat.Group] {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChatActions.GetGroup")
	defer span.End()

	group, res, ok := a.loadGroup(ctx, span, groupID, msgChatGroupGetFailed)
	if !ok {
		return res
	}
	return succeed(msgChatGroupRetrieved, group)
}

func (a *ChatActions) ListGroups(ctx context.Context) Result[[]chat.Group] {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChatActions.ListGroups")
	defer span.End()

	groups, err := a.repo.ListGroups(ctx)
	if err != nil {
		return persistenceFailure[[]chat.Group](ctx, a.logger, span, msgChatGroupListFailed, err)
	}
	return succeed(msgChatGroupsRetrieved, groups)
}

func (a *ChatActions) ListGroupsByUser(ctx context.Context, userID string) Result[[]chat.Group] {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChatActions.ListGroupsByUser")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return invalid[[]chat.Group](msgChatInvalid, "user_id is required")
	}

	groups, err := a.repo.ListGroupsByUser(ctx, userID)
	if err != nil {
		return persistenceFailure[[]chat.Group](ctx, a.logger, span, msgChatGroupListFailed, err, "user_id", userID)
	}
	return succeed(msgChatGroupsRetrieved, groups)
}

// UpdateGroup is limited to members of the group.
func (a *ChatActions) UpdateGroup(ctx context.Context, userID, groupID string, patch chat.GroupPatch) Result[chat.Group] {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChatActions.UpdateGroup")
	defer span.End()

	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return invalid[chat.Group](msgChatInvalid, "name cannot be empty")
	}

	group, res, ok := a.loadGroup(ctx, span, groupID, msgChatGroupUpdateFailed)
	if !ok {
		return res
	}
	if res, ok := requireMember[chat.Group](ctx, a, span, group.ID, userID, msgChatGroupUpdateFailed); !ok {
		return res
	}

	updated, found, err := a.repo.UpdateGroup(ctx, group.ID, patch)
	if err != nil {
		return persistenceFailure[chat.Group](ctx, a.logger, span, msgChatGroupUpdateFailed, err, "group_id", group.ID)
	}
	if !found {
		return notFound[chat.Group](msgChatGroupNotFound)
	}
	return succeed(msgChatGroupUpdated, updated)
}

// DeleteGroup is limited to members; deleting a missing group succeeds.
func (a *ChatActions) DeleteGroup(ctx context.Context, userID, groupID string) Result[struct{}] {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChatActions.DeleteGroup")
	defer span.End()

	groupID = strings.TrimSpace(groupID)
	if !id.Valid(groupID) {
		return succeedEmpty[struct{}](msgChatGroupDeleted)
	}
	_, found, err := a.repo.GetGroup(ctx, groupID)
	if err != nil {
		return persistenceFailure[struct{}](ctx, a.logger, span, msgChatGroupDeleteFailed, err, "group_id", groupID)
	}
	if !found {
		return succeedEmpty[struct{}](msgChatGroupDeleted)
	}
	if res, ok := requireMember[struct{}](ctx, a, span, groupID, userID, msgChatGroupDeleteFailed); !ok {
		return res
	}

	if _, err := a.repo.DeleteGroup(ctx, groupID); err != nil {
		return persistenceFailure[struct{}](ctx, a.logger, span, msgChatGroupDeleteFailed, err, "group_id", groupID)
	}
	return succeedEmpty[struct{}](msgChatGroupDeleted)
}

// JoinGroup is idempotent: joining twice returns the existing membership.
func (a *ChatActions) JoinGroup(ctx context.Context, userID, groupID string) Result[chat.Membership] {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChatActions.JoinGroup")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return invalid[chat.Membership](msgChatInvalid, "user_id is required")
	}
	group, res, ok := a.loadGroup(ctx, span, groupID, msgChatJoinFailed)
	if !ok {
		return fail[chat.Membership](res.Message, res.Err)
	}

	_, found, err := a.users.GetByUserID(ctx, userID)
	if err != nil {
		return persistenceFailure[chat.Membership](ctx, a.logger, span, msgChatJoinFailed, err, "user_id", userID)
	}
	if !found {
		return notFound[chat.Membership](msgUserNotFound)
	}

	membership, err := a.repo.AddMember(ctx, group.ID, userID)
	if err != nil {
		return persistenceFailure[chat.Membership](ctx, a.logger, span, msgChatJoinFailed, err, "group_id", group.ID, "user_id", userID)
	}
	return succeed(msgChatGroupJoined, membership)
}

// LeaveGroup succeeds even when the user was not a member.
func (a *ChatActions) LeaveGroup(ctx context.Context, userID, groupID string) Result[struct{}] {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChatActions.LeaveGroup")
	defer span.End()

	userID = strings.TrimSpace(userID)
	groupID = strings.TrimSpace(groupID)
	if userID == "" {
		return invalid[struct{}](msgChatInvalid, "user_id is required")
	}
	if !id.Valid(groupID) {
		return succeedEmpty[struct{}](msgChatGroupLeft)
	}

	if _, err := a.repo.RemoveMember(ctx, groupID, userID); err != nil {
		return persistenceFailure[struct{}](ctx, a.logger, span, msgChatLeaveFailed, err, "group_id", groupID, "user_id", userID)
	}
	return succeedEmpty[struct{}](msgChatGroupLeft)
}

func (a *ChatActions) SetMuted(ctx context.Context, userID, groupID string, muted bool) Result[chat.Membership] {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChatActions.SetMuted")
	defer span.End()

	userID = strings.TrimSpace(userID)
	groupID = strings.TrimSpace(groupID)
	if userID == "" {
		return invalid[chat.Membership](msgChatInvalid, "user_id is required")
	}
	if !id.Valid(groupID) {
		return notFound[chat.Membership](msgChatMembershipNotFound)
	}

	membership, found, err := a.repo.SetMuted(ctx, groupID, userID, muted)
	if err != nil {
		return persistenceFailure[chat.Membership](ctx, a.logger, span, msgChatMembershipFailed, err, "group_id", groupID, "user_id", userID)
	}
	if !found {
		return notFound[chat.Membership](msgChatMembershipNotFound)
	}
	return succeed(msgChatMembershipUpdated, membership)
}

func (a *ChatActions) ListMembers(ctx context.Context, groupID string) Result[[]chat.Membership] {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChatActions.ListMembers")
	defer span.End()

	group, res, ok := a.loadGroup(ctx, span, groupID, msgChatMembersListFailed)
	if !ok {
		return fail[[]chat.Membership](res.Message, res.Err)
	}

	members, err := a.repo.ListMembers(ctx, group.ID)
	if err != nil {
		return persistenceFailure[[]chat.Membership](ctx, a.logger, span, msgChatMembersListFailed, err, "group_id", group.ID)
	}
	return succeed(msgChatMembersRetrieved, members)
}

// PostMessage requires membership; a reply's parent must live in the same group.
func (a *ChatActions) PostMessage(ctx context.Context, input chat.NewMessage) Result[chat.Message] {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChatActions.PostMessage")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.Content = strings.TrimSpace(input.Content)
	input.ParentMessageID = strings.TrimSpace(input.ParentMessageID)
	if input.UserID == "" {
		return invalid[chat.Message](msgChatInvalid, "user_id is required")
	}
	if input.Content == "" {
		return invalid[chat.Message](msgChatInvalid, "content is required")
	}
	if utf8.RuneCountInString(input.Content) > maxChatMessageLength {
		return invalid[chat.Message](msgChatInvalid, "content is too long")
	}

	group, res, ok := a.loadGroup(ctx, span, input.GroupID, msgChatMessageCreateFailed)
	if !ok {
		return fail[chat.Message](res.Message, res.Err)
	}
	input.GroupID = group.ID
	if res, ok := requireMember[chat.Message](ctx, a, span, group.ID, input.UserID, msgChatMessageCreateFailed); !ok {
		return res
	}

	if input.ParentMessageID != "" {
		if !id.Valid(input.ParentMessageID) {
			return invalid[chat.Message](msgChatInvalid, "parent message not found in group")
		}
		parent, found, err := a.repo.GetMessage(ctx, input.ParentMessageID)
		if err != nil {
			return persistenceFailure[chat.Message](ctx, a.logger, span, msgChatMessageCreateFailed, err, "parent_message_id", input.ParentMessageID)
		}
		if !found || parent.GroupID != group.ID {
			return invalid[chat.Message](msgChatInvalid, "parent message not found in group")
		}
	}

	msg, err := a.repo.CreateMessage(ctx, input)
	if err != nil {
		return persistenceFailure[chat.Message](ctx, a.logger, span, msgChatMessageCreateFailed, err, "group_id", group.ID, "user_id", input.UserID)
	}
	return succeed(msgChatMessageCreated, msg)
}

// ListMessages returns the newest messages first; only members may read.
func (a *ChatActions) ListMessages(ctx context.Context, userID, groupID string, limit int) Result[[]chat.Message] {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChatActions.ListMessages")
	defer span.End()

	group, res, ok := a.loadGroup(ctx, span, groupID, msgChatMessageListFailed)
	if !ok {
		return fail[[]chat.Message](res.Message, res.Err)
	}
	if res, ok := requireMember[[]chat.Message](ctx, a, span, group.ID, userID, msgChatMessageListFailed); !ok {
		return res
	}

	if limit <= 0 {
		limit = defaultChatMessagePage
	}
	if limit > maxChatMessagePage {
		limit = maxChatMessagePage
	}

	messages, err := a.repo.ListMessages(ctx, group.ID, limit)
	if err != nil {
		return persistenceFailure[[]chat.Message](ctx, a.logger, span, msgChatMessageListFailed, err, "group_id", group.ID)
	}
	return succeed(msgChatMessagesRetrieved, messages)
}

func (a *ChatActions) ListReplies(ctx context.Context, userID, messageID string) Result[[]chat.Message] {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChatActions.ListReplies")
	defer span.End()

	messageID = strings.TrimSpace(messageID)
	if !id.Valid(messageID) {
		return notFound[[]chat.Message](msgChatMessageNotFound)
	}

	parent, found, err := a.repo.GetMessage(ctx, messageID)
	if err != nil {
		return persistenceFailure[[]chat.Message](ctx, a.logger, span, msgChatMessageListFailed, err, "message_id", messageID)
	}
	if !found {
		return notFound[[]chat.Message](msgChatMessageNotFound)
	}
	if res, ok := requireMember[[]chat.Message](ctx, a, span, parent.GroupID, userID, msgChatMessageListFailed); !ok {
		return res
	}

	replies, err := a.repo.ListReplies(ctx, parent.ID)
	if err != nil {
		return persistenceFailure[[]chat.Message](ctx, a.logger, span, msgChatMessageListFailed, err, "message_id", parent.ID)
	}
	return succeed(msgChatMessagesRetrieved, replies)
}

// DeleteMessage is limited to the author. Replies survive as top-level messages.
func (a *ChatActions) DeleteMessage(ctx context.Context, userID, messageID string) Result[struct{}] {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChatActions.DeleteMessage")
	defer span.End()

	userID = strings.TrimSpace(userID)
	messageID = strings.TrimSpace(messageID)
	if userID == "" {
		return invalid[struct{}](msgChatInvalid, "user_id is required")
	}
	if !id.Valid(messageID) {
		return succeedEmpty[struct{}](msgChatMessageDeleted)
	}

	msg, found, err := a.repo.GetMessage(ctx, messageID)
	if err != nil {
		return persistenceFailure[struct{}](ctx, a.logger, span, msgChatMessageDeleteFailed, err, "message_id", messageID)
	}
	if !found {
		return succeedEmpty[struct{}](msgChatMessageDeleted)
	}
	if msg.UserID != userID {
		return fail[struct{}](msgChatNotAuthor, ErrForbidden)
	}

	if _, err := a.repo.DeleteMessage(ctx, messageID); err != nil {
		return persistenceFailure[struct{}](ctx, a.logger, span, msgChatMessageDeleteFailed, err, "message_id", messageID)
	}
	return succeedEmpty[struct{}](msgChatMessageDeleted)
}

func (a *ChatActions) loadGroup(ctx context.Context, span trace.Span, groupID, failMsg string) (chat.Group, Result[chat.Group], bool) {
	groupID = strings.TrimSpace(groupID)
	if !id.Valid(groupID) {
		return chat.Group{}, notFound[chat.Group](msgChatGroupNotFound), false
	}

	group, found, err := a.repo.GetGroup(ctx, groupID)
	if err != nil {
		return chat.Group{}, persistenceFailure[chat.Group](ctx, a.logger, span, failMsg, err, "group_id", groupID), false
	}
	if !found {
		return chat.Group{}, notFound[chat.Group](msgChatGroupNotFound), false
	}
	return group, Result[chat.Group]{}, true
}

func requireMember[T any](ctx context.Context, a *ChatActions, span trace.Span, groupID, userID, failMsg string) (Result[T], bool) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return invalid[T](msgChatInvalid, "user_id is required"), false
	}

	_, found, err := a.repo.GetMembership(ctx, groupID, userID)
	if err != nil {
		return persistenceFailure[T](ctx, a.logger, span, failMsg, err, "group_id", groupID, "user_id", userID), false
	}
	if !found {
		return fail[T](msgChatNotMember, ErrForbidden), false
	}
	return Result[T]{}, true
}
