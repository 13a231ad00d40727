package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/betting-analytics/internal/domain/chat"
	qb "github.com/riskibarqy/betting-analytics/internal/platform/querybuilder"
)

type ChatRepository struct {
	db *sqlx.DB
}

func NewChatRepository(db *sqlx.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

func (r *ChatRepository) CreateGroup(ctx context.Context, input chat.NewGroup) (chat.Group, error) {
	insert, err := qb.InsertModel(chatGroupsTable, chatGroupInsertModel{
		Name:        input.Name,
		Description: optionalString(input.Description),
	})
	if err != nil {
		return chat.Group{}, fmt.Errorf("build insert chat group model: %w", err)
	}
	query, args, err := insert.Returning(chatGroupColumns...).ToSQL()
	if err != nil {
		return chat.Group{}, fmt.Errorf("build insert chat group query: %w", err)
	}

	var row chatGroupTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return chat.Group{}, wrapDBError(err, "insert chat group")
	}
	return chatGroupFromRow(row), nil
}

func (r *ChatRepository) GetGroup(ctx context.Context, groupID string) (chat.Group, bool, error) {
	query, args, err := qb.Select(chatGroupColumns...).
		From(chatGroupsTable).
		Where(qb.Eq("id", groupID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return chat.Group{}, false, fmt.Errorf("build get chat group query: %w", err)
	}

	var row chatGroupTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return chat.Group{}, false, nil
		}
		return chat.Group{}, false, wrapDBError(err, "get chat group")
	}
	return chatGroupFromRow(row), true, nil
}

func (r *ChatRepository) ListGroups(ctx context.Context) ([]chat.Group, error) {
	query, args, err := qb.Select(chatGroupColumns...).
		From(chatGroupsTable).
		OrderBy("created_at ASC", "id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list chat groups query: %w", err)
	}
	return r.selectGroups(ctx, query, args, "list chat groups")
}

func (r *ChatRepository) ListGroupsByUser(ctx context.Context, userID string) ([]chat.Group, error) {
	query, args, err := qb.Select(chatGroupColumns...).
		From(chatGroupsTable).
		Where(qb.Expr("id IN (SELECT group_id FROM chat_memberships WHERE user_id = ?)", userID)).
		OrderBy("created_at ASC", "id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list user chat groups query: %w", err)
	}
	return r.selectGroups(ctx, query, args, "list user chat groups")
}

func (r *ChatRepository) selectGroups(ctx context.Context, query string, args []any, op string) ([]chat.Group, error) {
	var rows []chatGroupTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, wrapDBError(err, op)
	}

	out := make([]chat.Group, 0, len(rows))
	for _, row := range rows {
		out = append(out, chatGroupFromRow(row))
	}
	return out, nil
}

func (r *ChatRepository) UpdateGroup(ctx context.Context, groupID string, patch chat.GroupPatch) (chat.Group, bool, error) {
	update, _, err := qb.UpdateModel(chatGroupsTable, chatGroupPatchModel{
		Name:        stringPatch(patch.Name),
		Description: nullablePatch(patch.Description),
	})
	if err != nil {
		return chat.Group{}, false, fmt.Errorf("build update chat group model: %w", err)
	}
	query, args, err := update.
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", groupID)).
		Returning(chatGroupColumns...).
		ToSQL()
	if err != nil {
		return chat.Group{}, false, fmt.Errorf("build update chat group query: %w", err)
	}

	var row chatGroupTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return chat.Group{}, false, nil
		}
		return chat.Group{}, false, wrapDBError(err, "update chat group")
	}
	return chatGroupFromRow(row), true, nil
}

func (r *ChatRepository) DeleteGroup(ctx context.Context, groupID string) (bool, error) {
	return r.deleteWhere(ctx, chatGroupsTable, "delete chat group", qb.Eq("id", groupID))
}

func (r *ChatRepository) AddMember(ctx context.Context, groupID, userID string) (chat.Membership, error) {
	query, args, err := qb.InsertInto(chatMembershipsTable).
		Columns("group_id", "user_id").
		Values(groupID, userID).
		OnConflict("(group_id, user_id) DO UPDATE SET group_id = EXCLUDED.group_id").
		Returning(chatMembershipColumns...).
		ToSQL()
	if err != nil {
		return chat.Membership{}, fmt.Errorf("build insert chat membership query: %w", err)
	}

	var row chatMembershipTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return chat.Membership{}, wrapDBError(err, "insert chat membership")
	}
	return chatMembershipFromRow(row), nil
}

func (r *ChatRepository) GetMembership(ctx context.Context, groupID, userID string) (chat.Membership, bool, error) {
	query, args, err := qb.Select(chatMembershipColumns...).
		From(chatMembershipsTable).
		Where(qb.Eq("group_id", groupID), qb.Eq("user_id", userID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return chat.Membership{}, false, fmt.Errorf("build get chat membership query: %w", err)
	}

	var row chatMembershipTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return chat.Membership{}, false, nil
		}
		return chat.Membership{}, false, wrapDBError(err, "get chat membership")
	}
	return chatMembershipFromRow(row), true, nil
}

func (r *ChatRepository) ListMembers(ctx context.Context, groupID string) ([]chat.Membership, error) {
	query, args, err := qb.Select(chatMembershipColumns...).
		From(chatMembershipsTable).
		Where(qb.Eq("group_id", groupID)).
		OrderBy("created_at ASC", "id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list chat members query: %w", err)
	}

	var rows []chatMembershipTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, wrapDBError(err, "list chat members")
	}

	out := make([]chat.Membership, 0, len(rows))
	for _, row := range rows {
		out = append(out, chatMembershipFromRow(row))
	}
	return out, nil
}

func (r *ChatRepository) SetMuted(ctx context.Context, groupID, userID string, muted bool) (chat.Membership, bool, error) {
	query, args, err := qb.Update(chatMembershipsTable).
		Set("is_muted", muted).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("group_id", groupID), qb.Eq("user_id", userID)).
		Returning(chatMembershipColumns...).
		ToSQL()
	if err != nil {
		return chat.Membership{}, false, fmt.Errorf("build mute chat membership query: %w", err)
	}

	var row chatMembershipTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return chat.Membership{}, false, nil
		}
		return chat.Membership{}, false, wrapDBError(err, "mute chat membership")
	}
	return chatMembershipFromRow(row), true, nil
}

func (r *ChatRepository) RemoveMember(ctx context.Context, groupID, userID string) (bool, error) {
	return r.deleteWhere(ctx, chatMembershipsTable, "delete chat membership",
		qb.Eq("group_id", groupID), qb.Eq("user_id", userID))
}

func (r *ChatRepository) CreateMessage(ctx context.Context, input chat.NewMessage) (chat.Message, error) {
	insert, err := qb.InsertModel(chatMessagesTable, chatMessageInsertModel{
		GroupID:         input.GroupID,
		UserID:          input.UserID,
		Content:         input.Content,
		ParentMessageID: optionalString(input.ParentMessageID),
	})
	if err != nil {
		return chat.Message{}, fmt.Errorf("build insert chat message model: %w", err)
	}
	query, args, err := insert.Returning(chatMessageColumns...).ToSQL()
	if err != nil {
		return chat.Message{}, fmt.Errorf("build insert chat message query: %w", err)
	}

	var row chatMessageTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return chat.Message{}, wrapDBError(err, "insert chat message")
	}
	return chatMessageFromRow(row), nil
}

func (r *ChatRepository) GetMessage(ctx context.Context, messageID string) (chat.Message, bool, error) {
	query, args, err := qb.Select(chatMessageColumns...).
		From(chatMessagesTable).
		Where(qb.Eq("id", messageID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return chat.Message{}, false, fmt.Errorf("build get chat message query: %w", err)
	}

	var row chatMessageTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return chat.Message{}, false, nil
		}
		return chat.Message{}, false, wrapDBError(err, "get chat message")
	}
	return chatMessageFromRow(row), true, nil
}

func (r *ChatRepository) ListMessages(ctx context.Context, groupID string, limit int) ([]chat.Message, error) {
	query, args, err := qb.Select(chatMessageColumns...).
		From(chatMessagesTable).
		Where(qb.Eq("group_id", groupID)).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list chat messages query: %w", err)
	}
	return r.selectMessages(ctx, query, args, "list chat messages")
}

func (r *ChatRepository) ListReplies(ctx context.Context, parentMessageID string) ([]chat.Message, error) {
	query, args, err := qb.Select(chatMessageColumns...).
		From(chatMessagesTable).
		Where(qb.Eq("parent_message_id", parentMessageID)).
		OrderBy("created_at ASC", "id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list chat replies query: %w", err)
	}
	return r.selectMessages(ctx, query, args, "list chat replies")
}

func (r *ChatRepository) selectMessages(ctx context.Context, query string, args []any, op string) ([]chat.Message, error) {
	var rows []chatMessageTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, wrapDBError(err, op)
	}

	out := make([]chat.Message, 0, len(rows))
	for _, row := range rows {
		out = append(out, chatMessageFromRow(row))
	}
	return out, nil
}

func (r *ChatRepository) DeleteMessage(ctx context.Context, messageID string) (bool, error) {
	return r.deleteWhere(ctx, chatMessagesTable, "delete chat message", qb.Eq("id", messageID))
}

func (r *ChatRepository) deleteWhere(ctx context.Context, table, op string, conditions ...qb.Condition) (bool, error) {
	query, args, err := qb.DeleteFrom(table).Where(conditions...).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build %s query: %w", op, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, wrapDBError(err, op)
	}
	return rowsAffected(res, op)
}
