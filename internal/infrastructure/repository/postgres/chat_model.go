package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/betting-analytics/internal/domain/chat"
	qb "github.com/riskibarqy/betting-analytics/internal/platform/querybuilder"
)

const (
	chatGroupsTable      = "chat_groups"
	chatMembershipsTable = "chat_memberships"
	chatMessagesTable    = "chat_messages"
)

type chatGroupTableModel struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

type chatGroupInsertModel struct {
	Name        string  `db:"name"`
	Description *string `db:"description"`
}

type chatGroupPatchModel struct {
	Name        *string         `db:"name"`
	Description *sql.NullString `db:"description"`
}

type chatMembershipTableModel struct {
	ID        string    `db:"id"`
	GroupID   string    `db:"group_id"`
	UserID    string    `db:"user_id"`
	IsMuted   bool      `db:"is_muted"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type chatMessageTableModel struct {
	ID              string         `db:"id"`
	GroupID         string         `db:"group_id"`
	UserID          string         `db:"user_id"`
	Content         string         `db:"content"`
	ParentMessageID sql.NullString `db:"parent_message_id"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

type chatMessageInsertModel struct {
	GroupID         string  `db:"group_id"`
	UserID          string  `db:"user_id"`
	Content         string  `db:"content"`
	ParentMessageID *string `db:"parent_message_id"`
}

var (
	chatGroupColumns      = qb.Columns(chatGroupTableModel{})
	chatMembershipColumns = qb.Columns(chatMembershipTableModel{})
	chatMessageColumns    = qb.Columns(chatMessageTableModel{})
)

func chatGroupFromRow(row chatGroupTableModel) chat.Group {
	return chat.Group{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description.String,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func chatMembershipFromRow(row chatMembershipTableModel) chat.Membership {
	return chat.Membership{
		ID:        row.ID,
		GroupID:   row.GroupID,
		UserID:    row.UserID,
		IsMuted:   row.IsMuted,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func chatMessageFromRow(row chatMessageTableModel) chat.Message {
	return chat.Message{
		ID:              row.ID,
		GroupID:         row.GroupID,
		UserID:          row.UserID,
		Content:         row.Content,
		ParentMessageID: row.ParentMessageID.String,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}
