package chat

import "time"

type Group struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type NewGroup struct {
	Name        string
	Description string
}

type GroupPatch struct {
	Name        *string
	Description *string
}

// Membership links a user to a group. A user holds at most one membership per group.
type Membership struct {
	ID        string
	GroupID   string
	UserID    string
	IsMuted   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Message is a chat post. ParentMessageID is empty for top-level messages and
// is cleared when the parent is deleted.
type Message struct {
	ID              string
	GroupID         string
	UserID          string
	Content         string
	ParentMessageID string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type NewMessage struct {
	GroupID         string
	UserID          string
	Content         string
	ParentMessageID string
}
