package chat

import "context"

type Repository interface {
	CreateGroup(ctx context.Context, input NewGroup) (Group, error)
	GetGroup(ctx context.Context, groupID string) (Group, bool, error)
	ListGroups(ctx context.Context) ([]Group, error)
	ListGroupsByUser(ctx context.Context, userID string) ([]Group, error)
	UpdateGroup(ctx context.Context, groupID string, patch GroupPatch) (Group, bool, error)
	DeleteGroup(ctx context.Context, groupID string) (bool, error)

	// AddMember is idempotent and returns the existing membership on repeat joins.
	AddMember(ctx context.Context, groupID, userID string) (Membership, error)
	GetMembership(ctx context.Context, groupID, userID string) (Membership, bool, error)
	ListMembers(ctx context.Context, groupID string) ([]Membership, error)
	SetMuted(ctx context.Context, groupID, userID string, muted bool) (Membership, bool, error)
	RemoveMember(ctx context.Context, groupID, userID string) (bool, error)

	CreateMessage(ctx context.Context, input NewMessage) (Message, error)
	GetMessage(ctx context.Context, messageID string) (Message, bool, error)
	// ListMessages returns the newest messages of a group first.
	ListMessages(ctx context.Context, groupID string, limit int) ([]Message, error)
	ListReplies(ctx context.Context, parentMessageID string) ([]Message, error)
	DeleteMessage(ctx context.Context, messageID string) (bool, error)
}
