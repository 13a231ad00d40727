package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/betting-analytics/internal/domain/chat"
)

type ChatRepository struct {
	store *Store
}

func NewChatRepository(store *Store) *ChatRepository {
	return &ChatRepository{store: store}
}

func (r *ChatRepository) CreateGroup(_ context.Context, input chat.NewGroup) (chat.Group, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	rowID, err := s.nextID()
	if err != nil {
		return chat.Group{}, fmt.Errorf("insert chat group: %w", err)
	}

	now := s.now()
	g := chat.Group{
		ID:          rowID,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.groups[rowID] = g
	return g, nil
}

func (r *ChatRepository) GetGroup(_ context.Context, groupID string) (chat.Group, bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.groups[groupID]
	return g, ok, nil
}

func (r *ChatRepository) ListGroups(_ context.Context) ([]chat.Group, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.groups))
	for groupID := range s.groups {
		ids = append(ids, groupID)
	}
	return s.groupsInOrder(ids), nil
}

func (r *ChatRepository) ListGroupsByUser(_ context.Context, userID string) ([]chat.Group, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0)
	for _, m := range s.memberships {
		if m.UserID == userID {
			ids = append(ids, m.GroupID)
		}
	}
	return s.groupsInOrder(ids), nil
}

func (s *Store) groupsInOrder(ids []string) []chat.Group {
	s.sortByCreation(ids)
	out := make([]chat.Group, 0, len(ids))
	for _, groupID := range ids {
		if g, ok := s.groups[groupID]; ok {
			out = append(out, g)
		}
	}
	return out
}

func (r *ChatRepository) UpdateGroup(_ context.Context, groupID string, patch chat.GroupPatch) (chat.Group, bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.groups[groupID]
	if !ok {
		return chat.Group{}, false, nil
	}
	applyText(&g.Name, patch.Name)
	applyText(&g.Description, patch.Description)
	g.UpdatedAt = s.now()
	s.groups[groupID] = g
	return g, true, nil
}

func (r *ChatRepository) DeleteGroup(_ context.Context, groupID string) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.groups[groupID]; !ok {
		return false, nil
	}
	s.deleteGroupCascade(groupID)
	return true, nil
}

func (r *ChatRepository) AddMember(_ context.Context, groupID, userID string) (chat.Membership, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.groups[groupID]; !ok {
		return chat.Membership{}, fmt.Errorf("insert chat membership for group %s: %w", groupID, ErrForeignKeyViolation)
	}
	if _, ok := s.users[userID]; !ok {
		return chat.Membership{}, fmt.Errorf("insert chat membership for user %s: %w", userID, ErrForeignKeyViolation)
	}
	if m, ok := s.findMembership(groupID, userID); ok {
		return m, nil
	}

	rowID, err := s.nextID()
	if err != nil {
		return chat.Membership{}, fmt.Errorf("insert chat membership: %w", err)
	}
	now := s.now()
	m := chat.Membership{
		ID:        rowID,
		GroupID:   groupID,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.memberships[rowID] = m
	return m, nil
}

func (s *Store) findMembership(groupID, userID string) (chat.Membership, bool) {
	for _, m := range s.memberships {
		if m.GroupID == groupID && m.UserID == userID {
			return m, true
		}
	}
	return chat.Membership{}, false
}

func (r *ChatRepository) GetMembership(_ context.Context, groupID, userID string) (chat.Membership, bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.findMembership(groupID, userID)
	return m, ok, nil
}

func (r *ChatRepository) ListMembers(_ context.Context, groupID string) ([]chat.Membership, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0)
	for membershipID, m := range s.memberships {
		if m.GroupID == groupID {
			ids = append(ids, membershipID)
		}
	}
	s.sortByCreation(ids)

	out := make([]chat.Membership, 0, len(ids))
	for _, membershipID := range ids {
		out = append(out, s.memberships[membershipID])
	}
	return out, nil
}

func (r *ChatRepository) SetMuted(_ context.Context, groupID, userID string, muted bool) (chat.Membership, bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.findMembership(groupID, userID)
	if !ok {
		return chat.Membership{}, false, nil
	}
	m.IsMuted = muted
	m.UpdatedAt = s.now()
	s.memberships[m.ID] = m
	return m, true, nil
}

func (r *ChatRepository) RemoveMember(_ context.Context, groupID, userID string) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.findMembership(groupID, userID)
	if !ok {
		return false, nil
	}
	delete(s.memberships, m.ID)
	s.forget(m.ID)
	return true, nil
}

func (r *ChatRepository) CreateMessage(_ context.Context, input chat.NewMessage) (chat.Message, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.groups[input.GroupID]; !ok {
		return chat.Message{}, fmt.Errorf("insert chat message for group %s: %w", input.GroupID, ErrForeignKeyViolation)
	}
	if _, ok := s.users[input.UserID]; !ok {
		return chat.Message{}, fmt.Errorf("insert chat message for user %s: %w", input.UserID, ErrForeignKeyViolation)
	}
	parentID := strings.TrimSpace(input.ParentMessageID)
	if parentID != "" {
		if _, ok := s.messages[parentID]; !ok {
			return chat.Message{}, fmt.Errorf("insert chat message with parent %s: %w", parentID, ErrForeignKeyViolation)
		}
	}

	rowID, err := s.nextID()
	if err != nil {
		return chat.Message{}, fmt.Errorf("insert chat message: %w", err)
	}
	now := s.now()
	msg := chat.Message{
		ID:              rowID,
		GroupID:         input.GroupID,
		UserID:          input.UserID,
		Content:         input.Content,
		ParentMessageID: parentID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	s.messages[rowID] = msg
	return msg, nil
}

func (r *ChatRepository) GetMessage(_ context.Context, messageID string) (chat.Message, bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	msg, ok := s.messages[messageID]
	return msg, ok, nil
}

func (r *ChatRepository) ListMessages(_ context.Context, groupID string, limit int) ([]chat.Message, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.messageIDs(func(msg chat.Message) bool { return msg.GroupID == groupID })
	out := make([]chat.Message, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		out = append(out, s.messages[ids[i]])
	}
	return page(out, limit, 0), nil
}

func (r *ChatRepository) ListReplies(_ context.Context, parentMessageID string) ([]chat.Message, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.messageIDs(func(msg chat.Message) bool { return msg.ParentMessageID == parentMessageID })
	out := make([]chat.Message, 0, len(ids))
	for _, messageID := range ids {
		out = append(out, s.messages[messageID])
	}
	return out, nil
}

func (s *Store) messageIDs(match func(chat.Message) bool) []string {
	ids := make([]string, 0)
	for messageID, msg := range s.messages {
		if match(msg) {
			ids = append(ids, messageID)
		}
	}
	s.sortByCreation(ids)
	return ids
}

func (r *ChatRepository) DeleteMessage(_ context.Context, messageID string) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.messages[messageID]; !ok {
		return false, nil
	}
	s.deleteMessage(messageID)
	return true, nil
}
