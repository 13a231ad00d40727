package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/betting-analytics/internal/domain/user"
)

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Create(_ context.Context, input user.NewUser) (user.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[input.UserID]; exists {
		return user.User{}, fmt.Errorf("insert user %s: %w", input.UserID, ErrUniqueViolation)
	}

	rowID, err := s.nextID()
	if err != nil {
		return user.User{}, fmt.Errorf("insert user: %w", err)
	}

	membership := input.Membership
	if membership == "" {
		membership = user.MembershipFree
	}
	if !membership.Valid() {
		return user.User{}, fmt.Errorf("insert user %s: membership %q: %w", input.UserID, membership, ErrInvalidEnumValue)
	}
	now := s.now()
	u := user.User{
		ID:                      rowID,
		UserID:                  input.UserID,
		Email:                   input.Email,
		Membership:              membership,
		StripeCustomerID:        strings.TrimSpace(input.StripeCustomerID),
		StripeSubscriptionID:    strings.TrimSpace(input.StripeSubscriptionID),
		NotificationPreferences: input.NotificationPreferences.Clone(),
		LayoutConfig:            input.LayoutConfig.Clone(),
		CreatedAt:               now,
		UpdatedAt:               now,
	}
	s.users[u.UserID] = u

	return cloneUser(u), nil
}

func (r *UserRepository) GetByUserID(_ context.Context, userID string) (user.User, bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[userID]
	if !ok {
		return user.User{}, false, nil
	}
	return cloneUser(u), true, nil
}

func (r *UserRepository) UpdateByUserID(_ context.Context, userID string, patch user.Patch) (user.User, bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return user.User{}, false, nil
	}

	if patch.Email != nil {
		u.Email = strings.TrimSpace(*patch.Email)
	}
	if patch.Membership != nil {
		if !patch.Membership.Valid() {
			return user.User{}, false, fmt.Errorf("update user %s: membership %q: %w", userID, *patch.Membership, ErrInvalidEnumValue)
		}
		u.Membership = *patch.Membership
	}
	if patch.StripeCustomerID != nil {
		u.StripeCustomerID = strings.TrimSpace(*patch.StripeCustomerID)
	}
	if patch.StripeSubscriptionID != nil {
		u.StripeSubscriptionID = strings.TrimSpace(*patch.StripeSubscriptionID)
	}
	if patch.NotificationPreferences != nil {
		u.NotificationPreferences = patch.NotificationPreferences.Clone()
	}
	if patch.LayoutConfig != nil {
		u.LayoutConfig = patch.LayoutConfig.Clone()
	}
	u.UpdatedAt = s.now()
	s.users[userID] = u

	return cloneUser(u), true, nil
}

func (r *UserRepository) DeleteByUserID(_ context.Context, userID string) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return false, nil
	}
	s.deleteUserCascade(userID)
	return true, nil
}

func cloneUser(u user.User) user.User {
	u.NotificationPreferences = u.NotificationPreferences.Clone()
	u.LayoutConfig = u.LayoutConfig.Clone()
	return u
}
