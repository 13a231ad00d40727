package usecase

import (
	"context"
	"strings"

	"github.com/riskibarqy/betting-analytics/internal/domain/user"
	"github.com/riskibarqy/betting-analytics/internal/platform/logging"
)

const (
	msgUserCreated      = "User created successfully"
	msgUserRetrieved    = "User retrieved successfully"
	msgUserUpdated      = "User updated successfully"
	msgUserDeleted      = "User deleted successfully"
	msgUserNotFound     = "User not found"
	msgUserInvalid      = "Invalid user input"
	msgUserCreateFailed = "Failed to create user"
	msgUserGetFailed    = "Failed to get user"
	msgUserUpdateFailed = "Failed to update user"
	msgUserDeleteFailed = "Failed to delete user"
)

type UserActions struct {
	repo   user.Repository
	logger *logging.Logger
}

func NewUserActions(repo user.Repository, logger *logging.Logger) *UserActions {
	if logger == nil {
		logger = logging.Default()
	}
	return &UserActions{repo: repo, logger: logger}
}

func (a *UserActions) Create(ctx context.Context, input user.NewUser) Result[user.User] {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserActions.Create")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.Email = strings.TrimSpace(input.Email)
	if input.UserID == "" {
		return invalid[user.User](msgUserInvalid, "user_id is required")
	}
	if input.Email == "" {
		return invalid[user.User](msgUserInvalid, "email is required")
	}
	if input.Membership != "" {
		m, err := user.ParseMembership(string(input.Membership))
		if err != nil {
			return invalid[user.User](msgUserInvalid, "membership must be one of free, paid, premium")
		}
		input.Membership = m
	}

	created, err := a.repo.Create(ctx, input)
	if err != nil {
		return persistenceFailure[user.User](ctx, a.logger, span, msgUserCreateFailed, err, "user_id", input.UserID)
	}

	return succeed(msgUserCreated, created)
}

func (a *UserActions) Get(ctx context.Context, userID string) Result[user.User] {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserActions.Get")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return invalid[user.User](msgUserInvalid, "user_id is required")
	}

	item, found, err := a.repo.GetByUserID(ctx, userID)
	if err != nil {
		return persistenceFailure[user.User](ctx, a.logger, span, msgUserGetFailed, err, "user_id", userID)
	}
	if !found {
		return notFound[user.User](msgUserNotFound)
	}

	return succeed(msgUserRetrieved, item)
}

func (a *UserActions) Update(ctx context.Context, userID string, patch user.Patch) Result[user.User] {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserActions.Update")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return invalid[user.User](msgUserInvalid, "user_id is required")
	}
	if patch.Email != nil && strings.TrimSpace(*patch.Email) == "" {
		return invalid[user.User](msgUserInvalid, "email cannot be empty")
	}
	if patch.Membership != nil {
		m, err := user.ParseMembership(string(*patch.Membership))
		if err != nil {
			return invalid[user.User](msgUserInvalid, "membership must be one of free, paid, premium")
		}
		patch.Membership = &m
	}

	updated, found, err := a.repo.UpdateByUserID(ctx, userID, patch)
	if err != nil {
		return persistenceFailure[user.User](ctx, a.logger, span, msgUserUpdateFailed, err, "user_id", userID)
	}
	if !found {
		return notFound[user.User](msgUserNotFound)
	}

	return succeed(msgUserUpdated, updated)
}

// Delete succeeds whether or not a row existed.
func (a *UserActions) Delete(ctx context.Context, userID string) Result[struct{}] {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserActions.Delete")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return invalid[struct{}](msgUserInvalid, "user_id is required")
	}

	if _, err := a.repo.DeleteByUserID(ctx, userID); err != nil {
		return persistenceFailure[struct{}](ctx, a.logger, span, msgUserDeleteFailed, err, "user_id", userID)
	}

	return succeedEmpty[struct{}](msgUserDeleted)
}
