package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/betting-analytics/internal/domain/user"
	qb "github.com/riskibarqy/betting-analytics/internal/platform/querybuilder"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, input user.NewUser) (user.User, error) {
	insert, err := qb.InsertModel(usersTable, userInsertFromInput(input))
	if err != nil {
		return user.User{}, fmt.Errorf("build insert user model: %w", err)
	}
	query, args, err := insert.Returning(userColumns...).ToSQL()
	if err != nil {
		return user.User{}, fmt.Errorf("build insert user query: %w", err)
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return user.User{}, wrapDBError(err, "insert user")
	}

	return userFromRow(row), nil
}

func (r *UserRepository) GetByUserID(ctx context.Context, userID string) (user.User, bool, error) {
	query, args, err := qb.Select(userColumns...).
		From(usersTable).
		Where(qb.Eq("user_id", userID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return user.User{}, false, fmt.Errorf("build get user query: %w", err)
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, wrapDBError(err, "get user")
	}

	return userFromRow(row), true, nil
}

func (r *UserRepository) UpdateByUserID(ctx context.Context, userID string, patch user.Patch) (user.User, bool, error) {
	update, _, err := qb.UpdateModel(usersTable, userPatchFromInput(patch))
	if err != nil {
		return user.User{}, false, fmt.Errorf("build update user model: %w", err)
	}
	query, args, err := update.
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("user_id", userID)).
		Returning(userColumns...).
		ToSQL()
	if err != nil {
		return user.User{}, false, fmt.Errorf("build update user query: %w", err)
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, wrapDBError(err, "update user")
	}

	return userFromRow(row), true, nil
}

func (r *UserRepository) DeleteByUserID(ctx context.Context, userID string) (bool, error) {
	query, args, err := qb.DeleteFrom(usersTable).
		Where(qb.Eq("user_id", userID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete user query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, wrapDBError(err, "delete user")
	}

	return rowsAffected(res, "delete user")
}
