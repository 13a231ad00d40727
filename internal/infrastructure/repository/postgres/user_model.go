package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/betting-analytics/internal/domain/user"
	"github.com/riskibarqy/betting-analytics/internal/platform/jsondoc"
	qb "github.com/riskibarqy/betting-analytics/internal/platform/querybuilder"
)

const usersTable = "users"

type userTableModel struct {
	ID                      string         `db:"id"`
	UserID                  string         `db:"user_id"`
	Email                   string         `db:"email"`
	Membership              string         `db:"membership"`
	StripeCustomerID        sql.NullString `db:"stripe_customer_id"`
	StripeSubscriptionID    sql.NullString `db:"stripe_subscription_id"`
	NotificationPreferences jsondoc.Object `db:"notification_preferences"`
	LayoutConfig            jsondoc.Object `db:"layout_config"`
	CreatedAt               time.Time      `db:"created_at"`
	UpdatedAt               time.Time      `db:"updated_at"`
}

type userInsertModel struct {
	UserID                  string         `db:"user_id"`
	Email                   string         `db:"email"`
	Membership              string         `db:"membership"`
	StripeCustomerID        *string        `db:"stripe_customer_id"`
	StripeSubscriptionID    *string        `db:"stripe_subscription_id"`
	NotificationPreferences jsondoc.Object `db:"notification_preferences"`
	LayoutConfig            jsondoc.Object `db:"layout_config"`
}

type userPatchModel struct {
	Email                   *string         `db:"email"`
	Membership              *string         `db:"membership"`
	StripeCustomerID        *sql.NullString `db:"stripe_customer_id"`
	StripeSubscriptionID    *sql.NullString `db:"stripe_subscription_id"`
	NotificationPreferences *jsondoc.Object `db:"notification_preferences"`
	LayoutConfig            *jsondoc.Object `db:"layout_config"`
}

var userColumns = qb.Columns(userTableModel{})

func userFromRow(row userTableModel) user.User {
	return user.User{
		ID:                      row.ID,
		UserID:                  row.UserID,
		Email:                   row.Email,
		Membership:              user.Membership(row.Membership),
		StripeCustomerID:        row.StripeCustomerID.String,
		StripeSubscriptionID:    row.StripeSubscriptionID.String,
		NotificationPreferences: row.NotificationPreferences,
		LayoutConfig:            row.LayoutConfig,
		CreatedAt:               row.CreatedAt,
		UpdatedAt:               row.UpdatedAt,
	}
}

func userInsertFromInput(input user.NewUser) userInsertModel {
	membership := input.Membership
	if membership == "" {
		membership = user.MembershipFree
	}
	return userInsertModel{
		UserID:                  input.UserID,
		Email:                   input.Email,
		Membership:              string(membership),
		StripeCustomerID:        optionalString(input.StripeCustomerID),
		StripeSubscriptionID:    optionalString(input.StripeSubscriptionID),
		NotificationPreferences: orEmpty(input.NotificationPreferences),
		LayoutConfig:            orEmpty(input.LayoutConfig),
	}
}

func userPatchFromInput(patch user.Patch) userPatchModel {
	out := userPatchModel{
		Email:                   stringPatch(patch.Email),
		StripeCustomerID:        nullablePatch(patch.StripeCustomerID),
		StripeSubscriptionID:    nullablePatch(patch.StripeSubscriptionID),
		NotificationPreferences: patch.NotificationPreferences,
		LayoutConfig:            patch.LayoutConfig,
	}
	if patch.Membership != nil {
		m := string(*patch.Membership)
		out.Membership = &m
	}
	return out
}

func orEmpty(doc jsondoc.Object) jsondoc.Object {
	if doc == nil {
		return jsondoc.Object{}
	}
	return doc
}
