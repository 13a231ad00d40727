package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/betting-analytics/internal/platform/jsondoc"
)

type Membership string

const (
	MembershipFree    Membership = "free"
	MembershipPaid    Membership = "paid"
	MembershipPremium Membership = "premium"
)

func ParseMembership(raw string) (Membership, error) {
	switch m := Membership(strings.ToLower(strings.TrimSpace(raw))); m {
	case MembershipFree, MembershipPaid, MembershipPremium:
		return m, nil
	default:
		return "", fmt.Errorf("unknown membership %q", raw)
	}
}

// Valid reports whether m is exactly one of the stored enum values.
func (m Membership) Valid() bool {
	switch m {
	case MembershipFree, MembershipPaid, MembershipPremium:
		return true
	default:
		return false
	}
}

// User is the application profile keyed by the identity provider's user id.
type User struct {
	ID                      string
	UserID                  string
	Email                   string
	Membership              Membership
	StripeCustomerID        string
	StripeSubscriptionID    string
	NotificationPreferences jsondoc.Object
	LayoutConfig            jsondoc.Object
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// NewUser is the insert shape; identifiers and timestamps are assigned by the store.
// An empty Membership defaults to free.
type NewUser struct {
	UserID                  string
	Email                   string
	Membership              Membership
	StripeCustomerID        string
	StripeSubscriptionID    string
	NotificationPreferences jsondoc.Object
	LayoutConfig            jsondoc.Object
}

// Patch lists the fields an update may change. Nil fields are left untouched.
type Patch struct {
	Email                   *string
	Membership              *Membership
	StripeCustomerID        *string
	StripeSubscriptionID    *string
	NotificationPreferences *jsondoc.Object
	LayoutConfig            *jsondoc.Object
}

func (p Patch) IsEmpty() bool {
	return p.Email == nil &&
		p.Membership == nil &&
		p.StripeCustomerID == nil &&
		p.StripeSubscriptionID == nil &&
		p.NotificationPreferences == nil &&
		p.LayoutConfig == nil
}

// Principal is the identity resolved from a verified access token.
type Principal struct {
	UserID string
	Email  string
}
