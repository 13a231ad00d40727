package usecase

import "github.com/riskibarqy/betting-analytics/internal/domain/user"

type Plan struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	PriceCents   int64           `json:"priceCents"`
	Currency     string          `json:"currency"`
	Interval     string          `json:"interval"`
	Membership   user.Membership `json:"membership"`
	Features     []string        `json:"features"`
	CallToAction string          `json:"callToAction"`
}

var pricingPlans = []Plan{
	{
		ID:           "free",
		Name:         "Free",
		Description:  "Essential features to get started.",
		PriceCents:   0,
		Currency:     "USD",
		Interval:     "month",
		Membership:   user.MembershipFree,
		Features:     []string{"Basic betting analytics", "Limited chat access", "Basic fantasy insights"},
		CallToAction: "Get Started",
	},
	{
		ID:           "pro",
		Name:         "Pro",
		Description:  "Advanced features for serious bettors.",
		PriceCents:   1999,
		Currency:     "USD",
		Interval:     "month",
		Membership:   user.MembershipPaid,
		Features:     []string{"Advanced AI predictions", "Unlimited chat access", "Advanced fantasy tools", "Real-time odds tracking"},
		CallToAction: "Upgrade to Pro",
	},
	{
		ID:           "premium",
		Name:         "Premium",
		Description:  "Everything you need to win big.",
		PriceCents:   4999,
		Currency:     "USD",
		Interval:     "month",
		Membership:   user.MembershipPremium,
		Features:     []string{"All Pro features", "Priority support", "Custom dashboard layout", "Bet slip tracking", "Early access to features"},
		CallToAction: "Upgrade to Premium",
	},
}

// PricingCatalog returns a copy of the static plan list, cheapest first.
func PricingCatalog() []Plan {
	out := make([]Plan, len(pricingPlans))
	for i, p := range pricingPlans {
		p.Features = append([]string(nil), p.Features...)
		out[i] = p
	}
	return out
}

func PlanForMembership(m user.Membership) (Plan, bool) {
	for _, p := range PricingCatalog() {
		if p.Membership == m {
			return p, true
		}
	}
	return Plan{}, false
}
