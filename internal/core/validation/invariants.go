package validation

import (
	"github.com/shopspring/decimal"

	"mesa-catalog/internal/core/domain"
)

// Cross-field invariants run only on records that already passed field
// validation. Like the field checks they are fail-slow: every broken
// rule is reported, not just the first.

var percentCap = decimal.NewFromInt(100)

// CheckContentInvariants verifies that approval and publication marks
// are consistent with the workflow state.
func CheckContentInvariants(c *domain.Content) []Violation {
	var viols []Violation

	if c.PublishedAt != nil {
		switch c.State {
		case domain.StatePublished, domain.StateArchived:
		default:
			viols = append(viols, Violation{
				Field:      "published_at",
				Constraint: "publish_state",
				Message:    "published_at may only be set once the record is published",
			})
		}
	}
	if c.ApprovedBy != nil {
		switch c.State {
		case domain.StateApproved, domain.StatePublished, domain.StateArchived:
		default:
			viols = append(viols, Violation{
				Field:      "approved_by",
				Constraint: "approval_state",
				Message:    "approved_by may only be set once the record has passed approval",
			})
		}
	}
	return viols
}

// CheckCampaignInvariants verifies date ordering and the percentage
// discount cap. A discount of exactly 100 percent is allowed.
func CheckCampaignInvariants(c *domain.Campaign) []Violation {
	var viols []Violation

	if !c.EndDate.After(c.StartDate) {
		viols = append(viols, Violation{
			Field:      "end_date",
			Constraint: "date_order",
			Message:    "end date must be strictly after start date",
		})
	}
	if c.DiscountType == domain.DiscountPercentage && c.DiscountValue.GreaterThan(percentCap) {
		viols = append(viols, Violation{
			Field:      "discount_value",
			Constraint: "percentage_cap",
			Message:    "percentage discount must not exceed 100",
		})
	}
	return viols
}

// CheckBundleInvariants verifies that the bundle actually undercuts the
// sum of its parts. Equality is rejected: a bundle priced at exactly
// the component sum offers no saving.
func CheckBundleInvariants(b *domain.Bundle) []Violation {
	var viols []Violation

	if total := b.ComponentTotalCents(); b.BundlePriceCents >= total {
		viols = append(viols, Violation{
			Field:      "bundle_price_cents",
			Constraint: "bundle_price",
			Message:    "bundle price must be strictly less than the sum of component prices",
		})
	}
	if b.SavingsCents < 0 {
		viols = append(viols, Violation{
			Field:      "savings_cents",
			Constraint: "savings_negative",
			Message:    "savings must not be negative",
		})
	}
	return viols
}
