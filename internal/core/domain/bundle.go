package domain

import (
	"time"

	"github.com/google/uuid"
)

// PricingStrategy selects how the bundle price was derived.
type PricingStrategy string

const (
	PricingFixedPrice   PricingStrategy = "fixed_price"
	PricingPercentOff   PricingStrategy = "percent_off"
	PricingCheapestFree PricingStrategy = "cheapest_free"
)

// BundleAvailability is the selling status of a bundle.
type BundleAvailability string

const (
	BundleActive  BundleAvailability = "active"
	BundlePaused  BundleAvailability = "paused"
	BundleExpired BundleAvailability = "expired"
)

// BundleItem is one product entry in a bundle. Prices are integer cents.
type BundleItem struct {
	ProductID      uuid.UUID `json:"product_id"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	Quantity       int       `json:"quantity"`
}

// Bundle represents a multi-product offer sold at a single price. A
// bundle carries at least two items and its price must undercut the sum
// of its parts, otherwise there is nothing to bundle.
type Bundle struct {
	ID               uuid.UUID
	Name             string
	Description      string
	Items            []BundleItem
	PricingStrategy  PricingStrategy
	BundlePriceCents int64
	SavingsCents     int64
	Availability     BundleAvailability
	ValidFrom        time.Time
	ValidUntil       time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ComponentTotalCents returns the reference price of the bundle: the sum
// of unit price times quantity over all items.
func (b *Bundle) ComponentTotalCents() int64 {
	var total int64
	for _, it := range b.Items {
		total += it.UnitPriceCents * int64(it.Quantity)
	}
	return total
}
