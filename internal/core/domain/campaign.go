package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CampaignType classifies a promo campaign.
type CampaignType string

const (
	CampaignSeasonal  CampaignType = "seasonal"
	CampaignFlashSale CampaignType = "flash_sale"
	CampaignClearance CampaignType = "clearance"
	CampaignLoyalty   CampaignType = "loyalty"
)

// CampaignStatus is the operational status of a campaign.
type CampaignStatus string

const (
	CampaignScheduled CampaignStatus = "scheduled"
	CampaignActive    CampaignStatus = "active"
	CampaignPaused    CampaignStatus = "paused"
	CampaignCompleted CampaignStatus = "completed"
	CampaignCancelled CampaignStatus = "cancelled"
)

// DiscountType selects how the campaign discount is applied.
type DiscountType string

const (
	DiscountPercentage   DiscountType = "percentage"
	DiscountFixedAmount  DiscountType = "fixed_amount"
	DiscountFreeShipping DiscountType = "free_shipping"
)

// CampaignRule is a single targeting rule attached to a campaign, e.g.
// ("category", "eq", "electronics"). Rules are opaque to the engine and
// evaluated by the delivery side.
type CampaignRule struct {
	Attribute string `json:"attribute"`
	Operator  string `json:"operator"`
	Value     string `json:"value"`
}

// CampaignMetrics is a point-in-time snapshot of delivery counters.
// Revenue is stored in integer cents like the rest of the money fields.
type CampaignMetrics struct {
	Impressions  int64 `json:"impressions"`
	Conversions  int64 `json:"conversions"`
	RevenueCents int64 `json:"revenue_cents"`
}

// Campaign represents a promo campaign over a set of products.
// DiscountValue is a decimal because percentage discounts may be
// fractional; for fixed_amount it is an amount in whole currency units.
type Campaign struct {
	ID            uuid.UUID
	Name          string
	Type          CampaignType
	Status        CampaignStatus
	StartDate     time.Time
	EndDate       time.Time
	DiscountType  DiscountType
	DiscountValue decimal.Decimal
	ProductIDs    []uuid.UUID
	Rules         []CampaignRule
	Metrics       CampaignMetrics
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
