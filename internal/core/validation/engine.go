package validation

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"mesa-catalog/internal/core/domain"
)

// Engine validates raw inputs against their field constraints and
// converts them into typed domain records. It is stateless after
// construction and safe for concurrent use.
type Engine struct {
	vld *validator.Validate
}

// NewEngine builds an Engine with all custom validators registered.
func NewEngine() (*Engine, error) {
	vld := validator.New(validator.WithRequiredStructEnabled())

	// Report violations under JSON field names so callers can map them
	// straight back onto the request body.
	vld.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := vld.RegisterValidation("secure_url", func(fl validator.FieldLevel) bool {
		u, err := url.Parse(fl.Field().String())
		if err != nil {
			return false
		}
		return u.Scheme == "https" && u.Host != ""
	}); err != nil {
		return nil, fmt.Errorf("register secure_url: %w", err)
	}

	if err := vld.RegisterValidation("decimal_amount", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		return !d.IsNegative()
	}); err != nil {
		return nil, fmt.Errorf("register decimal_amount: %w", err)
	}

	return &Engine{vld: vld}, nil
}

// ContentInput is the raw shape of a content record as submitted by a
// caller. Image URLs are externally-facing assets and must use https.
type ContentInput struct {
	ProductID   string     `json:"product_id" validate:"required,uuid"`
	Title       string     `json:"title" validate:"required,min=1,max=200"`
	Description string     `json:"description" validate:"max=5000"`
	ImageURLs   []string   `json:"image_urls" validate:"max=10,dive,secure_url"`
	Keywords    []string   `json:"keywords" validate:"max=20,dive,min=1,max=40"`
	State       string     `json:"state" validate:"required,oneof=draft review approved published archived"`
	CreatedBy   string     `json:"created_by" validate:"required,uuid"`
	ApprovedBy  *string    `json:"approved_by,omitempty" validate:"omitempty,uuid"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// CampaignInput is the raw shape of a promo campaign.
type CampaignInput struct {
	Name          string                `json:"name" validate:"required,min=1,max=120"`
	Type          string                `json:"type" validate:"required,oneof=seasonal flash_sale clearance loyalty"`
	Status        string                `json:"status" validate:"required,oneof=scheduled active paused completed cancelled"`
	StartDate     time.Time             `json:"start_date" validate:"required"`
	EndDate       time.Time             `json:"end_date" validate:"required"`
	DiscountType  string                `json:"discount_type" validate:"required,oneof=percentage fixed_amount free_shipping"`
	DiscountValue string                `json:"discount_value" validate:"required,decimal_amount"`
	ProductIDs    []string              `json:"product_ids" validate:"required,min=1,dive,uuid"`
	Rules         []CampaignRuleInput   `json:"rules" validate:"dive"`
	Metrics       *CampaignMetricsInput `json:"metrics,omitempty"`
}

// CampaignRuleInput is one raw targeting rule.
type CampaignRuleInput struct {
	Attribute string `json:"attribute" validate:"required,min=1,max=60"`
	Operator  string `json:"operator" validate:"required,oneof=eq neq in gt lt"`
	Value     string `json:"value" validate:"required"`
}

// CampaignMetricsInput is a raw delivery counter snapshot.
type CampaignMetricsInput struct {
	Impressions  int64 `json:"impressions" validate:"gte=0"`
	Conversions  int64 `json:"conversions" validate:"gte=0"`
	RevenueCents int64 `json:"revenue_cents" validate:"gte=0"`
}

// BundleInput is the raw shape of a product bundle. A bundle needs at
// least two items.
type BundleInput struct {
	Name             string            `json:"name" validate:"required,min=1,max=120"`
	Description      string            `json:"description" validate:"max=2000"`
	Items            []BundleItemInput `json:"items" validate:"required,min=2,dive"`
	PricingStrategy  string            `json:"pricing_strategy" validate:"required,oneof=fixed_price percent_off cheapest_free"`
	BundlePriceCents int64             `json:"bundle_price_cents" validate:"required,gt=0"`
	SavingsCents     int64             `json:"savings_cents" validate:"gte=0"`
	Availability     string            `json:"availability" validate:"required,oneof=active paused expired"`
	ValidFrom        time.Time         `json:"valid_from" validate:"required"`
	ValidUntil       time.Time         `json:"valid_until" validate:"required"`
}

// BundleItemInput is one raw bundle entry.
type BundleItemInput struct {
	ProductID      string `json:"product_id" validate:"required,uuid"`
	UnitPriceCents int64  `json:"unit_price_cents" validate:"required,gt=0"`
	Quantity       int    `json:"quantity" validate:"required,gt=0"`
}

// ValidateContent checks every field constraint on the input and, when
// all pass, returns the typed record. All violations are collected in a
// single pass; the returned record is nil whenever violations exist.
func (e *Engine) ValidateContent(in ContentInput) (*domain.Content, []Violation) {
	if viols := e.check(in); len(viols) > 0 {
		return nil, viols
	}

	state, _ := domain.ParseWorkflowState(in.State)
	c := &domain.Content{
		ProductID:   uuid.MustParse(in.ProductID),
		Title:       in.Title,
		Description: in.Description,
		ImageURLs:   in.ImageURLs,
		Keywords:    in.Keywords,
		State:       state,
		CreatedBy:   uuid.MustParse(in.CreatedBy),
		PublishedAt: in.PublishedAt,
	}
	if in.ApprovedBy != nil {
		id := uuid.MustParse(*in.ApprovedBy)
		c.ApprovedBy = &id
	}
	return c, nil
}

// ValidateCampaign checks field constraints and returns the typed
// campaign. Cross-field rules (date ordering, percentage bounds) are
// the invariant checker's job, not handled here.
func (e *Engine) ValidateCampaign(in CampaignInput) (*domain.Campaign, []Violation) {
	if viols := e.check(in); len(viols) > 0 {
		return nil, viols
	}

	value, _ := decimal.NewFromString(in.DiscountValue)
	c := &domain.Campaign{
		Name:          in.Name,
		Type:          domain.CampaignType(in.Type),
		Status:        domain.CampaignStatus(in.Status),
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		DiscountType:  domain.DiscountType(in.DiscountType),
		DiscountValue: value,
		ProductIDs:    make([]uuid.UUID, len(in.ProductIDs)),
	}
	for i, raw := range in.ProductIDs {
		c.ProductIDs[i] = uuid.MustParse(raw)
	}
	for _, r := range in.Rules {
		c.Rules = append(c.Rules, domain.CampaignRule{
			Attribute: r.Attribute,
			Operator:  r.Operator,
			Value:     r.Value,
		})
	}
	if in.Metrics != nil {
		c.Metrics = domain.CampaignMetrics{
			Impressions:  in.Metrics.Impressions,
			Conversions:  in.Metrics.Conversions,
			RevenueCents: in.Metrics.RevenueCents,
		}
	}
	return c, nil
}

// ValidateBundle checks field constraints and returns the typed bundle.
func (e *Engine) ValidateBundle(in BundleInput) (*domain.Bundle, []Violation) {
	if viols := e.check(in); len(viols) > 0 {
		return nil, viols
	}

	b := &domain.Bundle{
		Name:             in.Name,
		Description:      in.Description,
		Items:            make([]domain.BundleItem, len(in.Items)),
		PricingStrategy:  domain.PricingStrategy(in.PricingStrategy),
		BundlePriceCents: in.BundlePriceCents,
		SavingsCents:     in.SavingsCents,
		Availability:     domain.BundleAvailability(in.Availability),
		ValidFrom:        in.ValidFrom,
		ValidUntil:       in.ValidUntil,
	}
	for i, it := range in.Items {
		b.Items[i] = domain.BundleItem{
			ProductID:      uuid.MustParse(it.ProductID),
			UnitPriceCents: it.UnitPriceCents,
			Quantity:       it.Quantity,
		}
	}
	return b, nil
}

// check runs struct validation and converts the result into violations.
func (e *Engine) check(in any) []Violation {
	err := e.vld.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []Violation{{Constraint: "invalid_input", Message: err.Error()}}
	}
	out := make([]Violation, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, Violation{
			Field:      fieldPath(fe.Namespace()),
			Constraint: fe.Tag(),
			Message:    message(fe),
		})
	}
	return out
}

// fieldPath strips the leading input struct name from the namespace so
// the path starts at the JSON root, e.g. "items[0].quantity".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must have at least %s elements or characters", fe.Param())
	case "max":
		return fmt.Sprintf("must have at most %s elements or characters", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "uuid":
		return "must be a valid UUID"
	case "secure_url":
		return "must be an absolute https URL"
	case "decimal_amount":
		return "must be a non-negative decimal amount"
	default:
		return fmt.Sprintf("failed constraint %q", fe.Tag())
	}
}
