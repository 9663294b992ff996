package validation

import (
	"testing"
	"time"

	"mesa-catalog/internal/core/domain"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine()
	if err != nil {
		t.Fatalf("NewEngine error: %v", err)
	}
	return e
}

func validContentInput() ContentInput {
	return ContentInput{
		ProductID:   "7d9f36c1-8c3a-4b2e-9a6f-0c1d2e3f4a5b",
		Title:       "Wireless headphones",
		Description: "Over-ear, 30h battery.",
		ImageURLs:   []string{"https://cdn.example.com/img/1.jpg"},
		Keywords:    []string{"audio", "wireless"},
		State:       "draft",
		CreatedBy:   "3f1b2a4c-5d6e-4f70-8a9b-0c1d2e3f4a5b",
	}
}

func TestValidateContentOK(t *testing.T) {
	e := newTestEngine(t)

	record, viols := e.ValidateContent(validContentInput())
	if len(viols) > 0 {
		t.Fatalf("unexpected violations: %v", viols)
	}
	if record.State != domain.StateDraft {
		t.Errorf("state: got %s, want draft", record.State)
	}
	if record.ProductID.String() != "7d9f36c1-8c3a-4b2e-9a6f-0c1d2e3f4a5b" {
		t.Errorf("product id not carried over: %s", record.ProductID)
	}
	if record.ApprovedBy != nil || record.PublishedAt != nil {
		t.Errorf("approval marks must be empty on a plain draft")
	}
}

// TestValidateContentAggregates ensures validation is fail-slow: every
// broken field is reported in one pass.
func TestValidateContentAggregates(t *testing.T) {
	e := newTestEngine(t)

	in := validContentInput()
	in.Title = ""
	in.ProductID = "not-a-uuid"
	in.ImageURLs = []string{"http://cdn.example.com/insecure.jpg"}

	record, viols := e.ValidateContent(in)
	if record != nil {
		t.Fatalf("expected nil record on violations")
	}
	if len(viols) != 3 {
		t.Fatalf("expected 3 violations, got %d: %v", len(viols), viols)
	}

	byField := map[string]string{}
	for _, v := range viols {
		byField[v.Field] = v.Constraint
	}
	if byField["title"] != "required" {
		t.Errorf("title violation: got %q, want required", byField["title"])
	}
	if byField["product_id"] != "uuid" {
		t.Errorf("product_id violation: got %q, want uuid", byField["product_id"])
	}
	if byField["image_urls[0]"] != "secure_url" {
		t.Errorf("image_urls[0] violation: got %q, want secure_url", byField["image_urls[0]"])
	}
}

func TestValidateContentSecureURL(t *testing.T) {
	e := newTestEngine(t)

	cases := []struct {
		url string
		ok  bool
	}{
		{"https://cdn.example.com/a.jpg", true},
		{"http://cdn.example.com/a.jpg", false},
		{"ftp://cdn.example.com/a.jpg", false},
		{"https://", false},
		{"/relative/path.jpg", false},
	}
	for _, tc := range cases {
		in := validContentInput()
		in.ImageURLs = []string{tc.url}
		_, viols := e.ValidateContent(in)
		if got := len(viols) == 0; got != tc.ok {
			t.Errorf("url %q: accepted=%v, want %v (%v)", tc.url, got, tc.ok, viols)
		}
	}
}

func validCampaignInput() CampaignInput {
	return CampaignInput{
		Name:          "Spring sale",
		Type:          "seasonal",
		Status:        "scheduled",
		StartDate:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		DiscountType:  "percentage",
		DiscountValue: "15.5",
		ProductIDs:    []string{"7d9f36c1-8c3a-4b2e-9a6f-0c1d2e3f4a5b"},
	}
}

func TestValidateCampaignOK(t *testing.T) {
	e := newTestEngine(t)

	record, viols := e.ValidateCampaign(validCampaignInput())
	if len(viols) > 0 {
		t.Fatalf("unexpected violations: %v", viols)
	}
	if record.Type != domain.CampaignSeasonal {
		t.Errorf("type: got %s", record.Type)
	}
	if record.DiscountValue.String() != "15.5" {
		t.Errorf("discount value: got %s, want 15.5", record.DiscountValue)
	}
	if len(record.ProductIDs) != 1 {
		t.Errorf("product ids: got %d entries", len(record.ProductIDs))
	}
}

func TestValidateCampaignFieldViolations(t *testing.T) {
	e := newTestEngine(t)

	cases := []struct {
		name       string
		mutate     func(*CampaignInput)
		field      string
		constraint string
	}{
		{"unknown type", func(in *CampaignInput) { in.Type = "mega_sale" }, "type", "oneof"},
		{"unknown status", func(in *CampaignInput) { in.Status = "running" }, "status", "oneof"},
		{"garbage discount", func(in *CampaignInput) { in.DiscountValue = "abc" }, "discount_value", "decimal_amount"},
		{"negative discount", func(in *CampaignInput) { in.DiscountValue = "-5" }, "discount_value", "decimal_amount"},
		{"no products", func(in *CampaignInput) { in.ProductIDs = nil }, "product_ids", "required"},
		{"missing start", func(in *CampaignInput) { in.StartDate = time.Time{} }, "start_date", "required"},
		{"bad rule operator", func(in *CampaignInput) {
			in.Rules = []CampaignRuleInput{{Attribute: "category", Operator: "like", Value: "x"}}
		}, "rules[0].operator", "oneof"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validCampaignInput()
			tc.mutate(&in)
			record, viols := e.ValidateCampaign(in)
			if record != nil {
				t.Fatalf("expected nil record")
			}
			found := false
			for _, v := range viols {
				if v.Field == tc.field && v.Constraint == tc.constraint {
					found = true
				}
			}
			if !found {
				t.Errorf("expected violation %s/%s, got %v", tc.field, tc.constraint, viols)
			}
		})
	}
}

func validBundleInput() BundleInput {
	return BundleInput{
		Name: "Starter kit",
		Items: []BundleItemInput{
			{ProductID: "7d9f36c1-8c3a-4b2e-9a6f-0c1d2e3f4a5b", UnitPriceCents: 1000, Quantity: 1},
			{ProductID: "3f1b2a4c-5d6e-4f70-8a9b-0c1d2e3f4a5b", UnitPriceCents: 2000, Quantity: 1},
		},
		PricingStrategy:  "fixed_price",
		BundlePriceCents: 2500,
		SavingsCents:     500,
		Availability:     "active",
		ValidFrom:        time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		ValidUntil:       time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestValidateBundleOK(t *testing.T) {
	e := newTestEngine(t)

	record, viols := e.ValidateBundle(validBundleInput())
	if len(viols) > 0 {
		t.Fatalf("unexpected violations: %v", viols)
	}
	if got := record.ComponentTotalCents(); got != 3000 {
		t.Errorf("component total: got %d, want 3000", got)
	}
}

func TestValidateBundleNeedsTwoItems(t *testing.T) {
	e := newTestEngine(t)

	in := validBundleInput()
	in.Items = in.Items[:1]
	_, viols := e.ValidateBundle(in)
	found := false
	for _, v := range viols {
		if v.Field == "items" && v.Constraint == "min" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected items/min violation, got %v", viols)
	}
}

func TestValidateBundleItemConstraints(t *testing.T) {
	e := newTestEngine(t)

	in := validBundleInput()
	in.Items[1].UnitPriceCents = -5
	in.Items[1].Quantity = -1
	_, viols := e.ValidateBundle(in)
	if len(viols) != 2 {
		t.Fatalf("expected 2 violations, got %v", viols)
	}
	for _, v := range viols {
		if v.Constraint != "gt" {
			t.Errorf("constraint: got %q, want gt", v.Constraint)
		}
	}
}
