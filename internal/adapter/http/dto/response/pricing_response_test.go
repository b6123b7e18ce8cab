package response

import (
	"encoding/json"
	"strings"
	"testing"

	"cake_calculator/internal/domain/pricing"
	"cake_calculator/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromCakePricing(t *testing.T) {
	p := usecase.CakePricing{
		CakeID:    1,
		CakeName:  "Birthday",
		TotalCost: decimal.NewFromInt(100),
		Prices: []pricing.SuggestedPrice{
			{Margin: decimal.Zero, Price: decimal.NewFromInt(100)},
			{Margin: decimal.NewFromFloat(0.5), Price: decimal.NewFromInt(150)},
		},
	}

	res := FromCakePricing(p)
	if res.CakeID != 1 || res.CakeName != "Birthday" {
		t.Fatalf("unexpected identity: %+v", res)
	}
	if len(res.Prices) != 2 || !res.Prices[1].Price.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("unexpected prices: %+v", res.Prices)
	}
}

func TestFromCostPreview_SetsCurrency(t *testing.T) {
	res := FromCostPreview(usecase.CostPreview{TotalCost: decimal.NewFromFloat(32.5)})
	if res.Currency != "USD" {
		t.Fatalf("currency = %q, want USD", res.Currency)
	}
}

func TestPricingResponse_WireFieldNames(t *testing.T) {
	decimal.MarshalJSONWithoutQuotes = true
	t.Cleanup(func() { decimal.MarshalJSONWithoutQuotes = false })

	body, err := json.Marshal(FromCakePricing(usecase.CakePricing{
		CakeID:   1,
		CakeName: "Birthday",
		Prices:   []pricing.SuggestedPrice{{Margin: decimal.NewFromFloat(0.1), Price: decimal.NewFromInt(110)}},
	}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, field := range []string{`"cakeId"`, `"cakeName"`, `"totalCost"`, `"prices"`, `"margin"`, `"price"`} {
		if !strings.Contains(string(body), field) {
			t.Fatalf("body %s is missing field %s", body, field)
		}
	}

	body, err = json.Marshal(FromCostPreview(usecase.CostPreview{}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, field := range []string{`"costBreakdown"`, `"ingredients"`, `"labor"`, `"overhead"`, `"totalCost"`, `"currency"`} {
		if !strings.Contains(string(body), field) {
			t.Fatalf("body %s is missing field %s", body, field)
		}
	}
}
