package response

import (
	"cake_calculator/internal/usecase"

	"github.com/shopspring/decimal"
)

const previewCurrency = "USD"

type CostBreakdownResponse struct {
	Ingredients decimal.Decimal `json:"ingredients"`
	Labor       decimal.Decimal `json:"labor"`
	Overhead    decimal.Decimal `json:"overhead"`
}

// PricingPreviewResponse is the pre-order estimate body. All amounts are
// already rounded to 2 decimal places.
type PricingPreviewResponse struct {
	CostBreakdown CostBreakdownResponse `json:"costBreakdown"`
	TotalCost     decimal.Decimal       `json:"totalCost"`
	Currency      string                `json:"currency"`
}

func FromCostPreview(p usecase.CostPreview) PricingPreviewResponse {
	return PricingPreviewResponse{
		CostBreakdown: CostBreakdownResponse{
			Ingredients: p.Breakdown.Ingredients,
			Labor:       p.Breakdown.Labor,
			Overhead:    p.Breakdown.Overhead,
		},
		TotalCost: p.TotalCost,
		Currency:  previewCurrency,
	}
}
