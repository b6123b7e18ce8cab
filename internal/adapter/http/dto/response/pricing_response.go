package response

import (
	"cake_calculator/internal/usecase"

	"github.com/shopspring/decimal"
)

// MarginPrice is one suggested sale price at a margin fraction.
type MarginPrice struct {
	Margin decimal.Decimal `json:"margin"`
	Price  decimal.Decimal `json:"price"`
}

// CakePricingResponse is the itemized actual-cost body. Field names are the
// compatibility surface consumed by the order form.
type CakePricingResponse struct {
	CakeID    int64           `json:"cakeId"`
	CakeName  string          `json:"cakeName"`
	TotalCost decimal.Decimal `json:"totalCost"`
	Prices    []MarginPrice   `json:"prices"`
}

func FromCakePricing(p usecase.CakePricing) CakePricingResponse {
	prices := make([]MarginPrice, 0, len(p.Prices))
	for _, sp := range p.Prices {
		prices = append(prices, MarginPrice{Margin: sp.Margin, Price: sp.Price})
	}
	return CakePricingResponse{
		CakeID:    p.CakeID,
		CakeName:  p.CakeName,
		TotalCost: p.TotalCost,
		Prices:    prices,
	}
}
