package entities

import "github.com/shopspring/decimal"

// Ingredient is a purchasable ingredient with its unit cost.
//
// Monetary representation:
//   - CostPerUnit is a currency amount (2 fraction digits on the wire).

type Ingredient struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	CostPerUnit decimal.Decimal `json:"costPerUnit"`
}
