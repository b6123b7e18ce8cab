package entities

import "github.com/shopspring/decimal"

// Cake is a persisted cake order. It references exactly one Template and may
// carry extra ingredients on top of the template's base ingredients.
//
// ExtraIngredients uses the same JSON quantity-map shape as
// Template.BaseIngredients and may be empty.

type Cake struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	TemplateID       int64           `json:"templateId"`
	Template         *Template       `json:"template,omitempty"`
	ExtraIngredients string          `json:"extraIngredients"`
	Labor            decimal.Decimal `json:"labor"`
	OtherCosts       decimal.Decimal `json:"otherCosts"`
}
