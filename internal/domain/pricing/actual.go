package pricing

import (
	"context"
	"strings"

	"cake_calculator/internal/domain/entities"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// defaultMargins is applied when the caller supplies no margins.
var defaultMargins = []decimal.Decimal{
	decimal.NewFromFloat(0.1),
	decimal.NewFromFloat(0.2),
	decimal.NewFromFloat(0.3),
}

// SuggestedPrice is one sale-price projection at a given margin fraction.
type SuggestedPrice struct {
	Margin decimal.Decimal
	Price  decimal.Decimal
}

// Calculator computes the actual cost of a persisted cake from its stored
// labor/overhead fields plus real ingredient costs. It is stateless; all
// inputs arrive per call and the only side effect is logging.
type Calculator struct {
	log *zap.Logger
}

func NewCalculator(log *zap.Logger) *Calculator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Calculator{log: log}
}

// ActualCost returns labor + otherCosts + the resolved cost of the
// template's base ingredients and the cake's extra ingredients.
//
// A malformed quantity map contributes zero and is logged as a warning; the
// computation still succeeds. Only lookup I/O failures abort it.
func (c *Calculator) ActualCost(ctx context.Context, cake entities.Cake, lookup IngredientLookup) (decimal.Decimal, error) {
	total := cake.Labor.Add(cake.OtherCosts)

	if cake.Template != nil {
		qty, err := ParseQuantityMap(cake.Template.BaseIngredients)
		if err != nil {
			c.log.Warn("failed to parse base ingredients, skipping them in cost calculation",
				zap.Int64("templateId", cake.Template.ID),
				zap.Error(err))
		} else {
			cost, err := quantityMapCost(ctx, qty, lookup)
			if err != nil {
				return decimal.Zero, err
			}
			total = total.Add(cost)
		}
	}

	qty, err := ParseQuantityMap(cake.ExtraIngredients)
	if err != nil {
		c.log.Warn("failed to parse extra ingredients, skipping them in cost calculation",
			zap.Int64("cakeId", cake.ID),
			zap.Error(err))
		return total, nil
	}
	cost, err := quantityMapCost(ctx, qty, lookup)
	if err != nil {
		return decimal.Zero, err
	}
	return total.Add(cost), nil
}

// ParseMargins parses a comma-separated list of margin fractions. An empty
// input yields the default list [0.1, 0.2, 0.3]. Each token is trimmed and
// parsed as a decimal; an unparseable token degrades to margin 0. Order and
// duplicates are preserved.
func ParseMargins(csv string) []decimal.Decimal {
	if csv == "" {
		return defaultMargins
	}
	tokens := strings.Split(csv, ",")
	margins := make([]decimal.Decimal, 0, len(tokens))
	for _, tok := range tokens {
		m, err := decimal.NewFromString(strings.TrimSpace(tok))
		if err != nil {
			m = decimal.Zero
		}
		margins = append(margins, m)
	}
	return margins
}

// SuggestedPrices projects totalCost at each margin: price = totalCost × (1 + margin).
func SuggestedPrices(totalCost decimal.Decimal, margins []decimal.Decimal) []SuggestedPrice {
	one := decimal.NewFromInt(1)
	prices := make([]SuggestedPrice, 0, len(margins))
	for _, m := range margins {
		prices = append(prices, SuggestedPrice{
			Margin: m,
			Price:  totalCost.Mul(one.Add(m)),
		})
	}
	return prices
}
