package pricing

import (
	"context"
	"strconv"

	"cake_calculator/internal/domain/entities"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Fixed unit rates for the pre-order estimate. The preview path never
// consults the ingredient catalog; its economics are purely area/layer
// driven, unlike the actual-cost path.
var (
	costPerSquareInch         = decimal.NewFromFloat(0.50)
	fillingCostPerSquareInch  = decimal.NewFromFloat(0.15)
	frostingCostPerSquareInch = decimal.NewFromFloat(0.20)
	baseLaborCost             = decimal.NewFromInt(20)
	laborCostPerSquareInch    = decimal.NewFromFloat(0.10)
	laborCostPerLayer         = decimal.NewFromInt(5)
	overheadPercentage        = decimal.NewFromFloat(0.30)
)

// SizeLookup fetches a preset cake size by ID. A nil size with a nil error
// means the ID does not exist.
type SizeLookup func(ctx context.Context, id int64) (*entities.CakeSize, error)

// CustomSize carries ad-hoc dimensions for an order that uses no preset
// size. Diameter describes a round cake; length+width a rectangular one.
type CustomSize struct {
	DiameterIn *decimal.Decimal
	LengthIn   *decimal.Decimal
	WidthIn    *decimal.Decimal
}

// PreviewInput is an in-progress order configuration. SizeID is the raw
// form value; anything non-numeric counts as "no preset size selected".
// A filling or frosting is selected when its ID is non-empty.
type PreviewInput struct {
	SizeID     string
	CustomSize *CustomSize
	Layers     int
	FillingID  string
	FrostingID string
}

// CostBreakdown splits an estimate into its cost components. Each field is
// rounded to 2 decimal places independently.
type CostBreakdown struct {
	Ingredients decimal.Decimal
	Labor       decimal.Decimal
	Overhead    decimal.Decimal
}

// Estimator computes pre-order cost estimates from fixed unit rates and
// geometry alone. Stateless; safe for concurrent use.
type Estimator struct {
	log *zap.Logger
}

func NewEstimator(log *zap.Logger) *Estimator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Estimator{log: log}
}

// Preview estimates the cost of an order configuration.
//
// The breakdown fields and the total are each rounded to 2 decimal places
// from the unrounded running values: overhead is computed from unrounded
// ingredients+labor, and the total from the three unrounded components.
// Rounding earlier would drift cent-level totals.
func (e *Estimator) Preview(ctx context.Context, in PreviewInput, lookup SizeLookup) (CostBreakdown, decimal.Decimal, error) {
	area, err := e.resolveArea(ctx, in, lookup)
	if err != nil {
		return CostBreakdown{}, decimal.Zero, err
	}
	layers := decimal.NewFromInt(int64(in.Layers))

	ingredients := area.Mul(costPerSquareInch).Mul(layers)
	if in.Layers > 1 && in.FillingID != "" {
		extraLayers := decimal.NewFromInt(int64(in.Layers - 1))
		ingredients = ingredients.Add(area.Mul(fillingCostPerSquareInch).Mul(extraLayers))
	}
	if in.FrostingID != "" {
		ingredients = ingredients.Add(area.Mul(frostingCostPerSquareInch))
	}

	labor := baseLaborCost.
		Add(area.Mul(laborCostPerSquareInch)).
		Add(layers.Mul(laborCostPerLayer))

	overhead := ingredients.Add(labor).Mul(overheadPercentage)
	total := ingredients.Add(labor).Add(overhead)

	breakdown := CostBreakdown{
		Ingredients: ingredients.Round(2),
		Labor:       labor.Round(2),
		Overhead:    overhead.Round(2),
	}
	return breakdown, total.Round(2), nil
}

// resolveArea prefers a usable preset size, then custom dimensions, then
// falls back to area 0. Insufficient information is not an error here: the
// estimate simply loses its area-driven components.
func (e *Estimator) resolveArea(ctx context.Context, in PreviewInput, lookup SizeLookup) (decimal.Decimal, error) {
	if sizeID, err := strconv.ParseInt(in.SizeID, 10, 64); in.SizeID != "" && err == nil {
		size, err := lookup(ctx, sizeID)
		if err != nil {
			return decimal.Zero, err
		}
		if size == nil || size.Dimensions == "" {
			return decimal.Zero, nil
		}
		dims, ok := ParseDimensions(size.Dimensions)
		if !ok {
			e.log.Warn("failed to parse dimensions for size",
				zap.Int64("sizeId", sizeID))
			return decimal.Zero, nil
		}
		return Area(dims), nil
	}

	if c := in.CustomSize; c != nil {
		return Area(Dimensions{
			RoundDiameterIn: c.DiameterIn,
			LengthIn:        c.LengthIn,
			WidthIn:         c.WidthIn,
		}), nil
	}

	return decimal.Zero, nil
}
