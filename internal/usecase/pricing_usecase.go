package usecase

import (
	"context"

	"cake_calculator/internal/domain/pricing"
	"cake_calculator/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// IPricingUseCase exposes the two pricing computations:
//   - GetCakePricing: itemized actual cost of a persisted cake plus
//     suggested sale prices at the requested margins
//   - PreviewCost: pre-order estimate from fixed unit rates and geometry

type IPricingUseCase interface {
	GetCakePricing(ctx context.Context, cakeID int64, marginsCSV string) (CakePricing, error)
	PreviewCost(ctx context.Context, in pricing.PreviewInput) (CostPreview, error)
}

// CakePricing is the actual-cost result for a persisted cake.
type CakePricing struct {
	CakeID    int64
	CakeName  string
	TotalCost decimal.Decimal
	Prices    []pricing.SuggestedPrice
}

// CostPreview is the estimated cost of an in-progress order configuration.
type CostPreview struct {
	Breakdown pricing.CostBreakdown
	TotalCost decimal.Decimal
}

type PricingUseCase struct {
	cakes       interfaces.ICakeRepository
	ingredients interfaces.IIngredientRepository
	catalog     interfaces.ICatalogRepository
	calculator  *pricing.Calculator
	estimator   *pricing.Estimator
	log         *zap.Logger
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(
	cakes interfaces.ICakeRepository,
	ingredients interfaces.IIngredientRepository,
	catalog interfaces.ICatalogRepository,
	log *zap.Logger,
) *PricingUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &PricingUseCase{
		cakes:       cakes,
		ingredients: ingredients,
		catalog:     catalog,
		calculator:  pricing.NewCalculator(log),
		estimator:   pricing.NewEstimator(log),
		log:         log,
	}
}

func (u *PricingUseCase) GetCakePricing(ctx context.Context, cakeID int64, marginsCSV string) (CakePricing, error) {
	cake, err := u.cakes.GetByID(ctx, cakeID)
	if err != nil {
		return CakePricing{}, err
	}
	if cake == nil {
		return CakePricing{}, ErrCakeNotFound
	}

	totalCost, err := u.calculator.ActualCost(ctx, *cake, u.ingredients.GetByID)
	if err != nil {
		return CakePricing{}, err
	}

	margins := pricing.ParseMargins(marginsCSV)
	return CakePricing{
		CakeID:    cake.ID,
		CakeName:  cake.Name,
		TotalCost: totalCost,
		Prices:    pricing.SuggestedPrices(totalCost, margins),
	}, nil
}

func (u *PricingUseCase) PreviewCost(ctx context.Context, in pricing.PreviewInput) (CostPreview, error) {
	breakdown, totalCost, err := u.estimator.Preview(ctx, in, u.catalog.GetSizeByID)
	if err != nil {
		u.log.Error("failed to calculate pricing preview", zap.Error(err))
		return CostPreview{}, err
	}
	return CostPreview{Breakdown: breakdown, TotalCost: totalCost}, nil
}
