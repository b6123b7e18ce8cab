package request

import (
	"cake_calculator/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

// CustomSizeRequest carries ad-hoc dimensions for an order with no preset
// size. Diameter for round cakes; length+width for rectangular ones.
type CustomSizeRequest struct {
	DiameterIn *decimal.Decimal `json:"diameterIn"`
	LengthIn   *decimal.Decimal `json:"lengthIn"`
	WidthIn    *decimal.Decimal `json:"widthIn"`
}

// PricingPreviewRequest is the order configuration sent by the order form.
// The ID fields arrive as raw form values; whether they reference existing
// catalog records is not validated here, the estimator tolerates anything.
type PricingPreviewRequest struct {
	TypeID     string             `json:"typeId"`
	ShapeID    string             `json:"shapeId"`
	SizeID     string             `json:"sizeId"`
	CustomSize *CustomSizeRequest `json:"customSize"`
	Layers     *int               `json:"layers"`
	FillingID  string             `json:"fillingId"`
	FrostingID string             `json:"frostingId"`
}

// ResolveLayers applies the default of 1 when the payload omits layers.
func (r PricingPreviewRequest) ResolveLayers() int {
	if r.Layers == nil {
		return 1
	}
	return *r.Layers
}

// ToPreviewInput translates the payload into the estimator's input shape.
func (r PricingPreviewRequest) ToPreviewInput() pricing.PreviewInput {
	in := pricing.PreviewInput{
		SizeID:     r.SizeID,
		Layers:     r.ResolveLayers(),
		FillingID:  r.FillingID,
		FrostingID: r.FrostingID,
	}
	if r.CustomSize != nil {
		in.CustomSize = &pricing.CustomSize{
			DiameterIn: r.CustomSize.DiameterIn,
			LengthIn:   r.CustomSize.LengthIn,
			WidthIn:    r.CustomSize.WidthIn,
		}
	}
	return in
}
