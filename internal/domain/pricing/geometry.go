package pricing

import (
	"encoding/json"
	"math"

	"github.com/shopspring/decimal"
)

// Dimensions describes a cake footprint. Exactly one of the two shapes is
// expected: a round diameter, or a rectangular length and width. A zero
// Dimensions value means "no usable geometry" and resolves to area 0.
type Dimensions struct {
	RoundDiameterIn *decimal.Decimal `json:"roundDiameterIn"`
	LengthIn        *decimal.Decimal `json:"lengthIn"`
	WidthIn         *decimal.Decimal `json:"widthIn"`
}

// ParseDimensions parses the serialized dimensions payload stored on a
// CakeSize. It is a parse-or-default combinator: a missing or malformed
// payload yields (Dimensions{}, false), never an error, so that cost
// computation can proceed with area 0.
func ParseDimensions(raw string) (Dimensions, bool) {
	if raw == "" {
		return Dimensions{}, false
	}
	var d Dimensions
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return Dimensions{}, false
	}
	return d, true
}

// Area resolves the surface area in square inches. Round areas take a single
// float64 excursion for π and come back to decimal immediately; rectangular
// areas are exact decimal multiplication. Unusable dimensions resolve to 0.
func Area(d Dimensions) decimal.Decimal {
	switch {
	case d.RoundDiameterIn != nil:
		radius, _ := d.RoundDiameterIn.Div(decimal.NewFromInt(2)).Float64()
		return decimal.NewFromFloat(math.Pi * radius * radius)
	case d.LengthIn != nil && d.WidthIn != nil:
		area := d.LengthIn.Mul(*d.WidthIn)
		if area.IsNegative() {
			return decimal.Zero
		}
		return area
	default:
		return decimal.Zero
	}
}
