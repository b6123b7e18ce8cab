package request

import (
	"encoding/json"
	"testing"
)

func TestPricingPreviewRequest_ResolveLayers(t *testing.T) {
	t.Run("defaults to one when absent", func(t *testing.T) {
		var r PricingPreviewRequest
		if err := json.Unmarshal([]byte(`{"sizeId":"3"}`), &r); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if r.ResolveLayers() != 1 {
			t.Fatalf("layers = %d, want 1", r.ResolveLayers())
		}
	})

	t.Run("keeps an explicit value", func(t *testing.T) {
		var r PricingPreviewRequest
		if err := json.Unmarshal([]byte(`{"layers":3}`), &r); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if r.ResolveLayers() != 3 {
			t.Fatalf("layers = %d, want 3", r.ResolveLayers())
		}
	})
}

func TestPricingPreviewRequest_ToPreviewInput(t *testing.T) {
	var r PricingPreviewRequest
	payload := `{
		"typeId": "1",
		"shapeId": "2",
		"sizeId": "3",
		"customSize": {"lengthIn": 8, "widthIn": 8},
		"layers": 2,
		"fillingId": "4",
		"frostingId": "5"
	}`
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	in := r.ToPreviewInput()
	if in.SizeID != "3" || in.Layers != 2 || in.FillingID != "4" || in.FrostingID != "5" {
		t.Fatalf("unexpected input: %+v", in)
	}
	if in.CustomSize == nil || in.CustomSize.LengthIn == nil || in.CustomSize.WidthIn == nil {
		t.Fatalf("expected custom size to carry over: %+v", in.CustomSize)
	}
	if in.CustomSize.DiameterIn != nil {
		t.Fatalf("unexpected diameter: %+v", in.CustomSize)
	}
}
