package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cake_calculator/internal/adapter/http/handlers/mocks"
	"cake_calculator/internal/domain/pricing"
	"cake_calculator/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func decimalsAsNumbers(t *testing.T) {
	t.Helper()
	prev := decimal.MarshalJSONWithoutQuotes
	decimal.MarshalJSONWithoutQuotes = true
	t.Cleanup(func() { decimal.MarshalJSONWithoutQuotes = prev })
}

func TestPricingHandler_GetCakePricing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.GET("/api/pricing/:id", h.GetCakePricing)

		req := httptest.NewRequest(http.MethodGet, "/api/pricing/abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("cake not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.GET("/api/pricing/:id", h.GetCakePricing)

		uc.EXPECT().GetCakePricing(gomock.Any(), int64(42), "").Return(usecase.CakePricing{}, usecase.ErrCakeNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/pricing/42", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("margins query forwarded verbatim", func(t *testing.T) {
		decimalsAsNumbers(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.GET("/api/pricing/:id", h.GetCakePricing)

		uc.EXPECT().GetCakePricing(gomock.Any(), int64(1), "abc,0.5").Return(usecase.CakePricing{
			CakeID:    1,
			CakeName:  "Chocolate Tower",
			TotalCost: decimal.RequireFromString("20"),
			Prices: []pricing.SuggestedPrice{
				{Margin: decimal.Zero, Price: decimal.RequireFromString("20")},
				{Margin: decimal.RequireFromString("0.5"), Price: decimal.RequireFromString("30")},
			},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/pricing/1?margins=abc,0.5", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body struct {
			CakeID    int64   `json:"cakeId"`
			CakeName  string  `json:"cakeName"`
			TotalCost float64 `json:"totalCost"`
			Prices    []struct {
				Margin float64 `json:"margin"`
				Price  float64 `json:"price"`
			} `json:"prices"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if body.CakeID != 1 || body.CakeName != "Chocolate Tower" || body.TotalCost != 20 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if len(body.Prices) != 2 || body.Prices[1].Margin != 0.5 || body.Prices[1].Price != 30 {
			t.Fatalf("unexpected prices: %s", w.Body.String())
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.GET("/api/pricing/:id", h.GetCakePricing)

		uc.EXPECT().GetCakePricing(gomock.Any(), int64(1), "").Return(usecase.CakePricing{}, errors.New("db down"))

		req := httptest.NewRequest(http.MethodGet, "/api/pricing/1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestPricingHandler_PreviewPricing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.POST("/api/pricing/preview", h.PreviewPricing)

		req := httptest.NewRequest(http.MethodPost, "/api/pricing/preview", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success with rounded breakdown", func(t *testing.T) {
		decimalsAsNumbers(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.POST("/api/pricing/preview", h.PreviewPricing)

		uc.EXPECT().PreviewCost(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in pricing.PreviewInput) (usecase.CostPreview, error) {
				if in.SizeID != "3" || in.Layers != 2 || in.FrostingID != "f-1" {
					t.Fatalf("unexpected preview input: %+v", in)
				}
				return usecase.CostPreview{
					Breakdown: pricing.CostBreakdown{
						Ingredients: decimal.RequireFromString("86.40"),
						Labor:       decimal.RequireFromString("36.40"),
						Overhead:    decimal.RequireFromString("36.84"),
					},
					TotalCost: decimal.RequireFromString("159.64"),
				}, nil
			})

		payload := `{"sizeId":"3","layers":2,"frostingId":"f-1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/pricing/preview", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body struct {
			CostBreakdown struct {
				Ingredients float64 `json:"ingredients"`
				Labor       float64 `json:"labor"`
				Overhead    float64 `json:"overhead"`
			} `json:"costBreakdown"`
			TotalCost float64 `json:"totalCost"`
			Currency  string  `json:"currency"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if body.CostBreakdown.Ingredients != 86.40 || body.CostBreakdown.Labor != 36.40 || body.CostBreakdown.Overhead != 36.84 {
			t.Fatalf("unexpected breakdown: %s", w.Body.String())
		}
		if body.TotalCost != 159.64 || body.Currency != "USD" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("layers defaults to one when absent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.POST("/api/pricing/preview", h.PreviewPricing)

		uc.EXPECT().PreviewCost(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in pricing.PreviewInput) (usecase.CostPreview, error) {
				if in.Layers != 1 {
					t.Fatalf("expected default layer count 1, got %d", in.Layers)
				}
				return usecase.CostPreview{}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/api/pricing/preview", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("usecase failure is generic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.POST("/api/pricing/preview", h.PreviewPricing)

		uc.EXPECT().PreviewCost(gomock.Any(), gomock.Any()).Return(usecase.CostPreview{}, errors.New("lookup exploded"))

		req := httptest.NewRequest(http.MethodPost, "/api/pricing/preview", bytes.NewBufferString(`{"layers":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["message"] != "Failed to calculate pricing" {
			t.Fatalf("unexpected error body: %s", w.Body.String())
		}
	})
}

func TestMapPricingError(t *testing.T) {
	if got := mapPricingError(usecase.ErrCakeNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapPricingError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
