package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cake_calculator/internal/adapter/http/handlers/mocks"
	"cake_calculator/internal/domain/entities"
	"cake_calculator/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestIngredientHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIngredientUseCase(ctrl)
		h := NewIngredientHandler(uc)

		r := gin.New()
		r.GET("/api/ingredients/:id", h.Get)

		req := httptest.NewRequest(http.MethodGet, "/api/ingredients/not-a-number", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIngredientUseCase(ctrl)
		h := NewIngredientHandler(uc)

		r := gin.New()
		r.GET("/api/ingredients/:id", h.Get)

		uc.EXPECT().GetByID(gomock.Any(), int64(9)).Return(entities.Ingredient{}, usecase.ErrIngredientNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/ingredients/9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		decimalsAsNumbers(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIngredientUseCase(ctrl)
		h := NewIngredientHandler(uc)

		r := gin.New()
		r.GET("/api/ingredients/:id", h.Get)

		uc.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Ingredient{
			ID: 1, Name: "Flour", CostPerUnit: decimal.RequireFromString("1.25"),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/ingredients/1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if body["name"] != "Flour" || body["costPerUnit"] != 1.25 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestIngredientHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIngredientUseCase(ctrl)
		h := NewIngredientHandler(uc)

		r := gin.New()
		r.POST("/api/ingredients", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/api/ingredients", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error from usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIngredientUseCase(ctrl)
		h := NewIngredientHandler(uc)

		r := gin.New()
		r.POST("/api/ingredients", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Ingredient{}, usecase.ErrInvalidIngredient)

		req := httptest.NewRequest(http.MethodPost, "/api/ingredients", bytes.NewBufferString(`{"name":""}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		decimalsAsNumbers(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIngredientUseCase(ctrl)
		h := NewIngredientHandler(uc)

		r := gin.New()
		r.POST("/api/ingredients", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, i entities.Ingredient) (entities.Ingredient, error) {
				i.ID = 7
				return i, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/api/ingredients", bytes.NewBufferString(`{"name":"Sugar","costPerUnit":0.9}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != float64(7) || body["name"] != "Sugar" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestIngredientHandler_UpdateDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("update success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIngredientUseCase(ctrl)
		h := NewIngredientHandler(uc)

		r := gin.New()
		r.PUT("/api/ingredients/:id", h.Update)

		uc.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, i entities.Ingredient) error {
				if i.ID != 3 {
					t.Fatalf("expected path id to win, got %d", i.ID)
				}
				return nil
			})

		req := httptest.NewRequest(http.MethodPut, "/api/ingredients/3", bytes.NewBufferString(`{"id":99,"name":"Butter","costPerUnit":4}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("update missing ingredient", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIngredientUseCase(ctrl)
		h := NewIngredientHandler(uc)

		r := gin.New()
		r.PUT("/api/ingredients/:id", h.Update)

		uc.EXPECT().Update(gomock.Any(), gomock.Any()).Return(usecase.ErrIngredientNotFound)

		req := httptest.NewRequest(http.MethodPut, "/api/ingredients/3", bytes.NewBufferString(`{"name":"Butter"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("delete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIngredientUseCase(ctrl)
		h := NewIngredientHandler(uc)

		r := gin.New()
		r.DELETE("/api/ingredients/:id", h.Delete)

		uc.EXPECT().Delete(gomock.Any(), int64(5)).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/ingredients/5", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("delete missing ingredient", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIngredientUseCase(ctrl)
		h := NewIngredientHandler(uc)

		r := gin.New()
		r.DELETE("/api/ingredients/:id", h.Delete)

		uc.EXPECT().Delete(gomock.Any(), int64(5)).Return(usecase.ErrIngredientNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/api/ingredients/5", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapIngredientError(t *testing.T) {
	if got := mapIngredientError(usecase.ErrInvalidIngredient); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapIngredientError(usecase.ErrIngredientNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapIngredientError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
