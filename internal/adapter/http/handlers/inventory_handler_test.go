package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"iblind_pos/internal/adapter/http/handlers/mocks"
	"iblind_pos/internal/adapter/http/middleware"
	"iblind_pos/internal/domain/entities"
	"iblind_pos/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newInventoryRouter(h *InventoryHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Actor())
	r.POST("/v1/inventory", h.CreateItem)
	r.GET("/v1/inventory", h.ListItems)
	r.GET("/v1/inventory/:id", h.GetItem)
	r.PUT("/v1/inventory/:id", h.UpdateItem)
	r.POST("/v1/inventory/:id/adjust", h.AdjustStock)
	r.GET("/v1/inventory/:id/movements", h.ListMovements)
	return r
}

func TestInventoryHandler_CreateItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		r := newInventoryRouter(NewInventoryHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/inventory", bytes.NewBufferString(`{"brand":"3M"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		r := newInventoryRouter(NewInventoryHandler(uc))

		uc.EXPECT().CreateItem(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.InventoryItem{ID: "i1", SKU: "SKU-AB12CD", Brand: "3M", Model: "Pro", CurrentStock: 1, MinStock: 2}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/inventory", bytes.NewBufferString(`{"brand":"3M","model":"Pro","currentStock":1,"minStock":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var out map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if out["is_critical"] != true {
			t.Fatalf("expected critical flag, got %s", w.Body.String())
		}
	})
}

func TestInventoryHandler_ListItems(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("critical filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		r := newInventoryRouter(NewInventoryHandler(uc))

		uc.EXPECT().ListCritical(gomock.Any()).Return([]entities.InventoryItem{}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/inventory?critical=true", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("search passthrough", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		r := newInventoryRouter(NewInventoryHandler(uc))

		uc.EXPECT().ListItems(gomock.Any(), "nano").Return([]entities.InventoryItem{}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/inventory?search=nano", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestInventoryHandler_AdjustStock(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("floor at zero maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		r := newInventoryRouter(NewInventoryHandler(uc))

		uc.EXPECT().AdjustStock(gomock.Any(), "i1", -5, "perda", gomock.Any()).
			Return(entities.InventoryItem{}, usecase.ErrInvalidAdjustment)

		req := httptest.NewRequest(http.MethodPost, "/v1/inventory/i1/adjust", bytes.NewBufferString(`{"delta":-5,"reason":"perda"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("adjusted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		r := newInventoryRouter(NewInventoryHandler(uc))

		uc.EXPECT().AdjustStock(gomock.Any(), "i1", 3, "reposição", gomock.Any()).
			Return(entities.InventoryItem{ID: "i1", CurrentStock: 8}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/inventory/i1/adjust", bytes.NewBufferString(`{"delta":3,"reason":"reposição"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestInventoryHandler_GetItem(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInventoryUseCase(ctrl)
	r := newInventoryRouter(NewInventoryHandler(uc))

	uc.EXPECT().GetItem(gomock.Any(), "i404").Return(entities.InventoryItem{}, usecase.ErrItemNotFound)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/inventory/i404", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
