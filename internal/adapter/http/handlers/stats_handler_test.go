package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"iblind_pos/internal/adapter/http/handlers/mocks"
	"iblind_pos/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestStatsHandler_GetDashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStatsUseCase(ctrl)
		h := NewStatsHandler(uc)

		r := gin.New()
		r.GET("/v1/stats/dashboard", h.GetDashboard)

		uc.EXPECT().Dashboard(gomock.Any()).Return(usecase.DashboardStats{
			Revenue: 510, Count: 3, AvgTicket: 170, CriticalStockCount: 1, CountToday: 2,
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/stats/dashboard", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var out map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if out["avg_ticket"] != float64(170) || out["count_today"] != float64(2) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStatsUseCase(ctrl)
		h := NewStatsHandler(uc)

		r := gin.New()
		r.GET("/v1/stats/dashboard", h.GetDashboard)

		uc.EXPECT().Dashboard(gomock.Any()).Return(usecase.DashboardStats{}, errors.New("dynamo down"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/stats/dashboard", nil))
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
