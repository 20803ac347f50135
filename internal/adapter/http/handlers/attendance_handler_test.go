package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"iblind_pos/internal/adapter/http/handlers/mocks"
	"iblind_pos/internal/adapter/http/middleware"
	"iblind_pos/internal/domain/entities"
	"iblind_pos/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newAttendanceRouter(h *AttendanceHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Actor())
	r.GET("/v1/attendances", h.ListAttendances)
	r.GET("/v1/attendances/:id", h.GetAttendance)
	r.POST("/v1/attendances/:id/deletion-request", h.RequestDeletion)
	return r
}

func TestAttendanceHandler_ListAttendances(t *testing.T) {
	gin.SetMode(gin.TestMode)

	sample := []entities.Attendance{{ID: "a1", ClientName: "Maria", Date: time.Now().UTC()}}

	t.Run("default lists active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAttendanceUseCase(ctrl)
		r := newAttendanceRouter(NewAttendanceHandler(uc))

		uc.EXPECT().ListActive(gomock.Any()).Return(sample, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/attendances", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var out []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(out) != 1 || out[0]["id"] != "a1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("include_deleted routes to list all", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAttendanceUseCase(ctrl)
		r := newAttendanceRouter(NewAttendanceHandler(uc))

		uc.EXPECT().ListAll(gomock.Any()).Return(sample, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/attendances?include_deleted=true", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("search term routes to search", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAttendanceUseCase(ctrl)
		r := newAttendanceRouter(NewAttendanceHandler(uc))

		uc.EXPECT().Search(gomock.Any(), "maria").Return(sample, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/attendances?search=maria", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestAttendanceHandler_GetAttendance(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAttendanceUseCase(ctrl)
		r := newAttendanceRouter(NewAttendanceHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "a404").Return(entities.Attendance{}, usecase.ErrAttendanceNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/attendances/a404", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestAttendanceHandler_RequestDeletion(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAttendanceUseCase(ctrl)
		r := newAttendanceRouter(NewAttendanceHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/attendances/a1/deletion-request", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("reason too short", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAttendanceUseCase(ctrl)
		r := newAttendanceRouter(NewAttendanceHandler(uc))

		uc.EXPECT().RequestDeletion(gomock.Any(), "a1", "ab", gomock.Any()).Return(usecase.ErrReasonTooShort)

		req := httptest.NewRequest(http.MethodPost, "/v1/attendances/a1/deletion-request", bytes.NewBufferString(`{"reason":"ab"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success forwards the header actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAttendanceUseCase(ctrl)
		r := newAttendanceRouter(NewAttendanceHandler(uc))

		wantActor := entities.Actor{ID: "adm-1", Name: "Rita", Role: entities.RoleAdmin}
		uc.EXPECT().RequestDeletion(gomock.Any(), "a1", "cliente desistiu", wantActor).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/attendances/a1/deletion-request", bytes.NewBufferString(`{"reason":"cliente desistiu"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-Id", "adm-1")
		req.Header.Set("X-User-Name", "Rita")
		req.Header.Set("X-User-Role", "ADMIN")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
