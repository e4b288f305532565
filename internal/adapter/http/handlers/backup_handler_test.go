package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"big_studio/internal/adapter/http/handlers/mocks"
	"big_studio/internal/adapter/http/middleware"
	"big_studio/internal/domain/entities"
	"big_studio/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newBackupRouter(h *BackupHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequireAuth(stubTokens{user: entities.User{ID: "u1", Username: "lara"}}))
	r.GET("/v1/backup/export", h.Export)
	r.POST("/v1/backup/import", h.Import)
	return r
}

func TestBackupHandler_Export(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIBackupUseCase(ctrl)
	h := NewBackupHandler(uc)
	r := newBackupRouter(h)

	uc.EXPECT().Export(gomock.Any(), "u1").Return(usecase.BackupEnvelope{
		Version:    "2.0-blob",
		ExportedAt: "2026-08-31T10:00:00.000Z",
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/backup/export", nil)
	req.Header.Set("Authorization", "Bearer stub-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["version"] != "2.0-blob" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestBackupHandler_Import(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid envelope mapped to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBackupUseCase(ctrl)
		h := NewBackupHandler(uc)
		r := newBackupRouter(h)

		uc.EXPECT().Import(gomock.Any(), "u1", gomock.Any()).Return(usecase.BackupEnvelope{}, usecase.ErrInvalidBackup)

		req := httptest.NewRequest(http.MethodPost, "/v1/backup/import", bytes.NewBufferString(`{"version":"1.0"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer stub-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success passes the raw body through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBackupUseCase(ctrl)
		h := NewBackupHandler(uc)
		r := newBackupRouter(h)

		raw := `{"version":"2.0-blob","data":{}}`
		uc.EXPECT().Import(gomock.Any(), "u1", []byte(raw)).Return(usecase.BackupEnvelope{Version: "2.0-blob"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/backup/import", bytes.NewBufferString(raw))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer stub-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
