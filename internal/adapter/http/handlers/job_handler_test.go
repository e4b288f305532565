package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
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

// stubTokens accepts any bearer token and resolves it to a fixed user, so
// handler tests can go through the real auth middleware.
type stubTokens struct {
	user entities.User
}

func (s stubTokens) Issue(entities.User) (string, error)  { return "stub-token", nil }
func (s stubTokens) Verify(string) (entities.User, error) { return s.user, nil }

func newJobRouter(h *JobHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequireAuth(stubTokens{user: entities.User{ID: "u1", Username: "lara"}}))
	r.GET("/v1/jobs", h.ListJobs)
	r.GET("/v1/jobs/:job_id", h.GetJob)
	r.POST("/v1/jobs", h.CreateJob)
	r.DELETE("/v1/jobs/:job_id", h.DeleteJob)
	r.POST("/v1/jobs/:job_id/payments", h.RegisterPayment)
	r.POST("/v1/jobs/:job_id/charges", h.CreateCharge)
	return r
}

func doJSON(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer stub-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJobHandler_ListJobs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewJobHandler(mocks.NewMockIJobUseCase(ctrl), nil)
		r := newJobRouter(h)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("owner scoped listing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc, nil)
		r := newJobRouter(h)

		uc.EXPECT().List(gomock.Any(), "u1", false).Return([]entities.Job{{ID: "j1", Name: "Clipe", Value: 100}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/jobs", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["id"] != "j1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if _, ok := body[0]["summary"]; !ok {
			t.Fatalf("expected derived summary in body: %s", w.Body.String())
		}
	})

	t.Run("includeDeleted flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc, nil)
		r := newJobRouter(h)

		uc.EXPECT().List(gomock.Any(), "u1", true).Return([]entities.Job{}, nil)

		w := doJSON(r, http.MethodGet, "/v1/jobs?includeDeleted=true", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestJobHandler_GetJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc, nil)
		r := newJobRouter(h)

		uc.EXPECT().GetByID(gomock.Any(), "u1", "missing").Return(entities.Job{}, usecase.ErrJobNotFound)

		w := doJSON(r, http.MethodGet, "/v1/jobs/missing", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestJobHandler_CreateJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewJobHandler(mocks.NewMockIJobUseCase(ctrl), nil)
		r := newJobRouter(h)

		w := doJSON(r, http.MethodPost, "/v1/jobs", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc, nil)
		r := newJobRouter(h)

		uc.EXPECT().Create(gomock.Any(), "u1", gomock.Any()).Return(entities.Job{ID: "j1", Name: "Clipe", Value: 1000}, nil)

		w := doJSON(r, http.MethodPost, "/v1/jobs", `{"name":"Clipe","value":1000,"deadline":"2026-09-10T12:00:00.000Z"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestJobHandler_DeleteJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("soft delete by default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc, nil)
		r := newJobRouter(h)

		uc.EXPECT().SoftDelete(gomock.Any(), "u1", "j1").Return(nil)

		w := doJSON(r, http.MethodDelete, "/v1/jobs/j1", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("hard delete with flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc, nil)
		r := newJobRouter(h)

		uc.EXPECT().HardDelete(gomock.Any(), "u1", "j1").Return(nil)

		w := doJSON(r, http.MethodDelete, "/v1/jobs/j1?hard=true", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestJobHandler_RegisterPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid amount mapped to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc, nil)
		r := newJobRouter(h)

		uc.EXPECT().RegisterPayment(gomock.Any(), "u1", "j1", gomock.Any()).Return(entities.Job{}, usecase.ErrInvalidPaymentAmount)

		w := doJSON(r, http.MethodPost, "/v1/jobs/j1/payments", `{"amount":-5,"date":"2026-08-30T12:00:00.000Z"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc, nil)
		r := newJobRouter(h)

		uc.EXPECT().RegisterPayment(gomock.Any(), "u1", "j1", gomock.Any()).Return(entities.Job{
			ID: "j1", Name: "Clipe", Value: 100, Status: entities.JobStatusPaid,
			Payments: []entities.Payment{{ID: "p1", Amount: 100}},
		}, nil)

		w := doJSON(r, http.MethodPost, "/v1/jobs/j1/payments", `{"amount":100,"date":"2026-08-30T12:00:00.000Z"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != string(entities.JobStatusPaid) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestJobHandler_CreateCharge(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("already paid mapped to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		charges := mocks.NewMockIChargeUseCase(ctrl)
		h := NewJobHandler(mocks.NewMockIJobUseCase(ctrl), charges)
		r := newJobRouter(h)

		charges.EXPECT().ChargeRemaining(gomock.Any(), "u1", "j1", "payer@test.com").Return(usecase.ChargeResult{}, usecase.ErrJobAlreadyPaid)

		w := doJSON(r, http.MethodPost, "/v1/jobs/j1/charges", `{"payerEmail":"payer@test.com"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("provider failure mapped to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		charges := mocks.NewMockIChargeUseCase(ctrl)
		h := NewJobHandler(mocks.NewMockIJobUseCase(ctrl), charges)
		r := newJobRouter(h)

		charges.EXPECT().ChargeRemaining(gomock.Any(), "u1", "j1", "payer@test.com").Return(usecase.ChargeResult{}, usecase.ErrChargeNotCreated)

		w := doJSON(r, http.MethodPost, "/v1/jobs/j1/charges", `{"payerEmail":"payer@test.com"}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		charges := mocks.NewMockIChargeUseCase(ctrl)
		h := NewJobHandler(mocks.NewMockIJobUseCase(ctrl), charges)
		r := newJobRouter(h)

		charges.EXPECT().ChargeRemaining(gomock.Any(), "u1", "j1", "payer@test.com").Return(usecase.ChargeResult{
			Job:               entities.Job{ID: "j1", Name: "Clipe", Value: 100},
			ProviderPaymentID: "mp-1",
			ProviderStatus:    "approved",
			Amount:            100,
		}, nil)

		w := doJSON(r, http.MethodPost, "/v1/jobs/j1/charges", `{"payerEmail":"payer@test.com"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["providerPaymentId"] != "mp-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestMapJobError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidJobID, http.StatusBadRequest},
		{usecase.ErrInvalidJobName, http.StatusBadRequest},
		{usecase.ErrInvalidJobValue, http.StatusBadRequest},
		{usecase.ErrInvalidPaymentAmount, http.StatusBadRequest},
		{usecase.ErrPaymentDateRequired, http.StatusBadRequest},
		{usecase.ErrJobNotFound, http.StatusNotFound},
		{usecase.ErrJobAlreadyPaid, http.StatusConflict},
		{usecase.ErrChargeNotCreated, http.StatusBadGateway},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapJobError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
