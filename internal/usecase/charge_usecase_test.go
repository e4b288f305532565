package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"big_studio/internal/domain/entities"
	mock_interfaces "big_studio/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestChargeUseCase_ChargeRemaining(t *testing.T) {
	owner := "u1"

	newJobStore := func(t *testing.T, job entities.Job) *JobUseCase {
		t.Helper()
		store := newMemStore()
		seedJob(t, store, owner, job)
		return NewJobUseCase(store)
	}

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewChargeUseCase(NewJobUseCase(newMemStore()), nil)
		_, err := uc.ChargeRemaining(context.Background(), owner, "j1", "payer@test.com")
		if !errors.Is(err, ErrChargeNotCreated) {
			t.Fatalf("expected ErrChargeNotCreated, got %v", err)
		}
	})

	t.Run("unknown job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewChargeUseCase(NewJobUseCase(newMemStore()), mock_interfaces.NewMockIPaymentGateway(ctrl))
		_, err := uc.ChargeRemaining(context.Background(), owner, "missing", "payer@test.com")
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("already settled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := newJobStore(t, entities.Job{
			ID: "j1", Name: "Clipe", Value: 100,
			Payments: []entities.Payment{{ID: "p1", Amount: 100}},
		})
		uc := NewChargeUseCase(jobs, mock_interfaces.NewMockIPaymentGateway(ctrl))

		_, err := uc.ChargeRemaining(context.Background(), owner, "j1", "payer@test.com")
		if !errors.Is(err, ErrJobAlreadyPaid) {
			t.Fatalf("expected ErrJobAlreadyPaid, got %v", err)
		}
	})

	t.Run("gateway error surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		jobs := newJobStore(t, entities.Job{ID: "j1", Name: "Clipe", Value: 100})
		uc := NewChargeUseCase(jobs, gateway)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("provider down"))

		_, err := uc.ChargeRemaining(context.Background(), owner, "j1", "payer@test.com")
		if err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("empty provider id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		jobs := newJobStore(t, entities.Job{ID: "j1", Name: "Clipe", Value: 100})
		uc := NewChargeUseCase(jobs, gateway)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "approved", nil, nil)

		_, err := uc.ChargeRemaining(context.Background(), owner, "j1", "payer@test.com")
		if !errors.Is(err, ErrChargeNotCreated) {
			t.Fatalf("expected ErrChargeNotCreated, got %v", err)
		}
	})

	t.Run("success registers the payment through the ledger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		jobs := newJobStore(t, entities.Job{
			ID: "j1", Name: "Clipe", Value: 500, Status: entities.JobStatusProduction,
			Payments: []entities.Payment{{ID: "p1", Amount: 200}},
		})
		uc := NewChargeUseCase(jobs, gateway)
		uc.now = fixedNow(time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC))

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var req struct {
					TransactionAmount float64 `json:"transaction_amount"`
					ExternalReference string  `json:"external_reference"`
				}
				if err := json.Unmarshal(payload, &req); err != nil {
					t.Fatalf("bad payload: %v", err)
				}
				if req.TransactionAmount != 300 || req.ExternalReference != "j1" {
					t.Fatalf("unexpected charge request %#v", req)
				}
				return "mp-1", "approved", json.RawMessage(`{}`), nil
			})

		result, err := uc.ChargeRemaining(context.Background(), owner, "j1", "payer@test.com")
		if err != nil {
			t.Fatalf("ChargeRemaining: %v", err)
		}
		if result.Amount != 300 || result.ProviderPaymentID != "mp-1" {
			t.Fatalf("unexpected result %#v", result)
		}
		if result.Job.Status != entities.JobStatusPaid {
			t.Fatalf("closing charge must archive the job, got %s", result.Job.Status)
		}
		if len(result.Job.Payments) != 2 || result.Job.Payments[1].Method != "mercadopago" {
			t.Fatalf("unexpected payment history %#v", result.Job.Payments)
		}
	})
}
