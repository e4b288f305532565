package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"big_studio/internal/domain/entities"
	"big_studio/internal/usecase/interfaces"
)

var (
	ErrJobAlreadyPaid   = errors.New("job already fully paid")
	ErrChargeNotCreated = errors.New("charge not created by provider")
)

// IChargeUseCase collects a job's remaining balance through the online
// payment provider and records the result in the job's payment history.

type IChargeUseCase interface {
	ChargeRemaining(ctx context.Context, ownerID, jobID, payerEmail string) (ChargeResult, error)
}

type ChargeResult struct {
	Job               entities.Job `json:"job"`
	ProviderPaymentID string       `json:"providerPaymentId"`
	ProviderStatus    string       `json:"providerStatus"`
	Amount            float64      `json:"amount"`
}

type ChargeUseCase struct {
	jobs    IJobUseCase
	gateway interfaces.IPaymentGateway
	now     func() time.Time
}

var _ IChargeUseCase = (*ChargeUseCase)(nil)

func NewChargeUseCase(jobs IJobUseCase, gateway interfaces.IPaymentGateway) *ChargeUseCase {
	return &ChargeUseCase{jobs: jobs, gateway: gateway, now: time.Now}
}

type chargeRequest struct {
	TransactionAmount float64 `json:"transaction_amount"`
	Description       string  `json:"description"`
	PayerEmail        string  `json:"payer_email"`
	ExternalReference string  `json:"external_reference"`
}

func (u *ChargeUseCase) ChargeRemaining(ctx context.Context, ownerID, jobID, payerEmail string) (ChargeResult, error) {
	if u.gateway == nil {
		return ChargeResult{}, ErrChargeNotCreated
	}
	job, err := u.jobs.GetByID(ctx, ownerID, jobID)
	if err != nil {
		return ChargeResult{}, err
	}
	summary := job.PaymentSummary()
	if summary.Remaining <= 0 {
		return ChargeResult{}, ErrJobAlreadyPaid
	}

	payload, err := json.Marshal(chargeRequest{
		TransactionAmount: summary.Remaining,
		Description:       "Job: " + job.Name,
		PayerEmail:        payerEmail,
		ExternalReference: job.ID,
	})
	if err != nil {
		return ChargeResult{}, fmt.Errorf("encode charge request: %w", err)
	}

	providerPaymentID, providerStatus, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		return ChargeResult{}, fmt.Errorf("create provider payment: %w", err)
	}
	if providerPaymentID == "" {
		return ChargeResult{}, ErrChargeNotCreated
	}
	log.Printf("[charge][usecase] provider payment created job_id=%s provider_payment_id=%s status=%s", jobID, providerPaymentID, providerStatus)

	// The payment lands in the ledger through the same path as a manual
	// registration, so auto-paid status and recurrence behave identically.
	updated, err := u.jobs.RegisterPayment(ctx, ownerID, jobID, PaymentParams{
		Amount: summary.Remaining,
		Date:   entities.FormatISOTime(u.now()),
		Method: "mercadopago",
		Notes:  "Cobrança online " + providerPaymentID,
	})
	if err != nil {
		return ChargeResult{}, err
	}

	return ChargeResult{
		Job:               updated,
		ProviderPaymentID: providerPaymentID,
		ProviderStatus:    providerStatus,
		Amount:            summary.Remaining,
	}, nil
}
