package response

import "big_studio/internal/usecase"

type ChargeResponse struct {
	Job               JobResponse `json:"job"`
	ProviderPaymentID string      `json:"providerPaymentId"`
	ProviderStatus    string      `json:"providerStatus"`
	Amount            float64     `json:"amount"`
}

func FromCharge(result usecase.ChargeResult) ChargeResponse {
	return ChargeResponse{
		Job:               FromJob(result.Job),
		ProviderPaymentID: result.ProviderPaymentID,
		ProviderStatus:    result.ProviderStatus,
		Amount:            result.Amount,
	}
}
