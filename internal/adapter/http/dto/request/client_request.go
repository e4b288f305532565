package request

import (
	"big_studio/internal/domain/entities"
	"big_studio/internal/usecase"
)

type ClientCreateRequest struct {
	Name         string `json:"name" binding:"required"`
	Company      string `json:"company"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	CPF          string `json:"cpf"`
	Observations string `json:"observations"`
}

func (r ClientCreateRequest) ToParams() usecase.ClientParams {
	return usecase.ClientParams{
		Name:         r.Name,
		Company:      r.Company,
		Email:        r.Email,
		Phone:        r.Phone,
		CPF:          r.CPF,
		Observations: r.Observations,
	}
}

type ClientUpdateRequest struct {
	Name         string `json:"name" binding:"required"`
	Company      string `json:"company"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	CPF          string `json:"cpf"`
	Observations string `json:"observations"`
	CreatedAt    string `json:"createdAt"`
}

func (r ClientUpdateRequest) ToEntity(clientID string) entities.Client {
	return entities.Client{
		ID:           clientID,
		Name:         r.Name,
		Company:      r.Company,
		Email:        r.Email,
		Phone:        r.Phone,
		CPF:          r.CPF,
		Observations: r.Observations,
		CreatedAt:    r.CreatedAt,
	}
}
