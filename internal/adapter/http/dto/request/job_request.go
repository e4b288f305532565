package request

import (
	"big_studio/internal/domain/entities"
	"big_studio/internal/usecase"
)

// JobCreateRequest is the payload for job creation. Deadline is an ISO-8601
// timestamp string.

type JobCreateRequest struct {
	Name                string   `json:"name" binding:"required"`
	ClientID            string   `json:"clientId"`
	ServiceType         string   `json:"serviceType"`
	Deadline            string   `json:"deadline" binding:"required"`
	Value               float64  `json:"value"`
	Cost                float64  `json:"cost"`
	IsRecurring         bool     `json:"isRecurring"`
	CloudLinks          []string `json:"cloudLinks"`
	CreateCalendarEvent bool     `json:"createCalendarEvent"`
}

func (r JobCreateRequest) ToParams() usecase.JobCreateParams {
	return usecase.JobCreateParams{
		Name:                r.Name,
		ClientID:            r.ClientID,
		ServiceType:         entities.ServiceType(r.ServiceType),
		Deadline:            r.Deadline,
		Value:               r.Value,
		Cost:                r.Cost,
		IsRecurring:         r.IsRecurring,
		CloudLinks:          r.CloudLinks,
		CreateCalendarEvent: r.CreateCalendarEvent,
	}
}

// JobUpdateRequest carries the full job state; the id comes from the path.

type JobUpdateRequest struct {
	Name                string             `json:"name" binding:"required"`
	ClientID            string             `json:"clientId"`
	ServiceType         string             `json:"serviceType"`
	Status              string             `json:"status"`
	Deadline            string             `json:"deadline"`
	Value               float64            `json:"value"`
	Cost                float64            `json:"cost"`
	CreatedAt           string             `json:"createdAt"`
	IsDeleted           bool               `json:"isDeleted"`
	IsRecurring         bool               `json:"isRecurring"`
	Payments            []entities.Payment `json:"payments"`
	ObservationsLog     []string           `json:"observationsLog"`
	CloudLinks          []string           `json:"cloudLinks"`
	CalendarEventID     string             `json:"calendarEventId"`
	CreateCalendarEvent bool               `json:"createCalendarEvent"`
}

func (r JobUpdateRequest) ToEntity(jobID string) entities.Job {
	job := entities.Job{
		ID:                  jobID,
		Name:                r.Name,
		ClientID:            r.ClientID,
		ServiceType:         entities.ServiceType(r.ServiceType),
		Status:              entities.JobStatus(r.Status),
		Deadline:            r.Deadline,
		Value:               r.Value,
		Cost:                r.Cost,
		CreatedAt:           r.CreatedAt,
		IsDeleted:           r.IsDeleted,
		IsRecurring:         r.IsRecurring,
		Payments:            r.Payments,
		ObservationsLog:     r.ObservationsLog,
		CloudLinks:          r.CloudLinks,
		CalendarEventID:     r.CalendarEventID,
		CreateCalendarEvent: r.CreateCalendarEvent,
	}
	if job.Payments == nil {
		job.Payments = []entities.Payment{}
	}
	if job.ObservationsLog == nil {
		job.ObservationsLog = []string{}
	}
	if job.CloudLinks == nil {
		job.CloudLinks = []string{}
	}
	return job
}

// PaymentCreateRequest registers one payment against a job. Date accepts
// either a calendar date (2006-01-02) or a full ISO-8601 timestamp.

type PaymentCreateRequest struct {
	Amount float64 `json:"amount" binding:"required"`
	Date   string  `json:"date" binding:"required"`
	Method string  `json:"method"`
	Notes  string  `json:"notes"`
}

func (r PaymentCreateRequest) ToParams() usecase.PaymentParams {
	return usecase.PaymentParams{Amount: r.Amount, Date: r.Date, Method: r.Method, Notes: r.Notes}
}

// ChargeCreateRequest asks the payment provider to collect a job's remaining
// balance.

type ChargeCreateRequest struct {
	PayerEmail string `json:"payerEmail" binding:"required"`
}
