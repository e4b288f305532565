package entities

import (
	"regexp"
	"time"
)

// JobStatus represents the workflow stage of a job.
//
// Paid is terminal for billing purposes: paid jobs leave the active board
// and stop producing deadline notifications.

type JobStatus string

const (
	JobStatusBriefing   JobStatus = "BRIEFING"
	JobStatusProduction JobStatus = "PRODUCTION"
	JobStatusReview     JobStatus = "REVIEW"
	JobStatusOther      JobStatus = "OTHER"
	JobStatusFinalized  JobStatus = "FINALIZED"
	JobStatusPaid       JobStatus = "PAID"
)

// ServiceType classifies the kind of work sold.

type ServiceType string

const (
	ServiceTypeVideo       ServiceType = "VIDEO"
	ServiceTypePhoto       ServiceType = "PHOTO"
	ServiceTypeDesign      ServiceType = "DESIGN"
	ServiceTypeSites       ServiceType = "SITES"
	ServiceTypeAuxiliarT   ServiceType = "AUXILIAR_T"
	ServiceTypeFrella      ServiceType = "FRELLA"
	ServiceTypeProgramacao ServiceType = "PROGRAMACAO"
	ServiceTypeRedacao     ServiceType = "REDACAO"
	ServiceTypeOther       ServiceType = "OTHER"
)

// Payment is one registered payment event against a job.
//
// Payments are append-only: there is no edit/remove operation for a single
// payment, only the job-level history.

type Payment struct {
	ID     string  `json:"id"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
	Method string  `json:"method,omitempty"`
	Notes  string  `json:"notes,omitempty"`
}

// Job is a unit of billable work tied to a client.
//
// Storage model (user blob store):
//   - key "jobs", one JSON array per owner, full overwrite on save.
//
// Date fields are kept as ISO-8601 strings on purpose: legacy records may
// carry malformed dates and a single bad record must not poison decoding of
// the whole collection. Callers parse defensively via ParseISOTime.

type Job struct {
	ID                  string      `json:"id"`
	Name                string      `json:"name"`
	ClientID            string      `json:"clientId"`
	ServiceType         ServiceType `json:"serviceType"`
	Status              JobStatus   `json:"status"`
	Deadline            string      `json:"deadline"`
	Value               float64     `json:"value"`
	Cost                float64     `json:"cost,omitempty"`
	CreatedAt           string      `json:"createdAt"`
	IsDeleted           bool        `json:"isDeleted"`
	IsRecurring         bool        `json:"isRecurring"`
	Payments            []Payment   `json:"payments"`
	ObservationsLog     []string    `json:"observationsLog"`
	CloudLinks          []string    `json:"cloudLinks"`
	CalendarEventID     string      `json:"calendarEventId,omitempty"`
	CreateCalendarEvent bool        `json:"createCalendarEvent"`
}

// PaymentSummary is the derived billing position of a job.

type PaymentSummary struct {
	TotalPaid   float64 `json:"totalPaid"`
	Remaining   float64 `json:"remaining"`
	IsFullyPaid bool    `json:"isFullyPaid"`
}

// PaymentSummary computes the billing position from the payment history.
// Remaining clamps at zero on overpayment. A zero-value job is never
// considered fully paid by computation; archiving one is a manual status
// override.
func (j Job) PaymentSummary() PaymentSummary {
	total := 0.0
	for _, p := range j.Payments {
		total += p.Amount
	}
	remaining := j.Value - total
	if remaining < 0 {
		remaining = 0
	}
	return PaymentSummary{
		TotalPaid:   total,
		Remaining:   remaining,
		IsFullyPaid: j.Value > 0 && remaining == 0,
	}
}

var recurringSuffixRe = regexp.MustCompile(`(?i) \(Mês Seguinte\)$`)

// BaseName returns the job name without the legacy recurring display suffix,
// so spawned successors never accumulate suffixes across cycles.
func (j Job) BaseName() string {
	return recurringSuffixRe.ReplaceAllString(j.Name, "")
}

// ParseISOTime parses an ISO-8601 timestamp as persisted by the blob store.
func ParseISOTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// FormatISOTime renders a timestamp in the persisted ISO-8601 form.
func FormatISOTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
