package response

import "big_studio/internal/domain/entities"

// JobResponse is the job entity plus its derived payment summary, so list
// and detail views never recompute balances client-side.

type JobResponse struct {
	entities.Job
	Summary entities.PaymentSummary `json:"summary"`
}

func FromJob(j entities.Job) JobResponse {
	return JobResponse{Job: j, Summary: j.PaymentSummary()}
}

func FromJobs(jobs []entities.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromJob(j))
	}
	return out
}
