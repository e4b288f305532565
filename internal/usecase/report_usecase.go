package usecase

import (
	"context"
	"log"
	"sort"
	"time"

	"big_studio/internal/domain/entities"
	"big_studio/internal/usecase/interfaces"
)

// IReportUseCase computes the dashboard aggregates. All figures derive from
// the job and client collections at read time; nothing is persisted.

type IReportUseCase interface {
	Financials(ctx context.Context, ownerID string) (FinancialsReport, error)
	Performance(ctx context.Context, ownerID string) (PerformanceReport, error)
}

type JobBalance struct {
	JobID       string  `json:"jobId"`
	Name        string  `json:"name"`
	ClientName  string  `json:"clientName"`
	Value       float64 `json:"value"`
	TotalPaid   float64 `json:"totalPaid"`
	Remaining   float64 `json:"remaining"`
	IsFullyPaid bool    `json:"isFullyPaid"`
}

type FinancialsReport struct {
	TotalRevenue    float64      `json:"totalRevenue"`
	TotalReceivable float64      `json:"totalReceivable"`
	Jobs            []JobBalance `json:"jobs"`
}

type RevenueEntry struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
}

type ServiceMargin struct {
	ServiceType entities.ServiceType `json:"serviceType"`
	TotalValue  float64              `json:"totalValue"`
	TotalCost   float64              `json:"totalCost"`
	MarginPct   float64              `json:"marginPct"`
}

type PerformanceReport struct {
	TotalRevenue     float64                    `json:"totalRevenue"`
	RevenueByClient  []RevenueEntry             `json:"revenueByClient"`
	RevenueByService []RevenueEntry             `json:"revenueByService"`
	ServiceMargins   []ServiceMargin            `json:"serviceMargins"`
	StatusCounts     map[entities.JobStatus]int `json:"statusCounts"`
	OverdueCount     int                        `json:"overdueCount"`
}

type ReportUseCase struct {
	store interfaces.IBlobStore
	now   func() time.Time
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(store interfaces.IBlobStore) *ReportUseCase {
	return &ReportUseCase{store: store, now: time.Now}
}

func (u *ReportUseCase) Financials(ctx context.Context, ownerID string) (FinancialsReport, error) {
	jobs, err := loadJobs(ctx, u.store, ownerID)
	if err != nil {
		return FinancialsReport{}, err
	}
	clients, err := loadClients(ctx, u.store, ownerID)
	if err != nil {
		return FinancialsReport{}, err
	}
	clientNames := map[string]string{}
	for _, c := range clients {
		clientNames[c.ID] = c.Name
	}

	report := FinancialsReport{Jobs: []JobBalance{}}
	for _, job := range jobs {
		if job.IsDeleted {
			continue
		}
		summary := job.PaymentSummary()
		name, ok := clientNames[job.ClientID]
		if !ok {
			// Deleted clients leave dangling references behind.
			name = "Cliente desconhecido"
		}
		report.Jobs = append(report.Jobs, JobBalance{
			JobID:       job.ID,
			Name:        job.Name,
			ClientName:  name,
			Value:       job.Value,
			TotalPaid:   summary.TotalPaid,
			Remaining:   summary.Remaining,
			IsFullyPaid: summary.IsFullyPaid,
		})
		report.TotalRevenue += summary.TotalPaid
		report.TotalReceivable += summary.Remaining
	}
	return report, nil
}

func (u *ReportUseCase) Performance(ctx context.Context, ownerID string) (PerformanceReport, error) {
	jobs, err := loadJobs(ctx, u.store, ownerID)
	if err != nil {
		return PerformanceReport{}, err
	}
	clients, err := loadClients(ctx, u.store, ownerID)
	if err != nil {
		return PerformanceReport{}, err
	}

	active := make([]entities.Job, 0, len(jobs))
	for _, j := range jobs {
		if !j.IsDeleted {
			active = append(active, j)
		}
	}

	report := PerformanceReport{
		RevenueByClient:  []RevenueEntry{},
		RevenueByService: []RevenueEntry{},
		ServiceMargins:   []ServiceMargin{},
		StatusCounts:     map[entities.JobStatus]int{},
	}

	for _, j := range active {
		report.TotalRevenue += j.PaymentSummary().TotalPaid
	}

	for _, c := range clients {
		revenue := 0.0
		for _, j := range active {
			if j.ClientID == c.ID {
				revenue += j.PaymentSummary().TotalPaid
			}
		}
		if revenue > 0 {
			report.RevenueByClient = append(report.RevenueByClient, RevenueEntry{ID: c.ID, Name: c.Name, Revenue: revenue})
		}
	}
	sort.Slice(report.RevenueByClient, func(i, k int) bool {
		return report.RevenueByClient[i].Revenue > report.RevenueByClient[k].Revenue
	})
	if len(report.RevenueByClient) > 5 {
		report.RevenueByClient = report.RevenueByClient[:5]
	}

	serviceRevenue := map[entities.ServiceType]float64{}
	for _, j := range active {
		serviceRevenue[j.ServiceType] += j.PaymentSummary().TotalPaid
	}
	for service, revenue := range serviceRevenue {
		if revenue > 0 {
			report.RevenueByService = append(report.RevenueByService, RevenueEntry{ID: string(service), Name: string(service), Revenue: revenue})
		}
	}
	sort.Slice(report.RevenueByService, func(i, k int) bool {
		return report.RevenueByService[i].Revenue > report.RevenueByService[k].Revenue
	})

	// Margins consider only fully paid jobs, where value and cost are final.
	marginValue := map[entities.ServiceType]float64{}
	marginCost := map[entities.ServiceType]float64{}
	for _, j := range active {
		if !j.PaymentSummary().IsFullyPaid {
			continue
		}
		marginValue[j.ServiceType] += j.Value
		marginCost[j.ServiceType] += j.Cost
	}
	for service, value := range marginValue {
		if value <= 0 {
			continue
		}
		margin := (value - marginCost[service]) / value * 100
		if margin <= 0 {
			continue
		}
		report.ServiceMargins = append(report.ServiceMargins, ServiceMargin{
			ServiceType: service,
			TotalValue:  value,
			TotalCost:   marginCost[service],
			MarginPct:   margin,
		})
	}
	sort.Slice(report.ServiceMargins, func(i, k int) bool {
		return report.ServiceMargins[i].ServiceType < report.ServiceMargins[k].ServiceType
	})

	today := dayStart(u.now())
	for _, j := range active {
		if j.Status == entities.JobStatusPaid {
			continue
		}
		report.StatusCounts[j.Status]++

		if j.Status == entities.JobStatusFinalized {
			continue
		}
		deadline, err := entities.ParseISOTime(j.Deadline)
		if err != nil {
			log.Printf("[report][usecase] skipping job with malformed deadline job_id=%s deadline=%q err=%v", j.ID, j.Deadline, err)
			continue
		}
		if dayStart(deadline).Before(today) {
			report.OverdueCount++
		}
	}
	return report, nil
}
