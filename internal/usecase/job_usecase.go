package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"big_studio/internal/domain/entities"
	"big_studio/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrJobNotFound          = errors.New("job not found")
	ErrInvalidJobID         = errors.New("invalid job id")
	ErrInvalidJobName       = errors.New("invalid job name")
	ErrInvalidJobValue      = errors.New("invalid job value")
	ErrInvalidPaymentAmount = errors.New("payment amount must be positive")
	ErrPaymentDateRequired  = errors.New("payment date required")
)

// IJobUseCase owns the job ledger: CRUD, payment registration and the
// recurrence rule that spawns a successor when a recurring job is paid.

type IJobUseCase interface {
	List(ctx context.Context, ownerID string, includeDeleted bool) ([]entities.Job, error)
	GetByID(ctx context.Context, ownerID, jobID string) (entities.Job, error)
	Create(ctx context.Context, ownerID string, params JobCreateParams) (entities.Job, error)
	Update(ctx context.Context, ownerID string, updated entities.Job) (entities.Job, error)
	SoftDelete(ctx context.Context, ownerID, jobID string) error
	HardDelete(ctx context.Context, ownerID, jobID string) error
	RegisterPayment(ctx context.Context, ownerID, jobID string, params PaymentParams) (entities.Job, error)
	Summary(ctx context.Context, ownerID, jobID string) (entities.PaymentSummary, error)
}

type JobCreateParams struct {
	Name                string
	ClientID            string
	ServiceType         entities.ServiceType
	Deadline            string
	Value               float64
	Cost                float64
	IsRecurring         bool
	CloudLinks          []string
	CreateCalendarEvent bool
}

type PaymentParams struct {
	Amount float64
	Date   string
	Method string
	Notes  string
}

type JobUseCase struct {
	store interfaces.IBlobStore
	now   func() time.Time
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(store interfaces.IBlobStore) *JobUseCase {
	return &JobUseCase{store: store, now: time.Now}
}

func (u *JobUseCase) List(ctx context.Context, ownerID string, includeDeleted bool) ([]entities.Job, error) {
	jobs, err := loadJobs(ctx, u.store, ownerID)
	if err != nil {
		return nil, err
	}
	if includeDeleted {
		return jobs, nil
	}
	active := make([]entities.Job, 0, len(jobs))
	for _, j := range jobs {
		if !j.IsDeleted {
			active = append(active, j)
		}
	}
	return active, nil
}

func (u *JobUseCase) GetByID(ctx context.Context, ownerID, jobID string) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	jobs, err := loadJobs(ctx, u.store, ownerID)
	if err != nil {
		return entities.Job{}, err
	}
	for _, j := range jobs {
		if j.ID == jobID {
			return j, nil
		}
	}
	return entities.Job{}, ErrJobNotFound
}

func (u *JobUseCase) Create(ctx context.Context, ownerID string, params JobCreateParams) (entities.Job, error) {
	if strings.TrimSpace(params.Name) == "" {
		return entities.Job{}, ErrInvalidJobName
	}
	if params.Value < 0 {
		return entities.Job{}, ErrInvalidJobValue
	}

	jobs, err := loadJobs(ctx, u.store, ownerID)
	if err != nil {
		return entities.Job{}, err
	}

	job := entities.Job{
		ID:                  uuid.NewString(),
		Name:                strings.TrimSpace(params.Name),
		ClientID:            params.ClientID,
		ServiceType:         params.ServiceType,
		Status:              entities.JobStatusBriefing,
		Deadline:            params.Deadline,
		Value:               params.Value,
		Cost:                params.Cost,
		CreatedAt:           entities.FormatISOTime(u.now()),
		IsRecurring:         params.IsRecurring,
		Payments:            []entities.Payment{},
		ObservationsLog:     []string{},
		CloudLinks:          params.CloudLinks,
		CreateCalendarEvent: params.CreateCalendarEvent,
	}
	if job.CloudLinks == nil {
		job.CloudLinks = []string{}
	}

	if err := saveJobs(ctx, u.store, ownerID, append(jobs, job)); err != nil {
		return entities.Job{}, err
	}
	log.Printf("[job][usecase] created job_id=%s owner=%s", job.ID, ownerID)
	return job, nil
}

// Update replaces a job in place. When the save crosses the edge
// status!=PAID -> status==PAID on a recurring job, exactly one successor is
// spawned: deadline advanced one calendar month, status reset to briefing,
// empty payment and observation history, calendar reference cleared, base
// name without the legacy recurring suffix. The edge condition (previous
// status, not current state) guarantees re-saving an already paid job never
// spawns again.
func (u *JobUseCase) Update(ctx context.Context, ownerID string, updated entities.Job) (entities.Job, error) {
	if strings.TrimSpace(updated.ID) == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	if strings.TrimSpace(updated.Name) == "" {
		return entities.Job{}, ErrInvalidJobName
	}

	jobs, err := loadJobs(ctx, u.store, ownerID)
	if err != nil {
		return entities.Job{}, err
	}

	next, spawned, found := u.applyUpdate(jobs, updated)
	if !found {
		return entities.Job{}, ErrJobNotFound
	}
	if err := saveJobs(ctx, u.store, ownerID, next); err != nil {
		return entities.Job{}, err
	}
	if spawned != nil {
		log.Printf("[job][usecase] recurring successor spawned job_id=%s from=%s deadline=%s", spawned.ID, updated.ID, spawned.Deadline)
	}
	return updated, nil
}

// applyUpdate performs the in-memory replace plus the recurrence spawn rule
// against a loaded collection.
func (u *JobUseCase) applyUpdate(jobs []entities.Job, updated entities.Job) (next []entities.Job, spawned *entities.Job, found bool) {
	var previous entities.Job
	for _, j := range jobs {
		if j.ID == updated.ID {
			previous = j
			found = true
			break
		}
	}
	if !found {
		return jobs, nil, false
	}

	next = make([]entities.Job, 0, len(jobs)+1)
	for _, j := range jobs {
		if j.ID == updated.ID {
			next = append(next, updated)
		} else {
			next = append(next, j)
		}
	}

	if previous.Status != entities.JobStatusPaid &&
		updated.Status == entities.JobStatusPaid &&
		updated.IsRecurring {
		successor := u.spawnSuccessor(updated)
		next = append(next, successor)
		spawned = &successor
	}
	return next, spawned, true
}

func (u *JobUseCase) spawnSuccessor(paid entities.Job) entities.Job {
	successor := paid
	successor.ID = uuid.NewString()
	successor.CreatedAt = entities.FormatISOTime(u.now())
	successor.Status = entities.JobStatusBriefing
	successor.Payments = []entities.Payment{}
	successor.ObservationsLog = []string{}
	successor.CalendarEventID = ""
	successor.Name = paid.BaseName()

	deadline, err := entities.ParseISOTime(paid.Deadline)
	if err != nil {
		// Malformed deadline on the paid job: anchor the next cycle on today
		// instead of aborting the spawn.
		log.Printf("[job][usecase] unparseable deadline on recurring job job_id=%s deadline=%q err=%v", paid.ID, paid.Deadline, err)
		deadline = u.now().UTC()
	}
	successor.Deadline = entities.FormatISOTime(deadline.AddDate(0, 1, 0))
	return successor
}

func (u *JobUseCase) SoftDelete(ctx context.Context, ownerID, jobID string) error {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return ErrInvalidJobID
	}
	jobs, err := loadJobs(ctx, u.store, ownerID)
	if err != nil {
		return err
	}
	found := false
	for i := range jobs {
		if jobs[i].ID == jobID {
			jobs[i].IsDeleted = true
			found = true
		}
	}
	if !found {
		return ErrJobNotFound
	}
	return saveJobs(ctx, u.store, ownerID, jobs)
}

func (u *JobUseCase) HardDelete(ctx context.Context, ownerID, jobID string) error {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return ErrInvalidJobID
	}
	jobs, err := loadJobs(ctx, u.store, ownerID)
	if err != nil {
		return err
	}
	next := make([]entities.Job, 0, len(jobs))
	found := false
	for _, j := range jobs {
		if j.ID == jobID {
			found = true
			continue
		}
		next = append(next, j)
	}
	if !found {
		return ErrJobNotFound
	}
	return saveJobs(ctx, u.store, ownerID, next)
}

// RegisterPayment appends a payment to the job history. If the payment
// closes the balance the job is archived as paid in the same operation,
// which also fires the recurrence rule for recurring jobs.
func (u *JobUseCase) RegisterPayment(ctx context.Context, ownerID, jobID string, params PaymentParams) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	if params.Amount <= 0 {
		return entities.Job{}, ErrInvalidPaymentAmount
	}
	date, err := normalizePaymentDate(params.Date)
	if err != nil {
		return entities.Job{}, ErrPaymentDateRequired
	}

	jobs, err := loadJobs(ctx, u.store, ownerID)
	if err != nil {
		return entities.Job{}, err
	}

	var updated entities.Job
	found := false
	for _, j := range jobs {
		if j.ID == jobID {
			updated = j
			found = true
			break
		}
	}
	if !found {
		return entities.Job{}, ErrJobNotFound
	}

	updated.Payments = append(updated.Payments, entities.Payment{
		ID:     uuid.NewString(),
		Amount: params.Amount,
		Date:   date,
		Method: params.Method,
		Notes:  params.Notes,
	})
	if updated.PaymentSummary().IsFullyPaid {
		updated.Status = entities.JobStatusPaid
	}

	next, spawned, _ := u.applyUpdate(jobs, updated)
	if err := saveJobs(ctx, u.store, ownerID, next); err != nil {
		return entities.Job{}, err
	}
	if spawned != nil {
		log.Printf("[job][usecase] recurring successor spawned job_id=%s from=%s deadline=%s", spawned.ID, jobID, spawned.Deadline)
	}
	log.Printf("[job][usecase] payment registered job_id=%s amount=%.2f fully_paid=%t", jobID, params.Amount, updated.PaymentSummary().IsFullyPaid)
	return updated, nil
}

func (u *JobUseCase) Summary(ctx context.Context, ownerID, jobID string) (entities.PaymentSummary, error) {
	job, err := u.GetByID(ctx, ownerID, jobID)
	if err != nil {
		return entities.PaymentSummary{}, err
	}
	return job.PaymentSummary(), nil
}

// normalizePaymentDate pins user-supplied payment dates to midday UTC so a
// date never drifts across a day boundary when rendered in another timezone.
func normalizePaymentDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrPaymentDateRequired
	}
	day, err := time.Parse("2006-01-02", s)
	if err != nil {
		t, err := entities.ParseISOTime(s)
		if err != nil {
			return "", err
		}
		day = t.UTC()
	}
	midday := time.Date(day.Year(), day.Month(), day.Day(), 12, 0, 0, 0, time.UTC)
	return entities.FormatISOTime(midday), nil
}
