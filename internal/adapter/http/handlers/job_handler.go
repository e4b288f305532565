package handlers

import (
	"errors"
	"log"
	"net/http"

	request "big_studio/internal/adapter/http/dto/request"
	response "big_studio/internal/adapter/http/dto/response"
	"big_studio/internal/usecase"
	"big_studio/pkg"

	"github.com/gin-gonic/gin"
)

// JobHandler handles HTTP requests for the job ledger: CRUD, payment
// registration and online charges.

type JobHandler struct {
	usecase usecase.IJobUseCase
	charges usecase.IChargeUseCase
}

func NewJobHandler(uc usecase.IJobUseCase, charges usecase.IChargeUseCase) *JobHandler {
	return &JobHandler{usecase: uc, charges: charges}
}

// ListJobs lists jobs. Soft-deleted jobs are included only with
// ?includeDeleted=true.
func (h *JobHandler) ListJobs(c *gin.Context) {
	user, ok := principal(c)
	if !ok {
		return
	}
	includeDeleted := c.Query("includeDeleted") == "true"

	jobs, err := h.usecase.List(c.Request.Context(), user.ID, includeDeleted)
	if err != nil {
		log.Printf("[job][handler] list failed owner=%s err=%v", user.ID, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJobs(jobs))
}

func (h *JobHandler) GetJob(c *gin.Context) {
	user, ok := principal(c)
	if !ok {
		return
	}
	jobID := c.Param("job_id")

	job, err := h.usecase.GetByID(c.Request.Context(), user.ID, jobID)
	if err != nil {
		log.Printf("[job][handler] get failed job_id=%s err=%v", jobID, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	user, ok := principal(c)
	if !ok {
		return
	}
	var payload request.JobCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.Create(c.Request.Context(), user.ID, payload.ToParams())
	if err != nil {
		log.Printf("[job][handler] create failed owner=%s err=%v", user.ID, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[job][handler] create success job_id=%s owner=%s", job.ID, user.ID)

	c.JSON(http.StatusCreated, response.FromJob(job))
}

func (h *JobHandler) UpdateJob(c *gin.Context) {
	user, ok := principal(c)
	if !ok {
		return
	}
	jobID := c.Param("job_id")
	var payload request.JobUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.Update(c.Request.Context(), user.ID, payload.ToEntity(jobID))
	if err != nil {
		log.Printf("[job][handler] update failed job_id=%s err=%v", jobID, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// DeleteJob soft-deletes by default; ?hard=true removes the record.
func (h *JobHandler) DeleteJob(c *gin.Context) {
	user, ok := principal(c)
	if !ok {
		return
	}
	jobID := c.Param("job_id")

	var err error
	if c.Query("hard") == "true" {
		err = h.usecase.HardDelete(c.Request.Context(), user.ID, jobID)
	} else {
		err = h.usecase.SoftDelete(c.Request.Context(), user.ID, jobID)
	}
	if err != nil {
		log.Printf("[job][handler] delete failed job_id=%s err=%v", jobID, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *JobHandler) RegisterPayment(c *gin.Context) {
	user, ok := principal(c)
	if !ok {
		return
	}
	jobID := c.Param("job_id")
	var payload request.PaymentCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	log.Printf("[job][handler] payment start job_id=%s amount=%.2f", jobID, payload.Amount)

	job, err := h.usecase.RegisterPayment(c.Request.Context(), user.ID, jobID, payload.ToParams())
	if err != nil {
		log.Printf("[job][handler] payment failed job_id=%s err=%v", jobID, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) GetSummary(c *gin.Context) {
	user, ok := principal(c)
	if !ok {
		return
	}
	jobID := c.Param("job_id")

	summary, err := h.usecase.Summary(c.Request.Context(), user.ID, jobID)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, summary)
}

// CreateCharge collects the job's remaining balance through the payment
// provider and records the resulting payment.
func (h *JobHandler) CreateCharge(c *gin.Context) {
	user, ok := principal(c)
	if !ok {
		return
	}
	jobID := c.Param("job_id")
	var payload request.ChargeCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	log.Printf("[job][handler] charge start job_id=%s", jobID)

	result, err := h.charges.ChargeRemaining(c.Request.Context(), user.ID, jobID, payload.PayerEmail)
	if err != nil {
		log.Printf("[job][handler] charge failed job_id=%s err=%v", jobID, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[job][handler] charge success job_id=%s provider_payment_id=%s", jobID, result.ProviderPaymentID)

	c.JSON(http.StatusOK, response.FromCharge(result))
}

func mapJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID),
		errors.Is(err, usecase.ErrInvalidJobName),
		errors.Is(err, usecase.ErrInvalidJobValue),
		errors.Is(err, usecase.ErrInvalidPaymentAmount),
		errors.Is(err, usecase.ErrPaymentDateRequired):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobAlreadyPaid):
		return pkg.NewDomainErrorSimple("JOB_ALREADY_PAID", "Job has no remaining balance", http.StatusConflict)
	case errors.Is(err, usecase.ErrChargeNotCreated):
		return pkg.NewDomainErrorSimple("CHARGE_NOT_CREATED", "Payment provider did not create the charge", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
