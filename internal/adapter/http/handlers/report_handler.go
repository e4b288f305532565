package handlers

import (
	"log"
	"net/http"

	"big_studio/internal/usecase"
	"big_studio/pkg"

	"github.com/gin-gonic/gin"
)

// ReportHandler handles HTTP requests for dashboard reports.

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

func (h *ReportHandler) GetFinancials(c *gin.Context) {
	user, ok := principal(c)
	if !ok {
		return
	}
	report, err := h.usecase.Financials(c.Request.Context(), user.ID)
	if err != nil {
		log.Printf("[report][handler] financials failed owner=%s err=%v", user.ID, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *ReportHandler) GetPerformance(c *gin.Context) {
	user, ok := principal(c)
	if !ok {
		return
	}
	report, err := h.usecase.Performance(c.Request.Context(), user.ID)
	if err != nil {
		log.Printf("[report][handler] performance failed owner=%s err=%v", user.ID, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, report)
}
