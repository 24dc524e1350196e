package controllers

import (
	"net/http"
	"strconv"

	"tillpoint/pkg/resp"
	"tillpoint/services"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	Svc     *services.ReportService
	Billing *services.BillingService
}

func NewReportController(s *services.ReportService, b *services.BillingService) *ReportController {
	return &ReportController{Svc: s, Billing: b}
}

func monthParams(c *gin.Context) (int, int, bool) {
	year, errY := strconv.Atoi(c.Query("year"))
	month, errM := strconv.Atoi(c.Query("month"))
	if errY != nil || errM != nil {
		resp.BadRequest(c, "year and month query params are required")
		return 0, 0, false
	}
	return year, month, true
}

// GET /reports/monthly?year=2024&month=3
func (h *ReportController) Monthly(c *gin.Context) {
	year, month, ok := monthParams(c)
	if !ok {
		return
	}

	report, err := h.Svc.Monthly(year, month)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, report)
}

// GET /reports/monthly/export
func (h *ReportController) Export(c *gin.Context) {
	year, month, ok := monthParams(c)
	if !ok {
		return
	}

	report, err := h.Svc.Monthly(year, month)
	if err != nil {
		writeErr(c, err)
		return
	}

	doc, err := h.Billing.RenderReport(report)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc))
}
