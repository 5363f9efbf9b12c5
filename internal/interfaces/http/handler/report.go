package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hisabat/backend/internal/application/report"
)

// ReportHandler handles profitability report endpoints
type ReportHandler struct {
	BaseHandler
	reports *report.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reports *report.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Summary returns the KPI block for the filtered period
// GET /api/v1/reports/summary
func (h *ReportHandler) Summary(c *gin.Context) {
	var filter report.ReportFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.reports.Summary(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Products returns the per-product profitability table
// GET /api/v1/reports/products
func (h *ReportHandler) Products(c *gin.Context) {
	var filter report.ReportFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.reports.Products(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Customers returns the per-customer profitability table
// GET /api/v1/reports/customers
func (h *ReportHandler) Customers(c *gin.Context) {
	var filter report.ReportFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.reports.Customers(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Suppliers returns the per-supplier purchase volume table
// GET /api/v1/reports/suppliers
func (h *ReportHandler) Suppliers(c *gin.Context) {
	var filter report.ReportFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.reports.Suppliers(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Alerts returns the high-sales-low-margin and loss-making product lists
// GET /api/v1/reports/alerts
func (h *ReportHandler) Alerts(c *gin.Context) {
	var filter report.ReportFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.reports.Alerts(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Dashboard returns entity counts and the current-month KPI summary
// GET /api/v1/dashboard
func (h *ReportHandler) Dashboard(c *gin.Context) {
	resp, err := h.reports.Dashboard(c.Request.Context(), time.Now())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
