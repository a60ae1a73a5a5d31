package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AnthonyBalvin/chicharron-web/internal/application/service"
	"github.com/AnthonyBalvin/chicharron-web/internal/presentation/http/dto/response"
	"github.com/AnthonyBalvin/chicharron-web/pkg/export"
)

// ReportHandler serves the sales/collections report
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Get handles retrieving the report summary
func (h *ReportHandler) Get(c *gin.Context) {
	report, err := h.reportService.GetReport(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Report retrieved successfully", report)
}

// Export handles downloading the report summary as a spreadsheet
func (h *ReportHandler) Export(c *gin.Context) {
	report, err := h.reportService.GetReport(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	buf, err := export.ReportWorkbook(report)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("sales-report-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
