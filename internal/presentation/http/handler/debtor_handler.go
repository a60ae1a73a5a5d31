package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/AnthonyBalvin/chicharron-web/internal/application/service"
	"github.com/AnthonyBalvin/chicharron-web/internal/presentation/http/dto/response"
)

// DebtorHandler serves the per-customer outstanding-balance view
type DebtorHandler struct {
	debtService *service.DebtService
}

// NewDebtorHandler creates a new debtor handler
func NewDebtorHandler(debtService *service.DebtService) *DebtorHandler {
	return &DebtorHandler{debtService: debtService}
}

// List handles listing debtors with the total outstanding debt
func (h *DebtorHandler) List(c *gin.Context) {
	summary, err := h.debtService.GetDebtors(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Debtors retrieved successfully", summary)
}

// Settle handles settling all unpaid orders of one customer
func (h *DebtorHandler) Settle(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		response.BadRequest(c, "Customer name is required")
		return
	}

	summary, err := h.debtService.SettleCustomer(c.Request.Context(), name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Debt settled successfully", summary)
}
