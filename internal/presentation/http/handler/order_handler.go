package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AnthonyBalvin/chicharron-web/internal/application/service"
	"github.com/AnthonyBalvin/chicharron-web/internal/domain/enum"
	"github.com/AnthonyBalvin/chicharron-web/internal/presentation/http/dto/request"
	"github.com/AnthonyBalvin/chicharron-web/internal/presentation/http/dto/response"
)

// OrderHandler handles order-related HTTP requests. Mutation responses carry
// the reloaded list: the reload is part of the mutation contract.
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// List handles listing orders with optional status filter and search term
func (h *OrderHandler) List(c *gin.Context) {
	var req request.OrderFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	orders, err := h.orderService.ListOrders(c.Request.Context(), enum.ParseDeliveryFilter(req.Status), req.Search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Orders retrieved successfully", orders)
}

// Get handles getting a single order
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// Create handles registering an order
func (h *OrderHandler) Create(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), &service.CreateOrderInput{
		CustomerName:     req.CustomerName,
		ResponsibleParty: req.ResponsibleParty,
		Amount:           req.Amount,
		Quantity:         req.Quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", order)
}

// Save handles replacing the editable fields of an order
func (h *OrderHandler) Save(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.SaveOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	orders, err := h.orderService.SaveOrder(c.Request.Context(), id, &service.SaveInput{
		CustomerName:     req.CustomerName,
		ResponsibleParty: req.ResponsibleParty,
		Amount:           req.Amount,
		IsPaid:           req.IsPaid,
		IsDelivered:      req.IsDelivered,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order updated successfully", orders)
}

// MarkPaid handles marking an order as paid
func (h *OrderHandler) MarkPaid(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	orders, err := h.orderService.MarkPaid(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order marked as paid", orders)
}

// MarkDelivered handles marking an order as delivered
func (h *OrderHandler) MarkDelivered(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	orders, err := h.orderService.MarkDelivered(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order marked as delivered", orders)
}

// Delete handles deleting an order
func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	orders, err := h.orderService.DeleteOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order deleted successfully", orders)
}
