package request

// CreateOrderRequest represents an order creation request
type CreateOrderRequest struct {
	CustomerName     string  `json:"customer_name" binding:"required,min=1,max=255"`
	ResponsibleParty string  `json:"responsible_party" binding:"required,min=1,max=255"`
	Amount           float64 `json:"amount" binding:"min=0"`
	Quantity         int     `json:"quantity" binding:"omitempty,min=1"`
}

// SaveOrderRequest carries the complete editable field set of one order.
// All fields travel together; partial updates are not supported.
type SaveOrderRequest struct {
	CustomerName     string  `json:"customer_name" binding:"required,min=1,max=255"`
	ResponsibleParty string  `json:"responsible_party" binding:"required,min=1,max=255"`
	Amount           float64 `json:"amount" binding:"min=0"`
	IsPaid           bool    `json:"is_paid"`
	IsDelivered      bool    `json:"is_delivered"`
}

// OrderFilterRequest represents order list filter parameters
type OrderFilterRequest struct {
	Status string `form:"status"`
	Search string `form:"search"`
}

// BoardViewRequest updates the board's filter and search view state
type BoardViewRequest struct {
	Filter string `json:"filter"`
	Search string `json:"search"`
}

// BoardActionRequest opens a confirmation for one pending action
type BoardActionRequest struct {
	Action       string            `json:"action" binding:"required,oneof=pay deliver delete settle save"`
	OrderID      string            `json:"order_id"`
	CustomerName string            `json:"customer_name"`
	Fields       *SaveOrderRequest `json:"fields"`
}
