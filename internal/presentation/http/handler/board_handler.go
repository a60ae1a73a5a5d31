package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AnthonyBalvin/chicharron-web/internal/application/board"
	"github.com/AnthonyBalvin/chicharron-web/internal/application/flow"
	"github.com/AnthonyBalvin/chicharron-web/internal/domain/enum"
	"github.com/AnthonyBalvin/chicharron-web/internal/presentation/http/dto/request"
	"github.com/AnthonyBalvin/chicharron-web/internal/presentation/http/dto/response"
)

// BoardHandler exposes the order-list manager: its snapshot, view state,
// and the confirm/cancel cycle in front of every mutation.
type BoardHandler struct {
	board *board.Board
}

// NewBoardHandler creates a new board handler
func NewBoardHandler(b *board.Board) *BoardHandler {
	return &BoardHandler{board: b}
}

// State handles reading the current board view
func (h *BoardHandler) State(c *gin.Context) {
	response.OK(c, "Board state", h.board.State())
}

// Refresh handles reloading the order list; on failure the stale view is
// still returned.
func (h *BoardHandler) Refresh(c *gin.Context) {
	if err := h.board.Refresh(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Board refreshed", h.board.State())
}

// SetView handles updating the filter and search view state
func (h *BoardHandler) SetView(c *gin.Context) {
	var req request.BoardViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	h.board.SetFilter(enum.ParseDeliveryFilter(req.Filter))
	h.board.SetSearch(req.Search)
	response.OK(c, "View updated", h.board.State())
}

// RequestAction handles opening a confirmation for a pending action
func (h *BoardHandler) RequestAction(c *gin.Context) {
	var req request.BoardActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	switch req.Action {
	case "settle":
		if req.CustomerName == "" {
			response.BadRequest(c, "Customer name is required")
			return
		}
		h.board.RequestSettle(req.CustomerName)
	case "pay", "deliver", "delete", "save":
		id, err := uuid.Parse(req.OrderID)
		if err != nil {
			response.BadRequest(c, "Invalid order ID")
			return
		}
		switch req.Action {
		case "pay":
			h.board.RequestMarkPaid(id)
		case "deliver":
			h.board.RequestMarkDelivered(id)
		case "delete":
			h.board.RequestDelete(id)
		case "save":
			if req.Fields == nil {
				response.BadRequest(c, "Fields are required for a save action")
				return
			}
			form := &flow.EditForm{
				CustomerName:     req.Fields.CustomerName,
				ResponsibleParty: req.Fields.ResponsibleParty,
				Amount:           formatAmount(req.Fields.Amount),
				IsPaid:           req.Fields.IsPaid,
				IsDelivered:      req.Fields.IsDelivered,
			}
			if err := h.board.RequestSave(id, form); err != nil {
				response.Error(c, err)
				return
			}
		}
	}

	response.OK(c, "Confirmation requested", h.board.State())
}

// Confirm handles running the pending action
func (h *BoardHandler) Confirm(c *gin.Context) {
	if err := h.board.Confirm(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Action confirmed", h.board.State())
}

// Cancel handles dismissing the pending confirmation
func (h *BoardHandler) Cancel(c *gin.Context) {
	h.board.Cancel()
	response.OK(c, "Action cancelled", h.board.State())
}
