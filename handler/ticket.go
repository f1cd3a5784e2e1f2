package handler

import (
	"fmt"

	"cinema_booking/booking"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
)

// POST /tickets/redeem - check-in vé tại rạp
func (h *Handler) RedeemTicket(c *fiber.Ctx) error {
	input := c.Locals("input").(model.RedeemTicketInput)

	ticket, err := booking.RedeemTicket(c.Context(), h.db, input.TicketCode)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	var seat model.Seat
	h.db.First(&seat, ticket.SeatId)

	return utils.SuccessResponse(c, 200, fiber.Map{
		"message":    "Check-in thành công",
		"ticketCode": ticket.TicketCode,
		"seat":       fmt.Sprintf("%s%d", seat.Row, seat.Column),
		"usedAt":     ticket.UsedAt,
	})
}

// GET /tickets/:ticketId
func (h *Handler) GetTicketById(c *fiber.Ctx) error {
	ticketId, _ := c.Locals("inputId").(uint)

	var ticket model.Ticket
	if err := h.db.First(&ticket, ticketId).Error; err != nil {
		return utils.ErrorResponse(c, 404, "Vé không tồn tại", err)
	}
	if ticket.UserId != currentUserId(c) {
		return utils.ErrorResponse(c, 403, "FORBIDDEN", nil)
	}
	return utils.SuccessResponse(c, 200, ticket)
}
