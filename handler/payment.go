package handler

import (
	"fmt"

	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
)

// POST /payments/callback - gateway báo outcome cuối cùng. Webhook có thể
// bắn trùng, Settle idempotent nên cứ trả 200 cho lần lặp lại.
func (h *Handler) PaymentCallback(c *fiber.Ctx) error {
	input := c.Locals("input").(model.PaymentCallbackInput)

	order, err := h.settlement.Settle(c.Context(), input.PaymentCode, input.Outcome)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	if input.Outcome == model.PaymentCompleted && order.Email != "" {
		go h.sendConfirmationEmail(order.ID)
	}

	return utils.SuccessResponse(c, 200, fiber.Map{
		"orderCode": order.PublicCode,
		"status":    order.Status,
	})
}

func (h *Handler) sendConfirmationEmail(orderId uint) {
	var order model.Order
	if err := h.db.Preload("Tickets.Seat").Preload("Showtime.Movie").
		First(&order, orderId).Error; err != nil {
		return
	}

	seats := make([]string, 0, len(order.Tickets))
	for _, t := range order.Tickets {
		seats = append(seats, fmt.Sprintf("%s%d", t.Seat.Row, t.Seat.Column))
	}

	utils.SendTicketEmail(h.cfg, order.Email, utils.TicketEmailData{
		OrderCode:   order.PublicCode,
		MovieName:   order.Showtime.Movie.Title,
		Showtime:    order.Showtime.StartTime.Format("02/01/2006 15:04"),
		Seats:       seats,
		TotalAmount: order.TotalAmount,
	})
}
