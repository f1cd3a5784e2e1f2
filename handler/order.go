package handler

import (
	"time"

	"cinema_booking/booking"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// POST /orders/checkout - đổi bộ ghế đang giữ thành đơn + vé PENDING
func (h *Handler) Checkout(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CheckoutInput)

	result, err := h.orchestrator.Checkout(c.Context(), currentUserId(c), input)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, 200, fiber.Map{
		"order":       result.Order,
		"tickets":     result.Tickets,
		"paymentCode": result.Order.PaymentCode,
		"nextStep":    "Hoàn tất thanh toán",
	})
}

// GET /orders/:orderId
func (h *Handler) GetOrderById(c *fiber.Ctx) error {
	orderId, _ := c.Locals("inputId").(uint)

	var order model.Order
	if err := h.db.Preload("Tickets").First(&order, orderId).Error; err != nil {
		return utils.ErrorResponse(c, 404, "Đơn hàng không tồn tại", err)
	}
	if order.UserId != currentUserId(c) {
		return utils.ErrorResponse(c, 403, "FORBIDDEN", nil)
	}
	return utils.SuccessResponse(c, 200, order)
}

// POST /showtimes - admin tạo suất chiếu, sinh nguyên sơ đồ ghế trong cùng
// transaction để suất không bao giờ tồn tại thiếu ghế.
func (h *Handler) CreateShowtime(c *fiber.Ctx) error {
	var input model.CreateShowtimeInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, 400, "Dữ liệu không hợp lệ", err)
	}

	tx := h.db.Begin()

	var hall model.Hall
	if err := tx.First(&hall, input.HallId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, 404, "Phòng chiếu không tồn tại", err)
	}
	var movie model.Movie
	if err := tx.First(&movie, input.MovieId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, 404, "Phim không tồn tại", err)
	}

	showtime := model.Showtime{
		PublicCode: "SHW-" + uuid.New().String()[:8],
		StartTime:  input.StartTime,
		EndTime:    input.EndTime,
		BasePrice:  input.BasePrice,
		MovieId:    movie.ID,
		HallId:     hall.ID,
	}
	if err := tx.Create(&showtime).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, 500, "Không thể tạo suất chiếu", err)
	}
	if err := booking.CreateShowtimeSeats(tx, showtime.ID, hall); err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, 500, "Không thể sinh ghế cho suất chiếu", err)
	}

	tx.Commit()
	return utils.SuccessResponse(c, 201, showtime)
}

// GET /showtimes/:showtimeId
func (h *Handler) GetShowtimeById(c *fiber.Ctx) error {
	showtimeId, _ := c.Locals("inputId").(uint)

	var showtime model.Showtime
	if err := h.db.Preload("Movie").Preload("Hall.Cinema").
		First(&showtime, showtimeId).Error; err != nil {
		return utils.ErrorResponse(c, 404, "Suất chiếu không tồn tại", err)
	}

	var booked int64
	h.db.Model(&model.Seat{}).
		Where("showtime_id = ? AND status = ?", showtime.ID, model.SeatBooked).
		Count(&booked)

	return utils.SuccessResponse(c, 200, fiber.Map{
		"showtime":    showtime,
		"bookedSeats": booked,
		"startsIn":    time.Until(showtime.StartTime).String(),
	})
}
