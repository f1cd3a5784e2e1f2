package utils

import (
	"errors"

	"cinema_booking/booking"

	"github.com/gofiber/fiber/v2"
)

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	} else {
		errMsg = nil
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   errMsg,
	})
}

func SuccessResponse(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

// DomainErrorResponse map lỗi nghiệp vụ của booking engine sang HTTP status.
// SeatUnavailable kèm danh sách ghế xung đột để client đổi lựa chọn.
func DomainErrorResponse(c *fiber.Ctx, err error) error {
	var unavailable *booking.SeatUnavailableError
	switch {
	case errors.As(err, &unavailable):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Ghế không khả dụng",
			"error":   "SEAT_UNAVAILABLE",
			"seatIds": unavailable.SeatIds,
		})
	case errors.Is(err, booking.ErrNotFound):
		return ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy", err)
	case errors.Is(err, booking.ErrInvalidStatus),
		errors.Is(err, booking.ErrInvalidType),
		errors.Is(err, booking.ErrInvalidRequest):
		return ErrorResponse(c, fiber.StatusBadRequest, "Yêu cầu không hợp lệ", err)
	default:
		return ErrorResponse(c, fiber.StatusInternalServerError, "Lỗi hệ thống", err)
	}
}
