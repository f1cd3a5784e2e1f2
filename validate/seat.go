package validate

import (
	"errors"

	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func LockSeats() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.LockSeatsInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, "Dữ liệu không hợp lệ", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, err.Error(), err)
		}
		c.Locals("input", input)
		return c.Next()
	}
}

func UpdateSeat() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateSeatInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, "Dữ liệu không hợp lệ", err)
		}
		if input.Status != nil && !model.ValidSeatStatus(*input.Status) {
			return utils.ErrorResponse(c, 400, "Trạng thái ghế không hợp lệ",
				errors.New("status invalid"))
		}
		c.Locals("input", input)
		return c.Next()
	}
}
