package validate

import (
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func Checkout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CheckoutInput
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

func PaymentCallback() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.PaymentCallbackInput
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

func RedeemTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RedeemTicketInput
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

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.LoginInput
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
