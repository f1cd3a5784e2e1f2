package router

import (
	"cinema_booking/handler"
	"cinema_booking/middleware"
	"cinema_booking/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App, h *handler.Handler) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1")

	auth := v1.Group("/auth")
	auth.Post("/login", validate.Login(), h.Login)

	seat := v1.Group("/seat")
	seat.Get("/showtime/:showtimeId", validate.GetById("showtimeId"), h.GetSeatsByShowtime)
	seat.Get("/hall/:hallId", validate.GetById("hallId"), h.GetHallLayout)
	seat.Post("/lock", middleware.Protected(), validate.LockSeats(), h.LockSeats)
	seat.Post("/unlock", middleware.Protected(), validate.LockSeats(), h.UnlockSeats)
	seat.Post("/:seatId/renew", middleware.Protected(), validate.GetById("seatId"), h.RenewLock)
	seat.Get("/:seatId", validate.GetById("seatId"), h.GetSeatById)
	seat.Put("/:seatId", middleware.Protected(), middleware.AdminOnly(), validate.GetById("seatId"), validate.UpdateSeat(), h.UpdateSeatAdmin)

	order := v1.Group("/order")
	order.Post("/checkout", middleware.Protected(), validate.Checkout(), h.Checkout)
	order.Get("/:orderId", middleware.Protected(), validate.GetById("orderId"), h.GetOrderById)

	payment := v1.Group("/payment")
	payment.Post("/callback", validate.PaymentCallback(), h.PaymentCallback)

	ticket := v1.Group("/ticket")
	ticket.Post("/redeem", middleware.Protected(), middleware.AdminOnly(), validate.RedeemTicket(), h.RedeemTicket)
	ticket.Get("/:ticketId", middleware.Protected(), validate.GetById("ticketId"), h.GetTicketById)

	showtime := v1.Group("/showtime")
	showtime.Post("/", middleware.Protected(), middleware.AdminOnly(), h.CreateShowtime)
	showtime.Get("/:showtimeId", validate.GetById("showtimeId"), h.GetShowtimeById)

	// Realtime seat map theo từng suất chiếu. OptionalAuth để client đã
	// đăng nhập khỏi nhận echo thao tác của chính mình.
	app.Use("/ws", middleware.OptionalAuth(), func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/seats/:showtimeId", websocket.New(h.SeatWebsocket))
}
