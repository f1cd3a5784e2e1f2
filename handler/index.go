package handler

import (
	"cinema_booking/booking"
	"cinema_booking/config"
	"cinema_booking/realtime"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Handler giữ mọi dependency của tầng HTTP: store handle và các component
// của booking engine được truyền tường minh qua constructor.
type Handler struct {
	cfg          *config.Config
	db           *gorm.DB
	locks        *booking.LockManager
	orchestrator *booking.Orchestrator
	settlement   *booking.Settlement
	broadcaster  realtime.Broadcaster
}

func New(cfg *config.Config, db *gorm.DB, locks *booking.LockManager,
	orchestrator *booking.Orchestrator, settlement *booking.Settlement,
	broadcaster realtime.Broadcaster) *Handler {
	return &Handler{
		cfg:          cfg,
		db:           db,
		locks:        locks,
		orchestrator: orchestrator,
		settlement:   settlement,
		broadcaster:  broadcaster,
	}
}

func currentUserId(c *fiber.Ctx) uint {
	id, _ := c.Locals("userId").(uint)
	return id
}
