package booking

import (
	"context"
	"log"
	"time"

	"cinema_booking/model"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// OrderExpirer hủy các đơn PENDING quá thời gian chờ thanh toán, đi qua
// đúng đường settlement CANCELLED nên ghế được trả và vé bị hủy y như
// gateway báo hủy.
type OrderExpirer struct {
	db         *gorm.DB
	settlement *Settlement
	window     time.Duration
	scheduler  *cron.Cron
}

func NewOrderExpirer(db *gorm.DB, settlement *Settlement, window time.Duration) *OrderExpirer {
	return &OrderExpirer{db: db, settlement: settlement, window: window}
}

func (e *OrderExpirer) Start() error {
	e.scheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := e.scheduler.AddFunc("@every 1m", e.expireStaleOrders)
	if err != nil {
		return err
	}

	e.scheduler.Start()
	log.Printf("Order expirer started (payment window %s)", e.window)
	return nil
}

func (e *OrderExpirer) Stop() {
	if e.scheduler != nil {
		e.scheduler.Stop()
	}
}

func (e *OrderExpirer) expireStaleOrders() {
	deadline := time.Now().Add(-e.window)

	var stale []model.Order
	if err := e.db.Where("status = ? AND created_at < ?", model.OrderPending, deadline).
		Find(&stale).Error; err != nil {
		log.Printf("Lỗi tìm đơn quá hạn thanh toán: %v", err)
		return
	}

	for _, order := range stale {
		if _, err := e.settlement.Settle(context.Background(), order.PaymentCode, model.PaymentCancelled); err != nil {
			log.Printf("Lỗi hủy đơn %s: %v", order.PublicCode, err)
		}
	}
	if len(stale) > 0 {
		log.Printf("Đã hủy %d đơn quá hạn thanh toán", len(stale))
	}
}
