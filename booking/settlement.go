package booking

import (
	"context"
	"fmt"
	"log"
	"time"

	"cinema_booking/model"
	"cinema_booking/realtime"

	"gorm.io/gorm"
)

// Settlement nhận outcome cuối cùng từ payment gateway và kéo vé + ghế về
// trạng thái tương ứng. Webhook có thể bắn trùng nên mọi nhánh đều idempotent:
// gate bằng conditional update trên hàng order, outcome lặp lại không đổi gì.
type Settlement struct {
	db          *gorm.DB
	broadcaster realtime.Broadcaster
}

func NewSettlement(db *gorm.DB, broadcaster realtime.Broadcaster) *Settlement {
	return &Settlement{db: db, broadcaster: broadcaster}
}

func (s *Settlement) Settle(ctx context.Context, paymentCode string, outcome string) (*model.Order, error) {
	switch outcome {
	case model.PaymentCompleted, model.PaymentFailed, model.PaymentCancelled:
	default:
		return nil, fmt.Errorf("%w: outcome %s", ErrInvalidRequest, outcome)
	}

	var settled model.Order
	var events []realtime.SeatEvent

	err := runInTx(ctx, s.db, func(tx *gorm.DB) error {
		events = events[:0]

		var order model.Order
		if err := tx.Where("payment_code = ?", paymentCode).First(&order).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fmt.Errorf("%w: payment %s", ErrNotFound, paymentCode)
			}
			return err
		}

		if outcome == model.PaymentCompleted {
			return s.complete(tx, &order, &settled)
		}
		return s.cancel(tx, &order, &settled, &events)
	})
	if err != nil {
		return nil, err
	}

	for _, ev := range events {
		if err := s.broadcaster.Publish(ctx, ev); err != nil {
			log.Printf("Lỗi broadcast ghế %d: %v", ev.SeatId, err)
		}
	}
	return &settled, nil
}

func (s *Settlement) complete(tx *gorm.DB, order *model.Order, settled *model.Order) error {
	if order.Status == model.OrderConfirmed {
		*settled = *order // webhook trùng, đã xử lý rồi
		return nil
	}
	if order.Status == model.OrderCancelled {
		return fmt.Errorf("%w: order %s already cancelled", ErrInvalidRequest, order.PublicCode)
	}

	now := time.Now()
	res := tx.Model(&model.Order{}).
		Where("id = ? AND status = ?", order.ID, model.OrderPending).
		Updates(map[string]any{"status": model.OrderConfirmed, "paid_at": now})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errStaleState
	}

	// Ghế đã BOOKED từ lúc checkout, chỉ vé chuyển PENDING → CONFIRMED.
	if err := tx.Model(&model.Ticket{}).
		Where("order_id = ? AND status = ?", order.ID, model.TicketPending).
		Updates(map[string]any{
			"status":     model.TicketConfirmed,
			"qr_payload": gorm.Expr("ticket_code"),
		}).Error; err != nil {
		return err
	}

	order.Status = model.OrderConfirmed
	order.PaidAt = &now
	*settled = *order
	return nil
}

func (s *Settlement) cancel(tx *gorm.DB, order *model.Order, settled *model.Order, events *[]realtime.SeatEvent) error {
	if order.Status == model.OrderCancelled {
		*settled = *order
		return nil
	}
	if order.Status == model.OrderConfirmed {
		return fmt.Errorf("%w: order %s already confirmed", ErrInvalidRequest, order.PublicCode)
	}

	now := time.Now()
	res := tx.Model(&model.Order{}).
		Where("id = ? AND status = ?", order.ID, model.OrderPending).
		Updates(map[string]any{"status": model.OrderCancelled, "cancelled_at": now})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errStaleState
	}

	var tickets []model.Ticket
	if err := tx.Where("order_id = ?", order.ID).Find(&tickets).Error; err != nil {
		return err
	}
	if err := tx.Model(&model.Ticket{}).
		Where("order_id = ? AND status = ?", order.ID, model.TicketPending).
		Updates(map[string]any{"status": model.TicketCancelled, "cancelled_at": now}).Error; err != nil {
		return err
	}

	// Trả ghế bất kể trạng thái hiện tại (forceful release): kể cả khi một
	// phần ghế đã được nhả tay trước đó, kết quả cuối vẫn là AVAILABLE sạch.
	seatIds := make([]uint, 0, len(tickets))
	for _, t := range tickets {
		seatIds = append(seatIds, t.SeatId)
	}
	if len(seatIds) > 0 {
		if err := tx.Model(&model.Seat{}).
			Where("id IN ?", seatIds).
			Updates(map[string]any{
				"status":    model.SeatAvailable,
				"locked_by": nil,
				"locked_at": nil,
			}).Error; err != nil {
			return err
		}
		for _, t := range tickets {
			*events = append(*events, realtime.SeatEvent{
				ShowtimeId:  t.ShowtimeId,
				SeatId:      t.SeatId,
				Status:      model.SeatAvailable,
				TriggeredBy: realtime.TriggeredBySystem,
			})
		}
	}

	order.Status = model.OrderCancelled
	order.CancelledAt = &now
	*settled = *order
	return nil
}
