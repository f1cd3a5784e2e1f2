package booking

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"cinema_booking/model"
	"cinema_booking/realtime"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Orchestrator chuyển bộ ghế đang LOCKED bởi caller thành Order + Ticket
// và đẩy ghế sang BOOKED, tất cả trong một transaction.
type Orchestrator struct {
	db          *gorm.DB
	broadcaster realtime.Broadcaster
}

func NewOrchestrator(db *gorm.DB, broadcaster realtime.Broadcaster) *Orchestrator {
	return &Orchestrator{db: db, broadcaster: broadcaster}
}

type CheckoutResult struct {
	Order   model.Order    `json:"order"`
	Tickets []model.Ticket `json:"tickets"`
}

func (o *Orchestrator) Checkout(ctx context.Context, userId uint, input model.CheckoutInput) (*CheckoutResult, error) {
	ids := uniqueIds(input.SeatIds)
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: seat ids are required", ErrInvalidRequest)
	}

	var result CheckoutResult
	var events []realtime.SeatEvent

	err := runInTx(ctx, o.db, func(tx *gorm.DB) error {
		result = CheckoutResult{}
		events = events[:0]

		var showtime model.Showtime
		if err := tx.First(&showtime, input.ShowtimeId).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fmt.Errorf("%w: showtime %d", ErrNotFound, input.ShowtimeId)
			}
			return err
		}

		var promo *model.Promotion
		if input.PromotionCode != "" {
			var p model.Promotion
			if err := tx.Where("code = ?", input.PromotionCode).First(&p).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					return fmt.Errorf("%w: promotion %s", ErrNotFound, input.PromotionCode)
				}
				return err
			}
			promo = &p
		}

		var seats []model.Seat
		if err := tx.Preload("SeatCategory").
			Where("id IN ? AND showtime_id = ?", ids, showtime.ID).
			Find(&seats).Error; err != nil {
			return err
		}
		if len(seats) != len(ids) {
			return fmt.Errorf("%w: some seats do not exist in this showtime", ErrNotFound)
		}

		// Vé PENDING cũ của chính user trên các ghế này: retry checkout
		// dùng lại vé thay vì nhân đôi.
		var pending []model.Ticket
		if err := tx.Where("seat_id IN ? AND user_id = ? AND status = ?",
			ids, userId, model.TicketPending).Find(&pending).Error; err != nil {
			return err
		}
		pendingBySeat := make(map[uint]model.Ticket, len(pending))
		for _, t := range pending {
			pendingBySeat[t.SeatId] = t
		}

		now := time.Now()
		var toBook []model.Seat
		var reused []model.Ticket
		var conflicts []uint
		for _, seat := range seats {
			switch {
			case seat.Status == model.SeatAvailable,
				seat.Status == model.SeatLocked && seat.LockedBy != nil && *seat.LockedBy == userId:
				toBook = append(toBook, seat)
			case seat.Status == model.SeatBooked:
				if t, ok := pendingBySeat[seat.ID]; ok {
					reused = append(reused, t)
				} else {
					conflicts = append(conflicts, seat.ID)
				}
			default:
				conflicts = append(conflicts, seat.ID)
			}
		}
		if len(conflicts) > 0 {
			sort.Slice(conflicts, func(i, j int) bool { return conflicts[i] < conflicts[j] })
			return &SeatUnavailableError{SeatIds: conflicts}
		}

		// Toàn bộ ghế đều là retry của đơn cũ → trả đơn cũ, không tạo gì thêm.
		if len(toBook) == 0 {
			var order model.Order
			if err := tx.First(&order, reused[0].OrderId).Error; err != nil {
				return err
			}
			result = CheckoutResult{Order: order, Tickets: reused}
			return nil
		}

		order := model.Order{
			PublicCode:  "ORD-" + uuid.New().String()[:8],
			PaymentCode: "PAY-" + uuid.New().String()[:8],
			Status:      model.OrderPending,
			UserId:      userId,
			ShowtimeId:  showtime.ID,
			Email:       input.Email,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		var tickets []model.Ticket
		var total float64
		for _, seat := range toBook {
			price := TicketPrice(showtime.BasePrice, seat.SeatCategory, promo, now)
			total += price
			tickets = append(tickets, model.Ticket{
				TicketCode: "TKT-" + uuid.New().String()[:10],
				Status:     model.TicketPending,
				Price:      price,
				IssuedAt:   now,
				UserId:     userId,
				ShowtimeId: showtime.ID,
				SeatId:     seat.ID,
				OrderId:    order.ID,
			})
		}

		bookIds := make([]uint, 0, len(toBook))
		for _, seat := range toBook {
			bookIds = append(bookIds, seat.ID)
		}
		res := tx.Model(&model.Seat{}).
			Where("id IN ? AND (status = ? OR (status = ? AND locked_by = ?))",
				bookIds, model.SeatAvailable, model.SeatLocked, userId).
			Updates(map[string]any{
				"status":    model.SeatBooked,
				"locked_by": nil,
				"locked_at": nil,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != int64(len(bookIds)) {
			return errStaleState
		}

		if err := tx.Create(&tickets).Error; err != nil {
			return err
		}
		if err := tx.Model(&order).Update("total_amount", total).Error; err != nil {
			return err
		}
		order.TotalAmount = total

		for _, seat := range toBook {
			events = append(events, realtime.SeatEvent{
				ShowtimeId:  seat.ShowtimeId,
				SeatId:      seat.ID,
				Status:      model.SeatBooked,
				TriggeredBy: fmt.Sprintf("%d", userId),
			})
		}
		result = CheckoutResult{Order: order, Tickets: append(tickets, reused...)}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, ev := range events {
		if err := o.broadcaster.Publish(ctx, ev); err != nil {
			log.Printf("Lỗi broadcast ghế %d: %v", ev.SeatId, err)
		}
	}
	return &result, nil
}
