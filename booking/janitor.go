package booking

import (
	"context"
	"fmt"
	"log"
	"time"

	"cinema_booking/model"
	"cinema_booking/realtime"

	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

// Janitor quét định kỳ các lock quá TTL và trả ghế về AVAILABLE. Chạy độc
// lập với request; một lần quét lỗi chỉ log, tick sau quét tiếp.
type Janitor struct {
	db          *gorm.DB
	broadcaster realtime.Broadcaster
	ttl         time.Duration
	interval    time.Duration
	scheduler   gocron.Scheduler
}

func NewJanitor(db *gorm.DB, broadcaster realtime.Broadcaster, ttl, interval time.Duration) *Janitor {
	return &Janitor{db: db, broadcaster: broadcaster, ttl: ttl, interval: interval}
}

func (j *Janitor) Start() error {
	s, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	j.scheduler = s

	_, err = s.NewJob(
		gocron.DurationJob(j.interval),
		gocron.NewTask(func() {
			released, err := j.Sweep(context.Background())
			if err != nil {
				log.Printf("Lỗi quét lock hết hạn: %v", err)
				return
			}
			if released > 0 {
				log.Printf("Janitor đã thu hồi %d ghế hết hạn giữ", released)
			}
		}),
	)
	if err != nil {
		return err
	}

	s.Start()
	log.Printf("Seat janitor started (mỗi %s, TTL %s)", j.interval, j.ttl)
	return nil
}

func (j *Janitor) Stop() {
	if j.scheduler != nil {
		if err := j.scheduler.Shutdown(); err != nil {
			log.Printf("Lỗi dừng janitor: %v", err)
		}
	}
}

// Sweep chạy một lượt thu hồi, gọi trực tiếp được trong test thay vì chờ
// timer. Điều kiện hết hạn được kiểm tra lại trong chính transaction ghi:
// ghế vừa được unlock hoặc re-lock song song sẽ bị bỏ qua, không double-fire.
func (j *Janitor) Sweep(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-j.ttl)

	var events []realtime.SeatEvent
	released := 0

	err := j.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var expired []model.Seat
		if err := tx.Where("status = ? AND locked_at < ?", model.SeatLocked, cutoff).
			Find(&expired).Error; err != nil {
			return err
		}

		for _, seat := range expired {
			res := tx.Model(&model.Seat{}).
				Where("id = ? AND status = ? AND locked_at < ?", seat.ID, model.SeatLocked, cutoff).
				Updates(map[string]any{
					"status":    model.SeatAvailable,
					"locked_by": nil,
					"locked_at": nil,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				continue // có writer khác vừa chạm ghế này
			}
			released++
			events = append(events, realtime.SeatEvent{
				ShowtimeId:  seat.ShowtimeId,
				SeatId:      seat.ID,
				Status:      model.SeatAvailable,
				TriggeredBy: realtime.TriggeredBySystem,
			})
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("sweep expired locks: %w", err)
	}

	for _, ev := range events {
		if err := j.broadcaster.Publish(ctx, ev); err != nil {
			log.Printf("Lỗi broadcast ghế %d: %v", ev.SeatId, err)
		}
	}
	return released, nil
}
