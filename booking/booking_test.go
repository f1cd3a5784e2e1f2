package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"cinema_booking/database"
	"cinema_booking/model"
	"cinema_booking/realtime"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB mở sqlite in-memory với đúng schema production. Giới hạn 1
// connection vì mỗi connection :memory: là một database riêng.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// seedShowtime tạo suất chiếu 10 ghế: A1–A5 STANDARD, B1–B5 VIP,
// giá gốc 100. Trả về map label → seat.
func seedShowtime(t *testing.T, db *gorm.DB) (model.Showtime, map[string]model.Seat) {
	t.Helper()

	standard := model.SeatCategory{Type: model.CategoryStandard, PriceModifier: 1.0}
	vip := model.SeatCategory{Type: model.CategoryVIP, PriceModifier: 1.5}
	couple := model.SeatCategory{Type: model.CategoryCouple, PriceModifier: 2.0}
	for _, c := range []*model.SeatCategory{&standard, &vip, &couple} {
		if err := db.Create(c).Error; err != nil {
			t.Fatalf("seed category: %v", err)
		}
	}

	showtime := model.Showtime{
		PublicCode: "SHW-test1",
		StartTime:  time.Now().Add(2 * time.Hour),
		EndTime:    time.Now().Add(4 * time.Hour),
		BasePrice:  100,
	}
	if err := db.Create(&showtime).Error; err != nil {
		t.Fatalf("seed showtime: %v", err)
	}

	seats := make(map[string]model.Seat)
	for col := 1; col <= 5; col++ {
		for _, rc := range []struct {
			row string
			cat model.SeatCategory
		}{{"A", standard}, {"B", vip}} {
			seat := model.Seat{
				ShowtimeId:     showtime.ID,
				Row:            rc.row,
				Column:         col,
				Status:         model.SeatAvailable,
				SeatCategoryId: rc.cat.ID,
			}
			if err := db.Create(&seat).Error; err != nil {
				t.Fatalf("seed seat: %v", err)
			}
			seat.SeatCategory = rc.cat
			seats[seat.Row+string(rune('0'+col))] = seat
		}
	}
	return showtime, seats
}

// recordingBroadcaster ghi lại mọi event publish để test kiểm tra.
type recordingBroadcaster struct {
	mu     sync.Mutex
	events []realtime.SeatEvent
}

func (r *recordingBroadcaster) Publish(_ context.Context, ev realtime.SeatEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

func (r *recordingBroadcaster) Subscribe(uint) (<-chan realtime.SeatEvent, func()) {
	ch := make(chan realtime.SeatEvent)
	return ch, func() {}
}

func (r *recordingBroadcaster) recorded() []realtime.SeatEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]realtime.SeatEvent, len(r.events))
	copy(out, r.events)
	return out
}

func reloadSeat(t *testing.T, db *gorm.DB, id uint) model.Seat {
	t.Helper()
	var seat model.Seat
	if err := db.First(&seat, id).Error; err != nil {
		t.Fatalf("reload seat %d: %v", id, err)
	}
	return seat
}

// backdateLock đẩy mốc giữ ghế về quá khứ để mô phỏng lock hết hạn.
func backdateLock(t *testing.T, db *gorm.DB, seatId uint, age time.Duration) {
	t.Helper()
	stale := time.Now().Add(-age)
	if err := db.Model(&model.Seat{}).Where("id = ?", seatId).
		Update("locked_at", stale).Error; err != nil {
		t.Fatalf("backdate lock: %v", err)
	}
}
