package booking

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"cinema_booking/model"
	"cinema_booking/realtime"

	"gorm.io/gorm"
)

// LockManager là đầu mối duy nhất cho mọi transition trạng thái ghế do user
// thao tác. Mọi thao tác nhiều ghế chạy trong MỘT transaction; điều kiện
// xung đột được kiểm tra lại ngay trong transaction và câu UPDATE cuối cùng
// lặp lại guard đó, nên hai writer đua nhau chỉ một bên thắng.
type LockManager struct {
	db          *gorm.DB
	broadcaster realtime.Broadcaster
	ttl         time.Duration
}

func NewLockManager(db *gorm.DB, broadcaster realtime.Broadcaster, ttl time.Duration) *LockManager {
	return &LockManager{db: db, broadcaster: broadcaster, ttl: ttl}
}

func (m *LockManager) TTL() time.Duration { return m.ttl }

type LockResult struct {
	SeatIds  []uint    `json:"seatIds"`
	LockedAt time.Time `json:"lockedAt"`
}

// LockSeats giữ toàn bộ ghế trong danh sách hoặc không ghế nào.
// Ghế coi là không khả dụng khi BOOKED, hoặc LOCKED bởi user khác mà lock
// chưa quá TTL. Lock hết hạn (kể cả của user khác) và lock của chính caller
// đều giữ lại được.
func (m *LockManager) LockSeats(ctx context.Context, seatIds []uint, userId uint) (*LockResult, error) {
	ids := uniqueIds(seatIds)
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: seat ids are required", ErrInvalidRequest)
	}

	var events []realtime.SeatEvent
	var lockedAt time.Time

	err := runInTx(ctx, m.db, func(tx *gorm.DB) error {
		events = events[:0]

		var seats []model.Seat
		if err := tx.Where("id IN ?", ids).Find(&seats).Error; err != nil {
			return err
		}
		if len(seats) != len(ids) {
			return fmt.Errorf("%w: some seats do not exist", ErrNotFound)
		}

		now := time.Now()
		cutoff := now.Add(-m.ttl)

		var conflicts []uint
		for _, seat := range seats {
			if !m.lockableBy(seat, userId, cutoff) {
				conflicts = append(conflicts, seat.ID)
			}
		}
		if len(conflicts) > 0 {
			sort.Slice(conflicts, func(i, j int) bool { return conflicts[i] < conflicts[j] })
			return &SeatUnavailableError{SeatIds: conflicts}
		}

		// Guard lặp lại trong UPDATE: nếu một writer khác vừa chen vào giữa
		// lần đọc và lần ghi, số hàng chạm được sẽ thiếu → rollback, retry.
		res := tx.Model(&model.Seat{}).
			Where("id IN ? AND (status = ? OR (status = ? AND (locked_by = ? OR locked_at < ?)))",
				ids, model.SeatAvailable, model.SeatLocked, userId, cutoff).
			Updates(map[string]any{
				"status":    model.SeatLocked,
				"locked_by": userId,
				"locked_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != int64(len(ids)) {
			return errStaleState
		}

		lockedAt = now
		for _, seat := range seats {
			events = append(events, realtime.SeatEvent{
				ShowtimeId:  seat.ShowtimeId,
				SeatId:      seat.ID,
				Status:      model.SeatLocked,
				LockedBy:    &userId,
				TriggeredBy: fmt.Sprintf("%d", userId),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	m.publish(ctx, events)
	return &LockResult{SeatIds: ids, LockedAt: lockedAt}, nil
}

// UnlockSeats trả ghế về AVAILABLE. Chỉ ghế đang LOCKED và (giữ bởi userId
// hoặc đã quá TTL) mới được nhả; ghế khác bỏ qua im lặng, không lỗi.
// Trả về danh sách ghế thực sự được nhả.
func (m *LockManager) UnlockSeats(ctx context.Context, seatIds []uint, userId uint) ([]uint, error) {
	ids := uniqueIds(seatIds)
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: seat ids are required", ErrInvalidRequest)
	}

	var released []uint
	var events []realtime.SeatEvent

	err := runInTx(ctx, m.db, func(tx *gorm.DB) error {
		released = released[:0]
		events = events[:0]

		var seats []model.Seat
		if err := tx.Where("id IN ?", ids).Find(&seats).Error; err != nil {
			return err
		}

		cutoff := time.Now().Add(-m.ttl)
		var eligible []uint
		for _, seat := range seats {
			if seat.Status != model.SeatLocked {
				continue
			}
			heldByCaller := seat.LockedBy != nil && *seat.LockedBy == userId
			expired := seat.LockedAt != nil && seat.LockedAt.Before(cutoff)
			if heldByCaller || expired {
				eligible = append(eligible, seat.ID)
				events = append(events, realtime.SeatEvent{
					ShowtimeId:  seat.ShowtimeId,
					SeatId:      seat.ID,
					Status:      model.SeatAvailable,
					TriggeredBy: fmt.Sprintf("%d", userId),
				})
			}
		}
		if len(eligible) == 0 {
			return nil
		}

		res := tx.Model(&model.Seat{}).
			Where("id IN ? AND status = ? AND (locked_by = ? OR locked_at < ?)",
				eligible, model.SeatLocked, userId, cutoff).
			Updates(map[string]any{
				"status":    model.SeatAvailable,
				"locked_by": nil,
				"locked_at": nil,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != int64(len(eligible)) {
			return errStaleState
		}
		released = eligible
		return nil
	})
	if err != nil {
		return nil, err
	}

	m.publish(ctx, events)
	return released, nil
}

// RenewLock đặt lại mốc giữ ghế cho caller. Lock đã quá TTL nhưng vẫn còn
// đứng tên caller thì vẫn gia hạn được.
func (m *LockManager) RenewLock(ctx context.Context, seatId uint, userId uint) (time.Time, error) {
	var lockedAt time.Time

	err := runInTx(ctx, m.db, func(tx *gorm.DB) error {
		var seat model.Seat
		if err := tx.First(&seat, seatId).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fmt.Errorf("%w: seat %d", ErrNotFound, seatId)
			}
			return err
		}
		if seat.Status != model.SeatLocked || seat.LockedBy == nil || *seat.LockedBy != userId {
			return fmt.Errorf("%w: seat %d is not locked by you", ErrInvalidRequest, seatId)
		}

		now := time.Now()
		res := tx.Model(&model.Seat{}).
			Where("id = ? AND status = ? AND locked_by = ?", seatId, model.SeatLocked, userId).
			Update("locked_at", now)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errStaleState
		}
		lockedAt = now
		return nil
	})
	return lockedAt, err
}

// UpdateSeatAdmin cho operator sửa dữ liệu ghế, bỏ qua conflict check.
// LOCKED không set tay được (chỉ đi qua lock path) nên nằm ngoài enum hợp lệ.
func (m *LockManager) UpdateSeatAdmin(ctx context.Context, seatId uint, status, seatType *string) (*model.Seat, error) {
	if status != nil && *status != model.SeatAvailable && *status != model.SeatBooked {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *status)
	}

	var updated model.Seat
	var event *realtime.SeatEvent

	err := runInTx(ctx, m.db, func(tx *gorm.DB) error {
		event = nil

		var seat model.Seat
		if err := tx.Preload("SeatCategory").First(&seat, seatId).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fmt.Errorf("%w: seat %d", ErrNotFound, seatId)
			}
			return err
		}

		updates := map[string]any{}
		if seatType != nil {
			var category model.SeatCategory
			if err := tx.Where("type = ?", *seatType).First(&category).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					return fmt.Errorf("%w: %s", ErrInvalidType, *seatType)
				}
				return err
			}
			updates["seat_category_id"] = category.ID
		}
		if status != nil {
			updates["status"] = *status
			updates["locked_by"] = nil
			updates["locked_at"] = nil
		}
		if len(updates) == 0 {
			return fmt.Errorf("%w: nothing to update", ErrInvalidRequest)
		}

		// Update qua model rỗng: Model(&seat) sẽ save lại association
		// SeatCategory đã preload và đè mất seat_category_id mới.
		if err := tx.Model(&model.Seat{}).Where("id = ?", seatId).
			Updates(updates).Error; err != nil {
			return err
		}
		if err := tx.Preload("SeatCategory").First(&updated, seatId).Error; err != nil {
			return err
		}
		if status != nil && *status != seat.Status {
			event = &realtime.SeatEvent{
				ShowtimeId:  seat.ShowtimeId,
				SeatId:      seat.ID,
				Status:      *status,
				TriggeredBy: "admin",
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if event != nil {
		m.publish(ctx, []realtime.SeatEvent{*event})
	}
	return &updated, nil
}

func (m *LockManager) lockableBy(seat model.Seat, userId uint, cutoff time.Time) bool {
	switch seat.Status {
	case model.SeatAvailable:
		return true
	case model.SeatLocked:
		if seat.LockedBy != nil && *seat.LockedBy == userId {
			return true // re-lock idempotent của chính holder
		}
		return seat.LockedAt != nil && seat.LockedAt.Before(cutoff)
	default:
		return false
	}
}

func (m *LockManager) publish(ctx context.Context, events []realtime.SeatEvent) {
	for _, ev := range events {
		if err := m.broadcaster.Publish(ctx, ev); err != nil {
			log.Printf("Lỗi broadcast ghế %d: %v", ev.SeatId, err)
		}
	}
}

func uniqueIds(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
