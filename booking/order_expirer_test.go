package booking

import (
	"testing"
	"time"

	"cinema_booking/model"
)

func TestExpireStaleOrders(t *testing.T) {
	db := newTestDB(t)
	showtime, seats := seedShowtime(t, db)
	o := NewOrchestrator(db, &recordingBroadcaster{})
	s := NewSettlement(db, &recordingBroadcaster{})
	e := NewOrderExpirer(db, s, 15*time.Minute)

	stale := checkoutOrder(t, o, showtime.ID, []uint{seats["A1"].ID}, 1)
	fresh := checkoutOrder(t, o, showtime.ID, []uint{seats["A2"].ID}, 2)

	// Đẩy đơn thứ nhất ra ngoài cửa sổ thanh toán
	old := time.Now().Add(-20 * time.Minute)
	if err := db.Model(&model.Order{}).Where("id = ?", stale.Order.ID).
		Update("created_at", old).Error; err != nil {
		t.Fatalf("backdate order: %v", err)
	}

	e.expireStaleOrders()

	var staleOrder, freshOrder model.Order
	if err := db.First(&staleOrder, stale.Order.ID).Error; err != nil {
		t.Fatalf("reload stale order: %v", err)
	}
	if err := db.First(&freshOrder, fresh.Order.ID).Error; err != nil {
		t.Fatalf("reload fresh order: %v", err)
	}
	if staleOrder.Status != model.OrderCancelled {
		t.Errorf("stale order = %s, want CANCELLED", staleOrder.Status)
	}
	if freshOrder.Status != model.OrderPending {
		t.Errorf("fresh order = %s, want still PENDING", freshOrder.Status)
	}

	if seat := reloadSeat(t, db, seats["A1"].ID); seat.Status != model.SeatAvailable {
		t.Errorf("seat A1 = %s, want AVAILABLE after expiry", seat.Status)
	}
	if seat := reloadSeat(t, db, seats["A2"].ID); seat.Status != model.SeatBooked {
		t.Errorf("seat A2 = %s, want still BOOKED", seat.Status)
	}

	// Chạy lại không đổi gì thêm
	e.expireStaleOrders()
	if err := db.First(&staleOrder, stale.Order.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if staleOrder.Status != model.OrderCancelled {
		t.Errorf("second run changed status to %s", staleOrder.Status)
	}
}
