package realtime

import (
	"context"
	"testing"
	"time"
)

func TestHub_FanOut(t *testing.T) {
	h := NewHub()
	ch1, cancel1 := h.Subscribe(1)
	defer cancel1()
	ch2, cancel2 := h.Subscribe(1)
	defer cancel2()
	other, cancelOther := h.Subscribe(2)
	defer cancelOther()

	ev := SeatEvent{ShowtimeId: 1, SeatId: 7, Status: "LOCKED", TriggeredBy: "1"}
	if err := h.Publish(context.Background(), ev); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	for i, ch := range []<-chan SeatEvent{ch1, ch2} {
		select {
		case got := <-ch:
			if got.SeatId != 7 || got.Status != "LOCKED" {
				t.Errorf("subscriber %d got %+v", i, got)
			}
		case <-time.After(time.Second):
			t.Fatalf("subscriber %d did not receive event", i)
		}
	}

	// Room khác không nhận gì
	select {
	case got := <-other:
		t.Errorf("room 2 received %+v, want nothing", got)
	default:
	}
}

func TestHub_CancelStopsDelivery(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe(1)
	cancel()

	// Channel đã đóng sau cancel
	if _, ok := <-ch; ok {
		t.Error("channel should be closed after cancel")
	}
	// Cancel lần nữa không panic, publish vào room trống không lỗi
	cancel()
	if err := h.Publish(context.Background(), SeatEvent{ShowtimeId: 1}); err != nil {
		t.Errorf("Publish() after cancel error = %v", err)
	}
}

func TestHub_SlowSubscriberDoesNotBlock(t *testing.T) {
	h := NewHub()
	_, cancel := h.Subscribe(1)
	defer cancel()

	done := make(chan struct{})
	go func() {
		// Không ai đọc: khi buffer đầy event bị drop chứ không treo publisher
		for i := 0; i < subscriberBuffer*2; i++ {
			h.Publish(context.Background(), SeatEvent{ShowtimeId: 1, SeatId: uint(i)})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publisher blocked on slow subscriber")
	}
}
