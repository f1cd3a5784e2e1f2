package realtime

import (
	"context"
	"sync"
)

const subscriberBuffer = 64

// Hub là broadcaster in-memory cho deploy một instance, giữ map
// showtimeId → subscribers giống room websocket.
type Hub struct {
	mu    sync.Mutex
	rooms map[uint]map[chan SeatEvent]bool
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[uint]map[chan SeatEvent]bool)}
}

func (h *Hub) Publish(_ context.Context, ev SeatEvent) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.rooms[ev.ShowtimeId] {
		select {
		case ch <- ev:
		default:
			// Subscriber chậm thì bỏ event, không block publisher.
		}
	}
	return nil
}

func (h *Hub) Subscribe(showtimeId uint) (<-chan SeatEvent, func()) {
	ch := make(chan SeatEvent, subscriberBuffer)

	h.mu.Lock()
	if h.rooms[showtimeId] == nil {
		h.rooms[showtimeId] = make(map[chan SeatEvent]bool)
	}
	h.rooms[showtimeId][ch] = true
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if subs, ok := h.rooms[showtimeId]; ok {
			if subs[ch] {
				delete(subs, ch)
				close(ch)
			}
			if len(subs) == 0 {
				delete(h.rooms, showtimeId)
			}
		}
		h.mu.Unlock()
	}
	return ch, cancel
}
