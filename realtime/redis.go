package realtime

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"
)

// RedisBroadcaster fan-out qua Redis pub/sub để chạy nhiều instance:
// mỗi instance subscribe kênh showtime:<id> và tự đẩy xuống websocket của nó.
type RedisBroadcaster struct {
	rdb *redis.Client
}

func NewRedisBroadcaster(addr string) *RedisBroadcaster {
	return &RedisBroadcaster{rdb: redis.NewClient(&redis.Options{Addr: addr})}
}

func (b *RedisBroadcaster) Publish(ctx context.Context, ev SeatEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return b.rdb.Publish(ctx, topic(ev.ShowtimeId), payload).Err()
}

func (b *RedisBroadcaster) Subscribe(showtimeId uint) (<-chan SeatEvent, func()) {
	ctx, cancelCtx := context.WithCancel(context.Background())
	pubsub := b.rdb.Subscribe(ctx, topic(showtimeId))
	out := make(chan SeatEvent, subscriberBuffer)

	go func() {
		defer close(out)
		for msg := range pubsub.Channel() {
			var ev SeatEvent
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				log.Printf("Bỏ qua payload seat event không hợp lệ: %v", err)
				continue
			}
			select {
			case out <- ev:
			default:
			}
		}
	}()

	cancel := func() {
		cancelCtx()
		pubsub.Close()
	}
	return out, cancel
}
