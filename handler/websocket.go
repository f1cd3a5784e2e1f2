package handler

import (
	"log"
	"strconv"

	"cinema_booking/model"

	"github.com/gofiber/contrib/websocket"
)

// SeatWebsocket đẩy realtime seat event của một suất chiếu cho client.
// Client có thể truyền ?userId=<id> để khỏi nhận echo thao tác của chính nó.
func (h *Handler) SeatWebsocket(c *websocket.Conn) {
	showtimeIdStr := c.Params("showtimeId")
	id64, err := strconv.ParseUint(showtimeIdStr, 10, 64)
	if err != nil {
		log.Printf("Invalid showtimeId: %s", showtimeIdStr)
		c.Close()
		return
	}
	showtimeId := uint(id64)

	// Token hợp lệ thì ưu tiên userId đã xác thực, không thì tin ?userId
	suppressEcho := c.Query("userId")
	if userId, ok := c.Locals("userId").(uint); ok && userId > 0 {
		suppressEcho = strconv.FormatUint(uint64(userId), 10)
	}

	events, cancel := h.broadcaster.Subscribe(showtimeId)
	defer cancel()
	defer c.Close()

	// Gửi ngay sơ đồ ghế hiện tại cho client mới connect
	if err := c.WriteJSON(h.currentSeatMap(showtimeId)); err != nil {
		return
	}

	// Read pump chỉ để phát hiện client đóng kết nối
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			if suppressEcho != "" && ev.TriggeredBy == suppressEcho {
				continue
			}
			if err := c.WriteJSON(ev); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

func (h *Handler) currentSeatMap(showtimeId uint) map[string][]SeatUI {
	var seats []model.Seat
	if err := h.db.
		Preload("SeatCategory").
		Where("showtime_id = ?", showtimeId).
		Order("row, \"column\"").
		Find(&seats).Error; err != nil {
		log.Printf("Error loading seats for broadcast: %v", err)
		return nil
	}

	result := make(map[string][]SeatUI)
	for _, s := range seats {
		result[s.Row] = append(result[s.Row], seatUI(s))
	}
	return result
}
