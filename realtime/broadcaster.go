package realtime

import (
	"context"
	"fmt"
)

// TriggeredBySystem dùng cho các transition không do user gây ra
// (janitor thu hồi lock, settlement hoàn ghế).
const TriggeredBySystem = "system"

// SeatEvent là một thay đổi trạng thái ghế, push cho mọi client đang xem
// suất chiếu đó.
type SeatEvent struct {
	ShowtimeId  uint   `json:"showtimeId"`
	SeatId      uint   `json:"seatId"`
	Status      string `json:"status"`
	LockedBy    *uint  `json:"lockedBy,omitempty"`
	TriggeredBy string `json:"triggeredBy,omitempty"`
}

// Broadcaster là relay thuần: không persist, không validate.
// Delivery best-effort, at-most-once trên mỗi subscriber; thứ tự event của
// cùng một ghế theo đúng thứ tự publish.
type Broadcaster interface {
	Publish(ctx context.Context, ev SeatEvent) error
	// Subscribe trả về channel event của một suất chiếu và hàm hủy đăng ký.
	Subscribe(showtimeId uint) (<-chan SeatEvent, func())
}

func topic(showtimeId uint) string {
	return fmt.Sprintf("showtime:%d", showtimeId)
}
