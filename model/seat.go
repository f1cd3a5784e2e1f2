package model

import "time"

const (
	SeatAvailable = "AVAILABLE"
	SeatLocked    = "LOCKED"
	SeatBooked    = "BOOKED"
)

// Seat là hàng ghế của MỘT suất chiếu cụ thể. Lock không phải entity riêng:
// cặp (LockedBy, LockedAt) nhúng trực tiếp trên ghế.
// Bất biến: status = LOCKED ⇔ LockedBy và LockedAt đều khác nil.
type Seat struct {
	DTO
	ShowtimeId uint       `gorm:"not null;uniqueIndex:idx_showtime_row_col" json:"showtimeId"`
	Row        string     `gorm:"size:2;not null;uniqueIndex:idx_showtime_row_col" json:"row"`
	Column     int        `gorm:"not null;uniqueIndex:idx_showtime_row_col" json:"column"`
	Status     string     `gorm:"size:12;not null;default:'AVAILABLE';index" json:"status"`
	LockedBy   *uint      `json:"lockedBy,omitempty"`
	LockedAt   *time.Time `json:"lockedAt,omitempty"`

	SeatCategoryId uint         `json:"seatCategoryId"`
	SeatCategory   SeatCategory `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"SeatCategory"`
	Showtime       Showtime     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func ValidSeatStatus(s string) bool {
	switch s {
	case SeatAvailable, SeatLocked, SeatBooked:
		return true
	}
	return false
}

type LockSeatsInput struct {
	SeatIds []uint `json:"seatIds" validate:"required,min=1,dive,gt=0"`
}

type UpdateSeatInput struct {
	Status *string `json:"status"`
	Type   *string `json:"type"`
}
