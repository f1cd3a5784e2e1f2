package model

import "time"

const (
	TicketPending   = "PENDING"
	TicketConfirmed = "CONFIRMED"
	TicketUsed      = "USED"
	TicketCancelled = "CANCELLED"
)

// Ticket luôn gắn đúng một ghế (1:1 cho suất chiếu đó).
type Ticket struct {
	DTO
	TicketCode  string     `gorm:"size:20;uniqueIndex" json:"ticketCode"`
	Status      string     `gorm:"size:12;not null;default:'PENDING'" json:"status"`
	Price       float64    `gorm:"not null" json:"price"`
	QRPayload   string     `gorm:"size:64" json:"qrPayload,omitempty"`
	IssuedAt    time.Time  `json:"issuedAt"`
	UsedAt      *time.Time `json:"usedAt,omitempty"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`

	UserId     uint `gorm:"index" json:"userId"`
	ShowtimeId uint `json:"showtimeId"`
	SeatId     uint `gorm:"index" json:"seatId"`
	OrderId    uint `gorm:"index" json:"orderId"`

	Showtime Showtime `gorm:"foreignKey:ShowtimeId" json:"-"`
	Seat     Seat     `gorm:"foreignKey:SeatId" json:"-"`
	Order    Order    `gorm:"foreignKey:OrderId" json:"-"`
}

type CheckoutInput struct {
	ShowtimeId    uint   `json:"showtimeId" validate:"required,gt=0"`
	SeatIds       []uint `json:"seatIds" validate:"required,min=1,dive,gt=0"`
	PromotionCode string `json:"promotionCode"`
	Email         string `json:"email" validate:"omitempty,email"`
}

type RedeemTicketInput struct {
	TicketCode string `json:"ticketCode" validate:"required"`
}
