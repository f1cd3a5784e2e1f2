package model

import "time"

const (
	OrderPending   = "PENDING"
	OrderConfirmed = "CONFIRMED"
	OrderCancelled = "CANCELLED"
)

type Order struct {
	DTO
	PublicCode  string     `gorm:"uniqueIndex;size:20" json:"publicCode"` // ORD-XXXXXXXX
	PaymentCode string     `gorm:"uniqueIndex;size:20" json:"paymentCode"`
	Status      string     `gorm:"size:12;not null;default:'PENDING'" json:"status"`
	TotalAmount float64    `json:"totalAmount"`
	Email       string     `json:"email"`
	PaidAt      *time.Time `json:"paidAt,omitempty"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`

	UserId     uint     `gorm:"index" json:"userId"`
	ShowtimeId uint     `json:"showtimeId"`
	Showtime   Showtime `json:"-"`
	Tickets    []Ticket `gorm:"foreignKey:OrderId" json:"tickets,omitempty"`
}

// Outcome từ payment gateway, nhận qua callback.
const (
	PaymentCompleted = "COMPLETED"
	PaymentFailed    = "FAILED"
	PaymentCancelled = "CANCELLED"
)

type PaymentCallbackInput struct {
	PaymentCode string `json:"paymentCode" validate:"required"`
	Outcome     string `json:"outcome" validate:"required,oneof=COMPLETED FAILED CANCELLED"`
}
