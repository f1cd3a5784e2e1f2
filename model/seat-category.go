package model

const (
	CategoryStandard = "STANDARD"
	CategoryVIP      = "VIP"
	CategoryCouple   = "COUPLE"
)

type SeatCategory struct {
	DTO
	Type          string  `gorm:"not null;uniqueIndex" validate:"required" json:"type"` // STANDARD VIP COUPLE
	PriceModifier float64 `json:"priceModifier"`
}
