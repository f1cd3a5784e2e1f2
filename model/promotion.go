package model

import "time"

const (
	DiscountPercentage = "PERCENTAGE"
	DiscountFixed      = "FIXED"
)

type Promotion struct {
	DTO
	Code          string    `gorm:"uniqueIndex;not null" json:"code"`
	Name          string    `json:"name"`
	DiscountType  string    `gorm:"not null" json:"discountType"` // PERCENTAGE, FIXED
	DiscountValue float64   `gorm:"type:decimal(10,2);not null" json:"discountValue"`
	StartDate     time.Time `gorm:"not null" json:"startDate"`
	EndDate       time.Time `gorm:"not null" json:"endDate"`
	Status        string    `gorm:"default:'active';not null" json:"status"` // active, inactive
}

// ValidAt: promotion chỉ áp dụng khi đang active và trong khoảng hiệu lực.
func (p Promotion) ValidAt(t time.Time) bool {
	return p.Status == "active" && !t.Before(p.StartDate) && !t.After(p.EndDate)
}
