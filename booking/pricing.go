package booking

import (
	"math"
	"time"

	"cinema_booking/model"
)

// TicketPrice = giá gốc suất chiếu × hệ số loại ghế, sau đó áp promotion
// nếu có và còn hiệu lực, làm tròn 2 chữ số.
func TicketPrice(basePrice float64, category model.SeatCategory, promo *model.Promotion, at time.Time) float64 {
	price := basePrice * category.PriceModifier

	if promo != nil && promo.ValidAt(at) {
		switch promo.DiscountType {
		case model.DiscountPercentage:
			price = price * (1 - promo.DiscountValue/100)
		case model.DiscountFixed:
			price = price - promo.DiscountValue
			if price < 0 {
				price = 0
			}
		}
	}

	return math.Round(price*100) / 100
}
