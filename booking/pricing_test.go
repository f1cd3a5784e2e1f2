package booking

import (
	"math"
	"testing"
	"time"

	"cinema_booking/model"
)

func TestTicketPrice_CategoryModifier(t *testing.T) {
	now := time.Now()
	cases := []struct {
		name     string
		modifier float64
		want     float64
	}{
		{"standard", 1.0, 100},
		{"vip", 1.5, 150},
		{"couple", 2.0, 200},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := TicketPrice(100, model.SeatCategory{PriceModifier: tc.modifier}, nil, now)
			if got != tc.want {
				t.Errorf("TicketPrice() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTicketPrice_Promotion(t *testing.T) {
	now := time.Now()
	active := func(dType string, value float64) *model.Promotion {
		return &model.Promotion{
			Code:          "P",
			DiscountType:  dType,
			DiscountValue: value,
			StartDate:     now.Add(-time.Hour),
			EndDate:       now.Add(time.Hour),
			Status:        "active",
		}
	}
	vip := model.SeatCategory{PriceModifier: 1.5}

	if got := TicketPrice(100, vip, active(model.DiscountPercentage, 10), now); got != 135 {
		t.Errorf("10%% off 150 = %v, want 135", got)
	}
	if got := TicketPrice(100, vip, active(model.DiscountFixed, 30), now); got != 120 {
		t.Errorf("150 - 30 = %v, want 120", got)
	}
	// FIXED lớn hơn giá vé: không được âm
	if got := TicketPrice(100, vip, active(model.DiscountFixed, 500), now); got != 0 {
		t.Errorf("oversized fixed discount = %v, want 0", got)
	}
}

func TestTicketPrice_IgnoresInvalidPromotion(t *testing.T) {
	now := time.Now()
	vip := model.SeatCategory{PriceModifier: 1.5}

	expired := &model.Promotion{
		DiscountType:  model.DiscountPercentage,
		DiscountValue: 50,
		StartDate:     now.Add(-48 * time.Hour),
		EndDate:       now.Add(-24 * time.Hour),
		Status:        "active",
	}
	if got := TicketPrice(100, vip, expired, now); got != 150 {
		t.Errorf("expired promotion should be ignored, got %v", got)
	}

	inactive := &model.Promotion{
		DiscountType:  model.DiscountPercentage,
		DiscountValue: 50,
		StartDate:     now.Add(-time.Hour),
		EndDate:       now.Add(time.Hour),
		Status:        "inactive",
	}
	if got := TicketPrice(100, vip, inactive, now); got != 150 {
		t.Errorf("inactive promotion should be ignored, got %v", got)
	}
}

func TestTicketPrice_Rounding(t *testing.T) {
	now := time.Now()
	promo := &model.Promotion{
		DiscountType:  model.DiscountPercentage,
		DiscountValue: 15,
		StartDate:     now.Add(-time.Hour),
		EndDate:       now.Add(time.Hour),
		Status:        "active",
	}
	// 99 * 1.5 * 0.85 = 126.225, kết quả phải tròn 2 chữ số thập phân
	got := TicketPrice(99, model.SeatCategory{PriceModifier: 1.5}, promo, now)
	if math.Abs(got-126.225) > 0.01 {
		t.Errorf("TicketPrice() = %v, want ~126.22", got)
	}
	if cents := got * 100; math.Abs(cents-math.Round(cents)) > 1e-9 {
		t.Errorf("TicketPrice() = %v, want rounded to cents", got)
	}
}
