package booking

import (
	"testing"
	"time"

	"cinema_booking/model"
)

func TestRowLabel(t *testing.T) {
	cases := []struct {
		idx  int
		want string
	}{
		{0, "A"}, {1, "B"}, {25, "Z"}, {26, "AA"}, {27, "AB"}, {51, "AZ"}, {52, "BA"},
	}
	for _, tc := range cases {
		if got := rowLabel(tc.idx); got != tc.want {
			t.Errorf("rowLabel(%d) = %q, want %q", tc.idx, got, tc.want)
		}
	}
}

func TestCategoryForRow(t *testing.T) {
	// Phòng 9 hàng: 0–4 STANDARD, 5–7 VIP, 8 COUPLE
	for r := 0; r <= 4; r++ {
		if got := categoryForRow(r, 9); got != model.CategoryStandard {
			t.Errorf("row %d/9 = %s, want STANDARD", r, got)
		}
	}
	for r := 5; r <= 7; r++ {
		if got := categoryForRow(r, 9); got != model.CategoryVIP {
			t.Errorf("row %d/9 = %s, want VIP", r, got)
		}
	}
	if got := categoryForRow(8, 9); got != model.CategoryCouple {
		t.Errorf("row 8/9 = %s, want COUPLE", got)
	}

	// Phòng quá nhỏ: tất cả STANDARD
	for r := 0; r < 2; r++ {
		if got := categoryForRow(r, 2); got != model.CategoryStandard {
			t.Errorf("row %d/2 = %s, want STANDARD", r, got)
		}
	}
}

func TestCreateShowtimeSeats(t *testing.T) {
	db := newTestDB(t)
	seedShowtime(t, db) // tạo sẵn các seat category

	hall := model.Hall{Name: "Hall test", Rows: 6, Columns: 8}
	if err := db.Create(&hall).Error; err != nil {
		t.Fatalf("seed hall: %v", err)
	}
	showtime := model.Showtime{
		PublicCode: "SHW-layout",
		StartTime:  time.Now().Add(time.Hour),
		EndTime:    time.Now().Add(3 * time.Hour),
		BasePrice:  80,
		HallId:     hall.ID,
	}
	if err := db.Create(&showtime).Error; err != nil {
		t.Fatalf("seed showtime: %v", err)
	}

	if err := CreateShowtimeSeats(db, showtime.ID, hall); err != nil {
		t.Fatalf("CreateShowtimeSeats() error = %v", err)
	}

	var seats []model.Seat
	if err := db.Preload("SeatCategory").Where("showtime_id = ?", showtime.ID).
		Find(&seats).Error; err != nil {
		t.Fatalf("load seats: %v", err)
	}
	if len(seats) != 48 {
		t.Fatalf("created %d seats, want 48", len(seats))
	}

	byCategory := map[string]int{}
	for _, seat := range seats {
		if seat.Status != model.SeatAvailable {
			t.Errorf("seat %s%d = %s, want AVAILABLE", seat.Row, seat.Column, seat.Status)
		}
		byCategory[seat.SeatCategory.Type]++
	}
	// 6 hàng: A–C STANDARD, D–E VIP, F COUPLE
	if byCategory[model.CategoryStandard] != 24 ||
		byCategory[model.CategoryVIP] != 16 ||
		byCategory[model.CategoryCouple] != 8 {
		t.Errorf("category split = %v, want STANDARD:24 VIP:16 COUPLE:8", byCategory)
	}
}

func TestCreateShowtimeSeats_EmptyHall(t *testing.T) {
	db := newTestDB(t)
	if err := CreateShowtimeSeats(db, 1, model.Hall{Rows: 0, Columns: 10}); err == nil {
		t.Error("hall with no rows should be rejected")
	}
}
