package booking

import (
	"errors"
	"fmt"

	"cinema_booking/model"

	"gorm.io/gorm"
)

// CreateShowtimeSeats sinh ghế cho một suất chiếu theo layout phòng:
// mỗi hàng×cột một ghế AVAILABLE, loại ghế gán theo vị trí hàng
// (các hàng cuối là VIP, hàng sát màn sau cùng là COUPLE).
func CreateShowtimeSeats(tx *gorm.DB, showtimeId uint, hall model.Hall) error {
	if hall.Rows < 1 || hall.Columns < 1 {
		return errors.New("hall has no seats")
	}

	categories := map[string]uint{}
	var cats []model.SeatCategory
	if err := tx.Find(&cats).Error; err != nil {
		return err
	}
	for _, c := range cats {
		categories[c.Type] = c.ID
	}

	var seats []model.Seat
	for r := 0; r < hall.Rows; r++ {
		row := rowLabel(r)
		categoryId := categories[categoryForRow(r, hall.Rows)]
		for col := 1; col <= hall.Columns; col++ {
			seats = append(seats, model.Seat{
				ShowtimeId:     showtimeId,
				Row:            row,
				Column:         col,
				Status:         model.SeatAvailable,
				SeatCategoryId: categoryId,
			})
		}
	}

	// Insert hàng loạt một lần cho cả phòng
	return tx.Create(&seats).Error
}

// categoryForRow: hàng cuối cùng COUPLE, 1/3 số hàng phía sau VIP,
// còn lại STANDARD.
func categoryForRow(rowIdx, totalRows int) string {
	if totalRows < 3 {
		return model.CategoryStandard
	}
	if rowIdx == totalRows-1 {
		return model.CategoryCouple
	}
	if rowIdx >= totalRows-1-totalRows/3 {
		return model.CategoryVIP
	}
	return model.CategoryStandard
}

// rowLabel: 0 → "A", 25 → "Z", 26 → "AA".
func rowLabel(idx int) string {
	if idx < 26 {
		return string(rune('A' + idx))
	}
	return fmt.Sprintf("%c%c", 'A'+idx/26-1, 'A'+idx%26)
}
