package handler

import (
	"fmt"
	"time"

	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

type SeatUI struct {
	Id       uint       `json:"id"`
	Label    string     `json:"label"`
	Type     string     `json:"type"`
	Status   string     `json:"status"`
	LockedBy *uint      `json:"lockedBy,omitempty"`
	LockedAt *time.Time `json:"lockedAt,omitempty"`
}

func seatUI(s model.Seat) SeatUI {
	return SeatUI{
		Id:       s.ID,
		Label:    fmt.Sprintf("%s%d", s.Row, s.Column),
		Type:     s.SeatCategory.Type,
		Status:   s.Status,
		LockedBy: s.LockedBy,
		LockedAt: s.LockedAt,
	}
}

// GET /seats/showtime/:showtimeId - sơ đồ ghế nhóm theo hàng
func (h *Handler) GetSeatsByShowtime(c *fiber.Ctx) error {
	showtimeId, _ := c.Locals("inputId").(uint)

	var showtime model.Showtime
	if err := h.db.First(&showtime, showtimeId).Error; err != nil {
		return utils.ErrorResponse(c, 404, "Suất chiếu không tồn tại", err)
	}

	var seats []model.Seat
	if err := h.db.
		Preload("SeatCategory").
		Where("showtime_id = ?", showtimeId).
		Order("row, \"column\"").
		Find(&seats).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Lỗi lấy danh sách ghế", err)
	}

	result := make(map[string][]SeatUI)
	for _, s := range seats {
		result[s.Row] = append(result[s.Row], seatUI(s))
	}
	return utils.SuccessResponse(c, 200, result)
}

type SeatDetail struct {
	SeatUI
	Row      string `json:"row"`
	Column   int    `json:"column"`
	Showtime struct {
		Id        uint      `json:"id"`
		StartTime time.Time `json:"startTime"`
		Movie     string    `json:"movie"`
		Hall      string    `json:"hall"`
		Cinema    string    `json:"cinema"`
	} `json:"showtime"`
}

// GET /seats/:seatId - chi tiết ghế kèm ngữ cảnh suất chiếu/phòng/rạp
func (h *Handler) GetSeatById(c *fiber.Ctx) error {
	seatId, _ := c.Locals("inputId").(uint)

	var seat model.Seat
	if err := h.db.
		Preload("SeatCategory").
		Preload("Showtime.Movie").
		Preload("Showtime.Hall.Cinema").
		First(&seat, seatId).Error; err != nil {
		return utils.ErrorResponse(c, 404, "Ghế không tồn tại", err)
	}

	var detail SeatDetail
	detail.SeatUI = seatUI(seat)
	copier.Copy(&detail, &seat)
	detail.Showtime.Id = seat.Showtime.ID
	detail.Showtime.StartTime = seat.Showtime.StartTime
	detail.Showtime.Movie = seat.Showtime.Movie.Title
	detail.Showtime.Hall = seat.Showtime.Hall.Name
	detail.Showtime.Cinema = seat.Showtime.Hall.Cinema.Name

	return utils.SuccessResponse(c, 200, detail)
}

// GET /seats/hall/:hallId - layout tĩnh của phòng
func (h *Handler) GetHallLayout(c *fiber.Ctx) error {
	hallId, _ := c.Locals("inputId").(uint)

	var hall model.Hall
	if err := h.db.First(&hall, hallId).Error; err != nil {
		return utils.ErrorResponse(c, 404, "Phòng chiếu không tồn tại", err)
	}

	return utils.SuccessResponse(c, 200, fiber.Map{
		"hallId":  hall.ID,
		"name":    hall.Name,
		"rows":    hall.Rows,
		"columns": hall.Columns,
		"total":   hall.TotalSeats(),
	})
}

// PUT /seats/:seatId - admin sửa status/loại ghế, bỏ qua conflict check
func (h *Handler) UpdateSeatAdmin(c *fiber.Ctx) error {
	seatId, _ := c.Locals("inputId").(uint)
	input := c.Locals("input").(model.UpdateSeatInput)

	seat, err := h.locks.UpdateSeatAdmin(c.Context(), seatId, input.Status, input.Type)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, 200, seat)
}

// POST /seats/lock
func (h *Handler) LockSeats(c *fiber.Ctx) error {
	input := c.Locals("input").(model.LockSeatsInput)

	result, err := h.locks.LockSeats(c.Context(), input.SeatIds, currentUserId(c))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, 200, result)
}

// POST /seats/unlock
func (h *Handler) UnlockSeats(c *fiber.Ctx) error {
	input := c.Locals("input").(model.LockSeatsInput)

	released, err := h.locks.UnlockSeats(c.Context(), input.SeatIds, currentUserId(c))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, 200, fiber.Map{"seatIds": released})
}

// POST /seats/:seatId/renew - gia hạn lock trong lúc checkout kéo dài
func (h *Handler) RenewLock(c *fiber.Ctx) error {
	seatId, _ := c.Locals("inputId").(uint)

	lockedAt, err := h.locks.RenewLock(c.Context(), seatId, currentUserId(c))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, 200, fiber.Map{
		"seatId":   seatId,
		"lockedAt": lockedAt,
	})
}
