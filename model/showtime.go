package model

import "time"

type Showtime struct {
	DTO
	PublicCode string    `gorm:"size:16;uniqueIndex" json:"publicCode"`
	StartTime  time.Time `validate:"required" json:"start"`
	EndTime    time.Time `validate:"required" json:"end"`
	BasePrice  float64   `json:"basePrice"`
	MovieId    uint      `json:"movieId"`
	HallId     uint      `json:"hallId"`
	Movie      Movie     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;foreignKey:MovieId" json:"Movie"`
	Hall       Hall      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;foreignKey:HallId" json:"Hall"`

	Seats   []Seat   `gorm:"foreignKey:ShowtimeId;constraint:OnDelete:CASCADE" json:"seats,omitempty"`
	Tickets []Ticket `gorm:"foreignKey:ShowtimeId" json:"tickets,omitempty"`
}

type CreateShowtimeInput struct {
	MovieId   uint      `json:"movieId" validate:"required,gt=0"`
	HallId    uint      `json:"hallId" validate:"required,gt=0"`
	StartTime time.Time `json:"startTime" validate:"required"`
	EndTime   time.Time `json:"endTime" validate:"required,gtfield=StartTime"`
	BasePrice float64   `json:"basePrice" validate:"required,gt=0"`
}
