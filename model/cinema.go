package model

type Cinema struct {
	DTO
	Name    string `gorm:"not null" validate:"required" json:"name"`
	Slug    string `gorm:"uniqueIndex;size:120" json:"slug"`
	Address string `json:"address"`

	Halls []Hall `gorm:"foreignKey:CinemaId" json:"halls,omitempty"`
}

type Hall struct {
	DTO
	Name     string `gorm:"not null" validate:"required" json:"name"`
	Rows     int    `gorm:"not null" validate:"required,min=1" json:"rows"`    // số hàng ghế, đánh chữ A, B, C...
	Columns  int    `gorm:"not null" validate:"required,min=1" json:"columns"` // số ghế mỗi hàng
	CinemaId uint   `json:"cinemaId"`
	Cinema   Cinema `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// TotalSeats là sức chứa tĩnh của phòng chiếu.
func (h Hall) TotalSeats() int {
	return h.Rows * h.Columns
}
