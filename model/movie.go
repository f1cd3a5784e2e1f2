package model

type Movie struct {
	DTO
	Title    string `gorm:"not null" validate:"required" json:"title"`
	Slug     string `gorm:"uniqueIndex;size:160" json:"slug"`
	Duration int    `json:"duration"` // phút
	Status   string `gorm:"size:20;default:'NOW_SHOWING'" json:"status"`
}
