package database

import (
	"cinema_booking/model"
	"log"

	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedData khởi tạo dữ liệu cơ bản: loại ghế, tài khoản admin, rạp demo.
func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("123456cb"), 10)
	hashPassword := string(bytes)
	if err != nil {
		hashPassword = "123456cb"
	}
	accounts := []model.Account{
		{Username: "administration", Password: hashPassword, Active: true, Role: "ADMIN"},
	}
	for _, account := range accounts {
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed account:", account.Username, "error:", err)
		}
	}

	seatCategories := []model.SeatCategory{
		{Type: model.CategoryStandard, PriceModifier: 1.0},
		{Type: model.CategoryVIP, PriceModifier: 1.5},
		{Type: model.CategoryCouple, PriceModifier: 2.0},
	}
	for _, category := range seatCategories {
		if err := db.Where(model.SeatCategory{Type: category.Type}).FirstOrCreate(&category).Error; err != nil {
			log.Println("failed to seed seat category:", category.Type, "error:", err)
		}
	}

	cinema := model.Cinema{Name: "Cinema Hub Trung Tâm", Address: "Quận 1, TP.HCM"}
	cinema.Slug = slug.Make(cinema.Name)
	if err := db.Where(model.Cinema{Slug: cinema.Slug}).FirstOrCreate(&cinema).Error; err != nil {
		log.Println("failed to seed cinema:", err)
	}

	halls := []model.Hall{
		{Name: "Phòng 1", Rows: 8, Columns: 10, CinemaId: cinema.ID},
		{Name: "Phòng 2", Rows: 10, Columns: 12, CinemaId: cinema.ID},
	}
	for _, hall := range halls {
		if err := db.Where(model.Hall{Name: hall.Name, CinemaId: cinema.ID}).FirstOrCreate(&hall).Error; err != nil {
			log.Println("failed to seed hall:", hall.Name, "error:", err)
		}
	}

	movie := model.Movie{Title: "Mắt Biếc", Duration: 117}
	movie.Slug = slug.Make(movie.Title)
	if err := db.Where(model.Movie{Slug: movie.Slug}).FirstOrCreate(&movie).Error; err != nil {
		log.Println("failed to seed movie:", err)
	}
}
