package database

import (
	"cinema_booking/config"
	"cinema_booking/model"
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect mở kết nối Postgres và migrate schema. Handle được trả về cho
// caller tự truyền xuống các component, không giữ global.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	log.Println("Connection Opened to Database")

	if err := Migrate(db); err != nil {
		return nil, err
	}
	log.Println("Database Migrated")
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Account{},
		&model.Cinema{},
		&model.Hall{},
		&model.Movie{},
		&model.Showtime{},
		&model.SeatCategory{},
		&model.Seat{},
		&model.Promotion{},
		&model.Order{},
		&model.Ticket{},
	)
}
