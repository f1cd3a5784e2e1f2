package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config gom toàn bộ cấu hình runtime của service.
// Mọi hằng số nghiệp vụ (TTL giữ ghế, chu kỳ quét...) đều đọc từ env,
// không hardcode trong business logic.
type Config struct {
	AppAddr     string
	AppURL      string
	JWTSecret   string
	DBHost      string
	DBPort      uint64
	DBUser      string
	DBPassword  string
	DBName      string
	RedisAddr   string
	SMTPHost    string
	SMTPPort    int
	SMTPUser    string
	SMTPPass    string
	SMTPFrom    string
	LockTTL     time.Duration // thời gian giữ ghế tối đa
	SweepEvery  time.Duration // chu kỳ janitor quét lock hết hạn
	OrderWindow time.Duration // thời gian chờ thanh toán của đơn PENDING
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Không tìm thấy file .env, dùng biến môi trường hệ thống...")
	}

	port, err := strconv.ParseUint(getEnv("DB_PORT", "5432"), 10, 32)
	if err != nil {
		panic("failed to parse database port")
	}
	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "587"))

	return &Config{
		AppAddr:     getEnv("APP_ADDR", ":8002"),
		AppURL:      getEnv("APP_URL", "http://localhost:8002"),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      port,
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", ""),
		DBName:      getEnv("DB_NAME", "cinema_booking"),
		RedisAddr:   getEnv("REDIS_ADDR", ""),
		SMTPHost:    getEnv("SMTP_HOST", ""),
		SMTPPort:    smtpPort,
		SMTPUser:    getEnv("SMTP_USERNAME", ""),
		SMTPPass:    getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:    getEnv("SMTP_FROM", "CinemaBooking <no-reply@cinemabooking.local>"),
		LockTTL:     getDuration("SEAT_LOCK_TTL", 5*time.Minute),
		SweepEvery:  getDuration("SEAT_SWEEP_INTERVAL", 60*time.Second),
		OrderWindow: getDuration("ORDER_PAYMENT_WINDOW", 15*time.Minute),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Giá trị %s không hợp lệ (%q), dùng mặc định %s", key, v, fallback)
		return fallback
	}
	return d
}
