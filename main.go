package main

import (
	"log"

	"cinema_booking/booking"
	"cinema_booking/config"
	"cinema_booking/database"
	"cinema_booking/handler"
	"cinema_booking/realtime"
	"cinema_booking/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	database.SeedData(db)

	// Một instance dùng hub in-memory; đặt REDIS_ADDR để fan-out qua Redis
	// khi chạy nhiều instance.
	var broadcaster realtime.Broadcaster
	if cfg.RedisAddr != "" {
		broadcaster = realtime.NewRedisBroadcaster(cfg.RedisAddr)
	} else {
		broadcaster = realtime.NewHub()
	}

	locks := booking.NewLockManager(db, broadcaster, cfg.LockTTL)
	orchestrator := booking.NewOrchestrator(db, broadcaster)
	settlement := booking.NewSettlement(db, broadcaster)

	janitor := booking.NewJanitor(db, broadcaster, cfg.LockTTL, cfg.SweepEvery)
	if err := janitor.Start(); err != nil {
		log.Fatal(err)
	}
	defer janitor.Stop()

	orderExpirer := booking.NewOrderExpirer(db, settlement, cfg.OrderWindow)
	if err := orderExpirer.Start(); err != nil {
		log.Fatal(err)
	}
	defer orderExpirer.Stop()

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173",
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
	}))

	h := handler.New(cfg, db, locks, orchestrator, settlement, broadcaster)
	router.SetupRoutes(app, h)

	log.Fatal(app.Listen(cfg.AppAddr))
}
