package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"schoolhub_backend/internals/configs"
	database "schoolhub_backend/internals/databases"
	"schoolhub_backend/internals/middlewares"
	routes "schoolhub_backend/internals/route"
)

func main() {
	cfg := configs.Load()

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
		ErrorHandler:          middlewares.ErrorHandler,
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	middlewares.SetupMiddlewares(app, cfg)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("database connect: %v", err)
	}
	database.TunePool(db)
	database.WarmUp(db)

	// processed school logos and stamps are served from here
	app.Static("/"+cfg.UploadDir, "./"+cfg.UploadDir)

	routes.SetupRoutes(app, db, cfg)
	app.Use(middlewares.NotFoundHandler())

	go func() {
		log.Printf("listening on :%s", cfg.Port)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	database.Close(db)
}
