package database

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"schoolhub_backend/internals/configs"
)

// Connect opens the Postgres pool. PreferSimpleProtocol keeps us compatible
// with PgBouncer transaction pooling.
func Connect(cfg *configs.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		return nil, err
	}
	log.Println("[INFO] database connected")
	return db, nil
}

func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// WarmUp pings in the background so the first real request doesn't pay for
// pool establishment.
func WarmUp(db *gorm.DB) {
	go func() {
		time.Sleep(500 * time.Millisecond)
		sqlDB, err := db.DB()
		if err != nil {
			log.Printf("warm-up err: %v", err)
			return
		}
		if err := sqlDB.Ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func Close(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
