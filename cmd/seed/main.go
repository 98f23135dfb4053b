package main

import (
	"context"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"app/internal/domain/model"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/seeder"

	"github.com/joho/godotenv"
)

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file, using environment variables")
	}

	gormDB, err := db.Connect()
	if err != nil {
		slog.Error("db connect failed", slog.Any("error", err))
		os.Exit(1)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Supplier{},
		&model.Product{},
		&model.AuditLog{},
	); err != nil {
		slog.Error("auto migrate failed", slog.Any("error", err))
		os.Exit(1)
	}

	s := seeder.New(
		infraRepo.NewTxManagerGorm(gormDB),
		rand.New(rand.NewSource(*seed)),
	)

	if err := s.Run(context.Background()); err != nil {
		slog.Error("seed failed", slog.Any("error", err))
		os.Exit(1)
	}

	slog.Info("seed completed",
		slog.Int("suppliers", seeder.SupplierCount),
		slog.Int("products", seeder.ProductCount),
	)
}
